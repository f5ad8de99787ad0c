package main

import (
	"github.com/joho/godotenv"

	"github.com/mcoot/connectfour/internal/cli"
)

func main() {
	// Settings may come from a .env file; a missing file is fine
	_ = godotenv.Load()

	cli.Execute()
}
