package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mcoot/connectfour/internal/model"
	"github.com/mcoot/connectfour/internal/services/game"
)

// Console messages
const (
	promptMove     = "Please enter a move: "
	msgInvalidMove = "Invalid move."
	msgHumanWon    = "Congrats! You won!"
	msgComputerWon = "Sorry, you lost. =("
	msgTie         = "It's a Tie!"
)

// Console reads moves from and writes the game to a terminal
type Console struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewConsole creates a Console over the given streams
func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// ShowBoard prints the board with column numbers
func (c *Console) ShowBoard(board *model.Board) {
	fmt.Fprintln(c.out, board.Render(true))
}

// PromptColumn asks until the human enters a playable column.
// Input that is not a number is silently asked for again.
func (c *Console) PromptColumn(board *model.Board) (int, error) {
	for {
		fmt.Fprint(c.out, promptMove)
		if !c.in.Scan() {
			if err := c.in.Err(); err != nil {
				return -1, err
			}
			return -1, io.EOF
		}

		col, err := strconv.Atoi(strings.TrimSpace(c.in.Text()))
		if err != nil {
			continue
		}
		if !board.IsColumnPlayable(col) {
			fmt.Fprintln(c.out, msgInvalidMove)
			continue
		}
		return col, nil
	}
}

// Announce prints the result of a finished game
func (c *Console) Announce(g *model.Game) {
	switch {
	case g.State == model.GameStateDraw:
		fmt.Fprintln(c.out, msgTie)
	case g.Winner == model.Human:
		fmt.Fprintln(c.out, msgHumanWon)
	case g.Winner == model.Computer:
		fmt.Fprintln(c.out, msgComputerWon)
	}
}

// RunGame alternates turns until the game ends, printing the board before
// every turn
func RunGame(ctx context.Context, controller game.ControllerInterface, g *model.Game, console *Console) error {
	for {
		console.ShowBoard(g.Board)

		if g.IsComplete() {
			console.Announce(g)
			return nil
		}

		if g.ToMove == model.Human {
			col, err := console.PromptColumn(g.Board)
			if err != nil {
				return err
			}
			if err := controller.PlayHuman(ctx, g, col); err != nil {
				return err
			}
			continue
		}

		col, err := controller.PlayComputer(ctx, g)
		if err != nil {
			return err
		}
		fmt.Fprintf(console.out, "Computer plays %d.\n", col)
	}
}
