package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mcoot/connectfour/internal/services/game"
)

func newPlayCmd() *cobra.Command {
	var first string

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play an interactive game against the computer",
		RunE: func(cmd *cobra.Command, args []string) error {
			firstMover, err := game.ParseFirstMover(first)
			if err != nil {
				return err
			}

			g, err := app.GameController.NewGame(cmd.Context(), firstMover)
			if err != nil {
				return err
			}

			console := NewConsole(cmd.InOrStdin(), cmd.OutOrStdout())
			err = RunGame(cmd.Context(), app.GameController, g, console)
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(cmd.OutOrStdout(), "\nGame abandoned.")
				return nil
			}
			return err
		},
	}

	cmd.Flags().StringVar(&first, "first", string(game.FirstRandom), "Who moves first: human, computer, random")

	return cmd
}
