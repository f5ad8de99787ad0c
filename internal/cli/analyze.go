package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcoot/connectfour/internal/model"
	"github.com/mcoot/connectfour/internal/services/game"
	"github.com/mcoot/connectfour/internal/services/search"
)

func newAnalyzeCmd() *cobra.Command {
	var (
		moves    []int
		first    string
		position string
	)

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Score the computer's candidate moves in a position",
		Long: `analyze replays a sequence of columns (or decodes an encoded position) and
prints the minimax score of every move available to the computer. The
replayed moves must leave the computer to move.

Positions are encoded one symbol per cell (X human, O computer, . empty),
rows from the bottom up separated by '/'.`,
		Example: `  connectfour analyze --moves 3,3,4,4,5
  connectfour analyze --first computer --moves 3,4
  connectfour analyze --position 'XXX.OO./......./......./......./......./.......'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if position != "" && len(moves) > 0 {
				return errors.New("--moves and --position are mutually exclusive")
			}

			board, err := analysisBoard(cmd, position, first, moves)
			if err != nil {
				return err
			}
			if winner := board.Winner(); winner != model.Empty {
				return fmt.Errorf("%w: %s has already won", model.ErrGameComplete, winner)
			}

			scores, err := app.Engine.MoveScores(cmd.Context(), board, cfg.Depth)
			if err != nil {
				return err
			}

			best := search.BestMoves(scores)
			result := AnalysisResult{
				Position:  board.Encode(),
				Board:     board.Render(true),
				Depth:     cfg.Depth,
				Scores:    scores,
				BestScore: best[0].Score,
			}
			for _, b := range best {
				result.BestMoves = append(result.BestMoves, b.Column)
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}

	cmd.Flags().IntSliceVar(&moves, "moves", nil, "Columns played so far, alternating sides")
	cmd.Flags().StringVar(&first, "first", string(game.FirstHuman), "Who played the first of --moves: human or computer")
	cmd.Flags().StringVar(&position, "position", "", "Encoded position to analyze")

	return cmd
}

func analysisBoard(cmd *cobra.Command, position, first string, moves []int) (*model.Board, error) {
	if position != "" {
		return model.DecodeBoard(position)
	}

	firstMover, err := game.ParseFirstMover(first)
	if err != nil {
		return nil, err
	}
	if firstMover == game.FirstRandom {
		return nil, errors.New("--first must be human or computer when analyzing")
	}

	g, err := app.GameController.NewGame(cmd.Context(), firstMover)
	if err != nil {
		return nil, err
	}
	if err := app.GameController.Replay(cmd.Context(), g, moves); err != nil {
		return nil, err
	}
	if !g.IsComplete() && g.ToMove != model.Computer {
		return nil, fmt.Errorf("%w: the human is to move after %d moves", model.ErrNotPlayerTurn, len(moves))
	}
	return g.Board, nil
}
