package game

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mcoot/connectfour/internal/dependencies/clock"
	"github.com/mcoot/connectfour/internal/dependencies/random"
	"github.com/mcoot/connectfour/internal/model"
	"github.com/mcoot/connectfour/internal/services/search"
)

// FirstMover selects who opens a game
type FirstMover string

const (
	FirstHuman    FirstMover = "human"
	FirstComputer FirstMover = "computer"
	FirstRandom   FirstMover = "random" // coin toss with the injected random source
)

// ParseFirstMover validates a first mover name
func ParseFirstMover(s string) (FirstMover, error) {
	switch FirstMover(s) {
	case FirstHuman, FirstComputer, FirstRandom:
		return FirstMover(s), nil
	default:
		return "", fmt.Errorf("unknown first mover %q: must be human, computer or random", s)
	}
}

// Controller manages the turn flow of human versus computer games
type Controller struct {
	engine *search.Engine
	clock  clock.Clock
	random random.Random
	logger *slog.Logger
}

// NewController creates a new GameController
func NewController(
	engine *search.Engine,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		engine: engine,
		clock:  clock,
		random: random,
		logger: logger.With(slog.String("component", "game-controller")),
	}
}

// NewGame starts a game on an empty standard board
func (c *Controller) NewGame(ctx context.Context, first FirstMover) (*model.Game, error) {
	toMove := model.Human
	switch first {
	case FirstHuman:
	case FirstComputer:
		toMove = model.Computer
	case FirstRandom:
		if c.random.Intn(2) == 1 {
			toMove = model.Computer
		}
	default:
		return nil, fmt.Errorf("unknown first mover %q", first)
	}

	now := c.clock.Now()
	game := &model.Game{
		ID:         model.GameID(uuid.NewString()),
		Board:      model.NewStandardBoard(),
		State:      model.GameStateInProgress,
		Winner:     model.Empty,
		ToMove:     toMove,
		TurnNumber: 1,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	c.logger.Info("game created",
		slog.String("game_id", string(game.ID)),
		slog.String("first_mover", toMove.String()),
	)

	return game, nil
}

// PlayHuman drops the human's piece in col
func (c *Controller) PlayHuman(ctx context.Context, game *model.Game, col int) error {
	return c.play(game, model.Human, col)
}

// PlayComputer searches for and plays the computer's move, returning the column
func (c *Controller) PlayComputer(ctx context.Context, game *model.Game) (int, error) {
	if err := c.validateTurn(game, model.Computer); err != nil {
		return -1, err
	}

	col, err := c.engine.ChooseDefaultMove(ctx, game.Board)
	if err != nil {
		return -1, err
	}

	if err := c.play(game, model.Computer, col); err != nil {
		return -1, err
	}
	return col, nil
}

// Replay plays the given columns in order for whichever side is to move.
// It stops at the first illegal move or once the game is over.
func (c *Controller) Replay(ctx context.Context, game *model.Game, columns []int) error {
	for i, col := range columns {
		if err := c.play(game, game.ToMove, col); err != nil {
			return fmt.Errorf("move %d (column %d): %w", i+1, col, err)
		}
	}
	return nil
}

func (c *Controller) validateTurn(game *model.Game, player model.Cell) error {
	if game.IsComplete() {
		return model.ErrGameComplete
	}
	if game.ToMove != player {
		return model.ErrNotPlayerTurn
	}
	return nil
}

// play applies a move and advances the game
func (c *Controller) play(game *model.Game, player model.Cell, col int) error {
	if err := c.validateTurn(game, player); err != nil {
		return err
	}

	if err := game.Board.Place(col, player); err != nil {
		return err
	}

	now := c.clock.Now()
	game.History = append(game.History, model.HistoryEntry{
		Player:   player,
		Column:   col,
		PlayedAt: now,
	})
	game.TurnNumber++
	game.UpdatedAt = now

	c.advance(game, player)
	return nil
}

// advance checks for the end of the game, then passes the turn
func (c *Controller) advance(game *model.Game, player model.Cell) {
	if winner := game.Board.Winner(); winner != model.Empty {
		game.State = model.GameStateWon
		game.Winner = winner
		c.logger.Info("game won",
			slog.String("game_id", string(game.ID)),
			slog.String("winner", winner.String()),
			slog.Int("moves", len(game.History)),
		)
		return
	}

	if len(game.Board.LegalMoves()) == 0 {
		game.State = model.GameStateDraw
		c.logger.Info("game drawn",
			slog.String("game_id", string(game.ID)),
			slog.Int("moves", len(game.History)),
		)
		return
	}

	game.ToMove = player.Opponent()
}

// Interface for dependency injection
type ControllerInterface interface {
	NewGame(ctx context.Context, first FirstMover) (*model.Game, error)
	PlayHuman(ctx context.Context, game *model.Game, col int) error
	PlayComputer(ctx context.Context, game *model.Game) (int, error)
	Replay(ctx context.Context, game *model.Game, columns []int) error
}

var _ ControllerInterface = (*Controller)(nil)
