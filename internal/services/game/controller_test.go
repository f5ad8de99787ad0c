package game

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/connectfour/internal/dependencies/mocks"
	"github.com/mcoot/connectfour/internal/model"
	"github.com/mcoot/connectfour/internal/services/search"
	"github.com/mcoot/connectfour/internal/storage/memory"
	"github.com/mcoot/connectfour/internal/testutil"
)

// drawSequence fills the board with alternating moves, human first, and
// never completes a line
var drawSequence = []int{
	4, 1, 1, 1, 1, 6, 1, 4, 5, 3, 3, 6, 6, 5, 4, 6, 0, 6, 1, 2, 2,
	4, 4, 3, 4, 2, 3, 0, 6, 3, 0, 0, 2, 2, 3, 0, 5, 2, 0, 5, 5, 5,
}

type ControllerSuite struct {
	suite.Suite
	storage    *memory.Storage
	clock      *mocks.MockClock
	random     *mocks.MockRandom
	logs       *bytes.Buffer
	engine     *search.Engine
	controller *Controller
	ctx        context.Context
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}

func (s *ControllerSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.random = mocks.NewMockRandom()
	logger, logs := testutil.BufferLogger()
	s.logs = logs
	s.engine = search.NewEngine(s.storage, s.random, s.clock, search.Config{Depth: 2}, testutil.NopLogger())
	s.controller = NewController(s.engine, s.clock, s.random, logger)
	s.ctx = context.Background()
}

func (s *ControllerSuite) newGame(first FirstMover) *model.Game {
	game, err := s.controller.NewGame(s.ctx, first)
	s.Require().NoError(err)
	return game
}

// ParseFirstMover tests

func (s *ControllerSuite) TestParseFirstMover() {
	for _, name := range []string{"human", "computer", "random"} {
		first, err := ParseFirstMover(name)
		s.Require().NoError(err)
		s.Equal(FirstMover(name), first)
	}

	_, err := ParseFirstMover("nobody")
	s.Error(err)
}

// NewGame tests

func (s *ControllerSuite) TestNewGameHumanFirst() {
	game := s.newGame(FirstHuman)

	s.NotEmpty(game.ID)
	s.Equal(model.GameStateInProgress, game.State)
	s.Equal(model.Empty, game.Winner)
	s.Equal(model.Human, game.ToMove)
	s.Equal(1, game.TurnNumber)
	s.Empty(game.History)
	s.True(game.Board.Equal(model.NewStandardBoard()))
	s.Equal(s.clock.Now(), game.CreatedAt)
	s.Equal(s.clock.Now(), game.UpdatedAt)
	s.Empty(s.random.IntnCalls)
}

func (s *ControllerSuite) TestNewGameComputerFirst() {
	game := s.newGame(FirstComputer)
	s.Equal(model.Computer, game.ToMove)
}

func (s *ControllerSuite) TestNewGameRandomFirst() {
	s.random.QueueIntn(1, 0)

	s.Equal(model.Computer, s.newGame(FirstRandom).ToMove)
	s.Equal(model.Human, s.newGame(FirstRandom).ToMove)
	s.Equal([]int{2, 2}, s.random.IntnCalls)
}

func (s *ControllerSuite) TestNewGameUniqueIDs() {
	s.NotEqual(s.newGame(FirstHuman).ID, s.newGame(FirstHuman).ID)
}

func (s *ControllerSuite) TestNewGameUnknownFirstMover() {
	_, err := s.controller.NewGame(s.ctx, FirstMover("nobody"))
	s.Error(err)
}

// PlayHuman tests

func (s *ControllerSuite) TestPlayHumanSucceeds() {
	game := s.newGame(FirstHuman)
	s.clock.Advance(time.Minute)

	err := s.controller.PlayHuman(s.ctx, game, 3)
	s.Require().NoError(err)

	s.Equal(model.Human, game.Board.Get(0, 3))
	s.Equal(model.Computer, game.ToMove)
	s.Equal(2, game.TurnNumber)
	s.Equal(s.clock.Now(), game.UpdatedAt)
	s.Require().Len(game.History, 1)
	s.Equal(model.HistoryEntry{Player: model.Human, Column: 3, PlayedAt: s.clock.Now()}, game.History[0])

	last, ok := game.LastMove()
	s.True(ok)
	s.Equal(3, last.Column)
}

func (s *ControllerSuite) TestPlayHumanOutOfTurn() {
	game := s.newGame(FirstComputer)

	err := s.controller.PlayHuman(s.ctx, game, 3)
	s.ErrorIs(err, model.ErrNotPlayerTurn)
	s.Empty(game.History)
}

func (s *ControllerSuite) TestPlayHumanIllegalColumn() {
	game := s.newGame(FirstHuman)

	err := s.controller.PlayHuman(s.ctx, game, 7)
	s.ErrorIs(err, model.ErrColumnOutOfBounds)
	s.Equal(model.Human, game.ToMove)
	s.Equal(1, game.TurnNumber)
	s.Empty(game.History)
}

func (s *ControllerSuite) TestPlayHumanFullColumn() {
	game := s.newGame(FirstHuman)
	s.Require().NoError(s.controller.Replay(s.ctx, game, []int{0, 0, 0, 0, 0, 0}))

	err := s.controller.PlayHuman(s.ctx, game, 0)
	s.ErrorIs(err, model.ErrIllegalMove)
	s.Equal(model.Human, game.ToMove)
}

// PlayComputer tests

func (s *ControllerSuite) TestPlayComputerSucceeds() {
	game := s.newGame(FirstComputer)

	col, err := s.controller.PlayComputer(s.ctx, game)
	s.Require().NoError(err)

	s.Equal(model.Computer, game.Board.Get(0, col))
	s.Equal(model.Human, game.ToMove)
	s.Require().Len(game.History, 1)
	s.Equal(model.Computer, game.History[0].Player)
	s.Equal(col, game.History[0].Column)
}

func (s *ControllerSuite) TestPlayComputerOutOfTurn() {
	game := s.newGame(FirstHuman)

	_, err := s.controller.PlayComputer(s.ctx, game)
	s.ErrorIs(err, model.ErrNotPlayerTurn)
	s.Empty(s.random.IntnCalls)
}

func (s *ControllerSuite) TestPlayComputerWins() {
	game := s.newGame(FirstHuman)
	s.Require().NoError(s.controller.Replay(s.ctx, game, []int{6, 0, 6, 1, 5, 2, 6}))

	col, err := s.controller.PlayComputer(s.ctx, game)
	s.Require().NoError(err)

	s.Equal(3, col)
	s.Equal(model.GameStateWon, game.State)
	s.Equal(model.Computer, game.Winner)
	s.True(game.IsComplete())
	s.Contains(s.logs.String(), `"msg":"game won"`)
	s.Contains(s.logs.String(), `"winner":"player_two"`)
}

func (s *ControllerSuite) TestNoMovesAfterGameWon() {
	game := s.newGame(FirstHuman)
	s.Require().NoError(s.controller.Replay(s.ctx, game, []int{0, 6, 1, 6, 2, 6, 3}))
	s.Equal(model.Human, game.Winner)

	err := s.controller.PlayHuman(s.ctx, game, 4)
	s.ErrorIs(err, model.ErrGameComplete)

	_, err = s.controller.PlayComputer(s.ctx, game)
	s.ErrorIs(err, model.ErrGameComplete)
	s.Len(game.History, 7)
}

// Replay tests

func (s *ControllerSuite) TestReplayAlternatesPlayers() {
	game := s.newGame(FirstComputer)
	s.Require().NoError(s.controller.Replay(s.ctx, game, []int{3, 3, 4}))

	s.Equal(model.Computer, game.Board.Get(0, 3))
	s.Equal(model.Human, game.Board.Get(1, 3))
	s.Equal(model.Computer, game.Board.Get(0, 4))
	s.Equal(model.Human, game.ToMove)
	s.Equal(4, game.TurnNumber)
}

func (s *ControllerSuite) TestReplayStopsAtIllegalMove() {
	game := s.newGame(FirstHuman)

	err := s.controller.Replay(s.ctx, game, []int{3, 3, 9, 2})
	s.ErrorIs(err, model.ErrColumnOutOfBounds)
	s.Contains(err.Error(), "move 3 (column 9)")
	s.Len(game.History, 2)
	s.Equal(model.Human, game.ToMove)
}

func (s *ControllerSuite) TestReplayPastEndOfGame() {
	game := s.newGame(FirstHuman)

	err := s.controller.Replay(s.ctx, game, []int{0, 6, 1, 6, 2, 6, 3, 4})
	s.ErrorIs(err, model.ErrGameComplete)
	s.Contains(err.Error(), "move 8")
	s.Equal(model.Human, game.Winner)
}

func (s *ControllerSuite) TestReplayToDraw() {
	game := s.newGame(FirstHuman)

	s.Require().NoError(s.controller.Replay(s.ctx, game, drawSequence))

	s.Equal(model.GameStateDraw, game.State)
	s.Equal(model.Empty, game.Winner)
	s.True(game.IsComplete())
	s.True(game.Board.IsFull())
	s.Equal(43, game.TurnNumber)
	s.Contains(s.logs.String(), `"msg":"game drawn"`)
}
