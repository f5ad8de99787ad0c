package search

import (
	"context"
	"errors"
	"log/slog"

	"github.com/mcoot/connectfour/internal/dependencies/clock"
	"github.com/mcoot/connectfour/internal/dependencies/random"
	"github.com/mcoot/connectfour/internal/model"
	"github.com/mcoot/connectfour/internal/storage"
)

// DefaultDepth is the number of plies searched below each candidate move
const DefaultDepth = 5

// Config holds search settings
type Config struct {
	// Depth is the depth used by ChooseDefaultMove
	Depth int
}

// DefaultConfig returns the default search configuration
func DefaultConfig() Config {
	return Config{Depth: DefaultDepth}
}

// Engine picks moves for the computer with a minimax search
type Engine struct {
	cache  storage.ScoreCache
	random random.Random
	clock  clock.Clock
	cfg    Config
	logger *slog.Logger
}

// NewEngine creates a new Engine. cache may be nil to disable caching.
func NewEngine(
	cache storage.ScoreCache,
	rnd random.Random,
	clk clock.Clock,
	cfg Config,
	logger *slog.Logger,
) *Engine {
	return &Engine{
		cache:  cache,
		random: rnd,
		clock:  clk,
		cfg:    cfg,
		logger: logger.With(slog.String("component", "search-engine")),
	}
}

// Depth returns the configured search depth
func (e *Engine) Depth() int {
	return e.cfg.Depth
}

// MoveScores scores every legal move for the computer on board. Each
// candidate is played and the resulting position scored with maxDepth plies
// remaining and the human to move. A candidate that wins at once scores
// max(maxDepth, 1).
func (e *Engine) MoveScores(ctx context.Context, board *model.Board, maxDepth int) ([]model.MoveScore, error) {
	moves := board.LegalMoves()
	if len(moves) == 0 {
		return nil, model.ErrNoLegalMoves
	}

	key := model.ScoreKey{Depth: maxDepth, Position: board.Encode()}
	if scores, ok := e.cachedScores(ctx, key); ok {
		return scores, nil
	}

	start := e.clock.Now()
	sc := newScorer()
	scores := make([]model.MoveScore, 0, len(moves))
	for _, col := range moves {
		child := board.Copy()
		_ = child.Place(col, model.Computer) // col comes from LegalMoves

		score := sc.score(child, maxDepth, false)
		if child.Winner() == model.Computer {
			// immediate wins stay on top even when maxDepth is below 1
			score = max(maxDepth, 1)
		}
		scores = append(scores, model.MoveScore{Column: col, Score: score})
	}

	e.logger.Debug("position searched",
		slog.Int("depth", maxDepth),
		slog.Int("moves", len(moves)),
		slog.Int("nodes_cached", len(sc.memo)),
		slog.Int("transpositions", sc.hits),
		slog.Duration("duration", e.clock.Since(start)),
	)

	if e.cache != nil {
		if err := e.cache.SaveScores(ctx, key, scores); err != nil {
			e.logger.Warn("failed to cache scores",
				slog.String("error", err.Error()),
			)
		}
	}

	return scores, nil
}

// BestMoves returns the scored moves sharing the highest score, in column order
func BestMoves(scores []model.MoveScore) []model.MoveScore {
	var best []model.MoveScore
	for _, s := range scores {
		switch {
		case len(best) == 0 || s.Score > best[0].Score:
			best = []model.MoveScore{s}
		case s.Score == best[0].Score:
			best = append(best, s)
		}
	}
	return best
}

// ChooseMove returns the column the computer should play, drawing uniformly
// at random among the equally best moves. board is not modified.
func (e *Engine) ChooseMove(ctx context.Context, board *model.Board, maxDepth int) (int, error) {
	scores, err := e.MoveScores(ctx, board, maxDepth)
	if err != nil {
		return -1, err
	}

	best := BestMoves(scores)
	choice := best[e.random.Intn(len(best))]

	e.logger.Info("move chosen",
		slog.Int("column", choice.Column),
		slog.Int("score", choice.Score),
		slog.Int("candidates", len(best)),
	)

	return choice.Column, nil
}

// ChooseDefaultMove is ChooseMove at the configured depth
func (e *Engine) ChooseDefaultMove(ctx context.Context, board *model.Board) (int, error) {
	return e.ChooseMove(ctx, board, e.cfg.Depth)
}

func (e *Engine) cachedScores(ctx context.Context, key model.ScoreKey) ([]model.MoveScore, bool) {
	if e.cache == nil {
		return nil, false
	}
	scores, err := e.cache.GetScores(ctx, key)
	if err != nil {
		if !errors.Is(err, model.ErrCacheMiss) {
			e.logger.Warn("failed to read score cache",
				slog.String("error", err.Error()),
			)
		}
		return nil, false
	}
	return scores, true
}
