package storage

import (
	"context"

	"github.com/mcoot/connectfour/internal/model"
)

// ScoreCache remembers the root move scores computed for a position at a
// given search depth. Implementations must return ErrCacheMiss for
// positions they have not seen.
type ScoreCache interface {
	GetScores(ctx context.Context, key model.ScoreKey) ([]model.MoveScore, error)
	SaveScores(ctx context.Context, key model.ScoreKey, scores []model.MoveScore) error
	// Clear drops every cached entry
	Clear(ctx context.Context) error
}
