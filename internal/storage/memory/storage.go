package memory

import (
	"context"
	"sync"

	"github.com/mcoot/connectfour/internal/model"
	"github.com/mcoot/connectfour/internal/storage"
)

// Storage is an in-memory implementation of the score cache
type Storage struct {
	mu sync.RWMutex

	scores map[model.ScoreKey][]model.MoveScore
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		scores: make(map[model.ScoreKey][]model.MoveScore),
	}
}

// Ensure Storage implements the interface
var _ storage.ScoreCache = (*Storage)(nil)

func (s *Storage) GetScores(ctx context.Context, key model.ScoreKey) ([]model.MoveScore, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	scores, ok := s.scores[key]
	if !ok {
		return nil, model.ErrCacheMiss
	}
	result := make([]model.MoveScore, len(scores))
	copy(result, scores)
	return result, nil
}

func (s *Storage) SaveScores(ctx context.Context, key model.ScoreKey, scores []model.MoveScore) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := make([]model.MoveScore, len(scores))
	copy(stored, scores)
	s.scores[key] = stored
	return nil
}

func (s *Storage) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scores = make(map[model.ScoreKey][]model.MoveScore)
	return nil
}

// Len returns the number of cached positions
func (s *Storage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.scores)
}
