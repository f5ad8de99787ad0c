package model

import (
	"errors"
	"fmt"
)

// Common errors used across the application
var (
	// Board errors
	ErrInvalidDimensions = errors.New("board dimensions must be positive")
	ErrIllegalMove       = errors.New("illegal move")
	ErrColumnOutOfBounds = fmt.Errorf("%w: column out of bounds", ErrIllegalMove)
	ErrInvalidPlayer     = errors.New("invalid player")
	ErrInvalidEncoding   = errors.New("invalid board encoding")

	// Search errors
	ErrNoLegalMoves = errors.New("no legal moves available")

	// Game errors
	ErrGameComplete  = errors.New("game is already complete")
	ErrNotPlayerTurn = errors.New("not this player's turn")

	// Cache errors
	ErrCacheMiss = errors.New("scores not cached")
)
