package model

import "time"

// GameID uniquely identifies a game
type GameID string

// GameState represents the current phase of a game
type GameState string

const (
	GameStateInProgress GameState = "in_progress"
	GameStateWon        GameState = "won"  // Winner holds the winning player
	GameStateDraw       GameState = "draw" // board filled with no winner
)

// HistoryEntry records a single move
type HistoryEntry struct {
	Player   Cell
	Column   int
	PlayedAt time.Time
}

// Game is a single human versus computer match
type Game struct {
	ID     GameID
	Board  *Board
	State  GameState
	Winner Cell // Empty unless State is won

	// Turn management
	ToMove     Cell
	TurnNumber int // 1-indexed, incremented after every move

	History []HistoryEntry

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsComplete returns true once the game has been won or drawn
func (g *Game) IsComplete() bool {
	return g.State == GameStateWon || g.State == GameStateDraw
}

// LastMove returns the most recent history entry and whether there is one
func (g *Game) LastMove() (HistoryEntry, bool) {
	if len(g.History) == 0 {
		return HistoryEntry{}, false
	}
	return g.History[len(g.History)-1], true
}

// MoveScore is the minimax value of dropping a piece in Column
type MoveScore struct {
	Column int `json:"column"`
	Score  int `json:"score"`
}

// ScoreKey identifies a searched position in the score cache
type ScoreKey struct {
	Depth    int
	Position string // Board.Encode()
}
