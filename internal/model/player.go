package model

// Cell is the content of a single board square
type Cell uint8

const (
	Empty     Cell = iota
	PlayerOne      // the human player
	PlayerTwo      // the computer player
)

// Human and Computer name the sides of a console game
const (
	Human    = PlayerOne
	Computer = PlayerTwo
)

// IsPlayer returns true if the cell holds a piece
func (c Cell) IsPlayer() bool {
	return c == PlayerOne || c == PlayerTwo
}

// Opponent returns the other player, or Empty for Empty
func (c Cell) Opponent() Cell {
	switch c {
	case PlayerOne:
		return PlayerTwo
	case PlayerTwo:
		return PlayerOne
	default:
		return Empty
	}
}

// Symbol returns the character used when rendering the cell
func (c Cell) Symbol() byte {
	switch c {
	case PlayerOne:
		return 'X'
	case PlayerTwo:
		return 'O'
	default:
		return '.'
	}
}

// String returns a human-readable name for the cell
func (c Cell) String() string {
	switch c {
	case PlayerOne:
		return "player_one"
	case PlayerTwo:
		return "player_two"
	default:
		return "empty"
	}
}

// cellFromSymbol is the inverse of Symbol
func cellFromSymbol(b byte) (Cell, bool) {
	switch b {
	case 'X':
		return PlayerOne, true
	case 'O':
		return PlayerTwo, true
	case '.':
		return Empty, true
	default:
		return Empty, false
	}
}
