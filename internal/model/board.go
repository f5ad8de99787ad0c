package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Standard board dimensions
const (
	StandardRows    = 6
	StandardColumns = 7
	ConnectLength   = 4 // pieces in a line needed to win
)

// Board is a grid of cells with pieces stacked from the bottom of each column
type Board struct {
	rows    int
	columns int
	grid    [][]Cell // grid[row][col], row 0 is the bottom
}

// NewBoard creates an empty board of the given size
func NewBoard(rows, columns int) (*Board, error) {
	if rows <= 0 || columns <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, rows, columns)
	}
	grid := make([][]Cell, rows)
	for i := range grid {
		grid[i] = make([]Cell, columns)
	}
	return &Board{
		rows:    rows,
		columns: columns,
		grid:    grid,
	}, nil
}

// NewStandardBoard creates an empty 6x7 board
func NewStandardBoard() *Board {
	b, _ := NewBoard(StandardRows, StandardColumns)
	return b
}

// Rows returns the number of rows
func (b *Board) Rows() int {
	return b.rows
}

// Columns returns the number of columns
func (b *Board) Columns() int {
	return b.columns
}

// Get returns the cell at the given position, or Empty if out of bounds
func (b *Board) Get(row, col int) Cell {
	if row < 0 || row >= b.rows || col < 0 || col >= b.columns {
		return Empty
	}
	return b.grid[row][col]
}

// IsColumnPlayable returns true if a piece can be dropped into the column
func (b *Board) IsColumnPlayable(col int) bool {
	if col < 0 || col >= b.columns {
		return false
	}
	return b.grid[b.rows-1][col] == Empty
}

// Place drops a piece for player into the column.
// The board is left unchanged when an error is returned.
func (b *Board) Place(col int, player Cell) error {
	if !player.IsPlayer() {
		return ErrInvalidPlayer
	}
	if col < 0 || col >= b.columns {
		return fmt.Errorf("%w: %d", ErrColumnOutOfBounds, col)
	}
	if !b.IsColumnPlayable(col) {
		return fmt.Errorf("%w: column %d is full", ErrIllegalMove, col)
	}
	b.grid[b.Height(col)][col] = player
	return nil
}

// Height returns the number of pieces in the column, which is also the
// row the next piece will land on
func (b *Board) Height(col int) int {
	if col < 0 || col >= b.columns {
		return 0
	}
	for row := 0; row < b.rows; row++ {
		if b.grid[row][col] == Empty {
			return row
		}
	}
	return b.rows
}

// Copy returns an independent deep copy of the board
func (b *Board) Copy() *Board {
	grid := make([][]Cell, b.rows)
	for i := range b.grid {
		grid[i] = make([]Cell, b.columns)
		copy(grid[i], b.grid[i])
	}
	return &Board{
		rows:    b.rows,
		columns: b.columns,
		grid:    grid,
	}
}

// LegalMoves returns the playable columns in ascending order.
// An empty result means the board is full.
func (b *Board) LegalMoves() []int {
	moves := make([]int, 0, b.columns)
	for col := 0; col < b.columns; col++ {
		if b.IsColumnPlayable(col) {
			moves = append(moves, col)
		}
	}
	return moves
}

// IsFull returns true if no column is playable
func (b *Board) IsFull() bool {
	for col := 0; col < b.columns; col++ {
		if b.IsColumnPlayable(col) {
			return false
		}
	}
	return true
}

// Equal returns true if both boards have the same size and contents
func (b *Board) Equal(other *Board) bool {
	if other == nil || b.rows != other.rows || b.columns != other.columns {
		return false
	}
	for row := 0; row < b.rows; row++ {
		for col := 0; col < b.columns; col++ {
			if b.grid[row][col] != other.grid[row][col] {
				return false
			}
		}
	}
	return true
}

// Render draws the board with the bottom row last, optionally under a
// header of column indices
func (b *Board) Render(withHeader bool) string {
	var sb strings.Builder
	if withHeader {
		for col := 0; col < b.columns; col++ {
			sb.WriteString(strconv.Itoa(col))
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	for row := b.rows - 1; row >= 0; row-- {
		for col := 0; col < b.columns; col++ {
			sb.WriteByte(b.grid[row][col].Symbol())
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Encode returns a compact form of the board: one symbol per cell, rows
// from the bottom up separated by '/'
func (b *Board) Encode() string {
	var sb strings.Builder
	sb.Grow(b.rows * (b.columns + 1))
	for row := 0; row < b.rows; row++ {
		if row > 0 {
			sb.WriteByte('/')
		}
		for col := 0; col < b.columns; col++ {
			sb.WriteByte(b.grid[row][col].Symbol())
		}
	}
	return sb.String()
}

// DecodeBoard parses the output of Encode. Positions with floating pieces
// are rejected.
func DecodeBoard(s string) (*Board, error) {
	lines := strings.Split(s, "/")
	b, err := NewBoard(len(lines), len(lines[0]))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	for row, line := range lines {
		if len(line) != b.columns {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidEncoding, row, len(line), b.columns)
		}
		for col := 0; col < b.columns; col++ {
			cell, ok := cellFromSymbol(line[col])
			if !ok {
				return nil, fmt.Errorf("%w: unexpected %q", ErrInvalidEncoding, line[col])
			}
			if cell != Empty && row > 0 && b.grid[row-1][col] == Empty {
				return nil, fmt.Errorf("%w: floating piece at row %d column %d", ErrInvalidEncoding, row, col)
			}
			b.grid[row][col] = cell
		}
	}
	return b, nil
}
