package model

// Winner returns the player owning a line of ConnectLength or more pieces,
// or Empty if there is none.
//
// Lines are scanned in a fixed order and the first run found wins: rows,
// then columns, then ascending diagonals, then descending diagonals.
func (b *Board) Winner() Cell {
	// rows, left to right
	for row := 0; row < b.rows; row++ {
		if w := b.scanLine(row, 0, 0, 1); w != Empty {
			return w
		}
	}

	// columns, bottom to top
	for col := 0; col < b.columns; col++ {
		if w := b.scanLine(0, col, 1, 0); w != Empty {
			return w
		}
	}

	// ascending diagonals, from the left edge then the bottom edge
	for row := 0; row < b.rows; row++ {
		if w := b.scanLine(row, 0, 1, 1); w != Empty {
			return w
		}
	}
	for col := 1; col < b.columns; col++ {
		if w := b.scanLine(0, col, 1, 1); w != Empty {
			return w
		}
	}

	// descending diagonals, from the left edge then the top edge
	for row := 0; row < b.rows; row++ {
		if w := b.scanLine(row, 0, -1, 1); w != Empty {
			return w
		}
	}
	for col := 1; col < b.columns; col++ {
		if w := b.scanLine(b.rows-1, col, -1, 1); w != Empty {
			return w
		}
	}

	return Empty
}

// scanLine walks from (row, col) in steps of (dRow, dCol) until it leaves
// the board, returning the owner of the first long enough run
func (b *Board) scanLine(row, col, dRow, dCol int) Cell {
	last := Empty
	count := 0
	for row >= 0 && row < b.rows && col >= 0 && col < b.columns {
		cell := b.grid[row][col]
		switch {
		case cell == Empty:
			count = 0
		case cell == last:
			count++
		default:
			count = 1
		}
		if count >= ConnectLength {
			return cell
		}
		last = cell
		row += dRow
		col += dCol
	}
	return Empty
}
