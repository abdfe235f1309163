package domain

import "strings"

// Cell is one grid position. Column is 1-based like every public board call.
type Cell struct {
	Row    int
	Column int
	Sign   Sign
}

type cell struct {
	sign      Sign
	inWinLine bool
}

// Board is the rows x columns grid. Row 0 is the top row, columns are
// numbered from 1. Dimensions are validated by the caller.
type Board struct {
	rows    int
	columns int
	cells   [][]cell
}

func NewBoard(rows, columns int) *Board {
	cells := make([][]cell, rows)
	for i := range cells {
		cells[i] = make([]cell, columns)
	}
	return &Board{
		rows:    rows,
		columns: columns,
		cells:   cells,
	}
}

func (b *Board) Rows() int { return b.rows }
func (b *Board) Columns() int { return b.columns }

func (b *Board) inBounds(row, column int) bool {
	return row >= 0 && row < b.rows && column >= 1 && column <= b.columns
}

func (b *Board) at(row, column int) *cell {
	return &b.cells[row][column-1]
}

// SignAt returns Empty for coordinates outside the grid.
func (b *Board) SignAt(row, column int) Sign {
	if !b.inBounds(row, column) {
		return Empty
	}
	return b.at(row, column).sign
}

// IsColumnOpen reports whether column is on the board and its top cell is empty.
func (b *Board) IsColumnOpen(column int) bool {
	if column < 1 || column > b.columns {
		return false
	}

	// row 0 is the top, so an empty top cell means there is room below it
	return b.at(0, column).sign == Empty
}

// OpenColumns lists the open columns from left to right.
func (b *Board) OpenColumns() []int {
	open := make([]int, 0, b.columns)
	for column := 1; column <= b.columns; column++ {
		if b.IsColumnOpen(column) {
			open = append(open, column)
		}
	}
	return open
}

// DropDisc lets sign fall to the lowest empty cell of column and returns its row.
func (b *Board) DropDisc(column int, sign Sign) (int, error) {
	if column < 1 || column > b.columns {
		return -1, ErrInvalidColumn
	}

	// scan from the bottom row up till the first empty cell
	for row := b.rows - 1; row >= 0; row-- {
		c := b.at(row, column)
		if c.sign == Empty {
			c.sign = sign
			return row, nil
		}
	}

	return -1, ErrColumnFull
}

// Undo empties a cell. The search uses it to take back a simulated drop.
func (b *Board) Undo(row, column int) {
	if !b.inBounds(row, column) {
		return
	}
	c := b.at(row, column)
	c.sign = Empty
	c.inWinLine = false
}

func (b *Board) IsFull() bool {
	for row := 0; row < b.rows; row++ {
		for column := 1; column <= b.columns; column++ {
			if b.at(row, column).sign == Empty {
				return false
			}
		}
	}
	return true
}

// Reset empties every cell and clears the winning line.
func (b *Board) Reset() {
	for row := range b.cells {
		for i := range b.cells[row] {
			b.cells[row][i] = cell{}
		}
	}
}

func (b *Board) IsPartOfWinningSequence(row, column int) bool {
	if !b.inBounds(row, column) {
		return false
	}
	return b.at(row, column).inWinLine
}

// WinningSequence returns the highlighted cells, top-left first.
func (b *Board) WinningSequence() []Cell {
	var seq []Cell
	for row := 0; row < b.rows; row++ {
		for column := 1; column <= b.columns; column++ {
			if c := b.at(row, column); c.inWinLine {
				seq = append(seq, Cell{Row: row, Column: column, Sign: c.sign})
			}
		}
	}
	return seq
}

func (b *Board) clearHighlight() {
	for row := range b.cells {
		for i := range b.cells[row] {
			b.cells[row][i].inWinLine = false
		}
	}
}

// String renders the grid with a 1-based column header. Cells of the winning
// line are drawn in lower case.
func (b *Board) String() string {
	var sb strings.Builder
	for column := 1; column <= b.columns; column++ {
		sb.WriteString("  ")
		sb.WriteByte(byte('0' + column))
		sb.WriteByte(' ')
	}
	sb.WriteByte('\n')

	for row := 0; row < b.rows; row++ {
		sb.WriteByte('|')
		for column := 1; column <= b.columns; column++ {
			c := b.at(row, column)
			disc := c.sign.String()
			if c.inWinLine {
				disc = strings.ToLower(disc)
			}
			sb.WriteByte(' ')
			sb.WriteString(disc)
			sb.WriteString(" |")
		}
		sb.WriteByte('\n')
	}

	sb.WriteString(strings.Repeat("=", 4*b.columns+1))
	sb.WriteByte('\n')
	return sb.String()
}
