package domain

// axis is one of the four win directions, given as a single step.
type axis struct {
	deltaRow, deltaCol int
}

// checked in this order; the first axis reaching ToWin is the one highlighted
var winAxes = [...]axis{
	{1, 0},  // vertical
	{0, 1},  // horizontal
	{-1, 1}, // diagonal /
	{1, 1},  // diagonal \
}

// IsWinningMove reports whether the disc at (row, column) is part of a run of
// at least four equal discs on any axis. It does not touch the highlight.
func (b *Board) IsWinningMove(row, column int) bool {
	return b.winningLine(row, column) != nil
}

// HighlightWinningSequence clears any previous highlight and marks the cells
// of the winning line through (row, column). It returns the marked cells, or
// nil when the disc does not win.
func (b *Board) HighlightWinningSequence(row, column int) []Cell {
	b.clearHighlight()

	line := b.winningLine(row, column)
	for _, c := range line {
		b.at(c.Row, c.Column).inWinLine = true
	}
	return line
}

// winningLine collects the run through (row, column) axis by axis and returns
// the first one that is long enough.
func (b *Board) winningLine(row, column int) []Cell {
	if !b.inBounds(row, column) {
		return nil
	}

	sign := b.at(row, column).sign
	if sign == Empty {
		return nil
	}

	for _, ax := range winAxes {
		line := []Cell{{Row: row, Column: column, Sign: sign}}
		line = b.collectInDirection(line, row, column, ax.deltaRow, ax.deltaCol, sign)
		line = b.collectInDirection(line, row, column, -ax.deltaRow, -ax.deltaCol, sign)
		if len(line) >= ToWin {
			return line
		}
	}

	return nil
}

// collectInDirection appends the consecutive sign cells after (row, column)
// walking by (deltaRow, deltaCol).
func (b *Board) collectInDirection(line []Cell, row, column, deltaRow, deltaCol int, sign Sign) []Cell {
	r, c := row+deltaRow, column+deltaCol
	for b.inBounds(r, c) && b.at(r, c).sign == sign {
		line = append(line, Cell{Row: r, Column: c, Sign: sign})
		r += deltaRow
		c += deltaCol
	}
	return line
}
