package domain

const (
	// Window scores, from the computer's point of view.
	// Opponent threes weigh double so the search prefers blocking.
	SCORE_COMPUTER_THREE = 100
	SCORE_OPPONENT_THREE = -200
	SCORE_COMPUTER_TWO   = 50
	SCORE_OPPONENT_TWO   = -50
)

// window directions, each starting from its top-most / left-most cell
var windowDirections = [...]axis{
	{0, 1},  // horizontal
	{1, 0},  // vertical
	{1, 1},  // diagonal \
	{1, -1}, // diagonal /
}

// HeuristicScore sums the score of every run of ToWin cells on the board.
// It only reads the grid and does not depend on whose turn it is.
func (b *Board) HeuristicScore() int {
	score := 0

	for _, dir := range windowDirections {
		for row := 0; row < b.rows; row++ {
			for column := 1; column <= b.columns; column++ {
				lastRow := row + dir.deltaRow*(ToWin-1)
				lastCol := column + dir.deltaCol*(ToWin-1)
				if !b.inBounds(lastRow, lastCol) {
					continue
				}
				score += b.scoreWindow(row, column, dir)
			}
		}
	}

	return score
}

// scoreWindow counts the occupants of the window starting at (row, column).
func (b *Board) scoreWindow(row, column int, dir axis) int {
	computer, opponent, empty := 0, 0, 0

	for i := 0; i < ToWin; i++ {
		switch b.at(row+dir.deltaRow*i, column+dir.deltaCol*i).sign {
		case ComputerSign:
			computer++
		case OpponentSign:
			opponent++
		default:
			empty++
		}
	}

	switch {
	case computer == 3 && empty == 1:
		return SCORE_COMPUTER_THREE
	case opponent == 3 && empty == 1:
		return SCORE_OPPONENT_THREE
	case computer == 2 && empty == 2:
		return SCORE_COMPUTER_TWO
	case opponent == 2 && empty == 2:
		return SCORE_OPPONENT_TWO
	default:
		return 0
	}
}
