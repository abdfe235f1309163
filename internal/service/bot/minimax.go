package bot

import (
	"math"

	"github.com/fourinarow/core/internal/domain"
	"github.com/rs/zerolog/log"
)

const (
	DefaultDepth = 4
	DeepDepth    = 5

	MINIMAX_WIN  = 1000000
	MINIMAX_LOSS = -1000000
	MINIMAX_DRAW = 0
)

// Searcher picks the computer's column with an exhaustive fixed-depth minimax.
// It plays on the board it is given and leaves it as it found it.
type Searcher struct {
	depth int
	nodes int
}

func NewSearcher(depth int) *Searcher {
	if depth < 0 {
		depth = 0
	}
	return &Searcher{depth: depth}
}

func (s *Searcher) Depth() int { return s.depth }

// SelectMove tries every open column left to right. A column that wins on the
// spot is returned at once; otherwise the column with the strictly highest
// minimax score wins, so ties go to the leftmost one.
func (s *Searcher) SelectMove(board *domain.Board) (int, error) {
	columns := board.OpenColumns()
	if len(columns) == 0 {
		return -1, domain.ErrNoOpenColumn
	}

	s.nodes = 0
	bestCol := columns[0]
	bestScore := math.MinInt

	for _, col := range columns {
		wins := false
		score, err := probe(board, col, domain.ComputerSign, func(row int) int {
			if board.IsWinningMove(row, col) {
				wins = true
				return MINIMAX_WIN
			}
			return s.minimax(board, s.depth, false, row, col)
		})
		if err != nil {
			return -1, err
		}

		if wins {
			log.Debug().Int("column", col).Msg("immediate win")
			return col, nil
		}

		if score > bestScore {
			bestScore = score
			bestCol = col
		}
	}

	log.Debug().
		Int("column", bestCol).
		Int("score", bestScore).
		Int("depth", s.depth).
		Int("nodes", s.nodes).
		Msg("search complete")

	return bestCol, nil
}

// minimax scores the position after the disc at (lastRow, lastCol) was
// dropped. maximizing is true when the computer is the side to move.
func (s *Searcher) minimax(board *domain.Board, depth int, maximizing bool, lastRow, lastCol int) int {
	s.nodes++

	// Terminal conditions
	if board.IsWinningMove(lastRow, lastCol) {
		// the side that just moved won, which is the maximizer's opponent here
		if maximizing {
			return MINIMAX_LOSS
		}
		return MINIMAX_WIN
	}
	if board.IsFull() {
		return MINIMAX_DRAW
	}
	if depth == 0 {
		return board.HeuristicScore()
	}

	if maximizing {
		maxEval := math.MinInt
		for _, col := range board.OpenColumns() {
			eval, _ := probe(board, col, domain.ComputerSign, func(row int) int {
				return s.minimax(board, depth-1, false, row, col)
			})
			maxEval = max(maxEval, eval)
		}
		return maxEval
	}

	minEval := math.MaxInt
	for _, col := range board.OpenColumns() {
		eval, _ := probe(board, col, domain.OpponentSign, func(row int) int {
			return s.minimax(board, depth-1, true, row, col)
		})
		minEval = min(minEval, eval)
	}
	return minEval
}

// probe drops sign into col, runs eval on the resulting position and takes
// the disc back on every way out of eval.
func probe(board *domain.Board, col int, sign domain.Sign, eval func(row int) int) (int, error) {
	row, err := board.DropDisc(col, sign)
	if err != nil {
		return 0, err
	}
	defer board.Undo(row, col)

	return eval(row), nil
}
