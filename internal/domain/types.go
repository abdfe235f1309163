package domain

import "strings"

// Sign is the disc occupying a cell.
type Sign int

const (
	Empty Sign = 0
	SignA Sign = 1
	SignB Sign = 2
)

// the search and the heuristic always play the computer as SignB
const (
	ComputerSign = SignB
	OpponentSign = SignA
)

func (s Sign) String() string {
	switch s {
	case SignA:
		return "X"
	case SignB:
		return "O"
	default:
		return " "
	}
}

// Opponent returns the other disc. Empty has no opponent.
func (s Sign) Opponent() Sign {
	switch s {
	case SignA:
		return SignB
	case SignB:
		return SignA
	default:
		return Empty
	}
}

//for board dimensions
const (
	MinSize = 4
	MaxSize = 8
	ToWin   = 4
)

// IsValidSize reports whether n is an allowed row or column count.
func IsValidSize(n int) bool {
	return n >= MinSize && n <= MaxSize
}

// to represent the game style picked at construction
type GameStyle int

const (
	PlayerVsPlayer GameStyle = iota + 1
	PlayerVsComputer
)

func (s GameStyle) String() string {
	if s == PlayerVsComputer {
		return "pvc"
	}
	return "pvp"
}

// ParseGameStyle accepts "pvp"/"human" and "pvc"/"computer", case-insensitive.
func ParseGameStyle(style string) (GameStyle, error) {
	switch strings.ToLower(strings.TrimSpace(style)) {
	case "pvp", "human":
		return PlayerVsPlayer, nil
	case "pvc", "computer":
		return PlayerVsComputer, nil
	default:
		return 0, ErrInvalidGameStyle
	}
}

// to represent the state of the current round
type State int

const (
	Continue State = iota
	Retry
	GameOver
	Draw
	Quit
	Lose
)

func (s State) String() string {
	switch s {
	case Continue:
		return "continue"
	case Retry:
		return "retry"
	case GameOver:
		return "game_over"
	case Draw:
		return "draw"
	case Quit:
		return "quit"
	case Lose:
		return "lose"
	default:
		return "unknown"
	}
}

// IsRoundOver reports whether the state ends the current round.
func (s State) IsRoundOver() bool {
	return s == Lose || s == Draw || s == Quit
}

// basic error that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrInvalidColumn    Error = "invalid column"
	ErrColumnFull       Error = "column is full"
	ErrNoOpenColumn     Error = "no open column"
	ErrInvalidSize      Error = "board size must be between 4 and 8"
	ErrInvalidGameStyle Error = "unknown game style"
)
