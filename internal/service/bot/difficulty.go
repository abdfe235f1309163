package bot

import "strings"

type Difficulty string

const (
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ParseDifficulty validates and returns the bot difficulty
// Defaults to Medium if invalid or empty
func ParseDifficulty(difficulty string) Difficulty {
	switch strings.ToLower(strings.TrimSpace(difficulty)) {
	case "hard":
		return DifficultyHard
	default:
		return DifficultyMedium
	}
}

// Depth is the number of plies searched after the computer's own move.
func (d Difficulty) Depth() int {
	if d == DifficultyHard {
		return DeepDepth
	}
	return DefaultDepth
}
