package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fourinarow/core/internal/domain"
	"github.com/fourinarow/core/internal/service/bot"
	"github.com/fourinarow/core/internal/service/game"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

const ErrEmptyName domain.Error = "player name must not be empty"

type Config struct {
	Rows        int
	Columns     int
	GameStyle   domain.GameStyle
	Player1Name string
	Player2Name string
	Difficulty  bot.Difficulty
	LogLevel    string
}

var AppConfig *Config

// LoadEnvFiles loads the first of paths that exists into the environment.
// Variables that are already set are left alone. It returns the file used.
func LoadEnvFiles(paths ...string) (string, error) {
	var lastErr error
	for _, path := range paths {
		if err := godotenv.Load(path); err != nil {
			lastErr = err
			continue
		}
		return path, nil
	}
	if lastErr == nil {
		lastErr = fmt.Errorf("no env file given")
	}
	return "", lastErr
}

func LoadConfig() (*Config, error) {
	style, err := domain.ParseGameStyle(GetEnv("GAME_STYLE", "pvc"))
	if err != nil {
		return nil, fmt.Errorf("GAME_STYLE: %w", err)
	}

	defaultOpponent := "Player 2"
	if style == domain.PlayerVsComputer {
		defaultOpponent = "Computer"
	}

	cfg := &Config{
		Rows:        GetEnvAsInt("BOARD_ROWS", 6),
		Columns:     GetEnvAsInt("BOARD_COLUMNS", 7),
		GameStyle:   style,
		Player1Name: strings.TrimSpace(GetEnv("PLAYER1_NAME", "Player 1")),
		Player2Name: strings.TrimSpace(GetEnv("PLAYER2_NAME", defaultOpponent)),
		Difficulty:  bot.ParseDifficulty(GetEnv("BOT_DIFFICULTY", string(bot.DifficultyMedium))),
		LogLevel:    GetEnv("LOG_LEVEL", "info"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	AppConfig = cfg
	return cfg, nil
}

// Validate checks what the engine expects its caller to have checked.
func (c *Config) Validate() error {
	if !domain.IsValidSize(c.Rows) {
		return fmt.Errorf("rows %d: %w", c.Rows, domain.ErrInvalidSize)
	}
	if !domain.IsValidSize(c.Columns) {
		return fmt.Errorf("columns %d: %w", c.Columns, domain.ErrInvalidSize)
	}
	if c.Player1Name == "" || c.Player2Name == "" {
		return ErrEmptyName
	}
	return nil
}

func (c *Config) SessionOptions() game.Options {
	return game.Options{
		Rows:        c.Rows,
		Columns:     c.Columns,
		Style:       c.GameStyle,
		Player1Name: c.Player1Name,
		Player2Name: c.Player2Name,
		SearchDepth: c.Difficulty.Depth(),
	}
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(strings.TrimSpace(valueStr))
	if err != nil {
		log.Warn().Str("key", key).Str("value", valueStr).Int("default", defaultValue).Msg("invalid integer value, using default")
		return defaultValue
	}
	return value
}
