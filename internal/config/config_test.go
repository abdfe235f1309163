package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fourinarow/core/internal/domain"
	"github.com/fourinarow/core/internal/service/bot"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.Disabled)
	os.Exit(m.Run())
}

var configKeys = []string{
	"BOARD_ROWS", "BOARD_COLUMNS", "GAME_STYLE", "PLAYER1_NAME",
	"PLAYER2_NAME", "BOT_DIFFICULTY", "LOG_LEVEL",
}

// clearEnv blanks every config key; GetEnv treats blank as unset.
func clearEnv(t *testing.T) {
	for _, key := range configKeys {
		t.Setenv(key, "")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, 6, cfg.Rows)
	require.Equal(t, 7, cfg.Columns)
	require.Equal(t, domain.PlayerVsComputer, cfg.GameStyle)
	require.Equal(t, "Player 1", cfg.Player1Name)
	require.Equal(t, "Computer", cfg.Player2Name)
	require.Equal(t, bot.DifficultyMedium, cfg.Difficulty)
	require.Equal(t, "info", cfg.LogLevel)
	require.Same(t, cfg, AppConfig)
}

func TestLoadConfigFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("BOARD_ROWS", "4")
	t.Setenv("BOARD_COLUMNS", " 8 ")
	t.Setenv("GAME_STYLE", "PVP")
	t.Setenv("PLAYER1_NAME", "Yarden")
	t.Setenv("BOT_DIFFICULTY", "hard")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, 4, cfg.Rows)
	require.Equal(t, 8, cfg.Columns)
	require.Equal(t, domain.PlayerVsPlayer, cfg.GameStyle)
	require.Equal(t, "Yarden", cfg.Player1Name)
	require.Equal(t, "Player 2", cfg.Player2Name)

	opts := cfg.SessionOptions()
	require.Equal(t, 4, opts.Rows)
	require.Equal(t, 8, opts.Columns)
	require.Equal(t, domain.PlayerVsPlayer, opts.Style)
	require.Equal(t, bot.DeepDepth, opts.SearchDepth)
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		err  error
	}{
		{"too few rows", map[string]string{"BOARD_ROWS": "3"}, domain.ErrInvalidSize},
		{"too many columns", map[string]string{"BOARD_COLUMNS": "9"}, domain.ErrInvalidSize},
		{"unknown style", map[string]string{"GAME_STYLE": "online"}, domain.ErrInvalidGameStyle},
		{"blank name", map[string]string{"PLAYER1_NAME": "   "}, ErrEmptyName},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			for key, value := range tc.env {
				t.Setenv(key, value)
			}

			_, err := LoadConfig()
			require.ErrorIs(t, err, tc.err)
		})
	}
}

func TestGetEnvAsIntFallsBack(t *testing.T) {
	t.Setenv("BOARD_ROWS", "six")
	require.Equal(t, 6, GetEnvAsInt("BOARD_ROWS", 6))
}

func TestLoadEnvFiles(t *testing.T) {
	const key = "FOURINAROW_TEST_PLAYER"
	t.Cleanup(func() { os.Unsetenv(key) })

	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte(key+"=Yuval\n"), 0o600))

	used, err := LoadEnvFiles(filepath.Join(dir, "missing.env"), path)
	require.NoError(t, err)
	require.Equal(t, path, used)
	require.Equal(t, "Yuval", os.Getenv(key))

	_, err = LoadEnvFiles(filepath.Join(dir, "missing.env"))
	require.Error(t, err)
}
