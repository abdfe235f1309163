package main

import (
	"os"
	"time"

	"github.com/fourinarow/core/internal/config"
	"github.com/fourinarow/core/internal/service/game"
	"github.com/fourinarow/core/internal/transport/console"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	if path, err := config.LoadEnvFiles(".env", "../.env"); err != nil {
		log.Debug().Msg("No .env file found")
	} else {
		log.Debug().Str("path", path).Msg("env file loaded")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Warn().Str("level", cfg.LogLevel).Msg("unknown log level, using info")
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	session, err := game.NewSession(cfg.SessionOptions())
	if err != nil {
		log.Fatal().Err(err).Msg("could not start session")
	}
	driver := console.NewDriver(session, os.Stdin, os.Stdout)
	if err := driver.Run(); err != nil {
		log.Fatal().Err(err).Str("session", session.ID()).Msg("match aborted")
	}

	log.Info().
		Str("session", session.ID()).
		Str("player1", session.Player1().Name()).
		Int("score1", session.Player1().Score()).
		Str("player2", session.Player2().Name()).
		Int("score2", session.Player2().Score()).
		Msg("match finished")
}
