package config

import (
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/arjunnegi0016/Chess-Bot-Project/internal/errors"
)

// Environment variables read by LoadEnv.
const (
	EnvDifficulty      = "CHESSBOT_DIFFICULTY"
	EnvHumanColour     = "CHESSBOT_HUMAN_COLOUR"
	EnvStartFEN        = "CHESSBOT_START_FEN"
	EnvLogLevel        = "CHESSBOT_LOG_LEVEL"
	EnvLogFormat       = "CHESSBOT_LOG_FORMAT"
	EnvHTTPAddr        = "CHESSBOT_HTTP_ADDR"
	EnvHTTPTimeout     = "CHESSBOT_HTTP_TIMEOUT"
	EnvMaxDifficulty   = "CHESSBOT_MAX_DIFFICULTY"
	EnvSelfPlayGames   = "CHESSBOT_SELFPLAY_GAMES"
	EnvSelfPlayWorkers = "CHESSBOT_SELFPLAY_WORKERS"
	EnvSelfPlayPlies   = "CHESSBOT_SELFPLAY_PLY_LIMIT"
	EnvSelfPlayWhite   = "CHESSBOT_SELFPLAY_WHITE"
	EnvSelfPlayBlack   = "CHESSBOT_SELFPLAY_BLACK"
	EnvSelfPlayPGN     = "CHESSBOT_SELFPLAY_PGN"
)

// LoadEnv loads the given dotenv files (".env" when none are named) into
// the process environment, then applies CHESSBOT_* variables to c.
// Missing dotenv files are ignored; variables already set in the
// environment take precedence over the files.
func (c *Config) LoadEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return errors.Wrap(err, "loading dotenv")
	}
	return c.ApplyEnv(os.LookupEnv)
}

// ApplyEnv applies CHESSBOT_* variables found through lookup to c.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	text := map[string]*string{
		EnvDifficulty:    &c.Game.Difficulty,
		EnvHumanColour:   &c.Game.HumanColour,
		EnvStartFEN:      &c.Game.StartFEN,
		EnvLogLevel:      &c.Log.Level,
		EnvLogFormat:     &c.Log.Format,
		EnvHTTPAddr:      &c.Server.Addr,
		EnvMaxDifficulty: &c.Server.MaxDifficulty,
		EnvSelfPlayWhite: &c.SelfPlay.White,
		EnvSelfPlayBlack: &c.SelfPlay.Black,
		EnvSelfPlayPGN:   &c.SelfPlay.PGNPath,
	}
	for key, field := range text {
		if v, ok := lookup(key); ok {
			*field = v
		}
	}

	ints := map[string]*int{
		EnvSelfPlayGames:   &c.SelfPlay.Games,
		EnvSelfPlayWorkers: &c.SelfPlay.Workers,
		EnvSelfPlayPlies:   &c.SelfPlay.PlyLimit,
	}
	for key, field := range ints {
		v, ok := lookup(key)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", key, v, errors.ErrInvalidConfig)
		}
		*field = n
	}

	if v, ok := lookup(EnvHTTPTimeout); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvHTTPTimeout, v, errors.ErrInvalidConfig)
		}
		c.Server.RequestTimeout = d
	}
	return nil
}
