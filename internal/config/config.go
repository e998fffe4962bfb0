// Package config provides configuration for the chess bot: engine and game
// settings, logging, the HTTP server and self-play matches.
package config

import (
	"io"
	"os"
)

// Config holds all program configuration. Sub-configs group related
// settings; each has a constructor with defaults and a Validate method.
type Config struct {
	Game     *GameConfig
	Log      *LogConfig
	Server   *ServerConfig
	SelfPlay *SelfPlayConfig

	// Output receives boards, moves and PGN text.
	Output io.Writer
	// LogFile receives log records.
	LogFile io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Game:     NewGameConfig(),
		Log:      NewLogConfig(),
		Server:   NewServerConfig(),
		SelfPlay: NewSelfPlayConfig(),
		Output:   os.Stdout,
		LogFile:  os.Stderr,
	}
}

// SetOutput sets the writer for program output.
func (c *Config) SetOutput(w io.Writer) {
	c.Output = w
}

// Validate checks every sub-config and returns the first problem found.
func (c *Config) Validate() error {
	validators := []interface{ Validate() error }{c.Game, c.Log, c.Server, c.SelfPlay}
	for _, v := range validators {
		if err := v.Validate(); err != nil {
			return err
		}
	}
	return nil
}
