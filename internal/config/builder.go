package config

import (
	"io"
	"time"
)

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// From starts the builder from an existing config instead of defaults.
func From(cfg *Config) *ConfigBuilder {
	return &ConfigBuilder{cfg: cfg}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithDifficulty sets the engine tier for games against a human.
func (b *ConfigBuilder) WithDifficulty(tier string) *ConfigBuilder {
	b.cfg.Game.Difficulty = tier
	return b
}

// WithHumanColour sets the side the human plays.
func (b *ConfigBuilder) WithHumanColour(colour string) *ConfigBuilder {
	b.cfg.Game.HumanColour = colour
	return b
}

// WithStartFEN sets the starting position.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.Game.StartFEN = fen
	return b
}

// WithLogLevel sets the log level.
func (b *ConfigBuilder) WithLogLevel(level string) *ConfigBuilder {
	b.cfg.Log.Level = level
	return b
}

// WithLogFormat sets the log format.
func (b *ConfigBuilder) WithLogFormat(format string) *ConfigBuilder {
	b.cfg.Log.Format = format
	return b
}

// WithServerAddr sets the HTTP listen address.
func (b *ConfigBuilder) WithServerAddr(addr string) *ConfigBuilder {
	b.cfg.Server.Addr = addr
	return b
}

// WithRequestTimeout sets the HTTP move search deadline.
func (b *ConfigBuilder) WithRequestTimeout(d time.Duration) *ConfigBuilder {
	b.cfg.Server.RequestTimeout = d
	return b
}

// WithMaxDifficulty sets the strongest tier HTTP clients may request.
func (b *ConfigBuilder) WithMaxDifficulty(tier string) *ConfigBuilder {
	b.cfg.Server.MaxDifficulty = tier
	return b
}

// WithSelfPlay sets the number of games, parallel workers and tiers.
func (b *ConfigBuilder) WithSelfPlay(games, workers int, white, black string) *ConfigBuilder {
	b.cfg.SelfPlay.Games = games
	b.cfg.SelfPlay.Workers = workers
	b.cfg.SelfPlay.White = white
	b.cfg.SelfPlay.Black = black
	return b
}

// WithPlyLimit sets the self-play adjudication limit.
func (b *ConfigBuilder) WithPlyLimit(plies int) *ConfigBuilder {
	b.cfg.SelfPlay.PlyLimit = plies
	return b
}

// WithPGNPath sets the self-play PGN file.
func (b *ConfigBuilder) WithPGNPath(path string) *ConfigBuilder {
	b.cfg.SelfPlay.PGNPath = path
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.Output = w
	return b
}
