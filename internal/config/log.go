package config

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/arjunnegi0016/Chess-Bot-Project/internal/errors"
)

// Log output formats.
const (
	LogFormatConsole = "console"
	LogFormatJSON    = "json"
)

// LogConfig holds settings for structured logging.
type LogConfig struct {
	// Level is a zerolog level name: trace, debug, info, warn, error
	Level string

	// Format is "console" for human readable output or "json"
	Format string
}

// NewLogConfig creates a LogConfig with default values.
func NewLogConfig() *LogConfig {
	return &LogConfig{
		Level:  zerolog.InfoLevel.String(),
		Format: LogFormatConsole,
	}
}

// Validate checks that the level and format are known.
func (l *LogConfig) Validate() error {
	if _, err := zerolog.ParseLevel(strings.ToLower(l.Level)); err != nil {
		return fmt.Errorf("log level %q: %w", l.Level, errors.ErrInvalidConfig)
	}
	switch l.Format {
	case LogFormatConsole, LogFormatJSON:
		return nil
	}
	return fmt.Errorf("log format %q: %w", l.Format, errors.ErrInvalidConfig)
}

// NewLogger builds a logger writing to w at the configured level.
func NewLogger(l *LogConfig, w io.Writer) (zerolog.Logger, error) {
	if err := l.Validate(); err != nil {
		return zerolog.Nop(), err
	}
	level, _ := zerolog.ParseLevel(strings.ToLower(l.Level))

	out := w
	if l.Format == LogFormatConsole {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger(), nil
}
