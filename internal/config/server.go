package config

import (
	"fmt"
	"time"

	"github.com/arjunnegi0016/Chess-Bot-Project/internal/errors"
	"github.com/arjunnegi0016/Chess-Bot-Project/internal/search"
)

// ServerConfig holds settings for the HTTP API.
type ServerConfig struct {
	// Addr is the listen address, e.g. ":8080"
	Addr string

	// RequestTimeout bounds the time a move search may take
	RequestTimeout time.Duration

	// ShutdownTimeout bounds graceful shutdown
	ShutdownTimeout time.Duration

	// MaxDifficulty is the strongest tier clients may request
	MaxDifficulty string
}

// NewServerConfig creates a ServerConfig with default values.
func NewServerConfig() *ServerConfig {
	return &ServerConfig{
		Addr:            ":8080",
		RequestTimeout:  10 * time.Second,
		ShutdownTimeout: 5 * time.Second,
		MaxDifficulty:   "hard",
	}
}

// Validate checks that the server configuration is valid.
func (s *ServerConfig) Validate() error {
	if s.Addr == "" {
		return fmt.Errorf("empty listen address: %w", errors.ErrInvalidConfig)
	}
	if s.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout %v must be positive: %w", s.RequestTimeout, errors.ErrInvalidConfig)
	}
	if _, err := search.ParseDifficulty(s.MaxDifficulty); err != nil {
		return fmt.Errorf("server max difficulty: %v: %w", err, errors.ErrInvalidConfig)
	}
	if s.ShutdownTimeout < 0 {
		return fmt.Errorf("shutdown timeout %v is negative: %w", s.ShutdownTimeout, errors.ErrInvalidConfig)
	}
	return nil
}
