package config

import (
	"fmt"
	"runtime"

	"github.com/arjunnegi0016/Chess-Bot-Project/internal/errors"
	"github.com/arjunnegi0016/Chess-Bot-Project/internal/search"
)

// SelfPlayConfig holds settings for engine-versus-engine matches.
type SelfPlayConfig struct {
	// Games is the number of games to play
	Games int

	// Workers is the number of games played in parallel
	Workers int

	// PlyLimit adjudicates a game as drawn after this many plies (0 = no limit)
	PlyLimit int

	// White and Black are the tiers playing each side
	White string
	Black string

	// PGNPath is the file the games are written to ("" = program output)
	PGNPath string
}

// NewSelfPlayConfig creates a SelfPlayConfig with default values.
func NewSelfPlayConfig() *SelfPlayConfig {
	return &SelfPlayConfig{
		Games:    1,
		Workers:  runtime.NumCPU(),
		PlyLimit: 200,
		White:    string(search.Easy),
		Black:    string(search.Medium),
	}
}

// Validate checks that the self-play configuration is valid.
func (s *SelfPlayConfig) Validate() error {
	if s.Games < 1 {
		return fmt.Errorf("self-play games %d must be at least 1: %w", s.Games, errors.ErrInvalidConfig)
	}
	if s.Workers < 1 {
		return fmt.Errorf("self-play workers %d must be at least 1: %w", s.Workers, errors.ErrInvalidConfig)
	}
	if s.PlyLimit < 0 {
		return fmt.Errorf("ply limit %d is negative: %w", s.PlyLimit, errors.ErrInvalidConfig)
	}
	for _, tier := range []string{s.White, s.Black} {
		if _, err := search.ParseDifficulty(tier); err != nil {
			return fmt.Errorf("self-play tier: %v: %w", err, errors.ErrInvalidConfig)
		}
	}
	return nil
}
