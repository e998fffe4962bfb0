package config

import (
	"fmt"
	"strings"

	"github.com/arjunnegi0016/Chess-Bot-Project/internal/chess"
	"github.com/arjunnegi0016/Chess-Bot-Project/internal/engine"
	"github.com/arjunnegi0016/Chess-Bot-Project/internal/errors"
	"github.com/arjunnegi0016/Chess-Bot-Project/internal/search"
)

// GameConfig holds settings for a game against the engine.
type GameConfig struct {
	// Difficulty is the engine tier: easy, medium or hard
	Difficulty string

	// HumanColour is the side the human plays: white or black
	HumanColour string

	// StartFEN is the position the game starts from
	StartFEN string

	// ShowBoard prints the board after every move
	ShowBoard bool
}

// NewGameConfig creates a GameConfig with default values.
func NewGameConfig() *GameConfig {
	return &GameConfig{
		Difficulty:  string(search.Medium),
		HumanColour: "white",
		StartFEN:    engine.InitialFEN,
		ShowBoard:   true,
	}
}

// Validate checks that the game configuration is valid.
func (g *GameConfig) Validate() error {
	if _, err := search.ParseDifficulty(g.Difficulty); err != nil {
		return fmt.Errorf("game difficulty: %v: %w", err, errors.ErrInvalidConfig)
	}
	if _, err := ParseColour(g.HumanColour); err != nil {
		return err
	}
	if _, err := engine.NewBoardFromFEN(g.StartFEN); err != nil {
		return fmt.Errorf("start position: %v: %w", err, errors.ErrInvalidConfig)
	}
	return nil
}

// Human returns the colour the human plays. It assumes Validate passed.
func (g *GameConfig) Human() chess.Colour {
	c, _ := ParseColour(g.HumanColour)
	return c
}

// ParseColour parses "white"/"w" or "black"/"b", ignoring case.
func ParseColour(s string) (chess.Colour, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "white", "w":
		return chess.White, nil
	case "black", "b":
		return chess.Black, nil
	}
	return chess.White, fmt.Errorf("colour %q: %w", s, errors.ErrInvalidConfig)
}
