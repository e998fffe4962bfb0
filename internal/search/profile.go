// Package search selects moves: a negamax alpha-beta search over the rules
// engine, a static evaluator, a move orderer, and a bounded LRU cache of
// position scores, parameterised by a difficulty profile.
package search

import (
	"fmt"
	"strings"

	"github.com/arjunnegi0016/Chess-Bot-Project/internal/errors"
)

// Difficulty names a strength tier.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// String returns the tier name.
func (d Difficulty) String() string {
	return string(d)
}

// Title returns the tier name with a leading capital, e.g. "Medium".
func (d Difficulty) Title() string {
	if d == "" {
		return ""
	}
	return strings.ToUpper(string(d[:1])) + string(d[1:])
}

// Profile is the immutable configuration of one engine: how deep it
// searches, how many positions it caches and how often it skips the
// search in favour of a random legal move.
type Profile struct {
	Name                  Difficulty
	MaxDepth              int
	CacheCapacity         int
	RandomMoveProbability float64
}

var builtinProfiles = []Profile{
	{Name: Easy, MaxDepth: 2, CacheCapacity: 10_000, RandomMoveProbability: 0.2},
	{Name: Medium, MaxDepth: 3, CacheCapacity: 100_000},
	{Name: Hard, MaxDepth: 4, CacheCapacity: 1_000_000},
}

// Profiles returns the built-in tiers from weakest to strongest.
func Profiles() []Profile {
	return append([]Profile(nil), builtinProfiles...)
}

// ParseDifficulty parses a tier name, ignoring case and surrounding space.
func ParseDifficulty(name string) (Difficulty, error) {
	d := Difficulty(strings.ToLower(strings.TrimSpace(name)))
	for _, p := range builtinProfiles {
		if p.Name == d {
			return d, nil
		}
	}
	return "", errors.Wrapf(errors.ErrUnknownDifficulty, "difficulty %q", name)
}

// ProfileFor returns the built-in profile for a tier name.
func ProfileFor(name string) (Profile, error) {
	d, err := ParseDifficulty(name)
	if err != nil {
		return Profile{}, err
	}
	for _, p := range builtinProfiles {
		if p.Name == d {
			return p, nil
		}
	}
	return Profile{}, errors.Wrapf(errors.ErrUnknownDifficulty, "difficulty %q", name)
}

// Validate checks that the profile can drive a search.
func (p Profile) Validate() error {
	switch {
	case p.MaxDepth < 1:
		return fmt.Errorf("max depth %d must be at least 1: %w", p.MaxDepth, errors.ErrInvalidConfig)
	case p.CacheCapacity < 1:
		return fmt.Errorf("cache capacity %d must be at least 1: %w", p.CacheCapacity, errors.ErrInvalidConfig)
	case p.RandomMoveProbability < 0 || p.RandomMoveProbability > 1:
		return fmt.Errorf("random move probability %g outside [0, 1]: %w", p.RandomMoveProbability, errors.ErrInvalidConfig)
	}
	return nil
}
