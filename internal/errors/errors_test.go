package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors_Distinct verifies that no two sentinels match each other.
func TestSentinelErrors_Distinct(t *testing.T) {
	sentinels := map[string]error{
		"ErrInvalidFEN":        ErrInvalidFEN,
		"ErrIllegalMove":       ErrIllegalMove,
		"ErrNoLegalMoves":      ErrNoLegalMoves,
		"ErrEmptyHistory":      ErrEmptyHistory,
		"ErrUnknownDifficulty": ErrUnknownDifficulty,
		"ErrInvalidConfig":     ErrInvalidConfig,
		"ErrSearchFailed":      ErrSearchFailed,
		"ErrGameOver":          ErrGameOver,
	}

	for name, err := range sentinels {
		for otherName, other := range sentinels {
			if name == otherName {
				continue
			}
			if errors.Is(err, other) {
				t.Errorf("errors.Is(%s, %s) = true, want false", name, otherName)
			}
		}
	}
}

// TestSentinelErrors_Wrapping verifies wrapped sentinel errors can still be detected
func TestSentinelErrors_Wrapping(t *testing.T) {
	wrapped := fmt.Errorf("failed to load position: %w", ErrInvalidFEN)
	if !errors.Is(wrapped, ErrInvalidFEN) {
		t.Errorf("errors.Is(wrapped, ErrInvalidFEN) = false, want true")
	}
	if !Is(wrapped, ErrInvalidFEN) {
		t.Errorf("Is(wrapped, ErrInvalidFEN) = false, want true")
	}
}

func TestPositionError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *PositionError
		contains []string
		want     string
	}{
		{
			name: "full context",
			err: &PositionError{
				Err:  ErrIllegalMove,
				FEN:  "8/8/8/8/8/8/8/K6k w - - 0 1",
				Ply:  12,
				Move: "e2e5",
			},
			contains: []string{"K6k", "ply 12", "e2e5", "illegal move"},
		},
		{
			name:     "error only",
			err:      &PositionError{Err: ErrNoLegalMoves},
			want:     "no legal moves",
			contains: []string{"no legal moves"},
		},
		{
			name:     "empty",
			err:      &PositionError{},
			want:     "position error",
			contains: []string{"position error"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			msg := tt.err.Error()
			if tt.want != "" && msg != tt.want {
				t.Errorf("PositionError.Error() = %q, want %q", msg, tt.want)
			}
			for _, s := range tt.contains {
				if !containsIgnoreCase(msg, s) {
					t.Errorf("PositionError.Error() = %q, should contain %q", msg, s)
				}
			}
		})
	}
}

// TestPositionError_As verifies that errors.As works through further wrapping
func TestPositionError_As(t *testing.T) {
	posErr := &PositionError{
		Err:  ErrIllegalMove,
		Ply:  24,
		Move: "e1c1",
	}

	wrapped := fmt.Errorf("playing move: %w", posErr)

	var extracted *PositionError
	if !As(wrapped, &extracted) {
		t.Fatal("As() could not extract PositionError")
	}
	if extracted.Ply != 24 {
		t.Errorf("extracted.Ply = %d, want 24", extracted.Ply)
	}
	if extracted.Move != "e1c1" {
		t.Errorf("extracted.Move = %q, want %q", extracted.Move, "e1c1")
	}
	if !errors.Is(wrapped, ErrIllegalMove) {
		t.Error("errors.Is(wrapped, ErrIllegalMove) = false, want true")
	}
}

// TestWrap verifies the Wrap helper function
func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrInvalidFEN, "parsing FEN string")

	if !errors.Is(wrapped, ErrInvalidFEN) {
		t.Error("Wrap should preserve the underlying error")
	}
	if !containsIgnoreCase(wrapped.Error(), "parsing FEN string") {
		t.Errorf("Wrap should include context, got %q", wrapped.Error())
	}
	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

// TestWrapf verifies the Wrapf helper function
func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrUnknownDifficulty, "difficulty %q", "expert")

	if !errors.Is(wrapped, ErrUnknownDifficulty) {
		t.Error("Wrapf should preserve the underlying error")
	}
	if !containsIgnoreCase(wrapped.Error(), `"expert"`) {
		t.Errorf("Wrapf should include formatted context, got %q", wrapped.Error())
	}
}

// containsIgnoreCase checks if s contains substr (case-insensitive).
func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
