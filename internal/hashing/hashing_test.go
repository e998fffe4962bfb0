package hashing

import (
	"testing"

	"github.com/arjunnegi0016/Chess-Bot-Project/internal/chess"
)

func initialBoard() *chess.Board {
	b := chess.NewBoard()
	b.SetupInitialPosition()
	return b
}

func TestZobristConsistency(t *testing.T) {
	hash1 := Zobrist(initialBoard())
	hash2 := Zobrist(initialBoard())

	if hash1 != hash2 {
		t.Errorf("Identical boards produced different keys: %x != %x", hash1, hash2)
	}
}

func TestZobristDistinguishesState(t *testing.T) {
	base := Zobrist(initialBoard())

	tests := []struct {
		name   string
		modify func(b *chess.Board)
	}{
		{"pawn moved", func(b *chess.Board) {
			b.Set('e', '2', chess.Empty)
			b.Set('e', '4', chess.W(chess.Pawn))
		}},
		{"side to move", func(b *chess.Board) { b.ToMove = chess.Black }},
		{"castling right lost", func(b *chess.Board) { b.BQueenCastle = 0 }},
		{"en passant square", func(b *chess.Board) {
			b.EnPassant, b.EPCol, b.EPRank = true, 'd', '6'
		}},
		{"piece colour", func(b *chess.Board) { b.Set('a', '1', chess.B(chess.Rook)) }},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b := initialBoard()
			tt.modify(b)
			if Zobrist(b) == base {
				t.Errorf("modified board has the same key as the initial position")
			}
		})
	}
}

func TestZobristIgnoresClocks(t *testing.T) {
	b := initialBoard()
	b.HalfmoveClock = 37
	b.MoveNumber = 60
	if Zobrist(b) != Zobrist(initialBoard()) {
		t.Error("clock fields should not change the key")
	}
}

func TestRepetitionTable(t *testing.T) {
	table := NewRepetitionTable()

	if got := table.Add(1); got != 1 {
		t.Errorf("Add(1) = %d, want 1", got)
	}
	table.Add(2)
	if got := table.Add(1); got != 2 {
		t.Errorf("second Add(1) = %d, want 2", got)
	}
	if got := table.UniqueCount(); got != 2 {
		t.Errorf("UniqueCount() = %d, want 2", got)
	}
	if got := table.MaxCount(); got != 2 {
		t.Errorf("MaxCount() = %d, want 2", got)
	}

	table.Remove(1)
	if got := table.Count(1); got != 1 {
		t.Errorf("Count(1) after Remove = %d, want 1", got)
	}
	table.Remove(2)
	if got := table.Count(2); got != 0 {
		t.Errorf("Count(2) after Remove = %d, want 0", got)
	}
	if got := table.UniqueCount(); got != 1 {
		t.Errorf("UniqueCount() after Remove = %d, want 1", got)
	}

	// Removing an unknown key is a no-op.
	table.Remove(99)
	if got := table.UniqueCount(); got != 1 {
		t.Errorf("UniqueCount() after removing unknown key = %d, want 1", got)
	}
}

func TestRepetitionTableCloneAndReset(t *testing.T) {
	table := NewRepetitionTable()
	table.Add(7)
	table.Add(7)

	clone := table.Clone()
	table.Reset()

	if table.Count(7) != 0 || table.MaxCount() != 0 {
		t.Errorf("Reset left count %d, max %d", table.Count(7), table.MaxCount())
	}
	if clone.Count(7) != 2 {
		t.Errorf("clone Count(7) = %d, want 2", clone.Count(7))
	}
}
