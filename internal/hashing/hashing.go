// Package hashing provides Zobrist position keys and repetition tracking.
package hashing

import (
	"math/rand"

	"github.com/arjunnegi0016/Chess-Bot-Project/internal/chess"
)

// Zobrist key tables, filled from a fixed seed so a position always maps to
// the same key across runs.
var (
	zobristPieces     [2][chess.NumPieceValues][64]uint64
	zobristCastling   [4]uint64
	zobristEnPassant  [8]uint64
	zobristSideToMove uint64
)

func init() {
	rng := rand.New(rand.NewSource(0x1234567890ABCDEF))

	for colour := 0; colour < 2; colour++ {
		for piece := chess.Pawn; piece <= chess.King; piece++ {
			for sq := 0; sq < 64; sq++ {
				zobristPieces[colour][piece][sq] = rng.Uint64()
			}
		}
	}
	for i := range zobristCastling {
		zobristCastling[i] = rng.Uint64()
	}
	for file := range zobristEnPassant {
		zobristEnPassant[file] = rng.Uint64()
	}
	zobristSideToMove = rng.Uint64()
}

// Zobrist computes the Zobrist key of a board: piece placement, side to
// move, castling rights and en passant file. Clocks are not part of the key.
func Zobrist(board *chess.Board) uint64 {
	var h uint64

	for sq := chess.Square(0); sq < 64; sq++ {
		piece := board.PieceAt(sq)
		if !chess.IsPiece(piece) {
			continue
		}
		h ^= zobristPieces[chess.ExtractColour(piece)][chess.ExtractPiece(piece)][sq]
	}

	if board.WKingCastle != 0 {
		h ^= zobristCastling[0]
	}
	if board.WQueenCastle != 0 {
		h ^= zobristCastling[1]
	}
	if board.BKingCastle != 0 {
		h ^= zobristCastling[2]
	}
	if board.BQueenCastle != 0 {
		h ^= zobristCastling[3]
	}

	if ep := board.EnPassantSquare(); ep != chess.NoSquare {
		h ^= zobristEnPassant[ep.File()]
	}

	if board.ToMove == chess.Black {
		h ^= zobristSideToMove
	}

	return h
}

// RepetitionTable counts how often each position key has occurred along
// the current line of play. Keys are removed again when moves are taken back.
type RepetitionTable struct {
	counts map[uint64]int
	// maxCount is the highest count any key has reached since the last Reset.
	maxCount int
}

// NewRepetitionTable creates an empty repetition table.
func NewRepetitionTable() *RepetitionTable {
	return &RepetitionTable{counts: make(map[uint64]int)}
}

// Add records one occurrence of key and returns its new count.
func (r *RepetitionTable) Add(key uint64) int {
	r.counts[key]++
	n := r.counts[key]
	if n > r.maxCount {
		r.maxCount = n
	}
	return n
}

// Remove takes back one occurrence of key.
func (r *RepetitionTable) Remove(key uint64) {
	n, ok := r.counts[key]
	if !ok {
		return
	}
	if n <= 1 {
		delete(r.counts, key)
		return
	}
	r.counts[key] = n - 1
}

// Count returns how many times key has occurred.
func (r *RepetitionTable) Count(key uint64) int {
	return r.counts[key]
}

// UniqueCount returns the number of distinct positions recorded.
func (r *RepetitionTable) UniqueCount() int {
	return len(r.counts)
}

// MaxCount returns the highest occurrence count reached since the last Reset.
func (r *RepetitionTable) MaxCount() int {
	return r.maxCount
}

// Clone returns an independent copy of the table.
func (r *RepetitionTable) Clone() *RepetitionTable {
	c := &RepetitionTable{
		counts:   make(map[uint64]int, len(r.counts)),
		maxCount: r.maxCount,
	}
	for k, v := range r.counts {
		c.counts[k] = v
	}
	return c
}

// Reset clears the table.
func (r *RepetitionTable) Reset() {
	r.counts = make(map[uint64]int)
	r.maxCount = 0
}
