package testutil

import (
	"testing"

	"github.com/arjunnegi0016/Chess-Bot-Project/internal/chess"
)

// FEN fixtures shared by the rules, search and server tests.
const (
	FENInitial = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

	// FENKiwipete exercises castling, pins, en passant and promotions.
	FENKiwipete = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

	// FENRookEndgame is a sparse endgame with checks and en passant tricks.
	FENRookEndgame = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"

	// FENPromotions has promotions with and without capture for both sides.
	FENPromotions = "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1"

	// FENMidgameTactics is a sharp middlegame with a pawn on the seventh.
	FENMidgameTactics = "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8"

	// FENEnPassant has an en passant capture available on e6.
	FENEnPassant = "rnbqkbnr/pppp1ppp/8/4pP2/8/8/PPPPP1PP/RNBQKBNR w KQkq e6 0 3"

	// FENBackRankMate is a mate in one: Ra1-a8.
	FENBackRankMate = "6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1"

	// FENFoolsMate has White checkmated.
	FENFoolsMate = "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3"

	// FENStalemate has Black to move and stalemated.
	FENStalemate = "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1"

	// FENBareKings has only the two kings.
	FENBareKings = "8/8/4k3/8/8/3K4/8/8 w - - 0 1"

	// FENExtraQueen is the initial position with White's d-pawn replaced by a second queen.
	FENExtraQueen = "rnbqkbnr/pppppppp/8/8/8/8/PPPQPPPP/RNBQKBNR w KQkq - 0 1"

	// FENHangingQueen lets the e4 pawn take an undefended queen.
	FENHangingQueen = "4k3/8/8/3q4/4P3/8/8/4K3 w - - 0 1"
)

// PerftFixtures maps FENs to known leaf counts per depth, starting at depth 1.
var PerftFixtures = map[string][]int{
	FENInitial:        {20, 400, 8902},
	FENKiwipete:       {48, 2039},
	FENRookEndgame:    {14, 191, 2812},
	FENPromotions:     {6, 264},
	FENMidgameTactics: {44, 1486},
}

// MustMove parses coordinate move text, failing the test when malformed.
func MustMove(t testing.TB, text string) chess.Move {
	t.Helper()
	m, ok := chess.ParseMoveText(text)
	if !ok {
		t.Fatalf("malformed move text %q", text)
	}
	return m
}

// MoveStrings converts moves to coordinate notation.
func MoveStrings(moves []chess.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	return out
}
