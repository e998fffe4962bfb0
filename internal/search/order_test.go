package search

import (
	"testing"

	"github.com/arjunnegi0016/Chess-Bot-Project/internal/testutil"
)

func TestMovePriority(t *testing.T) {
	const promotionFEN = "8/4P2k/8/8/8/8/8/K7 w - - 0 1"

	tests := []struct {
		name string
		fen  string
		move string
		want int
	}{
		{"pawn takes queen", testutil.FENHangingQueen, "e4d5", 10*900 - 100},
		{"quiet king move", testutil.FENHangingQueen, "e1f1", 0},
		{"quiet pawn push", testutil.FENHangingQueen, "e4e5", 0},
		{"en passant", testutil.FENEnPassant, "f5e6", 100},
		{"queen promotion", promotionFEN, "e7e8q", 900},
		{"rook promotion", promotionFEN, "e7e8r", 500},
		{"knight promotion", promotionFEN, "e7e8n", 320},
		{"checking move", testutil.FENBackRankMate, "a1a8", CheckBonus},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			pos := mustPosition(t, tt.fen)
			testutil.AssertEqual(t, MovePriority(pos, testutil.MustMove(t, tt.move)), tt.want)
		})
	}
}

func TestOrderMoves_CaptureFirst(t *testing.T) {
	pos := mustPosition(t, testutil.FENHangingQueen)
	ordered := OrderMoves(pos, pos.LegalMoves())
	testutil.AssertEqual(t, ordered[0].String(), "e4d5")
}

func TestOrderMoves_IsPermutation(t *testing.T) {
	for name, fen := range map[string]string{
		"initial":    testutil.FENInitial,
		"kiwipete":   testutil.FENKiwipete,
		"promotions": testutil.FENPromotions,
		"midgame":    testutil.FENMidgameTactics,
	} {
		fen := fen
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			pos := mustPosition(t, fen)
			moves := pos.LegalMoves()
			ordered := OrderMoves(pos, moves)

			testutil.AssertSameElements(t, testutil.MoveStrings(ordered), testutil.MoveStrings(moves))
			for i := 1; i < len(ordered); i++ {
				prev, cur := MovePriority(pos, ordered[i-1]), MovePriority(pos, ordered[i])
				if prev < cur {
					t.Fatalf("%s (%d) ordered before %s (%d)", ordered[i-1], prev, ordered[i], cur)
				}
			}
			testutil.AssertEqual(t, pos.FEN(), fen)
		})
	}
}

func TestOrderMoves_StableForEqualPriorities(t *testing.T) {
	pos := mustPosition(t, testutil.FENInitial)
	moves := pos.LegalMoves()
	testutil.AssertEqual(t, testutil.MoveStrings(OrderMoves(pos, moves)), testutil.MoveStrings(moves))
}
