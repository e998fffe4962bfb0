package engine

import (
	"fmt"
	"testing"

	notnil "github.com/notnil/chess"

	"github.com/arjunnegi0016/Chess-Bot-Project/internal/chess"
	"github.com/arjunnegi0016/Chess-Bot-Project/internal/testutil"
)

// perft counts the leaf nodes of the legal move tree to the given depth.
func perft(p *Position, depth int) int {
	moves := p.LegalMoves()
	if depth == 1 {
		return len(moves)
	}
	nodes := 0
	for _, m := range moves {
		p.Push(m)
		nodes += perft(p, depth-1)
		if _, err := p.Pop(); err != nil {
			panic(err)
		}
	}
	return nodes
}

func TestPerft(t *testing.T) {
	for fen, counts := range testutil.PerftFixtures {
		fen, counts := fen, counts
		for i, want := range counts {
			want := want
			depth := i + 1
			t.Run(fmt.Sprintf("%s/depth%d", fen, depth), func(t *testing.T) {
				t.Parallel()
				if testing.Short() && want > 3000 {
					t.Skip("skipping deep perft in short mode")
				}
				p, err := NewPosition(fen)
				testutil.AssertNoError(t, err)
				if got := perft(p, depth); got != want {
					t.Errorf("perft(%d) = %d, want %d", depth, got, want)
				}
				testutil.AssertEqual(t, p.FEN(), fen, "position not restored after perft")
			})
		}
	}
}

// TestLegalMovesMatchReferenceGenerator compares the generated moves with
// the notnil/chess move generator on a set of tricky positions.
func TestLegalMovesMatchReferenceGenerator(t *testing.T) {
	fens := []string{
		testutil.FENInitial,
		testutil.FENKiwipete,
		testutil.FENRookEndgame,
		testutil.FENPromotions,
		testutil.FENMidgameTactics,
		testutil.FENEnPassant,
		testutil.FENBackRankMate,
		testutil.FENHangingQueen,
		"r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1",
		"4k3/8/8/8/8/8/4r3/R3K2R w KQ - 0 1",
	}

	for _, fen := range fens {
		fen := fen
		t.Run(fen, func(t *testing.T) {
			t.Parallel()
			board, err := NewBoardFromFEN(fen)
			testutil.AssertNoError(t, err)
			got := testutil.MoveStrings(LegalMoves(board))

			opt, err := notnil.FEN(fen)
			testutil.AssertNoError(t, err)
			game := notnil.NewGame(opt)
			var want []string
			for _, m := range game.ValidMoves() {
				want = append(want, notnil.UCINotation{}.Encode(nil, m))
			}

			testutil.AssertSameElements(t, got, want)
		})
	}
}

func TestLegalMoves_PromotionOrder(t *testing.T) {
	board, err := NewBoardFromFEN("8/P6k/8/8/8/8/8/K7 w - - 0 1")
	testutil.AssertNoError(t, err)

	var promos []string
	for _, m := range LegalMoves(board) {
		if m.IsPromotion() {
			promos = append(promos, m.String())
		}
	}
	testutil.AssertEqual(t, promos, []string{"a7a8q", "a7a8r", "a7a8b", "a7a8n"})
}

func TestLegalMoves_NoKingCaptures(t *testing.T) {
	// The queen gives check but can never land on the king's square.
	board, err := NewBoardFromFEN("4k3/8/8/8/8/8/8/4QK2 b - - 0 1")
	testutil.AssertNoError(t, err)
	board.ToMove = chess.White
	for _, m := range LegalMoves(board) {
		if m.To.String() == "e8" {
			t.Errorf("generated king capture %s", m)
		}
	}
}

func TestLegalMoves_CastlingBlockedByAttack(t *testing.T) {
	tests := []struct {
		name     string
		fen      string
		castle   string
		expected bool
	}{
		{"both sides free", "4k3/8/8/8/8/8/8/R3K2R w KQ - 0 1", "e1g1", true},
		{"queenside free", "4k3/8/8/8/8/8/8/R3K2R w KQ - 0 1", "e1c1", true},
		{"transit square attacked", "4k3/8/8/8/8/8/5r2/R3K2R w KQ - 0 1", "e1g1", false},
		{"king in check", "4k3/8/8/8/8/8/4r3/R3K2R w KQ - 0 1", "e1c1", false},
		{"b-file attack allowed", "4k3/8/8/8/8/8/1r6/R3K2R w KQ - 0 1", "e1c1", true},
		{"path blocked", "4k3/8/8/8/8/8/8/RN2K2R w KQ - 0 1", "e1c1", false},
		{"right lost", "4k3/8/8/8/8/8/8/R3K2R w K - 0 1", "e1c1", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			board, err := NewBoardFromFEN(tt.fen)
			testutil.AssertNoError(t, err)
			got := IsLegalMove(board, testutil.MustMove(t, tt.castle))
			testutil.AssertEqual(t, got, tt.expected, "castle %s", tt.castle)
		})
	}
}

func TestHasLegalMoves(t *testing.T) {
	tests := []struct {
		fen  string
		want bool
	}{
		{testutil.FENInitial, true},
		{testutil.FENFoolsMate, false},
		{testutil.FENStalemate, false},
		{testutil.FENBareKings, true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.fen, func(t *testing.T) {
			t.Parallel()
			board, err := NewBoardFromFEN(tt.fen)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, HasLegalMoves(board), tt.want)
			testutil.AssertEqual(t, len(LegalMoves(board)) > 0, tt.want)
		})
	}
}
