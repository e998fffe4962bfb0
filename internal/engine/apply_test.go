package engine

import (
	"testing"

	"github.com/arjunnegi0016/Chess-Bot-Project/internal/chess"
	"github.com/arjunnegi0016/Chess-Bot-Project/internal/testutil"
)

func TestMakeMove(t *testing.T) {
	tests := []struct {
		name      string
		fen       string
		move      string
		wantFEN   string
		wantClass chess.MoveClass
	}{
		{
			name:      "double push without capturer",
			fen:       testutil.FENInitial,
			move:      "e2e4",
			wantFEN:   "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 1",
			wantClass: chess.PawnMove,
		},
		{
			name:      "double push next to enemy pawn",
			fen:       "4k3/8/8/8/3p4/8/4P3/4K3 w - - 0 1",
			move:      "e2e4",
			wantFEN:   "4k3/8/8/8/3pP3/8/8/4K3 b - e3 0 1",
			wantClass: chess.PawnMove,
		},
		{
			name:      "en passant capture",
			fen:       testutil.FENEnPassant,
			move:      "f5e6",
			wantFEN:   "rnbqkbnr/pppp1ppp/4P3/8/8/8/PPPPP1PP/RNBQKBNR b KQkq - 0 3",
			wantClass: chess.EnPassantPawnMove,
		},
		{
			name:      "knight move increments clock",
			fen:       testutil.FENInitial,
			move:      "g1f3",
			wantFEN:   "rnbqkbnr/pppppppp/8/8/8/5N2/PPPPPPPP/RNBQKB1R b KQkq - 1 1",
			wantClass: chess.PieceMove,
		},
		{
			name:      "white castles kingside",
			fen:       "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			move:      "e1g1",
			wantFEN:   "r3k2r/8/8/8/8/8/8/R4RK1 b kq - 1 1",
			wantClass: chess.KingsideCastle,
		},
		{
			name:      "black castles queenside",
			fen:       "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1",
			move:      "e8c8",
			wantFEN:   "2kr3r/8/8/8/8/8/8/R3K2R w KQ - 1 2",
			wantClass: chess.QueensideCastle,
		},
		{
			name:      "rook capture removes both sides' rights",
			fen:       "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			move:      "a1a8",
			wantFEN:   "R3k2r/8/8/8/8/8/8/4K2R b Kk - 0 1",
			wantClass: chess.PieceMove,
		},
		{
			name:      "king move removes rights",
			fen:       "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			move:      "e1e2",
			wantFEN:   "r3k2r/8/8/8/8/8/4K3/R6R b kq - 1 1",
			wantClass: chess.PieceMove,
		},
		{
			name:      "underpromotion",
			fen:       "8/P6k/8/8/8/8/8/K7 w - - 0 1",
			move:      "a7a8n",
			wantFEN:   "N7/7k/8/8/8/8/8/K7 b - - 0 1",
			wantClass: chess.PawnMoveWithPromotion,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			board, err := NewBoardFromFEN(tt.fen)
			testutil.AssertNoError(t, err)

			m := testutil.MustMove(t, tt.move)
			testutil.AssertTrue(t, IsLegalMove(board, m), "%s should be legal", tt.move)

			class := MakeMove(board, m)
			testutil.AssertEqual(t, class, tt.wantClass)
			testutil.AssertEqual(t, BoardToFEN(board), tt.wantFEN)
		})
	}
}

func TestMakeMove_TracksKing(t *testing.T) {
	board, err := NewBoardFromFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	testutil.AssertNoError(t, err)

	MakeMove(board, testutil.MustMove(t, "e1c1"))
	testutil.AssertEqual(t, board.KingSquare(chess.White).String(), "c1")
	testutil.AssertEqual(t, board.Get('d', '1'), chess.W(chess.Rook))
}

func TestCapturedPiece(t *testing.T) {
	tests := []struct {
		fen  string
		move string
		want chess.Piece
	}{
		{testutil.FENHangingQueen, "e4d5", chess.Queen},
		{testutil.FENHangingQueen, "e4e5", chess.Empty},
		{testutil.FENEnPassant, "f5e6", chess.Pawn},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.move, func(t *testing.T) {
			t.Parallel()
			board, err := NewBoardFromFEN(tt.fen)
			testutil.AssertNoError(t, err)
			m := testutil.MustMove(t, tt.move)
			testutil.AssertEqual(t, CapturedPiece(board, m), tt.want)
			testutil.AssertEqual(t, IsCapture(board, m), tt.want != chess.Empty)
		})
	}
}
