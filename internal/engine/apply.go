package engine

import "github.com/arjunnegi0016/Chess-Bot-Project/internal/chess"

// ClassifyMove determines the class of m on board. The move is assumed to
// be pseudo-legal for the side to move.
func ClassifyMove(board *chess.Board, m chess.Move) chess.MoveClass {
	piece := chess.ExtractPiece(board.PieceAt(m.From))
	switch piece {
	case chess.King:
		switch m.To.File() - m.From.File() {
		case 2:
			return chess.KingsideCastle
		case -2:
			return chess.QueensideCastle
		}
		return chess.PieceMove
	case chess.Pawn:
		if m.IsPromotion() {
			return chess.PawnMoveWithPromotion
		}
		if m.From.File() != m.To.File() && board.PieceAt(m.To) == chess.Empty {
			return chess.EnPassantPawnMove
		}
		return chess.PawnMove
	}
	return chess.PieceMove
}

// IsCapture reports whether m captures a piece, en passant included.
func IsCapture(board *chess.Board, m chess.Move) bool {
	if chess.IsPiece(board.PieceAt(m.To)) {
		return true
	}
	return ClassifyMove(board, m) == chess.EnPassantPawnMove
}

// CapturedPiece returns the type of the piece m captures, or Empty.
func CapturedPiece(board *chess.Board, m chess.Move) chess.Piece {
	if target := board.PieceAt(m.To); chess.IsPiece(target) {
		return chess.ExtractPiece(target)
	}
	if ClassifyMove(board, m) == chess.EnPassantPawnMove {
		return chess.Pawn
	}
	return chess.Empty
}

// MakeMove plays m on board and updates castling rights, the en passant
// square, the clocks and the side to move. It does not check legality.
func MakeMove(board *chess.Board, m chess.Move) chess.MoveClass {
	colour := board.ToMove
	class := ClassifyMove(board, m)
	moving := board.PieceAt(m.From)
	captured := board.PieceAt(m.To)

	resetClock := chess.IsPiece(captured)
	board.EnPassant = false

	switch class {
	case chess.KingsideCastle, chess.QueensideCastle:
		applyCastle(board, colour, class == chess.KingsideCastle)

	case chess.EnPassantPawnMove:
		board.SetAt(m.From, chess.Empty)
		board.SetAt(m.To, moving)
		// The captured pawn stands beside the mover, not on the target square.
		board.SetAt(chess.SquareAt(m.To.File(), m.From.RankIndex()), chess.Empty)
		resetClock = true

	case chess.PawnMove, chess.PawnMoveWithPromotion:
		board.SetAt(m.From, chess.Empty)
		if class == chess.PawnMoveWithPromotion {
			moving = chess.MakeColouredPiece(colour, m.Promotion)
		}
		board.SetAt(m.To, moving)
		if abs(m.To.RankIndex()-m.From.RankIndex()) == 2 {
			setEnPassantIfCapturable(board, m, colour)
		}
		resetClock = true

	default:
		board.SetAt(m.From, chess.Empty)
		board.SetAt(m.To, moving)
		switch chess.ExtractPiece(moving) {
		case chess.King:
			board.SetKingSquare(colour, m.To)
			clearCastlingRights(board, colour)
		case chess.Rook:
			updateCastlingRightsForRook(board, m.From.Col(), m.From.Rank())
		}
	}

	if chess.IsPiece(captured) {
		updateCastlingRightsForRook(board, m.To.Col(), m.To.Rank())
	}

	if resetClock {
		board.HalfmoveClock = 0
	} else {
		board.HalfmoveClock++
	}
	if colour == chess.Black {
		board.MoveNumber++
	}
	board.ToMove = colour.Opposite()

	return class
}

// setEnPassantIfCapturable records the square skipped by a double pawn
// push, but only when an enemy pawn stands ready to capture on it.
func setEnPassantIfCapturable(board *chess.Board, m chess.Move, colour chess.Colour) {
	enemyPawn := chess.MakeColouredPiece(colour.Opposite(), chess.Pawn)
	for _, df := range []int{-1, 1} {
		if board.PieceAt(chess.SquareAt(m.To.File()+df, m.To.RankIndex())) == enemyPawn {
			skipped := chess.SquareAt(m.From.File(), (m.From.RankIndex()+m.To.RankIndex())/2)
			board.EnPassant = true
			board.EPCol, board.EPRank = skipped.Col(), skipped.Rank()
			return
		}
	}
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
