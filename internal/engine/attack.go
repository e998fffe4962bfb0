package engine

import "github.com/arjunnegi0016/Chess-Bot-Project/internal/chess"

var (
	knightOffsets  = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets    = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalDirs   = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	orthogonalDirs = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
)

// step returns the coordinates offset by (dc, dr). The result may be off
// the board; callers check with chess.OnBoard.
func step(col chess.Col, rank chess.Rank, dc, dr int) (chess.Col, chess.Rank) {
	return chess.Col(int(col) + dc), chess.Rank(int(rank) + dr)
}

// IsInCheck returns true if the given colour's king is in check.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	king := board.KingSquare(colour)
	if king == chess.NoSquare || board.PieceAt(king) != chess.MakeColouredPiece(colour, chess.King) {
		col, rank := findKing(board, colour)
		if col == 0 {
			return false
		}
		king = chess.NewSquare(col, rank)
	}
	return IsSquareAttacked(board, king.Col(), king.Rank(), colour.Opposite())
}

// findKing finds the king of the given colour on the board.
func findKing(board *chess.Board, colour chess.Colour) (chess.Col, chess.Rank) {
	king := chess.MakeColouredPiece(colour, chess.King)
	for col := chess.Col(chess.FirstCol); col <= chess.LastCol; col++ {
		for rank := chess.Rank(chess.FirstRank); rank <= chess.LastRank; rank++ {
			if board.Get(col, rank) == king {
				return col, rank
			}
		}
	}
	return 0, 0
}

// IsSquareAttacked returns true if the square is attacked by the given colour.
func IsSquareAttacked(board *chess.Board, col chess.Col, rank chess.Rank, byColour chess.Colour) bool {
	// Pawns attack diagonally forward, so look one rank behind the target.
	pawn := chess.MakeColouredPiece(byColour, chess.Pawn)
	pawnRank := chess.Rank(int(rank) - chess.ColourOffset(byColour))
	for _, dc := range []int{-1, 1} {
		c := chess.Col(int(col) + dc)
		if chess.OnBoard(c, pawnRank) && board.Get(c, pawnRank) == pawn {
			return true
		}
	}

	knight := chess.MakeColouredPiece(byColour, chess.Knight)
	for _, off := range knightOffsets {
		c, r := step(col, rank, off[0], off[1])
		if chess.OnBoard(c, r) && board.Get(c, r) == knight {
			return true
		}
	}

	king := chess.MakeColouredPiece(byColour, chess.King)
	for _, off := range kingOffsets {
		c, r := step(col, rank, off[0], off[1])
		if chess.OnBoard(c, r) && board.Get(c, r) == king {
			return true
		}
	}

	queen := chess.MakeColouredPiece(byColour, chess.Queen)
	if slidingAttack(board, col, rank, diagonalDirs, chess.MakeColouredPiece(byColour, chess.Bishop), queen) {
		return true
	}
	return slidingAttack(board, col, rank, orthogonalDirs, chess.MakeColouredPiece(byColour, chess.Rook), queen)
}

// slidingAttack scans each direction until the first occupied square and
// reports whether it holds one of the two attackers.
func slidingAttack(board *chess.Board, col chess.Col, rank chess.Rank, dirs [][2]int, a, b chess.Piece) bool {
	for _, dir := range dirs {
		c, r := step(col, rank, dir[0], dir[1])
		for chess.OnBoard(c, r) {
			piece := board.Get(c, r)
			if piece != chess.Empty {
				if piece == a || piece == b {
					return true
				}
				break
			}
			c, r = step(c, r, dir[0], dir[1])
		}
	}
	return false
}
