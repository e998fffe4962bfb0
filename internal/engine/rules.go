package engine

import (
	"github.com/arjunnegi0016/Chess-Bot-Project/internal/chess"
)

// FiftyMoveHalfmoves is the half-move clock value at which a draw may be claimed.
const FiftyMoveHalfmoves = 100

// materialCount tallies the non-king material of one side.
type materialCount struct {
	pawns, knights, bishops, rooks, queens int
	lightBishops, darkBishops              int
}

func (m materialCount) total() int {
	return m.pawns + m.knights + m.bishops + m.rooks + m.queens
}

// countMaterial counts the material of both sides, indexed by colour.
func countMaterial(board *chess.Board) [2]materialCount {
	var counts [2]materialCount
	for sq := chess.Square(0); sq < 64; sq++ {
		piece := board.PieceAt(sq)
		if !chess.IsPiece(piece) {
			continue
		}
		c := &counts[chess.ExtractColour(piece)]
		switch chess.ExtractPiece(piece) {
		case chess.Pawn:
			c.pawns++
		case chess.Knight:
			c.knights++
		case chess.Bishop:
			c.bishops++
			if isLightSquare(sq) {
				c.lightBishops++
			} else {
				c.darkBishops++
			}
		case chess.Rook:
			c.rooks++
		case chess.Queen:
			c.queens++
		}
	}
	return counts
}

// HasInsufficientMaterial returns true if neither side can possibly deliver
// checkmate:
// - K vs K
// - K+N vs K
// - any number of bishops, all on squares of one colour, and nothing else
func HasInsufficientMaterial(board *chess.Board) bool {
	counts := countMaterial(board)
	return sideCannotMate(counts, chess.White) && sideCannotMate(counts, chess.Black)
}

// sideCannotMate reports whether colour lacks mating material given what
// both sides have.
func sideCannotMate(counts [2]materialCount, colour chess.Colour) bool {
	own := counts[colour]
	other := counts[colour.Opposite()]

	if own.pawns > 0 || own.rooks > 0 || own.queens > 0 {
		return false
	}
	if own.knights > 0 {
		// A lone knight only fails to mate when the opponent has nothing
		// that could block its own king's escape.
		return own.total() == 1 && other.total() == other.queens
	}
	if own.bishops > 0 {
		lights := own.lightBishops + other.lightBishops
		darks := own.darkBishops + other.darkBishops
		sameColour := lights == 0 || darks == 0
		return sameColour && own.pawns+other.pawns == 0 && own.knights+other.knights == 0
	}
	return true
}

// isLightSquare returns true if the given square is a light square.
func isLightSquare(sq chess.Square) bool {
	return (sq.File()+sq.RankIndex())%2 == 1
}

// CanClaimFiftyMoves reports whether fifty full moves have passed without a
// pawn move or capture.
func CanClaimFiftyMoves(board *chess.Board) bool {
	return board.HalfmoveClock >= FiftyMoveHalfmoves
}
