package chess

import "strings"

// Move is an immutable move value: origin, destination and, for pawn
// promotions, the piece type promoted to. Everything else about a move
// (capture, castling, en passant) is derived from the board it is played on.
type Move struct {
	From      Square
	To        Square
	Promotion Piece // Empty when the move is not a promotion
}

// NoMove is the zero-information move returned alongside errors.
var NoMove = Move{From: NoSquare, To: NoSquare, Promotion: Empty}

// NewMove creates a non-promoting move.
func NewMove(from, to Square) Move {
	return Move{From: from, To: to, Promotion: Empty}
}

// NewPromotion creates a promoting move.
func NewPromotion(from, to Square, promotion Piece) Move {
	return Move{From: from, To: to, Promotion: promotion}
}

// IsPromotion returns true if this move promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.Promotion != Empty && m.Promotion != Off
}

// IsNone reports whether m is NoMove.
func (m Move) IsNone() bool {
	return m.From == NoSquare || m.To == NoSquare
}

// String returns the move in coordinate notation, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	if m.IsNone() {
		return "0000"
	}
	var sb strings.Builder
	sb.WriteString(m.From.String())
	sb.WriteString(m.To.String())
	if m.IsPromotion() {
		sb.WriteByte(m.Promotion.Letter() + ('a' - 'A'))
	}
	return sb.String()
}

// ParseMoveText parses coordinate notation into a Move without checking
// legality. The boolean is false when the text is malformed.
func ParseMoveText(text string) (Move, bool) {
	text = strings.TrimSpace(text)
	if len(text) != 4 && len(text) != 5 {
		return NoMove, false
	}
	from, ok := ParseSquare(text[0:2])
	if !ok {
		return NoMove, false
	}
	to, ok := ParseSquare(text[2:4])
	if !ok {
		return NoMove, false
	}
	if len(text) == 4 {
		return NewMove(from, to), true
	}
	promo := PieceFromLetter(text[4])
	switch promo {
	case Knight, Bishop, Rook, Queen:
		return NewPromotion(from, to, promo), true
	}
	return NoMove, false
}
