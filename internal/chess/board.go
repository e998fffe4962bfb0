package chess

// Board represents a chess board with all state needed to generate and
// play moves.
type Board struct {
	// The board squares with a hedge of 2 around for knight move calculation.
	// board[col][rank] where col and rank are 0-11 (with hedge).
	Squares [Hedge + BoardSize + Hedge][Hedge + BoardSize + Hedge]Piece

	// Who has the next move.
	ToMove Colour

	// The current full move number.
	MoveNumber uint

	// Rook starting columns for the 4 castling options, 0 when the right
	// has been lost.
	WKingCastle  Col
	WQueenCastle Col
	BKingCastle  Col
	BQueenCastle Col

	// Keep track of where the two kings are for check detection.
	WKingCol  Col
	WKingRank Rank
	BKingCol  Col
	BKingRank Rank

	// Is EnPassant capture possible? If so then EPRank and EPCol have
	// the square on which this can be made.
	EnPassant bool
	EPRank    Rank
	EPCol     Col

	// The half-move clock since the last pawn move or capture.
	HalfmoveClock uint
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	b := &Board{
		ToMove:     White,
		MoveNumber: 1,
	}
	// Initialize all squares to Off (hedge) or Empty
	for col := 0; col < Hedge+BoardSize+Hedge; col++ {
		for rank := 0; rank < Hedge+BoardSize+Hedge; rank++ {
			if col >= Hedge && col < Hedge+BoardSize &&
				rank >= Hedge && rank < Hedge+BoardSize {
				b.Squares[col][rank] = Empty
			} else {
				b.Squares[col][rank] = Off
			}
		}
	}
	return b
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	for col := Hedge; col < Hedge+BoardSize; col++ {
		for rank := Hedge; rank < Hedge+BoardSize; rank++ {
			b.Squares[col][rank] = Empty
		}
	}

	backRank := []Piece{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col := 0; col < BoardSize; col++ {
		b.Squares[col+Hedge][Hedge] = W(backRank[col])
		b.Squares[col+Hedge][Hedge+1] = W(Pawn)
		b.Squares[col+Hedge][Hedge+6] = B(Pawn)
		b.Squares[col+Hedge][Hedge+7] = B(backRank[col])
	}

	b.WKingCol, b.WKingRank = 'e', '1'
	b.BKingCol, b.BKingRank = 'e', '8'

	b.WKingCastle = 'h'
	b.WQueenCastle = 'a'
	b.BKingCastle = 'h'
	b.BQueenCastle = 'a'

	b.ToMove = White
	b.MoveNumber = 1
	b.EnPassant = false
	b.HalfmoveClock = 0
}

// Get returns the piece at the given coordinates (using char coords 'a'-'h', '1'-'8').
func (b *Board) Get(col Col, rank Rank) Piece {
	c := ColConvert(col)
	r := RankConvert(rank)
	if c == 0 || r == 0 {
		return Off
	}
	return b.Squares[c][r]
}

// Set places a piece at the given coordinates.
func (b *Board) Set(col Col, rank Rank, piece Piece) {
	c := ColConvert(col)
	r := RankConvert(rank)
	if c != 0 && r != 0 {
		b.Squares[c][r] = piece
	}
}

// PieceAt returns the coloured piece on sq, Empty if none, Off for an
// invalid square.
func (b *Board) PieceAt(sq Square) Piece {
	if !sq.Valid() {
		return Off
	}
	return b.Squares[sq.File()+Hedge][sq.RankIndex()+Hedge]
}

// SetAt places a piece on sq.
func (b *Board) SetAt(sq Square, piece Piece) {
	if sq.Valid() {
		b.Squares[sq.File()+Hedge][sq.RankIndex()+Hedge] = piece
	}
}

// KingSquare returns the square of the given colour's king, or NoSquare
// when it is not tracked.
func (b *Board) KingSquare(colour Colour) Square {
	if colour == White {
		return NewSquare(b.WKingCol, b.WKingRank)
	}
	return NewSquare(b.BKingCol, b.BKingRank)
}

// SetKingSquare records where the given colour's king stands.
func (b *Board) SetKingSquare(colour Colour, sq Square) {
	if colour == White {
		b.WKingCol, b.WKingRank = sq.Col(), sq.Rank()
	} else {
		b.BKingCol, b.BKingRank = sq.Col(), sq.Rank()
	}
}

// EnPassantSquare returns the en passant target square, or NoSquare.
func (b *Board) EnPassantSquare() Square {
	if !b.EnPassant {
		return NoSquare
	}
	return NewSquare(b.EPCol, b.EPRank)
}

// CountPieces returns how many of the given coloured piece are on the board.
func (b *Board) CountPieces(colouredPiece Piece) int {
	n := 0
	for sq := Square(0); sq < 64; sq++ {
		if b.PieceAt(sq) == colouredPiece {
			n++
		}
	}
	return n
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// BoardState captures all mutable board state for save/restore operations.
// It is cheaper than Copy() when a move is made and then taken back.
type BoardState struct {
	Squares       [Hedge + BoardSize + Hedge][Hedge + BoardSize + Hedge]Piece
	ToMove        Colour
	MoveNumber    uint
	WKingCastle   Col
	WQueenCastle  Col
	BKingCastle   Col
	BQueenCastle  Col
	WKingCol      Col
	WKingRank     Rank
	BKingCol      Col
	BKingRank     Rank
	EnPassant     bool
	EPRank        Rank
	EPCol         Col
	HalfmoveClock uint
}

// SaveState captures the current board state for later restoration.
func (b *Board) SaveState() BoardState {
	return BoardState{
		Squares:       b.Squares,
		ToMove:        b.ToMove,
		MoveNumber:    b.MoveNumber,
		WKingCastle:   b.WKingCastle,
		WQueenCastle:  b.WQueenCastle,
		BKingCastle:   b.BKingCastle,
		BQueenCastle:  b.BQueenCastle,
		WKingCol:      b.WKingCol,
		WKingRank:     b.WKingRank,
		BKingCol:      b.BKingCol,
		BKingRank:     b.BKingRank,
		EnPassant:     b.EnPassant,
		EPRank:        b.EPRank,
		EPCol:         b.EPCol,
		HalfmoveClock: b.HalfmoveClock,
	}
}

// RestoreState restores the board to a previously saved state.
func (b *Board) RestoreState(s BoardState) {
	b.Squares = s.Squares
	b.ToMove = s.ToMove
	b.MoveNumber = s.MoveNumber
	b.WKingCastle = s.WKingCastle
	b.WQueenCastle = s.WQueenCastle
	b.BKingCastle = s.BKingCastle
	b.BQueenCastle = s.BQueenCastle
	b.WKingCol = s.WKingCol
	b.WKingRank = s.WKingRank
	b.BKingCol = s.BKingCol
	b.BKingRank = s.BKingRank
	b.EnPassant = s.EnPassant
	b.EPRank = s.EPRank
	b.EPCol = s.EPCol
	b.HalfmoveClock = s.HalfmoveClock
}
