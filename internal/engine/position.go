package engine

import (
	"github.com/arjunnegi0016/Chess-Bot-Project/internal/chess"
	"github.com/arjunnegi0016/Chess-Bot-Project/internal/errors"
	"github.com/arjunnegi0016/Chess-Bot-Project/internal/hashing"
)

// undoRecord holds what Pop needs to take a move back.
type undoRecord struct {
	state chess.BoardState
	move  chess.Move
	key   uint64
}

// Position is a board plus the line of moves played on it. It supports
// pushing and popping moves and answers rule queries about the current
// state. A Position is not safe for concurrent use.
type Position struct {
	board *chess.Board
	stack []undoRecord
	key   uint64
	reps  *hashing.RepetitionTable
}

// NewPosition creates a position from a FEN string.
func NewPosition(fen string) (*Position, error) {
	board, err := NewBoardFromFEN(fen)
	if err != nil {
		return nil, err
	}
	return NewPositionFromBoard(board), nil
}

// NewInitialPosition creates a position at the standard starting setup.
func NewInitialPosition() *Position {
	return NewPositionFromBoard(NewInitialBoard())
}

// NewPositionFromBoard wraps board, which the position takes ownership of.
func NewPositionFromBoard(board *chess.Board) *Position {
	p := &Position{
		board: board,
		reps:  hashing.NewRepetitionTable(),
	}
	p.key = hashing.Zobrist(board)
	p.reps.Add(p.key)
	return p
}

// Turn returns the side to move.
func (p *Position) Turn() chess.Colour {
	return p.board.ToMove
}

// Board returns a copy of the underlying board.
func (p *Position) Board() *chess.Board {
	return p.board.Copy()
}

// LegalMoves returns the legal moves of the side to move.
func (p *Position) LegalMoves() []chess.Move {
	return LegalMoves(p.board)
}

// HasLegalMoves reports whether the side to move has any legal move.
func (p *Position) HasLegalMoves() bool {
	return HasLegalMoves(p.board)
}

// IsLegal reports whether m is legal in the current position.
func (p *Position) IsLegal(m chess.Move) bool {
	return IsLegalMove(p.board, m)
}

// Push plays m without checking legality. Every Push must be matched by a
// Pop to restore the position.
func (p *Position) Push(m chess.Move) {
	p.stack = append(p.stack, undoRecord{state: p.board.SaveState(), move: m, key: p.key})
	MakeMove(p.board, m)
	p.key = hashing.Zobrist(p.board)
	p.reps.Add(p.key)
}

// Pop takes back the last pushed move and returns it.
func (p *Position) Pop() (chess.Move, error) {
	if len(p.stack) == 0 {
		return chess.NoMove, errors.ErrEmptyHistory
	}
	last := p.stack[len(p.stack)-1]
	p.stack = p.stack[:len(p.stack)-1]

	p.reps.Remove(p.key)
	p.board.RestoreState(last.state)
	p.key = last.key
	return last.move, nil
}

// Play validates m and pushes it.
func (p *Position) Play(m chess.Move) error {
	if !p.IsLegal(m) {
		return p.moveError(errors.ErrIllegalMove, m.String())
	}
	p.Push(m)
	return nil
}

// ParseMove converts coordinate text such as "e2e4" or "e7e8q" into a
// legal move. A pawn move to the last rank without a promotion letter
// promotes to a queen.
func (p *Position) ParseMove(text string) (chess.Move, error) {
	m, ok := chess.ParseMoveText(text)
	if !ok {
		return chess.NoMove, p.moveError(errors.ErrIllegalMove, text)
	}

	legal := p.LegalMoves()
	if !m.IsPromotion() {
		queening := chess.NewPromotion(m.From, m.To, chess.Queen)
		for _, candidate := range legal {
			if candidate == queening {
				return queening, nil
			}
		}
	}
	for _, candidate := range legal {
		if candidate == m {
			return m, nil
		}
	}
	return chess.NoMove, p.moveError(errors.ErrIllegalMove, text)
}

func (p *Position) moveError(err error, move string) error {
	return &errors.PositionError{Err: err, FEN: p.FEN(), Ply: len(p.stack) + 1, Move: move}
}

// IsCheck reports whether the side to move is in check.
func (p *Position) IsCheck() bool {
	return IsInCheck(p.board, p.board.ToMove)
}

// GivesCheck reports whether playing m would put the opponent in check.
func (p *Position) GivesCheck(m chess.Move) bool {
	state := p.board.SaveState()
	defer p.board.RestoreState(state)
	mover := p.board.ToMove
	MakeMove(p.board, m)
	return IsInCheck(p.board, mover.Opposite())
}

// IsCapture reports whether m captures a piece.
func (p *Position) IsCapture(m chess.Move) bool {
	return IsCapture(p.board, m)
}

// CapturedPiece returns the piece type m captures, or chess.Empty.
func (p *Position) CapturedPiece(m chess.Move) chess.Piece {
	return CapturedPiece(p.board, m)
}

// IsCheckmate reports whether the side to move is checkmated.
func (p *Position) IsCheckmate() bool {
	return p.IsCheck() && !p.HasLegalMoves()
}

// IsStalemate reports whether the side to move has no legal move but is
// not in check.
func (p *Position) IsStalemate() bool {
	return !p.IsCheck() && !p.HasLegalMoves()
}

// IsInsufficientMaterial reports whether neither side can checkmate.
func (p *Position) IsInsufficientMaterial() bool {
	return HasInsufficientMaterial(p.board)
}

// CanClaimFiftyMoves reports whether the fifty-move rule applies.
func (p *Position) CanClaimFiftyMoves() bool {
	return CanClaimFiftyMoves(p.board)
}

// IsThreefoldRepetition reports whether the current position has occurred
// at least three times in the played line.
func (p *Position) IsThreefoldRepetition() bool {
	return p.reps.Count(p.key) >= 3
}

// Outcome checks the end-of-game conditions in order: checkmate,
// stalemate, insufficient material, fifty-move rule, repetition.
func (p *Position) Outcome() Outcome {
	hasMoves := p.HasLegalMoves()
	switch {
	case !hasMoves && p.IsCheck():
		return Outcome{Termination: Checkmate, Winner: p.board.ToMove.Opposite()}
	case !hasMoves:
		return Outcome{Termination: Stalemate}
	case p.IsInsufficientMaterial():
		return Outcome{Termination: InsufficientMaterial}
	case p.CanClaimFiftyMoves():
		return Outcome{Termination: FiftyMoves}
	case p.IsThreefoldRepetition():
		return Outcome{Termination: ThreefoldRepetition}
	}
	return Outcome{}
}

// PieceAt returns the coloured piece on sq, chess.Empty if none.
func (p *Position) PieceAt(sq chess.Square) chess.Piece {
	return p.board.PieceAt(sq)
}

// KingSquare returns the square of colour's king.
func (p *Position) KingSquare(colour chess.Colour) chess.Square {
	return p.board.KingSquare(colour)
}

// Fingerprint returns the placement, side to move, castling and en
// passant fields of the FEN.
func (p *Position) Fingerprint() string {
	return Fingerprint(p.board)
}

// FEN returns the full FEN of the position.
func (p *Position) FEN() string {
	return BoardToFEN(p.board)
}

// WithTurn runs fn with the side to move temporarily set to colour. The
// en passant square is cleared for the duration. The override is not
// recorded in the move history and is undone even if fn panics.
func (p *Position) WithTurn(colour chess.Colour, fn func()) {
	turn := p.board.ToMove
	ep, epCol, epRank := p.board.EnPassant, p.board.EPCol, p.board.EPRank
	defer func() {
		p.board.ToMove = turn
		p.board.EnPassant, p.board.EPCol, p.board.EPRank = ep, epCol, epRank
	}()

	p.board.ToMove = colour
	if colour != turn {
		p.board.EnPassant = false
	}
	fn()
}

// History returns the moves played since the position was created.
func (p *Position) History() []chess.Move {
	moves := make([]chess.Move, len(p.stack))
	for i, rec := range p.stack {
		moves[i] = rec.move
	}
	return moves
}

// Ply returns the number of moves played since the position was created.
func (p *Position) Ply() int {
	return len(p.stack)
}

// Clone returns an independent copy of the position, history included.
func (p *Position) Clone() *Position {
	c := &Position{
		board: p.board.Copy(),
		stack: make([]undoRecord, len(p.stack)),
		key:   p.key,
		reps:  p.reps.Clone(),
	}
	copy(c.stack, p.stack)
	return c
}
