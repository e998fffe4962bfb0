package search

import "github.com/arjunnegi0016/Chess-Bot-Project/internal/chess"

// Board is the rules-engine view the search needs. *engine.Position
// satisfies it. The search mutates the board with Push and restores it
// with Pop, so callers must not touch it while a search is running.
type Board interface {
	Turn() chess.Colour
	LegalMoves() []chess.Move
	HasLegalMoves() bool
	Push(m chess.Move)
	Pop() (chess.Move, error)
	IsCheck() bool
	GivesCheck(m chess.Move) bool
	IsCapture(m chess.Move) bool
	IsInsufficientMaterial() bool
	PieceAt(sq chess.Square) chess.Piece
	KingSquare(colour chess.Colour) chess.Square
	Fingerprint() string
	WithTurn(colour chess.Colour, fn func())
}
