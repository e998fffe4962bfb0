package engine

import (
	"fmt"

	"github.com/arjunnegi0016/Chess-Bot-Project/internal/chess"
)

// Termination identifies why a game ended.
type Termination int

const (
	NotTerminated Termination = iota
	Checkmate
	Stalemate
	InsufficientMaterial
	FiftyMoves
	ThreefoldRepetition
)

// String returns a lowercase name for the termination.
func (t Termination) String() string {
	switch t {
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case InsufficientMaterial:
		return "insufficient material"
	case FiftyMoves:
		return "fifty-move rule"
	case ThreefoldRepetition:
		return "repetition"
	}
	return "none"
}

// Outcome describes how a game ended. Winner is only meaningful for
// Checkmate.
type Outcome struct {
	Termination Termination
	Winner      chess.Colour
}

// IsOver reports whether the game has ended.
func (o Outcome) IsOver() bool {
	return o.Termination != NotTerminated
}

// IsDraw reports whether the game ended without a winner.
func (o Outcome) IsDraw() bool {
	return o.IsOver() && o.Termination != Checkmate
}

// Result returns the PGN result string: "1-0", "0-1", "1/2-1/2" or "*".
func (o Outcome) Result() string {
	switch {
	case !o.IsOver():
		return "*"
	case o.IsDraw():
		return "1/2-1/2"
	case o.Winner == chess.White:
		return "1-0"
	}
	return "0-1"
}

// Message returns a human readable summary of the outcome, empty while the
// game is still in progress.
func (o Outcome) Message() string {
	switch o.Termination {
	case Checkmate:
		return fmt.Sprintf("%s wins by checkmate!", o.Winner)
	case Stalemate:
		return "Draw by stalemate!"
	case InsufficientMaterial:
		return "Draw by insufficient material!"
	case FiftyMoves:
		return "Draw by fifty-move rule!"
	case ThreefoldRepetition:
		return "Draw by repetition!"
	}
	return ""
}
