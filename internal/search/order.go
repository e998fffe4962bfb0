package search

import (
	"sort"

	"github.com/arjunnegi0016/Chess-Bot-Project/internal/chess"
)

// CheckBonus is added to the priority of a move that gives check.
const CheckBonus = 50

// MovePriority scores m for move ordering: captures by most valuable
// victim, least valuable aggressor, plus the promotion piece and a bonus
// for giving check. Quiet moves score 0.
func MovePriority(pos Board, m chess.Move) int {
	score := 0
	if pos.IsCapture(m) {
		victim := pos.PieceAt(m.To)
		if chess.IsPiece(victim) {
			aggressor := chess.ExtractPiece(pos.PieceAt(m.From))
			score += 10*PieceValue(chess.ExtractPiece(victim)) - PieceValue(aggressor)
		} else {
			// en passant
			score += PieceValue(chess.Pawn)
		}
	}
	if m.IsPromotion() {
		score += PieceValue(m.Promotion)
	}
	if pos.GivesCheck(m) {
		score += CheckBonus
	}
	return score
}

// OrderMoves returns moves sorted by descending priority. Moves of equal
// priority keep their input order. The input slice is not modified.
func OrderMoves(pos Board, moves []chess.Move) []chess.Move {
	type scored struct {
		move     chess.Move
		priority int
	}
	ranked := make([]scored, len(moves))
	for i, m := range moves {
		ranked[i] = scored{move: m, priority: MovePriority(pos, m)}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].priority > ranked[j].priority
	})

	ordered := make([]chess.Move, len(ranked))
	for i, r := range ranked {
		ordered[i] = r.move
	}
	return ordered
}
