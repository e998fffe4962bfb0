package search

import "github.com/arjunnegi0016/Chess-Bot-Project/internal/chess"

// MateScore is the score of a checkmate, from the winner's side.
const MateScore = 10000

// Evaluation weights, in tenths.
const (
	materialWeight      = 10
	positionWeight      = 10
	mobilityWeight      = 1
	kingSafetyWeight    = 2
	pawnStructureWeight = 1
)

const (
	pawnShieldBonus = 10
	doubledPenalty  = 20
	isolatedPenalty = 20
)

// Breakdown is an evaluation split into its terms. Every term except
// Score is White-positive; Score is from the side to move.
type Breakdown struct {
	Material      int    `json:"material"`
	Position      int    `json:"position"`
	Mobility      int    `json:"mobility"`
	KingSafety    int    `json:"king_safety"`
	PawnStructure int    `json:"pawn_structure"`
	Endgame       bool   `json:"endgame"`
	Terminal      string `json:"terminal,omitempty"`
	Score         int    `json:"score"`
}

// Evaluate scores pos from the point of view of the side to move.
// Checkmate scores -MateScore; stalemate and insufficient material score 0.
func Evaluate(pos Board) int {
	return EvaluateDetailed(pos).Score
}

// EvaluateDetailed is Evaluate with the individual terms reported.
func EvaluateDetailed(pos Board) Breakdown {
	if !pos.HasLegalMoves() {
		if pos.IsCheck() {
			return Breakdown{Terminal: "checkmate", Score: -MateScore}
		}
		return Breakdown{Terminal: "stalemate"}
	}
	if pos.IsInsufficientMaterial() {
		return Breakdown{Terminal: "insufficient material"}
	}
	return breakdown(pos)
}

// staticEval scores a position already known not to be terminal.
func staticEval(pos Board) int {
	return breakdown(pos).Score
}

type placedPiece struct {
	sq     chess.Square
	kind   chess.Piece
	colour chess.Colour
}

func breakdown(pos Board) Breakdown {
	pieces := make([]placedPiece, 0, 32)
	for sq := chess.Square(0); sq < 64; sq++ {
		p := pos.PieceAt(sq)
		if !chess.IsPiece(p) {
			continue
		}
		pieces = append(pieces, placedPiece{sq: sq, kind: chess.ExtractPiece(p), colour: chess.ExtractColour(p)})
	}

	var b Breakdown
	b.Endgame = isEndgame(pieces)
	for _, p := range pieces {
		sign := colourSign(p.colour)
		b.Material += sign * PieceValue(p.kind)
		b.Position += sign * squareValue(p.kind, p.colour, p.sq, b.Endgame)
	}
	b.Mobility = mobility(pos)
	b.KingSafety = kingSafety(pos)
	b.PawnStructure = pawnStructure(pieces)

	tenths := materialWeight*b.Material +
		positionWeight*b.Position +
		mobilityWeight*b.Mobility +
		kingSafetyWeight*b.KingSafety +
		pawnStructureWeight*b.PawnStructure
	b.Score = roundTenths(tenths)
	if pos.Turn() == chess.Black {
		b.Score = -b.Score
	}
	return b
}

// isEndgame reports whether the queens are off or neither side has more
// than one minor piece.
func isEndgame(pieces []placedPiece) bool {
	var queens int
	var minors [2]int
	for _, p := range pieces {
		switch p.kind {
		case chess.Queen:
			queens++
		case chess.Knight, chess.Bishop:
			minors[p.colour]++
		}
	}
	return queens == 0 || (minors[chess.White] <= 1 && minors[chess.Black] <= 1)
}

// mobility is White's legal move count minus Black's.
func mobility(pos Board) int {
	var white, black int
	pos.WithTurn(chess.White, func() { white = len(pos.LegalMoves()) })
	pos.WithTurn(chess.Black, func() { black = len(pos.LegalMoves()) })
	return white - black
}

// kingSafety counts the pawns directly in front of each king on its own
// and the two neighbouring files.
func kingSafety(pos Board) int {
	score := 0
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		king := pos.KingSquare(colour)
		if !king.Valid() {
			continue
		}
		ahead := king.RankIndex() + chess.ColourOffset(colour)
		if ahead < 0 || ahead >= chess.BoardSize {
			continue
		}
		pawn := chess.MakeColouredPiece(colour, chess.Pawn)
		for df := -1; df <= 1; df++ {
			sq := chess.SquareAt(king.File()+df, ahead)
			if sq.Valid() && pos.PieceAt(sq) == pawn {
				score += colourSign(colour) * pawnShieldBonus
			}
		}
	}
	return score
}

// pawnStructure penalises doubled and isolated pawns.
func pawnStructure(pieces []placedPiece) int {
	var files [2][chess.BoardSize]int
	for _, p := range pieces {
		if p.kind == chess.Pawn {
			files[p.colour][p.sq.File()]++
		}
	}

	score := 0
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		penalty := 0
		counts := files[colour]
		for f, n := range counts {
			if n == 0 {
				continue
			}
			if n > 1 {
				penalty += doubledPenalty * (n - 1)
			}
			left := f > 0 && counts[f-1] > 0
			right := f < chess.BoardSize-1 && counts[f+1] > 0
			if !left && !right {
				penalty += isolatedPenalty * n
			}
		}
		score -= colourSign(colour) * penalty
	}
	return score
}

func colourSign(colour chess.Colour) int {
	if colour == chess.White {
		return 1
	}
	return -1
}

// roundTenths divides by ten, rounding halves away from zero.
func roundTenths(tenths int) int {
	if tenths < 0 {
		return -((-tenths + 5) / 10)
	}
	return (tenths + 5) / 10
}
