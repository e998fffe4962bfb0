package game

import (
	"fmt"
	"strings"

	"github.com/arjunnegi0016/Chess-Bot-Project/internal/chess"
	"github.com/arjunnegi0016/Chess-Bot-Project/internal/engine"
)

// Render draws the position as text, White at the bottom unless flipped.
// Squares of lastMove are bracketed.
func Render(pos *engine.Position, flipped bool, lastMove chess.Move) string {
	var sb strings.Builder
	labels := fileLabels(flipped)

	sb.WriteString(labels)
	for row := 0; row < chess.BoardSize; row++ {
		rank := chess.BoardSize - 1 - row
		if flipped {
			rank = row
		}
		fmt.Fprintf(&sb, "%d ", rank+1)
		for col := 0; col < chess.BoardSize; col++ {
			file := col
			if flipped {
				file = chess.BoardSize - 1 - col
			}
			sq := chess.SquareAt(file, rank)
			symbol := byte('.')
			if p := pos.PieceAt(sq); chess.IsPiece(p) {
				symbol = engine.ColouredPieceLetter(p)
			}
			if !lastMove.IsNone() && (sq == lastMove.From || sq == lastMove.To) {
				sb.WriteString("[" + string(symbol) + "]")
			} else {
				sb.WriteString(" " + string(symbol) + " ")
			}
		}
		fmt.Fprintf(&sb, " %d\n", rank+1)
	}
	sb.WriteString(labels)
	return sb.String()
}

func fileLabels(flipped bool) string {
	var sb strings.Builder
	sb.WriteString("  ")
	for col := 0; col < chess.BoardSize; col++ {
		file := col
		if flipped {
			file = chess.BoardSize - 1 - col
		}
		sb.WriteString(" " + string(rune('a'+file)) + " ")
	}
	return strings.TrimRight(sb.String(), " ") + "\n"
}
