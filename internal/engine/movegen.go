package engine

import "github.com/arjunnegi0016/Chess-Bot-Project/internal/chess"

// promotionPieces lists promotion choices in generation order.
var promotionPieces = []chess.Piece{chess.Queen, chess.Rook, chess.Bishop, chess.Knight}

// backRank returns the first rank of the given colour.
func backRank(colour chess.Colour) chess.Rank {
	if colour == chess.White {
		return chess.FirstRank
	}
	return chess.LastRank
}

// LegalMoves returns every legal move for the side to move. The board is
// modified while moves are tried and restored before returning.
func LegalMoves(board *chess.Board) []chess.Move {
	colour := board.ToMove
	pseudo := PseudoLegalMoves(board)
	legal := pseudo[:0]
	for _, m := range pseudo {
		if leavesKingSafe(board, m, colour) {
			legal = append(legal, m)
		}
	}
	return legal
}

// HasLegalMoves returns true if the side to move has at least one legal move.
func HasLegalMoves(board *chess.Board) bool {
	colour := board.ToMove
	for _, m := range PseudoLegalMoves(board) {
		if leavesKingSafe(board, m, colour) {
			return true
		}
	}
	return false
}

// IsLegalMove reports whether m is legal for the side to move.
func IsLegalMove(board *chess.Board, m chess.Move) bool {
	for _, legal := range LegalMoves(board) {
		if legal == m {
			return true
		}
	}
	return false
}

// leavesKingSafe plays m and reports whether colour's king is not attacked
// afterwards.
func leavesKingSafe(board *chess.Board, m chess.Move, colour chess.Colour) bool {
	state := board.SaveState()
	MakeMove(board, m)
	safe := !IsInCheck(board, colour)
	board.RestoreState(state)
	return safe
}

// PseudoLegalMoves generates moves for the side to move without checking
// whether they leave the mover's king attacked. Castling is only generated
// when the king does not start, pass or land on an attacked square.
func PseudoLegalMoves(board *chess.Board) []chess.Move {
	colour := board.ToMove
	moves := make([]chess.Move, 0, 48)

	for col := chess.Col(chess.FirstCol); col <= chess.LastCol; col++ {
		for rank := chess.Rank(chess.FirstRank); rank <= chess.LastRank; rank++ {
			piece := board.Get(col, rank)
			if !chess.IsPiece(piece) || chess.ExtractColour(piece) != colour {
				continue
			}
			from := chess.NewSquare(col, rank)

			switch chess.ExtractPiece(piece) {
			case chess.Pawn:
				moves = appendPawnMoves(board, moves, from, colour)
			case chess.Knight:
				moves = appendStepMoves(board, moves, from, colour, knightOffsets)
			case chess.Bishop:
				moves = appendSlidingMoves(board, moves, from, colour, diagonalDirs)
			case chess.Rook:
				moves = appendSlidingMoves(board, moves, from, colour, orthogonalDirs)
			case chess.Queen:
				moves = appendSlidingMoves(board, moves, from, colour, diagonalDirs)
				moves = appendSlidingMoves(board, moves, from, colour, orthogonalDirs)
			case chess.King:
				moves = appendStepMoves(board, moves, from, colour, kingOffsets)
				moves = appendCastlingMoves(board, moves, from, colour)
			}
		}
	}
	return moves
}

// canLandOn reports whether a piece of colour may move to a square holding
// target: it must be empty or an enemy piece other than the king.
func canLandOn(target chess.Piece, colour chess.Colour) bool {
	if target == chess.Empty {
		return true
	}
	return chess.ExtractColour(target) != colour && chess.ExtractPiece(target) != chess.King
}

func appendPawnMoves(board *chess.Board, moves []chess.Move, from chess.Square, colour chess.Colour) []chess.Move {
	dir := chess.ColourOffset(colour)
	col, rank := from.Col(), from.Rank()
	lastRank := backRank(colour.Opposite())

	addPawnMove := func(to chess.Square) {
		if to.Rank() == lastRank {
			for _, promo := range promotionPieces {
				moves = append(moves, chess.NewPromotion(from, to, promo))
			}
			return
		}
		moves = append(moves, chess.NewMove(from, to))
	}

	// Pushes
	oneRank := chess.Rank(int(rank) + dir)
	if chess.OnBoard(col, oneRank) && board.Get(col, oneRank) == chess.Empty {
		addPawnMove(chess.NewSquare(col, oneRank))

		startRank := chess.Rank('2')
		if colour == chess.Black {
			startRank = '7'
		}
		twoRank := chess.Rank(int(rank) + 2*dir)
		if rank == startRank && board.Get(col, twoRank) == chess.Empty {
			moves = append(moves, chess.NewMove(from, chess.NewSquare(col, twoRank)))
		}
	}

	// Captures, including en passant
	for _, dc := range []int{-1, 1} {
		toCol, toRank := step(col, rank, dc, dir)
		if !chess.OnBoard(toCol, toRank) {
			continue
		}
		target := board.Get(toCol, toRank)
		if chess.IsPiece(target) && canLandOn(target, colour) {
			addPawnMove(chess.NewSquare(toCol, toRank))
			continue
		}
		if board.EnPassant && toCol == board.EPCol && toRank == board.EPRank {
			moves = append(moves, chess.NewMove(from, chess.NewSquare(toCol, toRank)))
		}
	}
	return moves
}

func appendStepMoves(board *chess.Board, moves []chess.Move, from chess.Square, colour chess.Colour, offsets [][2]int) []chess.Move {
	for _, off := range offsets {
		c, r := step(from.Col(), from.Rank(), off[0], off[1])
		if chess.OnBoard(c, r) && canLandOn(board.Get(c, r), colour) {
			moves = append(moves, chess.NewMove(from, chess.NewSquare(c, r)))
		}
	}
	return moves
}

func appendSlidingMoves(board *chess.Board, moves []chess.Move, from chess.Square, colour chess.Colour, dirs [][2]int) []chess.Move {
	for _, dir := range dirs {
		c, r := step(from.Col(), from.Rank(), dir[0], dir[1])
		for chess.OnBoard(c, r) {
			target := board.Get(c, r)
			if target != chess.Empty {
				if canLandOn(target, colour) {
					moves = append(moves, chess.NewMove(from, chess.NewSquare(c, r)))
				}
				break // Blocked
			}
			moves = append(moves, chess.NewMove(from, chess.NewSquare(c, r)))
			c, r = step(c, r, dir[0], dir[1])
		}
	}
	return moves
}
