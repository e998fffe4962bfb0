package engine

import "github.com/arjunnegi0016/Chess-Bot-Project/internal/chess"

// castleRights returns the rook columns for the king- and queenside rights
// of colour, 0 when the right has been lost.
func castleRights(board *chess.Board, colour chess.Colour) (kingside, queenside chess.Col) {
	if colour == chess.White {
		return board.WKingCastle, board.WQueenCastle
	}
	return board.BKingCastle, board.BQueenCastle
}

// appendCastlingMoves adds castling moves, encoded as the king moving two
// files. The squares between king and rook must be empty and the king may
// not start on, pass through or land on an attacked square.
func appendCastlingMoves(board *chess.Board, moves []chess.Move, from chess.Square, colour chess.Colour) []chess.Move {
	rank := backRank(colour)
	if from != chess.NewSquare('e', rank) {
		return moves
	}
	kingside, queenside := castleRights(board, colour)
	if kingside == 0 && queenside == 0 {
		return moves
	}
	enemy := colour.Opposite()
	if IsSquareAttacked(board, 'e', rank, enemy) {
		return moves
	}
	rook := chess.MakeColouredPiece(colour, chess.Rook)

	if kingside != 0 && board.Get(kingside, rank) == rook &&
		board.Get('f', rank) == chess.Empty && board.Get('g', rank) == chess.Empty &&
		!IsSquareAttacked(board, 'f', rank, enemy) && !IsSquareAttacked(board, 'g', rank, enemy) {
		moves = append(moves, chess.NewMove(from, chess.NewSquare('g', rank)))
	}
	if queenside != 0 && board.Get(queenside, rank) == rook &&
		board.Get('d', rank) == chess.Empty && board.Get('c', rank) == chess.Empty &&
		board.Get('b', rank) == chess.Empty &&
		!IsSquareAttacked(board, 'd', rank, enemy) && !IsSquareAttacked(board, 'c', rank, enemy) {
		moves = append(moves, chess.NewMove(from, chess.NewSquare('c', rank)))
	}
	return moves
}

// applyCastle moves king and rook for a castling move and clears both of
// the mover's castling rights.
func applyCastle(board *chess.Board, colour chess.Colour, kingside bool) {
	rank := backRank(colour)
	kingToCol, rookFromCol, rookToCol := chess.Col('c'), chess.Col('a'), chess.Col('d')
	if kingside {
		kingToCol, rookFromCol, rookToCol = 'g', 'h', 'f'
	}

	king := board.Get('e', rank)
	board.Set('e', rank, chess.Empty)
	board.Set(kingToCol, rank, king)

	rook := board.Get(rookFromCol, rank)
	board.Set(rookFromCol, rank, chess.Empty)
	board.Set(rookToCol, rank, rook)

	board.SetKingSquare(colour, chess.NewSquare(kingToCol, rank))
	clearCastlingRights(board, colour)
}

func clearCastlingRights(board *chess.Board, colour chess.Colour) {
	if colour == chess.White {
		board.WKingCastle = 0
		board.WQueenCastle = 0
	} else {
		board.BKingCastle = 0
		board.BQueenCastle = 0
	}
}

// updateCastlingRightsForRook removes castling rights when a rook moves
// from, or something is captured on, a rook's starting square.
func updateCastlingRightsForRook(board *chess.Board, col chess.Col, rank chess.Rank) {
	switch rank {
	case chess.FirstRank:
		if col == board.WKingCastle {
			board.WKingCastle = 0
		}
		if col == board.WQueenCastle {
			board.WQueenCastle = 0
		}
	case chess.LastRank:
		if col == board.BKingCastle {
			board.BKingCastle = 0
		}
		if col == board.BQueenCastle {
			board.BQueenCastle = 0
		}
	}
}
