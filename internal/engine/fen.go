// Package engine implements the chess rules: FEN handling, move generation,
// move application, game termination and the Position facade used by the
// search.
package engine

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/arjunnegi0016/Chess-Bot-Project/internal/chess"
	"github.com/arjunnegi0016/Chess-Bot-Project/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ColouredPieceLetter returns the FEN letter for a coloured piece:
// uppercase for White, lowercase for Black.
func ColouredPieceLetter(colouredPiece chess.Piece) byte {
	letter := chess.ExtractPiece(colouredPiece).Letter()
	if chess.ExtractColour(colouredPiece) == chess.Black {
		letter = byte(unicode.ToLower(rune(letter)))
	}
	return letter
}

// NewBoardFromFEN creates a board from a FEN string. Missing trailing
// fields default to "w - - 0 1". The placement must describe exactly eight
// ranks of eight squares and contain exactly one king per side.
func NewBoardFromFEN(fen string) (*chess.Board, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}
	if len(parts) > 6 {
		return nil, fmt.Errorf("too many FEN fields: %w", errors.ErrInvalidFEN)
	}

	board := chess.NewBoard()

	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, err
	}
	if err := parseSideToMove(board, parts); err != nil {
		return nil, err
	}
	if err := parseCastlingRights(board, parts); err != nil {
		return nil, err
	}
	if err := parseEnPassant(board, parts); err != nil {
		return nil, err
	}
	if err := parseClocks(board, parts); err != nil {
		return nil, err
	}

	return board, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return fmt.Errorf("expected 8 ranks, got %d: %w", len(ranks), errors.ErrInvalidFEN)
	}

	kings := map[chess.Colour]int{}
	for i, rankText := range ranks {
		rank := chess.Rank(chess.LastRank - i)
		col := chess.Col(chess.FirstCol)

		for _, c := range rankText {
			switch {
			case c >= '1' && c <= '8':
				col += chess.Col(c - '0')
			default:
				piece := chess.PieceFromLetter(byte(c))
				if piece == chess.Empty || c > unicode.MaxASCII {
					return fmt.Errorf("invalid piece character %q: %w", c, errors.ErrInvalidFEN)
				}
				if col > chess.LastCol {
					return fmt.Errorf("rank %c overflows: %w", rank, errors.ErrInvalidFEN)
				}

				colour := chess.White
				if unicode.IsLower(c) {
					colour = chess.Black
				}
				if piece == chess.Pawn && (rank == chess.FirstRank || rank == chess.LastRank) {
					return fmt.Errorf("pawn on rank %c: %w", rank, errors.ErrInvalidFEN)
				}

				board.Set(col, rank, chess.MakeColouredPiece(colour, piece))
				if piece == chess.King {
					kings[colour]++
					board.SetKingSquare(colour, chess.NewSquare(col, rank))
				}
				col++
			}
		}
		if col != chess.LastCol+1 {
			return fmt.Errorf("rank %c has %d squares: %w", rank, int(col-chess.FirstCol), errors.ErrInvalidFEN)
		}
	}

	if kings[chess.White] != 1 || kings[chess.Black] != 1 {
		return fmt.Errorf("need exactly one king per side, got %d white and %d black: %w",
			kings[chess.White], kings[chess.Black], errors.ErrInvalidFEN)
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(board *chess.Board, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		board.ToMove = chess.White
	case "b":
		board.ToMove = chess.Black
	default:
		return fmt.Errorf("invalid side to move %q: %w", parts[1], errors.ErrInvalidFEN)
	}
	return nil
}

// parseCastlingRights parses the castling availability field. A right is
// only kept when king and rook still stand on their original squares.
func parseCastlingRights(board *chess.Board, parts []string) error {
	board.WKingCastle = 0
	board.WQueenCastle = 0
	board.BKingCastle = 0
	board.BQueenCastle = 0

	if len(parts) < 3 || parts[2] == "-" {
		return nil
	}

	for _, c := range parts[2] {
		switch c {
		case 'K':
			if castlePiecesInPlace(board, chess.White, 'h') {
				board.WKingCastle = 'h'
			}
		case 'Q':
			if castlePiecesInPlace(board, chess.White, 'a') {
				board.WQueenCastle = 'a'
			}
		case 'k':
			if castlePiecesInPlace(board, chess.Black, 'h') {
				board.BKingCastle = 'h'
			}
		case 'q':
			if castlePiecesInPlace(board, chess.Black, 'a') {
				board.BQueenCastle = 'a'
			}
		default:
			return fmt.Errorf("invalid castling field %q: %w", parts[2], errors.ErrInvalidFEN)
		}
	}
	return nil
}

// castlePiecesInPlace reports whether the king and the given rook of colour
// are on their starting squares.
func castlePiecesInPlace(board *chess.Board, colour chess.Colour, rookCol chess.Col) bool {
	rank := backRank(colour)
	return board.Get('e', rank) == chess.MakeColouredPiece(colour, chess.King) &&
		board.Get(rookCol, rank) == chess.MakeColouredPiece(colour, chess.Rook)
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(board *chess.Board, parts []string) error {
	board.EnPassant = false
	if len(parts) < 4 || parts[3] == "-" {
		return nil
	}
	sq, ok := chess.ParseSquare(parts[3])
	if !ok {
		return fmt.Errorf("invalid en passant square %q: %w", parts[3], errors.ErrInvalidFEN)
	}
	want := chess.Rank('6')
	if board.ToMove == chess.Black {
		want = '3'
	}
	if sq.Rank() != want {
		return fmt.Errorf("en passant square %s on wrong rank: %w", sq, errors.ErrInvalidFEN)
	}
	board.EnPassant = true
	board.EPCol = sq.Col()
	board.EPRank = sq.Rank()
	return nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(board *chess.Board, parts []string) error {
	if len(parts) >= 5 {
		n, err := strconv.ParseUint(parts[4], 10, 32)
		if err != nil {
			return fmt.Errorf("invalid halfmove clock %q: %w", parts[4], errors.ErrInvalidFEN)
		}
		board.HalfmoveClock = uint(n)
	}
	if len(parts) >= 6 {
		n, err := strconv.ParseUint(parts[5], 10, 32)
		if err != nil || n == 0 {
			return fmt.Errorf("invalid fullmove number %q: %w", parts[5], errors.ErrInvalidFEN)
		}
		board.MoveNumber = uint(n)
	}
	return nil
}

// BoardToFEN converts a board to a FEN string.
func BoardToFEN(board *chess.Board) string {
	var sb strings.Builder
	writeKeyFields(&sb, board)
	fmt.Fprintf(&sb, " %d %d", board.HalfmoveClock, board.MoveNumber)
	return sb.String()
}

// Fingerprint returns the first four FEN fields of the board: placement,
// side to move, castling rights and en passant square. Two positions with
// equal fingerprints are interchangeable for evaluation purposes.
func Fingerprint(board *chess.Board) string {
	var sb strings.Builder
	writeKeyFields(&sb, board)
	return sb.String()
}

func writeKeyFields(sb *strings.Builder, board *chess.Board) {
	writePiecePositions(sb, board)
	sb.WriteByte(' ')
	writeSideToMove(sb, board)
	sb.WriteByte(' ')
	writeCastlingRights(sb, board)
	sb.WriteByte(' ')
	writeEnPassant(sb, board)
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for rank := chess.Rank(chess.LastRank); rank >= chess.FirstRank; rank-- {
		emptyCount := 0
		for col := chess.Col(chess.FirstCol); col <= chess.LastCol; col++ {
			piece := board.Get(col, rank)
			if piece == chess.Empty {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(ColouredPieceLetter(piece))
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > chess.FirstRank {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, board *chess.Board) {
	if board.ToMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

// writeCastlingRights writes the castling availability to the builder.
func writeCastlingRights(sb *strings.Builder, board *chess.Board) {
	hasCastling := false
	if board.WKingCastle != 0 {
		sb.WriteByte('K')
		hasCastling = true
	}
	if board.WQueenCastle != 0 {
		sb.WriteByte('Q')
		hasCastling = true
	}
	if board.BKingCastle != 0 {
		sb.WriteByte('k')
		hasCastling = true
	}
	if board.BQueenCastle != 0 {
		sb.WriteByte('q')
		hasCastling = true
	}
	if !hasCastling {
		sb.WriteByte('-')
	}
}

// writeEnPassant writes the en passant target square to the builder.
func writeEnPassant(sb *strings.Builder, board *chess.Board) {
	if board.EnPassant {
		sb.WriteByte(byte(board.EPCol))
		sb.WriteByte(byte(board.EPRank))
	} else {
		sb.WriteByte('-')
	}
}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *chess.Board {
	board := chess.NewBoard()
	board.SetupInitialPosition()
	return board
}
