package chess

// Square indexes the 64 board squares from a1 (0) to h8 (63), file-major
// within each rank: a1, b1, ..., h1, a2, ..., h8.
type Square int8

// NoSquare marks an absent square.
const NoSquare Square = -1

// NewSquare builds a square from char coordinates.
// It returns NoSquare for coordinates off the board.
func NewSquare(col Col, rank Rank) Square {
	if !OnBoard(col, rank) {
		return NoSquare
	}
	return Square(int(rank-FirstRank)*BoardSize + int(col-FirstCol))
}

// SquareAt builds a square from zero-based file and rank indices.
func SquareAt(file, rank int) Square {
	if file < 0 || file >= BoardSize || rank < 0 || rank >= BoardSize {
		return NoSquare
	}
	return Square(rank*BoardSize + file)
}

// File returns the zero-based file index (a = 0).
func (s Square) File() int {
	return int(s) % BoardSize
}

// RankIndex returns the zero-based rank index (rank 1 = 0).
func (s Square) RankIndex() int {
	return int(s) / BoardSize
}

// Col returns the file as a char coordinate.
func (s Square) Col() Col {
	return Col(FirstCol + s.File())
}

// Rank returns the rank as a char coordinate.
func (s Square) Rank() Rank {
	return Rank(FirstRank + s.RankIndex())
}

// Valid reports whether s is one of the 64 board squares.
func (s Square) Valid() bool {
	return s >= 0 && s < 64
}

// String returns the square name, e.g. "e4", or "-" for NoSquare.
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{byte(s.Col()), byte(s.Rank())})
}

// ParseSquare parses a square name such as "e4".
func ParseSquare(name string) (Square, bool) {
	if len(name) != 2 {
		return NoSquare, false
	}
	sq := NewSquare(Col(name[0]), Rank(name[1]))
	return sq, sq != NoSquare
}
