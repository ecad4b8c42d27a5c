// Package chess provides core chess types and operations.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Forward returns +1 for White, -1 for Black (the direction pawns advance in).
func (c Colour) Forward() int {
	if c == White {
		return 1
	}
	return -1
}

// HomeRank returns the back rank index of the colour.
func (c Colour) HomeRank() int {
	if c == White {
		return 0
	}
	return BoardSize - 1
}

// Class represents a chess piece type.
type Class int

const (
	NoClass Class = iota // Empty square
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a class.
func (c Class) String() string {
	names := []string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if c >= 0 && int(c) < len(names) {
		return names[c]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a class (uppercase).
func (c Class) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if c >= 0 && int(c) < len(letters) {
		return letters[c]
	}
	return '?'
}

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8

	RankBase = '1'
	FileBase = 'a'
)

// Piece is a chess piece. It is a plain value copied from square to square;
// Moves counts how many times this piece has been relocated.
type Piece struct {
	Class  Class
	Colour Colour
	Moves  int
}

// NewPiece creates an unmoved piece.
func NewPiece(class Class, colour Colour) Piece {
	return Piece{Class: class, Colour: colour}
}

// W creates an unmoved white piece.
func W(class Class) Piece {
	return NewPiece(class, White)
}

// B creates an unmoved black piece.
func B(class Class) Piece {
	return NewPiece(class, Black)
}

// IsEmpty reports whether p marks an empty square.
func (p Piece) IsEmpty() bool {
	return p.Class == NoClass
}

// Is reports whether p has the given class and colour, ignoring the move count.
func (p Piece) Is(class Class, colour Colour) bool {
	return p.Class == class && p.Colour == colour
}

// Letter returns the FEN letter of the piece: uppercase for White, lowercase for Black.
func (p Piece) Letter() byte {
	l := p.Class.Letter()
	if p.Colour == Black && l >= 'A' && l <= 'Z' {
		l += 'a' - 'A'
	}
	return l
}

// Glyph returns the unicode chess symbol of the piece.
func (p Piece) Glyph() string {
	white := []string{" ", "♙", "♘", "♗", "♖", "♕", "♔"}
	black := []string{" ", "♟", "♞", "♝", "♜", "♛", "♚"}
	if p.Class < 0 || int(p.Class) >= len(white) {
		return "?"
	}
	if p.Colour == White {
		return white[p.Class]
	}
	return black[p.Class]
}

// String returns a short description such as "White Knight".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "Empty"
	}
	return p.Colour.String() + " " + p.Class.String()
}

// Square is a board coordinate. File 0 is 'a', rank 0 is '1'.
type Square struct {
	File int
	Rank int
}

// Sq creates a square from file and rank indices.
func Sq(file, rank int) Square {
	return Square{File: file, Rank: rank}
}

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool {
	return s.File >= 0 && s.File < BoardSize && s.Rank >= 0 && s.Rank < BoardSize
}

// String returns the algebraic name of the square, e.g. "e4".
func (s Square) String() string {
	if !s.Valid() {
		return "??"
	}
	return string([]byte{byte(FileBase + s.File), byte(RankBase + s.Rank)})
}
