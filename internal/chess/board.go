package chess

// Board represents a chess board with all state needed for the game.
type Board struct {
	// The board squares, indexed Squares[file][rank]. A piece with class
	// NoClass is an empty square.
	Squares [BoardSize][BoardSize]Piece

	// Who has the next move.
	ToMove Colour

	// The current fullmove number, incremented after Black moves.
	MoveNumber uint

	// Castling availability as read from the position string. These flags
	// are informational only: play never updates them and the legality
	// engine derives castling from the king's and rook's move counts.
	WKingCastle  bool
	WQueenCastle bool
	BKingCastle  bool
	BQueenCastle bool

	// Is EnPassant capture possible? If so then EPSquare is the square a
	// pawn skipped over on the previous move.
	EnPassant bool
	EPSquare  Square

	// The half-move clock since the last pawn move or capture.
	HalfmoveClock uint

	// Accepted moves in coordinate notation, in the order they were played.
	History []string

	// Pieces removed from the board, in capture order.
	Captured []Piece
}

// NewBoard creates a new empty board with White to move.
func NewBoard() *Board {
	return &Board{
		ToMove:       White,
		MoveNumber:   1,
		WKingCastle:  true,
		WQueenCastle: true,
		BKingCastle:  true,
		BQueenCastle: true,
	}
}

// Get returns the piece on the given square. Off-board squares read as empty.
func (b *Board) Get(sq Square) Piece {
	if !sq.Valid() {
		return Piece{}
	}
	return b.Squares[sq.File][sq.Rank]
}

// At returns the piece at the given file and rank indices.
func (b *Board) At(file, rank int) Piece {
	return b.Get(Sq(file, rank))
}

// Occupied reports whether a piece stands on the square.
func (b *Board) Occupied(sq Square) bool {
	return !b.Get(sq).IsEmpty()
}

// Set places a piece on the given square.
func (b *Board) Set(sq Square, piece Piece) {
	if sq.Valid() {
		b.Squares[sq.File][sq.Rank] = piece
	}
}

// Clear empties the given square.
func (b *Board) Clear(sq Square) {
	b.Set(sq, Piece{})
}

// IsEnPassant reports whether sq is the current en passant target.
func (b *Board) IsEnPassant(sq Square) bool {
	return b.EnPassant && b.EPSquare == sq
}

// SetEnPassant records sq as the en passant target.
func (b *Board) SetEnPassant(sq Square) {
	b.EnPassant = true
	b.EPSquare = sq
}

// ClearEnPassant removes the en passant target.
func (b *Board) ClearEnPassant() {
	b.EnPassant = false
	b.EPSquare = Square{}
}

// Plies returns the number of moves accepted on this board.
func (b *Board) Plies() int {
	return len(b.History)
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	if b.History != nil {
		newBoard.History = append([]string(nil), b.History...)
	}
	if b.Captured != nil {
		newBoard.Captured = append([]Piece(nil), b.Captured...)
	}
	return newBoard
}
