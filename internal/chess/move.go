package chess

// Move is a from/to square pair. It carries no piece information: the
// piece is whatever stands on From when the move is validated.
type Move struct {
	From Square
	To   Square
}

// NewMove creates a move from file and rank indices.
func NewMove(fromFile, fromRank, toFile, toRank int) Move {
	return Move{From: Sq(fromFile, fromRank), To: Sq(toFile, toRank)}
}

// FileDelta returns the signed file difference to - from.
func (m Move) FileDelta() int {
	return m.To.File - m.From.File
}

// RankDelta returns the signed rank difference to - from.
func (m Move) RankDelta() int {
	return m.To.Rank - m.From.Rank
}

// String returns the move in coordinate notation, e.g. "e2e4".
func (m Move) String() string {
	return m.From.String() + m.To.String()
}
