// Package notation converts between coordinate move text ("e2e4") and
// structured moves.
package notation

import (
	"strings"

	"github.com/lgbarn/chessmove-go/internal/chess"
	"github.com/lgbarn/chessmove-go/internal/errors"
)

// MoveLen is the length of a coordinate move: file, rank, file, rank.
const MoveLen = 4

const reasonOutOfBounds = "Move is out of bounds"

// Decode parses a coordinate move. The text is trimmed and matched
// case-insensitively.
func Decode(text string) (chess.Move, error) {
	text = strings.ToLower(strings.TrimSpace(text))
	if len(text) != MoveLen {
		return chess.Move{}, errors.Wrapf(errors.ErrInvalidInput, "move %q must be %d characters", text, MoveLen)
	}

	from, err := decodeSquare(text[0], text[1])
	if err != nil {
		return chess.Move{}, err
	}
	to, err := decodeSquare(text[2], text[3])
	if err != nil {
		return chess.Move{}, err
	}
	return chess.Move{From: from, To: to}, nil
}

// Encode returns the lowercase coordinate form of a move.
func Encode(m chess.Move) string {
	return m.From.String() + m.To.String()
}

// ParseSquare parses a two-character algebraic square such as "e3".
func ParseSquare(text string) (chess.Square, error) {
	text = strings.ToLower(text)
	if len(text) != 2 {
		return chess.Square{}, errors.Wrapf(errors.ErrInvalidInput, "square %q must be 2 characters", text)
	}
	return decodeSquare(text[0], text[1])
}

// decodeSquare converts a lowercase file letter and rank digit to a square.
// Characters of the wrong kind are malformed input; letters and digits past
// the edge of the board are an out-of-bounds move.
func decodeSquare(file, rank byte) (chess.Square, error) {
	if file < 'a' || file > 'z' || rank < '0' || rank > '9' {
		return chess.Square{}, errors.Wrapf(errors.ErrInvalidInput, "bad square %q", string([]byte{file, rank}))
	}
	sq := chess.Sq(int(file)-chess.FileBase, int(rank)-chess.RankBase)
	if !sq.Valid() {
		return chess.Square{}, errors.NewMoveError(reasonOutOfBounds)
	}
	return sq, nil
}
