package render

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/lgbarn/chessmove-go/internal/chess"
)

// Snapshot represents the visible game state in JSON format.
type Snapshot struct {
	Rows      []string `json:"rows"` // rank 8 first, one letter per square, '.' empty
	Turn      string   `json:"turn"`
	History   []string `json:"history"`
	Captured  []string `json:"captured"`
	EnPassant string   `json:"enPassant"`
	Halfmove  uint     `json:"halfmove"`
	Fullmove  uint     `json:"fullmove"`
	Castling  string   `json:"castling"`
}

// NewSnapshot captures the state of board.
func NewSnapshot(board *chess.Board) *Snapshot {
	rows := make([]string, 0, chess.BoardSize)
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		var sb strings.Builder
		for file := 0; file < chess.BoardSize; file++ {
			piece := board.At(file, rank)
			if piece.IsEmpty() {
				sb.WriteByte('.')
			} else {
				sb.WriteByte(piece.Letter())
			}
		}
		rows = append(rows, sb.String())
	}

	captured := make([]string, len(board.Captured))
	for i, p := range board.Captured {
		captured[i] = string(p.Letter())
	}

	ep := "-"
	if board.EnPassant {
		ep = board.EPSquare.String()
	}

	return &Snapshot{
		Rows:      rows,
		Turn:      strings.ToLower(board.ToMove.String()),
		History:   append([]string{}, board.History...),
		Captured:  captured,
		EnPassant: ep,
		Halfmove:  board.HalfmoveClock,
		Fullmove:  board.MoveNumber,
		Castling:  castlingText(board),
	}
}

// castlingText returns the stored castling flags in position string form.
func castlingText(board *chess.Board) string {
	var sb strings.Builder
	flags := []struct {
		set    bool
		letter byte
	}{
		{board.WKingCastle, 'K'},
		{board.WQueenCastle, 'Q'},
		{board.BKingCastle, 'k'},
		{board.BQueenCastle, 'q'},
	}
	for _, f := range flags {
		if f.set {
			sb.WriteByte(f.letter)
		}
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}

// JSONWriter writes one JSON snapshot per board.
type JSONWriter struct {
	enc *json.Encoder
}

// NewJSONWriter creates a JSON writer. Indent may be empty for compact
// output.
func NewJSONWriter(w io.Writer, indent string) *JSONWriter {
	enc := json.NewEncoder(w)
	if indent != "" {
		enc.SetIndent("", indent)
	}
	return &JSONWriter{enc: enc}
}

// WriteBoard writes the snapshot of board.
func (jw *JSONWriter) WriteBoard(board *chess.Board) error {
	return jw.enc.Encode(NewSnapshot(board))
}
