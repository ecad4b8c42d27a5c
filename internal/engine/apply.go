package engine

import (
	"strings"

	"github.com/lgbarn/chessmove-go/internal/chess"
	"github.com/lgbarn/chessmove-go/internal/notation"
)

// ApplyMove applies an already validated move to the board and records text
// in the history. It updates the clocks, the en passant target, captures and
// castling rook placement before handing the turn to the other side.
func ApplyMove(board *chess.Board, m chess.Move, text string) {
	piece := board.Get(m.From)
	colour := piece.Colour

	board.HalfmoveClock++

	if piece.Class == chess.Pawn && board.IsEnPassant(m.To) {
		victim := enPassantVictim(colour, m.To)
		if taken := board.Get(victim); !taken.IsEmpty() {
			board.Captured = append(board.Captured, taken)
			board.Clear(victim)
		}
		board.HalfmoveClock = 0
	}

	if target := board.Get(m.To); !target.IsEmpty() {
		board.Captured = append(board.Captured, target)
		board.HalfmoveClock = 0
	}

	if piece.Class == chess.Pawn {
		board.HalfmoveClock = 0
	}
	// A double advance is any two-rank pawn move; every other move clears the target.
	if piece.Class == chess.Pawn && abs(m.RankDelta()) == 2 {
		board.SetEnPassant(chess.Sq(m.From.File, m.From.Rank+colour.Forward()))
	} else {
		board.ClearEnPassant()
	}

	if IsCastling(piece, m) {
		castleRook(board, m)
	}

	piece.Moves++
	board.Set(m.To, piece)
	board.Clear(m.From)

	board.History = append(board.History, text)
	if colour == chess.Black {
		board.MoveNumber++
	}
	board.ToMove = colour.Opposite()
}

// PlayMove decodes, validates and applies one move given in coordinate
// notation. On any error the board is left unchanged.
func PlayMove(board *chess.Board, text string) error {
	text = strings.TrimSpace(text)
	m, err := notation.Decode(text)
	if err != nil {
		return err
	}
	if err := Validate(board, m); err != nil {
		return err
	}
	ApplyMove(board, m, notation.Encode(m))
	return nil
}
