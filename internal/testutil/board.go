package testutil

import (
	"testing"

	"github.com/lgbarn/chessmove-go/internal/chess"
	"github.com/lgbarn/chessmove-go/internal/engine"
)

// MustBoard builds a board from a position string.
// It calls t.Fatal if the position does not parse.
func MustBoard(t testing.TB, fen string) *chess.Board {
	t.Helper()
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("failed to parse position %q: %v", fen, err)
	}
	return board
}

// MustPlay plays moves on board in order and fails the test on the first
// rejected move. It returns board for chaining.
func MustPlay(t testing.TB, board *chess.Board, moves ...string) *chess.Board {
	t.Helper()
	for i, text := range moves {
		if err := engine.PlayMove(board, text); err != nil {
			t.Fatalf("move %d (%q) rejected: %v", i+1, text, err)
		}
	}
	return board
}

// PlayedBoard returns a board from the initial position after moves.
func PlayedBoard(t testing.TB, moves ...string) *chess.Board {
	t.Helper()
	return MustPlay(t, engine.NewInitialBoard(), moves...)
}

// RuyLopezCastle is a short legal Ruy Lopez line ending in White castling
// kingside. Black is to move afterwards.
var RuyLopezCastle = []string{"e2e4", "e7e5", "g1f3", "b8c6", "f1b5", "g8f6", "e1g1"}
