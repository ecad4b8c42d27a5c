package engine

import (
	"fmt"

	"github.com/lgbarn/chessmove-go/internal/chess"
)

// validatePawn checks pawn geometry. The branches run in a fixed order:
// direction, distance, then capture shape against the destination. A friendly
// piece on the destination is left for the caller's own-piece check.
func validatePawn(board *chess.Board, pawn chess.Piece, m chess.Move) error {
	df := m.FileDelta()
	dr := m.RankDelta()

	if dr*pawn.Colour.Forward() < 0 {
		return reject(ReasonPawnForward)
	}

	if pawn.Moves == 0 {
		if !oneOrTwo(dr) {
			return reject(fmt.Sprintf(
				"Pawn can only move one or two squares forward on the first move, attempted to move %d squares",
				abs(dr)))
		}
	} else if abs(dr) != 1 {
		return reject(ReasonPawnOneSquare)
	}

	target := board.Get(m.To)
	if !target.IsEmpty() && target.Colour != pawn.Colour {
		if abs(df) != 1 {
			return reject(ReasonPawnCapture)
		}
		return nil
	}

	if board.IsEnPassant(m.To) {
		return nil
	}
	if df != 0 {
		return reject(ReasonPawnDiagonal)
	}
	return nil
}

// enPassantVictim returns the square of the pawn taken when a pawn of the
// given colour lands on the en passant target at to.
func enPassantVictim(colour chess.Colour, to chess.Square) chess.Square {
	return chess.Sq(to.File, to.Rank-colour.Forward())
}
