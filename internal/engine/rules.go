package engine

import (
	"github.com/lgbarn/chessmove-go/internal/chess"
	"github.com/lgbarn/chessmove-go/internal/errors"
)

// Rejection reasons shown to the player.
const (
	ReasonNoPiece        = "No piece on square"
	ReasonNotYourPiece   = "Not your piece"
	ReasonOwnPiece       = "Can't capture your own piece"
	ReasonPawnForward    = "Pawn can only move forward"
	ReasonPawnOneSquare  = "Pawn can only move one square forward"
	ReasonPawnCapture    = "Pawn can only capture diagonally"
	ReasonPawnDiagonal   = "Pawn can not move diagonally"
	ReasonKnightShape    = "Knight can only move two squares forward and one square sideways, or two squares sideways and one square forward"
	ReasonBishopDiagonal = "Bishop can only move diagonally"
	ReasonBishopBlocked  = "Bishop can not move through pieces"
	ReasonRookLine       = "Rook can only move horizontally or vertically"
	ReasonRookBlocked    = "Rook can not move through pieces"
	ReasonQueenLine      = "Queen can only move horizontally, vertically, or diagonally"
	ReasonQueenBlocked   = "Queen can not move through pieces"
	ReasonKingStep       = "King can only move one square in any direction"
)

// pieceRule checks the class-specific geometry of a move. The piece on
// m.From is passed in so rules need not look it up again.
type pieceRule func(board *chess.Board, piece chess.Piece, m chess.Move) error

var pieceRules = map[chess.Class]pieceRule{
	chess.Pawn:   validatePawn,
	chess.Knight: validateKnight,
	chess.Bishop: validateBishop,
	chess.Rook:   validateRook,
	chess.Queen:  validateQueen,
	chess.King:   validateKing,
}

// Validate reports whether m is legal on board. It never modifies the board.
// Checks run in a fixed order and the first failure is returned as a
// *errors.MoveError: the mover must exist and belong to the side to move,
// the class rule must pass, and the destination must not hold a friendly
// piece. There is no notion of check.
func Validate(board *chess.Board, m chess.Move) error {
	piece := board.Get(m.From)
	if piece.IsEmpty() {
		return reject(ReasonNoPiece)
	}
	if piece.Colour != board.ToMove {
		return reject(ReasonNotYourPiece)
	}

	rule, ok := pieceRules[piece.Class]
	if !ok {
		return reject(ReasonNoPiece)
	}
	if err := rule(board, piece, m); err != nil {
		return err
	}

	if target := board.Get(m.To); !target.IsEmpty() && target.Colour == board.ToMove {
		return reject(ReasonOwnPiece)
	}
	return nil
}

func reject(reason string) error {
	return errors.NewMoveError(reason)
}
