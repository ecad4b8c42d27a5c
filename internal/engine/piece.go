package engine

import "github.com/lgbarn/chessmove-go/internal/chess"

func validateKnight(_ *chess.Board, _ chess.Piece, m chess.Move) error {
	df, dr := abs(m.FileDelta()), abs(m.RankDelta())
	if (df == 2 && dr == 1) || (df == 1 && dr == 2) {
		return nil
	}
	return reject(ReasonKnightShape)
}

func validateBishop(board *chess.Board, _ chess.Piece, m chess.Move) error {
	if abs(m.FileDelta()) != abs(m.RankDelta()) {
		return reject(ReasonBishopDiagonal)
	}
	if !isDiagonalClear(board, m.From, m.To) {
		return reject(ReasonBishopBlocked)
	}
	return nil
}

func validateRook(board *chess.Board, _ chess.Piece, m chess.Move) error {
	if m.FileDelta() != 0 && m.RankDelta() != 0 {
		return reject(ReasonRookLine)
	}
	if !isStraightClear(board, m.From, m.To) {
		return reject(ReasonRookBlocked)
	}
	return nil
}

// validateQueen tries the straight line before the diagonal.
func validateQueen(board *chess.Board, _ chess.Piece, m chess.Move) error {
	df, dr := m.FileDelta(), m.RankDelta()
	switch {
	case df == 0 || dr == 0:
		if !isStraightClear(board, m.From, m.To) {
			return reject(ReasonQueenBlocked)
		}
	case abs(df) == abs(dr):
		if !isDiagonalClear(board, m.From, m.To) {
			return reject(ReasonQueenBlocked)
		}
	default:
		return reject(ReasonQueenLine)
	}
	return nil
}
