package engine

import "github.com/lgbarn/chessmove-go/internal/chess"

// isDiagonalClear checks if the squares strictly between from and to on a
// diagonal are empty.
func isDiagonalClear(board *chess.Board, from, to chess.Square) bool {
	fileDir := sign(to.File - from.File)
	rankDir := sign(to.Rank - from.Rank)

	sq := chess.Sq(from.File+fileDir, from.Rank+rankDir)

	for sq.File != to.File && sq.Rank != to.Rank {
		if board.Occupied(sq) {
			return false
		}
		sq = chess.Sq(sq.File+fileDir, sq.Rank+rankDir)
	}

	return true
}

// isStraightClear checks if the squares strictly between from and to on a
// rank or file are empty.
func isStraightClear(board *chess.Board, from, to chess.Square) bool {
	fileDir := sign(to.File - from.File)
	rankDir := sign(to.Rank - from.Rank)

	sq := chess.Sq(from.File+fileDir, from.Rank+rankDir)

	for sq != to && sq.Valid() {
		if board.Occupied(sq) {
			return false
		}
		sq = chess.Sq(sq.File+fileDir, sq.Rank+rankDir)
	}

	return true
}

// isRankClear checks that every square on rank between files lo and hi
// (inclusive) is empty.
func isRankClear(board *chess.Board, rank, lo, hi int) bool {
	for file := lo; file <= hi; file++ {
		if board.Occupied(chess.Sq(file, rank)) {
			return false
		}
	}
	return true
}
