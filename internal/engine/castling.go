package engine

import "github.com/lgbarn/chessmove-go/internal/chess"

// Files involved in castling.
const (
	kingFile      = 4
	kingsideFile  = 6
	queensideFile = 2
	kingsideRook  = 7
	queensideRook = 0
)

// validateKing accepts either a castling pattern or a single step.
func validateKing(board *chess.Board, king chess.Piece, m chess.Move) error {
	if canCastle(board, king, m) {
		return nil
	}
	if abs(m.FileDelta()) > 1 || abs(m.RankDelta()) > 1 {
		return reject(ReasonKingStep)
	}
	return nil
}

// canCastle reports whether m is a castling move for an unmoved king with an
// unmoved rook of its colour in the matching corner and nothing in between.
// Check is not considered.
func canCastle(board *chess.Board, king chess.Piece, m chess.Move) bool {
	if king.Moves != 0 {
		return false
	}
	home := king.Colour.HomeRank()
	if m.From != chess.Sq(kingFile, home) || m.To.Rank != home {
		return false
	}

	rookFile, ok := castlingRookFile(m.To.File)
	if !ok {
		return false
	}
	rook := board.At(rookFile, home)
	if !rook.Is(chess.Rook, king.Colour) || rook.Moves != 0 {
		return false
	}

	lo, hi := kingFile+1, rookFile-1
	if rookFile < kingFile {
		lo, hi = rookFile+1, kingFile-1
	}
	return isRankClear(board, home, lo, hi)
}

// IsCastling reports whether piece moving along m is a castle. Only a king
// moving exactly two files counts; a one-file king step to the g or c file
// never touches a rook.
func IsCastling(piece chess.Piece, m chess.Move) bool {
	return piece.Class == chess.King && abs(m.FileDelta()) == 2
}

// castlingRookFile maps a castling king destination to its rook's file.
func castlingRookFile(kingTo int) (int, bool) {
	switch kingTo {
	case kingsideFile:
		return kingsideRook, true
	case queensideFile:
		return queensideRook, true
	}
	return 0, false
}

// castleRook relocates the rook for a king that has just moved two files. The
// rook's move count is left alone.
func castleRook(board *chess.Board, m chess.Move) {
	rookFile, ok := castlingRookFile(m.To.File)
	if !ok {
		return
	}
	rank := m.From.Rank
	from := chess.Sq(rookFile, rank)
	to := chess.Sq(m.From.File+sign(m.FileDelta()), rank)

	board.Set(to, board.Get(from))
	board.Clear(from)
}
