// Package engine provides chess move validation and board manipulation.
package engine

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/lgbarn/chessmove-go/internal/chess"
	"github.com/lgbarn/chessmove-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// fenFields are the six space-separated fields of a position string, in order.
var fenFields = []string{"moves", "start", "castling", "en passant", "halfmove", "fullmove"}

// ConvertFENCharToClass converts a FEN character to a piece class.
func ConvertFENCharToClass(c rune) chess.Class {
	switch unicode.ToUpper(c) {
	case 'K':
		return chess.King
	case 'Q':
		return chess.Queen
	case 'R':
		return chess.Rook
	case 'N':
		return chess.Knight
	case 'B':
		return chess.Bishop
	case 'P':
		return chess.Pawn
	default:
		return chess.NoClass
	}
}

// NewBoardFromFEN creates a board from a FEN string. A fresh board is built
// on every call; nothing is carried over from any earlier position.
func NewBoardFromFEN(fen string) (*chess.Board, error) {
	parts := strings.Fields(fen)
	if len(parts) < len(fenFields) {
		return nil, fenError("missing " + fenFields[len(parts)])
	}

	board := chess.NewBoard()

	if err := parseSideToMove(board, parts[1]); err != nil {
		return nil, err
	}
	parseCastlingRights(board, parts[2])
	if err := parseEnPassant(board, parts[3]); err != nil {
		return nil, err
	}
	if err := parseClocks(board, parts[4], parts[5]); err != nil {
		return nil, err
	}
	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, err
	}

	return board, nil
}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *chess.Board {
	board, err := NewBoardFromFEN(InitialFEN)
	if err != nil {
		panic("engine: initial position does not parse: " + err.Error())
	}
	return board
}

func fenError(detail string) error {
	return &errors.FENError{Detail: detail}
}

// parsePiecePositions parses the piece placement field. Ranks are listed
// from rank 8 down to rank 1.
func parsePiecePositions(board *chess.Board, positions string) error {
	rows := strings.Split(positions, "/")
	if len(rows) > chess.BoardSize {
		return fenError("position out of bounds")
	}

	for i, row := range rows {
		rank := chess.BoardSize - 1 - i
		file := 0
		for _, c := range row {
			if c >= '0' && c <= '9' {
				file += int(c - '0')
				continue
			}

			class := ConvertFENCharToClass(c)
			if class == chess.NoClass {
				return fenError("invalid piece")
			}
			if file >= chess.BoardSize {
				return fenError("position out of bounds")
			}

			colour := chess.White
			if unicode.IsLower(c) {
				colour = chess.Black
			}
			board.Set(chess.Sq(file, rank), chess.NewPiece(class, colour))
			file++
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(board *chess.Board, field string) error {
	switch field {
	case "w":
		board.ToMove = chess.White
	case "b":
		board.ToMove = chess.Black
	default:
		return fenError("invalid start")
	}
	return nil
}

// parseCastlingRights parses the castling availability field. The flags are
// recorded as given and never consulted by move validation.
func parseCastlingRights(board *chess.Board, field string) {
	board.WKingCastle = strings.ContainsRune(field, 'K')
	board.WQueenCastle = strings.ContainsRune(field, 'Q')
	board.BKingCastle = strings.ContainsRune(field, 'k')
	board.BQueenCastle = strings.ContainsRune(field, 'q')
}

// parseEnPassant parses the en passant target square field. Only the third
// and sixth ranks can hold a target.
func parseEnPassant(board *chess.Board, field string) error {
	board.ClearEnPassant()
	if field == "-" {
		return nil
	}

	if field[0] < 'a' || field[0] > 'h' {
		return fenError("invalid en passant file")
	}
	if len(field) < 2 {
		return fenError("missing en passant rank")
	}

	var rank int
	switch field[1] {
	case '3':
		rank = 2
	case '6':
		rank = 5
	default:
		return fenError("invalid en passant rank")
	}

	board.SetEnPassant(chess.Sq(int(field[0]-'a'), rank))
	return nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
// Neither value is range checked.
func parseClocks(board *chess.Board, halfmove, fullmove string) error {
	hm, err := strconv.ParseUint(halfmove, 10, 0)
	if err != nil {
		return fenError("invalid halfmove clock")
	}
	fm, err := strconv.ParseUint(fullmove, 10, 0)
	if err != nil {
		return fenError("invalid fullmove number")
	}
	board.HalfmoveClock = uint(hm)
	board.MoveNumber = uint(fm)
	return nil
}
