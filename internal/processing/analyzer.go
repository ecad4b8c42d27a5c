// Package processing provides analysis and validation of recorded games.
package processing

import (
	"fmt"
	"strings"

	"github.com/inhies/go-bytesize"

	"github.com/lgbarn/chessmove-go/internal/chess"
	"github.com/lgbarn/chessmove-go/internal/engine"
	"github.com/lgbarn/chessmove-go/internal/errors"
	"github.com/lgbarn/chessmove-go/internal/gamefile"
	"github.com/lgbarn/chessmove-go/internal/notation"
)

// GameAnalysis holds statistics gathered while replaying a game.
type GameAnalysis struct {
	FinalBoard *chess.Board
	Plies      int

	// Pieces taken by each side, en passant included.
	WhiteCaptures int
	BlackCaptures int

	EnPassantCaptures int
	Castles           int
}

// ValidationResult holds the result of game validation.
type ValidationResult struct {
	Valid     bool
	Plies     int // plies replayed successfully
	ErrorPly  int
	ErrorMove string
	ErrorMsg  string
}

// FileReport is the outcome of verifying one saved game file.
type FileReport struct {
	Path       string
	Size       bytesize.ByteSize
	Validation *ValidationResult
	Analysis   *GameAnalysis // nil unless the game is valid
}

// AnalyzeGame replays moves from startFEN and gathers statistics. The first
// rejected move stops the replay and is returned as a *errors.GameError
// together with the statistics of the plies played before it.
func AnalyzeGame(startFEN string, moves []string) (*GameAnalysis, error) {
	board, err := engine.NewBoardFromFEN(startFEN)
	if err != nil {
		return nil, err
	}
	analysis := &GameAnalysis{FinalBoard: board}

	for i, text := range moves {
		epTarget, hadTarget := board.EPSquare, board.EnPassant
		captures := len(board.Captured)

		if err := engine.PlayMove(board, text); err != nil {
			return analysis, &errors.GameError{Err: err, PlyNum: i + 1, MoveText: text}
		}
		analysis.Plies++

		// History holds the normalised text, which always decodes.
		m, _ := notation.Decode(board.History[len(board.History)-1])
		mover := board.Get(m.To)

		if len(board.Captured) > captures {
			if mover.Colour == chess.White {
				analysis.WhiteCaptures++
			} else {
				analysis.BlackCaptures++
			}
		}
		if hadTarget && mover.Class == chess.Pawn && m.To == epTarget {
			analysis.EnPassantCaptures++
		}
		if engine.IsCastling(mover, m) {
			analysis.Castles++
		}
	}

	return analysis, nil
}

// ValidateGame reports whether every move replays from startFEN.
func ValidateGame(startFEN string, moves []string) *ValidationResult {
	return validation(AnalyzeGame(startFEN, moves))
}

// validation turns the outcome of one AnalyzeGame call into a result.
func validation(analysis *GameAnalysis, err error) *ValidationResult {
	result := &ValidationResult{Valid: err == nil}
	if analysis != nil {
		result.Plies = analysis.Plies
	}
	if err == nil {
		return result
	}

	var gameErr *errors.GameError
	if errors.As(err, &gameErr) {
		result.ErrorPly = gameErr.PlyNum
		result.ErrorMove = gameErr.MoveText
		result.ErrorMsg = fmt.Sprintf("illegal move at ply %d: %s: %s",
			gameErr.PlyNum, gameErr.MoveText, errors.Reason(gameErr.Err))
	} else {
		result.ErrorMsg = err.Error()
	}
	return result
}

// VerifyFile reads and validates the game saved at path. Only I/O failures
// are returned as errors; illegal moves are described in the report.
func VerifyFile(path, startFEN string) (*FileReport, error) {
	moves, size, err := gamefile.ReadFile(path)
	if err != nil {
		return nil, err
	}

	analysis, err := AnalyzeGame(startFEN, moves)
	report := &FileReport{
		Path:       path,
		Size:       size,
		Validation: validation(analysis, err),
	}
	if report.Validation.Valid {
		report.Analysis = analysis
	}
	return report, nil
}

// Summary returns a one line description of the report.
func (r *FileReport) Summary() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s (%s): ", r.Path, r.Size)
	if !r.Validation.Valid {
		sb.WriteString(r.Validation.ErrorMsg)
		return sb.String()
	}
	a := r.Analysis
	fmt.Fprintf(&sb, "ok, %d plies, captures %d/%d", a.Plies, a.WhiteCaptures, a.BlackCaptures)
	if a.EnPassantCaptures > 0 {
		fmt.Fprintf(&sb, ", %d en passant", a.EnPassantCaptures)
	}
	if a.Castles > 0 {
		fmt.Fprintf(&sb, ", %d castles", a.Castles)
	}
	return sb.String()
}
