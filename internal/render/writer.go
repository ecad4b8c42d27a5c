// Package render draws boards for people and programs.
package render

import "github.com/lgbarn/chessmove-go/internal/chess"

// BoardWriter is the interface for writing a board to output.
// Implementations handle different formats (terminal text, JSON).
type BoardWriter interface {
	// WriteBoard writes the board position and game state.
	WriteBoard(board *chess.Board) error
}

// Options control how a TextWriter draws.
type Options struct {
	Colour       bool // ANSI chequered squares and highlights
	Unicode      bool // piece glyphs and full-width file labels
	ShowCaptured bool // list captured pieces under the board
}

// ANSI escape sequences.
const (
	ansiReset       = "\x1b[0m"
	ansiBold        = "\x1b[1m"
	ansiRed         = "\x1b[31m"
	ansiBlackFg     = "\x1b[30m"
	ansiLightSquare = "\x1b[47m"
	ansiDarkSquare  = "\x1b[104m"
	ansiClearScreen = "\x1b[2J"
)
