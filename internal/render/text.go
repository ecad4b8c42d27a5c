package render

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chessmove-go/internal/chess"
)

const (
	unicodeFiles = "ａｂｃｄｅｆｇｈ"
	asciiFiles   = "a b c d e f g h"
)

// TextWriter draws a board as text for a terminal.
type TextWriter struct {
	w    io.Writer
	opts Options
}

// NewTextWriter creates a text writer.
func NewTextWriter(w io.Writer, opts Options) *TextWriter {
	return &TextWriter{w: w, opts: opts}
}

// WriteBoard draws the grid with rank 8 at the top, labelled on all sides.
func (tw *TextWriter) WriteBoard(board *chess.Board) error {
	bw := bufio.NewWriter(tw.w)

	labels := tw.fileLabels()
	fmt.Fprintf(bw, "  %s\n", labels)
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		fmt.Fprintf(bw, "%d ", rank+1)
		for file := 0; file < chess.BoardSize; file++ {
			bw.WriteString(tw.square(board.At(file, rank), file, rank))
		}
		fmt.Fprintf(bw, " %d\n", rank+1)
	}
	fmt.Fprintf(bw, "  %s\n", labels)

	if tw.opts.ShowCaptured && len(board.Captured) > 0 {
		fmt.Fprintf(bw, "\ncaptured: %s\n", tw.captured(board.Captured))
	}
	return bw.Flush()
}

// WriteFrame draws one screen of the interactive loop: clear, the last
// error if any, the board, and the turn prompt.
func (tw *TextWriter) WriteFrame(board *chess.Board, lastErr string) error {
	bw := bufio.NewWriter(tw.w)
	if tw.opts.Colour {
		bw.WriteString(ansiClearScreen)
	}
	if lastErr != "" {
		fmt.Fprintf(bw, "\n%s\n\n", tw.style(ansiRed, lastErr))
	}
	if err := bw.Flush(); err != nil {
		return err
	}

	if err := tw.WriteBoard(board); err != nil {
		return err
	}

	fmt.Fprintf(bw, "\n%s to move:\n> ", tw.style(ansiBold, board.ToMove.String()))
	return bw.Flush()
}

func (tw *TextWriter) fileLabels() string {
	if tw.opts.Unicode {
		return unicodeFiles
	}
	return asciiFiles
}

// square renders one two column cell. Light squares are those whose file
// and 1-based rank sum to an even number.
func (tw *TextWriter) square(piece chess.Piece, file, rank int) string {
	symbol := " "
	if !piece.IsEmpty() {
		if tw.opts.Unicode {
			symbol = piece.Glyph()
		} else {
			symbol = string(piece.Letter())
		}
	}

	if !tw.opts.Colour {
		if piece.IsEmpty() {
			symbol = "."
		}
		return symbol + " "
	}

	background := ansiDarkSquare
	if (file+rank+1)%2 == 0 {
		background = ansiLightSquare
	}
	return background + ansiBlackFg + symbol + " " + ansiReset
}

func (tw *TextWriter) captured(pieces []chess.Piece) string {
	parts := make([]string, len(pieces))
	for i, p := range pieces {
		if tw.opts.Unicode {
			parts[i] = p.Glyph()
		} else {
			parts[i] = string(p.Letter())
		}
	}
	return strings.Join(parts, " ")
}

func (tw *TextWriter) style(code, text string) string {
	if !tw.opts.Colour {
		return text
	}
	return code + text + ansiReset
}
