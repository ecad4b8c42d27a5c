// Package gamefile saves and restores games as a list of moves in
// coordinate notation. A game file holds nothing but the accepted moves
// separated by spaces; positions are rebuilt by replaying them.
package gamefile

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/inhies/go-bytesize"

	"github.com/lgbarn/chessmove-go/internal/chess"
	"github.com/lgbarn/chessmove-go/internal/engine"
	"github.com/lgbarn/chessmove-go/internal/errors"
)

// Write writes the move history of board to w as space separated tokens.
// It returns the number of bytes written.
func Write(w io.Writer, board *chess.Board) (int64, error) {
	n, err := io.WriteString(w, strings.Join(board.History, " "))
	return int64(n), err
}

// Read reads all whitespace separated move tokens from r.
func Read(r io.Reader) ([]string, error) {
	var tokens []string
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		tokens = append(tokens, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return tokens, nil
}

// Replay builds a fresh board from startFEN and plays tokens on it. The
// first rejected move stops the replay and is reported as a
// *errors.GameError carrying its 1-based ply and text.
func Replay(startFEN string, tokens []string) (*chess.Board, error) {
	board, err := engine.NewBoardFromFEN(startFEN)
	if err != nil {
		return nil, err
	}

	for i, text := range tokens {
		if err := engine.PlayMove(board, text); err != nil {
			return nil, &errors.GameError{
				Err:      err,
				PlyNum:   i + 1,
				MoveText: text,
			}
		}
	}
	return board, nil
}

// SaveFile writes the move history of board to path, compressed according
// to the file extension. It returns the size of the file written.
func SaveFile(path string, board *chess.Board) (bytesize.ByteSize, error) {
	file, err := os.Create(path)
	if err != nil {
		return 0, &errors.SaveError{Path: path, Err: err}
	}

	counter := NewByteCountingWriter(file)
	size, err := save(counter, board, FormatFromPath(path))
	if cerr := file.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return 0, &errors.SaveError{Path: path, Err: err}
	}
	return size, nil
}

func save(counter *ByteCountingWriter, board *chess.Board, format Format) (bytesize.ByteSize, error) {
	buffered := bufio.NewWriter(counter)
	enc, err := newEncoder(buffered, format)
	if err != nil {
		return 0, err
	}
	if _, err := Write(enc, board); err != nil {
		enc.Close()
		return 0, err
	}
	if err := enc.Close(); err != nil {
		return 0, err
	}
	if err := buffered.Flush(); err != nil {
		return 0, err
	}
	return counter.BytesWritten(), nil
}

// ReadFile reads the move tokens stored at path, decompressing according to
// the file extension. It returns the tokens and the size of the file read.
func ReadFile(path string) ([]string, bytesize.ByteSize, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, 0, &errors.SaveError{Path: path, Err: err}
	}
	defer file.Close()

	counter := NewByteCountingReader(bufio.NewReader(file))
	dec, err := newDecoder(counter, FormatFromPath(path))
	if err != nil {
		return nil, 0, &errors.SaveError{Path: path, Err: err}
	}
	defer dec.Close()

	tokens, err := Read(dec)
	if err != nil {
		return nil, 0, &errors.SaveError{Path: path, Err: err}
	}
	return tokens, counter.BytesRead(), nil
}

// LoadFile reads the game stored at path and replays it from startFEN. It
// returns the replayed board and the size of the file read. A failing move
// is reported as a *errors.GameError naming the file.
func LoadFile(path, startFEN string) (*chess.Board, bytesize.ByteSize, error) {
	tokens, size, err := ReadFile(path)
	if err != nil {
		return nil, 0, err
	}

	board, err := Replay(startFEN, tokens)
	if err != nil {
		var gameErr *errors.GameError
		if errors.As(err, &gameErr) {
			gameErr.File = path
		}
		return nil, size, err
	}
	return board, size, nil
}
