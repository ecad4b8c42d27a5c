package gamefile

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lgbarn/chessmove-go/internal/engine"
	"github.com/lgbarn/chessmove-go/internal/errors"
	"github.com/lgbarn/chessmove-go/internal/testutil"
)

func TestWrite(t *testing.T) {
	board := testutil.PlayedBoard(t, "e2e4", "e7e5", "g1f3")

	var buf bytes.Buffer
	n, err := Write(&buf, board)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, "e2e4 e7e5 g1f3", buf.String())
	testutil.AssertEqual(t, int64(buf.Len()), n)
}

func TestWrite_Empty(t *testing.T) {
	var buf bytes.Buffer
	n, err := Write(&buf, engine.NewInitialBoard())
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, int64(0), n)
}

func TestRead(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"single spaces", "e2e4 e7e5", []string{"e2e4", "e7e5"}},
		{"trailing space", "e2e4 e7e5 ", []string{"e2e4", "e7e5"}},
		{"mixed whitespace", "\n e2e4\t\te7e5\r\n", []string{"e2e4", "e7e5"}},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(strings.NewReader(tt.input))
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, tt.want, got)
		})
	}
}

func TestReplay(t *testing.T) {
	board, err := Replay(engine.InitialFEN, testutil.RuyLopezCastle)
	testutil.AssertNoError(t, err)

	want := testutil.PlayedBoard(t, testutil.RuyLopezCastle...)
	testutil.AssertEqual(t, want, board)
}

func TestReplay_Failure(t *testing.T) {
	_, err := Replay(engine.InitialFEN, []string{"e2e4", "e7e5", "e1e3"})
	testutil.AssertErrorIs(t, err, errors.ErrInvalidMove)

	var gameErr *errors.GameError
	testutil.AssertTrue(t, errors.As(err, &gameErr), "want *GameError, got %T", err)
	testutil.AssertEqual(t, 3, gameErr.PlyNum)
	testutil.AssertEqual(t, "e1e3", gameErr.MoveText)
	testutil.AssertContains(t, err.Error(), "King can only move one square in any direction")
}

func TestReplay_BadStart(t *testing.T) {
	_, err := Replay("not a position", nil)
	testutil.AssertErrorIs(t, err, errors.ErrInvalidFEN)
}

func TestSaveLoadFile(t *testing.T) {
	moves := append(append([]string{}, testutil.RuyLopezCastle...), "f8c5", "d2d3")

	for _, name := range []string{"game.txt", "game.zst", "game.bz2", "GAME.ZST"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			board := testutil.PlayedBoard(t, moves...)

			written, err := SaveFile(path, board)
			testutil.AssertNoError(t, err)

			info, err := os.Stat(path)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, info.Size(), int64(written))

			loaded, read, err := LoadFile(path, engine.InitialFEN)
			testutil.AssertNoError(t, err)
			testutil.AssertTrue(t, read > 0, "LoadFile reported no bytes read")
			if FormatFromPath(path) == Plain {
				testutil.AssertEqual(t, written, read)
			}
			testutil.AssertEqual(t, board, loaded)
		})
	}
}

func TestSaveFile_PlainContents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.txt")
	_, err := SaveFile(path, testutil.PlayedBoard(t, "e2e4", "d7d5", "e4d5"))
	testutil.AssertNoError(t, err)

	data, err := os.ReadFile(path)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, "e2e4 d7d5 e4d5", string(data))
}

func TestSaveFile_CompressedHeaders(t *testing.T) {
	tests := []struct {
		name  string
		magic []byte
	}{
		{"game.zst", []byte{0x28, 0xb5, 0x2f, 0xfd}},
		{"GAME.ZST", []byte{0x28, 0xb5, 0x2f, 0xfd}},
		{"game.bz2", []byte("BZh")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.name)
			_, err := SaveFile(path, testutil.PlayedBoard(t, "e2e4"))
			testutil.AssertNoError(t, err)

			data, err := os.ReadFile(path)
			testutil.AssertNoError(t, err)
			testutil.AssertTrue(t, bytes.HasPrefix(data, tt.magic), "%s starts with % x", tt.name, data[:min(len(data), 4)])
		})
	}
}

func TestSaveFile_CompressesLongGames(t *testing.T) {
	var moves []string
	for i := 0; i < 100; i++ {
		moves = append(moves, "g1f3", "g8f6", "f3g1", "f6g8")
	}
	board := testutil.PlayedBoard(t, moves...)
	dir := t.TempDir()

	plain, err := SaveFile(filepath.Join(dir, "game.txt"), board)
	testutil.AssertNoError(t, err)
	for _, name := range []string{"game.zst", "game.bz2"} {
		packed, err := SaveFile(filepath.Join(dir, name), board)
		testutil.AssertNoError(t, err)
		testutil.AssertTrue(t, packed < plain, "%s is %d bytes, plain is %d", name, uint64(packed), uint64(plain))
	}
}

func TestSaveFile_Errors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "game.txt")
	_, err := SaveFile(path, engine.NewInitialBoard())
	testutil.AssertErrorIs(t, err, errors.ErrSaveFailed)
	testutil.AssertErrorIs(t, err, os.ErrNotExist)
	testutil.AssertContains(t, err.Error(), "failed to save game to file")
}

func TestLoadFile_Errors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		_, _, err := LoadFile(filepath.Join(dir, "nope.txt"), engine.InitialFEN)
		testutil.AssertErrorIs(t, err, errors.ErrSaveFailed)
	})

	t.Run("corrupt archive", func(t *testing.T) {
		path := filepath.Join(dir, "bad.bz2")
		testutil.AssertNoError(t, os.WriteFile(path, []byte("e2e4 e7e5"), 0o644))
		_, _, err := LoadFile(path, engine.InitialFEN)
		testutil.AssertErrorIs(t, err, errors.ErrSaveFailed)
	})

	t.Run("illegal move", func(t *testing.T) {
		path := filepath.Join(dir, "bad.txt")
		testutil.AssertNoError(t, os.WriteFile(path, []byte("e2e4 e2e4"), 0o644))
		_, _, err := LoadFile(path, engine.InitialFEN)
		testutil.AssertErrorIs(t, err, errors.ErrInvalidMove)

		var gameErr *errors.GameError
		testutil.AssertTrue(t, errors.As(err, &gameErr))
		testutil.AssertEqual(t, path, gameErr.File)
		testutil.AssertEqual(t, 2, gameErr.PlyNum)
	})
}

func TestFormatFromPath(t *testing.T) {
	tests := map[string]Format{
		"game.txt":     Plain,
		"game":         Plain,
		"a/b/game.zst": Zstd,
		"game.BZ2":     Bzip2,
		"game.txt.zst": Zstd,
	}
	for path, want := range tests {
		if got := FormatFromPath(path); got != want {
			t.Errorf("FormatFromPath(%q) = %v, want %v", path, got, want)
		}
	}
}

func TestByteCounting(t *testing.T) {
	var buf bytes.Buffer
	w := NewByteCountingWriter(&buf)
	_, _ = w.Write([]byte("e2e4 "))
	_, _ = w.Write([]byte("e7e5"))
	testutil.AssertEqual(t, uint64(9), uint64(w.BytesWritten()))

	r := NewByteCountingReader(&buf)
	tokens, err := Read(r)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, 2, len(tokens))
	testutil.AssertEqual(t, uint64(9), uint64(r.BytesRead()))
}
