package gamefile

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/dsnet/compress/bzip2"
	"github.com/klauspost/compress/zstd"
)

// Format is the on-disk encoding of a game file.
type Format int

const (
	Plain Format = iota
	Zstd
	Bzip2
)

func (f Format) String() string {
	switch f {
	case Zstd:
		return "zstd"
	case Bzip2:
		return "bzip2"
	default:
		return "plain"
	}
}

// FormatFromPath picks the format from a file extension. Unknown extensions
// are plain text.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".zst":
		return Zstd
	case ".bz2":
		return Bzip2
	default:
		return Plain
	}
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

// zstdReadCloser adapts a zstd decoder, whose Close has no result.
type zstdReadCloser struct{ *zstd.Decoder }

func (z zstdReadCloser) Close() error {
	z.Decoder.Close()
	return nil
}

// newEncoder wraps w so that writes are compressed in format f. Close must be
// called to flush the compressed stream; it does not close w.
func newEncoder(w io.Writer, f Format) (io.WriteCloser, error) {
	switch f {
	case Zstd:
		return zstd.NewWriter(w)
	case Bzip2:
		return bzip2.NewWriter(w, nil)
	default:
		return nopWriteCloser{w}, nil
	}
}

// newDecoder wraps r so that reads are decompressed from format f.
func newDecoder(r io.Reader, f Format) (io.ReadCloser, error) {
	switch f {
	case Zstd:
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return zstdReadCloser{dec}, nil
	case Bzip2:
		return bzip2.NewReader(r, nil)
	default:
		return io.NopCloser(r), nil
	}
}
