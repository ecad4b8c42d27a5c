package gamefile

import (
	"io"

	"github.com/inhies/go-bytesize"
)

// ByteCountingReader keeps track of the bytes read through it. Wrapping the
// raw file gives the on-disk size of a compressed game.
type ByteCountingReader struct {
	reader    io.Reader
	bytesRead bytesize.ByteSize
}

// NewByteCountingReader wraps r.
func NewByteCountingReader(r io.Reader) *ByteCountingReader {
	return &ByteCountingReader{reader: r}
}

func (bcr *ByteCountingReader) Read(p []byte) (n int, err error) {
	c, err := bcr.reader.Read(p)
	bcr.bytesRead += bytesize.ByteSize(uint64(c))
	return c, err
}

// BytesRead returns the number of bytes read so far.
func (bcr *ByteCountingReader) BytesRead() bytesize.ByteSize {
	return bcr.bytesRead
}

// ByteCountingWriter is the write side counterpart of ByteCountingReader.
type ByteCountingWriter struct {
	writer       io.Writer
	bytesWritten bytesize.ByteSize
}

// NewByteCountingWriter wraps w.
func NewByteCountingWriter(w io.Writer) *ByteCountingWriter {
	return &ByteCountingWriter{writer: w}
}

func (bcw *ByteCountingWriter) Write(p []byte) (n int, err error) {
	c, err := bcw.writer.Write(p)
	bcw.bytesWritten += bytesize.ByteSize(uint64(c))
	return c, err
}

// BytesWritten returns the number of bytes written so far.
func (bcw *ByteCountingWriter) BytesWritten() bytesize.ByteSize {
	return bcw.bytesWritten
}
