package lz4f

import (
	"io"

	"github.com/go-faster/errors"
	"go.uber.org/zap"
)

// WriterOptions configure a Writer.
type WriterOptions struct {
	Preferences Preferences
	Logger      *zap.Logger
}

func (o *WriterOptions) setDefaults() {
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
}

// ErrClosed is returned by writes to a closed Writer.
var ErrClosed = errors.New("lz4f: writer closed")

// A Writer compresses everything written to it into one frame.
type Writer struct {
	dst   io.Writer
	c     *Compressor
	prefs Preferences
	lg    *zap.Logger

	buf     []byte
	chunk   int
	begun   bool
	closed  bool
	written int64
	in      int64
	err     error
}

// NewWriter returns a Writer compressing to w.
func NewWriter(w io.Writer, opt WriterOptions) *Writer {
	opt.setDefaults()
	return &Writer{
		dst:   w,
		c:     NewCompressor(),
		prefs: opt.Preferences,
		lg:    opt.Logger,
	}
}

func (w *Writer) emit(n int) error {
	if n == 0 {
		return nil
	}
	m, err := w.dst.Write(w.buf[:n])
	w.written += int64(m)
	if err != nil {
		w.err = errors.Wrap(err, "write")
		return w.err
	}
	return nil
}

func (w *Writer) begin() error {
	if w.begun {
		return nil
	}
	var header [MaxHeaderSize]byte
	n, err := w.c.Begin(header[:], &w.prefs)
	if err != nil {
		w.err = errors.Wrap(err, "begin frame")
		return w.err
	}
	w.begun = true

	// Begin may have picked a smaller block size.
	p := w.c.Preferences()
	w.chunk = p.BlockSize.Size()
	need := CompressBound(w.chunk, &p)
	if cap(w.buf) < need {
		w.buf = make([]byte, need)
	}
	w.buf = w.buf[:need]
	copy(w.buf, header[:n])

	if ce := w.lg.Check(zap.DebugLevel, "Frame started"); ce != nil {
		ce.Write(
			zap.Stringer("block_size", p.BlockSize),
			zap.Stringer("block_mode", p.BlockMode),
			zap.Bool("checksum", p.ContentChecksum),
			zap.Int("level", p.CompressionLevel),
		)
	}
	return w.emit(n)
}

// Write compresses p. Input is buffered until a block is full unless
// AutoFlush is set.
func (w *Writer) Write(p []byte) (int, error) {
	if w.closed {
		return 0, ErrClosed
	}
	if w.err != nil {
		return 0, w.err
	}
	if err := w.begin(); err != nil {
		return 0, err
	}
	var written int
	for len(p) > 0 {
		chunk := p
		if len(chunk) > w.chunk {
			chunk = chunk[:w.chunk]
		}
		n, err := w.c.Update(w.buf, chunk, nil)
		if err != nil {
			w.err = errors.Wrap(err, "update")
			return written, w.err
		}
		if err := w.emit(n); err != nil {
			return written, err
		}
		written += len(chunk)
		w.in += int64(len(chunk))
		p = p[len(chunk):]
	}
	return written, nil
}

// Flush writes buffered input as a block.
func (w *Writer) Flush() error {
	if w.closed {
		return ErrClosed
	}
	if w.err != nil {
		return w.err
	}
	if err := w.begin(); err != nil {
		return err
	}
	n, err := w.c.Flush(w.buf)
	if err != nil {
		w.err = errors.Wrap(err, "flush")
		return w.err
	}
	return w.emit(n)
}

// Close finishes the frame. It does not close the underlying writer.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	if w.err != nil {
		return w.err
	}
	if err := w.begin(); err != nil {
		return err
	}
	w.closed = true
	n, endErr := w.c.End(w.buf)
	if err := w.emit(n); err != nil {
		return err
	}
	if endErr != nil {
		w.err = errors.Wrap(endErr, "end frame")
		return w.err
	}
	if ce := w.lg.Check(zap.DebugLevel, "Frame written"); ce != nil {
		ce.Write(
			zap.Int64("in", w.in),
			zap.Int64("out", w.written),
		)
	}
	return nil
}

// Reset discards the Writer's state and makes it write a new frame to dst.
func (w *Writer) Reset(dst io.Writer) {
	w.c.Reset()
	w.dst = dst
	w.begun = false
	w.closed = false
	w.written = 0
	w.in = 0
	w.err = nil
}
