package lz4f

import (
	"io"

	"github.com/go-faster/errors"
	"go.uber.org/zap"
)

// ReaderOptions configure a Reader.
type ReaderOptions struct {
	// BufferSize is the size of reads from the source. Defaults to 64 KiB.
	BufferSize int
	Logger     *zap.Logger
}

func (o *ReaderOptions) setDefaults() {
	if o.BufferSize <= 0 {
		o.BufferSize = 64 << 10
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
}

// A Reader decompresses a stream of frames.
type Reader struct {
	src io.Reader
	d   *Decompressor
	lg  *zap.Logger

	buf      []byte
	pos, end int
	// srcErr is the error of the last read from src, reported once the
	// buffer is drained.
	srcErr error
	frames int
}

// NewReader returns a Reader decompressing r.
func NewReader(r io.Reader, opt ReaderOptions) *Reader {
	opt.setDefaults()
	return &Reader{
		src: r,
		d:   NewDecompressor(),
		lg:  opt.Logger,
		buf: make([]byte, opt.BufferSize),
	}
}

// fill reads more input. The decompressor requires every byte to be
// consumed first, so the buffer is only refilled when empty.
func (r *Reader) fill() {
	n, err := r.src.Read(r.buf)
	r.pos, r.end = 0, n
	r.srcErr = err
}

func (r *Reader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	for {
		nDst, nSrc, hint, err := r.d.Decompress(p, r.buf[r.pos:r.end])
		r.pos += nSrc
		if err != nil {
			return nDst, errors.Wrap(err, "decompress")
		}
		if hint == 0 && nSrc > 0 && r.d.stage == stageGetHeader {
			r.frames++
			if ce := r.lg.Check(zap.DebugLevel, "Frame decoded"); ce != nil {
				ce.Write(
					zap.Int("frame", r.frames),
					zap.Stringer("type", r.d.info.FrameType),
				)
			}
		}
		if nDst > 0 {
			return nDst, nil
		}
		if r.pos < r.end {
			continue
		}
		if r.srcErr != nil {
			return 0, r.finish()
		}
		r.fill()
	}
}

// finish reports the end of the source.
func (r *Reader) finish() error {
	if r.srcErr != io.EOF {
		return errors.Wrap(r.srcErr, "read")
	}
	if r.d.stage != stageGetHeader {
		return errors.Wrapf(io.ErrUnexpectedEOF, "input ends in %s", r.d.stage)
	}
	return io.EOF
}

// Reset discards the Reader's state and makes it read from src.
func (r *Reader) Reset(src io.Reader) {
	r.src = src
	r.d.Reset()
	r.pos, r.end = 0, 0
	r.srcErr = nil
	r.frames = 0
}
