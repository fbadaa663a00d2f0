package lz4f

import (
	"hash"

	"github.com/go-faster/errors"
	"github.com/pierrec/xxHash/xxHash32"

	"github.com/andybalholm/lz4f/block"
)

type compressStage byte

const (
	compressIdle compressStage = iota
	compressHeaderWritten
)

// CompressOptions tune a single Compressor.Update call.
type CompressOptions struct {
	// StableSrc promises that src stays valid and unmodified until the next
	// call, so linked frames may keep referring to it instead of copying the
	// last 64 KiB into the session.
	StableSrc bool
}

// Compressor writes LZ4 frames incrementally: Begin writes the header,
// Update compresses input, Flush forces out buffered input and End finishes
// the frame. A Compressor can be reused for any number of frames.
//
// A Compressor is not safe for concurrent use by multiple goroutines.
type Compressor struct {
	prefs     Preferences
	stage     compressStage
	blockSize int

	// in stages a partial block.
	in    []byte
	total uint64
	xxh   hash.Hash32
	win   window
	block block.Compressor
}

// NewCompressor returns a Compressor ready for Begin.
func NewCompressor() *Compressor {
	return &Compressor{xxh: xxHash32.New(0)}
}

// Preferences returns the preferences of the current frame, after Begin
// resolved the defaults.
func (c *Compressor) Preferences() Preferences { return c.prefs }

// Reset abandons the current frame. The Compressor can then Begin again.
func (c *Compressor) Reset() {
	c.stage = compressIdle
	c.in = c.in[:0]
	c.win.reset()
}

// Begin writes the frame header for prefs into dst and returns its size.
// A nil prefs selects the defaults. dst needs room for MaxHeaderSize bytes.
func (c *Compressor) Begin(dst []byte, prefs *Preferences) (int, error) {
	if c.stage != compressIdle {
		return 0, errors.Wrap(ErrStageWrong, "begin")
	}
	if len(dst) < MaxHeaderSize {
		return 0, errors.Wrapf(ErrDstMaxSizeTooSmall, "header needs %d bytes, have %d", MaxHeaderSize, len(dst))
	}

	var p Preferences
	if prefs != nil {
		p = *prefs
	}
	p.BlockSize = p.BlockSize.resolve()
	if p.BlockSize.Size() == 0 {
		return 0, errors.Wrapf(ErrMaxBlockSizeInvalid, "block size id %d", p.BlockSize)
	}
	if p.BlockMode != BlockLinked && p.BlockMode != BlockIndependent {
		return 0, errors.Wrapf(ErrBlockModeInvalid, "block mode %d", p.BlockMode)
	}
	if p.FrameType != FrameNormal {
		return 0, errors.Wrapf(ErrFrameTypeUnknown, "cannot compress into %s frame", p.FrameType)
	}
	if p.ContentSize != 0 {
		p.BlockSize = optimalBlockSize(p.BlockSize, p.ContentSize)
		if p.ContentSize <= uint64(p.BlockSize.Size()) {
			p.BlockMode = BlockIndependent
		}
	}
	if p.CompressionLevel > block.MaxLevel {
		p.CompressionLevel = block.MaxLevel
	}
	if p.CompressionLevel < 0 {
		p.CompressionLevel = 0
	}

	c.prefs = p
	c.blockSize = p.BlockSize.Size()
	if cap(c.in) < c.blockSize {
		c.in = make([]byte, 0, c.blockSize)
	}
	c.in = c.in[:0]
	c.total = 0
	if c.xxh == nil {
		c.xxh = xxHash32.New(0)
	}
	c.xxh.Reset()
	c.win.reset()
	c.block.Reset(p.CompressionLevel, p.BlockMode == BlockLinked)

	n := len(appendHeader(dst[:0], &p.FrameInfo))
	c.stage = compressHeaderWritten
	return n, nil
}

func (c *Compressor) linked() bool {
	return c.prefs.BlockMode == BlockLinked
}

// compressBlock writes src as one block, compressed if that makes it smaller.
func (c *Compressor) compressBlock(dst, src []byte) (int, error) {
	var dict []byte
	if c.linked() {
		dict = c.win.bytes()
	}
	n, err := c.block.Compress(dst[blockHeaderSize:blockHeaderSize+len(src)-1], dict, src)
	if err != nil {
		return 0, errors.Wrap(err, "compress block")
	}
	if n == 0 {
		le.PutUint32(dst, uint32(len(src))|blockUncompressedFlag)
		return blockHeaderSize + copy(dst[blockHeaderSize:], src), nil
	}
	le.PutUint32(dst, uint32(n))
	return blockHeaderSize + n, nil
}

// Update compresses src into dst and returns the number of bytes written,
// which is zero if src was only buffered. dst must hold at least
// CompressBound(len(src), prefs) bytes. opts may be nil.
func (c *Compressor) Update(dst, src []byte, opts *CompressOptions) (int, error) {
	if c.stage != compressHeaderWritten {
		return 0, errors.Wrap(ErrStageWrong, "update")
	}
	if bound := CompressBound(len(src), &c.prefs); len(dst) < bound {
		return 0, errors.Wrapf(ErrDstMaxSizeTooSmall, "need %d bytes, have %d", bound, len(dst))
	}
	stable := opts != nil && opts.StableSrc
	bs := c.blockSize
	var di, si int

	// Complete the staged block.
	if len(c.in) > 0 {
		k := bs - len(c.in)
		if k > len(src) {
			k = len(src)
		}
		c.in = append(c.in, src[:k]...)
		si = k
		if len(c.in) == bs {
			n, err := c.compressBlock(dst[di:], c.in)
			if err != nil {
				return di, err
			}
			di += n
			if c.linked() {
				c.win.push(c.in)
			}
			c.in = c.in[:0]
		}
	}

	for len(src)-si >= bs {
		n, err := c.compressBlock(dst[di:], src[si:si+bs])
		if err != nil {
			return di, err
		}
		di += n
		si += bs
		if c.linked() {
			c.win.update(src[:si], bs)
		}
	}

	if c.prefs.AutoFlush && si < len(src) {
		rest := len(src) - si
		n, err := c.compressBlock(dst[di:], src[si:])
		if err != nil {
			return di, err
		}
		di += n
		si = len(src)
		if c.linked() {
			c.win.update(src, rest)
		}
	}

	c.in = append(c.in, src[si:]...)
	if c.linked() && !stable {
		c.win.preserve()
	}

	if c.prefs.ContentChecksum {
		_, _ = c.xxh.Write(src)
	}
	c.total += uint64(len(src))
	return di, nil
}

// Flush compresses any buffered input into dst as a block of its own and
// returns the number of bytes written.
func (c *Compressor) Flush(dst []byte) (int, error) {
	if c.stage != compressHeaderWritten {
		return 0, errors.Wrap(ErrStageWrong, "flush")
	}
	if len(c.in) == 0 {
		return 0, nil
	}
	if need := blockHeaderSize + len(c.in); len(dst) < need {
		return 0, errors.Wrapf(ErrDstMaxSizeTooSmall, "flush needs %d bytes, have %d", need, len(dst))
	}
	n, err := c.compressBlock(dst, c.in)
	if err != nil {
		return 0, err
	}
	if c.linked() {
		c.win.push(c.in)
	}
	c.in = c.in[:0]
	return n, nil
}

// endSize is how many bytes End needs in the worst case.
func (c *Compressor) endSize() int {
	n := blockHeaderSize
	if len(c.in) > 0 {
		n += blockHeaderSize + len(c.in)
	}
	if c.prefs.ContentChecksum {
		n += checksumSize
	}
	return n
}

// End flushes buffered input, writes the end mark and the content checksum,
// and returns the number of bytes written. The Compressor is then ready for
// the next Begin. If the frame declared a content size that does not match
// the input, the frame is complete but End returns ErrFrameSizeWrong.
func (c *Compressor) End(dst []byte) (int, error) {
	if c.stage != compressHeaderWritten {
		return 0, errors.Wrap(ErrStageWrong, "end")
	}
	if need := c.endSize(); len(dst) < need {
		return 0, errors.Wrapf(ErrDstMaxSizeTooSmall, "end needs %d bytes, have %d", need, len(dst))
	}
	n, err := c.Flush(dst)
	if err != nil {
		return n, err
	}
	le.PutUint32(dst[n:], 0)
	n += blockHeaderSize
	if c.prefs.ContentChecksum {
		le.PutUint32(dst[n:], c.xxh.Sum32())
		n += checksumSize
	}

	c.stage = compressIdle
	c.win.reset()
	if size := c.prefs.ContentSize; size != 0 && size != c.total {
		return n, errors.Wrapf(ErrFrameSizeWrong, "declared %d bytes, got %d", size, c.total)
	}
	return n, nil
}
