package lz4f

import (
	"hash"

	"github.com/go-faster/errors"
	"github.com/pierrec/xxHash/xxHash32"

	"github.com/andybalholm/lz4f/block"
)

// Decompressor decodes LZ4 frames incrementally. Input and output may be
// split into chunks of any size; every call makes as much progress as the
// buffers allow.
//
// A Decompressor is not safe for concurrent use by multiple goroutines.
type Decompressor struct {
	// StableDst promises that the output of previous calls stays valid and
	// unmodified until the frame ends, so linked frames can refer back to it
	// without copying.
	StableDst bool

	stage stage
	err   error
	info  FrameInfo

	maxBlockSize int

	// header stages the frame header, or the magic and size of a skippable
	// frame.
	header [MaxHeaderSize]byte
	// small stages block sizes and the content checksum.
	small [4]byte
	// tmp stages compressed blocks.
	tmp []byte
	// tmpSize is how much of a field is staged, and tmpTarget how much is
	// needed. For raw blocks and skippable frames tmpTarget counts the bytes
	// still to copy or skip.
	tmpSize   int
	tmpTarget int
	// in is the compressed block being decoded, in src or tmp.
	in []byte

	tmpOut      []byte
	tmpOutStart int

	win      window
	xxh      hash.Hash32
	produced uint64

	// srcExpect is where the next call has to resume reading.
	srcExpect *byte
}

// NewDecompressor returns a Decompressor ready to decode a frame.
func NewDecompressor() *Decompressor {
	return &Decompressor{xxh: xxHash32.New(0)}
}

// Reset abandons the current frame and clears any error.
func (d *Decompressor) Reset() {
	d.stage = stageGetHeader
	d.err = nil
	d.info = FrameInfo{}
	d.tmpSize = 0
	d.tmpTarget = 0
	d.in = nil
	d.tmpOut = d.tmpOut[:0]
	d.tmpOutStart = 0
	d.win.reset()
	d.srcExpect = nil
}

func (d *Decompressor) fail(err error) error {
	d.stage = stageFailed
	d.err = err
	d.srcExpect = nil
	d.in = nil
	return err
}

func (d *Decompressor) linked() bool {
	return d.info.FrameType == FrameNormal && d.info.BlockMode == BlockLinked
}

// consume accounts for decoded plaintext.
func (d *Decompressor) consume(p []byte) {
	if d.info.ContentChecksum {
		_, _ = d.xxh.Write(p)
	}
	d.produced += uint64(len(p))
}

// decodeHeader parses the frame header at the start of b. staged tells
// whether b is d.header. It returns the number of bytes used.
func (d *Decompressor) decodeHeader(b []byte, staged bool) (int, error) {
	d.info = FrameInfo{}
	magic := le.Uint32(b)
	if isSkippable(magic) {
		d.info.FrameType = FrameSkippable
		if staged {
			d.tmpSize = len(b)
			d.tmpTarget = 8
			d.stage = stageStoreSkipSize
			return len(b), nil
		}
		d.stage = stageGetSkipSize
		return 4, nil
	}
	if magic != Magic {
		return 0, errors.Wrapf(ErrFrameTypeUnknown, "magic %#x", magic)
	}

	size := headerSizeOf(b)
	if len(b) < size {
		d.tmpSize = len(b)
		d.tmpTarget = size
		d.stage = stageStoreHeader
		return len(b), nil
	}
	info, err := parseHeader(b[:size])
	if err != nil {
		return 0, err
	}

	d.info = info
	d.maxBlockSize = info.BlockSize.Size()
	if d.xxh == nil {
		d.xxh = xxHash32.New(0)
	}
	d.xxh.Reset()
	d.produced = 0
	d.win.reset()
	d.tmpSize = 0
	d.tmpTarget = 0
	d.tmpOut = d.tmpOut[:0]
	d.tmpOutStart = 0
	d.stage = stageGetBlockSize
	return size, nil
}

// startBlock interprets a block size field.
func (d *Decompressor) startBlock(v uint32) error {
	size := int(v & blockSizeMask)
	if size == 0 {
		d.stage = stageGetSuffix
		return nil
	}
	if size > d.maxBlockSize {
		return errors.Wrapf(ErrBlockSizeInvalid, "block of %d bytes, maximum %d", size, d.maxBlockSize)
	}
	d.tmpTarget = size
	if v&blockUncompressedFlag != 0 {
		d.stage = stageCopyDirect
	} else {
		d.stage = stageGetBlock
	}
	return nil
}

func (d *Decompressor) checkSuffix(v uint32) error {
	if sum := d.xxh.Sum32(); v != sum {
		return errors.Wrapf(ErrContentChecksumInvalid, "got %#x, expected %#x", v, sum)
	}
	d.stage = stageGetHeader
	return nil
}

func (d *Decompressor) startSkip(v uint32) {
	d.info.ContentSize = uint64(v)
	d.tmpTarget = int(v)
	d.stage = stageSkip
}

func (d *Decompressor) dict() []byte {
	if d.linked() {
		return d.win.bytes()
	}
	return nil
}

// hint returns the number of source bytes worth providing next.
func (d *Decompressor) hint() int {
	switch d.stage {
	case stageGetHeader:
		return minHeaderSize
	case stageStoreHeader:
		return d.tmpTarget - d.tmpSize + blockHeaderSize
	case stageGetBlockSize:
		return blockHeaderSize
	case stageStoreBlockSize:
		return blockHeaderSize - d.tmpSize
	case stageCopyDirect, stageGetBlock:
		return d.tmpTarget + blockHeaderSize
	case stageStoreBlock:
		return d.tmpTarget - d.tmpSize + blockHeaderSize
	case stageDecodeBlock, stageDecodeIntoDst, stageDecodeIntoTmp, stageFlushOut:
		return blockHeaderSize
	case stageGetSuffix:
		if d.info.ContentChecksum {
			return checksumSize
		}
		return 0
	case stageStoreSuffix:
		return checksumSize - d.tmpSize
	case stageGetSkipSize:
		return 4
	case stageStoreSkipSize:
		return d.tmpTarget - d.tmpSize
	case stageSkip:
		return d.tmpTarget
	default:
		return 0
	}
}

// Decompress decodes src into dst. It returns the number of bytes written to
// dst and read from src, and a hint of how many source bytes the next call
// should provide; the hint is 0 when a frame has been completely decoded.
//
// A call stops early when dst is full or a frame ends. The next call must
// then pass the unread remainder src[nSrc:], not a copy of it.
//
// Any error is final for the frame: later calls return the same error until
// Reset.
func (d *Decompressor) Decompress(dst, src []byte) (nDst, nSrc, hint int, err error) {
	return d.decompress(dst, src, false)
}

// GetFrameInfo decodes the frame header at the start of src without
// decoding any block. The header bytes are consumed, so decoding continues
// with src[nSrc:]. If src does not hold the whole header, nothing is consumed
// and the error is ErrFrameHeaderIncomplete. Once the header is known,
// GetFrameInfo consumes nothing and returns it again.
func (d *Decompressor) GetFrameInfo(src []byte) (info FrameInfo, nSrc, hint int, err error) {
	switch d.stage {
	case stageFailed:
		return FrameInfo{}, 0, 0, d.err
	case stageStoreHeader:
		return FrameInfo{}, 0, d.hint(), errors.Wrap(ErrFrameHeaderIncomplete, "header partially staged")
	case stageGetHeader:
		if need := frameHeaderNeed(src); len(src) < need {
			return FrameInfo{}, 0, need, errors.Wrapf(ErrFrameHeaderIncomplete, "have %d of %d bytes", len(src), need)
		}
	case stageGetSkipSize, stageStoreSkipSize:
	default:
		return d.info, 0, d.hint(), nil
	}

	_, nSrc, hint, err = d.decompress(nil, src, true)
	if err != nil {
		return FrameInfo{}, nSrc, 0, err
	}
	if d.stage != stageGetBlockSize && d.stage != stageSkip {
		return FrameInfo{}, nSrc, hint, errors.Wrap(ErrFrameHeaderIncomplete, "skippable frame size")
	}
	return d.info, nSrc, hint, nil
}

// frameHeaderNeed returns how many bytes the header starting b occupies, as
// far as it can tell from b.
func frameHeaderNeed(b []byte) int {
	if len(b) < 5 {
		return minHeaderSize
	}
	if isSkippable(le.Uint32(b)) {
		return 8
	}
	return headerSizeOf(b)
}

func (d *Decompressor) decompress(dst, src []byte, headerOnly bool) (nDst, nSrc, hint int, err error) {
	if d.stage == stageFailed {
		return 0, 0, 0, d.err
	}
	if d.srcExpect != nil && (len(src) == 0 || &src[0] != d.srcExpect) {
		return 0, 0, 0, d.fail(errors.Wrap(ErrSrcPtrWrong, "decompress"))
	}

	// start is where the current frame's output begins in dst.
	var si, di, start int
	hint = 1

loop:
	for {
		if headerOnly && (d.stage == stageGetBlockSize || d.stage == stageSkip) {
			hint = d.hint()
			break
		}

		switch d.stage {
		case stageGetHeader:
			if si == len(src) {
				hint = minHeaderSize
				break loop
			}
			if len(src)-si >= MaxHeaderSize {
				n, err := d.decodeHeader(src[si:], false)
				if err != nil {
					return di, si, 0, d.fail(err)
				}
				si += n
				start = di
				continue
			}
			d.tmpSize = 0
			d.tmpTarget = minHeaderSize
			d.stage = stageStoreHeader

		case stageStoreHeader:
			n := copy(d.header[d.tmpSize:d.tmpTarget], src[si:])
			d.tmpSize += n
			si += n
			if d.tmpSize < d.tmpTarget {
				hint = d.tmpTarget - d.tmpSize + blockHeaderSize
				break loop
			}
			if _, err := d.decodeHeader(d.header[:d.tmpTarget], true); err != nil {
				return di, si, 0, d.fail(err)
			}
			start = di

		case stageGetBlockSize:
			if len(src)-si < blockHeaderSize {
				d.tmpSize = 0
				d.stage = stageStoreBlockSize
				continue
			}
			v := le.Uint32(src[si:])
			si += blockHeaderSize
			if err := d.startBlock(v); err != nil {
				return di, si, 0, d.fail(err)
			}
			if d.stage == stageGetBlock && di == len(dst) {
				hint = d.hint()
				break loop
			}

		case stageStoreBlockSize:
			n := copy(d.small[d.tmpSize:blockHeaderSize], src[si:])
			d.tmpSize += n
			si += n
			if d.tmpSize < blockHeaderSize {
				hint = blockHeaderSize - d.tmpSize
				break loop
			}
			if err := d.startBlock(le.Uint32(d.small[:])); err != nil {
				return di, si, 0, d.fail(err)
			}
			if d.stage == stageGetBlock && di == len(dst) {
				hint = d.hint()
				break loop
			}

		case stageCopyDirect:
			n := min(d.tmpTarget, len(src)-si, len(dst)-di)
			copy(dst[di:di+n], src[si:si+n])
			d.consume(dst[di : di+n])
			if d.linked() {
				d.win.update(dst[start:di+n], n)
			}
			si += n
			di += n
			if n == d.tmpTarget {
				d.stage = stageGetBlockSize
				continue
			}
			d.tmpTarget -= n
			hint = d.tmpTarget + blockHeaderSize
			break loop

		case stageGetBlock:
			if len(src)-si < d.tmpTarget {
				d.tmpSize = 0
				d.stage = stageStoreBlock
				continue
			}
			d.in = src[si : si+d.tmpTarget]
			si += d.tmpTarget
			d.stage = stageDecodeBlock

		case stageStoreBlock:
			if cap(d.tmp) < d.maxBlockSize {
				d.tmp = make([]byte, d.maxBlockSize)
			}
			d.tmp = d.tmp[:cap(d.tmp)]
			n := copy(d.tmp[d.tmpSize:d.tmpTarget], src[si:])
			d.tmpSize += n
			si += n
			if d.tmpSize < d.tmpTarget {
				hint = d.tmpTarget - d.tmpSize + blockHeaderSize
				break loop
			}
			d.in = d.tmp[:d.tmpTarget]
			d.stage = stageDecodeBlock

		case stageDecodeBlock:
			if len(dst)-di < d.maxBlockSize {
				d.stage = stageDecodeIntoTmp
			} else {
				d.stage = stageDecodeIntoDst
			}

		case stageDecodeIntoDst:
			out := dst[di : di+d.maxBlockSize]
			n, err := block.Decompress(out, d.dict(), d.in)
			if err != nil {
				return di, si, 0, d.fail(errors.Wrapf(ErrDecompressionFailed, "%v", err))
			}
			d.in = nil
			d.consume(out[:n])
			if d.linked() {
				d.win.update(dst[start:di+n], n)
			}
			di += n
			d.stage = stageGetBlockSize

		case stageDecodeIntoTmp:
			if cap(d.tmpOut) < d.maxBlockSize {
				d.tmpOut = make([]byte, d.maxBlockSize)
			}
			out := d.tmpOut[:d.maxBlockSize]
			n, err := block.Decompress(out, d.dict(), d.in)
			if err != nil {
				return di, si, 0, d.fail(errors.Wrapf(ErrDecompressionFailed, "%v", err))
			}
			d.in = nil
			d.tmpOut = out[:n]
			d.tmpOutStart = 0
			d.consume(d.tmpOut)
			if d.linked() {
				d.win.push(d.tmpOut)
			}
			d.stage = stageFlushOut

		case stageFlushOut:
			n := copy(dst[di:], d.tmpOut[d.tmpOutStart:])
			d.tmpOutStart += n
			di += n
			if d.tmpOutStart == len(d.tmpOut) {
				d.stage = stageGetBlockSize
				continue
			}
			hint = blockHeaderSize
			break loop

		case stageGetSuffix:
			if size := d.info.ContentSize; size != 0 && size != d.produced {
				return di, si, 0, d.fail(errors.Wrapf(ErrFrameSizeWrong, "declared %d bytes, decoded %d", size, d.produced))
			}
			if !d.info.ContentChecksum {
				d.stage = stageGetHeader
				hint = 0
				break loop
			}
			if len(src)-si < checksumSize {
				d.tmpSize = 0
				d.stage = stageStoreSuffix
				continue
			}
			v := le.Uint32(src[si:])
			si += checksumSize
			if err := d.checkSuffix(v); err != nil {
				return di, si, 0, d.fail(err)
			}
			hint = 0
			break loop

		case stageStoreSuffix:
			n := copy(d.small[d.tmpSize:checksumSize], src[si:])
			d.tmpSize += n
			si += n
			if d.tmpSize < checksumSize {
				hint = checksumSize - d.tmpSize
				break loop
			}
			if err := d.checkSuffix(le.Uint32(d.small[:])); err != nil {
				return di, si, 0, d.fail(err)
			}
			hint = 0
			break loop

		case stageGetSkipSize:
			if len(src)-si < 4 {
				d.tmpSize = 4
				d.tmpTarget = 8
				d.stage = stageStoreSkipSize
				continue
			}
			d.startSkip(le.Uint32(src[si:]))
			si += 4

		case stageStoreSkipSize:
			n := copy(d.header[d.tmpSize:d.tmpTarget], src[si:])
			d.tmpSize += n
			si += n
			if d.tmpSize < d.tmpTarget {
				hint = d.tmpTarget - d.tmpSize
				break loop
			}
			d.startSkip(le.Uint32(d.header[4:8]))

		case stageSkip:
			n := min(d.tmpTarget, len(src)-si)
			si += n
			d.tmpTarget -= n
			hint = d.tmpTarget
			if d.tmpTarget == 0 {
				d.stage = stageGetHeader
			}
			break loop

		default:
			return di, si, 0, d.fail(errors.Wrapf(ErrGeneric, "unexpected stage %s", d.stage))
		}
	}

	if d.linked() && d.win.borrowed && !d.StableDst && d.stage.midFrame() {
		d.win.preserve()
	}
	if si < len(src) {
		d.srcExpect = &src[si]
	} else {
		d.srcExpect = nil
	}
	return di, si, hint, nil
}
