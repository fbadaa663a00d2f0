package lz4f

import (
	"encoding/binary"

	"github.com/go-faster/errors"
	"github.com/pierrec/xxHash/xxHash32"
)

var le = binary.LittleEndian

const (
	// Magic starts every LZ4 frame.
	Magic uint32 = 0x184D2204
	// MagicSkippableStart is the first of the 16 skippable frame magic
	// numbers.
	MagicSkippableStart uint32 = 0x184D2A50
	magicSkippableMask  uint32 = 0xFFFFFFF0

	// MaxHeaderSize is the largest frame header, magic included.
	MaxHeaderSize = 15
	minHeaderSize = 7

	blockHeaderSize       = 4
	blockUncompressedFlag = 0x80000000
	blockSizeMask         = 0x7FFFFFFF
	checksumSize          = 4

	// winSize is how far back a linked block may refer.
	winSize = 64 << 10

	frameVersion = 1
)

//go:generate go run github.com/dmarkham/enumer -type BlockSizeID -trimprefix Block -output block_size_enum.go

// BlockSizeID selects the maximum block size of a frame.
type BlockSizeID byte

const (
	BlockSizeDefault BlockSizeID = 0
	Block64KB        BlockSizeID = 4
	Block256KB       BlockSizeID = 5
	Block1MB         BlockSizeID = 6
	Block4MB         BlockSizeID = 7
)

// Size returns the block size in bytes, or 0 if id is not valid.
// BlockSizeDefault is 64 KiB.
func (id BlockSizeID) Size() int {
	switch id {
	case BlockSizeDefault, Block64KB:
		return 64 << 10
	case Block256KB:
		return 256 << 10
	case Block1MB:
		return 1 << 20
	case Block4MB:
		return 4 << 20
	default:
		return 0
	}
}

func (id BlockSizeID) resolve() BlockSizeID {
	if id == BlockSizeDefault {
		return Block64KB
	}
	return id
}

//go:generate go run github.com/dmarkham/enumer -transform lower -type BlockMode -trimprefix Block -output block_mode_enum.go

// BlockMode tells whether blocks may refer to the data of the blocks
// before them.
type BlockMode byte

const (
	BlockLinked      BlockMode = 0
	BlockIndependent BlockMode = 1
)

//go:generate go run github.com/dmarkham/enumer -transform lower -type FrameType -trimprefix Frame -output frame_type_enum.go

// FrameType distinguishes data frames from skippable frames.
type FrameType byte

const (
	FrameNormal FrameType = iota
	FrameSkippable
)

// FrameInfo describes a frame.
type FrameInfo struct {
	BlockSize       BlockSizeID
	BlockMode       BlockMode
	ContentChecksum bool
	FrameType       FrameType
	// ContentSize is the declared plaintext size; zero means unknown.
	// For skippable frames it is the size of the skipped data.
	ContentSize uint64
}

// Preferences configure a compression session. The zero value is
// linked 64 KiB blocks at level 0 without checksum or declared size.
type Preferences struct {
	FrameInfo
	// CompressionLevel below 3 selects the fast compressor, 3 and above the
	// high compression one. Values above 16 count as 16.
	CompressionLevel int
	// AutoFlush makes every Update emit all of its input instead of
	// keeping a partial block.
	AutoFlush bool
}

// headerSize returns the size of a frame header carrying info.
func headerSize(info *FrameInfo) int {
	if info.ContentSize != 0 {
		return minHeaderSize + 8
	}
	return minHeaderSize
}

// appendHeader appends the frame header for info. The block size must be
// resolved already.
func appendHeader(dst []byte, info *FrameInfo) []byte {
	dst = le.AppendUint32(dst, Magic)
	start := len(dst)

	flg := byte(frameVersion << 6)
	flg |= byte(info.BlockMode&1) << 5
	if info.ContentSize != 0 {
		flg |= 1 << 3
	}
	if info.ContentChecksum {
		flg |= 1 << 2
	}
	dst = append(dst, flg, byte(info.BlockSize&7)<<4)
	if info.ContentSize != 0 {
		dst = le.AppendUint64(dst, info.ContentSize)
	}
	return append(dst, headerChecksum(dst[start:]))
}

// headerChecksum is the second byte of the xxh32 of the frame descriptor.
func headerChecksum(descriptor []byte) byte {
	return byte(xxHash32.Checksum(descriptor, 0) >> 8)
}

// headerSizeOf returns the full header size implied by the first five
// bytes of a normal frame.
func headerSizeOf(b []byte) int {
	if b[4]&(1<<3) != 0 {
		return minHeaderSize + 8
	}
	return minHeaderSize
}

func isSkippable(magic uint32) bool {
	return magic&magicSkippableMask == MagicSkippableStart
}

// parseHeader decodes a complete normal frame header.
func parseHeader(b []byte) (FrameInfo, error) {
	var info FrameInfo
	size := headerSizeOf(b)
	if len(b) < size {
		return info, errors.Wrap(ErrFrameHeaderIncomplete, "parse header")
	}
	if c := headerChecksum(b[4 : size-1]); c != b[size-1] {
		return info, errors.Wrapf(ErrHeaderChecksumInvalid, "got %#x, expected %#x", b[size-1], c)
	}

	flg, bd := b[4], b[5]
	if v := flg >> 6; v != frameVersion {
		return info, errors.Wrapf(ErrHeaderVersionWrong, "version %d", v)
	}
	if flg&(1<<4) != 0 {
		return info, errors.Wrap(ErrBlockChecksumUnsupported, "parse header")
	}
	if flg&3 != 0 {
		return info, errors.Wrap(ErrReservedFlagSet, "FLG")
	}
	if bd&0x8F != 0 {
		return info, errors.Wrap(ErrReservedFlagSet, "BD")
	}
	id := BlockSizeID(bd >> 4 & 7)
	if id < Block64KB {
		return info, errors.Wrapf(ErrMaxBlockSizeInvalid, "block size id %d", id)
	}

	info.BlockSize = id
	info.BlockMode = BlockMode(flg >> 5 & 1)
	info.ContentChecksum = flg&(1<<2) != 0
	info.FrameType = FrameNormal
	if size > minHeaderSize {
		info.ContentSize = le.Uint64(b[6:])
	}
	return info, nil
}
