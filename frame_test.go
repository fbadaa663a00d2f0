package lz4f

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHeader(t *testing.T) {
	for _, tt := range []struct {
		Name string
		Info FrameInfo
		Size int
	}{
		{Name: "Default", Info: FrameInfo{BlockSize: Block64KB}, Size: 7},
		{Name: "Independent", Info: FrameInfo{BlockSize: Block4MB, BlockMode: BlockIndependent, ContentChecksum: true}, Size: 7},
		{Name: "ContentSize", Info: FrameInfo{BlockSize: Block256KB, ContentSize: 1 << 40}, Size: 15},
	} {
		t.Run(tt.Name, func(t *testing.T) {
			b := appendHeader(nil, &tt.Info)
			require.Len(t, b, tt.Size)
			require.Equal(t, tt.Size, headerSize(&tt.Info))
			require.Equal(t, tt.Size, headerSizeOf(b))
			require.Equal(t, Magic, le.Uint32(b))

			info, err := parseHeader(b)
			require.NoError(t, err)
			require.Equal(t, tt.Info, info)
		})
	}
}

func TestHeaderKnownBytes(t *testing.T) {
	// The lz4 command line tool default.
	b := appendHeader(nil, &FrameInfo{BlockSize: Block64KB, BlockMode: BlockIndependent, ContentChecksum: true})
	require.Equal(t, []byte{0x04, 0x22, 0x4d, 0x18, 0x64, 0x40, 0xa7}, b)

	b = appendHeader(nil, &FrameInfo{BlockSize: Block64KB, ContentChecksum: true})
	require.Equal(t, []byte{0x04, 0x22, 0x4d, 0x18, 0x44, 0x40, 0x5e}, b)
}

func TestParseHeaderErrors(t *testing.T) {
	valid := appendHeader(nil, &FrameInfo{BlockSize: Block64KB, ContentChecksum: true})

	// mutate changes the descriptor and fixes the checksum.
	mutate := func(f func(b []byte)) []byte {
		b := append([]byte(nil), valid...)
		f(b)
		b[len(b)-1] = headerChecksum(b[4 : len(b)-1])
		return b
	}

	for _, tt := range []struct {
		Name   string
		Header []byte
		Code   ErrorCode
	}{
		{Name: "Incomplete", Header: valid[:6], Code: ErrFrameHeaderIncomplete},
		{
			Name: "Checksum",
			Header: func() []byte {
				b := append([]byte(nil), valid...)
				b[6] ^= 1
				return b
			}(),
			Code: ErrHeaderChecksumInvalid,
		},
		{
			// A bad checksum is reported before anything else.
			Name: "ChecksumFirst",
			Header: func() []byte {
				b := append([]byte(nil), valid...)
				b[4] |= 3
				return b
			}(),
			Code: ErrHeaderChecksumInvalid,
		},
		{Name: "Version", Header: mutate(func(b []byte) { b[4] = b[4]&0x3f | 2<<6 }), Code: ErrHeaderVersionWrong},
		{Name: "BlockChecksum", Header: mutate(func(b []byte) { b[4] |= 1 << 4 }), Code: ErrBlockChecksumUnsupported},
		{Name: "FLGReserved", Header: mutate(func(b []byte) { b[4] |= 1 << 1 }), Code: ErrReservedFlagSet},
		{Name: "BDHighBit", Header: mutate(func(b []byte) { b[5] |= 1 << 7 }), Code: ErrReservedFlagSet},
		{Name: "BDLowBits", Header: mutate(func(b []byte) { b[5] |= 1 }), Code: ErrReservedFlagSet},
		{Name: "BlockSize", Header: mutate(func(b []byte) { b[5] = 3 << 4 }), Code: ErrMaxBlockSizeInvalid},
	} {
		t.Run(tt.Name, func(t *testing.T) {
			_, err := parseHeader(tt.Header)
			require.Error(t, err)
			code, ok := AsCode(err)
			require.True(t, ok)
			require.Equal(t, tt.Code, code, "%v", err)
		})
	}
}

func TestBlockSizeID(t *testing.T) {
	require.Equal(t, 64<<10, BlockSizeDefault.Size())
	require.Equal(t, 4<<20, Block4MB.Size())
	require.Zero(t, BlockSizeID(3).Size())
	require.Equal(t, Block64KB, BlockSizeDefault.resolve())
	require.Equal(t, "256KB", Block256KB.String())
	require.Equal(t, "BlockSizeID(9)", BlockSizeID(9).String())
	require.Equal(t, "SizeDefault", BlockSizeDefault.String())
	require.False(t, BlockSizeID(3).IsABlockSizeID())

	id, err := BlockSizeIDString("1mb")
	require.NoError(t, err)
	require.Equal(t, Block1MB, id)
	_, err = BlockSizeIDString("2MB")
	require.Error(t, err)

	for _, id := range BlockSizeIDValues() {
		require.Equal(t, id == BlockSizeDefault, id.resolve() != id)
	}
}

func TestFrameEnumNames(t *testing.T) {
	require.Equal(t, "linked", BlockLinked.String())
	require.Equal(t, "independent", BlockIndependent.String())
	require.Equal(t, "BlockMode(2)", BlockMode(2).String())
	require.Equal(t, "skippable", FrameSkippable.String())
	require.Equal(t, []string{"normal", "skippable"}, FrameTypeStrings())

	mode, err := BlockModeString("Independent")
	require.NoError(t, err)
	require.Equal(t, BlockIndependent, mode)
}

func TestSkippableMagic(t *testing.T) {
	for m := MagicSkippableStart; m < MagicSkippableStart+16; m++ {
		require.True(t, isSkippable(m))
	}
	require.False(t, isSkippable(Magic))
	require.False(t, isSkippable(MagicSkippableStart+16))
}

func TestErrorCode(t *testing.T) {
	err := ErrFrameSizeWrong
	require.Equal(t, "content size does not match", err.Error())
	require.Equal(t, "ErrorCode(200)", ErrorCode(200).String())
	require.True(t, IsCode(err, ErrGeneric, ErrFrameSizeWrong))
	require.False(t, IsCode(err, ErrGeneric))

	_, ok := AsCode(nil)
	require.False(t, ok)
}
