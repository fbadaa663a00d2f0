package lz4f

import (
	"fmt"
	"io"
	"testing"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/require"
)

func TestDecompressRoundTrip(t *testing.T) {
	inputs := []struct {
		Name string
		Data []byte
	}{
		{Name: "Empty"},
		{Name: "Byte", Data: []byte{'x'}},
		{Name: "Text", Data: testText(1, 3<<20)},
	}
	for _, mode := range []BlockMode{BlockLinked, BlockIndependent} {
		for _, checksum := range []bool{false, true} {
			for _, id := range []BlockSizeID{Block64KB, Block256KB, Block1MB, Block4MB} {
				for _, in := range inputs {
					name := fmt.Sprintf("%s/Checksum=%v/%s/%s", mode, checksum, id, in.Name)
					t.Run(name, func(t *testing.T) {
						prefs := Preferences{FrameInfo: FrameInfo{
							BlockSize:       id,
							BlockMode:       mode,
							ContentChecksum: checksum,
						}}
						frame := compressStream(t, prefs, in.Data, 100_000)

						out, err := Decompress(nil, frame)
						require.NoError(t, err)
						require.Equal(t, len(in.Data), len(out))
						require.Equal(t, in.Data, out)
					})
				}
			}
		}
	}
}

func TestDecompressChunked(t *testing.T) {
	data := testText(2, 300_000)
	frames := map[string][]byte{
		"Linked": compressStream(t, Preferences{FrameInfo: FrameInfo{ContentChecksum: true}}, data, 50_000),
		"Independent": compressStream(t, Preferences{FrameInfo: FrameInfo{
			BlockMode:   BlockIndependent,
			ContentSize: uint64(len(data)),
		}}, data, 50_000),
		"Raw": compressStream(t, Preferences{FrameInfo: FrameInfo{ContentChecksum: true}}, testRandom(1, 300_000), 50_000),
	}
	for name, frame := range frames {
		for _, srcChunk := range []int{1, 7, 1000, 70_000, len(frame)} {
			for _, dstChunk := range []int{1, 13, 64<<10 + 1, 1 << 20} {
				if srcChunk == 1 && dstChunk == 1 {
					continue
				}
				t.Run(fmt.Sprintf("%s/%d/%d", name, srcChunk, dstChunk), func(t *testing.T) {
					want := data
					if name == "Raw" {
						want = testRandom(1, 300_000)
					}
					out, err := decodeChunked(t, NewDecompressor(), frame, srcChunk, dstChunk)
					require.NoError(t, err)
					require.Equal(t, want, out)
				})
			}
		}
	}
}

func TestDecompressStableDst(t *testing.T) {
	data := testText(3, 600_000)
	frame := compressStream(t, Preferences{FrameInfo: FrameInfo{ContentChecksum: true}, CompressionLevel: 4}, data, 50_000)

	for _, srcChunk := range []int{100, 70_000} {
		for _, dstChunk := range []int{1000, 70_000, 300_000} {
			t.Run(fmt.Sprintf("%d/%d", srcChunk, dstChunk), func(t *testing.T) {
				d := NewDecompressor()
				d.StableDst = true
				out := make([]byte, len(data))
				src := frame
				var pos int
				for {
					in := src[:min(srcChunk, len(src))]
					nDst, nSrc, hint, err := d.Decompress(out[pos:min(pos+dstChunk, len(out))], in)
					require.NoError(t, err)
					pos += nDst
					src = src[nSrc:]
					if hint == 0 {
						break
					}
				}
				require.Empty(t, src)
				require.Equal(t, len(data), pos)
				require.Equal(t, data, out)
			})
		}
	}
}

func TestDecompressConcatenated(t *testing.T) {
	a := testText(4, 100_000)
	b := testText(5, 100)
	var stream []byte
	stream = append(stream, compressStream(t, Preferences{}, a, 10_000)...)
	stream = append(stream, compressStream(t, Preferences{FrameInfo: FrameInfo{ContentChecksum: true}}, b, 10_000)...)
	stream = append(stream, compressStream(t, Preferences{}, nil, 10_000)...)

	want := append(append([]byte(nil), a...), b...)
	out, err := Decompress([]byte("prefix"), stream)
	require.NoError(t, err)
	require.Equal(t, append([]byte("prefix"), want...), out)

	out, err = decodeChunked(t, NewDecompressor(), stream, 3, 5000)
	require.NoError(t, err)
	require.Equal(t, want, out)
}

func skippableFrame(payload []byte) []byte {
	b := le.AppendUint32(nil, MagicSkippableStart+0xF)
	b = le.AppendUint32(b, uint32(len(payload)))
	return append(b, payload...)
}

func TestDecompressSkippable(t *testing.T) {
	data := testText(6, 80_000)
	var stream []byte
	stream = append(stream, skippableFrame([]byte("hello"))...)
	stream = append(stream, compressStream(t, Preferences{}, data, 10_000)...)
	stream = append(stream, skippableFrame(nil)...)
	stream = append(stream, skippableFrame(testRandom(1, 1000))...)

	out, err := Decompress(nil, stream)
	require.NoError(t, err)
	require.Equal(t, data, out)

	for _, srcChunk := range []int{1, 3, 9, 1000} {
		out, err := decodeChunked(t, NewDecompressor(), stream, srcChunk, 4096)
		require.NoError(t, err, "chunk %d", srcChunk)
		require.Equal(t, data, out, "chunk %d", srcChunk)
	}
}

func TestGetFrameInfo(t *testing.T) {
	data := testText(7, 100_000)
	frame, err := Compress(data, &Preferences{FrameInfo: FrameInfo{
		BlockSize:       Block4MB,
		ContentChecksum: true,
		ContentSize:     1,
	}})
	require.NoError(t, err)

	d := NewDecompressor()
	_, nSrc, _, err := d.GetFrameInfo(frame[:10])
	require.True(t, IsCode(err, ErrFrameHeaderIncomplete), "%v", err)
	require.Zero(t, nSrc)

	info, nSrc, hint, err := d.GetFrameInfo(frame)
	require.NoError(t, err)
	require.Equal(t, FrameInfo{
		BlockSize:       Block256KB,
		BlockMode:       BlockIndependent,
		ContentChecksum: true,
		ContentSize:     uint64(len(data)),
	}, info)
	require.Equal(t, MaxHeaderSize, nSrc)
	require.Equal(t, blockHeaderSize, hint)

	again, n, _, err := d.GetFrameInfo(frame[nSrc:])
	require.NoError(t, err)
	require.Zero(t, n)
	require.Equal(t, info, again)

	out := make([]byte, len(data))
	nDst, n, hint, err := d.Decompress(out, frame[nSrc:])
	require.NoError(t, err)
	require.Equal(t, len(frame)-nSrc, n)
	require.Zero(t, hint)
	require.Equal(t, data, out[:nDst])
}

func TestGetFrameInfoSkippable(t *testing.T) {
	d := NewDecompressor()
	frame := skippableFrame([]byte("hello"))

	info, nSrc, hint, err := d.GetFrameInfo(frame)
	require.NoError(t, err)
	require.Equal(t, FrameSkippable, info.FrameType)
	require.Equal(t, uint64(5), info.ContentSize)
	require.Equal(t, 8, nSrc)
	require.Equal(t, 5, hint)

	_, n, hint, err := d.Decompress(nil, frame[nSrc:])
	require.NoError(t, err)
	require.Equal(t, 5, n)
	require.Zero(t, hint)
}

func requireCode(t *testing.T, err error, code ErrorCode) {
	t.Helper()
	require.Error(t, err)
	got, ok := AsCode(err)
	require.True(t, ok, "%v", err)
	require.Equal(t, code, got, "%v", err)
}

func TestDecompressErrors(t *testing.T) {
	data := testText(8, 10_000)
	frame, err := Compress(data, &Preferences{FrameInfo: FrameInfo{ContentChecksum: true}})
	require.NoError(t, err)

	corrupt := func(f func(b []byte) []byte) []byte {
		return f(append([]byte(nil), frame...))
	}
	header := appendHeader(nil, &FrameInfo{BlockSize: Block64KB, BlockMode: BlockIndependent})

	for _, tt := range []struct {
		Name  string
		Frame []byte
		Code  ErrorCode
	}{
		{
			Name:  "Magic",
			Frame: corrupt(func(b []byte) []byte { b[0] ^= 1; return b }),
			Code:  ErrFrameTypeUnknown,
		},
		{
			Name:  "HeaderChecksum",
			Frame: corrupt(func(b []byte) []byte { b[6] ^= 1; return b }),
			Code:  ErrHeaderChecksumInvalid,
		},
		{
			Name:  "ContentChecksum",
			Frame: corrupt(func(b []byte) []byte { b[len(b)-1] ^= 0x80; return b }),
			Code:  ErrContentChecksumInvalid,
		},
		{
			Name:  "BlockTooLarge",
			Frame: le.AppendUint32(append([]byte(nil), header...), 64<<10+1),
			Code:  ErrBlockSizeInvalid,
		},
		{
			Name:  "RawBlockTooLarge",
			Frame: le.AppendUint32(append([]byte(nil), header...), (64<<10+1)|blockUncompressedFlag),
			Code:  ErrBlockSizeInvalid,
		},
		{
			// One literal, then a match reaching before the start.
			Name: "BadOffset",
			Frame: func() []byte {
				b := le.AppendUint32(append([]byte(nil), header...), 4)
				b = append(b, 0x10, 'a', 0xff, 0xff)
				return le.AppendUint32(b, 0)
			}(),
			Code: ErrDecompressionFailed,
		},
	} {
		t.Run(tt.Name, func(t *testing.T) {
			d := NewDecompressor()
			dst := make([]byte, 64<<10)
			_, _, _, err := d.Decompress(dst, tt.Frame)
			requireCode(t, err, tt.Code)

			// Errors are final.
			_, _, _, err = d.Decompress(dst, nil)
			requireCode(t, err, tt.Code)

			d.Reset()
			nDst, _, hint, err := d.Decompress(dst, frame)
			require.NoError(t, err)
			require.Zero(t, hint)
			require.Equal(t, data, dst[:nDst])
		})
	}
}

func TestDecompressBlockTooLargeStops(t *testing.T) {
	header := appendHeader(nil, &FrameInfo{BlockSize: Block64KB, BlockMode: BlockIndependent})
	for _, tt := range []struct {
		Name string
		Size uint32
	}{
		{Name: "Compressed", Size: 64<<10 + 1},
		{Name: "Raw", Size: (64<<10 + 1) | blockUncompressedFlag},
	} {
		t.Run(tt.Name, func(t *testing.T) {
			frame := le.AppendUint32(append([]byte(nil), header...), tt.Size)
			frame = append(frame, testText(10, 100)...)

			d := NewDecompressor()
			dst := make([]byte, 64<<10)
			nDst, nSrc, _, err := d.Decompress(dst, frame)
			requireCode(t, err, ErrBlockSizeInvalid)
			require.Zero(t, nDst)
			require.Equal(t, len(header)+blockHeaderSize, nSrc)

			nDst, n, _, err := d.Decompress(dst, frame[nSrc:])
			requireCode(t, err, ErrBlockSizeInvalid)
			require.Zero(t, nDst)
			require.Zero(t, n)
		})
	}
}

func TestDecompressFrameSizeMismatch(t *testing.T) {
	c := NewCompressor()
	prefs := &Preferences{FrameInfo: FrameInfo{ContentSize: 100}}
	buf := make([]byte, CompressBound(100, prefs)+MaxHeaderSize)
	n, err := c.Begin(buf, prefs)
	require.NoError(t, err)
	m, err := c.Update(buf[n:], testText(1, 50), nil)
	require.NoError(t, err)
	n += m
	m, err = c.End(buf[n:])
	require.Error(t, err)
	frame := buf[:n+m]

	_, err = Decompress(nil, frame)
	requireCode(t, err, ErrFrameSizeWrong)
}

func TestDecompressSrcPtr(t *testing.T) {
	data := testText(9, 100_000)
	frame := compressStream(t, Preferences{}, data, len(data))

	d := NewDecompressor()
	dst := make([]byte, 10)
	nDst, nSrc, _, err := d.Decompress(dst, frame)
	require.NoError(t, err)
	require.Equal(t, 10, nDst)
	require.Less(t, nSrc, len(frame))

	rest := append([]byte(nil), frame[nSrc:]...)
	_, _, _, err = d.Decompress(dst, rest)
	requireCode(t, err, ErrSrcPtrWrong)

	_, _, _, err = d.Decompress(dst, frame[nSrc:])
	requireCode(t, err, ErrSrcPtrWrong)
}

func TestDecompressTruncated(t *testing.T) {
	data := testText(10, 100_000)
	frame, err := Compress(data, &Preferences{FrameInfo: FrameInfo{ContentChecksum: true}})
	require.NoError(t, err)

	for _, n := range []int{3, 7, 12, len(frame) / 2, len(frame) - 1} {
		_, err := Decompress(nil, frame[:n])
		require.True(t, errors.Is(err, io.ErrUnexpectedEOF), "%d: %v", n, err)
	}
}

func TestStageString(t *testing.T) {
	require.Equal(t, "DecodeIntoTmp", stageDecodeIntoTmp.String())
	require.Equal(t, "Failed", stageFailed.String())
	require.Equal(t, "stage(99)", stage(99).String())
	require.Len(t, stageValues(), 17)
	require.True(t, stageSkip.IsAstage())
	require.False(t, stage(17).IsAstage())
}
