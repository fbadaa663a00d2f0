package lz4f

import (
	"bytes"
	"io"
	"testing"
	"testing/iotest"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestWriterReader(t *testing.T) {
	data := testText(1, 1<<20)
	for _, tt := range []struct {
		Name  string
		Prefs Preferences
	}{
		{Name: "Default"},
		{Name: "Checksum", Prefs: Preferences{FrameInfo: FrameInfo{ContentChecksum: true}}},
		{Name: "Independent", Prefs: Preferences{FrameInfo: FrameInfo{BlockMode: BlockIndependent, BlockSize: Block4MB}}},
		{Name: "HighRatio", Prefs: Preferences{CompressionLevel: 9, AutoFlush: true}},
		{Name: "ContentSize", Prefs: Preferences{FrameInfo: FrameInfo{BlockSize: Block4MB, ContentSize: 1 << 20}}},
	} {
		t.Run(tt.Name, func(t *testing.T) {
			var buf bytes.Buffer
			w := NewWriter(&buf, WriterOptions{Preferences: tt.Prefs, Logger: zaptest.NewLogger(t)})
			for i := 0; i < len(data); i += 12_345 {
				_, err := w.Write(data[i:min(i+12_345, len(data))])
				require.NoError(t, err)
			}
			require.NoError(t, w.Close())

			r := NewReader(bytes.NewReader(buf.Bytes()), ReaderOptions{Logger: zaptest.NewLogger(t)})
			out, err := io.ReadAll(r)
			require.NoError(t, err)
			require.Equal(t, data, out)

			r = NewReader(iotest.OneByteReader(bytes.NewReader(buf.Bytes())), ReaderOptions{BufferSize: 7})
			out, err = io.ReadAll(iotest.HalfReader(r))
			require.NoError(t, err)
			require.Equal(t, data, out)
		})
	}
}

func TestWriterBigWrite(t *testing.T) {
	data := testText(2, 3<<20)
	var buf bytes.Buffer
	w := NewWriter(&buf, WriterOptions{})
	n, err := w.Write(data)
	require.NoError(t, err)
	require.Equal(t, len(data), n)
	require.NoError(t, w.Close())

	out, err := Decompress(nil, buf.Bytes())
	require.NoError(t, err)
	require.Equal(t, data, out)
}

func TestWriterEmpty(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, WriterOptions{Preferences: Preferences{FrameInfo: FrameInfo{ContentChecksum: true}}})
	require.NoError(t, w.Close())
	require.Equal(t, 7+4+4, buf.Len())

	out, err := Decompress(nil, buf.Bytes())
	require.NoError(t, err)
	require.Empty(t, out)

	out, err = io.ReadAll(NewReader(&buf, ReaderOptions{}))
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestWriterFlush(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, WriterOptions{})
	_, err := w.Write([]byte("hello, "))
	require.NoError(t, err)
	require.NoError(t, w.Flush())
	_, err = w.Write([]byte("world"))
	require.NoError(t, err)

	// Only the flushed part is readable before Close.
	r := NewReader(bytes.NewReader(buf.Bytes()), ReaderOptions{})
	got := make([]byte, 7)
	_, err = io.ReadFull(r, got)
	require.NoError(t, err)
	require.Equal(t, "hello, ", string(got))
	_, err = r.Read(got)
	require.True(t, errors.Is(err, io.ErrUnexpectedEOF), "%v", err)

	require.NoError(t, w.Close())
	out, err := Decompress(nil, buf.Bytes())
	require.NoError(t, err)
	require.Equal(t, "hello, world", string(out))
}

func TestWriterClosed(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, WriterOptions{})
	require.NoError(t, w.Close())
	require.NoError(t, w.Close())
	_, err := w.Write([]byte("late"))
	require.ErrorIs(t, err, ErrClosed)
	require.ErrorIs(t, w.Flush(), ErrClosed)

	// Reset starts a new frame.
	var next bytes.Buffer
	w.Reset(&next)
	_, err = w.Write([]byte("again"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	out, err := Decompress(nil, append(buf.Bytes(), next.Bytes()...))
	require.NoError(t, err)
	require.Equal(t, "again", string(out))
}

func TestWriterInvalidPreferences(t *testing.T) {
	w := NewWriter(io.Discard, WriterOptions{Preferences: Preferences{FrameInfo: FrameInfo{BlockSize: 2}}})
	_, err := w.Write([]byte("x"))
	require.True(t, IsCode(err, ErrMaxBlockSizeInvalid), "%v", err)
	require.Error(t, w.Close())
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriterDestinationError(t *testing.T) {
	w := NewWriter(failWriter{}, WriterOptions{})
	_, err := w.Write([]byte("data"))
	require.EqualError(t, err, "write: disk full")
	require.Error(t, w.Close())
}

func TestReaderConcatenated(t *testing.T) {
	a := testText(3, 200_000)
	b := testText(4, 50_000)
	var stream []byte
	stream = append(stream, compressStream(t, Preferences{}, a, 10_000)...)
	stream = append(stream, skippableFrame([]byte("metadata"))...)
	stream = append(stream, compressStream(t, Preferences{FrameInfo: FrameInfo{ContentChecksum: true}}, b, 10_000)...)

	r := NewReader(bytes.NewReader(stream), ReaderOptions{BufferSize: 4096, Logger: zaptest.NewLogger(t)})
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	require.Equal(t, append(append([]byte(nil), a...), b...), out)

	// Reset reads another stream.
	r.Reset(bytes.NewReader(stream))
	out, err = io.ReadAll(r)
	require.NoError(t, err)
	require.Len(t, out, len(a)+len(b))
}

func TestReaderErrors(t *testing.T) {
	frame, err := Compress(testText(5, 100_000), &Preferences{FrameInfo: FrameInfo{ContentChecksum: true}})
	require.NoError(t, err)

	_, err = io.ReadAll(NewReader(bytes.NewReader(frame[:len(frame)-2]), ReaderOptions{}))
	require.True(t, errors.Is(err, io.ErrUnexpectedEOF), "%v", err)

	bad := append([]byte(nil), frame...)
	bad[len(bad)-1] ^= 1
	_, err = io.ReadAll(NewReader(bytes.NewReader(bad), ReaderOptions{}))
	require.True(t, IsCode(err, ErrContentChecksumInvalid), "%v", err)

	_, err = io.ReadAll(NewReader(iotest.ErrReader(io.ErrClosedPipe), ReaderOptions{}))
	require.ErrorIs(t, err, io.ErrClosedPipe)
}
