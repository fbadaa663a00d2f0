package lz4f

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

var words = []string{
	"light", "colours", "refraction", "prism", "rays", "reflected", "the",
	"of", "and", "which", "glass", "experiment", "spectrum", "lens", "sun",
	"heterogeneal", "refrangible", "whiteness", "image", "hole", "window",
}

// testText returns n bytes of pseudo-random English-like text.
func testText(seed int64, n int) []byte {
	rnd := rand.New(rand.NewSource(seed))
	var buf bytes.Buffer
	for buf.Len() < n {
		buf.WriteString(words[rnd.Intn(len(words))])
		if rnd.Intn(9) == 0 {
			buf.WriteString(".\n")
		} else {
			buf.WriteByte(' ')
		}
	}
	return buf.Bytes()[:n]
}

func testRandom(seed int64, n int) []byte {
	b := make([]byte, n)
	rand.New(rand.NewSource(seed)).Read(b)
	return b
}

// compressStream compresses data as one frame, feeding the Compressor
// chunk bytes at a time.
func compressStream(t testing.TB, prefs Preferences, data []byte, chunk int) []byte {
	t.Helper()

	c := NewCompressor()
	buf := make([]byte, CompressBound(chunk, &prefs)+MaxHeaderSize)
	var out []byte

	n, err := c.Begin(buf, &prefs)
	require.NoError(t, err)
	out = append(out, buf[:n]...)

	for len(data) > 0 {
		k := min(chunk, len(data))
		n, err := c.Update(buf, data[:k], nil)
		require.NoError(t, err)
		out = append(out, buf[:n]...)
		data = data[k:]
	}

	n, err = c.End(buf)
	require.NoError(t, err)
	return append(out, buf[:n]...)
}

// decodeChunked decodes frames, offering at most srcChunk bytes of input and
// dstChunk bytes of output per call.
func decodeChunked(t testing.TB, d *Decompressor, src []byte, srcChunk, dstChunk int) ([]byte, error) {
	t.Helper()

	var out []byte
	dst := make([]byte, dstChunk)
	for {
		in := src[:min(srcChunk, len(src))]
		nDst, nSrc, _, err := d.Decompress(dst, in)
		out = append(out, dst[:nDst]...)
		src = src[nSrc:]
		if err != nil {
			return out, err
		}
		if nDst == 0 && nSrc == 0 {
			require.Empty(t, in, "no progress")
			return out, nil
		}
	}
}
