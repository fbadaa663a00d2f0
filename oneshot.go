package lz4f

import (
	"io"
	"slices"

	"github.com/go-faster/errors"
)

// CompressFrame compresses src into dst as a single frame and returns its
// size. dst needs CompressFrameBound(len(src), prefs) bytes.
//
// The block size is lowered to the smallest one that holds src, and a
// declared content size is replaced by len(src).
func CompressFrame(dst, src []byte, prefs *Preferences) (int, error) {
	var p Preferences
	if prefs != nil {
		p = *prefs
	}
	if p.ContentSize != 0 {
		p.ContentSize = uint64(len(src))
	}
	p.BlockSize = optimalBlockSize(p.BlockSize, uint64(len(src)))
	p.AutoFlush = true
	if len(src) <= p.BlockSize.Size() {
		p.BlockMode = BlockIndependent
	}
	if bound := CompressFrameBound(len(src), &p); len(dst) < bound {
		return 0, errors.Wrapf(ErrDstMaxSizeTooSmall, "frame needs %d bytes, have %d", bound, len(dst))
	}

	c := NewCompressor()
	n, err := c.Begin(dst, &p)
	if err != nil {
		return 0, errors.Wrap(err, "begin")
	}
	m, err := c.Update(dst[n:], src, &CompressOptions{StableSrc: true})
	if err != nil {
		return 0, errors.Wrap(err, "update")
	}
	n += m
	m, err = c.End(dst[n:])
	if err != nil {
		return 0, errors.Wrap(err, "end")
	}
	return n + m, nil
}

// Compress returns src compressed as a single frame.
func Compress(src []byte, prefs *Preferences) ([]byte, error) {
	dst := make([]byte, CompressFrameBound(len(src), prefs))
	n, err := CompressFrame(dst, src, prefs)
	if err != nil {
		return nil, err
	}
	return dst[:n], nil
}

// Decompress appends the content of the frames in src to dst. Skippable
// frames are skipped. Input that ends inside a frame is reported as
// io.ErrUnexpectedEOF.
func Decompress(dst, src []byte) ([]byte, error) {
	d := NewDecompressor()
	for {
		if free := cap(dst) - len(dst); free < winSize {
			dst = slices.Grow(dst, max(len(dst), 4*len(src), winSize))
		}
		nDst, nSrc, _, err := d.Decompress(dst[len(dst):cap(dst)], src)
		dst = dst[:len(dst)+nDst]
		src = src[nSrc:]
		if err != nil {
			return dst, err
		}
		if nDst == 0 && nSrc == 0 {
			break
		}
	}
	if d.stage != stageGetHeader {
		return dst, errors.Wrapf(io.ErrUnexpectedEOF, "input ends in %s", d.stage)
	}
	return dst, nil
}
