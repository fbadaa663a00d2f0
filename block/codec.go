package block

import (
	"github.com/go-faster/errors"
	"github.com/pierrec/lz4/v4"
)

//go:generate go run github.com/dmarkham/enumer -type Kind -output kind_enum.go

// Kind is the family of a block compressor.
type Kind byte

const (
	Fast Kind = iota
	HighRatio
)

const (
	// MinHCLevel is the lowest compression level using the high ratio
	// compressor.
	MinHCLevel = 3
	// OverlapLevel is the lowest level at which linked blocks are parsed
	// with an OverlapParser.
	OverlapLevel = 10
	// MaxLevel is the highest compression level. Higher values are
	// treated as MaxLevel.
	MaxLevel = 16
)

//go:generate go run github.com/dmarkham/enumer -type Strategy -output strategy_enum.go

// Strategy is one of the four ways a block is compressed, depending on
// the compressor kind and on whether the block may refer to the blocks
// before it.
type Strategy byte

const (
	IndependentFast Strategy = iota
	LinkedFast
	IndependentHC
	LinkedHC
)

// Kind returns the compressor family of s.
func (s Strategy) Kind() Kind {
	if s == IndependentHC || s == LinkedHC {
		return HighRatio
	}
	return Fast
}

// Linked reports whether s uses the preceding plaintext as dictionary.
func (s Strategy) Linked() bool {
	return s == LinkedFast || s == LinkedHC
}

// KindForLevel returns the compressor family used at level.
func KindForLevel(level int) Kind {
	if level < MinHCLevel {
		return Fast
	}
	return HighRatio
}

// SelectStrategy picks the strategy for a compression level and block mode.
func SelectStrategy(level int, linked bool) Strategy {
	switch {
	case KindForLevel(level) == Fast && !linked:
		return IndependentFast
	case KindForLevel(level) == Fast:
		return LinkedFast
	case !linked:
		return IndependentHC
	default:
		return LinkedHC
	}
}

// Compressor holds the state for compressing the blocks of a frame.
// It keeps its allocations between frames.
//
// A Compressor is not safe for concurrent use by multiple goroutines.
type Compressor struct {
	strategy Strategy
	level    int

	fast lz4.Compressor
	hc   lz4.CompressorHC

	speed *BestSpeed
	chain *HashChain
	enc   Encoder

	matches []Match
	scratch []byte
}

// Reset prepares c for a new frame.
func (c *Compressor) Reset(level int, linked bool) {
	if level > MaxLevel {
		level = MaxLevel
	}
	if level < 0 {
		level = 0
	}
	c.level = level
	c.strategy = SelectStrategy(level, linked)

	switch c.strategy {
	case IndependentHC:
		c.hc.Level = hcDepth(level)
	case LinkedFast:
		if c.speed == nil {
			c.speed = new(BestSpeed)
		}
		c.speed.Reset()
	case LinkedHC:
		if c.chain == nil {
			c.chain = new(HashChain)
		}
		c.chain.Reset()
		c.chain.SearchLen = searchLen(level)
		c.chain.Parser = parserFor(level, c.chain.Parser)
	}
}

// Strategy returns the strategy selected by the last Reset.
func (c *Compressor) Strategy() Strategy { return c.strategy }

// Kind returns the compressor family selected by the last Reset.
func (c *Compressor) Kind() Kind { return c.strategy.Kind() }

// Level returns the compression level selected by the last Reset.
func (c *Compressor) Level() int { return c.level }

// hcDepth maps a level to the search depth of lz4.CompressorHC.
func hcDepth(level int) lz4.CompressionLevel {
	if level > 9 {
		level = 9
	}
	return lz4.CompressionLevel(1 << (8 + level))
}

// parserFor returns the parser for level, reusing prev when it fits.
func parserFor(level int, prev Parser) Parser {
	if level >= OverlapLevel {
		if p, ok := prev.(*OverlapParser); ok {
			return p
		}
		return new(OverlapParser)
	}
	if p, ok := prev.(*GreedyParser); ok {
		return p
	}
	return new(GreedyParser)
}

func searchLen(level int) int {
	n := 4 << (level - MinHCLevel)
	if n > 4096 {
		n = 4096
	}
	return n
}

// Compress compresses src into dst, using dict as the plaintext preceding
// src when the strategy is linked. It returns the compressed size, or 0 if
// the block does not get smaller or does not fit in dst; the caller then
// stores src uncompressed.
func (c *Compressor) Compress(dst, dict, src []byte) (int, error) {
	if len(src) == 0 {
		return 0, nil
	}

	var (
		out []byte
		err error
	)
	switch c.strategy {
	case IndependentFast, IndependentHC:
		bound := lz4.CompressBlockBound(len(src))
		if cap(c.scratch) < bound {
			c.scratch = make([]byte, bound)
		}
		out = c.scratch[:bound]
		var n int
		if c.strategy == IndependentFast {
			n, err = c.fast.CompressBlock(src, out)
		} else {
			n, err = c.hc.CompressBlock(src, out)
		}
		out = out[:n]
	case LinkedFast:
		c.matches = c.speed.FindMatches(c.matches[:0], dict, src)
		c.scratch = c.enc.Encode(c.scratch[:0], src, c.matches)
		out = c.scratch
	case LinkedHC:
		c.matches = c.chain.FindMatches(c.matches[:0], dict, src)
		c.scratch = c.enc.Encode(c.scratch[:0], src, c.matches)
		out = c.scratch
	default:
		return 0, errors.Errorf("unknown strategy %s", c.strategy)
	}
	if err != nil {
		return 0, errors.Wrapf(err, "compress %s", c.strategy)
	}
	if len(out) == 0 || len(out) >= len(src) || len(out) > len(dst) {
		return 0, nil
	}
	return copy(dst, out), nil
}

// Decompress decodes the LZ4 block src into dst and returns the number of
// bytes written. Back-references reaching before the start of dst are
// resolved in dict, which holds the plaintext immediately preceding dst.
func Decompress(dst, dict, src []byte) (int, error) {
	var (
		n   int
		err error
	)
	if len(dict) == 0 {
		n, err = lz4.UncompressBlock(src, dst)
	} else {
		n, err = lz4.UncompressBlockWithDict(src, dst, dict)
	}
	if err != nil {
		return 0, errors.Wrap(err, "uncompress")
	}
	return n, nil
}
