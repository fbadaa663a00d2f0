// Package block implements LZ4 block compression for the frame codec:
// match finders, the LZ4 sequence encoder, and the compression strategies
// a frame session switches between.
package block

// A Match is the basic unit of LZ77 compression.
type Match struct {
	Unmatched int // the number of unmatched bytes since the previous match
	Length    int // the number of bytes in the matched string; it may be 0 at the end of the input
	Distance  int // how far back in the stream to copy from
}

// A MatchFinder performs the LZ77 stage of compression, looking for matches.
//
// The dictionary holds the plaintext immediately preceding src. Matches may
// refer back into it, but never further than 65535 bytes from their start.
type MatchFinder interface {
	// FindMatches looks for matches in src, appends them to dst, and returns dst.
	FindMatches(dst []Match, dict, src []byte) []Match

	// Reset clears any internal state, preparing the MatchFinder to be used with
	// a new stream.
	Reset()
}

const (
	maxDistance = 65535
	minMatch    = 4

	// The last match must start at least mfLimit bytes before the end of the
	// block, and the last lastLiterals bytes are always literals.
	mfLimit      = 12
	lastLiterals = 5

	maxTableSize = 1 << 14
	shift        = 32 - 14
	// tableMask is redundant, but helps the compiler eliminate bounds
	// checks.
	tableMask = maxTableSize - 1
)

const hashMul32 = 0x1e35a7bd

func hash4(u uint32) uint32 {
	return (u * hashMul32) >> shift
}

func trimDict(dict []byte) []byte {
	if len(dict) > maxDistance {
		return dict[len(dict)-maxDistance:]
	}
	return dict
}
