package block

import "fmt"

// A TextEncoder produces a human-readable rendering of a parse. Literals
// are copied and matches are replaced with <Length,Distance> symbols.
type TextEncoder struct{}

func (TextEncoder) Encode(dst []byte, src []byte, matches []Match) []byte {
	pos := 0
	for _, m := range matches {
		if m.Unmatched > 0 {
			dst = append(dst, src[pos:pos+m.Unmatched]...)
			pos += m.Unmatched
		}
		if m.Length > 0 {
			dst = fmt.Appendf(dst, "<%d,%d>", m.Length, m.Distance)
			pos += m.Length
		}
	}
	if pos < len(src) {
		dst = append(dst, src[pos:]...)
	}
	return dst
}

// FinderForLevel returns the match finder the linked strategies use at
// level.
func FinderForLevel(level int) MatchFinder {
	if KindForLevel(level) == Fast {
		return new(BestSpeed)
	}
	if level > MaxLevel {
		level = MaxLevel
	}
	return &HashChain{SearchLen: searchLen(level), Parser: parserFor(level, nil)}
}
