package block

// An AbsoluteMatch is like a Match, but it stores indexes into the history
// instead of lengths.
type AbsoluteMatch struct {
	// Start is the index of the first byte.
	Start int

	// End is the index of the byte after the last byte
	// (so that End - Start = Length).
	End int

	// Match is the index of the previous data that matches
	// (Start - Match = Distance).
	Match int
}

func (m AbsoluteMatch) length() int { return m.End - m.Start }

// A Searcher is the source of matches for a Parser. It only looks for matches
// at one position at a time.
type Searcher interface {
	// Search looks for matches at pos and appends them to dst.
	// In each match, Start and End must fall within the interval [min,max),
	// and Match < Start < End.
	Search(dst []AbsoluteMatch, pos, min, max int) []AbsoluteMatch
}

// A Parser chooses which of the matches a Searcher offers make up the block.
type Parser interface {
	// Parse appends matches covering history[start:end] to dst.
	Parse(dst []Match, src Searcher, start, end int) []Match
}

// relative converts a chosen match that follows the byte at nextEmit.
func relative(m AbsoluteMatch, nextEmit int) Match {
	return Match{
		Unmatched: m.Start - nextEmit,
		Length:    m.length(),
		Distance:  m.Start - m.Match,
	}
}

// A GreedyParser goes from start to end, taking the longest match at each
// position.
type GreedyParser struct {
	matchCache []AbsoluteMatch
}

func (p *GreedyParser) Parse(dst []Match, src Searcher, start, end int) []Match {
	matches := p.matchCache[:0]
	nextEmit := start

	for s := start; s+1 < end; {
		matches = src.Search(matches[:0], s, nextEmit, end)
		m := best(matches, AbsoluteMatch.length)
		if m.length() < minMatch {
			s++
			continue
		}
		dst = append(dst, relative(m, nextEmit))
		s = m.End
		nextEmit = s
	}

	if nextEmit < end {
		dst = append(dst, Match{Unmatched: end - nextEmit})
	}
	p.matchCache = matches[:0]
	return dst
}

// best returns the match with the highest positive score, or the zero match.
func best(matches []AbsoluteMatch, score func(AbsoluteMatch) int) AbsoluteMatch {
	var m AbsoluteMatch
	top := 0
	for _, c := range matches {
		if s := score(c); s > top {
			m, top = c, s
		}
	}
	return m
}

// sequenceScore rates a match by the bytes it saves in an LZ4 sequence:
// its length minus the offset and the token.
func sequenceScore(m AbsoluteMatch) int {
	return m.length() - 3
}

// An OverlapParser looks for overlapping matches and chooses the best ones,
// using an algorithm based on
// https://fastcompression.blogspot.com/2011/12/advanced-parsing-strategies.html
type OverlapParser struct {
	// Score is used to choose the best match. If it is nil, matches are
	// scored by the bytes they save in an LZ4 sequence.
	Score func(AbsoluteMatch) int

	matchCache []AbsoluteMatch
	setCache   []candidates
}

// candidates is a chosen match and the alternatives found at its position.
type candidates struct {
	AbsoluteMatch
	options []AbsoluteMatch
}

// clip chooses the best option after limiting its range to [min, max).
// Options pushed past lastStart are dropped.
func (c *candidates) clip(min, max, lastStart int, score func(AbsoluteMatch) int) {
	c.AbsoluteMatch = AbsoluteMatch{}
	top := 0
	for _, m := range c.options {
		if m.Start < min {
			m.Match += min - m.Start
			m.Start = min
		}
		if m.End > max {
			m.End = max
		}
		if m.End <= m.Start || m.Start > lastStart {
			continue
		}
		if s := score(m); s > top {
			c.AbsoluteMatch, top = m, s
		}
	}
}

func (p *OverlapParser) Parse(dst []Match, src Searcher, start, end int) []Match {
	score := p.Score
	if score == nil {
		score = sequenceScore
	}
	nextEmit := start
	lastStart := end - mfLimit
	chain := p.setCache[:0]

	for s := start; s < end; {
		chain = chain[:0]

		p.matchCache = src.Search(p.matchCache[:0], s, nextEmit, end)
		m := candidates{options: p.matchCache}
		m.AbsoluteMatch = best(m.options, score)
		if m.length() < minMatch {
			s++
			continue
		}
		chain = append(chain, m)

		// Follow matches that start inside the previous one while they
		// keep getting better.
		for {
			n := len(p.matchCache)
			p.matchCache = src.Search(p.matchCache, m.End-2, m.Start, end)
			next := candidates{options: p.matchCache[n:]}
			next.AbsoluteMatch = best(next.options, score)
			if score(next.AbsoluteMatch) <= score(m.AbsoluteMatch) {
				break
			}
			m = next
			chain = append(chain, m)
		}

		// Resolve the overlaps from the back, each match giving way to
		// the longer of its neighbors.
		for i := len(chain) - 2; i >= 0; i-- {
			cur, next := &chain[i], &chain[i+1]
			if cur.length() > next.length() {
				if cur.End > next.Start {
					limit := end
					if i+2 < len(chain) {
						limit = chain[i+2].Start
					}
					next.clip(cur.End, limit, lastStart, score)
				}
				if next.length() < minMatch {
					chain = append(chain[:i+1], chain[i+2:]...)
					if i < len(chain)-1 {
						// Check the new neighbor too.
						i++
					}
				}
				continue
			}
			if cur.End > next.Start {
				cur.clip(nextEmit, next.Start, lastStart, score)
			}
			if cur.length() < minMatch {
				chain = append(chain[:i], chain[i+1:]...)
			}
		}

		for _, c := range chain {
			dst = append(dst, relative(c.AbsoluteMatch, nextEmit))
			nextEmit = c.End
		}
		s = nextEmit
	}

	if nextEmit < end {
		dst = append(dst, Match{Unmatched: end - nextEmit})
	}
	p.setCache = chain[:0]
	return dst
}
