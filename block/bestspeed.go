package block

import (
	"encoding/binary"
)

// This file is based on code from github.com/golang/snappy.

//Copyright (c) 2011 The Snappy-Go Authors. All rights reserved.
//
//Redistribution and use in source and binary forms, with or without
//modification, are permitted provided that the following conditions are
//met:
//
//   * Redistributions of source code must retain the above copyright
//notice, this list of conditions and the following disclaimer.
//   * Redistributions in binary form must reproduce the above
//copyright notice, this list of conditions and the following disclaimer
//in the documentation and/or other materials provided with the
//distribution.
//   * Neither the name of Google Inc. nor the names of its
//contributors may be used to endorse or promote products derived from
//this software without specific prior written permission.
//
//THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
//"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
//LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
//A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
//OWNER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
//SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
//LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
//DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
//THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
//(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
//OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

// BestSpeed is a MatchFinder comparable to level 1 (BestSpeed) in
// compress/flate. It checks a single hash table entry per position and
// skips ahead quickly through data that does not compress.
type BestSpeed struct {
	// table holds positions in the concatenation of dict and src, plus one.
	// Zero means empty.
	table [maxTableSize]uint32
}

func (q *BestSpeed) Reset() {
	q.table = [maxTableSize]uint32{}
}

// FindMatches looks for matches in src, appends them to dst, and returns dst.
func (q *BestSpeed) FindMatches(dst []Match, dict, src []byte) []Match {
	q.Reset()
	dict = trimDict(dict)
	base := len(dict)
	for i := 0; i+4 <= len(dict); i++ {
		h := hash4(binary.LittleEndian.Uint32(dict[i:]))
		q.table[h&tableMask] = uint32(i + 1)
	}

	// sLimit is when to stop looking for offset/length copies, and mLimit
	// is where matches have to stop.
	sLimit := len(src) - mfLimit
	mLimit := len(src) - lastLiterals

	// nextEmit is where in src the next emitLiteral should start from.
	nextEmit := 0

	// Without a dictionary the block must start with a literal.
	s := 1
	if base > 0 {
		s = 0
	}

	if s > sLimit {
		goto emitRemainder
	}

	for {
		nextHash := hash4(binary.LittleEndian.Uint32(src[s:]))

		// Heuristic match skipping: If 32 bytes are scanned with no matches
		// found, start looking only at every other byte. If 32 more bytes are
		// scanned (or skipped), look at every third byte, etc.. When a match
		// is found, immediately go back to looking at every byte.
		skip := 32

		nextS := s
		candidate := 0
		for {
			s = nextS
			bytesBetweenHashLookups := skip >> 5
			nextS = s + bytesBetweenHashLookups
			skip += bytesBetweenHashLookups
			if nextS > sLimit {
				goto emitRemainder
			}
			candidate = int(q.table[nextHash&tableMask]) - 1
			q.table[nextHash&tableMask] = uint32(base + s + 1)
			nextHash = hash4(binary.LittleEndian.Uint32(src[nextS:]))
			if candidate < 0 || base+s-candidate > maxDistance {
				continue
			}
			if candidate >= base {
				if binary.LittleEndian.Uint32(src[s:]) == binary.LittleEndian.Uint32(src[candidate-base:]) {
					break
				}
			} else if binary.LittleEndian.Uint32(src[s:]) == binary.LittleEndian.Uint32(dict[candidate:]) {
				break
			}
		}

		// A 4-byte match has been found. src[nextEmit:s] are unmatched.
		start := s

		if candidate >= base {
			s = extendMatch(src[:mLimit], candidate-base+4, s+4)
		} else {
			s = extendMatch2(dict, candidate+4, src[:mLimit], s+4)
			if candidate+s-start == len(dict) {
				// The match ran off the end of the dictionary; it continues
				// at the start of src.
				s = extendMatch(src[:mLimit], 0, s)
			}
		}

		dst = append(dst, Match{
			Unmatched: start - nextEmit,
			Length:    s - start,
			Distance:  base + start - candidate,
		})
		nextEmit = s
		if s >= sLimit {
			goto emitRemainder
		}

		// Update the hash table at s-1 before carrying on at s.
		prevHash := hash4(binary.LittleEndian.Uint32(src[s-1:]))
		q.table[prevHash&tableMask] = uint32(base + s)
	}

emitRemainder:
	if nextEmit < len(src) {
		dst = append(dst, Match{
			Unmatched: len(src) - nextEmit,
		})
	}
	return dst
}
