package memmem

import (
	"bytes"

	"github.com/coregx/memscan/internal/vector"
)

// prefilterFind returns the leftmost offset in haystack where needle
// occurs, using rp's rare pair to skip candidates before confirming each
// one with a direct byte comparison (§4.3.1 "Scan"). rp.exists must be
// true.
func prefilterFind(haystack, needle []byte, rp rarePair) int {
	lo, hi, bLo, bHi := rp.ordered()
	distance := hi - lo
	m := len(needle)
	eng := vector.Select()

	pos := 0
	for {
		sub := haystack[pos:]
		if len(sub) < m {
			return -1
		}
		p := eng.PairScan(sub, bLo, bHi, distance)
		if p == -1 {
			return -1
		}
		s := pos + p - lo
		if s >= 0 && s+m <= len(haystack) && bytes.Equal(haystack[s:s+m], needle) {
			return s
		}
		pos += p + 1
	}
}

// prefilterRFind mirrors prefilterFind, scanning candidates from the right
// and returning the rightmost match.
func prefilterRFind(haystack, needle []byte, rp rarePair) int {
	lo, hi, bLo, bHi := rp.ordered()
	distance := hi - lo
	m := len(needle)
	eng := vector.Select()

	end := len(haystack)
	for {
		sub := haystack[:end]
		p := eng.PairScanRev(sub, bLo, bHi, distance)
		if p == -1 {
			return -1
		}
		s := p - lo
		if s >= 0 && s+m <= len(haystack) && bytes.Equal(haystack[s:s+m], needle) {
			return s
		}
		// Keep pairs that start before p but end at or after p in range.
		end = p + distance
	}
}
