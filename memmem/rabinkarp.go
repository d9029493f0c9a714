package memmem

// rabinKarp is the polynomial rolling-hash fallback for needles where the
// rare-pair prefilter has nothing useful to work with but which are still
// short enough that Two-Way's factorization overhead isn't worth paying
// (§4.3.3 "very short needles with very high entropy"). The hash is a
// simple base-257 polynomial modulo 2**64, relying on uint64 wraparound —
// no file in the retrieved pack implements this rolling hash directly (the
// teacher and _examples/original_source/src/fallback.rs only roll a
// zero-byte SWAR mask, not a polynomial hash), so this is built directly
// from §4.3.3's description rather than ported from a specific source.
type rabinKarp struct {
	needle  []byte
	reverse bool
	hash    uint64
	pow     uint64 // rkBase^(m-1) mod 2**64
}

const rkBase uint64 = 257

func newRabinKarp(needle []byte, reverse bool) *rabinKarp {
	m := len(needle)
	rk := &rabinKarp{needle: needle, reverse: reverse}
	var h uint64
	for i := 0; i < m; i++ {
		h = h*rkBase + uint64(at(needle, i, reverse))
	}
	rk.hash = h
	pow := uint64(1)
	for i := 0; i < m-1; i++ {
		pow *= rkBase
	}
	rk.pow = pow
	return rk
}

// find returns the oriented match translated back into original haystack
// coordinates, same convention as twoWay.find.
func (rk *rabinKarp) find(haystack []byte) int {
	n := len(haystack)
	m := len(rk.needle)
	if m > n {
		return -1
	}

	var h uint64
	for i := 0; i < m; i++ {
		h = h*rkBase + uint64(at(haystack, i, rk.reverse))
	}

	pos := 0
	for {
		if h == rk.hash && rk.matchesAt(haystack, pos) {
			if !rk.reverse {
				return pos
			}
			return n - pos - m
		}
		if pos+m >= n {
			return -1
		}
		lead := at(haystack, pos, rk.reverse)
		trail := at(haystack, pos+m, rk.reverse)
		h = (h-uint64(lead)*rk.pow)*rkBase + uint64(trail)
		pos++
	}
}

func (rk *rabinKarp) matchesAt(haystack []byte, pos int) bool {
	for i, m := 0, len(rk.needle); i < m; i++ {
		if at(rk.needle, i, rk.reverse) != at(haystack, pos+i, rk.reverse) {
			return false
		}
	}
	return true
}
