package memmem

// shiftOr is the bit-parallel Shift-Or (Baeza-Yates-Gonnet / Bitap) exact
// matcher: one state bit per needle position packed into a machine word,
// so it only applies to needles that fit in 64 bits (§7 "the only fallible
// operation is searcher construction ... cannot be built for needles
// longer than the machine word"). Where it applies it's a cheaper,
// allocation-free alternative to Two-Way: no critical factorization, no
// prefilter, one shift-and-or per haystack byte.
type shiftOr struct {
	masks   [256]uint64
	final   uint64
	m       int
	reverse bool
}

// newShiftOr builds a Shift-Or matcher for needle, or reports ok=false if
// needle is empty or longer than 64 bytes — the one fallible construction
// this module has, per §7.
func newShiftOr(needle []byte, reverse bool) (so *shiftOr, ok bool) {
	m := len(needle)
	if m == 0 || m > 64 {
		return nil, false
	}
	so = &shiftOr{m: m, reverse: reverse}
	for i := range so.masks {
		so.masks[i] = ^uint64(0)
	}
	for i := 0; i < m; i++ {
		b := at(needle, i, reverse)
		so.masks[b] &^= 1 << uint(i)
	}
	so.final = 1 << uint(m-1)
	return so, true
}

// find returns the oriented match translated back into original haystack
// coordinates, same convention as twoWay.find.
func (so *shiftOr) find(haystack []byte) int {
	n := len(haystack)
	if so.m > n {
		return -1
	}
	state := ^uint64(0)
	for i := 0; i < n; i++ {
		b := at(haystack, i, so.reverse)
		state = (state << 1) | so.masks[b]
		if state&so.final == 0 {
			orientedStart := i - so.m + 1
			if !so.reverse {
				return orientedStart
			}
			return n - orientedStart - so.m
		}
	}
	return -1
}
