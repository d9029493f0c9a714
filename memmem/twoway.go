package memmem

// twoWay is the Two-Way string-matching verifier (Crochemore-Perrin),
// worst-case O(N+M) with O(1) extra state. Implemented directly from
// §4.3.2's algorithmic description since no twoway.rs file was present in
// _examples/original_source to ground a line-for-line port on; the
// shape here (two maximal-suffix computations, short/long period
// dispatch, a single "memory" integer carried between attempts) is the
// classic published algorithm.
//
// reverse runs the identical algorithm against the needle and haystack
// both read back-to-front via at() (orient.go), so the same struct and
// the same search loop serve both Finder and FinderRev — only the
// orientation flag and the final offset translation differ.
type twoWay struct {
	needle  []byte
	reverse bool
	critPos int
	period  int
	isShort bool
}

func newTwoWay(needle []byte, reverse bool) *twoWay {
	critPos, period := criticalFactorization(needle, reverse)
	return &twoWay{
		needle:  needle,
		reverse: reverse,
		critPos: critPos,
		period:  period,
		isShort: hasShortPeriod(needle, reverse, critPos, period),
	}
}

// criticalFactorization computes the split point p and its period q per
// §4.3.2 step 1: two maximal suffixes (one under <=, one under >=), keeping
// whichever starts later.
func criticalFactorization(needle []byte, reverse bool) (critPos, period int) {
	i1, p1 := maximalSuffix(needle, reverse, false)
	i2, p2 := maximalSuffix(needle, reverse, true)
	if i1 > i2 {
		return i1 + 1, p1
	}
	return i2 + 1, p2
}

// maximalSuffix computes the maximal suffix of needle under a lexicographic
// order: a<b when invert is false, a>b when invert is true. Returns the
// suffix's starting index and its period. This is the standard
// Crochemore-Perrin maximal-suffix algorithm.
func maximalSuffix(needle []byte, reverse, invert bool) (ms, period int) {
	n := len(needle)
	ms = -1
	j, k, p := 0, 1, 1
	for j+k < n {
		a := at(needle, j+k, reverse)
		b := at(needle, ms+k, reverse)
		var less bool
		if invert {
			less = a > b
		} else {
			less = a < b
		}
		switch {
		case less:
			j = j + k
			k = 1
			p = j - ms
		case a == b:
			if k == p {
				j = j + p
				k = 1
			} else {
				k++
			}
		default:
			ms = j
			j = ms + 1
			k = 1
			p = 1
		}
	}
	return ms, p
}

// hasShortPeriod reports whether needle[0:critPos] == needle[period:period+critPos]
// (§4.3.2 step 2), selecting the shift strategy that remembers the last
// match's overlap instead of restarting from scratch.
func hasShortPeriod(needle []byte, reverse bool, critPos, period int) bool {
	n := len(needle)
	if period+critPos > n {
		return false
	}
	for i := 0; i < critPos; i++ {
		if at(needle, i, reverse) != at(needle, period+i, reverse) {
			return false
		}
	}
	return true
}

// find returns the oriented match position translated back into original
// haystack coordinates: the leftmost match for a forward twoWay, the
// rightmost for a reverse one (§4.3.2's "right half" / "left half" scan).
func (tw *twoWay) find(haystack []byte) int {
	n := len(haystack)
	m := len(tw.needle)
	if m == 0 {
		return 0
	}
	if m > n {
		return -1
	}

	pos, memory := 0, 0
	for pos+m <= n {
		i := tw.critPos
		if memory > i {
			i = memory
		}
		for i < m && at(tw.needle, i, tw.reverse) == at(haystack, pos+i, tw.reverse) {
			i++
		}
		if i < m {
			pos += i - tw.critPos + 1
			memory = 0
			continue
		}

		j := tw.critPos - 1
		for j >= memory && at(tw.needle, j, tw.reverse) == at(haystack, pos+j, tw.reverse) {
			j--
		}
		if j < memory {
			if !tw.reverse {
				return pos
			}
			return n - pos - m
		}

		if tw.isShort {
			pos += tw.period
			memory = m - tw.period
		} else {
			pos += tw.critPos + 1
			memory = 0
		}
	}
	return -1
}
