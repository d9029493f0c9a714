package memmem

// at reads b[i] under the given orientation: forward indexes normally,
// reverse indexes from the end. Two-Way, Shift-Or, and Rabin-Karp all
// share this so a single implementation of each algorithm drives both the
// forward and reverse searcher, matching §4.3.2's "reverse search uses the
// symmetric decomposition on the reversed needle" without ever allocating
// a reversed copy of either needle or haystack.
func at(b []byte, i int, reverse bool) byte {
	if reverse {
		return b[len(b)-1-i]
	}
	return b[i]
}
