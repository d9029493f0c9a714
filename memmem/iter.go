package memmem

// FindIter is a forward, single-pass iterator over non-overlapping
// occurrences of a Finder's needle. It borrows its finder and haystack and
// must not outlive either (§5 "Resource ownership").
type FindIter struct {
	finder   *Finder
	haystack []byte
	pos      int
	done     bool
}

// Next returns the next offset in strictly increasing order, or ok=false
// when exhausted. After yielding i, the next search starts at
// i + max(1, len(needle)) (§4.3.4), so matches never overlap.
func (it *FindIter) Next() (offset int, ok bool) {
	if it.done || it.pos > len(it.haystack) {
		it.done = true
		return 0, false
	}
	rel := it.finder.Find(it.haystack[it.pos:])
	if rel == -1 {
		it.done = true
		return 0, false
	}
	abs := it.pos + rel
	step := len(it.finder.needle)
	if step < 1 {
		step = 1
	}
	it.pos = abs + step
	return abs, true
}

// RFindIter is a reverse, single-pass iterator over non-overlapping
// occurrences of a FinderRev's needle.
type RFindIter struct {
	finder *FinderRev
	haystack []byte
	end      int
	done     bool
}

// Next returns the next offset in strictly decreasing order, or ok=false
// when exhausted. For a non-empty needle, after yielding i the next search
// ends at i (not i-1): haystack[:i] still holds room for an earlier,
// non-overlapping match. An empty needle is handled directly, since
// RFind always reports len(slice) for an empty needle and so never makes
// progress on its own (§4.3.4's "ensures overlapping matches with an empty
// needle are handled identically to the forward case when reversed").
func (it *RFindIter) Next() (offset int, ok bool) {
	if it.done {
		return 0, false
	}
	if it.finder.f.kind == kindEmpty {
		if it.end < 0 {
			it.done = true
			return 0, false
		}
		pos := it.end
		it.end--
		return pos, true
	}
	pos := it.finder.RFind(it.haystack[:it.end])
	if pos == -1 {
		it.done = true
		return 0, false
	}
	it.end = pos
	return pos, true
}
