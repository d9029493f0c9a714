package memscan

// Every iterator here borrows its finder and haystack and must not outlive
// either (§3 "Lifecycle", §9 "Iterators over borrowed state"). A single
// iterator is single-pass: restart by constructing a new one from the same
// finder.

// OneByteIter is a forward, single-pass iterator over every occurrence of a
// OneByteFinder's needle byte.
type OneByteIter struct {
	finder   *OneByteFinder
	haystack []byte
	pos      int
	moved    bool
	done     bool
}

// Next returns the next offset in increasing order, or ok=false when
// exhausted.
func (it *OneByteIter) Next() (offset int, ok bool) {
	if it.done {
		return 0, false
	}
	rel := it.finder.Find(it.haystack[it.pos:])
	it.moved = true
	if rel == -1 {
		it.done = true
		return 0, false
	}
	abs := it.pos + rel
	it.pos = abs + 1
	return abs, true
}

// Count drains the iterator and returns the number of occurrences. Per
// SPEC_FULL.md, a fresh iterator (Next never called) short-circuits to the
// non-iterator Count routine instead of stepping one-by-one, mirroring the
// original memchr crate's specialized iterator Count.
func (it *OneByteIter) Count() int {
	if !it.moved && !it.done {
		n := it.finder.Count(it.haystack[it.pos:])
		it.done = true
		return n
	}
	n := 0
	for {
		if _, ok := it.Next(); !ok {
			return n
		}
		n++
	}
}

// OneByteRIter is a reverse, single-pass iterator over every occurrence of a
// OneByteFinder's needle byte.
type OneByteRIter struct {
	finder   *OneByteFinder
	haystack []byte
	end      int
	done     bool
}

// Next returns the next offset in decreasing order, or ok=false when
// exhausted.
func (it *OneByteRIter) Next() (offset int, ok bool) {
	if it.done {
		return 0, false
	}
	pos := it.finder.RFind(it.haystack[:it.end])
	if pos == -1 {
		it.done = true
		return 0, false
	}
	it.end = pos
	return pos, true
}

// TwoByteIter is a forward, single-pass iterator over a TwoByteFinder.
type TwoByteIter struct {
	finder   *TwoByteFinder
	haystack []byte
	pos      int
	done     bool
}

func (it *TwoByteIter) Next() (offset int, ok bool) {
	if it.done {
		return 0, false
	}
	rel := it.finder.Find(it.haystack[it.pos:])
	if rel == -1 {
		it.done = true
		return 0, false
	}
	abs := it.pos + rel
	it.pos = abs + 1
	return abs, true
}

// TwoByteRIter is a reverse, single-pass iterator over a TwoByteFinder.
type TwoByteRIter struct {
	finder   *TwoByteFinder
	haystack []byte
	end      int
	done     bool
}

func (it *TwoByteRIter) Next() (offset int, ok bool) {
	if it.done {
		return 0, false
	}
	pos := it.finder.RFind(it.haystack[:it.end])
	if pos == -1 {
		it.done = true
		return 0, false
	}
	it.end = pos
	return pos, true
}

// ThreeByteIter is a forward, single-pass iterator over a ThreeByteFinder.
type ThreeByteIter struct {
	finder   *ThreeByteFinder
	haystack []byte
	pos      int
	done     bool
}

func (it *ThreeByteIter) Next() (offset int, ok bool) {
	if it.done {
		return 0, false
	}
	rel := it.finder.Find(it.haystack[it.pos:])
	if rel == -1 {
		it.done = true
		return 0, false
	}
	abs := it.pos + rel
	it.pos = abs + 1
	return abs, true
}

// ThreeByteRIter is a reverse, single-pass iterator over a ThreeByteFinder.
type ThreeByteRIter struct {
	finder   *ThreeByteFinder
	haystack []byte
	end      int
	done     bool
}

func (it *ThreeByteRIter) Next() (offset int, ok bool) {
	if it.done {
		return 0, false
	}
	pos := it.finder.RFind(it.haystack[:it.end])
	if pos == -1 {
		it.done = true
		return 0, false
	}
	it.end = pos
	return pos, true
}
