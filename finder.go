package memscan

// OneByteFinder is an immutable searcher for a single needle byte, built
// once and reusable across many haystacks (§3 "Lifecycle"). It caches
// nothing beyond the byte itself — the vector-broadcast form is recomputed
// from the engine on each call, same as the package-level FindByte helpers
// it delegates to.
type OneByteFinder struct {
	b byte
}

// NewOneByteFinder builds a searcher for b.
func NewOneByteFinder(b byte) *OneByteFinder {
	return &OneByteFinder{b: b}
}

// Find returns the first offset of the needle byte in haystack, or -1.
func (f *OneByteFinder) Find(haystack []byte) int { return FindByte(haystack, f.b) }

// RFind returns the last offset of the needle byte in haystack, or -1.
func (f *OneByteFinder) RFind(haystack []byte) int { return RFindByte(haystack, f.b) }

// Count returns the number of occurrences of the needle byte in haystack.
// Count is only defined on OneByteFinder: §4.2 specifies it for the
// single-byte case alone, a contract this type enforces at compile time by
// simply not exposing Count on TwoByteFinder/ThreeByteFinder.
func (f *OneByteFinder) Count(haystack []byte) int { return CountByte(haystack, f.b) }

// Iter returns a forward iterator over every occurrence of the needle byte
// in haystack, in strictly increasing order.
func (f *OneByteFinder) Iter(haystack []byte) *OneByteIter {
	return &OneByteIter{finder: f, haystack: haystack}
}

// RIter returns a reverse iterator over every occurrence of the needle byte
// in haystack, in strictly decreasing order.
func (f *OneByteFinder) RIter(haystack []byte) *OneByteRIter {
	return &OneByteRIter{finder: f, haystack: haystack, end: len(haystack)}
}

// TwoByteFinder is an immutable searcher for two needle bytes; a match is
// any occurrence of either byte.
type TwoByteFinder struct {
	b1, b2 byte
}

// NewTwoByteFinder builds a searcher for b1 or b2.
func NewTwoByteFinder(b1, b2 byte) *TwoByteFinder {
	return &TwoByteFinder{b1: b1, b2: b2}
}

func (f *TwoByteFinder) Find(haystack []byte) int  { return FindByte2(haystack, f.b1, f.b2) }
func (f *TwoByteFinder) RFind(haystack []byte) int { return RFindByte2(haystack, f.b1, f.b2) }

func (f *TwoByteFinder) Iter(haystack []byte) *TwoByteIter {
	return &TwoByteIter{finder: f, haystack: haystack}
}

func (f *TwoByteFinder) RIter(haystack []byte) *TwoByteRIter {
	return &TwoByteRIter{finder: f, haystack: haystack, end: len(haystack)}
}

// ThreeByteFinder is an immutable searcher for three needle bytes; a match
// is any occurrence of any of the three.
type ThreeByteFinder struct {
	b1, b2, b3 byte
}

// NewThreeByteFinder builds a searcher for b1, b2, or b3.
func NewThreeByteFinder(b1, b2, b3 byte) *ThreeByteFinder {
	return &ThreeByteFinder{b1: b1, b2: b2, b3: b3}
}

func (f *ThreeByteFinder) Find(haystack []byte) int {
	return FindByte3(haystack, f.b1, f.b2, f.b3)
}

func (f *ThreeByteFinder) RFind(haystack []byte) int {
	return RFindByte3(haystack, f.b1, f.b2, f.b3)
}

func (f *ThreeByteFinder) Iter(haystack []byte) *ThreeByteIter {
	return &ThreeByteIter{finder: f, haystack: haystack}
}

func (f *ThreeByteFinder) RIter(haystack []byte) *ThreeByteRIter {
	return &ThreeByteRIter{finder: f, haystack: haystack, end: len(haystack)}
}
