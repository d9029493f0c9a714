package vector

// Word256Backend stands in for the 256-bit lane tier (AVX2 on x86_64): four
// uint64 words as 32 byte lanes.
type Word256Backend struct{}

func (Word256Backend) Width() int { return 32 }

func (Word256Backend) Splat(b byte) [4]uint64 {
	var v [4]uint64
	multiSplat(v[:], b)
	return v
}

func (Word256Backend) LoadUnaligned(data []byte) [4]uint64 {
	var v [4]uint64
	multiLoad(v[:], data)
	return v
}

func (Word256Backend) CmpEq(a, b [4]uint64) [4]uint64 {
	var v [4]uint64
	multiCmpEq(v[:], a[:], b[:])
	return v
}

func (Word256Backend) And(a, b [4]uint64) [4]uint64 {
	var v [4]uint64
	multiAnd(v[:], a[:], b[:])
	return v
}

func (Word256Backend) Or(a, b [4]uint64) [4]uint64 {
	var v [4]uint64
	multiOr(v[:], a[:], b[:])
	return v
}

func (Word256Backend) HasNonZero(v [4]uint64) bool { return multiHasNonZero(v[:]) }
func (Word256Backend) CountOnes(v [4]uint64) int   { return multiCountOnes(v[:]) }

func (Word256Backend) FirstOffset(v [4]uint64) (int, bool) { return multiFirstOffset(v[:]) }
func (Word256Backend) LastOffset(v [4]uint64) (int, bool)  { return multiLastOffset(v[:]) }

func (Word256Backend) ClearLowestSet(v [4]uint64) [4]uint64 {
	var out [4]uint64
	multiClearLowestSet(out[:], v[:])
	return out
}
