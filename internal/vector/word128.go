package vector

// Word128Backend stands in for the 128-bit lane tier (SSE2 on x86_64, NEON
// on aarch64, simd128 on wasm32): two uint64 words as 16 byte lanes.
type Word128Backend struct{}

func (Word128Backend) Width() int { return 16 }

func (Word128Backend) Splat(b byte) [2]uint64 {
	var v [2]uint64
	multiSplat(v[:], b)
	return v
}

func (Word128Backend) LoadUnaligned(data []byte) [2]uint64 {
	var v [2]uint64
	multiLoad(v[:], data)
	return v
}

func (Word128Backend) CmpEq(a, b [2]uint64) [2]uint64 {
	var v [2]uint64
	multiCmpEq(v[:], a[:], b[:])
	return v
}

func (Word128Backend) And(a, b [2]uint64) [2]uint64 {
	var v [2]uint64
	multiAnd(v[:], a[:], b[:])
	return v
}

func (Word128Backend) Or(a, b [2]uint64) [2]uint64 {
	var v [2]uint64
	multiOr(v[:], a[:], b[:])
	return v
}

func (Word128Backend) HasNonZero(v [2]uint64) bool { return multiHasNonZero(v[:]) }
func (Word128Backend) CountOnes(v [2]uint64) int   { return multiCountOnes(v[:]) }

func (Word128Backend) FirstOffset(v [2]uint64) (int, bool) { return multiFirstOffset(v[:]) }
func (Word128Backend) LastOffset(v [2]uint64) (int, bool)  { return multiLastOffset(v[:]) }

func (Word128Backend) ClearLowestSet(v [2]uint64) [2]uint64 {
	var out [2]uint64
	multiClearLowestSet(out[:], v[:])
	return out
}
