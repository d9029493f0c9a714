package vector

import (
	"encoding/binary"
	"math/bits"
)

// Word64Backend is the SWAR fallback: one uint64 treated as 8 byte lanes.
//
// Grounded on the teacher's memchrGeneric (formerly simd/memchr_generic_impl.go)
// and on the zero-byte-detection identity in
// _examples/original_source/src/fallback.rs's contains_zero_byte.
type Word64Backend struct{}

func (Word64Backend) Width() int { return 8 }

func (Word64Backend) Splat(b byte) uint64 {
	return uint64(b) * lo64
}

func (Word64Backend) LoadUnaligned(data []byte) uint64 {
	return binary.LittleEndian.Uint64(data)
}

func (Word64Backend) CmpEq(a, b uint64) uint64 {
	x := a ^ b
	return ^(((x &^ hi64) + (hi64 - lo64)) | x | (hi64 - lo64))
}

func (Word64Backend) And(a, b uint64) uint64 { return a & b }
func (Word64Backend) Or(a, b uint64) uint64  { return a | b }

func (Word64Backend) HasNonZero(v uint64) bool { return v != 0 }

func (Word64Backend) CountOnes(v uint64) int {
	// Exactly one bit (the lane's bit 7) can be set per byte lane, so a
	// plain population count of the word already counts matching lanes.
	return bits.OnesCount64(v)
}

func (Word64Backend) FirstOffset(v uint64) (int, bool) {
	if v == 0 {
		return 0, false
	}
	return bits.TrailingZeros64(v) / 8, true
}

func (Word64Backend) LastOffset(v uint64) (int, bool) {
	if v == 0 {
		return 0, false
	}
	return (bits.Len64(v) - 1) / 8, true
}

func (Word64Backend) ClearLowestSet(v uint64) uint64 {
	return v & (v - 1)
}
