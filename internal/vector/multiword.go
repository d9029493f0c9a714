package vector

import (
	"encoding/binary"
	"math/bits"
)

// multiCmpEq, multiAnd, ... implement the shared lane arithmetic for the
// wider backends (word128, word256) over a plain slice view of their
// backing array, so Word128Backend and Word256Backend don't each repeat the
// same loop.

func multiSplat(dst []uint64, b byte) {
	v := uint64(b) * lo64
	for i := range dst {
		dst[i] = v
	}
}

func multiLoad(dst []uint64, data []byte) {
	for i := range dst {
		dst[i] = binary.LittleEndian.Uint64(data[i*8:])
	}
}

func multiCmpEq(dst, a, b []uint64) {
	for i := range dst {
		x := a[i] ^ b[i]
		dst[i] = ^(((x &^ hi64) + (hi64 - lo64)) | x | (hi64 - lo64))
	}
}

func multiAnd(dst, a, b []uint64) {
	for i := range dst {
		dst[i] = a[i] & b[i]
	}
}

func multiOr(dst, a, b []uint64) {
	for i := range dst {
		dst[i] = a[i] | b[i]
	}
}

func multiHasNonZero(v []uint64) bool {
	for _, w := range v {
		if w != 0 {
			return true
		}
	}
	return false
}

func multiCountOnes(v []uint64) int {
	n := 0
	for _, w := range v {
		n += bits.OnesCount64(w)
	}
	return n
}

func multiFirstOffset(v []uint64) (int, bool) {
	for i, w := range v {
		if w != 0 {
			return i*8 + bits.TrailingZeros64(w)/8, true
		}
	}
	return 0, false
}

func multiLastOffset(v []uint64) (int, bool) {
	for i := len(v) - 1; i >= 0; i-- {
		if v[i] != 0 {
			return i*8 + (bits.Len64(v[i])-1)/8, true
		}
	}
	return 0, false
}

func multiClearLowestSet(dst, v []uint64) {
	copy(dst, v)
	for i, w := range dst {
		if w != 0 {
			dst[i] = w & (w - 1)
			return
		}
	}
}
