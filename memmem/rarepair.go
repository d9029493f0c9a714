package memmem

import "github.com/coregx/memscan/internal/conv"

// commonThreshold disqualifies a rare pair when both chosen bytes rank at
// or above it out of 255 — at that point neither byte is selective enough
// for the prefilter to pay for itself over bare Two-Way.
const commonThreshold = 250

// rarePair is the pair of needle offsets the vectorized prefilter scans
// for. i1/i2 are stored as uint8 (via conv.IntToUint8) mirroring the
// original crate's RareNeedleBytes, which keeps offsets small deliberately
// since needles longer than 255 bytes only ever select a pair within the
// first 256 bytes (§4.3.1 step 4).
type rarePair struct {
	i1, i2 uint8
	b1, b2 byte
	// exists is true whenever the needle has length >= 2. The two offsets
	// always differ, though their bytes may be equal: an all-identical
	// needle yields a pair of one repeated byte.
	exists bool
	// commonOK is true when the chosen pair also passes the "too common"
	// heuristic (§4.3.1 "Heuristic disqualification"). PrefilterAlways
	// overrides this; PrefilterAuto requires it.
	commonOK bool
	// usable is the pair's final usability at PrefilterAuto, i.e.
	// exists && commonOK.
	usable bool
}

// selectRarePair finds the two rarest bytes in needle under ranker,
// breaking ties toward the leftmost index and guaranteeing i1 != i2
// whenever possible. Grounded on the teacher's simd.SelectRareBytes
// (simd/byte_frequencies.go) and _examples/original_source/src/memmem/
// rarebytes.rs's RareNeedleBytes::forward, combined here with this
// package's own "too common to bother" disqualification (§4.3.1
// "Heuristic disqualification").
func selectRarePair(needle []byte, ranker Ranker) rarePair {
	n := len(needle)
	if n < 2 {
		return rarePair{}
	}
	// Needles longer than 256 bytes still only ever pick a pair from the
	// first 256 bytes, since offsets are stored as uint8 (§4.3.1 step 4).
	scanLen := n
	if scanLen > 256 {
		scanLen = 256
	}

	b1, i1 := needle[0], 0
	b2, i2 := needle[1], 1
	if ranker.Rank(b2) < ranker.Rank(b1) {
		b1, b2 = b2, b1
		i1, i2 = i2, i1
	}
	for i := 2; i < scanLen; i++ {
		b := needle[i]
		r := ranker.Rank(b)
		if r < ranker.Rank(b1) {
			b2, i2 = b1, i1
			b1, i1 = b, i
		} else if b != b1 && r < ranker.Rank(b2) {
			b2, i2 = b, i
		}
	}
	if i1 == i2 {
		// Defensive only: i1 and i2 start as 0 and 1 and every update
		// takes a fresh index, so the two offsets never coincide here.
		return rarePair{}
	}
	commonOK := ranker.Rank(b1) < commonThreshold || ranker.Rank(b2) < commonThreshold
	return rarePair{
		i1:       conv.IntToUint8(i1),
		i2:       conv.IntToUint8(i2),
		b1:       b1,
		b2:       b2,
		exists:   true,
		commonOK: commonOK,
		usable:   commonOK,
	}
}

// ordered returns the pair's offsets in increasing order, the shape the
// vectorized scan needs (§4.3.1's "loads a vector at p and another at
// p + (i2 - i1)" assumes i1 < i2).
func (rp rarePair) ordered() (lo, hi int, bLo, bHi byte) {
	i1, i2 := int(rp.i1), int(rp.i2)
	if i1 <= i2 {
		return i1, i2, rp.b1, rp.b2
	}
	return i2, i1, rp.b2, rp.b1
}
