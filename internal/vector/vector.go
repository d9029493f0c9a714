// Package vector implements the byte-search engine's vector abstraction: a
// uniform shape over fixed-width "lanes" of a haystack, plus the handful of
// mask operations (movemask, first/last set bit, clear lowest set bit,
// popcount) that the byte searchers in the parent package are built from.
//
// Three lane widths are implemented, standing in for the three tiers a real
// SIMD-backed memchr dispatches across: word64 (8 lanes, the universal SWAR
// fallback), word128 (16 lanes, the SSE2/NEON/wasm-simd128 tier) and word256
// (32 lanes, the AVX2 tier). All three are plain Go arithmetic over uint64
// words using the classic "zero byte in a word" trick (Matters
// Computational, J. Arndt) generalized from one machine word to two and four
// word lanes, rather than real vector intrinsics — see DESIGN.md for why no
// assembly backs the widest tier.
//
// Each width is exposed through Backend, a generic interface parameterized
// by its own vector representation, so the search algorithms in the parent
// package are written once as generic functions and monomorphized per width
// by the compiler, matching the "generics over a trait with associated
// width" shape this code's design follows.
package vector

const (
	lo64 = 0x0101010101010101
	hi64 = 0x8080808080808080
)

// Backend is the uniform vector contract every lane width implements. V is
// the concrete vector/mask representation for that width (uint64, [2]uint64,
// or [4]uint64) — a mask and a vector share a representation here because
// CmpEq already produces a mask (one set bit, the lane's high bit, per
// matching lane), so no separate mask type is needed.
type Backend[V any] interface {
	// Width reports the number of byte lanes this backend processes per
	// vector, i.e. the number of bytes consumed by one Load call.
	Width() int

	// Splat broadcasts b into every lane.
	Splat(b byte) V

	// LoadUnaligned reads one vector's worth of bytes starting at data[0].
	// The backend never reads past len(data); callers must ensure
	// len(data) >= Width().
	LoadUnaligned(data []byte) V

	// CmpEq returns a mask with the high bit of each lane set exactly
	// where a's lane equals b's lane.
	CmpEq(a, b V) V

	// And returns the lane-wise bitwise AND of two masks.
	And(a, b V) V

	// Or returns the lane-wise bitwise OR of two masks.
	Or(a, b V) V

	// HasNonZero reports whether any lane of the mask is set.
	HasNonZero(v V) bool

	// CountOnes returns the number of set lanes in the mask.
	CountOnes(v V) int

	// FirstOffset returns the byte offset (little-endian lane order) of
	// the least-significant set lane. ok is false when no lane is set.
	FirstOffset(v V) (offset int, ok bool)

	// LastOffset returns the byte offset of the most-significant set
	// lane. ok is false when no lane is set.
	LastOffset(v V) (offset int, ok bool)

	// ClearLowestSet clears the least-significant set lane of the mask.
	ClearLowestSet(v V) V
}
