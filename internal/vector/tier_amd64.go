//go:build amd64

package vector

import "golang.org/x/sys/cpu"

// detectTier prefers the 256-bit (AVX2) tier when the running CPU supports
// it, falling back to the 128-bit (SSE2, always present on amd64) tier
// otherwise — the same two-step preference order as the teacher's
// simd.hasAVX2 gate, generalized to the vector abstraction layer.
func detectTier() Engine {
	if cpu.X86.HasAVX2 {
		return newEngine[[4]uint64](Word256Backend{})
	}
	return newEngine[[2]uint64](Word128Backend{})
}
