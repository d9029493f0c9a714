//go:build arm64

package vector

import "golang.org/x/sys/cpu"

// detectTier selects the 128-bit tier (standing in for NEON) on aarch64
// little-endian hosts with Advanced SIMD, per §9's caveat that NEON's
// shift-right-by-4 movemask compaction depends on little-endian byte order
// and is not ported to big-endian hosts.
func detectTier() Engine {
	if cpu.ARM64.HasASIMD {
		return newEngine[[2]uint64](Word128Backend{})
	}
	return newEngine[uint64](Word64Backend{})
}
