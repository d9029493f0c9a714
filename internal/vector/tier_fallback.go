//go:build !amd64 && !arm64 && !wasm

package vector

// detectTier is the universal SWAR fallback for every architecture without
// a dedicated tier file above (and for platforms like SGX where the feature
// level is unknown at runtime, per §4.4: "SIMD is disabled").
func detectTier() Engine {
	return newEngine[uint64](Word64Backend{})
}
