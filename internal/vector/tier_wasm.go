//go:build wasm

package vector

// detectTier selects the 128-bit tier (standing in for wasm32's simd128
// proposal) unconditionally: unlike x86/arm64, wasm's SIMD support is a
// compile-time target choice rather than a runtime-detectable CPU feature.
func detectTier() Engine {
	return newEngine[[2]uint64](Word128Backend{})
}
