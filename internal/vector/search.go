package vector

// FindOne returns the least offset in haystack where needle occurs, or -1.
//
// Grounded on the teacher's Memchr (simd/memchr_amd64.go / memchr_fallback.go):
// a scalar fallback below one vector width, then vectors processed four at a
// time with a union mask before falling back to locating the exact lane, per
// §4.2 of the scanning-engine spec this module implements. Real hardware
// memchr chases an aligned address between the unaligned head and tail reads;
// that dance exists to avoid a second unaligned load once the loop is
// aligned, which has no analogue for the plain-arithmetic backends here (an
// "unaligned" read costs the same as an "aligned" one), so this loop instead
// walks fixed-size, non-overlapping windows directly.
func FindOne[V any](be Backend[V], haystack []byte, needle byte) int {
	n, w := len(haystack), be.Width()
	if n < w {
		return scalarFindOne(haystack, needle)
	}
	nv := be.Splat(needle)
	i := 0
	for i+4*w <= n {
		m0 := be.CmpEq(be.LoadUnaligned(haystack[i:]), nv)
		m1 := be.CmpEq(be.LoadUnaligned(haystack[i+w:]), nv)
		m2 := be.CmpEq(be.LoadUnaligned(haystack[i+2*w:]), nv)
		m3 := be.CmpEq(be.LoadUnaligned(haystack[i+3*w:]), nv)
		if be.HasNonZero(be.Or(be.Or(m0, m1), be.Or(m2, m3))) {
			if off, ok := be.FirstOffset(m0); ok {
				return i + off
			}
			if off, ok := be.FirstOffset(m1); ok {
				return i + w + off
			}
			if off, ok := be.FirstOffset(m2); ok {
				return i + 2*w + off
			}
			off, _ := be.FirstOffset(m3)
			return i + 3*w + off
		}
		i += 4 * w
	}
	for i+w <= n {
		if off, ok := be.FirstOffset(be.CmpEq(be.LoadUnaligned(haystack[i:]), nv)); ok {
			return i + off
		}
		i += w
	}
	if off := scalarFindOne(haystack[i:], needle); off != -1 {
		return i + off
	}
	return -1
}

// RFindOne returns the greatest offset in haystack where needle occurs, or -1.
func RFindOne[V any](be Backend[V], haystack []byte, needle byte) int {
	n, w := len(haystack), be.Width()
	if n < w {
		return scalarRFindOne(haystack, needle)
	}
	nv := be.Splat(needle)
	end := n
	for end-4*w >= 0 {
		base := end - 4*w
		m0 := be.CmpEq(be.LoadUnaligned(haystack[base:]), nv)
		m1 := be.CmpEq(be.LoadUnaligned(haystack[base+w:]), nv)
		m2 := be.CmpEq(be.LoadUnaligned(haystack[base+2*w:]), nv)
		m3 := be.CmpEq(be.LoadUnaligned(haystack[base+3*w:]), nv)
		if be.HasNonZero(be.Or(be.Or(m0, m1), be.Or(m2, m3))) {
			if off, ok := be.LastOffset(m3); ok {
				return base + 3*w + off
			}
			if off, ok := be.LastOffset(m2); ok {
				return base + 2*w + off
			}
			if off, ok := be.LastOffset(m1); ok {
				return base + w + off
			}
			off, _ := be.LastOffset(m0)
			return base + off
		}
		end = base
	}
	for end-w >= 0 {
		base := end - w
		if off, ok := be.LastOffset(be.CmpEq(be.LoadUnaligned(haystack[base:]), nv)); ok {
			return base + off
		}
		end = base
	}
	return scalarRFindOne(haystack[:end], needle)
}

// FindTwo returns the least offset where n1 or n2 occurs, or -1. The loop
// unrolls by two vectors instead of four: diminishing returns at higher
// needle multiplicity, per §4.2.
func FindTwo[V any](be Backend[V], haystack []byte, n1, n2 byte) int {
	n, w := len(haystack), be.Width()
	if n < w {
		return scalarFindAny(haystack, n1, n2, n2)
	}
	v1, v2 := be.Splat(n1), be.Splat(n2)
	i := 0
	for i+2*w <= n {
		a0 := be.Or(be.CmpEq(be.LoadUnaligned(haystack[i:]), v1), be.CmpEq(be.LoadUnaligned(haystack[i:]), v2))
		a1 := be.Or(be.CmpEq(be.LoadUnaligned(haystack[i+w:]), v1), be.CmpEq(be.LoadUnaligned(haystack[i+w:]), v2))
		if be.HasNonZero(be.Or(a0, a1)) {
			if off, ok := be.FirstOffset(a0); ok {
				return i + off
			}
			off, _ := be.FirstOffset(a1)
			return i + w + off
		}
		i += 2 * w
	}
	for i+w <= n {
		a := be.Or(be.CmpEq(be.LoadUnaligned(haystack[i:]), v1), be.CmpEq(be.LoadUnaligned(haystack[i:]), v2))
		if off, ok := be.FirstOffset(a); ok {
			return i + off
		}
		i += w
	}
	if off := scalarFindAny(haystack[i:], n1, n2, n2); off != -1 {
		return i + off
	}
	return -1
}

// RFindTwo mirrors FindTwo, scanning from the end.
func RFindTwo[V any](be Backend[V], haystack []byte, n1, n2 byte) int {
	n, w := len(haystack), be.Width()
	if n < w {
		return scalarRFindAny(haystack, n1, n2, n2)
	}
	v1, v2 := be.Splat(n1), be.Splat(n2)
	end := n
	for end-2*w >= 0 {
		base := end - 2*w
		a0 := be.Or(be.CmpEq(be.LoadUnaligned(haystack[base:]), v1), be.CmpEq(be.LoadUnaligned(haystack[base:]), v2))
		a1 := be.Or(be.CmpEq(be.LoadUnaligned(haystack[base+w:]), v1), be.CmpEq(be.LoadUnaligned(haystack[base+w:]), v2))
		if be.HasNonZero(be.Or(a0, a1)) {
			if off, ok := be.LastOffset(a1); ok {
				return base + w + off
			}
			off, _ := be.LastOffset(a0)
			return base + off
		}
		end = base
	}
	for end-w >= 0 {
		base := end - w
		a := be.Or(be.CmpEq(be.LoadUnaligned(haystack[base:]), v1), be.CmpEq(be.LoadUnaligned(haystack[base:]), v2))
		if off, ok := be.LastOffset(a); ok {
			return base + off
		}
		end = base
	}
	return scalarRFindAny(haystack[:end], n1, n2, n2)
}

// FindThree returns the least offset where n1, n2, or n3 occurs, or -1.
func FindThree[V any](be Backend[V], haystack []byte, n1, n2, n3 byte) int {
	n, w := len(haystack), be.Width()
	if n < w {
		return scalarFindAny(haystack, n1, n2, n3)
	}
	v1, v2, v3 := be.Splat(n1), be.Splat(n2), be.Splat(n3)
	i := 0
	for i+2*w <= n {
		a0 := threeEq(be, haystack[i:], v1, v2, v3)
		a1 := threeEq(be, haystack[i+w:], v1, v2, v3)
		if be.HasNonZero(be.Or(a0, a1)) {
			if off, ok := be.FirstOffset(a0); ok {
				return i + off
			}
			off, _ := be.FirstOffset(a1)
			return i + w + off
		}
		i += 2 * w
	}
	for i+w <= n {
		a := threeEq(be, haystack[i:], v1, v2, v3)
		if off, ok := be.FirstOffset(a); ok {
			return i + off
		}
		i += w
	}
	if off := scalarFindAny(haystack[i:], n1, n2, n3); off != -1 {
		return i + off
	}
	return -1
}

// RFindThree mirrors FindThree, scanning from the end.
func RFindThree[V any](be Backend[V], haystack []byte, n1, n2, n3 byte) int {
	n, w := len(haystack), be.Width()
	if n < w {
		return scalarRFindAny(haystack, n1, n2, n3)
	}
	v1, v2, v3 := be.Splat(n1), be.Splat(n2), be.Splat(n3)
	end := n
	for end-2*w >= 0 {
		base := end - 2*w
		a0 := threeEq(be, haystack[base:], v1, v2, v3)
		a1 := threeEq(be, haystack[base+w:], v1, v2, v3)
		if be.HasNonZero(be.Or(a0, a1)) {
			if off, ok := be.LastOffset(a1); ok {
				return base + w + off
			}
			off, _ := be.LastOffset(a0)
			return base + off
		}
		end = base
	}
	for end-w >= 0 {
		base := end - w
		a := threeEq(be, haystack[base:], v1, v2, v3)
		if off, ok := be.LastOffset(a); ok {
			return base + off
		}
		end = base
	}
	return scalarRFindAny(haystack[:end], n1, n2, n3)
}

func threeEq[V any](be Backend[V], chunk []byte, v1, v2, v3 V) V {
	v := be.LoadUnaligned(chunk)
	return be.Or(be.Or(be.CmpEq(v, v1), be.CmpEq(v, v2)), be.CmpEq(v, v3))
}

// PairScan locates the least offset p such that haystack[p] == b1 and
// haystack[p+distance] == b2, or -1. distance must be >= 0. This is the
// vectorized core of the substring searcher's rare-pair prefilter (§4.3.1):
// at each window it loads a vector at p and another at p+distance and
// intersects their equality masks against the two broadcast needle bytes.
func PairScan[V any](be Backend[V], haystack []byte, b1, b2 byte, distance int) int {
	n, w := len(haystack), be.Width()
	if distance < 0 {
		panic("vector: PairScan distance must be non-negative")
	}
	if n < w+distance {
		return scalarPairScan(haystack, b1, b2, distance)
	}
	v1, v2 := be.Splat(b1), be.Splat(b2)
	limit := n - w - distance
	p := 0
	for p <= limit {
		ma := be.CmpEq(be.LoadUnaligned(haystack[p:]), v1)
		mb := be.CmpEq(be.LoadUnaligned(haystack[p+distance:]), v2)
		m := be.And(ma, mb)
		if off, ok := be.FirstOffset(m); ok {
			return p + off
		}
		p += w
	}
	if off := scalarPairScan(haystack[p:], b1, b2, distance); off != -1 {
		return p + off
	}
	return -1
}

// PairScanRev locates the greatest offset p such that haystack[p] == b1 and
// haystack[p+distance] == b2, or -1. The reverse substring searcher's
// prefilter uses this to scan for a candidate's rare pair from the right,
// mirroring PairScan exactly.
func PairScanRev[V any](be Backend[V], haystack []byte, b1, b2 byte, distance int) int {
	n, w := len(haystack), be.Width()
	if distance < 0 {
		panic("vector: PairScanRev distance must be non-negative")
	}
	if n < w+distance {
		return scalarPairScanRev(haystack, b1, b2, distance)
	}
	v1, v2 := be.Splat(b1), be.Splat(b2)
	limit := n - w - distance
	p := limit
	for p >= 0 {
		ma := be.CmpEq(be.LoadUnaligned(haystack[p:]), v1)
		mb := be.CmpEq(be.LoadUnaligned(haystack[p+distance:]), v2)
		m := be.And(ma, mb)
		if off, ok := be.LastOffset(m); ok {
			return p + off
		}
		p -= w
	}
	return scalarPairScanRev(haystack[:p+w+distance], b1, b2, distance)
}

func scalarFindOne(haystack []byte, needle byte) int {
	for i, b := range haystack {
		if b == needle {
			return i
		}
	}
	return -1
}

func scalarRFindOne(haystack []byte, needle byte) int {
	for i := len(haystack) - 1; i >= 0; i-- {
		if haystack[i] == needle {
			return i
		}
	}
	return -1
}

func scalarFindAny(haystack []byte, n1, n2, n3 byte) int {
	for i, b := range haystack {
		if b == n1 || b == n2 || b == n3 {
			return i
		}
	}
	return -1
}

func scalarRFindAny(haystack []byte, n1, n2, n3 byte) int {
	for i := len(haystack) - 1; i >= 0; i-- {
		b := haystack[i]
		if b == n1 || b == n2 || b == n3 {
			return i
		}
	}
	return -1
}

func scalarPairScan(haystack []byte, b1, b2 byte, distance int) int {
	limit := len(haystack) - distance - 1
	for p := 0; p <= limit; p++ {
		if haystack[p] == b1 && haystack[p+distance] == b2 {
			return p
		}
	}
	return -1
}

func scalarPairScanRev(haystack []byte, b1, b2 byte, distance int) int {
	limit := len(haystack) - distance - 1
	for p := limit; p >= 0; p-- {
		if haystack[p] == b1 && haystack[p+distance] == b2 {
			return p
		}
	}
	return -1
}

// CountOne counts every occurrence of needle in haystack with a plain
// byte-at-a-time loop.
//
// §4.2 mandates the scalar loop here specifically: an earlier SWAR
// population-count strategy was removed from the source this spec is drawn
// from because it produced incorrect counts for certain byte values on some
// targets, so this is not a missed optimization opportunity.
func CountOne(haystack []byte, needle byte) int {
	count := 0
	for _, b := range haystack {
		if b == needle {
			count++
		}
	}
	return count
}
