package vector

import "sync"

// Engine is the type-erased façade over a single Backend[V] instantiation,
// letting the byte searchers pick a lane width at runtime (once, cached)
// without themselves becoming generic. Each method dispatches to the
// corresponding generic function in search.go monomorphized for this
// engine's V.
type Engine interface {
	// Width reports the lane width backing this engine, for diagnostics.
	Width() int

	FindOne(haystack []byte, needle byte) int
	RFindOne(haystack []byte, needle byte) int
	FindTwo(haystack []byte, n1, n2 byte) int
	RFindTwo(haystack []byte, n1, n2 byte) int
	FindThree(haystack []byte, n1, n2, n3 byte) int
	RFindThree(haystack []byte, n1, n2, n3 byte) int
	PairScan(haystack []byte, b1, b2 byte, distance int) int
	PairScanRev(haystack []byte, b1, b2 byte, distance int) int
}

type engine[V any] struct {
	backend Backend[V]
}

func (e engine[V]) Width() int { return e.backend.Width() }

func (e engine[V]) FindOne(haystack []byte, needle byte) int {
	return FindOne(e.backend, haystack, needle)
}

func (e engine[V]) RFindOne(haystack []byte, needle byte) int {
	return RFindOne(e.backend, haystack, needle)
}

func (e engine[V]) FindTwo(haystack []byte, n1, n2 byte) int {
	return FindTwo(e.backend, haystack, n1, n2)
}

func (e engine[V]) RFindTwo(haystack []byte, n1, n2 byte) int {
	return RFindTwo(e.backend, haystack, n1, n2)
}

func (e engine[V]) FindThree(haystack []byte, n1, n2, n3 byte) int {
	return FindThree(e.backend, haystack, n1, n2, n3)
}

func (e engine[V]) RFindThree(haystack []byte, n1, n2, n3 byte) int {
	return RFindThree(e.backend, haystack, n1, n2, n3)
}

func (e engine[V]) PairScan(haystack []byte, b1, b2 byte, distance int) int {
	return PairScan(e.backend, haystack, b1, b2, distance)
}

func (e engine[V]) PairScanRev(haystack []byte, b1, b2 byte, distance int) int {
	return PairScanRev(e.backend, haystack, b1, b2, distance)
}

func newEngine[V any](b Backend[V]) Engine { return engine[V]{backend: b} }

var (
	tierOnce sync.Once
	tier     Engine
)

// Select returns the process-wide Engine, chosen once from the CPU feature
// level detected by detectTier and cached for the remainder of the process
// (§5: "exactly one piece of process-wide state").
func Select() Engine {
	tierOnce.Do(func() {
		tier = detectTier()
	})
	return tier
}
