package memmem

import "github.com/coregx/memscan"

// PrefilterMode controls whether a Finder's rare-pair prefilter runs.
type PrefilterMode int

const (
	// PrefilterAuto uses the prefilter when the needle admits a usable
	// rare pair, and falls back to a bare verifier otherwise. This is the
	// default.
	PrefilterAuto PrefilterMode = iota
	// PrefilterAlways forces the prefilter on whenever a rare pair can be
	// selected at all, even one the heuristic would otherwise consider
	// too common to bother with.
	PrefilterAlways
	// PrefilterNever disables the prefilter; every candidate comes from
	// the verifier alone.
	PrefilterNever
)

// kind identifies which verifier a Finder was built with.
type kind int

const (
	kindEmpty kind = iota
	kindOne
	kindTwoWay
	kindRabinKarp
	kindShiftOr
)

// rabinKarpMaxLen bounds how long a needle may be and still use
// Rabin-Karp when the prefilter isn't usable; longer needles use Shift-Or
// up to 64 bytes and Two-Way beyond that (§4.3.3).
const rabinKarpMaxLen = 16

// Finder is an immutable forward substring searcher, built once via
// Builder and reusable across many haystacks (§3 "Lifecycle", §4.4).
type Finder struct {
	needle       []byte
	kind         kind
	rp           rarePair
	usePrefilter bool
	tw           *twoWay
	rk           *rabinKarp
	so           *shiftOr
	one          *memscan.OneByteFinder
}

// FinderRev is the reverse counterpart to Finder. It is a distinct type
// so a reverse call cannot be made on a forward searcher, and vice versa
// (§4.4 "the compiler can refuse a reverse call on a forward searcher").
type FinderRev struct {
	f *Finder
}

// Builder configures and constructs Finder/FinderRev values.
type Builder struct {
	ranker    Ranker
	prefilter PrefilterMode
}

// NewBuilder returns a Builder with the default ranker and PrefilterAuto.
func NewBuilder() *Builder {
	return &Builder{ranker: DefaultRanker, prefilter: PrefilterAuto}
}

// Ranker sets the frequency table used to select the rare pair.
func (b *Builder) Ranker(r Ranker) *Builder {
	b.ranker = r
	return b
}

// Prefilter sets the prefilter mode.
func (b *Builder) Prefilter(mode PrefilterMode) *Builder {
	b.prefilter = mode
	return b
}

// Build constructs a forward Finder for needle.
func (b *Builder) Build(needle []byte) *Finder {
	return newFinder(needle, false, b.ranker, b.prefilter)
}

// BuildRev constructs a reverse FinderRev for needle.
func (b *Builder) BuildRev(needle []byte) *FinderRev {
	return &FinderRev{f: newFinder(needle, true, b.ranker, b.prefilter)}
}

func newFinder(needle []byte, reverse bool, ranker Ranker, mode PrefilterMode) *Finder {
	f := &Finder{needle: needle}

	switch {
	case len(needle) == 0:
		f.kind = kindEmpty
	case len(needle) == 1:
		f.kind = kindOne
		f.one = memscan.NewOneByteFinder(needle[0])
	default:
		rp := selectRarePair(needle, ranker)
		var usable bool
		switch mode {
		case PrefilterNever:
			usable = false
		case PrefilterAlways:
			usable = rp.exists
		default:
			usable = rp.usable
		}
		switch {
		case usable:
			f.kind = kindTwoWay
			f.rp = rp
			f.usePrefilter = true
			f.tw = newTwoWay(needle, reverse)
		case len(needle) <= rabinKarpMaxLen:
			f.kind = kindRabinKarp
			f.rk = newRabinKarp(needle, reverse)
		default:
			if so, ok := newShiftOr(needle, reverse); ok {
				f.kind = kindShiftOr
				f.so = so
			} else {
				f.kind = kindTwoWay
				f.tw = newTwoWay(needle, reverse)
			}
		}
	}
	return f
}

// Find returns the leftmost offset in haystack where the needle occurs, or
// -1. An empty needle matches at offset 0 (§6 "Empty needle to substring
// search").
func (f *Finder) Find(haystack []byte) int {
	switch f.kind {
	case kindEmpty:
		return 0
	case kindOne:
		return f.one.Find(haystack)
	case kindTwoWay:
		if f.usePrefilter {
			return prefilterFind(haystack, f.needle, f.rp)
		}
		return f.tw.find(haystack)
	case kindRabinKarp:
		return f.rk.find(haystack)
	case kindShiftOr:
		return f.so.find(haystack)
	default:
		return -1
	}
}

// FindIter returns a forward, single-pass iterator over every
// non-overlapping occurrence of the needle, in strictly increasing order
// (§4.3.4).
func (f *Finder) FindIter(haystack []byte) *FindIter {
	return &FindIter{finder: f, haystack: haystack}
}

// RFind returns the rightmost offset in haystack where the needle occurs,
// or -1. An empty needle matches at offset len(haystack).
func (fr *FinderRev) RFind(haystack []byte) int {
	f := fr.f
	switch f.kind {
	case kindEmpty:
		return len(haystack)
	case kindOne:
		return f.one.RFind(haystack)
	case kindTwoWay:
		if f.usePrefilter {
			return prefilterRFind(haystack, f.needle, f.rp)
		}
		return f.tw.find(haystack)
	case kindRabinKarp:
		return f.rk.find(haystack)
	case kindShiftOr:
		return f.so.find(haystack)
	default:
		return -1
	}
}

// RFindIter returns a reverse, single-pass iterator over every
// non-overlapping occurrence of the needle, in strictly decreasing order.
func (fr *FinderRev) RFindIter(haystack []byte) *RFindIter {
	return &RFindIter{finder: fr, haystack: haystack, end: len(haystack)}
}

// Find is a one-shot package-level helper equivalent to
// NewBuilder().Build(needle).Find(haystack).
func Find(haystack, needle []byte) int {
	return NewBuilder().Build(needle).Find(haystack)
}

// RFind is a one-shot package-level helper equivalent to
// NewBuilder().BuildRev(needle).RFind(haystack).
func RFind(haystack, needle []byte) int {
	return NewBuilder().BuildRev(needle).RFind(haystack)
}
