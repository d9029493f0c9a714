// Package memmem implements substring search: a rare-pair vectorized
// prefilter whose candidates are confirmed by direct comparison, and, for
// needles where the prefilter has nothing useful to work with, a
// Rabin-Karp fallback, a bit-parallel Shift-Or matcher, or a Two-Way
// verifier (§4.3 of the scanning engine this package belongs to).
//
// Forward and reverse searchers are distinct types (Finder, FinderRev) so a
// reverse call cannot be made on a forward searcher — the same contract
// memscan.OneByteFinder enforces for Count.
package memmem
