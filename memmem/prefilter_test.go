package memmem

import "testing"

func TestPrefilterFindSkipsFalsePositives(t *testing.T) {
	// "ab" appears three times but only the last is followed by "cdef".
	// The rare pair ('b' at offset 1, 'f' at offset 5) lines up only at the
	// last "ab", so the pair scan skips the first two and the match is
	// confirmed at 8.
	haystack := []byte("ab00ab11abcdef")
	needle := []byte("abcdef")
	rp := selectRarePair(needle, DefaultRanker)
	if !rp.exists {
		t.Fatalf("expected selectRarePair to find a pair for %q", needle)
	}
	if got, want := prefilterFind(haystack, needle, rp), 8; got != want {
		t.Fatalf("prefilterFind = %d, want %d", got, want)
	}
}

func TestPrefilterRFindSkipsFalsePositives(t *testing.T) {
	haystack := []byte("abcdef00abcdxxabcdef")
	needle := []byte("abcdef")
	rp := selectRarePair(needle, DefaultRanker)
	if !rp.exists {
		t.Fatalf("expected selectRarePair to find a pair for %q", needle)
	}
	if got, want := prefilterRFind(haystack, needle, rp), 14; got != want {
		t.Fatalf("prefilterRFind = %d, want %d", got, want)
	}
}

func TestPrefilterFindNoMatch(t *testing.T) {
	needle := []byte("zzqqxx")
	rp := selectRarePair(needle, DefaultRanker)
	if got := prefilterFind([]byte("this haystack has nothing relevant in it at all"), needle, rp); got != -1 {
		t.Fatalf("prefilterFind = %d, want -1", got)
	}
	if got := prefilterRFind([]byte("this haystack has nothing relevant in it at all"), needle, rp); got != -1 {
		t.Fatalf("prefilterRFind = %d, want -1", got)
	}
}
