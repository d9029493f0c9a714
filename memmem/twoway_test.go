package memmem

import (
	"bytes"
	"strings"
	"testing"
)

func TestTwoWayForwardAgainstOracle(t *testing.T) {
	haystacks := []string{
		"", "a", "aaaa", "aaaaaaaaab", "abcabcabcabc", "mississippi",
		strings.Repeat("ab", 64), strings.Repeat("x", 300) + "needlefindme" + strings.Repeat("y", 40),
	}
	needles := []string{"a", "aa", "aaaa", "aaaab", "abcabc", "mis", "ippi", "needlefindme", "xyz"}
	for _, h := range haystacks {
		for _, n := range needles {
			hb, nb := []byte(h), []byte(n)
			tw := newTwoWay(nb, false)
			if got, want := tw.find(hb), oracleFind(hb, nb); got != want {
				t.Fatalf("twoWay.find(%q, %q) = %d, want %d", h, n, got, want)
			}
		}
	}
}

func TestTwoWayReverseAgainstOracle(t *testing.T) {
	haystacks := []string{
		"", "a", "aaaa", "aaaaaaaaab", "abcabcabcabc", "mississippi",
		strings.Repeat("ab", 64),
	}
	needles := []string{"a", "aa", "aaaa", "aaaab", "abcabc", "mis", "ippi"}
	for _, h := range haystacks {
		for _, n := range needles {
			hb, nb := []byte(h), []byte(n)
			tw := newTwoWay(nb, true)
			if got, want := tw.find(hb), oracleRFind(hb, nb); got != want {
				t.Fatalf("twoWay(reverse).find(%q, %q) = %d, want %d", h, n, got, want)
			}
		}
	}
}

func TestCriticalFactorizationPeriodicNeedle(t *testing.T) {
	critPos, period := criticalFactorization([]byte("aaaa"), false)
	if period != 1 {
		t.Errorf("criticalFactorization(%q) period = %d, want 1", "aaaa", period)
	}
	if critPos < 0 || critPos > len("aaaa") {
		t.Errorf("criticalFactorization(%q) critPos = %d out of range", "aaaa", critPos)
	}
}

func TestTwoWayMatchesBytesIndex(t *testing.T) {
	haystack := []byte("the quick brown fox jumps over the lazy dog")
	needle := []byte("brown fox")
	tw := newTwoWay(needle, false)
	want := bytes.Index(haystack, needle)
	if got := tw.find(haystack); got != want {
		t.Errorf("twoWay.find = %d, want %d (bytes.Index)", got, want)
	}
}
