package memmem

import (
	"strings"
	"testing"
)

func TestNewShiftOrRejectsOversizedNeedle(t *testing.T) {
	if _, ok := newShiftOr([]byte(strings.Repeat("a", 65)), false); ok {
		t.Fatalf("newShiftOr should reject a 65-byte needle")
	}
	if _, ok := newShiftOr(nil, false); ok {
		t.Fatalf("newShiftOr should reject an empty needle")
	}
	if _, ok := newShiftOr([]byte(strings.Repeat("a", 64)), false); !ok {
		t.Fatalf("newShiftOr should accept a 64-byte needle")
	}
}

func TestShiftOrForwardAgainstOracle(t *testing.T) {
	haystacks := []string{
		"", "a", "aaaa", "aaaaaaaaab", "abcabcabcabc", "mississippi",
		strings.Repeat("ab", 40), strings.Repeat("x", 300) + "findtoken" + strings.Repeat("y", 40),
	}
	needles := []string{"a", "aa", "aaaa", "aaaab", "abcabc", "mis", "ippi", "findtoken", "xyz"}
	for _, h := range haystacks {
		for _, n := range needles {
			hb, nb := []byte(h), []byte(n)
			so, ok := newShiftOr(nb, false)
			if !ok {
				t.Fatalf("newShiftOr(%q) unexpectedly failed", n)
			}
			if got, want := so.find(hb), oracleFind(hb, nb); got != want {
				t.Fatalf("shiftOr.find(%q, %q) = %d, want %d", h, n, got, want)
			}
		}
	}
}

func TestShiftOrReverseAgainstOracle(t *testing.T) {
	haystacks := []string{
		"", "a", "aaaa", "abcabcabcabc", "mississippi", strings.Repeat("ab", 40),
	}
	needles := []string{"a", "aa", "aaaa", "abcabc", "mis", "ippi"}
	for _, h := range haystacks {
		for _, n := range needles {
			hb, nb := []byte(h), []byte(n)
			so, ok := newShiftOr(nb, true)
			if !ok {
				t.Fatalf("newShiftOr(%q, reverse) unexpectedly failed", n)
			}
			if got, want := so.find(hb), oracleRFind(hb, nb); got != want {
				t.Fatalf("shiftOr(reverse).find(%q, %q) = %d, want %d", h, n, got, want)
			}
		}
	}
}
