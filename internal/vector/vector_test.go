package vector

import (
	"bytes"
	"testing"
)

var backends = []struct {
	name   string
	engine Engine
}{
	{"word64", newEngine[uint64](Word64Backend{})},
	{"word128", newEngine[[2]uint64](Word128Backend{})},
	{"word256", newEngine[[4]uint64](Word256Backend{})},
}

func oracleFind(haystack []byte, needles ...byte) int {
	for i, b := range haystack {
		for _, n := range needles {
			if b == n {
				return i
			}
		}
	}
	return -1
}

func oracleRFind(haystack []byte, needles ...byte) int {
	for i := len(haystack) - 1; i >= 0; i-- {
		for _, n := range needles {
			if haystack[i] == n {
				return i
			}
		}
	}
	return -1
}

func TestFindOneAgainstOracleAllWidths(t *testing.T) {
	lengths := []int{0, 1, 7, 8, 9, 15, 16, 17, 31, 32, 33, 63, 64, 65, 128, 257}
	for _, be := range backends {
		for _, n := range lengths {
			haystack := bytes.Repeat([]byte{'a'}, n)
			if n > 0 {
				haystack[n/2] = 'z'
			}
			if got, want := be.engine.FindOne(haystack, 'z'), oracleFind(haystack, 'z'); got != want {
				t.Fatalf("%s: FindOne n=%d: got %d, want %d", be.name, n, got, want)
			}
			if got, want := be.engine.RFindOne(haystack, 'z'), oracleRFind(haystack, 'z'); got != want {
				t.Fatalf("%s: RFindOne n=%d: got %d, want %d", be.name, n, got, want)
			}
			if got := be.engine.FindOne(haystack, 'q'); got != -1 {
				t.Fatalf("%s: FindOne no-match n=%d: got %d, want -1", be.name, n, got)
			}
		}
	}
}

func TestFindTwoThreeAgainstOracle(t *testing.T) {
	haystack := []byte("the quick brown fox jumps over the lazy dog")
	for _, be := range backends {
		if got, want := be.engine.FindTwo(haystack, 'z', 'q'), oracleFind(haystack, 'z', 'q'); got != want {
			t.Fatalf("%s: FindTwo got %d, want %d", be.name, got, want)
		}
		if got, want := be.engine.RFindTwo(haystack, 'z', 'q'), oracleRFind(haystack, 'z', 'q'); got != want {
			t.Fatalf("%s: RFindTwo got %d, want %d", be.name, got, want)
		}
		if got, want := be.engine.FindThree(haystack, 'z', 'q', 'x'), oracleFind(haystack, 'z', 'q', 'x'); got != want {
			t.Fatalf("%s: FindThree got %d, want %d", be.name, got, want)
		}
		if got, want := be.engine.RFindThree(haystack, 'z', 'q', 'x'), oracleRFind(haystack, 'z', 'q', 'x'); got != want {
			t.Fatalf("%s: RFindThree got %d, want %d", be.name, got, want)
		}
	}
}

func TestDifferentialAgainstWord64Oracle(t *testing.T) {
	// Property 5: every backend must agree with the SWAR backend.
	oracle := backends[0].engine
	haystacks := [][]byte{
		[]byte(""),
		[]byte("a"),
		bytes.Repeat([]byte("ab"), 50),
		append(bytes.Repeat([]byte{0xFF}, 40), 'k'),
	}
	for _, h := range haystacks {
		for _, be := range backends[1:] {
			if got, want := be.engine.FindOne(h, 'k'), oracle.FindOne(h, 'k'); got != want {
				t.Fatalf("%s vs oracle: FindOne got %d, want %d", be.name, got, want)
			}
		}
	}
}

func TestPairScan(t *testing.T) {
	haystack := []byte("contact@test.com for info")
	for _, be := range backends {
		got := be.engine.PairScan(haystack, '@', 'c', 6)
		if got != 7 {
			t.Fatalf("%s: PairScan got %d, want 7", be.name, got)
		}
		if got := be.engine.PairScan(haystack, 'z', 'y', 3); got != -1 {
			t.Fatalf("%s: PairScan no-match got %d, want -1", be.name, got)
		}
	}
}

func TestCountOne(t *testing.T) {
	haystack := []byte("01234567\x0b\n\x0b\n\x0b\n\x0b\nx")
	if got := CountOne(haystack, '\n'); got != 4 {
		t.Fatalf("CountOne got %d, want 4", got)
	}
}

func TestSelectReturnsSameEngine(t *testing.T) {
	a := Select()
	b := Select()
	if a.Width() != b.Width() {
		t.Fatalf("Select() is not cached: widths %d != %d", a.Width(), b.Width())
	}
}
