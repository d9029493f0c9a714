package memscan

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFindByteBasic(t *testing.T) {
	tests := []struct {
		name     string
		haystack []byte
		needle   byte
		want     int
	}{
		{"empty_haystack", []byte{}, 'a', -1},
		{"single_match", []byte{'a'}, 'a', 0},
		{"single_no_match", []byte{'a'}, 'b', -1},
		{"first_position", []byte("hello"), 'h', 0},
		{"middle_position", []byte("hello"), 'l', 2},
		{"last_position", []byte("hello"), 'o', 4},
		{"not_found", []byte("hello"), 'x', -1},
		{"scenario_1", []byte("the quick brown fox"), 'k', 8},
		{"big_endian_regression", []byte("1:23"), ':', 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FindByte(tt.haystack, tt.needle); got != tt.want {
				t.Errorf("FindByte(%q, %q) = %d, want %d", tt.haystack, tt.needle, got, tt.want)
			}
		})
	}
}

func TestRFindByteBasic(t *testing.T) {
	if got := RFindByte([]byte("the quick brown fox"), 'o'); got != 17 {
		t.Errorf("RFindByte = %d, want 17", got)
	}
	if got := RFindByte([]byte{}, 'a'); got != -1 {
		t.Errorf("RFindByte(empty) = %d, want -1", got)
	}
}

func TestCountByte(t *testing.T) {
	haystack := []byte("01234567\x0b\n\x0b\n\x0b\n\x0b\nx")
	if got := CountByte(haystack, '\n'); got != 4 {
		t.Errorf("CountByte = %d, want 4", got)
	}
	if got := CountByte(nil, 'a'); got != 0 {
		t.Errorf("CountByte(nil) = %d, want 0", got)
	}
}

func TestFindByte3Scenario(t *testing.T) {
	if got := FindByte3([]byte("the quick brown fox"), 'k', 'q', 'e'); got != 2 {
		t.Errorf("FindByte3 = %d, want 2", got)
	}
}

func TestByteSearchAcrossAlignments(t *testing.T) {
	base := []byte("the quick brown fox jumps over the lazy dog, a classic pangram used everywhere")
	for k := 0; k <= 64; k++ {
		padded := append(make([]byte, k), base...)
		shifted := padded[k:]
		if got, want := FindByte(shifted, 'z'), FindByte(base, 'z'); got != want {
			t.Fatalf("offset %d: FindByte = %d, want %d", k, got, want)
		}
		if got, want := RFindByte(shifted, 'o'), RFindByte(base, 'o'); got != want {
			t.Fatalf("offset %d: RFindByte = %d, want %d", k, got, want)
		}
	}
}

func oracleFindByte(haystack []byte, b byte) int {
	for i, c := range haystack {
		if c == b {
			return i
		}
	}
	return -1
}

func TestFindByteAgainstOracle(t *testing.T) {
	for n := 0; n < 300; n++ {
		haystack := bytes.Repeat([]byte{'a'}, n)
		if n > 0 {
			haystack[n/2] = 'z'
		}
		if got, want := FindByte(haystack, 'z'), oracleFindByte(haystack, 'z'); got != want {
			t.Fatalf("n=%d: got %d, want %d", n, got, want)
		}
	}
}

func TestOneByteIterMatchesOracle(t *testing.T) {
	haystack := []byte("mississippi")
	finder := NewOneByteFinder('i')
	it := finder.Iter(haystack)

	var got []int
	for {
		pos, ok := it.Next()
		if !ok {
			break
		}
		got = append(got, pos)
	}
	want := []int{1, 4, 7, 10}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("OneByteIter mismatch (-want +got):\n%s", diff)
	}
}

func TestOneByteIterCountMatchesCount(t *testing.T) {
	haystack := []byte("mississippi")
	finder := NewOneByteFinder('s')
	if got, want := finder.Iter(haystack).Count(), finder.Count(haystack); got != want {
		t.Errorf("Iter().Count() = %d, want %d", got, want)
	}
}

func TestOneByteRIterIsReverseOfIter(t *testing.T) {
	haystack := []byte("mississippi")
	finder := NewOneByteFinder('i')

	var fwd []int
	it := finder.Iter(haystack)
	for {
		pos, ok := it.Next()
		if !ok {
			break
		}
		fwd = append(fwd, pos)
	}

	var rev []int
	rit := finder.RIter(haystack)
	for {
		pos, ok := rit.Next()
		if !ok {
			break
		}
		rev = append(rev, pos)
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	if diff := cmp.Diff(fwd, rev); diff != "" {
		t.Errorf("reverse(RIter) != Iter (-fwd +rev):\n%s", diff)
	}
}

func TestTwoAndThreeByteFinders(t *testing.T) {
	haystack := []byte("hello world, this is a test")
	two := NewTwoByteFinder(',', '.')
	if got := two.Find(haystack); got != 11 {
		t.Errorf("TwoByteFinder.Find = %d, want 11", got)
	}
	three := NewThreeByteFinder('x', 'y', 'z')
	if got := three.Find(haystack); got != -1 {
		t.Errorf("ThreeByteFinder.Find = %d, want -1", got)
	}
}

func TestEmptyHaystackEdgeCases(t *testing.T) {
	if FindByte2(nil, 'a', 'b') != -1 {
		t.Error("FindByte2(nil) should be -1")
	}
	if FindByte3(nil, 'a', 'b', 'c') != -1 {
		t.Error("FindByte3(nil) should be -1")
	}
	if RFindByte2(nil, 'a', 'b') != -1 {
		t.Error("RFindByte2(nil) should be -1")
	}
	finder := NewOneByteFinder('a')
	if _, ok := finder.Iter(nil).Next(); ok {
		t.Error("Iter(nil) should yield nothing")
	}
}

func FuzzFindByte(f *testing.F) {
	f.Add([]byte("the quick brown fox"), byte('k'))
	f.Add([]byte{}, byte(0))
	f.Fuzz(func(t *testing.T, haystack []byte, needle byte) {
		got := FindByte(haystack, needle)
		want := oracleFindByte(haystack, needle)
		if got != want {
			t.Fatalf("FindByte(%q, %d) = %d, want %d", haystack, needle, got, want)
		}
	})
}

func FuzzFindByte3(f *testing.F) {
	f.Add([]byte("the quick brown fox"), byte('k'), byte('q'), byte('e'))
	f.Fuzz(func(t *testing.T, haystack []byte, n1, n2, n3 byte) {
		got := FindByte3(haystack, n1, n2, n3)
		want := -1
		for i, b := range haystack {
			if b == n1 || b == n2 || b == n3 {
				want = i
				break
			}
		}
		if got != want {
			t.Fatalf("FindByte3(%q) = %d, want %d", haystack, got, want)
		}
	})
}
