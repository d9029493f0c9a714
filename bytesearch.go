package memscan

import "github.com/coregx/memscan/internal/vector"

// FindByte returns the index of the first occurrence of b in haystack, or -1
// if b does not occur.
//
// Example:
//
//	memscan.FindByte([]byte("the quick brown fox"), 'k') // 8
func FindByte(haystack []byte, b byte) int {
	if len(haystack) == 0 {
		return -1
	}
	return vector.Select().FindOne(haystack, b)
}

// RFindByte returns the index of the last occurrence of b in haystack, or -1
// if b does not occur.
//
// Example:
//
//	memscan.RFindByte([]byte("the quick brown fox"), 'o') // 17
func RFindByte(haystack []byte, b byte) int {
	if len(haystack) == 0 {
		return -1
	}
	return vector.Select().RFindOne(haystack, b)
}

// CountByte returns the number of times b occurs in haystack.
//
// Example:
//
//	memscan.CountByte([]byte("01234567\x0b\n\x0b\n\x0b\n\x0b\nx"), '\n') // 4
func CountByte(haystack []byte, b byte) int {
	return vector.CountOne(haystack, b)
}

// FindByte2 returns the index of the first occurrence of either b1 or b2 in
// haystack, or -1 if neither occurs.
func FindByte2(haystack []byte, b1, b2 byte) int {
	if len(haystack) == 0 {
		return -1
	}
	return vector.Select().FindTwo(haystack, b1, b2)
}

// RFindByte2 returns the index of the last occurrence of either b1 or b2 in
// haystack, or -1 if neither occurs.
func RFindByte2(haystack []byte, b1, b2 byte) int {
	if len(haystack) == 0 {
		return -1
	}
	return vector.Select().RFindTwo(haystack, b1, b2)
}

// FindByte3 returns the index of the first occurrence of b1, b2, or b3 in
// haystack, or -1 if none occur.
//
// Example:
//
//	memscan.FindByte3([]byte("the quick brown fox"), 'k', 'q', 'e') // 2
func FindByte3(haystack []byte, b1, b2, b3 byte) int {
	if len(haystack) == 0 {
		return -1
	}
	return vector.Select().FindThree(haystack, b1, b2, b3)
}

// RFindByte3 returns the index of the last occurrence of b1, b2, or b3 in
// haystack, or -1 if none occur.
func RFindByte3(haystack []byte, b1, b2, b3 byte) int {
	if len(haystack) == 0 {
		return -1
	}
	return vector.Select().RFindThree(haystack, b1, b2, b3)
}
