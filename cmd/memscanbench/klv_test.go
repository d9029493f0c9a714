package main

import (
	"bytes"
	"testing"
	"time"
)

func encodeKLV(key string, value []byte) []byte {
	var buf bytes.Buffer
	buf.WriteString(key)
	buf.WriteByte(':')
	buf.WriteString(itoa(len(value)))
	buf.WriteByte(':')
	buf.Write(value)
	buf.WriteByte('\n')
	return buf.Bytes()
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var digits []byte
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	return string(digits)
}

func TestReadBenchmarkFull(t *testing.T) {
	var raw []byte
	raw = append(raw, encodeKLV("name", []byte("find-needle"))...)
	raw = append(raw, encodeKLV("model", []byte("count"))...)
	raw = append(raw, encodeKLV("pattern", []byte("needle"))...)
	raw = append(raw, encodeKLV("haystack", []byte("a haystack with needle inside"))...)
	raw = append(raw, encodeKLV("max-iters", []byte("100"))...)
	raw = append(raw, encodeKLV("max-warmup-iters", []byte("10"))...)
	raw = append(raw, encodeKLV("max-time", []byte("1000000000"))...)
	raw = append(raw, encodeKLV("max-warmup-time", []byte("500000000"))...)

	b, err := readBenchmark(raw)
	if err != nil {
		t.Fatalf("readBenchmark: %v", err)
	}
	if b.name != "find-needle" {
		t.Errorf("name = %q, want %q", b.name, "find-needle")
	}
	if b.model != "count" {
		t.Errorf("model = %q, want %q", b.model, "count")
	}
	if len(b.patterns) != 1 || string(b.patterns[0]) != "needle" {
		t.Errorf("patterns = %v, want [needle]", b.patterns)
	}
	if string(b.haystack) != "a haystack with needle inside" {
		t.Errorf("haystack = %q", b.haystack)
	}
	if b.maxIters != 100 || b.maxWarmupIters != 10 {
		t.Errorf("maxIters=%d maxWarmupIters=%d, want 100, 10", b.maxIters, b.maxWarmupIters)
	}
	if b.maxTime != time.Second || b.maxWarmupTime != 500*time.Millisecond {
		t.Errorf("maxTime=%v maxWarmupTime=%v, want 1s, 500ms", b.maxTime, b.maxWarmupTime)
	}
}

func TestReadBenchmarkMultiplePatterns(t *testing.T) {
	var raw []byte
	raw = append(raw, encodeKLV("pattern", []byte("a"))...)
	raw = append(raw, encodeKLV("pattern", []byte("b"))...)
	raw = append(raw, encodeKLV("pattern", []byte("c"))...)

	b, err := readBenchmark(raw)
	if err != nil {
		t.Fatalf("readBenchmark: %v", err)
	}
	if len(b.patterns) != 3 {
		t.Fatalf("patterns = %v, want 3 entries", b.patterns)
	}
	if _, _, _, err := b.threeNeedleBytes(); err != nil {
		t.Errorf("threeNeedleBytes: %v", err)
	}
}

func TestReadOneKLVMissingColon(t *testing.T) {
	if _, _, err := readOneKLV([]byte("name4:oops\n")); err == nil {
		t.Fatal("expected an error for a missing second ':'")
	}
	if _, _, err := readOneKLV([]byte("noColonAtAll")); err == nil {
		t.Fatal("expected an error for a missing first ':'")
	}
}

func TestReadOneKLVShortValue(t *testing.T) {
	if _, _, err := readOneKLV([]byte("name:10:short\n")); err == nil {
		t.Fatal("expected an error when fewer bytes remain than the declared length")
	}
}

func TestReadOneKLVMissingTrailingNewline(t *testing.T) {
	if _, _, err := readOneKLV([]byte("name:2:ab")); err == nil {
		t.Fatal("expected an error for a missing trailing newline")
	}
}

func TestOneNeedleByteValidation(t *testing.T) {
	b := &benchmark{model: "count-bytes", patterns: [][]byte{[]byte("ab")}}
	if _, err := b.oneNeedleByte(); err == nil {
		t.Fatal("expected an error for a multi-byte pattern")
	}
	b.patterns = [][]byte{[]byte("a"), []byte("b")}
	if _, err := b.oneNeedleByte(); err == nil {
		t.Fatal("expected an error for more than one pattern")
	}
}
