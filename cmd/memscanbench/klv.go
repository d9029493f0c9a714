package main

import (
	"bytes"
	"fmt"
	"strconv"
	"time"
)

// benchmark is one run configuration, assembled from a sequence of
// key-length-value items read from stdin — the record shape named in §6's
// "external collaborators" entry (name, model, pattern, haystack,
// max-iters, max-warmup-iters, max-time, max-warmup-time), grounded on
// Benchmark/OneKLV in _examples/original_source/benchmarks/shared/lib.rs.
type benchmark struct {
	name           string
	model          string
	patterns       [][]byte
	haystack       []byte
	maxIters       uint64
	maxWarmupIters uint64
	maxTime        time.Duration
	maxWarmupTime  time.Duration
}

func readBenchmark(raw []byte) (*benchmark, error) {
	b := &benchmark{}
	for len(raw) > 0 {
		item, n, err := readOneKLV(raw)
		if err != nil {
			return nil, err
		}
		raw = raw[n:]
		if err := b.set(item); err != nil {
			return nil, err
		}
	}
	return b, nil
}

type klv struct {
	key   string
	value []byte
}

// readOneKLV parses one "key:length:value\n" item, returning the number of
// bytes consumed so the caller can slice past it.
func readOneKLV(raw []byte) (klv, int, error) {
	nread := 0

	keyEnd := bytes.IndexByte(raw, ':')
	if keyEnd < 0 {
		return klv{}, 0, fmt.Errorf("klv: missing ':' after key near %q", headOf(raw, 80))
	}
	key := string(raw[:keyEnd])
	raw = raw[keyEnd+1:]
	nread += keyEnd + 1

	lenEnd := bytes.IndexByte(raw, ':')
	if lenEnd < 0 {
		return klv{}, 0, fmt.Errorf("klv: missing ':' after length for key %q", key)
	}
	length, err := strconv.Atoi(string(raw[:lenEnd]))
	if err != nil {
		return klv{}, 0, fmt.Errorf("klv: invalid length for key %q: %w", key, err)
	}
	raw = raw[lenEnd+1:]
	nread += lenEnd + 1

	if len(raw) < length {
		return klv{}, 0, fmt.Errorf("klv: value for key %q wants %d bytes, only %d remain", key, length, len(raw))
	}
	value := raw[:length]
	raw = raw[length:]
	nread += length

	if len(raw) < 1 || raw[0] != '\n' {
		return klv{}, 0, fmt.Errorf("klv: expected trailing newline after value for key %q", key)
	}
	nread++

	return klv{key: key, value: value}, nread, nil
}

func (b *benchmark) set(item klv) error {
	switch item.key {
	case "name":
		b.name = string(item.value)
	case "model":
		b.model = string(item.value)
	case "pattern":
		b.patterns = append(b.patterns, append([]byte(nil), item.value...))
	case "haystack":
		b.haystack = append([]byte(nil), item.value...)
	case "max-iters":
		n, err := strconv.ParseUint(string(item.value), 10, 64)
		if err != nil {
			return fmt.Errorf("klv: invalid max-iters: %w", err)
		}
		b.maxIters = n
	case "max-warmup-iters":
		n, err := strconv.ParseUint(string(item.value), 10, 64)
		if err != nil {
			return fmt.Errorf("klv: invalid max-warmup-iters: %w", err)
		}
		b.maxWarmupIters = n
	case "max-time":
		n, err := strconv.ParseUint(string(item.value), 10, 64)
		if err != nil {
			return fmt.Errorf("klv: invalid max-time: %w", err)
		}
		b.maxTime = time.Duration(n)
	case "max-warmup-time":
		n, err := strconv.ParseUint(string(item.value), 10, 64)
		if err != nil {
			return fmt.Errorf("klv: invalid max-warmup-time: %w", err)
		}
		b.maxWarmupTime = time.Duration(n)
	}
	return nil
}

func (b *benchmark) oneNeedleByte() (byte, error) {
	if len(b.patterns) != 1 || len(b.patterns[0]) != 1 {
		return 0, fmt.Errorf("model %q wants exactly one 1-byte pattern, got %d pattern(s)", b.model, len(b.patterns))
	}
	return b.patterns[0][0], nil
}

func (b *benchmark) twoNeedleBytes() (byte, byte, error) {
	if len(b.patterns) != 2 || len(b.patterns[0]) != 1 || len(b.patterns[1]) != 1 {
		return 0, 0, fmt.Errorf("model %q wants exactly two 1-byte patterns", b.model)
	}
	return b.patterns[0][0], b.patterns[1][0], nil
}

func (b *benchmark) threeNeedleBytes() (byte, byte, byte, error) {
	if len(b.patterns) != 3 || len(b.patterns[0]) != 1 || len(b.patterns[1]) != 1 || len(b.patterns[2]) != 1 {
		return 0, 0, 0, fmt.Errorf("model %q wants exactly three 1-byte patterns", b.model)
	}
	return b.patterns[0][0], b.patterns[1][0], b.patterns[2][0], nil
}

func (b *benchmark) oneNeedle() ([]byte, error) {
	if len(b.patterns) != 1 {
		return nil, fmt.Errorf("model %q wants exactly one pattern, got %d", b.model, len(b.patterns))
	}
	return b.patterns[0], nil
}

func headOf(b []byte, n int) []byte {
	if len(b) > n {
		return b[:n]
	}
	return b
}
