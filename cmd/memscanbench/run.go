package main

import "time"

// sample is a single timed iteration's result: how long it took and the
// match count it produced, so the caller can sanity-check the routine
// against the other engines in the run. Grounded on Sample/run/run_and_count
// in _examples/original_source/benchmarks/shared/lib.rs.
type sample struct {
	duration time.Duration
	count    uint64
}

// runSamples runs bench repeatedly, first for up to b.maxWarmupIters (or
// until b.maxWarmupTime elapses, whichever comes first) without recording
// anything, then for up to b.maxIters (or until b.maxTime elapses),
// recording one sample per iteration.
func runSamples(b *benchmark, bench func() (int, error)) ([]sample, error) {
	warmupStart := time.Now()
	for i := uint64(0); i < b.maxWarmupIters; i++ {
		if _, err := bench(); err != nil {
			return nil, err
		}
		if time.Since(warmupStart) >= b.maxWarmupTime {
			break
		}
	}

	var samples []sample
	runStart := time.Now()
	for i := uint64(0); i < b.maxIters; i++ {
		start := time.Now()
		count, err := bench()
		elapsed := time.Since(start)
		if err != nil {
			return nil, err
		}
		samples = append(samples, sample{duration: elapsed, count: uint64(count)})
		if time.Since(runStart) >= b.maxTime {
			break
		}
	}
	return samples, nil
}
