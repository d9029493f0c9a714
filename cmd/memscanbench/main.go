// Command memscanbench is the external benchmark collaborator named in
// spec.md §6: it reads one key-length-value encoded benchmark record from
// stdin, runs a named routine against it, and writes one
// "<nanoseconds>,<count>" CSV line per sample to stdout. It is not part of
// the core library — it only exercises the public API the way an external
// caller would, the same relationship rust-memchr/main.rs has to the
// memchr crate in _examples/original_source/benchmarks.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/coregx/memscan"
	"github.com/coregx/memscan/memmem"
)

func main() {
	quiet := flag.BoolP("quiet", "q", false, "suppress sample output; only check the routine runs")
	flag.Parse()

	args := flag.Args()
	if len(args) != 1 {
		log.Fatal("usage: memscanbench [--quiet] <routine>")
	}
	routine := args[0]

	raw, err := io.ReadAll(os.Stdin)
	if err != nil {
		log.Fatalf("memscanbench: reading stdin: %v", err)
	}
	b, err := readBenchmark(raw)
	if err != nil {
		log.Fatalf("memscanbench: %v", err)
	}

	samples, err := dispatch(routine, b)
	if err != nil {
		log.Fatalf("memscanbench: routine %q, model %q: %v", routine, b.model, err)
	}

	if *quiet {
		return
	}
	out := os.Stdout
	for _, s := range samples {
		if _, err := fmt.Fprintf(out, "%d,%d\n", s.duration.Nanoseconds(), s.count); err != nil {
			log.Fatalf("memscanbench: writing output: %v", err)
		}
	}
}

// dispatch maps (routine, model) pairs to a bench closure and runs it,
// mirroring the (engine, model) match in rust-memchr/main.rs.
func dispatch(routine string, b *benchmark) ([]sample, error) {
	switch {
	case routine == "memchr" && b.model == "count-bytes":
		needle, err := b.oneNeedleByte()
		if err != nil {
			return nil, err
		}
		finder := memscan.NewOneByteFinder(needle)
		return runSamples(b, func() (int, error) {
			return finder.Iter(b.haystack).Count(), nil
		})

	case routine == "memchr2" && b.model == "count-bytes":
		n1, n2, err := b.twoNeedleBytes()
		if err != nil {
			return nil, err
		}
		finder := memscan.NewTwoByteFinder(n1, n2)
		return runSamples(b, func() (int, error) {
			return iterCount(finder.Iter(b.haystack)), nil
		})

	case routine == "memchr3" && b.model == "count-bytes":
		n1, n2, n3, err := b.threeNeedleBytes()
		if err != nil {
			return nil, err
		}
		finder := memscan.NewThreeByteFinder(n1, n2, n3)
		return runSamples(b, func() (int, error) {
			return iterCount(finder.Iter(b.haystack)), nil
		})

	case routine == "memrchr" && b.model == "count-bytes":
		needle, err := b.oneNeedleByte()
		if err != nil {
			return nil, err
		}
		finder := memscan.NewOneByteFinder(needle)
		return runSamples(b, func() (int, error) {
			return riterCount(finder.RIter(b.haystack)), nil
		})

	case routine == "memrchr2" && b.model == "count-bytes":
		n1, n2, err := b.twoNeedleBytes()
		if err != nil {
			return nil, err
		}
		finder := memscan.NewTwoByteFinder(n1, n2)
		return runSamples(b, func() (int, error) {
			return riterCount(finder.RIter(b.haystack)), nil
		})

	case routine == "memrchr3" && b.model == "count-bytes":
		n1, n2, n3, err := b.threeNeedleBytes()
		if err != nil {
			return nil, err
		}
		finder := memscan.NewThreeByteFinder(n1, n2, n3)
		return runSamples(b, func() (int, error) {
			return riterCount(finder.RIter(b.haystack)), nil
		})

	case routine == "memmem" && b.model == "count":
		needle, err := b.oneNeedle()
		if err != nil {
			return nil, err
		}
		finder := memmem.NewBuilder().Build(needle)
		return runSamples(b, func() (int, error) {
			return memmemIterCount(finder.FindIter(b.haystack)), nil
		})

	case routine == "memmem-binary" && b.model == "count":
		needle, err := b.oneNeedle()
		if err != nil {
			return nil, err
		}
		finder := memmem.NewBuilder().Ranker(memmem.BinaryRanker).Build(needle)
		return runSamples(b, func() (int, error) {
			return memmemIterCount(finder.FindIter(b.haystack)), nil
		})

	case routine == "memmem-noprefilter" && b.model == "count":
		needle, err := b.oneNeedle()
		if err != nil {
			return nil, err
		}
		finder := memmem.NewBuilder().Prefilter(memmem.PrefilterNever).Build(needle)
		return runSamples(b, func() (int, error) {
			return memmemIterCount(finder.FindIter(b.haystack)), nil
		})

	case routine == "memrmem" && b.model == "count":
		needle, err := b.oneNeedle()
		if err != nil {
			return nil, err
		}
		finder := memmem.NewBuilder().BuildRev(needle)
		return runSamples(b, func() (int, error) {
			return memmemRIterCount(finder.RFindIter(b.haystack)), nil
		})

	default:
		return nil, fmt.Errorf("unrecognized routine %q for model %q", routine, b.model)
	}
}

type byteIter interface{ Next() (int, bool) }

func iterCount(it byteIter) int {
	n := 0
	for {
		if _, ok := it.Next(); !ok {
			return n
		}
		n++
	}
}

func riterCount(it byteIter) int { return iterCount(it) }

func memmemIterCount(it *memmem.FindIter) int {
	n := 0
	for {
		if _, ok := it.Next(); !ok {
			return n
		}
		n++
	}
}

func memmemRIterCount(it *memmem.RFindIter) int {
	n := 0
	for {
		if _, ok := it.Next(); !ok {
			return n
		}
		n++
	}
}
