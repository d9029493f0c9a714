// Package memscan implements byte-level scanning primitives: finding the
// first or last occurrence of one, two, or three candidate bytes in a byte
// sequence, counting occurrences of a byte, and (in the memmem subpackage)
// finding the first or last occurrence of a multi-byte substring.
//
// These are the primitives tokenizers, line splitters, grep-like tools, and
// parsers build their hot paths on. The package is a library, not a
// service: every search is synchronous, allocation-free, and runs to
// completion on the calling goroutine — see DESIGN.md for the full
// rationale and grounding.
//
// Searches never fail; a byte-level search returns an offset or -1 (the
// stdlib bytes.IndexByte convention), never an error.
package memscan
