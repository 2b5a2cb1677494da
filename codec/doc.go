// Package codec implements the HELIX constrained-code pipeline: it maps
// arbitrary binary payloads onto quaternary symbol strings — rendered as
// DNA over the alphabet {A,T,C,G} — that simultaneously respect a
// homopolymer runlength bound and a GC-content window while remaining
// fully invertible and carrying a single-edit-detecting syndrome.
//
// # Overview
//
// Encode composes six stages in sequence:
//
//   - alphabet mapping: pairs of bits become quaternary symbols, symbols
//     become nucleotide characters
//   - a differential (first-difference mod 4) transform, which turns
//     homopolymer runs into runs of zeros
//   - a Method-B pointer/guard RLL coder, which eliminates zero-runs at
//     or beyond the forbidden length
//   - the inverse of that same differential transform, applied to the
//     RLL output: this is what actually restores bounded homopolymer
//     runs (the runlength bound only holds in composition with the
//     inverse differential, not on the RLL output taken alone)
//   - a Method-D prefix-flip GC balancer, which nudges the GC fraction
//     into tolerance and records the flip point in a self-balanced suffix
//   - a Varshamov-Tenengolts syndrome and checksum, appended as a final
//     suffix for single-edit detection
//
// Each of the two metadata suffixes is stitched onto the string before it
// with a glue symbol (package codec's Corollary-24 selector) that differs
// from both neighboring symbols and is drawn from the GC class that nudges
// the GC count toward one half. Decode runs the mirror pipeline, verifying
// at each boundary.
//
// # When to use HELIX
//
// HELIX targets storage and transmission channels with biochemical or
// synthesis constraints: DNA data storage, oligo synthesis pipelines, or
// any channel that forbids long homopolymer runs and requires balanced
// GC content. It is not a general compressor — output is one nucleotide
// per two input bits, plus RLL guard symbols, glue symbols and suffixes.
//
// # Basic usage
//
//	p := codec.Params{Ell: 3, Epsilon: 0.05, UseEC: true}
//	dna, err := codec.Encode("11010011", p)
//	bits, err := codec.Decode(dna, p)
//	analysis, err := codec.Analyze(dna, p)
//
// # Performance characteristics
//
// Every stage is a single linear pass: O(n) time, O(n) memory, one
// allocation per stage. The codec holds no mutable state beyond its
// parameters and is safe to share read-only across goroutines.
package codec
