package codec

import "fmt"

// Method B — pointer/guard run-length-limited coder.
//
// The paper's Method B describes a 2-symbol pointer [p, e] that replaces
// a forbidden run of ell+1 zeros, with p an offset back to the excised
// location and e the "symbol to protect" following the run. The exact
// layout of p and e is left to the implementer (spec's Method B is
// explicitly under-specified on this point); this package chooses a
// scheme that is provably unique to decode and documented here:
//
// Unconditional guard stuffing. While scanning y left to right, every
// time a run of exactly ell consecutive zeros has just been written and
// more input remains, a 2-symbol guard pair [p, e] is inserted
// immediately, regardless of what the next input symbol actually is:
//
//   - p is a rotating offset in {1,2,3}, computed as
//     1 + (number of guards emitted so far mod 3) — this is the "offset
//     modulo a known radix" the spec names; it lets the decoder
//     cross-check it is reading guards in the sequence the encoder
//     produced them, catching corruption that flips p without touching
//     run positions.
//   - e is the fixed structural marker 1 (nonzero, as the spec requires).
//     Its value carries no positional information: guard recognition is
//     purely positional (a decoder's own running zero-count reaching
//     ell), never content-based, so e's specific value doesn't need to
//     encode anything dynamic.
//
// Because the decoder maintains the identical zero-run counter as the
// encoder, it always knows — independent of symbol values — whether the
// two symbols immediately following a run of ell zeros are a guard pair
// or genuine data: a guard is inserted if and only if more input symbols
// remained at that point in the original scan, and the decoder can check
// the same condition (more symbols remaining in z) against its own
// position. No symbol value ever needs to be pattern-matched against a
// reserved constant, so a guard can never be confused with coincidental
// data — unlike a fixed-flag scheme, which would require escaping every
// occurrence of the flag value in genuine data.
//
// A run of ell consecutive zeros is never exceeded: the counter is
// checked immediately after every zero is appended, so it can only ever
// reach ell, never ell+1.
const rllGuardMarker Symbol = 1

// rllEncode applies Method B to y. It returns the RLL-coded string; the
// terminator bit described in spec.md section 4.C ("encoder must record
// whether a terminator was added") is not carried as a side channel here:
// rllDecode recovers it unambiguously from the decoded length relative to
// ell, so no extra framing bit is needed (consistent with this package's
// general policy of deriving widths from n and the parameters alone).
func rllEncode(y []Symbol, ell int) []Symbol {
	if len(y) == 0 {
		return []Symbol{}
	}
	var yPrime []Symbol
	if len(y) >= ell+1 {
		yPrime = append(append([]Symbol{}, y...), 0)
	} else {
		// Too short to ever contain a forbidden run; pass through
		// unchanged, no terminator appended.
		return append([]Symbol{}, y...)
	}

	z := make([]Symbol, 0, len(yPrime)+2)
	run := 0
	pointerCount := 0
	for i, s := range yPrime {
		z = append(z, s)
		if s == 0 {
			run++
			if run == ell && i+1 < len(yPrime) {
				p := Symbol(1 + pointerCount%3)
				z = append(z, p, rllGuardMarker)
				pointerCount++
				run = 0
			}
		} else {
			run = 0
		}
	}
	return z
}

// rllDecode inverts rllEncode, recovering y (without its terminator, if
// one was used) from z.
func rllDecode(z []Symbol, ell int) ([]Symbol, error) {
	if len(z) == 0 {
		return []Symbol{}, nil
	}

	out := make([]Symbol, 0, len(z))
	run := 0
	pointerCount := 0
	i := 0
	n := len(z)
	for i < n {
		c := z[i]
		out = append(out, c)
		i++
		if c == 0 {
			run++
			if run == ell {
				if i < n {
					if i+1 >= n {
						return nil, fmt.Errorf("%w: truncated guard pair at position %d", ErrBadRLL, i)
					}
					p, e := z[i], z[i+1]
					wantP := Symbol(1 + pointerCount%3)
					if p == 0 || e == 0 {
						return nil, fmt.Errorf("%w: guard pair contains zero at position %d", ErrBadRLL, i)
					}
					if p != wantP || e != rllGuardMarker {
						return nil, fmt.Errorf("%w: guard pair mismatch at position %d", ErrBadRLL, i)
					}
					i += 2
					pointerCount++
					run = 0
				}
				// else: run of ell zeros reached the true end of z; a
				// legal trailing run, nothing more to consume.
			}
		} else {
			run = 0
		}
	}

	switch {
	case len(out) <= ell:
		// No terminator was appended at encode time.
		return out, nil
	case len(out) >= ell+2:
		if out[len(out)-1] != 0 {
			return nil, fmt.Errorf("%w: missing terminator", ErrBadRLL)
		}
		return out[:len(out)-1], nil
	default:
		// len(out) == ell+1 is unreachable from a well-formed encode.
		return nil, fmt.Errorf("%w: ambiguous terminator state (length %d)", ErrBadRLL, len(out))
	}
}
