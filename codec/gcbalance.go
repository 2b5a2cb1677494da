package codec

import "fmt"

// Method D — prefix-flip GC balancer.
//
// gcBalanceEncode finds the smallest prefix length t such that flipping
// w[0:t] (applying the involution flip to each symbol) brings the GC
// fraction of the result within epsilon of one half. It returns the
// balanced string and t; the caller is responsible for appending the
// interleaved index suffix produced by interleavedSuffix.
func gcBalanceEncode(w []Symbol, eps float64) ([]Symbol, int, error) {
	n := len(w)
	g := 0
	for _, s := range w {
		if s.isGC() {
			g++
		}
	}
	best := -1
	checkG := g
	if withinTolerance(checkG, n, eps) {
		best = 0
	}
	if best < 0 {
		gt := g
		for t := 1; t <= n; t++ {
			if w[t-1].isGC() {
				gt--
			} else {
				gt++
			}
			if withinTolerance(gt, n, eps) {
				best = t
				break
			}
		}
	}
	if best < 0 {
		return nil, 0, fmt.Errorf("%w: no flip index balances GC within tolerance for length %d", ErrTooShort, n)
	}

	out := make([]Symbol, n)
	for i, s := range w {
		if i < best {
			out[i] = flip(s)
		} else {
			out[i] = s
		}
	}
	return out, best, nil
}

func withinTolerance(gcCount, n int, eps float64) bool {
	if n == 0 {
		return true
	}
	ratio := float64(gcCount) / float64(n)
	diff := ratio - 0.5
	if diff < 0 {
		diff = -diff
	}
	return diff <= eps
}

// gcBalanceDecode inverts gcBalanceEncode given the recovered flip index
// t: re-flipping w'[0:t] (flip is an involution) recovers w.
func gcBalanceDecode(wPrime []Symbol, t int) ([]Symbol, error) {
	if t < 0 || t > len(wPrime) {
		return nil, fmt.Errorf("%w: flip index %d out of range for length %d", ErrBadSuffix, t, len(wPrime))
	}
	out := make([]Symbol, len(wPrime))
	for i, s := range wPrime {
		if i < t {
			out[i] = flip(s)
		} else {
			out[i] = s
		}
	}
	return out, nil
}

// ceilLog4 returns the smallest k such that 4^k >= x, for x >= 1. It
// returns 0 for x <= 1.
func ceilLog4(x int) int {
	if x <= 1 {
		return 0
	}
	k := 0
	pow := 1
	for pow < x {
		pow *= 4
		k++
	}
	return k
}

// suffixDigitWidth returns k, the number of base-4 digits needed to
// represent any t in [0, n].
func suffixDigitWidth(n int) int { return ceilLog4(n + 1) }

// suffixWidth returns the total symbol count of the interleaved suffix
// s(t), 2*k.
func suffixWidth(n int) int { return 2 * suffixDigitWidth(n) }

// interleavedSuffix writes t in base 4 as k digits (t0 least significant)
// and interleaves each digit with its flip: (t0, f(t0), t1, f(t1), ...).
// Because t_i and f(t_i) always straddle the {0,1}/{2,3} GC boundary, the
// suffix is self-balanced regardless of t's value.
func interleavedSuffix(t, n int) []Symbol {
	k := suffixDigitWidth(n)
	out := make([]Symbol, 0, 2*k)
	rem := t
	for i := 0; i < k; i++ {
		d := Symbol(rem & 3)
		rem >>= 2
		out = append(out, d, flip(d))
	}
	return out
}

// parseInterleavedSuffix inverts interleavedSuffix: it validates that
// every odd-indexed symbol is the flip of its preceding even-indexed
// symbol, then reconstructs t from the even-indexed digits.
func parseInterleavedSuffix(suf []Symbol) (int, error) {
	if len(suf)%2 != 0 {
		return 0, fmt.Errorf("%w: interleaved suffix has odd length %d", ErrBadSuffix, len(suf))
	}
	k := len(suf) / 2
	t := 0
	for i := 0; i < k; i++ {
		d := suf[2*i]
		fd := suf[2*i+1]
		if flip(d) != fd {
			return 0, fmt.Errorf("%w: digit/flip pairing mismatch at digit %d", ErrBadSuffix, i)
		}
		t |= int(d) << uint(2*i)
	}
	return t, nil
}
