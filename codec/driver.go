package codec

import "fmt"

// Encode runs the full pipeline: alphabet mapping, differential
// transform, Method-B RLL coding, the inverse differential (which
// restores bounded homopolymer runs from the RLL stage's bounded
// zero-runs), Method-D GC balancing, and (if p.UseEC) the VT syndrome
// suffix, gluing each metadata suffix on with a Corollary-24 symbol. It
// returns the codeword rendered as DNA.
func Encode(bits string, p Params) (string, error) {
	if err := p.Validate(); err != nil {
		return "", err
	}
	if bits == "" {
		return "", nil
	}

	q0, err := BitsToQuat(bits)
	if err != nil {
		return "", err
	}
	q1 := DifferentialEncode(q0)
	q2 := rllEncode(q1, p.Ell)

	// q2 bounds zero-runs, not homopolymer runs: it is still in
	// differential-domain symbols, and a run of identical nonzero values
	// in q2 (e.g. a constant step in q0) survives untouched. Per spec.md
	// section 4.C, the runlength bound only holds "in composition with
	// the inverse differential": taking the cumulative sum of q2 here
	// turns its bounded zero-runs into bounded constant-value runs, which
	// is what actually gets rendered as nucleotides and GC-balanced.
	q2v := DifferentialDecode(q2)

	if len(q2v) < p.minGCLength() {
		return "", fmt.Errorf("%w: rll output length %d below minimum %d for epsilon %v",
			ErrTooShort, len(q2v), p.minGCLength(), p.Epsilon)
	}

	q3, t, err := gcBalanceEncode(q2v, p.Epsilon)
	if err != nil {
		return "", err
	}
	suf := interleavedSuffix(t, len(q2))

	gamma1, err := selectGlue(lastNeighbor(q3), firstNeighbor(suf), gcDeficitPositive(q3))
	if err != nil {
		return "", err
	}
	body := make([]Symbol, 0, len(q3)+1+len(suf))
	body = append(body, q3...)
	body = append(body, gamma1)
	body = append(body, suf...)

	if p.UseEC {
		syn := vtSyndrome(body)
		chk := vtChecksum(body)
		ec := ecSuffix(syn, chk, len(body))

		gamma2, err := selectGlue(lastNeighbor(body), firstNeighbor(ec), gcDeficitPositive(body))
		if err != nil {
			return "", err
		}
		withEC := make([]Symbol, 0, len(body)+1+len(ec))
		withEC = append(withEC, body...)
		withEC = append(withEC, gamma2)
		withEC = append(withEC, ec...)
		body = withEC
	}

	return QuatToDNA(body), nil
}

// Decode runs the mirror pipeline. If p.UseEC is set and the VT syndrome
// or checksum does not match, it returns the best-effort decoded bits
// alongside ErrDetected (wrapped with the inferred edit class where
// determinable) rather than discarding the decode outright — per
// spec.md, a detected error is a report, not a fatal failure, and the
// caller decides how to react.
func Decode(dna string, p Params) (string, error) {
	if err := p.Validate(); err != nil {
		return "", err
	}
	if dna == "" {
		return "", nil
	}

	all, err := DNAToQuat(dna)
	if err != nil {
		return "", err
	}
	body := all
	var detected error

	if p.UseEC {
		m := len(body)
		n, err := solveBodyLength(m, 1, ecSuffixWidth)
		if err != nil {
			return "", fmt.Errorf("%w: could not resolve ec suffix width", ErrBadSuffix)
		}
		if n < 0 || n+1 > m {
			return "", fmt.Errorf("%w: ec split out of range", ErrBadSuffix)
		}
		bodyPart := body[:n]
		ec := body[n+1 : m]
		syn, chk, err := parseECSuffix(ec, n)
		if err != nil {
			return "", err
		}
		wantSyn, wantChk := vtSyndrome(bodyPart), vtChecksum(bodyPart)
		if syn != wantSyn || chk != wantChk {
			detected = fmt.Errorf("%w: %s", ErrDetected, classifyEdit(m, n, syn, wantSyn, chk, wantChk))
		}
		body = bodyPart
	}

	total := len(body)
	n, err := solveBodyLength(total, 1, suffixWidth)
	if err != nil {
		return "", fmt.Errorf("%w: could not resolve gc-balance suffix width", ErrBadSuffix)
	}
	if n < 0 || n+1 > total {
		return "", fmt.Errorf("%w: gc-balance split out of range", ErrBadSuffix)
	}
	q3 := body[:n]
	suf := body[n+1 : total]

	t, err := parseInterleavedSuffix(suf)
	if err != nil {
		return "", err
	}
	q2v, err := gcBalanceDecode(q3, t)
	if err != nil {
		return "", err
	}

	// Undo the inverse differential applied at encode time (see Encode's
	// comment on q2v) before rllDecode, which expects its bounded
	// zero-runs back in differential-domain form.
	q2 := DifferentialEncode(q2v)

	q1, err := rllDecode(q2, p.Ell)
	if err != nil {
		return "", err
	}

	q0 := DifferentialDecode(q1)
	bits := QuatToBits(q0)
	return bits, detected
}

// solveBodyLength recovers n from the equation
// total == n + overhead + width(n). width is non-decreasing in n (it is
// a ceil-log4 based suffix digit count), so f(n) = n + width(n) is
// strictly increasing and a binary search over n in [0, total] finds
// the unique solution, if one exists.
func solveBodyLength(total, overhead int, width func(int) int) (int, error) {
	target := total - overhead
	if target < 0 {
		return 0, fmt.Errorf("%w: total length %d too small for overhead %d", ErrBadSuffix, total, overhead)
	}
	lo, hi := 0, target
	for lo < hi {
		mid := (lo + hi) / 2
		if mid+width(mid) < target {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo+width(lo) != target {
		return 0, fmt.Errorf("%w: no body length resolves total %d with overhead %d", ErrBadSuffix, total, overhead)
	}
	return lo, nil
}

// classifyEdit offers a best-effort guess at whether a detected mismatch
// looks like a substitution or an insertion/deletion, by comparing the
// checksum and syndrome residues only; the length arguments are not
// consulted. Full correction is out of scope; this is purely diagnostic.
func classifyEdit(totalLen, bodyLen, syn, wantSyn, chk, wantChk int) string {
	switch {
	case chk != wantChk && syn == wantSyn:
		return "substitution (checksum mismatch only)"
	case chk != wantChk:
		return "substitution or insertion/deletion (checksum and syndrome mismatch)"
	default:
		return "syndrome mismatch"
	}
}

func lastNeighbor(s []Symbol) neighbor {
	if len(s) == 0 {
		return noNeighbor()
	}
	return hasNeighbor(s[len(s)-1])
}

func firstNeighbor(s []Symbol) neighbor {
	if len(s) == 0 {
		return noNeighbor()
	}
	return hasNeighbor(s[0])
}
