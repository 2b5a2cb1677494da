package codec

// Component H — constraint analyzer.
//
// Analyze inspects an already-encoded DNA string (or any quaternary
// string) and reports the statistics spec.md's invariants are phrased
// over, without attempting to decode it: GC ratio, the longest
// homopolymer run, and a histogram of run lengths. It is adapted from
// the symbol-frequency counting idiom used elsewhere in this codebase's
// lineage for summarizing a sequence in a single pass, simplified here
// from a 512-entry alphabet down to the 4-symbol nucleotide alphabet.
type Analysis struct {
	Length       int
	GCCount      int
	GCRatio      float64
	MaxRun       int
	RunHistogram map[int]int
	Valid        bool
}

// Analyze computes run and GC statistics for dna under the constraint
// parameters p. Valid reports whether the sequence currently satisfies
// both the run-length bound (p.Ell) and the GC tolerance (p.Epsilon) —
// it does not imply dna was produced by this package's Encode, only
// that it could pass the same constraints.
func Analyze(dna string, p Params) (Analysis, error) {
	q, err := DNAToQuat(dna)
	if err != nil {
		return Analysis{}, err
	}
	return analyzeQuat(q, p), nil
}

func analyzeQuat(q []Symbol, p Params) Analysis {
	n := len(q)
	maxRun, hist := runStats(q)
	gc := 0
	for _, s := range q {
		if s.isGC() {
			gc++
		}
	}
	ratio := 0.5
	if n > 0 {
		ratio = float64(gc) / float64(n)
	}
	valid := maxRun <= p.Ell && withinTolerance(gc, n, p.Epsilon)
	return Analysis{
		Length:       n,
		GCCount:      gc,
		GCRatio:      ratio,
		MaxRun:       maxRun,
		RunHistogram: hist,
		Valid:        valid,
	}
}

// runStats scans q once, tracking homopolymer run lengths and recording
// how many runs of each length occurred.
func runStats(q []Symbol) (maxRun int, histogram map[int]int) {
	histogram = map[int]int{}
	if len(q) == 0 {
		return 0, histogram
	}
	run := 1
	for i := 1; i < len(q); i++ {
		if q[i] == q[i-1] {
			run++
			continue
		}
		histogram[run]++
		if run > maxRun {
			maxRun = run
		}
		run = 1
	}
	histogram[run]++
	if run > maxRun {
		maxRun = run
	}
	return maxRun, histogram
}
