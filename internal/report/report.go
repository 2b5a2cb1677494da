// Package report renders codec.Analysis results as colorized terminal
// output for cmd/helix's --analyze flag, following the palette
// conventions (green for pass, red for fail) the reference pack's
// eutils COLOR directive uses for its own report formatting.
package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/fatih/color"

	"github.com/minminlittleshrimp/helix/codec"
)

var (
	good = color.New(color.FgGreen, color.Bold)
	bad  = color.New(color.FgRed, color.Bold)
	dim  = color.New(color.FgBlue)
)

// Render writes a human-readable summary of a to w: length, GC ratio,
// longest run, a compact run-length histogram, and a pass/fail verdict
// against the constraint parameters used to produce it.
func Render(w io.Writer, a codec.Analysis, p codec.Params) {
	dim.Fprintf(w, "length:       ")
	fmt.Fprintf(w, "%d symbols\n", a.Length)

	dim.Fprintf(w, "gc ratio:     ")
	fmt.Fprintf(w, "%.4f (target 0.5 +/- %.4f)\n", a.GCRatio, p.Epsilon)

	dim.Fprintf(w, "max run:      ")
	fmt.Fprintf(w, "%d (limit %d)\n", a.MaxRun, p.Ell)

	dim.Fprintf(w, "run lengths:  ")
	fmt.Fprintln(w, histogramLine(a.RunHistogram))

	dim.Fprintf(w, "constraints:  ")
	if a.Valid {
		good.Fprintln(w, "PASS")
	} else {
		bad.Fprintln(w, "FAIL")
	}
}

func histogramLine(h map[int]int) string {
	if len(h) == 0 {
		return "(none)"
	}
	lengths := make([]int, 0, len(h))
	for k := range h {
		lengths = append(lengths, k)
	}
	sort.Ints(lengths)
	out := ""
	for i, l := range lengths {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("%d:%d", l, h[l])
	}
	return out
}
