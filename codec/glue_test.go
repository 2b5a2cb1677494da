package codec

import (
	"errors"
	"testing"
)

func TestSelectGlueAvoidsNeighbors(t *testing.T) {
	left := hasNeighbor(symA)
	right := hasNeighbor(symT)
	g, err := selectGlue(left, right, true)
	if err != nil {
		t.Fatalf("selectGlue: %v", err)
	}
	if g == symA || g == symT {
		t.Fatalf("glue symbol %d collides with a neighbor", g)
	}
	if !g.isGC() {
		t.Fatalf("glue symbol %d should satisfy the GC deficit, want GC", g)
	}
}

func TestSelectGlueNoNeighbors(t *testing.T) {
	g, err := selectGlue(noNeighbor(), noNeighbor(), false)
	if err != nil {
		t.Fatalf("selectGlue: %v", err)
	}
	if g.isGC() {
		t.Fatalf("expected a non-GC glue symbol, got %d", g)
	}
}

func TestSelectGlueImpossible(t *testing.T) {
	// Both neighbors exclude both non-GC symbols, deficitPositive demands
	// a non-GC symbol: no candidate can satisfy both constraints.
	_, err := selectGlue(hasNeighbor(symA), hasNeighbor(symT), false)
	if !errors.Is(err, ErrTooShort) {
		t.Fatalf("expected ErrTooShort, got %v", err)
	}
}

func TestGCDeficitPositive(t *testing.T) {
	if !gcDeficitPositive([]Symbol{symA, symA, symT, symC}) {
		t.Fatalf("expected a GC deficit for a mostly-AT sequence")
	}
	if gcDeficitPositive([]Symbol{symC, symC, symG, symA}) {
		t.Fatalf("expected no GC deficit for a GC-heavy sequence")
	}
}
