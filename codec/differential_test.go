package codec

import "testing"

func TestDifferentialRoundTrip(t *testing.T) {
	cases := [][]Symbol{
		{},
		{0},
		{0, 0, 0, 0},
		{1, 2, 3, 0, 1, 2, 3, 0},
		{3, 3, 3, 1, 0, 2},
	}
	for _, x := range cases {
		y := DifferentialEncode(x)
		back := DifferentialDecode(y)
		if !symEqual(back, x) {
			t.Fatalf("round trip mismatch for %v: got %v via %v", x, back, y)
		}
	}
}

func TestDifferentialEncodeCollapsesRuns(t *testing.T) {
	x := []Symbol{2, 2, 2, 2, 2}
	y := DifferentialEncode(x)
	for i := 1; i < len(y); i++ {
		if y[i] != 0 {
			t.Fatalf("expected zero run in differential of constant input, got %v", y)
		}
	}
}

func symEqual(a, b []Symbol) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
