package codec

// DifferentialEncode computes the first difference of x modulo 4:
// y[0] = x[0]; y[i] = (x[i] - x[i-1]) mod 4 for i >= 1. Maximal runs of
// identical symbols in x become runs of zeros in y, so the RLL stage only
// has to police a single forbidden substring rather than four.
func DifferentialEncode(x []Symbol) []Symbol {
	if len(x) == 0 {
		return []Symbol{}
	}
	y := make([]Symbol, len(x))
	y[0] = x[0]
	for i := 1; i < len(x); i++ {
		y[i] = (x[i] - x[i-1]) & 3
	}
	return y
}

// DifferentialDecode inverts DifferentialEncode: x[0] = y[0];
// x[i] = (x[i-1] + y[i]) mod 4.
func DifferentialDecode(y []Symbol) []Symbol {
	if len(y) == 0 {
		return []Symbol{}
	}
	x := make([]Symbol, len(y))
	x[0] = y[0]
	for i := 1; i < len(y); i++ {
		x[i] = (x[i-1] + y[i]) & 3
	}
	return x
}
