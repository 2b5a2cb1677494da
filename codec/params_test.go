package codec

import (
	"bytes"
	"errors"
	"testing"
)

func TestParamsValidate(t *testing.T) {
	good := Params{Ell: 3, Epsilon: 0.05, UseEC: true}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected valid params, got %v", err)
	}

	bad := []Params{
		{Ell: 1, Epsilon: 0.05},
		{Ell: 3, Epsilon: 0},
		{Ell: 3, Epsilon: 0.5},
		{Ell: 3, Epsilon: -0.1},
	}
	for _, p := range bad {
		if err := p.Validate(); !errors.Is(err, ErrParam) {
			t.Fatalf("params %+v: expected ErrParam, got %v", p, err)
		}
	}
}

func TestParamsBinaryRoundTrip(t *testing.T) {
	p := Params{Ell: 4, Epsilon: 0.1, UseEC: true}
	data, err := p.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}
	var got Params
	if err := got.UnmarshalBinary(data); err != nil {
		t.Fatalf("UnmarshalBinary: %v", err)
	}
	if got != p {
		t.Fatalf("got %+v, want %+v", got, p)
	}
}

func TestParamsWriteToReadFrom(t *testing.T) {
	p := Params{Ell: 2, Epsilon: 0.2, UseEC: false}
	var buf bytes.Buffer
	if _, err := p.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	var got Params
	if _, err := got.ReadFrom(&buf); err != nil {
		t.Fatalf("ReadFrom: %v", err)
	}
	if got != p {
		t.Fatalf("got %+v, want %+v", got, p)
	}
}

func TestParamsReadFromBadVersion(t *testing.T) {
	buf := bytes.NewReader([]byte{9, 3, 0, 0, 0, 0, 0, 0, 0, 0, 1})
	var got Params
	if _, err := got.ReadFrom(buf); !errors.Is(err, ErrParam) {
		t.Fatalf("expected ErrParam, got %v", err)
	}
}

func TestMinGCLength(t *testing.T) {
	p := Params{Ell: 3, Epsilon: 0.25, UseEC: false}
	if got := p.minGCLength(); got != 2 {
		t.Fatalf("minGCLength() = %d, want 2", got)
	}
}
