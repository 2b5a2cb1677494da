package stream

import (
	"bytes"
	"strings"
	"testing"

	"github.com/minminlittleshrimp/helix/codec"
)

func testParams() codec.Params {
	return codec.Params{Ell: 3, Epsilon: 0.1, UseEC: true}
}

func TestEncodeDecodeStreamRoundTrip(t *testing.T) {
	bits := strings.Repeat("0011", 50)
	var dna bytes.Buffer
	if err := EncodeStream(&dna, strings.NewReader(bits), testParams(), Options{BlockBits: 32}); err != nil {
		t.Fatalf("EncodeStream: %v", err)
	}

	var out bytes.Buffer
	if err := DecodeStream(&out, &dna, testParams(), Options{}); err != nil {
		t.Fatalf("DecodeStream: %v", err)
	}
	if out.String() != bits {
		t.Fatalf("round trip mismatch: got %d bits, want %d bits", out.Len(), len(bits))
	}
}

func TestEncodeDecodeStreamGzip(t *testing.T) {
	bits := strings.Repeat("0101", 30)
	var dna bytes.Buffer
	opt := Options{BlockBits: 24, Gzip: true}
	if err := EncodeStream(&dna, strings.NewReader(bits), testParams(), opt); err != nil {
		t.Fatalf("EncodeStream: %v", err)
	}

	var out bytes.Buffer
	if err := DecodeStream(&out, &dna, testParams(), Options{Gzip: true}); err != nil {
		t.Fatalf("DecodeStream: %v", err)
	}
	if out.String() != bits {
		t.Fatalf("round trip mismatch with gzip: got %d bits, want %d bits", out.Len(), len(bits))
	}
}

func TestEncodeStreamRejectsOddBlockRemainder(t *testing.T) {
	var dna bytes.Buffer
	err := EncodeStream(&dna, strings.NewReader("000"), testParams(), Options{BlockBits: 2})
	if err == nil {
		t.Fatalf("expected an error for a trailing odd-length block")
	}
}
