package codec

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// paramsVersion tags the binary encoding of Params so future layout
// changes can be detected on read.
const paramsVersion uint8 = 1

// Params holds the immutable configuration of a codec instance: the
// homopolymer runlength bound, the GC tolerance, and whether the VT
// error-detection suffix is attached. A Params value carries no other
// state and is safe to share across goroutines.
type Params struct {
	Ell     int     // max homopolymer runlength, Ell >= 2
	Epsilon float64 // GC tolerance, 0 < Epsilon < 0.5
	UseEC   bool    // attach VT syndrome+checksum suffix
}

// Validate checks Ell and Epsilon against the ranges required by the
// pipeline. It returns ErrParam, wrapped with the offending value, on
// failure.
func (p Params) Validate() error {
	if p.Ell < 2 {
		return fmt.Errorf("%w: ell=%d, want >= 2", ErrParam, p.Ell)
	}
	if !(p.Epsilon > 0 && p.Epsilon < 0.5) {
		return fmt.Errorf("%w: epsilon=%v, want in (0, 0.5)", ErrParam, p.Epsilon)
	}
	return nil
}

// minGCLength returns ceil(1/(2*epsilon)), the smallest body length at
// which Method D is guaranteed to find a valid flip index.
func (p Params) minGCLength() int {
	return int(math.Ceil(1 / (2 * p.Epsilon)))
}

// WriteTo serializes Params in a compact binary form:
//
//	1 byte version | 1 byte Ell | 8 bytes Epsilon (float64 LE) | 1 byte UseEC flag
//
// This mirrors the fixed-header-then-fields layout the pack's symbol-table
// serializer uses for its own configuration, applied here to codec
// parameters rather than a learned symbol table.
func (p Params) WriteTo(w io.Writer) (int64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	var buf [11]byte
	buf[0] = paramsVersion
	buf[1] = byte(p.Ell)
	binary.LittleEndian.PutUint64(buf[2:10], math.Float64bits(p.Epsilon))
	if p.UseEC {
		buf[10] = 1
	}
	n, err := w.Write(buf[:])
	return int64(n), err
}

// ReadFrom deserializes Params written by WriteTo.
func (p *Params) ReadFrom(r io.Reader) (int64, error) {
	var buf [11]byte
	n, err := io.ReadFull(r, buf[:])
	if err != nil {
		return int64(n), err
	}
	if buf[0] != paramsVersion {
		return int64(n), fmt.Errorf("%w: unsupported params version %d", ErrParam, buf[0])
	}
	p.Ell = int(buf[1])
	p.Epsilon = math.Float64frombits(binary.LittleEndian.Uint64(buf[2:10]))
	p.UseEC = buf[10] != 0
	return int64(n), p.Validate()
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (p Params) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := p.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (p *Params) UnmarshalBinary(data []byte) error {
	_, err := p.ReadFrom(bytes.NewReader(data))
	return err
}
