// Package stream partitions a bit-oriented io.Reader into fixed-size
// blocks, encodes each block independently through the codec pipeline,
// and joins the resulting DNA blocks back into an io.Writer — and the
// mirror image for decode. Each block carries no state into the next,
// matching the codec package's single-shot, stateless design; streaming
// exists only to bound memory use on large inputs, the same role pgzip
// plays wrapping gzip with a buffered reader/writer pair in the
// reference pack's merge/poster pipeline.
package stream

import (
	"bufio"
	"fmt"
	"io"

	"github.com/klauspost/pgzip"

	"github.com/minminlittleshrimp/helix/codec"
)

// DefaultBlockBits is the default block size in bits (must be even, and
// a multiple of 2 so it splits into whole quaternary symbols).
const DefaultBlockBits = 4096

// Options configures a streaming encode/decode pass.
type Options struct {
	BlockBits int  // bits per block; DefaultBlockBits if zero
	Gzip      bool // wrap the output/input in pgzip
}

func (o Options) blockBits() int {
	if o.BlockBits <= 0 {
		return DefaultBlockBits
	}
	return o.BlockBits
}

// EncodeStream reads a bitstring (as raw '0'/'1' bytes) from r in
// blocks, encodes each block independently with p, and writes the
// resulting DNA blocks to w separated by newlines, one block per line.
func EncodeStream(w io.Writer, r io.Reader, p codec.Params, opt Options) error {
	dst, closeDst, err := wrapWriter(w, opt)
	if err != nil {
		return err
	}
	defer closeDst()

	block := make([]byte, opt.blockBits())
	br := bufio.NewReader(r)
	for {
		n, readErr := io.ReadFull(br, block)
		if n > 0 {
			if n%2 != 0 {
				return fmt.Errorf("stream: block of %d bits is not an even length", n)
			}
			dna, err := codec.Encode(string(block[:n]), p)
			if err != nil {
				return fmt.Errorf("stream: encoding block: %w", err)
			}
			if _, err := fmt.Fprintln(dst, dna); err != nil {
				return fmt.Errorf("stream: writing block: %w", err)
			}
		}
		if readErr == io.EOF || readErr == io.ErrUnexpectedEOF {
			return nil
		}
		if readErr != nil {
			return fmt.Errorf("stream: reading input: %w", readErr)
		}
	}
}

// DecodeStream reads newline-delimited DNA blocks from r, decodes each
// independently with p, and writes the concatenated bitstring to w. A
// detected-but-nonfatal error on a block does not stop the stream: after
// all blocks have been processed, the last such error is returned, so a
// single corrupted block doesn't prevent the rest of the stream from
// decoding.
func DecodeStream(w io.Writer, r io.Reader, p codec.Params, opt Options) error {
	src, closeSrc, err := wrapReader(r, opt)
	if err != nil {
		return err
	}
	defer closeSrc()

	var detected error
	sc := bufio.NewScanner(src)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		bits, err := codec.Decode(line, p)
		if err != nil {
			if isDetectedOnly(err) {
				detected = err
			} else {
				return fmt.Errorf("stream: decoding block: %w", err)
			}
		}
		if _, err := io.WriteString(w, bits); err != nil {
			return fmt.Errorf("stream: writing output: %w", err)
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("stream: reading input: %w", err)
	}
	return detected
}

func isDetectedOnly(err error) bool {
	return err != nil && codec.IsDetectionOnly(err)
}

func wrapWriter(w io.Writer, opt Options) (io.Writer, func(), error) {
	if !opt.Gzip {
		return w, func() {}, nil
	}
	zw := pgzip.NewWriter(w)
	return zw, func() { zw.Close() }, nil
}

func wrapReader(r io.Reader, opt Options) (io.Reader, func(), error) {
	if !opt.Gzip {
		return r, func() {}, nil
	}
	zr, err := pgzip.NewReader(bufio.NewReader(r))
	if err != nil {
		return nil, func() {}, fmt.Errorf("stream: opening gzip reader: %w", err)
	}
	return zr, func() { zr.Close() }, nil
}
