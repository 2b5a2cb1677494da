// Command helix is the CLI front end for the HELIX constrained-coding
// pipeline: it encodes a bitstring into DNA, decodes DNA back to bits,
// or analyzes an existing DNA string against the run-length and
// GC-content constraints. Flags follow the style of direwolf's
// gen_packets test program (pflag.StringP/BoolP/IntP, a custom
// pflag.Usage), adapted from one-shot audio generation to one-shot
// codec invocation.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/minminlittleshrimp/helix/codec"
	"github.com/minminlittleshrimp/helix/internal/config"
	"github.com/minminlittleshrimp/helix/internal/report"
	"github.com/minminlittleshrimp/helix/internal/stream"
	"github.com/minminlittleshrimp/helix/internal/telemetry"
)

const (
	exitOK            = 0
	exitBadInput      = 1
	exitConstraint    = 2
	exitDetectedError = 3
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := pflag.NewFlagSet("helix", pflag.ContinueOnError)

	encodeBits := fs.String("encode", "", "encode a bitstring into DNA")
	decodeDNA := fs.String("decode", "", "decode a DNA string into bits")
	analyzeDNA := fs.String("analyze", "", "report run-length/GC statistics for a DNA string")
	configPath := fs.String("config", "", "YAML file with ell/epsilon/use_ec overrides")
	streamEncode := fs.Bool("stream", false, "read a bitstring from stdin in blocks and write newline-delimited DNA blocks to stdout")
	streamDecode := fs.Bool("stream-decode", false, "read newline-delimited DNA blocks from stdin and write the concatenated bitstring to stdout")
	gzipMode := fs.Bool("gzip", false, "gzip-wrap stream input/output (only with --stream/--stream-decode)")
	blockBits := fs.Int("block-bits", stream.DefaultBlockBits, "bits per block in --stream mode")
	verbose := fs.BoolP("verbose", "v", false, "log stage transitions to stderr")
	applyFlags := config.BindFlags(fs)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "helix - constrained-coding DNA data storage codec\n\n")
		fmt.Fprintf(os.Stderr, "Usage: helix [--encode BITS | --decode DNA | --analyze DNA] [options]\n\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintln(os.Stderr, err)
		return exitBadInput
	}

	p, err := config.Resolve(*configPath, applyFlags)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitBadInput
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	log := telemetry.New(level)
	ctx := context.Background()

	switch {
	case *streamEncode:
		return runStream(ctx, log, p, stream.Options{BlockBits: *blockBits, Gzip: *gzipMode}, false)
	case *streamDecode:
		return runStream(ctx, log, p, stream.Options{BlockBits: *blockBits, Gzip: *gzipMode}, true)
	case *encodeBits != "":
		return runEncode(ctx, log, *encodeBits, p)
	case *decodeDNA != "":
		return runDecode(ctx, log, *decodeDNA, p)
	case *analyzeDNA != "":
		return runAnalyze(ctx, log, *analyzeDNA, p)
	default:
		fs.Usage()
		return exitBadInput
	}
}

func runEncode(ctx context.Context, log telemetry.Logger, bits string, p codec.Params) int {
	log.Stage(ctx, "RAW", len(bits))
	dna, err := codec.Encode(bits, p)
	if err != nil {
		log.Rejected(ctx, "Encode", err)
		fmt.Fprintln(os.Stderr, err)
		return classifyExit(err)
	}
	log.Stage(ctx, "DNA", len(dna))
	fmt.Println(dna)
	return exitOK
}

func runDecode(ctx context.Context, log telemetry.Logger, dna string, p codec.Params) int {
	log.Stage(ctx, "RAW", len(dna))
	bits, err := codec.Decode(dna, p)
	if err != nil {
		if codec.IsDetectionOnly(err) {
			log.Detected(ctx, err, len(bits))
		} else {
			log.Rejected(ctx, "Decode", err)
		}
		fmt.Println(bits)
		fmt.Fprintln(os.Stderr, err)
		return classifyExit(err)
	}
	log.Stage(ctx, "BITS", len(bits))
	fmt.Println(bits)
	return exitOK
}

func runAnalyze(ctx context.Context, log telemetry.Logger, dna string, p codec.Params) int {
	a, err := codec.Analyze(dna, p)
	if err != nil {
		log.Rejected(ctx, "Analyze", err)
		fmt.Fprintln(os.Stderr, err)
		return classifyExit(err)
	}
	report.Render(os.Stdout, a, p)
	if !a.Valid {
		return exitConstraint
	}
	return exitOK
}

// runStream dispatches to the streaming encoder or decoder depending on
// which of --stream/--stream-decode was passed.
func runStream(ctx context.Context, log telemetry.Logger, p codec.Params, opt stream.Options, decodeMode bool) int {
	if decodeMode {
		if err := stream.DecodeStream(os.Stdout, os.Stdin, p, opt); err != nil {
			log.Rejected(ctx, "DecodeStream", err)
			fmt.Fprintln(os.Stderr, err)
			return classifyExit(err)
		}
		return exitOK
	}
	if err := stream.EncodeStream(os.Stdout, os.Stdin, p, opt); err != nil {
		log.Rejected(ctx, "EncodeStream", err)
		fmt.Fprintln(os.Stderr, err)
		return classifyExit(err)
	}
	return exitOK
}

func classifyExit(err error) int {
	switch {
	case errors.Is(err, codec.ErrDetected):
		return exitDetectedError
	case errors.Is(err, codec.ErrBadAlphabet), errors.Is(err, codec.ErrBadLength), errors.Is(err, codec.ErrParam):
		return exitBadInput
	case errors.Is(err, codec.ErrTooShort), errors.Is(err, codec.ErrBadRLL), errors.Is(err, codec.ErrBadSuffix):
		return exitConstraint
	default:
		return exitBadInput
	}
}
