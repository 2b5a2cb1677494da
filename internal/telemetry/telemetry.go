// Package telemetry provides a small structured-logging wrapper used by
// cmd/helix (including around its internal/stream calls) to trace
// pipeline stage transitions and report detected errors. No third-party structured logger in the
// reference corpus is actually exercised from application code (the
// one candidate pulled in by a sibling example is never imported by any
// source file there), so this package wraps the standard library's
// log/slog directly rather than adopting an unexercised dependency.
package telemetry

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps a slog.Logger with helpers for the codec pipeline's
// stage-transition and detection events.
type Logger struct {
	*slog.Logger
}

// New builds a Logger that writes structured text to os.Stderr at the
// given level.
func New(level slog.Level) Logger {
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return Logger{Logger: slog.New(h)}
}

// Stage logs a pipeline stage transition at debug level.
func (l Logger) Stage(ctx context.Context, name string, length int) {
	l.DebugContext(ctx, "stage", "name", name, "length", length)
}

// Detected logs a VT-detected error at warn level, together with the
// best-effort bit length still returned to the caller.
func (l Logger) Detected(ctx context.Context, err error, bitLen int) {
	l.WarnContext(ctx, "error detected", "err", err, "bits_len", bitLen)
}

// Rejected logs a hard pipeline failure at error level.
func (l Logger) Rejected(ctx context.Context, op string, err error) {
	l.ErrorContext(ctx, "rejected", "op", op, "err", err)
}
