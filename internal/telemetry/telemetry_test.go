package telemetry

import (
	"context"
	"errors"
	"log/slog"
	"testing"
)

func TestLoggerMethodsDoNotPanic(t *testing.T) {
	l := New(slog.LevelDebug)
	ctx := context.Background()
	l.Stage(ctx, "RAW", 42)
	l.Detected(ctx, errors.New("syndrome mismatch"), 16)
	l.Rejected(ctx, "Decode", errors.New("bad alphabet"))
}
