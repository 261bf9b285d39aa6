package observability

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
)

type ctxKey string

const ctxKeyRunID ctxKey = "run_id"

// stderr keeps command output on stdout clean.
var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

func Logger() *slog.Logger {
	return logger
}

// Configure replaces the global logger. format is "text" or "json".
func Configure(w io.Writer, level, format string) error {
	lvl, err := ParseLevel(level)
	if err != nil {
		return err
	}
	opts := &slog.HandlerOptions{Level: lvl}
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "text":
		logger = slog.New(slog.NewTextHandler(w, opts))
	case "json":
		logger = slog.New(slog.NewJSONHandler(w, opts))
	default:
		return fmt.Errorf("unsupported log format %q (use text or json)", format)
	}
	return nil
}

func ParseLevel(level string) (slog.Level, error) {
	var lvl slog.Level
	if strings.TrimSpace(level) == "" {
		return slog.LevelWarn, nil
	}
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return lvl, nil
}

// WithRunID tags the context with a fresh id for this invocation.
func WithRunID(ctx context.Context) context.Context {
	return context.WithValue(ctx, ctxKeyRunID, uuid.NewString())
}

func RunID(ctx context.Context) string {
	id, _ := ctx.Value(ctxKeyRunID).(string)
	return id
}

func LoggerFromContext(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return logger
	}
	id := RunID(ctx)
	if id == "" {
		return logger
	}
	return logger.With("run_id", id)
}
