package observability

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// NewLogger builds the JSON process logger tagged with service and environment.
// A nil w writes to stdout.
func NewLogger(w io.Writer, opts Options) *slog.Logger {
	if w == nil {
		w = os.Stdout
	}
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:     ParseLevel(opts.LogLevel),
		AddSource: true,
	})
	return slog.New(handler).With(
		slog.String("service", opts.ServiceName),
		slog.String("env", opts.environment()),
	)
}

// ParseLevel maps LOG_LEVEL values to slog levels. Unknown values mean info.
func ParseLevel(raw string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
