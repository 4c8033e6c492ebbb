// Package logging sets up the process-wide JSON logger and its Datadog
// trace correlation, mirroring the log-injection the APM agent does
// for the other services in this stack.
package logging

import (
	"context"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"gopkg.in/DataDog/dd-trace-go.v1/ddtrace/tracer"
)

// New builds a JSON logger writing to stdout. LOG_LEVEL selects the
// minimum level (debug, info, warn, error); the default is info.
func New() *slog.Logger {
	level := slog.LevelInfo
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	return slog.New(handler)
}

// WithTrace returns the logger annotated with dd.trace_id and
// dd.span_id when an active span is on the context, so log lines and
// APM traces correlate in Datadog.
func WithTrace(ctx context.Context, logger *slog.Logger) *slog.Logger {
	span, ok := tracer.SpanFromContext(ctx)
	if !ok {
		return logger
	}
	sc := span.Context()
	return logger.With(
		slog.String("dd.trace_id", strconv.FormatUint(sc.TraceID(), 10)),
		slog.String("dd.span_id", strconv.FormatUint(sc.SpanID(), 10)),
	)
}
