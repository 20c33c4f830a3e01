// Package tracing records agent runs as traces with per-tool spans.
// Sinks are pluggable: discard, structured log, or SQLite.
package tracing

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Span records one tool invocation inside a trace.
type Span struct {
	TraceID   string            `json:"trace_id"`
	Tool      string            `json:"tool"`
	StartedAt time.Time         `json:"started_at"`
	Duration  time.Duration     `json:"duration"`
	Err       string            `json:"error,omitempty"`
	Attrs     map[string]string `json:"attrs,omitempty"`
}

// Sink receives trace lifecycle events. Implementations must tolerate
// being called with a trace ID they did not issue.
type Sink interface {
	// StartTrace opens a trace and returns its ID.
	StartTrace(ctx context.Context, name, url string) string

	// AddToolSpan records one tool invocation.
	AddToolSpan(ctx context.Context, span Span)

	// ConcludeTrace closes the trace with a final status.
	ConcludeTrace(ctx context.Context, traceID, status string)
}

// NopSink issues trace IDs and discards everything else. It is the
// default sink, so callers always get a usable trace ID.
type NopSink struct{}

func (NopSink) StartTrace(ctx context.Context, name, url string) string {
	return uuid.NewString()
}

func (NopSink) AddToolSpan(ctx context.Context, span Span) {}

func (NopSink) ConcludeTrace(ctx context.Context, traceID, status string) {}

// LogSink emits every trace event as a structured log record.
type LogSink struct {
	logger *slog.Logger
}

func NewLogSink(logger *slog.Logger) *LogSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogSink{logger: logger}
}

func (s *LogSink) StartTrace(ctx context.Context, name, url string) string {
	traceID := uuid.NewString()
	s.logger.InfoContext(ctx, "trace started", "trace_id", traceID, "name", name, "url", url)
	return traceID
}

func (s *LogSink) AddToolSpan(ctx context.Context, span Span) {
	attrs := []any{
		"trace_id", span.TraceID,
		"tool", span.Tool,
		"duration_ms", span.Duration.Milliseconds(),
	}
	if span.Err != "" {
		attrs = append(attrs, "error", span.Err)
	}
	for k, v := range span.Attrs {
		attrs = append(attrs, k, v)
	}
	s.logger.InfoContext(ctx, "tool span", attrs...)
}

func (s *LogSink) ConcludeTrace(ctx context.Context, traceID, status string) {
	s.logger.InfoContext(ctx, "trace concluded", "trace_id", traceID, "status", status)
}
