package tracing

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

const schema = `
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA foreign_keys = ON;

CREATE TABLE IF NOT EXISTS traces (
    trace_id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    url TEXT NOT NULL,
    status TEXT NOT NULL DEFAULT 'running',
    started_at TIMESTAMP NOT NULL,
    concluded_at TIMESTAMP
);

CREATE TABLE IF NOT EXISTS spans (
    span_id INTEGER PRIMARY KEY AUTOINCREMENT,
    trace_id TEXT NOT NULL,
    tool TEXT NOT NULL,
    error TEXT,
    started_at TIMESTAMP NOT NULL,
    duration_ms INTEGER NOT NULL,
    attrs TEXT,
    FOREIGN KEY (trace_id) REFERENCES traces(trace_id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_spans_trace ON spans(trace_id);
`

// Store persists traces and spans in SQLite. It implements Sink.
type Store struct {
	db *sql.DB
}

// OpenStore opens or creates the trace database at path. The path
// ":memory:" yields a throwaway in-memory store.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open trace database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize trace schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) StartTrace(ctx context.Context, name, url string) string {
	traceID := uuid.NewString()
	_, _ = s.db.ExecContext(ctx, `
		INSERT INTO traces (trace_id, name, url, started_at)
		VALUES (?, ?, ?, ?)
	`, traceID, name, url, time.Now().UTC())
	return traceID
}

func (s *Store) AddToolSpan(ctx context.Context, span Span) {
	var attrs any
	if len(span.Attrs) > 0 {
		if b, err := json.Marshal(span.Attrs); err == nil {
			attrs = string(b)
		}
	}
	_, _ = s.db.ExecContext(ctx, `
		INSERT INTO spans (trace_id, tool, error, started_at, duration_ms, attrs)
		VALUES (?, ?, ?, ?, ?, ?)
	`, span.TraceID, span.Tool, nullable(span.Err), span.StartedAt.UTC(), span.Duration.Milliseconds(), attrs)
}

func (s *Store) ConcludeTrace(ctx context.Context, traceID, status string) {
	_, _ = s.db.ExecContext(ctx, `
		UPDATE traces SET status = ?, concluded_at = ? WHERE trace_id = ?
	`, status, time.Now().UTC(), traceID)
}

// TraceStatus reads back the recorded status of a trace.
func (s *Store) TraceStatus(ctx context.Context, traceID string) (string, error) {
	var status string
	err := s.db.QueryRowContext(ctx,
		"SELECT status FROM traces WHERE trace_id = ?", traceID).Scan(&status)
	if err != nil {
		return "", fmt.Errorf("failed to read trace %s: %w", traceID, err)
	}
	return status, nil
}

// SpanCount reports how many spans a trace holds.
func (s *Store) SpanCount(ctx context.Context, traceID string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM spans WHERE trace_id = ?", traceID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count spans for %s: %w", traceID, err)
	}
	return n, nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
