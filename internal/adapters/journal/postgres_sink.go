package journal

import (
	"context"
	"database/sql"
	"dispatch-board-service/internal/domain"
	"dispatch-board-service/internal/platform/obs"
	"dispatch-board-service/internal/ports"
	"errors"
	"fmt"
)

// PostgresSink appends events to the dispatch_events table.
// The table is write-mostly: it is read only by operator tooling.
type PostgresSink struct {
	DB *sql.DB
}

var _ ports.EventSink = (*PostgresSink)(nil)

func NewPostgresSink(db *sql.DB) *PostgresSink {
	return &PostgresSink{DB: db}
}

// Create the journal table and its index if they do not exist.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init journal schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init journal schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createEventsQuery := `
	CREATE TABLE IF NOT EXISTS dispatch_events (
		event_id TEXT PRIMARY KEY,
		kind TEXT NOT NULL,
		assignment_id TEXT NOT NULL,
		detail JSONB NOT NULL DEFAULT '{}'::jsonb,
		occurred_at TIMESTAMPTZ NOT NULL
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_dispatch_events_occurred_at
	ON dispatch_events(occurred_at DESC);
	`

	for i, stmt := range []string{createEventsQuery, createIndexQuery} {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init journal schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init journal schema: commit tx: %w", err)
	}

	return nil
}

func (s *PostgresSink) Publish(ctx context.Context, ev domain.DispatchEvent) (err error) {
	defer obs.Time(ctx, "journal.postgres.Publish")(&err)

	if s.DB == nil {
		return errors.New("postgres journal: DB is nil")
	}

	detail, err := encodeDetail(ev.Detail)
	if err != nil {
		return fmt.Errorf("postgres journal: %w", err)
	}

	q := `
	INSERT INTO dispatch_events (event_id, kind, assignment_id, detail, occurred_at)
	VALUES ($1, $2, $3, $4::jsonb, $5)
	ON CONFLICT (event_id) DO NOTHING;
	`
	if _, err := s.DB.ExecContext(ctx, q, ev.EventID, string(ev.Kind), ev.AssignmentID, detail, ev.At); err != nil {
		return fmt.Errorf("postgres journal: insert event_id=%s: %w", ev.EventID, err)
	}

	return nil
}

// Return the newest events first, at most limit of them.
func (s *PostgresSink) ListRecent(ctx context.Context, limit int) ([]domain.DispatchEvent, error) {
	if s.DB == nil {
		return nil, errors.New("postgres journal: DB is nil")
	}
	if limit <= 0 {
		return []domain.DispatchEvent{}, nil
	}

	q := `
	SELECT event_id, kind, assignment_id, detail::text, occurred_at
	FROM dispatch_events
	ORDER BY occurred_at DESC
	LIMIT $1;
	`
	rows, err := s.DB.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, fmt.Errorf("list journal events: query dispatch_events table: %w", err)
	}
	defer rows.Close()

	events := make([]domain.DispatchEvent, 0, limit)
	for rows.Next() {
		var (
			ev     domain.DispatchEvent
			kind   string
			detail string
		)
		if err := rows.Scan(&ev.EventID, &kind, &ev.AssignmentID, &detail, &ev.At); err != nil {
			return nil, fmt.Errorf("list journal events: scan row: %w", err)
		}
		ev.Kind = domain.EventKind(kind)
		if ev.Detail, err = decodeDetail(detail); err != nil {
			return nil, fmt.Errorf("list journal events: event_id=%s: %w", ev.EventID, err)
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list journal events: row iteration: %w", err)
	}

	return events, nil
}
