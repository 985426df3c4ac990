package store

import (
	"context"
	"database/sql"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	_ "modernc.org/sqlite"
)

// Event is one entry in the local activity log. The log is append-only
// and independent of the snapshot: it records what happened, not state,
// so undoing an action leaves both the action and the undo visible.
type Event struct {
	ID      string    `json:"id"`
	Time    time.Time `json:"time"`
	Project string    `json:"project"`
	Kind    string    `json:"kind"`
	Detail  string    `json:"detail,omitempty"`
}

func (s Store) eventsPath() string {
	return filepath.Join(s.Dir, eventsFileName)
}

func (s Store) openEvents(ctx context.Context) (*sql.DB, error) {
	if err := s.Ensure(); err != nil {
		return nil, err
	}
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", s.eventsPath())
	if err != nil {
		return nil, err
	}
	// WAL enables one writer + many readers; busy_timeout avoids
	// "database is locked" flakiness when CLI and TUI overlap.
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS events (
			event_id TEXT PRIMARY KEY,
			project TEXT NOT NULL,
			kind TEXT NOT NULL,
			detail TEXT NOT NULL,
			created_at_unixms INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_events_created ON events(created_at_unixms);`,
	}
	for _, st := range stmts {
		if _, err := db.ExecContext(ctx, st); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	return db, nil
}

// AppendEvent records one activity log entry.
func (s Store) AppendEvent(ctx context.Context, project, kind, detail string) error {
	kind = strings.TrimSpace(kind)
	if kind == "" {
		return nil
	}

	db, err := s.openEvents(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	_, err = db.ExecContext(ctx,
		`INSERT INTO events(event_id, project, kind, detail, created_at_unixms) VALUES(?, ?, ?, ?, ?)`,
		uuid.NewString(), project, kind, detail, time.Now().UTC().UnixMilli(),
	)
	return err
}

// Events returns the newest log entries, most recent first. A limit of
// zero or less returns everything.
func (s Store) Events(ctx context.Context, limit int) ([]Event, error) {
	db, err := s.openEvents(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	// rowid breaks timestamp ties in insertion order.
	q := `SELECT event_id, project, kind, detail, created_at_unixms
	      FROM events
	      ORDER BY created_at_unixms DESC, rowid DESC`
	var rows *sql.Rows
	if limit > 0 {
		rows, err = db.QueryContext(ctx, q+` LIMIT ?`, limit)
	} else {
		rows, err = db.QueryContext(ctx, q)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Event
	for rows.Next() {
		var e Event
		var tsMs int64
		if err := rows.Scan(&e.ID, &e.Project, &e.Kind, &e.Detail, &tsMs); err != nil {
			return nil, err
		}
		e.Time = time.UnixMilli(tsMs).UTC()
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if out == nil {
		out = []Event{}
	}
	return out, nil
}
