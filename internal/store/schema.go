package store

import (
	"context"
	"fmt"
	"strings"

	entsql "entgo.io/ent/dialect/sql"
)

// Table names.
const (
	tableSessionEvents = "session_events"
	tableRoundEvents   = "round_events"
	tableCycleEvents   = "cycle_events"
	tableLLMEvents     = "llm_events"
)

// Every event table carries id, a global sequence and ts (Unix
// milliseconds, UTC).
var ddl = []string{
	`CREATE TABLE IF NOT EXISTS session_events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		sequence INTEGER NOT NULL UNIQUE,
		ts INTEGER NOT NULL,
		session_id TEXT NOT NULL,
		action TEXT NOT NULL,
		deck_path TEXT NOT NULL DEFAULT '',
		deck_size INTEGER NOT NULL DEFAULT 0,
		rounds INTEGER NOT NULL DEFAULT 0,
		correct INTEGER NOT NULL DEFAULT 0,
		duration_secs INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS round_events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		sequence INTEGER NOT NULL UNIQUE,
		ts INTEGER NOT NULL,
		session_id TEXT NOT NULL,
		round INTEGER NOT NULL,
		question TEXT NOT NULL,
		answer TEXT NOT NULL,
		given TEXT NOT NULL DEFAULT '',
		outcome TEXT NOT NULL,
		hint_used INTEGER NOT NULL DEFAULT 0,
		elapsed_ms INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE INDEX IF NOT EXISTS round_events_session ON round_events (session_id)`,
	`CREATE INDEX IF NOT EXISTS round_events_question ON round_events (question)`,
	`CREATE TABLE IF NOT EXISTS cycle_events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		sequence INTEGER NOT NULL UNIQUE,
		ts INTEGER NOT NULL,
		session_id TEXT NOT NULL,
		score INTEGER NOT NULL,
		streak INTEGER NOT NULL,
		total INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS llm_events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		sequence INTEGER NOT NULL UNIQUE,
		ts INTEGER NOT NULL,
		provider TEXT NOT NULL,
		model TEXT NOT NULL,
		purpose TEXT NOT NULL,
		input_tokens INTEGER NOT NULL DEFAULT 0,
		output_tokens INTEGER NOT NULL DEFAULT 0,
		latency_ms INTEGER NOT NULL DEFAULT 0,
		success INTEGER NOT NULL,
		error_message TEXT NOT NULL DEFAULT '',
		request_body TEXT NOT NULL DEFAULT '',
		response_body TEXT NOT NULL DEFAULT ''
	)`,
}

// migrate creates missing tables and indexes. It never alters existing ones.
func migrate(ctx context.Context, drv *entsql.Driver) error {
	for _, stmt := range ddl {
		if err := drv.Exec(ctx, stmt, []any{}, nil); err != nil {
			head, _, _ := strings.Cut(stmt, "\n")
			return fmt.Errorf("exec %q: %w", head, err)
		}
	}
	return nil
}
