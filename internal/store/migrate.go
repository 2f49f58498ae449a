package store

import (
	"context"
	"database/sql"
	"fmt"
)

// schema is applied on every Open. Statements must be idempotent.
//
// DDL stays as raw SQL; row access goes through the ent SQL builder.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS quiz_sessions (
		session_key TEXT PRIMARY KEY,
		attempt_id TEXT NOT NULL,
		current_question_id INTEGER,
		finished INTEGER NOT NULL DEFAULT 0,
		answers TEXT NOT NULL DEFAULT '{}',
		started_at INTEGER,
		updated_at INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS quiz_results (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		attempt_id TEXT NOT NULL UNIQUE,
		session_key TEXT NOT NULL,
		correct INTEGER NOT NULL,
		total INTEGER NOT NULL,
		percentage REAL NOT NULL,
		finished_at INTEGER NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS quiz_results_session_key ON quiz_results (session_key)`,
	`CREATE INDEX IF NOT EXISTS quiz_results_finished_at ON quiz_results (finished_at)`,
}

func migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}
