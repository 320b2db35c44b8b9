package storage

import (
	"context"
	"database/sql"
	"fmt"
)

func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`PRAGMA journal_mode = WAL;`,
		// Browser-style local storage: one opaque text value per key.
		`CREATE TABLE IF NOT EXISTS kv (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at DATETIME NOT NULL
		);`,
		// Audit trail of archive runs; the archived data itself lives in the exported PDF.
		`CREATE TABLE IF NOT EXISTS archive_runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			key TEXT NOT NULL,
			ran_at DATETIME NOT NULL,
			record_count INTEGER NOT NULL,
			export_path TEXT
		);`,
		`CREATE INDEX IF NOT EXISTS idx_archive_runs_key_ran_at ON archive_runs(key, ran_at);`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
