package store

import (
	"context"
	"database/sql"
	"fmt"
)

func (s *Store) migrate(ctx context.Context) error {
	tx, err := s.writer.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		)
	`); err != nil {
		return fmt.Errorf("create schema_version: %w", err)
	}

	var version int
	err = tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(version), 0) FROM schema_version`).Scan(&version)
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}

	if version < 1 {
		if err := migrateV1(ctx, tx); err != nil {
			return fmt.Errorf("migration v1: %w", err)
		}
	}

	return tx.Commit()
}

func migrateV1(ctx context.Context, tx *sql.Tx) error {
	stmts := []string{
		// One batch per imported trial-balance file. The latest batch is
		// the one statements are generated from.
		`CREATE TABLE IF NOT EXISTS import_batches (
			id          TEXT PRIMARY KEY,
			source_file TEXT NOT NULL,
			row_count   INTEGER NOT NULL DEFAULT 0,
			imported_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ','now'))
		)`,
		`CREATE INDEX IF NOT EXISTS idx_batches_imported ON import_batches(imported_at)`,

		`CREATE TABLE IF NOT EXISTS ledger_rows (
			id              INTEGER PRIMARY KEY AUTOINCREMENT,
			batch_id        TEXT NOT NULL REFERENCES import_batches(id) ON DELETE CASCADE,
			level1          TEXT NOT NULL,
			level2          TEXT NOT NULL DEFAULT '',
			amount_current  REAL NOT NULL DEFAULT 0,
			amount_previous REAL NOT NULL DEFAULT 0
		)`,
		`CREATE INDEX IF NOT EXISTS idx_ledger_rows_batch ON ledger_rows(batch_id)`,

		// Manual journal adjustments survive re-imports; they are joined
		// onto whichever batch is being evaluated.
		`CREATE TABLE IF NOT EXISTS adjustments (
			id              TEXT PRIMARY KEY,
			level1          TEXT NOT NULL,
			level2          TEXT NOT NULL DEFAULT '',
			amount_current  REAL NOT NULL DEFAULT 0,
			amount_previous REAL NOT NULL DEFAULT 0,
			narration       TEXT NOT NULL DEFAULT '',
			created_at      TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ','now'))
		)`,

		`INSERT INTO schema_version (version) VALUES (1)`,
	}

	for _, stmt := range stmts {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("exec %q: %w", stmt[:40], err)
		}
	}
	return nil
}
