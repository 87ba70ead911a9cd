package database

import (
	"context"
	"database/sql"
)

// schemaVersion is bumped whenever a migration is appended
const schemaVersion = 1

// runMigrations creates the slot schema if needed
func runMigrations(ctx context.Context, db *sql.DB) error {
	return withTx(ctx, db, func(tx *sql.Tx) error {
		// One row per durable slot; the value is the full JSON snapshot
		if _, err := tx.ExecContext(ctx, `
			CREATE TABLE IF NOT EXISTS slots (
				key TEXT PRIMARY KEY,
				value TEXT NOT NULL,
				updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
			)
		`); err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, `
			CREATE TABLE IF NOT EXISTS schema_version (
				version INTEGER NOT NULL
			)
		`); err != nil {
			return err
		}

		var current int
		err := tx.QueryRowContext(ctx, "SELECT COALESCE(MAX(version), 0) FROM schema_version").Scan(&current)
		if err != nil {
			return err
		}
		if current < schemaVersion {
			if _, err := tx.ExecContext(ctx, "INSERT INTO schema_version (version) VALUES (?)", schemaVersion); err != nil {
				return err
			}
		}
		return nil
	})
}
