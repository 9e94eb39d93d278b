package journalstore

import (
	"database/sql"
	"fmt"
)

// SchemaVersion is the schema version this package expects.
const SchemaVersion = 1

// migrations holds the DDL for each schema version, in order. Index 0 is
// version 1.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS situations (
		id         TEXT PRIMARY KEY,
		text       TEXT NOT NULL,
		dominant   TEXT NOT NULL,
		emotions   TEXT NOT NULL,
		confidence REAL NOT NULL,
		guidance   TEXT NOT NULL,
		verse_refs TEXT NOT NULL,
		created_at TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_situations_created_at ON situations(created_at);`,
}

// Migrate brings the database schema up to SchemaVersion. It is safe to
// call on every open.
func Migrate(db *sql.DB) error {
	if db == nil {
		return fmt.Errorf("migrate: db is nil")
	}

	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS schema_migrations (version INTEGER PRIMARY KEY)`)
	if err != nil {
		return fmt.Errorf("migrate: create schema_migrations: %w", err)
	}

	var current int
	err = db.QueryRow(`SELECT COALESCE(MAX(version), 0) FROM schema_migrations`).Scan(&current)
	if err != nil {
		return fmt.Errorf("migrate: read version: %w", err)
	}
	if current > SchemaVersion {
		return fmt.Errorf("migrate: database version %d is newer than supported version %d", current, SchemaVersion)
	}

	for version := current + 1; version <= SchemaVersion; version++ {
		if err := applyMigration(db, version); err != nil {
			return err
		}
	}
	return nil
}

// applyMigration runs one migration inside a transaction.
func applyMigration(db *sql.DB, version int) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("migrate: begin version %d: %w", version, err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(migrations[version-1]); err != nil {
		return fmt.Errorf("migrate: apply version %d: %w", version, err)
	}
	if _, err := tx.Exec(`INSERT INTO schema_migrations (version) VALUES (?)`, version); err != nil {
		return fmt.Errorf("migrate: record version %d: %w", version, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("migrate: commit version %d: %w", version, err)
	}
	return nil
}
