package store

import "fmt"

// currentSchemaVersion is the latest schema version.
const currentSchemaVersion = 1

// Migrate runs forward migrations to bring the database schema up to date.
func (db *DB) Migrate() error {
	if _, err := db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER NOT NULL
		)
	`); err != nil {
		return fmt.Errorf("creating schema_version table: %w", err)
	}

	version := 0
	row := db.conn.QueryRow("SELECT version FROM schema_version LIMIT 1")
	if err := row.Scan(&version); err != nil {
		// No rows means version 0 (fresh database).
		version = 0
	}

	if version < 1 {
		if err := db.migrateV1(); err != nil {
			return fmt.Errorf("migration v1: %w", err)
		}
	}

	return nil
}

// migrateV1 creates all initial tables and indexes.
func (db *DB) migrateV1() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS snapshots (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			taken_at    TEXT NOT NULL,
			command     TEXT NOT NULL,
			version     TEXT NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS inbox_stats (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			snapshot_id INTEGER NOT NULL REFERENCES snapshots(id),
			domain      TEXT NOT NULL,
			critical    INTEGER NOT NULL,
			high        INTEGER NOT NULL,
			medium      INTEGER NOT NULL,
			low         INTEGER NOT NULL,
			total       INTEGER NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS item_scores (
			id               INTEGER PRIMARY KEY AUTOINCREMENT,
			snapshot_id      INTEGER NOT NULL REFERENCES snapshots(id),
			domain           TEXT NOT NULL,
			item_id          TEXT NOT NULL,
			score            REAL NOT NULL,
			band             TEXT NOT NULL,
			top_reason       TEXT,
			suggested_action TEXT
		)`,

		`CREATE INDEX IF NOT EXISTS idx_inbox_stats_snapshot ON inbox_stats(snapshot_id)`,
		`CREATE INDEX IF NOT EXISTS idx_item_scores_snapshot ON item_scores(snapshot_id, domain)`,
	}

	for _, stmt := range statements {
		if _, err := db.conn.Exec(stmt); err != nil {
			return err
		}
	}

	if _, err := db.conn.Exec("DELETE FROM schema_version"); err != nil {
		return err
	}
	if _, err := db.conn.Exec("INSERT INTO schema_version (version) VALUES (?)", currentSchemaVersion); err != nil {
		return err
	}

	return nil
}
