package dataset

import "database/sql"

// migrateV001 creates the snapshot-cache schema: a single-row snapshot
// metadata table and the identifier set. Every statement uses IF NOT EXISTS
// for idempotency.
func migrateV001(tx *sql.Tx) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS snapshot (
			id           INTEGER PRIMARY KEY CHECK (id = 1),
			total_count  INTEGER NOT NULL,
			generated_at DATETIME NOT NULL,
			imported_at  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE TABLE IF NOT EXISTS identifiers (
			ref_id INTEGER PRIMARY KEY
		)`,
	}

	for _, stmt := range stmts {
		if _, err := tx.Exec(stmt); err != nil {
			return err
		}
	}

	return nil
}
