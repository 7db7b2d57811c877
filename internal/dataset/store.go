package dataset

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Store defines the local snapshot-cache operations.
type Store interface {
	ImportDataset(ctx context.Context, d *Dataset) error
	LoadDataset(ctx context.Context) (*Dataset, error)
	SnapshotInfo(ctx context.Context) (*SnapshotInfo, error)
	Close() error
}

// ErrNoSnapshot is returned when the cache holds no imported dataset yet.
var ErrNoSnapshot = errors.New("no dataset imported")

// SQLiteStore implements Store backed by a SQLite database. The cache holds
// at most one snapshot: importing replaces whatever was there before.
type SQLiteStore struct {
	db *sql.DB

	insertID *sql.Stmt
}

// NewSQLiteStore creates a SQLiteStore from an already-opened and migrated
// database.
func NewSQLiteStore(db *sql.DB) (*SQLiteStore, error) {
	s := &SQLiteStore{db: db}

	var err error
	s.insertID, err = db.Prepare("INSERT OR IGNORE INTO identifiers (ref_id) VALUES (?)")
	if err != nil {
		return nil, fmt.Errorf("prepare statements: %w", err)
	}

	return s, nil
}

// ImportDataset replaces the cached snapshot with d in a single transaction.
func (s *SQLiteStore) ImportDataset(ctx context.Context, d *Dataset) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, "DELETE FROM identifiers"); err != nil {
		return fmt.Errorf("clear identifiers: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM snapshot"); err != nil {
		return fmt.Errorf("clear snapshot: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		"INSERT INTO snapshot (id, total_count, generated_at, imported_at) VALUES (1, ?, ?, ?)",
		d.TotalCount,
		d.GeneratedAt.UTC().Format(time.RFC3339),
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("insert snapshot: %w", err)
	}

	stmt := tx.StmtContext(ctx, s.insertID)
	for _, id := range d.IDs {
		if _, err := stmt.ExecContext(ctx, id); err != nil {
			return fmt.Errorf("insert identifier %d: %w", id, err)
		}
	}

	return tx.Commit()
}

// LoadDataset materializes the cached snapshot. Returns ErrNoSnapshot when
// nothing has been imported.
func (s *SQLiteStore) LoadDataset(ctx context.Context) (*Dataset, error) {
	var totalCount int
	var generatedStr string
	err := s.db.QueryRowContext(ctx,
		"SELECT total_count, generated_at FROM snapshot WHERE id = 1",
	).Scan(&totalCount, &generatedStr)
	if err == sql.ErrNoRows {
		return nil, ErrNoSnapshot
	}
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	generatedAt, err := parseTimestamp(generatedStr)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, "SELECT ref_id FROM identifiers ORDER BY ref_id")
	if err != nil {
		return nil, fmt.Errorf("read identifiers: %w", err)
	}
	defer rows.Close()

	ids := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan identifier: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &Dataset{
		IDs:         ids,
		TotalCount:  totalCount,
		GeneratedAt: generatedAt,
	}, nil
}

// SnapshotInfo returns metadata about the cached snapshot for the status
// surface. Returns ErrNoSnapshot when nothing has been imported.
func (s *SQLiteStore) SnapshotInfo(ctx context.Context) (*SnapshotInfo, error) {
	var info SnapshotInfo
	var generatedStr, importedStr string
	err := s.db.QueryRowContext(ctx,
		"SELECT total_count, generated_at, imported_at FROM snapshot WHERE id = 1",
	).Scan(&info.TotalCount, &generatedStr, &importedStr)
	if err == sql.ErrNoRows {
		return nil, ErrNoSnapshot
	}
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	info.GeneratedAt, _ = parseTimestamp(generatedStr)
	info.ImportedAt, _ = parseTimestamp(importedStr)

	err = s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM identifiers").Scan(&info.StoredIDs)
	if err != nil {
		return nil, fmt.Errorf("count identifiers: %w", err)
	}

	return &info, nil
}

// Close releases prepared statements. The underlying *sql.DB is NOT closed —
// that is the caller's responsibility.
func (s *SQLiteStore) Close() error {
	if s.insertID != nil {
		s.insertID.Close()
	}
	return nil
}
