package cli

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/runnerr0/idcheck/internal/dataset"
)

// statusJSON is the JSON output structure for the status command.
type statusJSON struct {
	Version           string `json:"version"`
	DatabasePath      string `json:"database_path"`
	DatabaseSizeBytes int64  `json:"database_size_bytes"`
	SnapshotPresent   bool   `json:"snapshot_present"`
	DeclaredCount     int    `json:"declared_count,omitempty"`
	StoredIDs         int64  `json:"stored_ids,omitempty"`
	GeneratedAt       string `json:"generated_at,omitempty"`
	ImportedAt        string `json:"imported_at,omitempty"`
}

// Execute implements the go-flags Commander interface for StatusCommand.
func (c *StatusCommand) Execute(args []string) error {
	cfg, err := resolveConfig(c.globals)
	if err != nil {
		return err
	}

	store, db, dbPath, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer db.Close()
	defer store.Close()

	return c.executeWithStore(store, db, dbPath)
}

// executeWithStore runs status against a provided store and db (used by tests).
func (c *StatusCommand) executeWithStore(store dataset.Store, db *sql.DB, dbPath string) error {
	info, err := store.SnapshotInfo(context.Background())
	if err != nil && !errors.Is(err, dataset.ErrNoSnapshot) {
		return fmt.Errorf("read snapshot info: %w", err)
	}

	dbSize := getDatabaseSize(db, dbPath)

	if c.globals != nil && c.globals.JSON {
		return c.printStatusJSON(info, dbPath, dbSize)
	}
	return c.printStatusHuman(info, dbPath, dbSize)
}

func (c *StatusCommand) printStatusHuman(info *dataset.SnapshotInfo, dbPath string, dbSize int64) error {
	fmt.Println("idcheck Status")
	fmt.Println("==============")
	fmt.Printf("Version:       %s\n", c.version)
	fmt.Printf("Database:      %s (%s)\n", dbPath, formatBytes(dbSize))

	if info == nil {
		fmt.Println("Snapshot:      none (run 'idcheck import')")
		return nil
	}

	fmt.Printf("Declared:      %s identifiers\n", formatNumber(int64(info.TotalCount)))
	fmt.Printf("Stored IDs:    %s\n", formatNumber(info.StoredIDs))
	fmt.Printf("Generated:     %s\n", info.GeneratedAt.Local().Format("2006-01-02 15:04"))
	fmt.Printf("Imported:      %s\n", info.ImportedAt.Local().Format("2006-01-02 15:04"))

	return nil
}

func (c *StatusCommand) printStatusJSON(info *dataset.SnapshotInfo, dbPath string, dbSize int64) error {
	out := statusJSON{
		Version:           c.version,
		DatabasePath:      dbPath,
		DatabaseSizeBytes: dbSize,
	}

	if info != nil {
		out.SnapshotPresent = true
		out.DeclaredCount = info.TotalCount
		out.StoredIDs = info.StoredIDs
		out.GeneratedAt = info.GeneratedAt.UTC().Format(time.RFC3339)
		out.ImportedAt = info.ImportedAt.UTC().Format(time.RFC3339)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
