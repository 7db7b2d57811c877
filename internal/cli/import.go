package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/runnerr0/idcheck/internal/dataset"
)

// Execute implements the go-flags Commander interface for ImportCommand.
func (c *ImportCommand) Execute(args []string) error {
	file := c.File
	if file == "" && len(args) > 0 {
		file = args[0]
	}
	if file == "" {
		return fmt.Errorf("--file is required for import command")
	}

	d, err := dataset.LoadFile(file)
	if err != nil {
		return fmt.Errorf("load dataset: %w", err)
	}

	// Reject datasets the catalogue itself would reject, before touching
	// the cache.
	if _, err := d.Catalog(); err != nil {
		return err
	}

	cfg, err := resolveConfig(c.globals)
	if err != nil {
		return err
	}

	store, db, _, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer db.Close()
	defer store.Close()

	return c.executeWithStore(store, d)
}

// executeWithStore imports the dataset into a provided store (used by tests).
func (c *ImportCommand) executeWithStore(store dataset.Store, d *dataset.Dataset) error {
	if err := store.ImportDataset(context.Background(), d); err != nil {
		return fmt.Errorf("import dataset: %w", err)
	}

	fmt.Printf("Imported %s identifiers (declared %s), generated %s\n",
		formatNumber(int64(len(d.IDs))),
		formatNumber(int64(d.TotalCount)),
		d.GeneratedAt.UTC().Format(time.RFC3339),
	)
	return nil
}
