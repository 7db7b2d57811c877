package cli

import (
	"bytes"
	"database/sql"
	"io"
	"os"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/runnerr0/idcheck/internal/catalog"
	"github.com/runnerr0/idcheck/internal/dataset"
)

// captureOutput captures stdout during fn execution and returns it as a string.
func captureOutput(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	fn()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	return buf.String()
}

// setupTestStore opens an in-memory snapshot cache with migrations applied.
func setupTestStore(t *testing.T) (*dataset.SQLiteStore, *sql.DB) {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:?_foreign_keys=on")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	runner := dataset.NewMigrationRunner(db)
	require.NoError(t, runner.Run())

	store, err := dataset.NewSQLiteStore(db)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	return store, db
}

// testCatalog builds a catalogue over the given ids, with declared size
// equal to len(ids).
func testCatalog(t *testing.T, ids ...int64) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New(ids, len(ids), time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return cat
}
