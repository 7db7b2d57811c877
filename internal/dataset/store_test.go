package dataset

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T) *SQLiteStore {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:?_foreign_keys=on")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	runner := NewMigrationRunner(db)
	require.NoError(t, runner.Run())

	store, err := NewSQLiteStore(db)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	return store
}

func sampleDataset() *Dataset {
	return &Dataset{
		IDs:         []int64{1001, 1002, 2000},
		TotalCount:  3,
		GeneratedAt: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestImportAndLoadRoundTrip(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	require.NoError(t, store.ImportDataset(ctx, sampleDataset()))

	got, err := store.LoadDataset(ctx)
	require.NoError(t, err)

	assert.Equal(t, []int64{1001, 1002, 2000}, got.IDs)
	assert.Equal(t, 3, got.TotalCount)
	assert.Equal(t, time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC), got.GeneratedAt.UTC())
}

func TestImportReplacesPreviousSnapshot(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	require.NoError(t, store.ImportDataset(ctx, sampleDataset()))

	second := &Dataset{
		IDs:         []int64{7},
		TotalCount:  1,
		GeneratedAt: time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, store.ImportDataset(ctx, second))

	got, err := store.LoadDataset(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{7}, got.IDs)
	assert.Equal(t, 1, got.TotalCount)
}

func TestImportCollapsesDuplicateIDs(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	d := &Dataset{
		IDs:         []int64{5, 5, 6},
		TotalCount:  3,
		GeneratedAt: time.Now(),
	}
	require.NoError(t, store.ImportDataset(ctx, d))

	info, err := store.SnapshotInfo(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), info.StoredIDs)
	assert.Equal(t, 3, info.TotalCount)
}

func TestLoadDataset_NoSnapshot(t *testing.T) {
	store := setupStore(t)

	_, err := store.LoadDataset(context.Background())
	assert.ErrorIs(t, err, ErrNoSnapshot)
}

func TestSnapshotInfo_NoSnapshot(t *testing.T) {
	store := setupStore(t)

	_, err := store.SnapshotInfo(context.Background())
	assert.ErrorIs(t, err, ErrNoSnapshot)
}

func TestSnapshotInfo(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	require.NoError(t, store.ImportDataset(ctx, sampleDataset()))

	info, err := store.SnapshotInfo(ctx)
	require.NoError(t, err)

	assert.Equal(t, 3, info.TotalCount)
	assert.Equal(t, int64(3), info.StoredIDs)
	assert.Equal(t, time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC), info.GeneratedAt.UTC())
	assert.WithinDuration(t, time.Now(), info.ImportedAt, time.Minute)
}

func TestImportEmptyDataset(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	d := &Dataset{IDs: []int64{}, TotalCount: 0, GeneratedAt: time.Now()}
	require.NoError(t, store.ImportDataset(ctx, d))

	got, err := store.LoadDataset(ctx)
	require.NoError(t, err)
	assert.Empty(t, got.IDs)
	assert.Equal(t, 0, got.TotalCount)
}
