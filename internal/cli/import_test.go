package cli

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runnerr0/idcheck/internal/dataset"
)

func TestImport_WritesSnapshot(t *testing.T) {
	store, _ := setupTestStore(t)
	cmd := &ImportCommand{globals: &GlobalFlags{}}

	d := &dataset.Dataset{
		IDs:         []int64{1001, 1002, 2000},
		TotalCount:  3,
		GeneratedAt: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}

	output := captureOutput(t, func() {
		err := cmd.executeWithStore(store, d)
		require.NoError(t, err)
	})

	assert.Contains(t, output, "Imported 3 identifiers")
	assert.Contains(t, output, "declared 3")
	assert.Contains(t, output, "2024-06-01T12:00:00Z")

	got, err := store.LoadDataset(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int64{1001, 1002, 2000}, got.IDs)
}

func TestImport_RequiresFile(t *testing.T) {
	cmd := &ImportCommand{globals: &GlobalFlags{}}

	err := cmd.Execute(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--file is required")
}

func TestImport_ReplacesExistingSnapshot(t *testing.T) {
	store, _ := setupTestStore(t)
	cmd := &ImportCommand{globals: &GlobalFlags{}}
	ctx := context.Background()

	first := &dataset.Dataset{IDs: []int64{1}, TotalCount: 1, GeneratedAt: time.Now()}
	second := &dataset.Dataset{IDs: []int64{2, 3}, TotalCount: 2, GeneratedAt: time.Now()}

	captureOutput(t, func() {
		require.NoError(t, cmd.executeWithStore(store, first))
		require.NoError(t, cmd.executeWithStore(store, second))
	})

	got, err := store.LoadDataset(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 3}, got.IDs)
}
