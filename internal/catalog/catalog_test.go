package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_MembershipCorrectness(t *testing.T) {
	ids := []int64{1001, 1002, 2000}
	cat, err := New(ids, 3, time.Now())
	require.NoError(t, err)

	for _, id := range ids {
		assert.True(t, cat.Contains(id), "id %d should be present", id)
	}

	assert.False(t, cat.Contains(1500))
	assert.False(t, cat.Contains(0))
	assert.False(t, cat.Contains(-1001))
}

func TestNew_DuplicatesCollapse(t *testing.T) {
	cat, err := New([]int64{7, 7, 7, 8}, 4, time.Now())
	require.NoError(t, err)

	assert.True(t, cat.Contains(7))
	assert.True(t, cat.Contains(8))
	// Declared size is untouched by collapsing.
	assert.Equal(t, 4, cat.Size())
}

func TestNew_EmptyIDs(t *testing.T) {
	cat, err := New(nil, 0, time.Now())
	require.NoError(t, err)

	assert.False(t, cat.Contains(1))
	assert.Equal(t, 0, cat.Size())
}

func TestNew_NegativeTotalCount(t *testing.T) {
	_, err := New([]int64{1}, -1, time.Now())
	require.Error(t, err)

	var dfe *DataFormatError
	assert.ErrorAs(t, err, &dfe)
}

func TestSize_ReturnsDeclaredCount(t *testing.T) {
	// Declared size may legitimately diverge from the distinct-id count.
	cat, err := New([]int64{1, 2, 3}, 10, time.Now())
	require.NoError(t, err)

	assert.Equal(t, 10, cat.Size())
}

func TestGeneratedAt(t *testing.T) {
	ts := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	cat, err := New([]int64{1}, 1, ts)
	require.NoError(t, err)

	assert.Equal(t, ts, cat.GeneratedAt())
}
