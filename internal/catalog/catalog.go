package catalog

import (
	"fmt"
	"time"
)

// DataFormatError reports malformed or inconsistent reference data. It is
// fatal to session start: callers surface it and do not retry.
type DataFormatError struct {
	Reason string
}

func (e *DataFormatError) Error() string {
	return fmt.Sprintf("invalid reference data: %s", e.Reason)
}

// Catalog is the immutable membership index over reference identifiers.
// It is built once from an externally loaded dataset and never mutated
// afterwards, so it is safe to share across any number of concurrent readers.
type Catalog struct {
	identifiers map[int64]struct{}
	totalCount  int
	generatedAt time.Time
}

// New builds a Catalog from a sequence of identifiers. Duplicates collapse
// silently (set semantics). totalCount is the size declared by the source
// dataset; it may legitimately differ from the number of distinct
// identifiers and a negative value is rejected with a DataFormatError.
func New(ids []int64, totalCount int, generatedAt time.Time) (*Catalog, error) {
	if totalCount < 0 {
		return nil, &DataFormatError{Reason: fmt.Sprintf("negative total count %d", totalCount)}
	}

	set := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}

	return &Catalog{
		identifiers: set,
		totalCount:  totalCount,
		generatedAt: generatedAt,
	}, nil
}

// Contains reports whether id is part of the reference dataset.
func (c *Catalog) Contains(id int64) bool {
	_, ok := c.identifiers[id]
	return ok
}

// Size returns the total count declared by the source dataset. This is the
// display value; it is not necessarily len(identifiers).
func (c *Catalog) Size() int {
	return c.totalCount
}

// GeneratedAt returns the timestamp at which the reference dataset was produced.
func (c *Catalog) GeneratedAt() time.Time {
	return c.generatedAt
}
