package dataset

import "time"

// Dataset is a fully materialized reference snapshot as delivered by the
// external transport: the identifier list, the size the producer declared,
// and the time the snapshot was generated.
type Dataset struct {
	IDs         []int64
	TotalCount  int
	GeneratedAt time.Time
}

// SnapshotInfo describes the snapshot currently held in the local cache.
type SnapshotInfo struct {
	TotalCount  int
	StoredIDs   int64
	GeneratedAt time.Time
	ImportedAt  time.Time
}
