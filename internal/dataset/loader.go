package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/runnerr0/idcheck/internal/catalog"
)

// datasetJSON is the wire shape of a snapshot file.
type datasetJSON struct {
	IDs         []int64 `json:"ids"`
	TotalCount  *int    `json:"total_count"`
	GeneratedAt string  `json:"generated_at"`
}

// LoadFile reads and decodes a JSON snapshot file. Malformed JSON, missing
// fields, and unparseable timestamps all surface as catalog.DataFormatError;
// the loader never retries.
func LoadFile(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading dataset file: %w", err)
	}
	return Decode(data)
}

// Decode parses raw JSON snapshot bytes into a Dataset.
func Decode(data []byte) (*Dataset, error) {
	var raw datasetJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &catalog.DataFormatError{Reason: fmt.Sprintf("malformed JSON: %v", err)}
	}

	if raw.IDs == nil {
		return nil, &catalog.DataFormatError{Reason: "missing ids field"}
	}
	if raw.TotalCount == nil {
		return nil, &catalog.DataFormatError{Reason: "missing total_count field"}
	}
	if raw.GeneratedAt == "" {
		return nil, &catalog.DataFormatError{Reason: "missing generated_at field"}
	}

	generatedAt, err := parseTimestamp(raw.GeneratedAt)
	if err != nil {
		return nil, &catalog.DataFormatError{Reason: fmt.Sprintf("bad generated_at: %v", err)}
	}

	return &Dataset{
		IDs:         raw.IDs,
		TotalCount:  *raw.TotalCount,
		GeneratedAt: generatedAt,
	}, nil
}

// Catalog builds the in-memory membership index from the snapshot.
func (d *Dataset) Catalog() (*catalog.Catalog, error) {
	return catalog.New(d.IDs, d.TotalCount, d.GeneratedAt)
}

// parseTimestamp tries the timestamp formats seen in snapshot files and in
// SQLite DATETIME columns.
func parseTimestamp(s string) (time.Time, error) {
	formats := []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02T15:04:05Z",
		"2006-01-02 15:04:05",
	}
	for _, f := range formats {
		if t, err := time.Parse(f, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse timestamp: %s", s)
}
