package session

import (
	"errors"
	"sync"

	"github.com/runnerr0/idcheck/internal/catalog"
)

// Mode selects how raw query input is split into tokens.
type Mode int

const (
	// Single treats the whole trimmed input as one token.
	Single Mode = iota
	// Bulk splits the input on newlines, trims each line, and drops lines
	// that become empty.
	Bulk
)

// ErrEmptyInput is returned by Search when the input yields no valid
// identifiers after normalization. The session statistics are left
// unchanged; the caller should re-prompt.
var ErrEmptyInput = errors.New("no valid identifiers in input")

// Result is the outcome of one identifier lookup.
type Result struct {
	ID    int64 `json:"id"`
	Found bool  `json:"found"`
}

// Stats is a snapshot of the session's cumulative counters plus the declared
// size of the bound catalog.
type Stats struct {
	TotalCount    int `json:"total_count"`
	FoundCount    int `json:"found_count"`
	NotFoundCount int `json:"not_found_count"`
}

// Session binds a catalog to running found/not-found counters. Counters only
// grow: every valid identifier submitted through Search is counted exactly
// once, and nothing resets them short of discarding the session.
//
// Search may be called from multiple goroutines; counter updates are
// serialized internally and applied per batch, all or nothing.
type Session struct {
	catalog *catalog.Catalog

	mu            sync.Mutex
	foundCount    int
	notFoundCount int
}

// New creates a Session bound to cat. The session shares the catalog and
// never mutates it.
func New(cat *catalog.Catalog) *Session {
	return &Session{catalog: cat}
}

// Search parses rawInput according to mode, tests each valid identifier
// against the catalog, and updates the cumulative counters by the batch's
// found/not-found tallies. Results come back in input order; duplicate
// identifiers in the input produce duplicate results, each counted.
//
// Tokens that contain no parseable integer are dropped silently. If nothing
// survives parsing, Search returns ErrEmptyInput and the counters stay
// untouched.
func (s *Session) Search(rawInput string, mode Mode) ([]Result, error) {
	ids := extractIdentifiers(rawInput, mode)
	if len(ids) == 0 {
		return nil, ErrEmptyInput
	}

	results := make([]Result, len(ids))
	found := 0
	for i, id := range ids {
		ok := s.catalog.Contains(id)
		results[i] = Result{ID: id, Found: ok}
		if ok {
			found++
		}
	}

	s.mu.Lock()
	s.foundCount += found
	s.notFoundCount += len(ids) - found
	s.mu.Unlock()

	return results, nil
}

// Stats returns a snapshot of the cumulative counters. Safe to call at any
// time, including concurrently with Search.
func (s *Session) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Stats{
		TotalCount:    s.catalog.Size(),
		FoundCount:    s.foundCount,
		NotFoundCount: s.notFoundCount,
	}
}
