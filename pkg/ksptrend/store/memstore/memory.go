// Package memstore is an in-memory implementation of store.Store for
// tests and one-shot CLI runs.
package memstore

import (
	"context"
	"sort"
	"sync"

	"github.com/cognicore/ksptrend/pkg/ksptrend/internalerr"
	"github.com/cognicore/ksptrend/pkg/ksptrend/record"
)

// Store is an in-memory record store.
type Store struct {
	mu      sync.RWMutex
	records map[string]record.Record
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{records: make(map[string]record.Record)}
}

// Close implements store.Store.
func (s *Store) Close() error { return nil }

// UpsertRecord inserts or replaces a record, keyed by ID.
func (s *Store) UpsertRecord(ctx context.Context, r record.Record) error {
	if r.ID == "" {
		return internalerr.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[r.ID] = r
	return nil
}

// GetRecord returns a record by ID.
func (s *Store) GetRecord(ctx context.Context, id string) (record.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if r, ok := s.records[id]; ok {
		return r, nil
	}
	return record.Record{}, internalerr.ErrNotFound
}

// ListRecords returns all records in ID order.
func (s *Store) ListRecords(ctx context.Context) ([]record.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]record.Record, 0, len(s.records))
	for _, r := range s.records {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// CountRecords returns the number of stored records.
func (s *Store) CountRecords(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.records)), nil
}
