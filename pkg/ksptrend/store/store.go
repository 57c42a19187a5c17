// Package store defines the record-source boundary. The engine never
// persists derived trends; stores hold raw records only, and every
// analysis run recomputes from scratch.
package store

import (
	"context"

	"github.com/cognicore/ksptrend/pkg/ksptrend/record"
)

// Store is the interface for persisting and listing corpus records.
type Store interface {
	Close() error

	UpsertRecord(ctx context.Context, r record.Record) error
	GetRecord(ctx context.Context, id string) (record.Record, error)
	ListRecords(ctx context.Context) ([]record.Record, error)
	CountRecords(ctx context.Context) (int64, error)
}
