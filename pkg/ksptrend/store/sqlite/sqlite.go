// Package sqlite implements the record store on SQLite.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/cognicore/ksptrend/pkg/ksptrend/internalerr"
	"github.com/cognicore/ksptrend/pkg/ksptrend/record"
	"github.com/cognicore/ksptrend/pkg/ksptrend/store"
)

type sqliteStore struct {
	db *sql.DB
}

// Open opens a SQLite database with WAL mode enabled and initializes
// the schema.
func Open(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

// Close closes the database connection.
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS records (
	id TEXT PRIMARY KEY,
	summary TEXT,
	content TEXT,
	hashtags TEXT,
	topic TEXT,
	ict_class TEXT,
	country TEXT,
	year_text TEXT,
	agency TEXT,
	sponsor TEXT
);

CREATE INDEX IF NOT EXISTS idx_records_topic ON records(topic);
CREATE INDEX IF NOT EXISTS idx_records_ict ON records(ict_class);
CREATE INDEX IF NOT EXISTS idx_records_country ON records(country);
`
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("init schema: %w", err)
	}
	return nil
}

// UpsertRecord inserts or replaces a record, keyed by ID.
func (s *sqliteStore) UpsertRecord(ctx context.Context, r record.Record) error {
	if r.ID == "" {
		return internalerr.ErrInvalidInput
	}
	_, err := s.db.ExecContext(ctx, `
INSERT INTO records (id, summary, content, hashtags, topic, ict_class, country, year_text, agency, sponsor)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
	summary=excluded.summary, content=excluded.content,
	hashtags=excluded.hashtags, topic=excluded.topic,
	ict_class=excluded.ict_class, country=excluded.country,
	year_text=excluded.year_text, agency=excluded.agency,
	sponsor=excluded.sponsor`,
		r.ID, r.Summary, r.Content, r.Hashtags, r.Topic,
		r.ICTClass, r.Country, r.YearText, r.Agency, r.Sponsor)
	return err
}

// GetRecord returns a record by ID.
func (s *sqliteStore) GetRecord(ctx context.Context, id string) (record.Record, error) {
	row := s.db.QueryRowContext(ctx, `
SELECT id, summary, content, hashtags, topic, ict_class, country, year_text, agency, sponsor
FROM records WHERE id = ?`, id)

	var r record.Record
	err := row.Scan(&r.ID, &r.Summary, &r.Content, &r.Hashtags, &r.Topic,
		&r.ICTClass, &r.Country, &r.YearText, &r.Agency, &r.Sponsor)
	if errors.Is(err, sql.ErrNoRows) {
		return record.Record{}, internalerr.ErrNotFound
	}
	if err != nil {
		return record.Record{}, err
	}
	return r, nil
}

// ListRecords returns all records in ID order.
func (s *sqliteStore) ListRecords(ctx context.Context) ([]record.Record, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT id, summary, content, hashtags, topic, ict_class, country, year_text, agency, sponsor
FROM records ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []record.Record
	for rows.Next() {
		var r record.Record
		if err := rows.Scan(&r.ID, &r.Summary, &r.Content, &r.Hashtags, &r.Topic,
			&r.ICTClass, &r.Country, &r.YearText, &r.Agency, &r.Sponsor); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// CountRecords returns the number of stored records.
func (s *sqliteStore) CountRecords(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM records`).Scan(&n)
	return n, err
}
