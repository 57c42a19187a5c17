// Package loader reads corpus CSV exports into records. Ingestion is
// a boundary concern: the engine only ever sees materialized records.
package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/cognicore/ksptrend/pkg/ksptrend/record"
)

// LoadCSV reads a CSV file with a header row into records using the
// default column mapping. Variant column names are resolved through
// the alias chains; missing columns degrade to empty fields.
func LoadCSV(path string) ([]record.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadCSV(f)
}

// ReadCSV reads CSV content from r into records.
func ReadCSV(r io.Reader) ([]record.Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // ragged rows happen; tolerate them

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	var rows [][]string
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		rows = append(rows, row)
	}

	table := record.NewTable(len(rows))
	for col, name := range header {
		values := make([]string, len(rows))
		for i, row := range rows {
			if col < len(row) {
				values[i] = row[col]
			}
		}
		table.AddColumn(name, values)
	}

	return table.Records(record.DefaultMapping()), nil
}
