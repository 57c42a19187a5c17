// Package timeline explodes multi-year records into per-year
// observations and aggregates per-year document and keyword counts.
package timeline

import (
	"github.com/cognicore/ksptrend/pkg/ksptrend/record"
	"github.com/cognicore/ksptrend/pkg/ksptrend/yearspan"
)

// Row is one (record, year) pair. A record spanning three years
// yields three rows; it still counts as one document for any
// non-temporal aggregate.
type Row struct {
	Record record.Record
	Year   int
}

// Expand computes each record's year span and emits one row per
// (record, year) pair. Records with unparsable year text contribute
// nothing; they are dropped, not zero-filled.
func Expand(records []record.Record, cfg yearspan.Config) []Row {
	var out []Row
	for _, r := range records {
		for _, y := range yearspan.Parse(r.YearText, cfg) {
			out = append(out, Row{Record: r, Year: y})
		}
	}
	return out
}

// Index holds the per-year aggregates the trend engine consumes.
// Years is the full contiguous range observed in the corpus: years
// with zero documents still appear, zero-filled.
type Index struct {
	Years       []int
	DocsPerYear map[int]int
	// Keywords maps year → token → number of documents assigned to
	// that year containing the token (document-level deduplication:
	// once per document per year, not once per occurrence).
	Keywords map[int]map[string]int
}

// Empty reports whether no usable years were found.
func (ix Index) Empty() bool { return len(ix.Years) == 0 }

// Docs returns the document count for a year (0 for gap years).
func (ix Index) Docs(year int) int { return ix.DocsPerYear[year] }

// Count returns the per-year document count for a token.
func (ix Index) Count(year int, token string) int {
	return ix.Keywords[year][token]
}

// Tokens returns the deduplicated set of tokens observed in any year.
func (ix Index) Tokens() []string {
	seen := make(map[string]struct{})
	for _, kw := range ix.Keywords {
		for tok := range kw {
			seen[tok] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for tok := range seen {
		out = append(out, tok)
	}
	return out
}

// Build aggregates records and their per-document token sets into an
// Index. tokens[i] is the token set for records[i]; duplicates within
// a document are collapsed before counting. The two slices are
// matched positionally and the shorter length wins, so a partially
// tokenized corpus degrades instead of panicking.
func Build(records []record.Record, tokens [][]string, cfg yearspan.Config) Index {
	n := len(records)
	if len(tokens) < n {
		n = len(tokens)
	}

	spans := make([][]int, n)
	minYear, maxYear := 0, 0
	for i := 0; i < n; i++ {
		spans[i] = yearspan.Parse(records[i].YearText, cfg)
		for _, y := range spans[i] {
			if minYear == 0 || y < minYear {
				minYear = y
			}
			if y > maxYear {
				maxYear = y
			}
		}
	}
	if minYear == 0 {
		return Index{DocsPerYear: map[int]int{}, Keywords: map[int]map[string]int{}}
	}

	ix := Index{
		Years:       make([]int, 0, maxYear-minYear+1),
		DocsPerYear: make(map[int]int),
		Keywords:    make(map[int]map[string]int),
	}
	for y := minYear; y <= maxYear; y++ {
		ix.Years = append(ix.Years, y)
		ix.DocsPerYear[y] = 0
		ix.Keywords[y] = make(map[string]int)
	}

	for i := 0; i < n; i++ {
		if len(spans[i]) == 0 {
			continue
		}
		unique := make(map[string]struct{}, len(tokens[i]))
		for _, tok := range tokens[i] {
			if tok != "" {
				unique[tok] = struct{}{}
			}
		}
		for _, y := range spans[i] {
			ix.DocsPerYear[y]++
			for tok := range unique {
				ix.Keywords[y][tok]++
			}
		}
	}
	return ix
}
