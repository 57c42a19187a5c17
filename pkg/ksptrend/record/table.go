package record

import "strings"

// Table is a column-oriented view of a loaded spreadsheet. Column
// names vary wildly between corpus exports, so every lookup goes
// through ResolveColumn with a chain of known aliases instead of
// assuming canonical names exist.
type Table struct {
	names   []string
	columns map[string][]string
	rows    int
}

// NewTable creates an empty table with the given row count.
func NewTable(rows int) *Table {
	return &Table{columns: make(map[string][]string), rows: rows}
}

// AddColumn registers a column. A duplicate name keeps the first
// occurrence; a wrong-length column is padded or truncated to the row
// count. Neither is an error: malformed exports must not abort the
// session.
func (t *Table) AddColumn(name string, values []string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	if _, ok := t.columns[name]; ok {
		return
	}
	col := make([]string, t.rows)
	copy(col, values)
	t.columns[name] = col
	t.names = append(t.names, name)
}

// Len returns the number of rows.
func (t *Table) Len() int { return t.rows }

// Names returns the column names in insertion order.
func (t *Table) Names() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}

// Column returns the values of a column by exact name.
func (t *Table) Column(name string) ([]string, bool) {
	col, ok := t.columns[name]
	return col, ok
}

// ResolveColumn returns the first present column among the canonical
// name and its aliases. Matching ignores surrounding whitespace and
// case for ASCII names. The second result is false when none exist;
// callers fall back to an empty series rather than failing.
func (t *Table) ResolveColumn(canonical string, aliases ...string) ([]string, bool) {
	for _, name := range append([]string{canonical}, aliases...) {
		if col, ok := t.columns[name]; ok {
			return col, true
		}
		want := strings.ToLower(strings.TrimSpace(name))
		for _, have := range t.names {
			if strings.ToLower(strings.TrimSpace(have)) == want {
				return t.columns[have], true
			}
		}
	}
	return nil, false
}

// ColumnMapping names the logical fields of a Record and the known
// column-name variants for each.
type ColumnMapping struct {
	ID       []string
	Summary  []string
	Content  []string
	Hashtags []string
	Topic    []string
	ICTClass []string
	Country  []string
	YearText []string
	Agency   []string
	Sponsor  []string
}

// DefaultMapping covers the column names seen across KSP corpus
// exports, Korean canonical names first.
func DefaultMapping() ColumnMapping {
	return ColumnMapping{
		ID:       []string{"파일명", "filename", "file"},
		Summary:  []string{"요약", "summary"},
		Content:  []string{"주요 내용", "주요내용", "content"},
		Hashtags: []string{"Hashtag", "Hashtag_str", "해시태그", "hashtags"},
		Topic:    []string{"주제분류(대)", "주제분류", "topic"},
		ICTClass: []string{"ICT 유형", "ICT유형", "WB", "ict_class"},
		Country:  []string{"대상국", "국가", "country"},
		YearText: []string{"연도", "년도", "year"},
		Agency:   []string{"대상기관", "agency"},
		Sponsor:  []string{"지원기관", "sponsor"},
	}
}

// Records materializes the table into Record values using the given
// mapping. Missing columns degrade to empty fields.
func (t *Table) Records(m ColumnMapping) []Record {
	field := func(names []string) []string {
		if len(names) == 0 {
			return nil
		}
		col, ok := t.ResolveColumn(names[0], names[1:]...)
		if !ok {
			return nil
		}
		return col
	}

	at := func(col []string, i int) string {
		if i < len(col) {
			return strings.TrimSpace(col[i])
		}
		return ""
	}

	id := field(m.ID)
	summary := field(m.Summary)
	content := field(m.Content)
	hashtags := field(m.Hashtags)
	topic := field(m.Topic)
	ict := field(m.ICTClass)
	country := field(m.Country)
	year := field(m.YearText)
	agency := field(m.Agency)
	sponsor := field(m.Sponsor)

	out := make([]Record, t.rows)
	for i := range out {
		out[i] = Record{
			ID:       at(id, i),
			Summary:  at(summary, i),
			Content:  at(content, i),
			Hashtags: at(hashtags, i),
			Topic:    at(topic, i),
			ICTClass: at(ict, i),
			Country:  at(country, i),
			YearText: at(year, i),
			Agency:   at(agency, i),
			Sponsor:  at(sponsor, i),
		}
	}
	return out
}
