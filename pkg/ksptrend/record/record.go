// Package record defines the source document model and a defensive
// tabular view over heterogeneous real-world spreadsheets.
package record

// Record is one source document. It is immutable once loaded: the
// analysis pipeline only ever reads it.
type Record struct {
	ID       string // unique identifier (filename)
	Summary  string // free-text summary
	Content  string // main content text
	Hashtags string // delimited or list-encoded hashtag string
	Topic    string // topic classification label
	ICTClass string // ICT classification label
	Country  string // target-country text
	YearText string // year/date-span text
	Agency   string // target institution (optional)
	Sponsor  string // supporting institution (optional)
}

// Text concatenates the free-text fields for full-text matching.
func (r Record) Text() string {
	out := r.Summary
	if r.Content != "" {
		if out != "" {
			out += " "
		}
		out += r.Content
	}
	return out
}
