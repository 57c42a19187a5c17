// Package ingest extracts candidate keyword tokens from hashtag
// fields and free text, applying synonym canonicalization and
// static + corpus-driven stopword filtering.
package ingest

import (
	"encoding/json"
	"sort"
	"strings"
	"unicode"
)

// Tokenizer normalizes and filters candidate keyword tokens.
type Tokenizer struct {
	stopwords map[string]struct{}
	synonyms  map[string]string
}

// NewTokenizer creates a tokenizer with the given stopword list and
// the default synonym table.
func NewTokenizer(stopwords []string) *Tokenizer {
	t := &Tokenizer{
		stopwords: make(map[string]struct{}, len(stopwords)),
		synonyms:  DefaultSynonyms(),
	}
	for _, w := range stopwords {
		t.stopwords[foldKey(w)] = struct{}{}
	}
	return t
}

// DefaultSynonyms maps frequent spelling variants to canonical forms.
// English acronyms keep canonical casing; Korean canonical forms
// absorb their romanized/abbreviated variants.
func DefaultSynonyms() map[string]string {
	return map[string]string{
		"sme":           "SME",
		"pki":           "PKI",
		"ai":            "AI",
		"ict":           "ICT",
		"bigdata":       "빅데이터",
		"big data":      "빅데이터",
		"e-gp":          "전자조달",
		"egp":           "전자조달",
		"e-procurement": "전자조달",
		"data center":   "데이터센터",
		"cloud":         "클라우드",
		"platform":      "플랫폼",
		"platfrom":      "플랫폼",
		"플렛폼":           "플랫폼",
	}
}

// SetSynonyms replaces the synonym table. Keys are matched against
// the lowercased token.
func (t *Tokenizer) SetSynonyms(syn map[string]string) {
	t.synonyms = syn
}

// AddStopwords extends the active stopword set.
func (t *Tokenizer) AddStopwords(words []string) {
	for _, w := range words {
		t.stopwords[foldKey(w)] = struct{}{}
	}
}

// Clone returns an independent copy; the pipeline clones the shared
// tokenizer before layering per-corpus dynamic stopwords on top.
func (t *Tokenizer) Clone() *Tokenizer {
	c := &Tokenizer{
		stopwords: make(map[string]struct{}, len(t.stopwords)),
		synonyms:  t.synonyms,
	}
	for w := range t.stopwords {
		c.stopwords[w] = struct{}{}
	}
	return c
}

// IsStopword reports whether the token is in the active stopword set.
func (t *Tokenizer) IsStopword(word string) bool {
	_, ok := t.stopwords[foldKey(word)]
	return ok
}

// Norm strips decorative quote/bracket characters, collapses
// whitespace, and applies synonym canonicalization. Display case is
// preserved for tokens without a synonym mapping.
func (t *Tokenizer) Norm(token string) string {
	token = strings.Map(func(r rune) rune {
		switch r {
		case '"', '\'', '’', '‘', '“', '”', '(', ')', '[', ']', '{', '}', '<', '>':
			return -1
		}
		return r
	}, token)
	token = strings.Join(strings.Fields(token), " ")
	if canonical, ok := t.synonyms[strings.ToLower(token)]; ok {
		return canonical
	}
	return token
}

// SplitHashtags parses a hashtag field into a deduplicated, filtered
// token list sorted case-insensitively.
//
// Two encodings occur in the wild: plain delimited strings
// ("조달; 전자정부, PKI") and stringified lists (`["조달", "PKI"]`).
// List decoding is attempted first and falls back to delimiter
// splitting on any parse failure; a malformed field never aborts the
// corpus.
func (t *Tokenizer) SplitHashtags(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	raw := splitListLiteral(s)
	if raw == nil {
		raw = splitDelimited(s)
	}

	seen := make(map[string]struct{})
	var out []string
	for _, piece := range raw {
		tok := t.Norm(piece)
		if !t.keep(tok) {
			continue
		}
		key := foldKey(tok)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, tok)
	}

	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i]) < strings.ToLower(out[j])
	})
	return out
}

// Tokens splits free text on non-alphanumeric boundaries (Hangul
// counts as alphanumeric) and applies the same normalization and
// filtering as SplitHashtags. Duplicates are preserved; callers that
// need document-level presence dedupe themselves.
func (t *Tokenizer) Tokens(text string) []string {
	var out []string
	var current strings.Builder

	flush := func() {
		if current.Len() == 0 {
			return
		}
		tok := t.Norm(current.String())
		current.Reset()
		if t.keep(tok) {
			out = append(out, tok)
		}
	}

	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || r == '-' {
			current.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()
	return out
}

// keep applies the filtering pipeline to a normalized candidate:
// reject if shorter than 2 characters, purely numeric, purely
// punctuation, or in the active stopword set.
func (t *Tokenizer) keep(tok string) bool {
	core := foldKey(tok)
	if core == "" || len([]rune(core)) < 2 {
		return false
	}
	if isNumeric(core) || isPunctOnly(core) {
		return false
	}
	if _, stop := t.stopwords[core]; stop {
		return false
	}
	return true
}

// foldKey is the comparison form of a token: lowercased with all
// internal whitespace removed.
func foldKey(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if !unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// splitListLiteral decodes a stringified list such as
// `["a", "b"]` or `['a', 'b']`. Returns nil when the input is not a
// list literal or fails to decode.
func splitListLiteral(s string) []string {
	if !strings.HasPrefix(s, "[") || !strings.HasSuffix(s, "]") {
		return nil
	}
	var items []string
	if err := json.Unmarshal([]byte(s), &items); err == nil {
		return items
	}
	// Python-style single quotes: retry with quotes swapped.
	swapped := strings.ReplaceAll(s, `"`, "\x00")
	swapped = strings.ReplaceAll(swapped, "'", `"`)
	swapped = strings.ReplaceAll(swapped, "\x00", "'")
	if err := json.Unmarshal([]byte(swapped), &items); err == nil {
		return items
	}
	return nil
}

// splitDelimited splits on the delimiters seen in hashtag fields:
// comma, semicolon, slash, and runs of two or more spaces.
func splitDelimited(s string) []string {
	var out []string
	for _, part := range strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ';' || r == '/'
	}) {
		for _, piece := range strings.Split(part, "  ") {
			if piece = strings.TrimSpace(piece); piece != "" {
				out = append(out, piece)
			}
		}
	}
	return out
}

func isNumeric(s string) bool {
	dot := false
	for i, r := range s {
		if r == '.' && !dot && i > 0 {
			dot = true
			continue
		}
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

func isPunctOnly(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			return false
		}
	}
	return true
}
