// Package excerpt samples illustrative sentences for a keyword from
// record text. It is a thin search utility over the same text fields
// the tokenizer consumes; sampling is explicitly seeded so repeated
// runs over the same corpus return the same excerpts.
package excerpt

import (
	"math/rand"
	"strings"

	"github.com/cognicore/ksptrend/pkg/ksptrend/record"
)

// Excerpt is one sampled sentence with its source record.
type Excerpt struct {
	RecordID string
	Sentence string
}

// Sampler draws deterministic sentence samples.
type Sampler struct {
	seed int64
}

// NewSampler creates a sampler with a fixed seed.
func NewSampler(seed int64) *Sampler {
	return &Sampler{seed: seed}
}

// Sample returns up to n sentences containing the keyword
// (case-insensitive), in corpus order. When more than n sentences
// match, a seeded random subset is taken, so the result is stable for
// a given corpus, keyword, and seed.
func (s *Sampler) Sample(records []record.Record, keyword string, n int) []Excerpt {
	keyword = strings.ToLower(strings.TrimSpace(keyword))
	if keyword == "" || n <= 0 {
		return nil
	}

	var matches []Excerpt
	for _, r := range records {
		for _, sent := range SplitSentences(r.Text()) {
			if strings.Contains(strings.ToLower(sent), keyword) {
				matches = append(matches, Excerpt{RecordID: r.ID, Sentence: sent})
			}
		}
	}
	if len(matches) <= n {
		return matches
	}

	rng := rand.New(rand.NewSource(s.seed))
	picked := rng.Perm(len(matches))[:n]
	keep := make(map[int]struct{}, n)
	for _, i := range picked {
		keep[i] = struct{}{}
	}

	out := make([]Excerpt, 0, n)
	for i, m := range matches {
		if _, ok := keep[i]; ok {
			out = append(out, m)
		}
	}
	return out
}

// SplitSentences splits text on sentence-final punctuation, covering
// both Latin and CJK terminators. Fragments shorter than 5 characters
// are dropped.
func SplitSentences(text string) []string {
	var out []string
	var current strings.Builder
	flush := func() {
		sent := strings.TrimSpace(current.String())
		current.Reset()
		if len([]rune(sent)) >= 5 {
			out = append(out, sent)
		}
	}
	for _, r := range text {
		switch r {
		case '.', '!', '?', '。', '！', '？', '\n':
			flush()
		default:
			current.WriteRune(r)
		}
	}
	flush()
	return out
}
