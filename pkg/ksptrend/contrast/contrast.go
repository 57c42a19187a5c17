// Package contrast ranks class-distinguishing terms against a
// background corpus: TF log-ratio × IDF base scoring, log-odds
// significance re-ranking, and diversity-aware (MMR) selection.
package contrast

import (
	"math"
	"sort"
	"strings"
)

// Doc is a tokenized document on either side of the contrast.
type Doc struct {
	ID     string
	Tokens []string
}

// Keyword is a ranked term with its score and display form.
type Keyword struct {
	Term    string
	Display string
	Score   float64
}

// Config holds the extractor's tuned constants.
type Config struct {
	// Epsilon guards the TF log-ratio against zero frequencies.
	Epsilon float64

	// MaxNGram is the longest phrase generated from token sequences.
	MaxNGram int

	// Additive bonuses on the base score. Unigrams get none here;
	// the re-rank stage penalizes them instead.
	BigramBonus  float64
	TrigramBonus float64

	// Re-rank stage weights.
	LiftWeight    float64 // ln of document-presence lift
	LogOddsWeight float64 // log-odds z-score
	BaseWeight    float64 // residual weight on the original score
	LogOddsAlpha  float64 // Jeffreys smoothing on the 2×2 table

	// Re-rank n-gram adjustment.
	UnigramPenalty float64
	RerankBigram   float64
	RerankTrigram  float64

	// MMR selection.
	MMRLambda float64
}

// DefaultConfig returns the tuned extractor constants.
func DefaultConfig() Config {
	return Config{
		Epsilon:        1e-6,
		MaxNGram:       3,
		BigramBonus:    0.10,
		TrigramBonus:   0.20,
		LiftWeight:     0.65,
		LogOddsWeight:  0.35,
		BaseWeight:     0.03,
		LogOddsAlpha:   0.5,
		UnigramPenalty: -0.25,
		RerankBigram:   0.10,
		RerankTrigram:  0.15,
		MMRLambda:      0.65,
	}
}

// corpusStats aggregates term counts on one side of the contrast.
type corpusStats struct {
	termCount   map[string]int // occurrences across the side
	docPresence map[string]int // documents containing the term
	totalTokens int
	nDocs       int
}

func collect(docs []Doc, maxN int) corpusStats {
	st := corpusStats{
		termCount:   make(map[string]int),
		docPresence: make(map[string]int),
		nDocs:       len(docs),
	}
	for _, d := range docs {
		st.totalTokens += len(d.Tokens)
		seen := make(map[string]struct{})
		for _, term := range ngrams(d.Tokens, maxN) {
			st.termCount[term]++
			seen[term] = struct{}{}
		}
		for term := range seen {
			st.docPresence[term]++
		}
	}
	return st
}

// ngrams emits all 1..maxN-grams of the token sequence, joined by
// single spaces.
func ngrams(tokens []string, maxN int) []string {
	var out []string
	for n := 1; n <= maxN; n++ {
		for i := 0; i+n <= len(tokens); i++ {
			out = append(out, strings.Join(tokens[i:i+n], " "))
		}
	}
	return out
}

func wordCount(term string) int {
	return len(strings.Fields(term))
}

// Extract scores terms of the class corpus against the background.
//
// Base score per term: ln((tf_class+ε)/(tf_background+ε)) × ln(1 +
// N_docs/df), plus the n-gram bonus. After the score-descending sort,
// any candidate that is a substring or superstring of an
// already-selected higher-ranked candidate is dropped, and
// English-alphanumeric display forms are uppercased.
func Extract(classDocs, backgroundDocs []Doc, topN int, cfg Config) []Keyword {
	if topN <= 0 || len(classDocs) == 0 {
		return nil
	}

	cls := collect(classDocs, cfg.MaxNGram)
	bg := collect(backgroundDocs, cfg.MaxNGram)
	nDocs := cls.nDocs + bg.nDocs

	scored := make([]Keyword, 0, len(cls.termCount))
	for term, count := range cls.termCount {
		tfClass := tf(count, cls.totalTokens)
		tfBg := tf(bg.termCount[term], bg.totalTokens)
		liftLog := math.Log((tfClass + cfg.Epsilon) / (tfBg + cfg.Epsilon))

		df := cls.docPresence[term] + bg.docPresence[term]
		idf := math.Log(1 + float64(nDocs)/float64(df))

		score := liftLog * idf
		switch wordCount(term) {
		case 1:
		case 2:
			score += cfg.BigramBonus
		default:
			score += cfg.TrigramBonus
		}

		scored = append(scored, Keyword{Term: term, Display: displayForm(term), Score: score})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].Term < scored[j].Term
	})

	return dedupeSubstrings(scored, topN)
}

// dedupeSubstrings keeps at most topN candidates, dropping any term
// that contains or is contained by a higher-ranked survivor. Prevents
// "전자" and "전자조달" from both appearing.
func dedupeSubstrings(scored []Keyword, topN int) []Keyword {
	var out []Keyword
	for _, kw := range scored {
		redundant := false
		for _, sel := range out {
			if strings.Contains(sel.Term, kw.Term) || strings.Contains(kw.Term, sel.Term) {
				redundant = true
				break
			}
		}
		if redundant {
			continue
		}
		out = append(out, kw)
		if len(out) >= topN {
			break
		}
	}
	return out
}

// displayForm uppercases terms made only of ASCII alphanumerics,
// spaces, and hyphens — the convention that marks acronyms in the
// dashboard.
func displayForm(term string) string {
	for _, r := range term {
		ascii := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
			(r >= '0' && r <= '9') || r == ' ' || r == '-'
		if !ascii {
			return term
		}
	}
	return strings.ToUpper(term)
}

func tf(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(count) / float64(total)
}
