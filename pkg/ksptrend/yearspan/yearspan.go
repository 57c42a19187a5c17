// Package yearspan parses heterogeneous year/date-range text into
// bounded sets of calendar years.
//
// Source records carry a free-text year field ("2025~2026", "2024",
// "2019-2021 (2차)", ...). Parsing never fails: unusable input yields
// an empty span and the record is simply excluded from temporal
// aggregates downstream.
package yearspan

import (
	"regexp"
	"sort"
	"strings"
)

// Config bounds year extraction.
type Config struct {
	// MinYear and MaxYear define the plausible calendar range.
	// Years outside the range are treated as noise.
	MinYear int
	MaxYear int

	// MaxSpan is the widest believable year range for a single record.
	// A parsed span wider than this collapses to its minimum year,
	// guarding against OCR/typo artifacts that produce century-scale
	// bogus ranges. Tunable, not sacred.
	MaxSpan int
}

// DefaultConfig returns the bounds used for the KSP corpus.
func DefaultConfig() Config {
	return Config{MinYear: 1990, MaxYear: 2035, MaxSpan: 30}
}

var rangeRE = regexp.MustCompile(`(\d{4})\s*-\s*(\d{4})`)

// Parse extracts an ascending, deduplicated list of years from text.
//
// Range-separator glyphs (~, en dash, em dash) are normalized to "-",
// parentheses are stripped, and explicit YYYY-YYYY patterns are
// expanded to the full inclusive range regardless of order. Returns
// nil when nothing usable is found; never returns an error.
func Parse(text string, cfg Config) []int {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	t := normalize(text)

	seen := make(map[int]struct{})

	// Explicit ranges first: min/max normalized, clamped to the
	// plausible window before expansion.
	for _, m := range rangeRE.FindAllStringSubmatch(t, -1) {
		lo, hi := atoi4(m[1]), atoi4(m[2])
		if hi < lo {
			lo, hi = hi, lo
		}
		if hi < cfg.MinYear || lo > cfg.MaxYear {
			continue
		}
		if lo < cfg.MinYear {
			lo = cfg.MinYear
		}
		if hi > cfg.MaxYear {
			hi = cfg.MaxYear
		}
		for y := lo; y <= hi; y++ {
			seen[y] = struct{}{}
		}
	}

	// Standalone 4-digit tokens.
	for _, y := range digitRuns(t) {
		if y >= cfg.MinYear && y <= cfg.MaxYear {
			seen[y] = struct{}{}
		}
	}

	if len(seen) == 0 {
		return nil
	}

	years := make([]int, 0, len(seen))
	for y := range seen {
		years = append(years, y)
	}
	sort.Ints(years)

	if years[len(years)-1]-years[0] > cfg.MaxSpan {
		return []int{years[0]}
	}
	return years
}

// Single wraps a numeric year value as a one-element span, applying
// the same plausibility bounds as Parse.
func Single(year int, cfg Config) []int {
	if year < cfg.MinYear || year > cfg.MaxYear {
		return nil
	}
	return []int{year}
}

func normalize(s string) string {
	r := strings.NewReplacer("~", "-", "–", "-", "—", "-", "(", " ", ")", " ")
	return r.Replace(s)
}

// digitRuns returns every maximal run of digits of exactly length 4
// as an integer. Longer runs (e.g. "201920") are ignored as noise.
func digitRuns(s string) []int {
	var out []int
	run := 0
	val := 0
	flush := func() {
		if run == 4 {
			out = append(out, val)
		}
		run, val = 0, 0
	}
	for _, r := range s {
		if r >= '0' && r <= '9' {
			run++
			val = val*10 + int(r-'0')
		} else {
			flush()
		}
	}
	flush()
	return out
}

func atoi4(s string) int {
	v := 0
	for _, r := range s {
		v = v*10 + int(r-'0')
	}
	return v
}
