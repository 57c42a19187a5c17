package trend

import (
	"sort"
	"strings"

	"github.com/cognicore/ksptrend/pkg/ksptrend/timeline"
)

// EnsureTopK selects a candidate pool of up to needK tokens.
//
// Selection order: (1) tokens meeting the base cutoffs (MinDocsBase
// docs over MinYearsBase years), (2) tokens meeting the relaxed
// recent-window cutoffs, (3) a recency/variance ranking over
// everything else. The pool is filled stage by stage until needK is
// reached, preserving a deterministic order throughout.
func EnsureTopK(pool []string, needK int, ix timeline.Index, p Params) []string {
	if needK <= 0 || ix.Empty() {
		return nil
	}

	years := ix.Years
	recent := tailYears(years, p.RecentYears)

	countFor := func(tok string, yrs []int) (docs, yearsHit int) {
		for _, y := range yrs {
			c := ix.Count(y, tok)
			docs += c
			if c > 0 {
				yearsHit++
			}
		}
		return docs, yearsHit
	}

	sorted := append([]string(nil), pool...)
	sort.Slice(sorted, func(i, j int) bool {
		return strings.ToLower(sorted[i]) < strings.ToLower(sorted[j])
	})

	var baseOK, recentOK []string
	for _, tok := range sorted {
		if d, yh := countFor(tok, years); d >= p.MinDocsBase && yh >= p.MinYearsBase {
			baseOK = append(baseOK, tok)
		}
		if d, yh := countFor(tok, recent); d >= p.RecentDocsMin && yh >= p.RecentYearsMin {
			recentOK = append(recentOK, tok)
		}
	}

	ranked := rankByRecency(sorted, years, recent, ix)

	out := make([]string, 0, needK)
	seen := make(map[string]struct{})
	add := func(toks []string) {
		for _, tok := range toks {
			if len(out) >= needK {
				return
			}
			if _, dup := seen[tok]; dup {
				continue
			}
			seen[tok] = struct{}{}
			out = append(out, tok)
		}
	}

	add(baseOK)
	if len(out) < needK {
		add(recentOK)
	}
	if len(out) < needK {
		add(ranked)
	}
	return out
}

// rankByRecency orders tokens by (recent hit count, recent year
// count, variance of yearly presence) descending, with a stable
// case-insensitive tiebreak.
func rankByRecency(tokens []string, years, recent []int, ix timeline.Index) []string {
	type stat struct {
		tok   string
		hits  int
		yrs   int
		vari  float64
	}

	stats := make([]stat, 0, len(tokens))
	for _, tok := range tokens {
		s := stat{tok: tok}
		for _, y := range recent {
			c := ix.Count(y, tok)
			s.hits += c
			if c > 0 {
				s.yrs++
			}
		}
		s.vari = presenceVariance(tok, years, ix)
		stats = append(stats, s)
	}

	sort.SliceStable(stats, func(i, j int) bool {
		a, b := stats[i], stats[j]
		if a.hits != b.hits {
			return a.hits > b.hits
		}
		if a.yrs != b.yrs {
			return a.yrs > b.yrs
		}
		if a.vari != b.vari {
			return a.vari > b.vari
		}
		return strings.ToLower(a.tok) < strings.ToLower(b.tok)
	})

	out := make([]string, len(stats))
	for i, s := range stats {
		out[i] = s.tok
	}
	return out
}

// presenceVariance is the population variance of the 0/1 presence
// indicator over the given years: p(1-p) where p is the fraction of
// years the token appears in.
func presenceVariance(tok string, years []int, ix timeline.Index) float64 {
	if len(years) == 0 {
		return 0
	}
	hit := 0
	for _, y := range years {
		if ix.Count(y, tok) > 0 {
			hit++
		}
	}
	p := float64(hit) / float64(len(years))
	return p * (1 - p)
}

func tailYears(years []int, n int) []int {
	if n > len(years) {
		n = len(years)
	}
	return years[len(years)-n:]
}
