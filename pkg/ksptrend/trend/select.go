package trend

import (
	"sort"
	"strings"

	"github.com/cognicore/ksptrend/pkg/ksptrend/timeline"
)

// Scored is a keyword with its composite trend score.
type Scored struct {
	Token string
	Score float64
}

// Signals are the per-keyword directional signals evaluated over the
// trailing window.
type Signals struct {
	LastLift   float64 // lift in the window's final year
	CAGR       float64 // compound growth rate of the lift series, percent
	DeltaShare float64 // percentage-point share change, window start to end
}

// UpCount returns how many of the three signals point up.
func (s Signals) UpCount() int {
	n := 0
	if s.LastLift >= 1.0 {
		n++
	}
	if s.CAGR > 0 {
		n++
	}
	if s.DeltaShare > 0 {
		n++
	}
	return n
}

// DownCount returns how many of the three signals point down.
func (s Signals) DownCount() int {
	n := 0
	if s.LastLift < 1.0 {
		n++
	}
	if s.CAGR < 0 {
		n++
	}
	if s.DeltaShare < 0 {
		n++
	}
	return n
}

// Classification is the paired rising/falling output. The two lists
// are disjoint and always the same length, each ordered by descending
// composite score (backfilled entries follow the qualifying ones).
type Classification struct {
	Rising  []Scored
	Falling []Scored
	// WindowYears is the span of years the signals were computed over.
	WindowYears []int
}

// Classify applies the 2-of-3 rule over the trailing window and
// produces capped, disjoint rising and falling keyword lists.
//
// A keyword qualifies for a side when at least two of its three
// signals agree on the direction. Each side is ranked by a composite
// score; a keyword claimed by one side is never considered for the
// other. Sides short of TopK are backfilled by a recency/variance
// ranking (relaxed to 1-of-3 agreement), then unconditionally from
// the score order. Both sides are finally truncated to the same
// length so the comparison is never asymmetric.
func Classify(sl ShareLift, ix timeline.Index, p Params) Classification {
	if len(sl.Years) == 0 {
		return Classification{}
	}

	win := tailYears(sl.Years, p.WindowYears)
	offset := len(sl.Years) - len(win)

	tokens := make([]string, 0, len(sl.Lift))
	for tok := range sl.Lift {
		tokens = append(tokens, tok)
	}
	sort.Slice(tokens, func(i, j int) bool {
		return strings.ToLower(tokens[i]) < strings.ToLower(tokens[j])
	})

	sig := make(map[string]Signals, len(tokens))
	rise := make(map[string]float64, len(tokens))
	fall := make(map[string]float64, len(tokens))
	for _, tok := range tokens {
		lift := sl.Lift[tok][offset:]
		share := sl.Share[tok][offset:]
		s := Signals{
			LastLift:   lift[len(lift)-1],
			CAGR:       CAGR(lift),
			DeltaShare: share[len(share)-1] - share[0],
		}
		sig[tok] = s
		rise[tok] = (s.LastLift - 1.0) + p.CAGRWeight*(s.CAGR/100.0) + p.ShareWeight*(s.DeltaShare/100.0)
		fall[tok] = (1.0 - s.LastLift) + p.CAGRWeight*(-s.CAGR/100.0) + p.ShareWeight*(-s.DeltaShare/100.0)
	}

	riseRank := rankByScore(tokens, rise)
	fallRank := rankByScore(tokens, fall)

	used := make(map[string]struct{})
	var riseSel, fallSel []string
	for _, tok := range riseRank {
		if sig[tok].UpCount() >= 2 {
			riseSel = append(riseSel, tok)
			used[tok] = struct{}{}
		}
	}
	for _, tok := range fallRank {
		if _, taken := used[tok]; taken {
			continue
		}
		if sig[tok].DownCount() >= 2 {
			fallSel = append(fallSel, tok)
			used[tok] = struct{}{}
		}
	}

	riseSel = backfill(riseSel, p.TopK, riseRank, used, win, ix, p,
		func(tok string) bool { return sig[tok].UpCount() >= 1 })
	fallSel = backfill(fallSel, p.TopK, fallRank, used, win, ix, p,
		func(tok string) bool { return sig[tok].DownCount() >= 1 })

	riseSel = truncate(riseSel, p.TopK)
	fallSel = truncate(fallSel, p.TopK)

	// Symmetric truncation: present matched pairs only.
	if len(riseSel) > len(fallSel) {
		riseSel = riseSel[:len(fallSel)]
	} else if len(fallSel) > len(riseSel) {
		fallSel = fallSel[:len(riseSel)]
	}

	out := Classification{WindowYears: append([]int(nil), win...)}
	for _, tok := range riseSel {
		out.Rising = append(out.Rising, Scored{Token: tok, Score: rise[tok]})
	}
	for _, tok := range fallSel {
		out.Falling = append(out.Falling, Scored{Token: tok, Score: fall[tok]})
	}
	return out
}

// backfill tops up a side to need entries: first from the
// recency/variance ranking filtered by the relaxed predicate, then
// unconditionally from the score order. Disjointness with the other
// side is preserved via the shared used set.
func backfill(sel []string, need int, baseRank []string, used map[string]struct{},
	win []int, ix timeline.Index, p Params, predicate func(string) bool) []string {
	if len(sel) >= need {
		return sel
	}

	recent := tailYears(win, p.RecentYears)
	for _, tok := range rankByRecency(baseRank, win, recent, ix) {
		if len(sel) >= need {
			break
		}
		if _, taken := used[tok]; taken {
			continue
		}
		if predicate(tok) {
			sel = append(sel, tok)
			used[tok] = struct{}{}
		}
	}
	for _, tok := range baseRank {
		if len(sel) >= need {
			break
		}
		if _, taken := used[tok]; taken {
			continue
		}
		sel = append(sel, tok)
		used[tok] = struct{}{}
	}
	return sel
}

func rankByScore(tokens []string, score map[string]float64) []string {
	out := append([]string(nil), tokens...)
	sort.SliceStable(out, func(i, j int) bool {
		if score[out[i]] != score[out[j]] {
			return score[out[i]] > score[out[j]]
		}
		return strings.ToLower(out[i]) < strings.ToLower(out[j])
	})
	return out
}

func truncate(s []string, n int) []string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
