package contrast

import (
	"math"
	"sort"
)

// Rerank recomputes candidate scores with significance-aware
// components and returns the candidates in the new order.
//
// Combined score = LiftWeight·ln(presence lift) +
// LogOddsWeight·log-odds z + n-gram adjustment + BaseWeight·original.
// The presence lift uses document-presence ratios, not term
// frequency, so a term concentrated in a few long documents does not
// dominate. The z-score is a smoothed log-odds-ratio on the 2×2
// document-presence contingency table.
func Rerank(candidates []Keyword, classDocs, backgroundDocs []Doc, cfg Config) []Keyword {
	if len(candidates) == 0 {
		return nil
	}

	cls := collect(classDocs, cfg.MaxNGram)
	bg := collect(backgroundDocs, cfg.MaxNGram)

	out := make([]Keyword, len(candidates))
	for i, kw := range candidates {
		pClass := presence(cls, kw.Term)
		pBg := presence(bg, kw.Term)
		lnLift := math.Log((pClass + cfg.Epsilon) / (pBg + cfg.Epsilon))

		z := logOddsZ(cls.docPresence[kw.Term], cls.nDocs,
			bg.docPresence[kw.Term], bg.nDocs, cfg.LogOddsAlpha)

		adjust := cfg.UnigramPenalty
		switch wordCount(kw.Term) {
		case 2:
			adjust = cfg.RerankBigram
		case 3:
			adjust = cfg.RerankTrigram
		default:
			if wordCount(kw.Term) > 3 {
				adjust = cfg.RerankTrigram
			}
		}

		out[i] = Keyword{
			Term:    kw.Term,
			Display: kw.Display,
			Score:   cfg.LiftWeight*lnLift + cfg.LogOddsWeight*z + adjust + cfg.BaseWeight*kw.Score,
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Term < out[j].Term
	})
	return out
}

// logOddsZ is the smoothed log-odds-ratio z-score on the 2×2 table
// (term present/absent × class/background), with additive smoothing
// alpha on every cell.
func logOddsZ(inClass, nClass, inBg, nBg int, alpha float64) float64 {
	a := float64(inClass) + alpha
	b := float64(nClass-inClass) + alpha
	c := float64(inBg) + alpha
	d := float64(nBg-inBg) + alpha
	if b <= 0 || d <= 0 {
		return 0
	}
	logOR := math.Log(a*d/(b*c))
	variance := 1/a + 1/b + 1/c + 1/d
	return logOR / math.Sqrt(variance)
}

func presence(st corpusStats, term string) float64 {
	if st.nDocs == 0 {
		return 0
	}
	return float64(st.docPresence[term]) / float64(st.nDocs)
}
