package contrast

import "strings"

// MMR greedily selects up to k terms maximizing
// (1-λ)·relevance − λ·max-similarity-to-selected, where similarity is
// Jaccard over the whitespace-tokenized term words. Relevance is
// min-max normalized to [0,1] so it is commensurate with the
// similarity term. The returned set avoids near-duplicate phrasing
// even when the duplicates score high individually.
func MMR(candidates []Keyword, k int, lambda float64) []Keyword {
	if k <= 0 || len(candidates) == 0 {
		return nil
	}
	if k > len(candidates) {
		k = len(candidates)
	}

	rel := normalizeScores(candidates)

	selected := make([]Keyword, 0, k)
	taken := make([]bool, len(candidates))

	for len(selected) < k {
		bestIdx := -1
		bestVal := 0.0
		for i, kw := range candidates {
			if taken[i] {
				continue
			}
			maxSim := 0.0
			for _, sel := range selected {
				if sim := termJaccard(kw.Term, sel.Term); sim > maxSim {
					maxSim = sim
				}
			}
			val := (1-lambda)*rel[i] - lambda*maxSim
			if bestIdx < 0 || val > bestVal {
				bestIdx, bestVal = i, val
			}
		}
		if bestIdx < 0 {
			break
		}
		taken[bestIdx] = true
		selected = append(selected, candidates[bestIdx])
	}
	return selected
}

func normalizeScores(candidates []Keyword) []float64 {
	min, max := candidates[0].Score, candidates[0].Score
	for _, kw := range candidates[1:] {
		if kw.Score < min {
			min = kw.Score
		}
		if kw.Score > max {
			max = kw.Score
		}
	}
	rel := make([]float64, len(candidates))
	if max == min {
		for i := range rel {
			rel[i] = 1
		}
		return rel
	}
	for i, kw := range candidates {
		rel[i] = (kw.Score - min) / (max - min)
	}
	return rel
}

// termJaccard is Jaccard similarity over the whitespace-tokenized
// words of two terms.
func termJaccard(a, b string) float64 {
	aw := strings.Fields(a)
	bw := strings.Fields(b)
	if len(aw) == 0 && len(bw) == 0 {
		return 1
	}
	aSet := make(map[string]struct{}, len(aw))
	for _, w := range aw {
		aSet[w] = struct{}{}
	}
	bSet := make(map[string]struct{}, len(bw))
	for _, w := range bw {
		bSet[w] = struct{}{}
	}
	inter := 0
	for w := range aSet {
		if _, ok := bSet[w]; ok {
			inter++
		}
	}
	union := len(aSet) + len(bSet) - inter
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}
