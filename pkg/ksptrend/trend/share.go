package trend

import (
	"math"

	"github.com/cognicore/ksptrend/pkg/ksptrend/timeline"
)

// ShareLift holds the smoothed share and lift tables for a token
// pool. Share[tok][i] and Lift[tok][i] align with Years[i]; both
// series cover the full observed year range with no gaps.
type ShareLift struct {
	Years []int
	Share map[string][]float64
	Lift  map[string][]float64
}

// BuildShareLift computes per-token share and lift series.
//
// share[y] is a Jeffreys-smoothed estimate of the percentage of
// documents in year y containing the token: numerator and denominator
// are rolling-summed over a centered window before the ratio, so a
// single sparse year cannot spike the series. lift[y] divides share
// by a document-count-weighted baseline across all years, making more
// populous years count more toward "typical" prevalence. Lift is
// scale-invariant to uniform rescaling of the document counts.
func BuildShareLift(tokens []string, ix timeline.Index, p Params) ShareLift {
	sl := ShareLift{
		Years: append([]int(nil), ix.Years...),
		Share: make(map[string][]float64, len(tokens)),
		Lift:  make(map[string][]float64, len(tokens)),
	}
	if len(ix.Years) == 0 {
		return sl
	}

	totalDocs := 0.0
	den := make([]float64, len(ix.Years))
	for i, y := range ix.Years {
		den[i] = float64(ix.Docs(y))
		totalDocs += den[i]
	}

	for _, tok := range tokens {
		num := make([]float64, len(ix.Years))
		for i, y := range ix.Years {
			num[i] = float64(ix.Count(y, tok))
		}
		share := jeffreysRollingRatio(num, den, p.Roll, p.Alpha)

		// Baseline: document-weighted mean share over all years.
		base := 0.0
		if totalDocs > 0 {
			for i := range share {
				base += share[i] * (den[i] / totalDocs)
			}
		}

		lift := make([]float64, len(share))
		if base > 0 {
			for i := range share {
				v := share[i] / base
				if math.IsInf(v, 0) || math.IsNaN(v) {
					v = 0
				}
				lift[i] = v
			}
		}

		sl.Share[tok] = share
		sl.Lift[tok] = lift
	}
	return sl
}

// jeffreysRollingRatio applies the additive prior elementwise, sums
// numerator and denominator over a centered window of width k (window
// clipped at the boundaries rather than padded), and returns the
// ratio as a percentage. A zero denominator resolves to 0, never NaN.
func jeffreysRollingRatio(num, den []float64, k int, alpha float64) []float64 {
	n := len(num)
	out := make([]float64, n)
	if k < 1 {
		k = 1
	}
	half := k / 2
	for i := 0; i < n; i++ {
		lo := i - half
		if lo < 0 {
			lo = 0
		}
		hi := i + (k - 1 - half)
		if hi > n-1 {
			hi = n - 1
		}
		var ns, ds float64
		for j := lo; j <= hi; j++ {
			ns += num[j] + alpha
			ds += den[j] + 2*alpha
		}
		if ds > 0 {
			out[i] = ns / ds * 100.0
		}
	}
	return out
}

// CAGR returns the compound annual growth rate of a series as a
// percentage. Non-positive values are treated as missing and the
// remaining points compressed; fewer than two usable points yields 0.
func CAGR(series []float64) float64 {
	var s []float64
	for _, v := range series {
		if v > 0 {
			s = append(s, v)
		}
	}
	if len(s) < 2 {
		return 0
	}
	n := float64(len(s) - 1)
	return (math.Pow(s[len(s)-1]/s[0], 1/n) - 1) * 100.0
}
