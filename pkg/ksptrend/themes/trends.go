package themes

import (
	"math"
	"sort"
	"strings"

	"github.com/cognicore/ksptrend/pkg/ksptrend/record"
	"github.com/cognicore/ksptrend/pkg/ksptrend/timeline"
	"github.com/cognicore/ksptrend/pkg/ksptrend/yearspan"
)

// TrendParams are the constants of the theme trend computation.
type TrendParams struct {
	Alpha      float64 // smoothing prior, shared with the keyword engine
	Roll       int     // centered rolling-mean window over the share series
	SlopeYears int     // trailing years for the slope fit
	TopN       int     // themes reported per side
	MinDocs    int     // minimum theme-year count total for inclusion
	MinYears   int     // minimum distinct years with hits for inclusion
}

// DefaultTrendParams returns the tuned theme-trend constants.
func DefaultTrendParams() TrendParams {
	return TrendParams{Alpha: 0.7, Roll: 5, SlopeYears: 5, TopN: 8, MinDocs: 4, MinYears: 3}
}

// Trends is the theme-level rising/falling output.
type Trends struct {
	Years   []int
	Lift    map[string][]float64 // theme label → per-year lift, aligned with Years
	Rising  []string
	Falling []string
}

// BuildTrends counts theme hits per (record, year), smooths the
// per-theme share, and ranks themes by the slope of their recent lift
// weighted by overall volatility. Themes with too little support are
// dropped before ranking.
func BuildTrends(records []record.Record, inventory []Theme, ix timeline.Index,
	ycfg yearspan.Config, p TrendParams) Trends {

	out := Trends{Lift: make(map[string][]float64)}
	if ix.Empty() {
		return out
	}
	out.Years = append([]int(nil), ix.Years...)

	yearPos := make(map[int]int, len(ix.Years))
	for i, y := range ix.Years {
		yearPos[y] = i
	}

	counts := make(map[string][]float64)
	for _, r := range records {
		hits := Detect(NormalizeText(r), inventory)
		if len(hits) == 0 {
			continue
		}
		years := yearspan.Parse(r.YearText, ycfg)
		for _, y := range years {
			i, ok := yearPos[y]
			if !ok {
				continue
			}
			for _, label := range hits {
				if counts[label] == nil {
					counts[label] = make([]float64, len(ix.Years))
				}
				counts[label][i]++
			}
		}
	}

	totalDocs := 0.0
	docs := make([]float64, len(ix.Years))
	for i, y := range ix.Years {
		docs[i] = float64(ix.Docs(y))
		totalDocs += docs[i]
	}

	slope := make(map[string]float64)
	vari := make(map[string]float64)
	for label, cnt := range counts {
		if !hasSupport(cnt, p) {
			continue
		}

		// Smoothed share, then rolling mean over the centered window.
		share := make([]float64, len(cnt))
		for i := range cnt {
			share[i] = (cnt[i] + p.Alpha) / (docs[i] + 2*p.Alpha) * 100.0
		}
		share = rollingMean(share, p.Roll)

		base := 0.0
		if totalDocs > 0 {
			for i := range share {
				base += share[i] * (docs[i] / totalDocs)
			}
		}
		lift := make([]float64, len(share))
		if base > 0 {
			for i := range share {
				lift[i] = share[i] / base
			}
		}
		out.Lift[label] = lift

		n := p.SlopeYears
		if n > len(lift) {
			n = len(lift)
		}
		slope[label] = leastSquaresSlope(out.Years[len(lift)-n:], lift[len(lift)-n:])
		vari[label] = sampleVariance(lift)
	}

	rank := func(up bool) []string {
		var labels []string
		for label, s := range slope {
			if (up && s > 0) || (!up && s < 0) {
				labels = append(labels, label)
			}
		}
		sort.SliceStable(labels, func(i, j int) bool {
			si := math.Abs(slope[labels[i]]) * (1 + vari[labels[i]])
			sj := math.Abs(slope[labels[j]]) * (1 + vari[labels[j]])
			if si != sj {
				return si > sj
			}
			return strings.ToLower(labels[i]) < strings.ToLower(labels[j])
		})
		if len(labels) > p.TopN {
			labels = labels[:p.TopN]
		}
		return labels
	}

	out.Rising = rank(true)
	out.Falling = rank(false)
	return out
}

func hasSupport(cnt []float64, p TrendParams) bool {
	total, years := 0.0, 0
	for _, c := range cnt {
		total += c
		if c > 0 {
			years++
		}
	}
	return total >= float64(p.MinDocs) && years >= p.MinYears
}

// rollingMean is a centered rolling mean with the window clipped at
// the boundaries.
func rollingMean(s []float64, k int) []float64 {
	n := len(s)
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
		sum := 0.0
		for j := lo; j <= hi; j++ {
			sum += s[j]
		}
		out[i] = sum / float64(hi-lo+1)
	}
	return out
}

// leastSquaresSlope fits y = a + b·x over the given years and returns b.
func leastSquaresSlope(years []int, y []float64) float64 {
	n := float64(len(years))
	if n < 2 {
		return 0
	}
	var sx, sy, sxx, sxy float64
	for i, yr := range years {
		x := float64(yr)
		sx += x
		sy += y[i]
		sxx += x * x
		sxy += x * y[i]
	}
	den := n*sxx - sx*sx
	if den == 0 {
		return 0
	}
	return (n*sxy - sx*sy) / den
}

func sampleVariance(s []float64) float64 {
	if len(s) < 2 {
		return 0
	}
	mean := 0.0
	for _, v := range s {
		mean += v
	}
	mean /= float64(len(s))
	var sum float64
	for _, v := range s {
		d := v - mean
		sum += d * d
	}
	return sum / float64(len(s)-1)
}
