// Package trend turns per-year keyword counts into smoothed share
// and lift series and classifies keywords as rising or falling.
package trend

// Params are the tuned constants of the trend engine. Roll and Alpha
// have no documented derivation beyond working well on the KSP
// corpus; they are configuration, not law.
type Params struct {
	// Roll is the centered rolling-window width in years applied to
	// numerator and denominator before the ratio.
	Roll int

	// Alpha is the Jeffreys-style prior strength. It keeps sparse
	// years away from zero/undefined ratios and dampens single-year
	// spikes from small denominators.
	Alpha float64

	// WindowYears is the trailing window the classifier evaluates.
	WindowYears int

	// RecentYears is the trailing sub-window used by the backfill
	// ranking.
	RecentYears int

	// TopK caps each of the rising and falling lists.
	TopK int

	// Pool cutoffs: a token enters the candidate pool when it hits
	// MinDocsBase documents across MinYearsBase distinct years, or
	// RecentDocsMin documents across RecentYearsMin years within the
	// recent sub-window.
	MinDocsBase    int
	MinYearsBase   int
	RecentDocsMin  int
	RecentYearsMin int

	// Composite score weights for ranking within a qualifying group.
	CAGRWeight  float64
	ShareWeight float64
}

// DefaultParams returns the constants tuned for the KSP corpus.
func DefaultParams() Params {
	return Params{
		Roll:           5,
		Alpha:          0.7,
		WindowYears:    10,
		RecentYears:    5,
		TopK:           25,
		MinDocsBase:    4,
		MinYearsBase:   3,
		RecentDocsMin:  2,
		RecentYearsMin: 2,
		CAGRWeight:     0.7,
		ShareWeight:    0.5,
	}
}
