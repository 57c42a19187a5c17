// Package report packages engine output into identified, timestamped
// reports for the presentation layer.
package report

import (
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/cognicore/ksptrend/pkg/ksptrend/contrast"
	"github.com/cognicore/ksptrend/pkg/ksptrend/trend"
)

// Builder mints report IDs.
type Builder struct {
	entropy *ulid.MonotonicEntropy
}

// New creates a report builder.
func New() *Builder {
	return &Builder{entropy: ulid.Monotonic(rand.Reader, 0)}
}

// Entry is one ranked keyword with its per-year lift series for
// charting.
type Entry struct {
	Token string
	Score float64
	Lift  []float64 // aligned with TrendReport.Years
	Share []float64
}

// TrendReport is the rising/falling keyword output of one run.
type TrendReport struct {
	ID          string
	GeneratedAt time.Time
	Years       []int
	WindowYears []int
	Rising      []Entry
	Falling     []Entry
}

// BuildTrendReport assembles a TrendReport from classification output
// and the underlying share/lift tables.
func (b *Builder) BuildTrendReport(cls trend.Classification, sl trend.ShareLift) TrendReport {
	r := TrendReport{
		ID:          b.newID(),
		GeneratedAt: time.Now().UTC(),
		Years:       append([]int(nil), sl.Years...),
		WindowYears: append([]int(nil), cls.WindowYears...),
	}
	r.Rising = entries(cls.Rising, sl)
	r.Falling = entries(cls.Falling, sl)
	return r
}

func entries(scored []trend.Scored, sl trend.ShareLift) []Entry {
	out := make([]Entry, 0, len(scored))
	for _, s := range scored {
		out = append(out, Entry{
			Token: s.Token,
			Score: s.Score,
			Lift:  append([]float64(nil), sl.Lift[s.Token]...),
			Share: append([]float64(nil), sl.Share[s.Token]...),
		})
	}
	return out
}

// ThemeReport is the theme-level rising/falling output.
type ThemeReport struct {
	ID          string
	GeneratedAt time.Time
	Years       []int
	Lift        map[string][]float64
	Rising      []string
	Falling     []string
}

// BuildThemeReport wraps theme trends in an identified report.
func (b *Builder) BuildThemeReport(years []int, lift map[string][]float64, rising, falling []string) ThemeReport {
	return ThemeReport{
		ID:          b.newID(),
		GeneratedAt: time.Now().UTC(),
		Years:       append([]int(nil), years...),
		Lift:        lift,
		Rising:      append([]string(nil), rising...),
		Falling:     append([]string(nil), falling...),
	}
}

// ContrastReport is the ranked contrastive-keyword output.
type ContrastReport struct {
	ID          string
	GeneratedAt time.Time
	Class       string
	Keywords    []contrast.Keyword
}

// BuildContrastReport wraps contrastive keywords in an identified
// report.
func (b *Builder) BuildContrastReport(class string, keywords []contrast.Keyword) ContrastReport {
	return ContrastReport{
		ID:          b.newID(),
		GeneratedAt: time.Now().UTC(),
		Class:       class,
		Keywords:    keywords,
	}
}

func (b *Builder) newID() string {
	return ulid.MustNew(ulid.Now(), b.entropy).String()
}
