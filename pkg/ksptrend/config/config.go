// Package config loads the engine's tunable data files: stoplist,
// synonym map, theme inventory, and numeric parameters. Everything is
// declared YAML — no lookup table is ever built by executing code
// from a data file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/ksptrend/pkg/ksptrend/contrast"
	"github.com/cognicore/ksptrend/pkg/ksptrend/themes"
	"github.com/cognicore/ksptrend/pkg/ksptrend/trend"
	"github.com/cognicore/ksptrend/pkg/ksptrend/yearspan"
)

// Stoplist is the stopword list configuration.
type Stoplist struct {
	Terms []string `yaml:"terms"`
}

// LoadStoplist loads stopwords from a YAML file.
func LoadStoplist(path string) (*Stoplist, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var sl Stoplist
	if err := yaml.Unmarshal(data, &sl); err != nil {
		return nil, err
	}
	return &sl, nil
}

// Synonyms maps spelling variants to canonical forms.
type Synonyms struct {
	Groups []SynonymGroup `yaml:"synonyms"`
}

// SynonymGroup is one canonical form and its variants.
type SynonymGroup struct {
	Canonical string   `yaml:"canonical"`
	Variants  []string `yaml:"variants"`
}

// LoadSynonyms loads a synonym table from a YAML file.
func LoadSynonyms(path string) (*Synonyms, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var s Synonyms
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Map flattens the groups into a variant → canonical lookup.
func (s *Synonyms) Map() map[string]string {
	out := make(map[string]string)
	for _, g := range s.Groups {
		for _, v := range g.Variants {
			out[v] = g.Canonical
		}
	}
	return out
}

// Themes is the theme inventory configuration.
type Themes struct {
	Themes []ThemeDef `yaml:"themes"`
}

// ThemeDef declares one theme pattern.
type ThemeDef struct {
	Label   string `yaml:"label"`
	Pattern string `yaml:"pattern"`
}

// LoadThemes loads the theme inventory from a YAML file.
func LoadThemes(path string) (*Themes, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var t Themes
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// Compile turns the declared patterns into a theme inventory,
// skipping entries whose pattern does not compile.
func (t *Themes) Compile() []themes.Theme {
	out := make([]themes.Theme, 0, len(t.Themes))
	for _, def := range t.Themes {
		th, err := themes.Compile(def.Label, def.Pattern)
		if err != nil {
			continue
		}
		out = append(out, th)
	}
	return out
}

// Params is the numeric tuning file. Zero values fall back to the
// package defaults, so a partial file only overrides what it names.
type Params struct {
	Roll        int     `yaml:"roll"`
	Alpha       float64 `yaml:"alpha"`
	SpanGuard   int     `yaml:"span_guard"`
	MinYear     int     `yaml:"min_year"`
	MaxYear     int     `yaml:"max_year"`
	WindowYears int     `yaml:"window_years"`
	RecentYears int     `yaml:"recent_years"`
	TopK        int     `yaml:"top_k"`
	MMRLambda   float64 `yaml:"mmr_lambda"`
}

// LoadParams loads tuning parameters from a YAML file.
func LoadParams(path string) (*Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var p Params
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

func (p *Params) validate() error {
	if p.Roll < 0 {
		return fmt.Errorf("roll must be >= 0, got %d", p.Roll)
	}
	if p.Alpha < 0 {
		return fmt.Errorf("alpha must be >= 0, got %g", p.Alpha)
	}
	if p.MinYear != 0 && p.MaxYear != 0 && p.MaxYear < p.MinYear {
		return fmt.Errorf("max_year %d before min_year %d", p.MaxYear, p.MinYear)
	}
	if p.MMRLambda < 0 || p.MMRLambda > 1 {
		return fmt.Errorf("mmr_lambda must be in [0,1], got %g", p.MMRLambda)
	}
	return nil
}

// TrendParams merges the file over the trend defaults.
func (p *Params) TrendParams() trend.Params {
	out := trend.DefaultParams()
	if p.Roll > 0 {
		out.Roll = p.Roll
	}
	if p.Alpha > 0 {
		out.Alpha = p.Alpha
	}
	if p.WindowYears > 0 {
		out.WindowYears = p.WindowYears
	}
	if p.RecentYears > 0 {
		out.RecentYears = p.RecentYears
	}
	if p.TopK > 0 {
		out.TopK = p.TopK
	}
	return out
}

// YearspanConfig merges the file over the yearspan defaults.
func (p *Params) YearspanConfig() yearspan.Config {
	out := yearspan.DefaultConfig()
	if p.SpanGuard > 0 {
		out.MaxSpan = p.SpanGuard
	}
	if p.MinYear > 0 {
		out.MinYear = p.MinYear
	}
	if p.MaxYear > 0 {
		out.MaxYear = p.MaxYear
	}
	return out
}

// ContrastConfig merges the file over the contrast defaults.
func (p *Params) ContrastConfig() contrast.Config {
	out := contrast.DefaultConfig()
	if p.MMRLambda > 0 {
		out.MMRLambda = p.MMRLambda
	}
	return out
}
