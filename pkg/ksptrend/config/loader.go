package config

import (
	"fmt"

	"github.com/cognicore/ksptrend/pkg/ksptrend/contrast"
	"github.com/cognicore/ksptrend/pkg/ksptrend/ingest"
	"github.com/cognicore/ksptrend/pkg/ksptrend/themes"
	"github.com/cognicore/ksptrend/pkg/ksptrend/trend"
	"github.com/cognicore/ksptrend/pkg/ksptrend/yearspan"
)

// Loader loads all configuration files and constructs components.
// Every path is optional; a missing path yields the built-in default.
type Loader struct {
	StoplistPath string
	SynonymsPath string
	ThemesPath   string
	ParamsPath   string
}

// Components holds all loaded configuration components.
type Components struct {
	Tokenizer *ingest.Tokenizer
	Themes    []themes.Theme
	Trend     trend.Params
	Yearspan  yearspan.Config
	Contrast  contrast.Config
}

// Load reads all configuration files and returns initialized
// components.
func (l *Loader) Load() (*Components, error) {
	comp := &Components{
		Themes:   themes.DefaultThemes(),
		Trend:    trend.DefaultParams(),
		Yearspan: yearspan.DefaultConfig(),
		Contrast: contrast.DefaultConfig(),
	}

	stops := ingest.BaseStopwords()
	if l.StoplistPath != "" {
		sl, err := LoadStoplist(l.StoplistPath)
		if err != nil {
			return nil, fmt.Errorf("load stoplist: %w", err)
		}
		stops = append(stops, sl.Terms...)
	}
	comp.Tokenizer = ingest.NewTokenizer(stops)

	if l.SynonymsPath != "" {
		syn, err := LoadSynonyms(l.SynonymsPath)
		if err != nil {
			return nil, fmt.Errorf("load synonyms: %w", err)
		}
		merged := ingest.DefaultSynonyms()
		for variant, canonical := range syn.Map() {
			merged[variant] = canonical
		}
		comp.Tokenizer.SetSynonyms(merged)
	}

	if l.ThemesPath != "" {
		th, err := LoadThemes(l.ThemesPath)
		if err != nil {
			return nil, fmt.Errorf("load themes: %w", err)
		}
		if compiled := th.Compile(); len(compiled) > 0 {
			comp.Themes = compiled
		}
	}

	if l.ParamsPath != "" {
		p, err := LoadParams(l.ParamsPath)
		if err != nil {
			return nil, fmt.Errorf("load params: %w", err)
		}
		comp.Trend = p.TrendParams()
		comp.Yearspan = p.YearspanConfig()
		comp.Contrast = p.ContrastConfig()
	}

	return comp, nil
}
