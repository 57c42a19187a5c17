// Package ksptrend is the keyword trend-extraction engine for the KSP
// project corpus: it turns sparse, noisy year-span records with
// hashtag and free-text content into smoothed rising/falling keyword
// and theme signals, and ranks class-distinguishing terms against a
// background corpus.
package ksptrend

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cognicore/ksptrend/pkg/ksptrend/cache"
	"github.com/cognicore/ksptrend/pkg/ksptrend/contrast"
	"github.com/cognicore/ksptrend/pkg/ksptrend/excerpt"
	"github.com/cognicore/ksptrend/pkg/ksptrend/ingest"
	"github.com/cognicore/ksptrend/pkg/ksptrend/record"
	"github.com/cognicore/ksptrend/pkg/ksptrend/report"
	"github.com/cognicore/ksptrend/pkg/ksptrend/themes"
	"github.com/cognicore/ksptrend/pkg/ksptrend/timeline"
	"github.com/cognicore/ksptrend/pkg/ksptrend/trend"
	"github.com/cognicore/ksptrend/pkg/ksptrend/yearspan"
)

// Engine is the analysis facade. All computation is pure and
// recomputed from the given records; the only state is the
// memoization cache and the report ID generator.
type Engine struct {
	tokenizer *ingest.Tokenizer
	nouns     *ingest.NounFilter
	themes    []themes.Theme
	params    trend.Params
	yspan     yearspan.Config
	contrast  contrast.Config
	reports   *report.Builder
	memo      *cache.Memo[trendResult]
	seed      int64
}

// Options configures an Engine. Zero-value fields fall back to
// defaults.
type Options struct {
	Tokenizer *ingest.Tokenizer // defaults to base stopwords + default synonyms
	Themes    []themes.Theme    // defaults to the curated inventory
	Trend     trend.Params
	Yearspan  yearspan.Config
	Contrast  contrast.Config
	CacheSize int   // memoized trend runs; defaults to 16
	Seed      int64 // excerpt sampling seed; defaults to 1
}

type trendResult struct {
	sl  trend.ShareLift
	cls trend.Classification
}

// New creates an Engine.
func New(opts Options) (*Engine, error) {
	if opts.Tokenizer == nil {
		opts.Tokenizer = ingest.NewTokenizer(ingest.BaseStopwords())
	}
	if opts.Themes == nil {
		opts.Themes = themes.DefaultThemes()
	}
	if opts.Trend == (trend.Params{}) {
		opts.Trend = trend.DefaultParams()
	}
	if opts.Yearspan == (yearspan.Config{}) {
		opts.Yearspan = yearspan.DefaultConfig()
	}
	if opts.Contrast == (contrast.Config{}) {
		opts.Contrast = contrast.DefaultConfig()
	}
	if opts.CacheSize <= 0 {
		opts.CacheSize = 16
	}
	if opts.Seed == 0 {
		opts.Seed = 1
	}

	memo, err := cache.New[trendResult](opts.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("init memo cache: %w", err)
	}

	return &Engine{
		tokenizer: opts.Tokenizer,
		nouns:     ingest.NewNounFilter(),
		themes:    opts.Themes,
		params:    opts.Trend,
		yspan:     opts.Yearspan,
		contrast:  opts.Contrast,
		reports:   report.New(),
		memo:      memo,
		seed:      opts.Seed,
	}, nil
}

// KeywordTrends runs the full keyword pipeline: dynamic stopwords,
// hashtag tokenization, year expansion, share/lift, and the
// rising/falling classification. extraStops are caller-supplied
// stopwords layered on top of the static and dynamic sets.
//
// A corpus with no parsable years produces an empty report, not an
// error. Repeated calls with identical input are memoized and
// bit-identical.
func (e *Engine) KeywordTrends(records []record.Record, extraStops []string) report.TrendReport {
	key := e.corpusKey("keywords", records, extraStops)
	if res, ok := e.memo.Get(key); ok {
		return e.reports.BuildTrendReport(res.cls, res.sl)
	}

	tok := e.tokenizer.Clone()
	tok.AddStopwords(ingest.DynamicStopwordsFromRecords(records))
	tok.AddStopwords(extraStops)

	tokens := make([][]string, len(records))
	for i, r := range records {
		tokens[i] = tok.SplitHashtags(r.Hashtags)
	}

	ix := timeline.Build(records, tokens, e.yspan)
	if ix.Empty() {
		return e.reports.BuildTrendReport(trend.Classification{}, trend.ShareLift{})
	}

	needK := e.params.TopK * 2
	if needK < 16 {
		needK = 16
	}
	pool := trend.EnsureTopK(ix.Tokens(), needK, ix, e.params)
	sl := trend.BuildShareLift(pool, ix, e.params)
	cls := trend.Classify(sl, ix, e.params)

	e.memo.Add(key, trendResult{sl: sl, cls: cls})
	return e.reports.BuildTrendReport(cls, sl)
}

// ThemeTrends computes the theme-level rising/falling signals.
func (e *Engine) ThemeTrends(records []record.Record) report.ThemeReport {
	ix := timeline.Build(records, make([][]string, len(records)), e.yspan)
	tp := themes.DefaultTrendParams()
	tp.Alpha = e.params.Alpha
	tp.Roll = e.params.Roll
	tr := themes.BuildTrends(records, e.themes, ix, e.yspan, tp)
	return e.reports.BuildThemeReport(tr.Years, tr.Lift, tr.Rising, tr.Falling)
}

// ContrastKeywords ranks terms that distinguish the class records
// from the background records, then re-ranks by log-odds significance
// and applies MMR diversity selection.
func (e *Engine) ContrastKeywords(class string, classRecords, backgroundRecords []record.Record, topN int) report.ContrastReport {
	combined := make([]record.Record, 0, len(classRecords)+len(backgroundRecords))
	combined = append(combined, classRecords...)
	combined = append(combined, backgroundRecords...)

	tok := e.tokenizer.Clone()
	tok.AddStopwords(ingest.DynamicStopwordsFromRecords(combined))

	classDocs := e.contrastDocs(tok, classRecords)
	bgDocs := e.contrastDocs(tok, backgroundRecords)

	// Over-fetch before diversity selection so MMR has slack.
	candidates := contrast.Extract(classDocs, bgDocs, topN*3, e.contrast)
	candidates = contrast.Rerank(candidates, classDocs, bgDocs, e.contrast)
	selected := contrast.MMR(candidates, topN, e.contrast.MMRLambda)

	return e.reports.BuildContrastReport(class, selected)
}

// Excerpts samples up to n illustrative sentences for a keyword.
func (e *Engine) Excerpts(records []record.Record, keyword string, n int) []excerpt.Excerpt {
	return excerpt.NewSampler(e.seed).Sample(records, keyword, n)
}

// contrastDocs tokenizes records for the contrastive path: free text
// plus hashtags, passed through the noun-likeness filter.
func (e *Engine) contrastDocs(tok *ingest.Tokenizer, records []record.Record) []contrast.Doc {
	docs := make([]contrast.Doc, 0, len(records))
	for _, r := range records {
		raw := tok.Tokens(r.Text() + " " + r.Hashtags)
		kept := make([]string, 0, len(raw))
		for _, t := range raw {
			if stem := e.nouns.Apply(t); stem != "" && !tok.IsStopword(stem) {
				kept = append(kept, stem)
			}
		}
		docs = append(docs, contrast.Doc{ID: r.ID, Tokens: kept})
	}
	return docs
}

// corpusKey hashes the analysis inputs for memoization.
func (e *Engine) corpusKey(kind string, records []record.Record, extra []string) uint64 {
	parts := make([]string, 0, len(records)*8+len(extra)+2)
	parts = append(parts, kind, e.paramsKey())
	for _, r := range records {
		parts = append(parts, r.ID, r.Hashtags, r.YearText,
			r.Topic, r.ICTClass, r.Country, r.Agency, r.Sponsor)
	}
	parts = append(parts, extra...)
	return cache.Key(parts...)
}

func (e *Engine) paramsKey() string {
	return strings.Join([]string{
		strconv.Itoa(e.params.Roll),
		strconv.FormatFloat(e.params.Alpha, 'g', -1, 64),
		strconv.Itoa(e.params.WindowYears),
		strconv.Itoa(e.params.RecentYears),
		strconv.Itoa(e.params.TopK),
		strconv.Itoa(e.yspan.MinYear),
		strconv.Itoa(e.yspan.MaxYear),
		strconv.Itoa(e.yspan.MaxSpan),
	}, "|")
}
