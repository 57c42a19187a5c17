package ksptrend

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/cognicore/ksptrend/pkg/ksptrend/record"
	"github.com/cognicore/ksptrend/pkg/ksptrend/report"
)

// trendCorpus builds a corpus where 핀테크 takes over from 레거시 in
// the later half of the decade.
func trendCorpus() []record.Record {
	var recs []record.Record
	for y := 2016; y <= 2025; y++ {
		tag := "레거시"
		if y >= 2021 {
			tag = "핀테크"
		}
		for i := 0; i < 2; i++ {
			recs = append(recs, record.Record{
				ID:       fmt.Sprintf("doc-%d-%d", y, i),
				Summary:  "일반 요약",
				Hashtags: tag,
				YearText: fmt.Sprintf("%d", y),
			})
		}
	}
	return recs
}

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := New(Options{})
	if err != nil {
		t.Fatal(err)
	}
	return e
}

func TestKeywordTrendsDirections(t *testing.T) {
	e := newTestEngine(t)
	rep := e.KeywordTrends(trendCorpus(), nil)

	if rep.ID == "" {
		t.Error("report should carry an ID")
	}
	if len(rep.Years) != 10 {
		t.Errorf("Years = %v, want 2016..2025", rep.Years)
	}
	if len(rep.Rising) != 1 || rep.Rising[0].Token != "핀테크" {
		t.Errorf("Rising = %+v, want [핀테크]", rep.Rising)
	}
	if len(rep.Falling) != 1 || rep.Falling[0].Token != "레거시" {
		t.Errorf("Falling = %+v, want [레거시]", rep.Falling)
	}
	if len(rep.Rising[0].Lift) != len(rep.Years) {
		t.Errorf("entry lift series length %d != years %d", len(rep.Rising[0].Lift), len(rep.Years))
	}
}

func TestKeywordTrendsIdempotent(t *testing.T) {
	e := newTestEngine(t)
	corpus := trendCorpus()

	a := e.KeywordTrends(corpus, nil)
	b := e.KeywordTrends(corpus, nil)

	tokens := func(entries []report.Entry) []string {
		out := make([]string, len(entries))
		for i, en := range entries {
			out[i] = en.Token
		}
		return out
	}
	if !reflect.DeepEqual(tokens(a.Rising), tokens(b.Rising)) {
		t.Errorf("rising differs across runs: %v vs %v", tokens(a.Rising), tokens(b.Rising))
	}
	if !reflect.DeepEqual(tokens(a.Falling), tokens(b.Falling)) {
		t.Errorf("falling differs across runs: %v vs %v", tokens(a.Falling), tokens(b.Falling))
	}
	if a.ID == b.ID {
		t.Error("each run should mint a fresh report ID")
	}
}

func TestKeywordTrendsExtraStops(t *testing.T) {
	e := newTestEngine(t)
	rep := e.KeywordTrends(trendCorpus(), []string{"핀테크"})

	for _, en := range rep.Rising {
		if en.Token == "핀테크" {
			t.Error("caller-supplied stopword leaked into results")
		}
	}
}

func TestKeywordTrendsMemoKeyCoversInstitutions(t *testing.T) {
	// Agency feeds the dynamic stopword set, so two corpora that
	// differ only there must not share a memoized result.
	e := newTestEngine(t)

	masked := trendCorpus()
	for i := range masked {
		masked[i].Agency = "핀테크" // masks the trending tag
	}
	rep := e.KeywordTrends(masked, nil)
	if len(rep.Rising) != 0 {
		t.Fatalf("masked corpus should have empty rising, got %+v", rep.Rising)
	}

	unmasked := trendCorpus()
	for i := range unmasked {
		unmasked[i].Agency = "기관"
	}
	rep = e.KeywordTrends(unmasked, nil)
	if len(rep.Rising) != 1 || rep.Rising[0].Token != "핀테크" {
		t.Errorf("agency-differing corpus hit a stale memo entry: rising=%+v", rep.Rising)
	}
}

func TestContrastKeywordsLeavesInputsIntact(t *testing.T) {
	// Class and background slices are caller-owned; combining them for
	// the dynamic stopword pass must not write into their backing
	// arrays.
	e := newTestEngine(t)

	backing := []record.Record{
		{ID: "c1", Summary: "블록체인 송금 실증"},
		{ID: "c2", Summary: "블록체인 정산 실증"},
	}
	class := backing[:1] // spare capacity reaches backing[1]
	bg := []record.Record{{ID: "b1", Summary: "세관 통관 절차"}}

	e.ContrastKeywords("핀테크", class, bg, 3)

	if backing[1].ID != "c2" {
		t.Errorf("caller's backing array mutated: %+v", backing[1])
	}
}

func TestKeywordTrendsEmptyCorpus(t *testing.T) {
	e := newTestEngine(t)

	rep := e.KeywordTrends(nil, nil)
	if len(rep.Rising) != 0 || len(rep.Falling) != 0 {
		t.Errorf("empty corpus should yield empty report: %+v", rep)
	}

	// Unparsable years behave the same as no records.
	rep = e.KeywordTrends([]record.Record{{ID: "a", Hashtags: "핀테크", YearText: "미정"}}, nil)
	if len(rep.Rising) != 0 || len(rep.Falling) != 0 {
		t.Errorf("unparsable-year corpus should yield empty report: %+v", rep)
	}
}

func TestThemeTrends(t *testing.T) {
	e := newTestEngine(t)
	rep := e.ThemeTrends(trendCorpus())

	if rep.ID == "" {
		t.Error("report should carry an ID")
	}
	if len(rep.Years) != 10 {
		t.Errorf("Years = %v, want the full corpus range", rep.Years)
	}
}

func TestContrastKeywords(t *testing.T) {
	e := newTestEngine(t)

	var class, bg []record.Record
	for i := 0; i < 4; i++ {
		class = append(class, record.Record{
			ID:      fmt.Sprintf("c%d", i),
			Summary: "블록체인 송금 실증 결과",
		})
		bg = append(bg, record.Record{
			ID:      fmt.Sprintf("b%d", i),
			Summary: "세관 통관 절차 간소화",
		})
	}

	rep := e.ContrastKeywords("핀테크", class, bg, 5)
	if rep.Class != "핀테크" {
		t.Errorf("Class = %q", rep.Class)
	}
	if len(rep.Keywords) == 0 {
		t.Fatal("no contrastive keywords")
	}
	if len(rep.Keywords) > 5 {
		t.Errorf("got %d keywords, want at most 5", len(rep.Keywords))
	}

	found := false
	for _, kw := range rep.Keywords {
		if kw.Term == "블록체인" || kw.Term == "송금" ||
			kw.Term == "블록체인 송금" || kw.Term == "블록체인 송금 실증" {
			found = true
		}
	}
	if !found {
		t.Errorf("class vocabulary missing from keywords: %+v", rep.Keywords)
	}
}

func TestExcerptsDeterministic(t *testing.T) {
	e := newTestEngine(t)

	var recs []record.Record
	for i := 0; i < 15; i++ {
		recs = append(recs, record.Record{
			ID:      fmt.Sprintf("d%d", i),
			Summary: "블록체인 기반 실증을 진행했다.",
		})
	}

	a := e.Excerpts(recs, "블록체인", 3)
	b := e.Excerpts(recs, "블록체인", 3)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("excerpt sampling should be deterministic: %+v vs %+v", a, b)
	}
	if len(a) != 3 {
		t.Errorf("got %d excerpts, want 3", len(a))
	}
}
