package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadStoplist(t *testing.T) {
	path := writeFile(t, "stop.yaml", "terms:\n  - 추가어\n  - extra\n")

	sl, err := LoadStoplist(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(sl.Terms) != 2 || sl.Terms[0] != "추가어" {
		t.Errorf("Terms = %v", sl.Terms)
	}
}

func TestLoadSynonymsMap(t *testing.T) {
	path := writeFile(t, "syn.yaml", `synonyms:
  - canonical: 핀테크
    variants: [fintech, 핀텍]
`)
	s, err := LoadSynonyms(path)
	if err != nil {
		t.Fatal(err)
	}
	m := s.Map()
	if m["fintech"] != "핀테크" || m["핀텍"] != "핀테크" {
		t.Errorf("Map = %v", m)
	}
}

func TestLoadThemesCompile(t *testing.T) {
	path := writeFile(t, "themes.yaml", `themes:
  - label: 좋은패턴
    pattern: 'smart\s*city'
  - label: 나쁜패턴
    pattern: '(['
`)
	th, err := LoadThemes(path)
	if err != nil {
		t.Fatal(err)
	}
	compiled := th.Compile()
	if len(compiled) != 1 || compiled[0].Label != "좋은패턴" {
		t.Errorf("bad pattern should be skipped, got %d themes", len(compiled))
	}
}

func TestLoadParamsMerge(t *testing.T) {
	path := writeFile(t, "params.yaml", "top_k: 10\nmmr_lambda: 0.5\nspan_guard: 15\n")

	p, err := LoadParams(path)
	if err != nil {
		t.Fatal(err)
	}

	tp := p.TrendParams()
	if tp.TopK != 10 {
		t.Errorf("TopK = %d, want 10", tp.TopK)
	}
	if tp.Roll != 5 || tp.Alpha != 0.7 {
		t.Errorf("unset fields should keep defaults: roll=%d alpha=%g", tp.Roll, tp.Alpha)
	}

	yc := p.YearspanConfig()
	if yc.MaxSpan != 15 {
		t.Errorf("MaxSpan = %d, want 15", yc.MaxSpan)
	}
	if yc.MinYear != 1990 || yc.MaxYear != 2035 {
		t.Errorf("year bounds should keep defaults: %+v", yc)
	}

	cc := p.ContrastConfig()
	if cc.MMRLambda != 0.5 {
		t.Errorf("MMRLambda = %g, want 0.5", cc.MMRLambda)
	}
	if cc.Epsilon != 1e-6 {
		t.Errorf("Epsilon should keep default, got %g", cc.Epsilon)
	}
}

func TestLoadParamsInvalid(t *testing.T) {
	cases := []string{
		"mmr_lambda: 1.5\n",
		"alpha: -1\n",
		"roll: -2\n",
		"min_year: 2030\nmax_year: 2000\n",
	}
	for _, content := range cases {
		path := writeFile(t, "bad.yaml", content)
		if _, err := LoadParams(path); err == nil {
			t.Errorf("content %q should fail validation", content)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := LoadStoplist(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("missing file should error")
	}
}
