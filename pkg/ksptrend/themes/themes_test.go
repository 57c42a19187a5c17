package themes

import (
	"reflect"
	"testing"

	"github.com/cognicore/ksptrend/pkg/ksptrend/record"
)

func TestCompileCaseInsensitive(t *testing.T) {
	th, err := Compile("테스트", `smart\s*city`)
	if err != nil {
		t.Fatal(err)
	}
	if !th.Pattern.MatchString("SMART CITY 마스터플랜") {
		t.Error("pattern should match case-insensitively")
	}
}

func TestCompileInvalid(t *testing.T) {
	if _, err := Compile("bad", `([`); err == nil {
		t.Error("invalid pattern should fail to compile")
	}
}

func TestDefaultThemesAllCompile(t *testing.T) {
	inv := DefaultThemes()
	if len(inv) != 11 {
		t.Errorf("inventory has %d themes, want 11", len(inv))
	}
	for _, th := range inv {
		if th.Label == "" || th.Pattern == nil {
			t.Errorf("malformed theme: %+v", th)
		}
	}
}

func TestDetect(t *testing.T) {
	inv := DefaultThemes()

	cases := map[string]string{
		"전자조달 시스템 구축 지원":       "전자조달·e-Procurement",
		"e-procurement reform": "전자조달·e-Procurement",
		"정부 클라우드 이전 전략":        "데이터거버넌스·정부 클라우드",
		"smart city 플랫폼":       "스마트시티·수문관측",
		"공인인증 체계 개편":           "전자서명/PKI",
	}
	for text, want := range cases {
		hits := Detect(text, inv)
		found := false
		for _, h := range hits {
			if h == want {
				found = true
			}
		}
		if !found {
			t.Errorf("Detect(%q) = %v, want to include %q", text, hits, want)
		}
	}
}

func TestDetectNoMatch(t *testing.T) {
	if hits := Detect("일반 업무 일정", DefaultThemes()); hits != nil {
		t.Errorf("unrelated text matched: %v", hits)
	}
}

func TestDetectInventoryOrder(t *testing.T) {
	a, _ := Compile("first", `조달`)
	b, _ := Compile("second", `전자`)
	hits := Detect("전자조달", []Theme{a, b})
	if !reflect.DeepEqual(hits, []string{"first", "second"}) {
		t.Errorf("hits = %v, want inventory order", hits)
	}
}

func TestNormalizeText(t *testing.T) {
	r := record.Record{
		ID:      "Doc-1.pdf",
		Topic:   "전자정부",
		Summary: `“스마트  시티”`,
		Content: "관측·네트워크",
	}
	got := NormalizeText(r)
	want := "doc-1.pdf 전자정부 스마트 시티 관측 네트워크"
	if got != want {
		t.Errorf("NormalizeText = %q, want %q", got, want)
	}
}
