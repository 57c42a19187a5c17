// Package themes detects curated policy themes in record text and
// computes rising/falling theme trends.
//
// Themes are regex-driven: each theme is a case-insensitive pattern
// over the concatenated, normalized text fields of a record. Unlike
// the keyword path, theme assignment is many-per-record and does not
// go through the tokenizer.
package themes

import (
	"regexp"
	"strings"

	"github.com/cognicore/ksptrend/pkg/ksptrend/record"
)

// Theme is a labeled detection pattern.
type Theme struct {
	Label   string
	Pattern *regexp.Regexp
}

// Compile builds a Theme from a label and a case-insensitive pattern
// string.
func Compile(label, pattern string) (Theme, error) {
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return Theme{}, err
	}
	return Theme{Label: label, Pattern: re}, nil
}

// DefaultThemes returns the curated KSP theme inventory.
func DefaultThemes() []Theme {
	defs := []struct{ label, pattern string }{
		{"전자조달·e-Procurement", `전자\s*조달|e[\s-]*procurement|e[\s-]*gp\b|joneps|koneps|prozorro`},
		{"전자무역·e-Invoice", `전자\s*무역|디지털\s*무역|e[\s-]*trade|전자\s*상거래|e[\s-]*commerce|trade\s*facilitation|전자\s*세금\s*계산서|전자세금계산서|e[\s-]*invoice|전자\s*인보이스`},
		{"재정관리(IFMIS)", `ifmis|통합\s*재정관리|재정관리\s*정보\s*시스템|government[-\s]*wide\s*fm|span\b`},
		{"전자서명/PKI", `전자\s*서명|디지털\s*인증|pki|공인인증|electronic\s*signature|digital\s*certificat(?:e|ion)|certification\s*authority`},
		{"지식재산·출원심사", `지식\s*재산|지식재산권|ip\b|inapi|특허|출원\s*심사|출원심사|patent|trademark|상표`},
		{"데이터거버넌스·정부 클라우드", `데이터\s*센터|데이터센터|클라우드|cloud|gov\s*cloud|government\s*cloud|데이터\s*거버넌스|data\s*governance|데이터\s*플랫폼`},
		{"NEIS교육보건·축산 ICT", `neis|나이스|교육\s*행정\s*정보\s*시스템|emis\b|education\s*management\s*information\s*system|e[\s-]*health|telemedicine|ehr\b|his\b|hmis\b|(?:보건|건강|health)\s*(?:ict|정보|시스템|플랫폼)|(?:livestock|축산|가축|도축|meat|nmis|이력\s*추적)\s*(?:ict|정보|시스템|플랫폼|추적|관리)`},
		{"관광 빅데이터", `관광\s*빅데이터|tourism\s*data|모바일\s*데이터\s*관광|tourism\s*analytics|관광\s*분석`},
		{"교육 ICT", `교육\s*ict|포용적\s*교육|스마트\s*교실|edtech|디지털\s*교재|스마트\s*교육`},
		{"행정개혁·내부통제", `내부\s*감사|내부\s*통제|it\s*통제|internal\s*audit|internal\s*control|bpkp|감사\s*체계|거버넌스\s*개선`},
		{"스마트시티·수문관측", `스마트\s*시티|smart\s*city|hydro(?:met|meteorolog)|automatic\s*weather\s*station|rain\s*gauge|우량계?|강우|수문|수위|관측\s*네트워크|iot\s*센서|telemetry|scada`},
	}
	out := make([]Theme, 0, len(defs))
	for _, d := range defs {
		th, err := Compile(d.label, d.pattern)
		if err != nil {
			continue
		}
		out = append(out, th)
	}
	return out
}

var (
	quoteRE  = regexp.MustCompile("[“”\"'`]")
	bulletRE = regexp.MustCompile(`[·∙•‧･・]`)
	spaceRE  = regexp.MustCompile(`\s+`)
)

// NormalizeText concatenates a record's text-bearing fields (ID,
// topic label, summary, main content) and lowercases them for pattern
// matching. Auxiliary narrative fields outside the record model are
// not part of the match surface.
func NormalizeText(r record.Record) string {
	parts := []string{r.ID, r.Topic, r.Summary, r.Content}
	t := strings.ToLower(strings.Join(parts, " "))
	t = quoteRE.ReplaceAllString(t, "")
	t = bulletRE.ReplaceAllString(t, " ")
	return strings.TrimSpace(spaceRE.ReplaceAllString(t, " "))
}

// Detect returns the labels of all themes matching the text, in
// inventory order.
func Detect(text string, themes []Theme) []string {
	var hits []string
	for _, th := range themes {
		if th.Pattern.MatchString(text) {
			hits = append(hits, th.Label)
		}
	}
	return hits
}
