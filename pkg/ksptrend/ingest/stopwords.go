package ingest

import (
	"sort"
	"strings"

	"github.com/cognicore/ksptrend/pkg/ksptrend/record"
)

// BaseStopwords returns the curated static stoplist for the KSP
// corpus: report boilerplate, program acronyms, generic policy
// vocabulary, and chart-axis words. Comparison is case-insensitive.
func BaseStopwords() []string {
	return []string{
		// program / institution acronyms
		"ksp", "koica", "kdi", "idb", "ebrd", "wb", "adb", "eu", "ntca",
		// report boilerplate (Korean)
		"및", "등", "관련", "수립", "방안", "개선", "전략", "지원", "정책",
		"사업", "프로젝트", "제도", "구축", "도입", "개요", "현황", "위한",
		"활용", "분석", "제공", "개발", "기반", "디지털", "데이터", "정부",
		"국가", "한국", "연구", "보고", "최종", "중간", "성과", "향상",
		"제고", "차세대", "로드맵", "운영", "서비스", "사례", "모델", "산업",
		"비교", "최종보고", "중간보고", "비전", "평가", "통해", "관리",
		"통합", "협력", "체계", "적용", "포털", "자료", "추정", "계획",
		"기술", "과제", "현안", "기획", "추진", "전자정부", "마스터플랜",
		"고도화", "컨설팅", "정비", "도시", "인프라", "플랫폼", "플렛폼",
		"시스템", "조달", "법제", "가이드라인", "경제", "사회", "시장",
		"중장기", "공공", "강화", "확대", "예정", "현지", "정합성", "개편",
		"개정", "업그레이드", "시범", "교육", "건설", "세정", "민간", "근거",
		"재정", "인사", "투자", "훈련", "홍보", "조정", "무역", "클라우드",
		"데이터센터", "전자", "감사", "등록", "집행", "사이버", "원격",
		"사용자", "콜센터", "에너지", "전자조달", "금융", "납세", "정보화",
		"조세", "의료", "교통", "인증", "보안", "성장", "안전", "예산",
		// axis / label words
		"연도", "년도", "year", "years",
		// English stock phrases
		"and", "or", "of", "in", "to", "for", "the", "with", "on", "by",
		"from", "data", "digital", "service", "services", "policy",
		"strategy", "plan", "roadmap", "project", "program", "system",
		"platform", "portal", "model", "evaluation", "improvement",
		"implementation", "phase", "final", "interim", "procurement",
		"vision", "ip", "vat",
	}
}

// DynamicStopwordColumns lists the logical columns whose distinct
// values become corpus-driven stopwords: a keyword identical to a
// classification or country label carries no signal within that
// corpus.
var DynamicStopwordColumns = []struct {
	Canonical string
	Aliases   []string
}{
	{"주제분류(대)", []string{"주제분류", "topic"}},
	{"ICT 유형", []string{"ICT유형", "WB", "ict_class"}},
	{"대상국", []string{"국가", "country"}},
	{"대상기관", []string{"agency"}},
	{"지원기관", []string{"sponsor"}},
}

// BuildDynamicStopwords returns a fresh, sorted list of case-folded
// distinct values from the classification/country/institution columns
// of the given table. The result is recomputed per corpus; nothing is
// cached in package state.
func BuildDynamicStopwords(t *record.Table) []string {
	if t == nil {
		return nil
	}
	seen := make(map[string]struct{})
	for _, col := range DynamicStopwordColumns {
		values, ok := t.ResolveColumn(col.Canonical, col.Aliases...)
		if !ok {
			continue
		}
		for _, v := range values {
			v = strings.ToLower(strings.TrimSpace(v))
			if v != "" {
				seen[v] = struct{}{}
			}
		}
	}
	out := make([]string, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// DynamicStopwordsFromRecords derives the same corpus-driven set from
// already-materialized records, for callers that bypass the table
// layer.
func DynamicStopwordsFromRecords(records []record.Record) []string {
	seen := make(map[string]struct{})
	add := func(v string) {
		v = strings.ToLower(strings.TrimSpace(v))
		if v != "" {
			seen[v] = struct{}{}
		}
	}
	for _, r := range records {
		add(r.Topic)
		add(r.ICTClass)
		add(r.Country)
		add(r.Agency)
		add(r.Sponsor)
	}
	out := make([]string, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
