package excerpt

import (
	"reflect"
	"testing"

	"github.com/cognicore/ksptrend/pkg/ksptrend/record"
)

func sampleCorpus() []record.Record {
	return []record.Record{
		{ID: "a", Summary: "전자조달 시스템을 도입했다. 효과가 좋았다."},
		{ID: "b", Content: "베트남은 전자조달 제도를 정비 중이다. 추가 과제가 남았다."},
		{ID: "c", Summary: "관련 없는 내용이다."},
	}
}

func TestSampleFindsMatches(t *testing.T) {
	s := NewSampler(1)
	got := s.Sample(sampleCorpus(), "전자조달", 10)

	if len(got) != 2 {
		t.Fatalf("got %d excerpts, want 2", len(got))
	}
	// Fewer matches than n: corpus order, no sampling.
	if got[0].RecordID != "a" || got[1].RecordID != "b" {
		t.Errorf("excerpts out of corpus order: %+v", got)
	}
}

func TestSampleCaseInsensitive(t *testing.T) {
	recs := []record.Record{{ID: "a", Summary: "The e-GP rollout finished early."}}
	got := NewSampler(1).Sample(recs, "E-gp", 5)
	if len(got) != 1 {
		t.Errorf("case-insensitive match failed: %+v", got)
	}
}

func TestSampleDeterministic(t *testing.T) {
	var recs []record.Record
	for i := 0; i < 20; i++ {
		recs = append(recs, record.Record{
			ID:      string(rune('a' + i)),
			Summary: "전자조달 사례를 검토했다.",
		})
	}

	a := NewSampler(7).Sample(recs, "전자조달", 3)
	b := NewSampler(7).Sample(recs, "전자조달", 3)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("same seed should sample identically: %+v vs %+v", a, b)
	}
	if len(a) != 3 {
		t.Errorf("got %d excerpts, want 3", len(a))
	}
}

func TestSampleEmptyKeyword(t *testing.T) {
	if got := NewSampler(1).Sample(sampleCorpus(), "  ", 5); got != nil {
		t.Errorf("blank keyword = %v, want nil", got)
	}
	if got := NewSampler(1).Sample(sampleCorpus(), "전자조달", 0); got != nil {
		t.Errorf("n=0 = %v, want nil", got)
	}
}

func TestSplitSentences(t *testing.T) {
	got := SplitSentences("첫 번째 문장이다. 두 번째 문장이다! 셋째 문장입니다？")
	if len(got) != 3 {
		t.Fatalf("got %d sentences: %v", len(got), got)
	}
	if got[0] != "첫 번째 문장이다" {
		t.Errorf("sentence[0] = %q", got[0])
	}
}

func TestSplitSentencesDropsFragments(t *testing.T) {
	got := SplitSentences("짧다. 이것은 충분히 긴 문장이다.")
	if len(got) != 1 {
		t.Fatalf("got %v, want the long sentence only", got)
	}
}

func TestSplitSentencesNewline(t *testing.T) {
	got := SplitSentences("줄바꿈으로 끝나는 문장\n다음 줄의 문장이다")
	if len(got) != 2 {
		t.Errorf("newline should split: %v", got)
	}
}
