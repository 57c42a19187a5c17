package record

import (
	"reflect"
	"testing"
)

func TestAddColumnDuplicateKeepsFirst(t *testing.T) {
	tab := NewTable(2)
	tab.AddColumn("연도", []string{"2020", "2021"})
	tab.AddColumn("연도", []string{"1999", "1999"})

	col, ok := tab.Column("연도")
	if !ok {
		t.Fatal("column missing")
	}
	if col[0] != "2020" {
		t.Errorf("duplicate column overwrote first, got %q", col[0])
	}
}

func TestAddColumnWrongLength(t *testing.T) {
	tab := NewTable(3)
	tab.AddColumn("short", []string{"a"})
	tab.AddColumn("long", []string{"a", "b", "c", "d"})

	short, _ := tab.Column("short")
	if len(short) != 3 || short[1] != "" {
		t.Errorf("short column not padded: %v", short)
	}
	long, _ := tab.Column("long")
	if len(long) != 3 {
		t.Errorf("long column not truncated: %v", long)
	}
}

func TestResolveColumnAliases(t *testing.T) {
	tab := NewTable(1)
	tab.AddColumn("Hashtag_str", []string{"조달"})

	col, ok := tab.ResolveColumn("Hashtag", "Hashtag_str", "해시태그")
	if !ok {
		t.Fatal("alias chain did not resolve")
	}
	if col[0] != "조달" {
		t.Errorf("resolved wrong column: %v", col)
	}
}

func TestResolveColumnCaseFold(t *testing.T) {
	tab := NewTable(1)
	tab.AddColumn(" HASHTAG ", []string{"x"})

	if _, ok := tab.ResolveColumn("hashtag"); !ok {
		t.Error("case/space-folded match should resolve")
	}
}

func TestResolveColumnMissing(t *testing.T) {
	tab := NewTable(1)
	if _, ok := tab.ResolveColumn("없는컬럼", "also-missing"); ok {
		t.Error("missing column should not resolve")
	}
}

func TestRecordsMaterialization(t *testing.T) {
	tab := NewTable(2)
	tab.AddColumn("파일명", []string{" a.pdf ", "b.pdf"})
	tab.AddColumn("요약", []string{"요약 하나", "요약 둘"})
	tab.AddColumn("연도", []string{"2020", "2021~2022"})
	tab.AddColumn("Hashtag", []string{"조달; PKI", ""})

	recs := tab.Records(DefaultMapping())
	if len(recs) != 2 {
		t.Fatalf("got %d records, want 2", len(recs))
	}
	if recs[0].ID != "a.pdf" {
		t.Errorf("ID not trimmed: %q", recs[0].ID)
	}
	if recs[1].YearText != "2021~2022" {
		t.Errorf("year text wrong: %q", recs[1].YearText)
	}
	// Missing columns degrade to empty fields.
	if recs[0].Country != "" || recs[0].Topic != "" {
		t.Errorf("missing columns should be empty: %+v", recs[0])
	}
}

func TestRecordText(t *testing.T) {
	r := Record{Summary: "요약", Content: "내용"}
	if got := r.Text(); got != "요약 내용" {
		t.Errorf("Text() = %q", got)
	}
	r = Record{Summary: "요약"}
	if got := r.Text(); got != "요약" {
		t.Errorf("Text() summary only = %q", got)
	}
	r = Record{Content: "내용"}
	if got := r.Text(); got != "내용" {
		t.Errorf("Text() content only = %q", got)
	}
}

func TestNames(t *testing.T) {
	tab := NewTable(0)
	tab.AddColumn("b", nil)
	tab.AddColumn("a", nil)
	if got := tab.Names(); !reflect.DeepEqual(got, []string{"b", "a"}) {
		t.Errorf("Names() = %v, want insertion order", got)
	}
}
