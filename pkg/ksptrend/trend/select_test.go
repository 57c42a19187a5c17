package trend

import (
	"testing"

	"github.com/cognicore/ksptrend/pkg/ksptrend/timeline"
)

func TestSignalsCounts(t *testing.T) {
	up := Signals{LastLift: 1.5, CAGR: 10, DeltaShare: 2}
	if up.UpCount() != 3 || up.DownCount() != 0 {
		t.Errorf("all-up signals: up=%d down=%d", up.UpCount(), up.DownCount())
	}

	down := Signals{LastLift: 0.5, CAGR: -10, DeltaShare: -2}
	if down.UpCount() != 0 || down.DownCount() != 3 {
		t.Errorf("all-down signals: up=%d down=%d", down.UpCount(), down.DownCount())
	}

	// LastLift exactly 1.0 counts as up, not down.
	edge := Signals{LastLift: 1.0, CAGR: 0, DeltaShare: 0}
	if edge.UpCount() != 1 || edge.DownCount() != 0 {
		t.Errorf("lift=1 boundary: up=%d down=%d", edge.UpCount(), edge.DownCount())
	}
}

func TestSignalsTwoOfThreeMixed(t *testing.T) {
	// Lift up and growing but share slipping: two of three still point
	// up, which is enough to qualify as rising.
	s := Signals{LastLift: 1.2, CAGR: 5, DeltaShare: -0.5}
	if s.UpCount() < 2 {
		t.Errorf("UpCount = %d, want >= 2", s.UpCount())
	}
	if s.DownCount() >= 2 {
		t.Errorf("DownCount = %d, should not also qualify down", s.DownCount())
	}
}

func trendIndex(counts map[string]map[int]int) timeline.Index {
	years := yearRange(2016, 2025)
	return testIndex(years, uniformDocs(years, 10), counts)
}

func risingCounts() map[int]int {
	out := make(map[int]int)
	for i, y := range yearRange(2016, 2025) {
		out[y] = i
	}
	return out
}

func fallingCounts() map[int]int {
	out := make(map[int]int)
	for i, y := range yearRange(2016, 2025) {
		out[y] = 9 - i
	}
	return out
}

func TestClassifyDirections(t *testing.T) {
	ix := trendIndex(map[string]map[int]int{
		"up":   risingCounts(),
		"down": fallingCounts(),
	})
	p := DefaultParams()
	sl := BuildShareLift([]string{"up", "down"}, ix, p)
	cls := Classify(sl, ix, p)

	if len(cls.Rising) != 1 || cls.Rising[0].Token != "up" {
		t.Errorf("Rising = %+v, want [up]", cls.Rising)
	}
	if len(cls.Falling) != 1 || cls.Falling[0].Token != "down" {
		t.Errorf("Falling = %+v, want [down]", cls.Falling)
	}
	if cls.Rising[0].Score <= 0 {
		t.Errorf("rising score should be positive, got %f", cls.Rising[0].Score)
	}
}

func TestClassifyDisjointAndEqualLength(t *testing.T) {
	ix := trendIndex(map[string]map[int]int{
		"up1":  risingCounts(),
		"up2":  risingCounts(),
		"down": fallingCounts(),
	})
	p := DefaultParams()
	sl := BuildShareLift([]string{"up1", "up2", "down"}, ix, p)
	cls := Classify(sl, ix, p)

	if len(cls.Rising) != len(cls.Falling) {
		t.Fatalf("sides must have equal length: rising=%d falling=%d",
			len(cls.Rising), len(cls.Falling))
	}
	seen := make(map[string]bool)
	for _, s := range cls.Rising {
		seen[s.Token] = true
	}
	for _, s := range cls.Falling {
		if seen[s.Token] {
			t.Errorf("token %q on both sides", s.Token)
		}
	}
	// Two rising candidates against one falling: symmetric truncation
	// keeps one of each.
	if len(cls.Falling) != 1 || cls.Falling[0].Token != "down" {
		t.Errorf("Falling = %+v, want [down]", cls.Falling)
	}
}

func TestClassifyTopKCap(t *testing.T) {
	counts := make(map[string]map[int]int)
	tokens := []string{"a1", "a2", "a3", "b1", "b2", "b3"}
	for _, tok := range tokens[:3] {
		counts[tok] = risingCounts()
	}
	for _, tok := range tokens[3:] {
		counts[tok] = fallingCounts()
	}
	ix := trendIndex(counts)
	p := DefaultParams()
	p.TopK = 2
	sl := BuildShareLift(tokens, ix, p)
	cls := Classify(sl, ix, p)

	if len(cls.Rising) != 2 || len(cls.Falling) != 2 {
		t.Errorf("TopK=2 should cap both sides: rising=%d falling=%d",
			len(cls.Rising), len(cls.Falling))
	}
}

func TestClassifyWindowYears(t *testing.T) {
	ix := trendIndex(map[string]map[int]int{"up": risingCounts()})
	p := DefaultParams()
	p.WindowYears = 5
	sl := BuildShareLift([]string{"up"}, ix, p)
	cls := Classify(sl, ix, p)

	if len(cls.WindowYears) != 5 {
		t.Fatalf("WindowYears = %v, want 5 trailing years", cls.WindowYears)
	}
	if cls.WindowYears[0] != 2021 || cls.WindowYears[4] != 2025 {
		t.Errorf("WindowYears = %v, want 2021..2025", cls.WindowYears)
	}
}

func TestClassifyEmpty(t *testing.T) {
	cls := Classify(ShareLift{}, timeline.Index{}, DefaultParams())
	if len(cls.Rising) != 0 || len(cls.Falling) != 0 || len(cls.WindowYears) != 0 {
		t.Errorf("empty input should classify to nothing: %+v", cls)
	}
}

func TestClassifyDeterministic(t *testing.T) {
	ix := trendIndex(map[string]map[int]int{
		"up1":   risingCounts(),
		"up2":   risingCounts(),
		"down1": fallingCounts(),
		"down2": fallingCounts(),
	})
	p := DefaultParams()
	sl := BuildShareLift([]string{"up1", "up2", "down1", "down2"}, ix, p)

	a := Classify(sl, ix, p)
	b := Classify(sl, ix, p)
	if len(a.Rising) != len(b.Rising) {
		t.Fatal("repeated classification differs in length")
	}
	for i := range a.Rising {
		if a.Rising[i] != b.Rising[i] {
			t.Errorf("rising[%d] differs: %+v vs %+v", i, a.Rising[i], b.Rising[i])
		}
	}
	for i := range a.Falling {
		if a.Falling[i] != b.Falling[i] {
			t.Errorf("falling[%d] differs: %+v vs %+v", i, a.Falling[i], b.Falling[i])
		}
	}
}
