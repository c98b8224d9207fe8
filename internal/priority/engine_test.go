package priority

import (
	"reflect"
	"testing"
)

// item is a minimal fixture type for exercising the generic engine.
type item struct {
	ID    string
	Flags int
	Score float64
}

func constantFactor(rt ReasonType, label string, score float64) Factor[item] {
	return func(item) Outcome {
		if score <= 0 {
			return Outcome{}
		}
		return Outcome{Score: score, Reason: &Reason{Type: rt, Label: label, Weight: score}}
	}
}

func monitorSuggest(_ item, reasons []Reason) string {
	if len(reasons) == 0 {
		return "Monitor"
	}
	return "Act on " + string(reasons[0].Type)
}

// --- CalculatePriority ---

func TestCalculatePriority_ScoreIsSumOfReasonWeights(t *testing.T) {
	engine := New(Config[item]{
		Factors: []Factor[item]{
			constantFactor(ReasonFlaggedItems, "flags", 35),
			constantFactor(ReasonOpenQuestions, "questions", 20),
			constantFactor(ReasonStatus, "status", 8),
		},
		Suggest: monitorSuggest,
	})

	result := engine.CalculatePriority(item{ID: "t1"})

	if result.Score != 63 {
		t.Fatalf("expected score 63, got %v", result.Score)
	}
	var sum float64
	for _, r := range result.Reasons {
		sum += r.Weight
	}
	if sum != result.Score {
		t.Errorf("reason weights sum to %v, score is %v", sum, result.Score)
	}
}

func TestCalculatePriority_ZeroScoreFactorsEmitNoReason(t *testing.T) {
	engine := New(Config[item]{
		Factors: []Factor[item]{
			constantFactor(ReasonFlaggedItems, "flags", 10),
			constantFactor(ReasonStatus, "never", 0),
		},
		Suggest: monitorSuggest,
	})

	result := engine.CalculatePriority(item{})
	if len(result.Reasons) != 1 {
		t.Fatalf("expected 1 reason, got %d", len(result.Reasons))
	}
	if result.Reasons[0].Type != ReasonFlaggedItems {
		t.Errorf("expected flagged_items reason, got %s", result.Reasons[0].Type)
	}
}

func TestCalculatePriority_ReasonsSortedByDescendingWeight(t *testing.T) {
	engine := New(Config[item]{
		Factors: []Factor[item]{
			constantFactor(ReasonStatus, "small", 8),
			constantFactor(ReasonFlaggedItems, "big", 35),
			constantFactor(ReasonOpenQuestions, "mid", 20),
		},
		Suggest: monitorSuggest,
	})

	result := engine.CalculatePriority(item{})
	want := []float64{35, 20, 8}
	for i, w := range want {
		if result.Reasons[i].Weight != w {
			t.Errorf("reason %d: expected weight %v, got %v", i, w, result.Reasons[i].Weight)
		}
	}
}

func TestCalculatePriority_EqualWeightsKeepRegistrationOrder(t *testing.T) {
	engine := New(Config[item]{
		Factors: []Factor[item]{
			constantFactor(ReasonFlaggedItems, "first", 10),
			constantFactor(ReasonOpenQuestions, "second", 10),
			constantFactor(ReasonStatus, "third", 10),
		},
		Suggest: monitorSuggest,
	})

	result := engine.CalculatePriority(item{})
	want := []string{"first", "second", "third"}
	for i, label := range want {
		if result.Reasons[i].Label != label {
			t.Errorf("reason %d: expected label %q, got %q", i, label, result.Reasons[i].Label)
		}
	}
}

func TestCalculatePriority_AllFactorsAlwaysRun(t *testing.T) {
	calls := 0
	counting := func(item) Outcome {
		calls++
		return Outcome{Score: 50, Reason: &Reason{Type: ReasonStatus, Label: "x", Weight: 50}}
	}
	engine := New(Config[item]{
		Factors: []Factor[item]{counting, counting, counting},
		Suggest: monitorSuggest,
	})

	result := engine.CalculatePriority(item{})
	if calls != 3 {
		t.Errorf("expected all 3 factors to run, got %d calls", calls)
	}
	if result.Score != 150 {
		t.Errorf("expected additive score 150, got %v", result.Score)
	}
}

func TestCalculatePriority_NoFactorsYieldsNeutralDefault(t *testing.T) {
	engine := New(Config[item]{Suggest: monitorSuggest})

	result := engine.CalculatePriority(item{})
	if result.Score != 0 {
		t.Errorf("expected score 0, got %v", result.Score)
	}
	if len(result.Reasons) != 0 {
		t.Errorf("expected no reasons, got %d", len(result.Reasons))
	}
	if result.SuggestedAction != "Monitor" {
		t.Errorf("expected neutral default action, got %q", result.SuggestedAction)
	}
}

func TestCalculatePriority_SuggestionSeesDominantReasonFirst(t *testing.T) {
	engine := New(Config[item]{
		Factors: []Factor[item]{
			constantFactor(ReasonStatus, "small", 5),
			constantFactor(ReasonDeadline, "big", 50),
		},
		Suggest: monitorSuggest,
	})

	result := engine.CalculatePriority(item{})
	if result.SuggestedAction != "Act on deadline" {
		t.Errorf("expected action keyed off dominant reason, got %q", result.SuggestedAction)
	}
}

func TestCalculatePriority_Deterministic(t *testing.T) {
	engine := New(Config[item]{
		Factors: []Factor[item]{
			constantFactor(ReasonFlaggedItems, "flags", 35),
			constantFactor(ReasonStatus, "status", 8),
		},
		Suggest: monitorSuggest,
	})

	fixture := item{ID: "t1", Flags: 5}
	first := engine.CalculatePriority(fixture)
	second := engine.CalculatePriority(fixture)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("expected identical results, got %+v and %+v", first, second)
	}
}

// --- PrioritizeItems ---

func TestPrioritizeItems_SortedByDescendingScore(t *testing.T) {
	scoreByFlags := func(it item) Outcome {
		if it.Flags == 0 {
			return Outcome{}
		}
		w := float64(it.Flags * 10)
		return Outcome{Score: w, Reason: &Reason{Type: ReasonFlaggedItems, Label: "flags", Weight: w}}
	}
	engine := New(Config[item]{
		Factors: []Factor[item]{scoreByFlags},
		Suggest: monitorSuggest,
	})

	ranked := engine.PrioritizeItems([]item{
		{ID: "low", Flags: 1},
		{ID: "high", Flags: 9},
		{ID: "mid", Flags: 4},
	})

	want := []string{"high", "mid", "low"}
	for i, id := range want {
		if ranked[i].Item.ID != id {
			t.Errorf("rank %d: expected %q, got %q", i, id, ranked[i].Item.ID)
		}
	}
	for i := 1; i < len(ranked); i++ {
		if ranked[i].Priority.Score > ranked[i-1].Priority.Score {
			t.Errorf("scores not non-increasing at index %d", i)
		}
	}
}

func TestPrioritizeItems_StableForEqualScores(t *testing.T) {
	engine := New(Config[item]{
		Factors: []Factor[item]{constantFactor(ReasonStatus, "same", 10)},
		Suggest: monitorSuggest,
	})

	// Large enough that an unstable comparator sort would reorder.
	items := make([]item, 50)
	for i := range items {
		items[i] = item{ID: string(rune('a' + i%26)), Flags: i}
	}

	ranked := engine.PrioritizeItems(items)
	for i, p := range ranked {
		if p.Item.Flags != items[i].Flags {
			t.Fatalf("equal-score items reordered at index %d", i)
		}
	}
}

func TestPrioritizeItems_DoesNotMutateInput(t *testing.T) {
	engine := New(Config[item]{
		Factors: []Factor[item]{constantFactor(ReasonStatus, "s", 10)},
		Suggest: monitorSuggest,
	})

	items := []item{{ID: "a"}, {ID: "b"}}
	_ = engine.PrioritizeItems(items)
	if items[0].ID != "a" || items[1].ID != "b" {
		t.Error("PrioritizeItems mutated the input slice")
	}
}

func TestPrioritizeItems_Empty(t *testing.T) {
	engine := New(Config[item]{Suggest: monitorSuggest})
	ranked := engine.PrioritizeItems(nil)
	if len(ranked) != 0 {
		t.Fatalf("expected empty ranking, got %d", len(ranked))
	}
}

// --- Summarize ---

func TestSummarize_CountsSumToTotal(t *testing.T) {
	engine := New(Config[item]{
		Factors: []Factor[item]{func(it item) Outcome {
			if it.Score <= 0 {
				return Outcome{}
			}
			return Outcome{Score: it.Score, Reason: &Reason{Type: ReasonStatus, Label: "s", Weight: it.Score}}
		}},
		Suggest: monitorSuggest,
	})

	ranked := engine.PrioritizeItems([]item{
		{Score: 95}, {Score: 70}, {Score: 40}, {Score: 39.9},
		{Score: 20}, {Score: 19}, {Score: 0},
	})
	stats := engine.Summarize(ranked)

	if stats.Critical != 2 || stats.High != 1 || stats.Medium != 2 || stats.Low != 2 {
		t.Errorf("unexpected distribution: %+v", stats)
	}
	if stats.Critical+stats.High+stats.Medium+stats.Low != stats.Total {
		t.Errorf("bucket counts do not sum to total: %+v", stats)
	}
	if stats.Total != 7 {
		t.Errorf("expected total 7, got %d", stats.Total)
	}
}

func TestSummarize_EmptyCollection(t *testing.T) {
	engine := New(Config[item]{Suggest: monitorSuggest})
	stats := engine.Summarize(nil)
	if stats != (Stats{}) {
		t.Errorf("expected all-zero stats, got %+v", stats)
	}
}

// --- Buckets ---

func TestBucketsClassify_BoundariesAreInclusive(t *testing.T) {
	b := DefaultBuckets()
	tests := []struct {
		score float64
		want  Band
	}{
		{100, BandCritical},
		{70, BandCritical},
		{69.9, BandHigh},
		{40, BandHigh},
		{39.9, BandMedium},
		{20, BandMedium},
		{19.9, BandLow},
		{0, BandLow},
	}
	for _, tc := range tests {
		if got := b.Classify(tc.score); got != tc.want {
			t.Errorf("Classify(%v) = %s, want %s", tc.score, got, tc.want)
		}
	}
}

func TestNew_ZeroBucketsSelectsDefaults(t *testing.T) {
	engine := New(Config[item]{Suggest: monitorSuggest})
	if engine.Buckets() != DefaultBuckets() {
		t.Errorf("expected default buckets, got %+v", engine.Buckets())
	}
}
