package priority

import (
	"strings"
	"testing"
	"time"
)

type record struct {
	Due    string
	Flags  int
	State  string
	Amount float64
}

func dateOffset(days int) string {
	return time.Now().AddDate(0, 0, days).Format("2006-01-02")
}

var testTiers = DeadlineTiers{Overdue: 50, Today: 40, Within3Days: 25, Within7Days: 10}

// --- DeadlineProximity ---

func TestDeadlineProximity_TierBoundaries(t *testing.T) {
	factor := DeadlineProximity(func(r record) string { return r.Due }, testTiers)

	tests := []struct {
		offset int
		want   float64
	}{
		{-2, 50},
		{-1, 50},
		{0, 40},
		{1, 25},
		{2, 25},
		{3, 25},
		{4, 10},
		{7, 10},
		{8, 0},
	}

	for _, tc := range tests {
		out := factor(record{Due: dateOffset(tc.offset)})
		if out.Score != tc.want {
			t.Errorf("offset %+d days: expected score %v, got %v", tc.offset, tc.want, out.Score)
		}
		if tc.want == 0 && out.Reason != nil {
			t.Errorf("offset %+d days: expected no reason, got %+v", tc.offset, out.Reason)
		}
		if tc.want > 0 && (out.Reason == nil || out.Reason.Weight != tc.want) {
			t.Errorf("offset %+d days: reason weight should equal score %v, got %+v", tc.offset, tc.want, out.Reason)
		}
	}
}

func TestDeadlineProximity_OverdueLabelContainsOverdue(t *testing.T) {
	factor := DeadlineProximity(func(r record) string { return r.Due }, testTiers)
	out := factor(record{Due: dateOffset(-2)})
	if out.Reason == nil || !strings.Contains(out.Reason.Label, "overdue") {
		t.Errorf("expected label containing %q, got %+v", "overdue", out.Reason)
	}
}

func TestDeadlineProximity_AbsentDateScoresZero(t *testing.T) {
	factor := DeadlineProximity(func(r record) string { return r.Due }, testTiers)
	out := factor(record{})
	if out.Score != 0 || out.Reason != nil {
		t.Errorf("expected zero outcome for absent date, got %+v", out)
	}
}

func TestDeadlineProximity_UnparseableDateScoresZero(t *testing.T) {
	factor := DeadlineProximity(func(r record) string { return r.Due }, testTiers)
	for _, due := range []string{"not-a-date", "31/12/2026", "soon"} {
		out := factor(record{Due: due})
		if out.Score != 0 || out.Reason != nil {
			t.Errorf("due %q: expected zero outcome, got %+v", due, out)
		}
	}
}

func TestDeadlineProximity_AcceptsRFC3339(t *testing.T) {
	factor := DeadlineProximity(func(r record) string { return r.Due }, testTiers)
	out := factor(record{Due: time.Now().AddDate(0, 0, -3).Format(time.RFC3339)})
	if out.Score != 50 {
		t.Errorf("expected overdue score 50 for RFC3339 date, got %v", out.Score)
	}
}

func TestDeadlineProximity_ReasonType(t *testing.T) {
	factor := DeadlineProximity(func(r record) string { return r.Due }, testTiers)
	out := factor(record{Due: dateOffset(0)})
	if out.Reason == nil || out.Reason.Type != ReasonDeadline {
		t.Errorf("expected deadline reason type, got %+v", out.Reason)
	}
}

// --- CountThreshold ---

func TestCountThreshold_TierSelection(t *testing.T) {
	factor := CountThreshold(ReasonFlaggedItems, "%d flagged item(s)",
		func(r record) int { return r.Flags },
		[]CountTier{{Min: 5, Score: 35}, {Min: 3, Score: 20}, {Min: 1, Score: 10}},
	)

	tests := []struct {
		flags int
		want  float64
	}{
		{0, 0},
		{1, 10},
		{2, 10},
		{3, 20},
		{4, 20},
		{5, 35},
		{12, 35},
	}
	for _, tc := range tests {
		out := factor(record{Flags: tc.flags})
		if out.Score != tc.want {
			t.Errorf("flags=%d: expected %v, got %v", tc.flags, tc.want, out.Score)
		}
	}
}

func TestCountThreshold_LabelIncludesCount(t *testing.T) {
	factor := CountThreshold(ReasonFlaggedItems, "%d flagged item(s)",
		func(r record) int { return r.Flags },
		[]CountTier{{Min: 1, Score: 10}},
	)
	out := factor(record{Flags: 4})
	if out.Reason == nil || out.Reason.Label != "4 flagged item(s)" {
		t.Errorf("unexpected label: %+v", out.Reason)
	}
}

func TestCountThreshold_ZeroCountEmitsNoReason(t *testing.T) {
	factor := CountThreshold(ReasonOpenQuestions, "%d open question(s)",
		func(r record) int { return r.Flags },
		[]CountTier{{Min: 1, Score: 5}},
	)
	out := factor(record{})
	if out.Score != 0 || out.Reason != nil {
		t.Errorf("expected zero outcome, got %+v", out)
	}
}

// --- StatusScore ---

func TestStatusScore_KnownAndUnknownStates(t *testing.T) {
	factor := StatusScore(ReasonStatus, func(r record) string { return r.State },
		map[string]StatusWeight{
			"failed":  {Label: "Settlement failed", Score: 30},
			"on_hold": {Label: "Settlement on hold", Score: 18},
		},
	)

	out := factor(record{State: "failed"})
	if out.Score != 30 || out.Reason == nil || out.Reason.Label != "Settlement failed" {
		t.Errorf("unexpected outcome for failed: %+v", out)
	}

	for _, state := range []string{"", "settled", "pending"} {
		out := factor(record{State: state})
		if out.Score != 0 || out.Reason != nil {
			t.Errorf("state %q: expected zero outcome, got %+v", state, out)
		}
	}
}

// --- AmountThreshold ---

func TestAmountThreshold_TierSelection(t *testing.T) {
	factor := AmountThreshold(func(r record) float64 { return r.Amount },
		[]AmountTier{
			{Min: 50_000_000, Score: 15, Label: "Large notional (>= $50M)"},
			{Min: 10_000_000, Score: 8, Label: "Sizable notional (>= $10M)"},
		},
	)

	tests := []struct {
		amount float64
		want   float64
	}{
		{60_000_000, 15},
		{50_000_000, 15},
		{49_999_999, 8},
		{10_000_000, 8},
		{9_999_999, 0},
		{0, 0},
	}
	for _, tc := range tests {
		out := factor(record{Amount: tc.amount})
		if out.Score != tc.want {
			t.Errorf("amount=%v: expected %v, got %v", tc.amount, tc.want, out.Score)
		}
	}
}
