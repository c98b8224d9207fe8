package priority

import (
	"fmt"
	"math"
	"time"
)

// DeadlineTiers holds the score for each deadline proximity band.
type DeadlineTiers struct {
	Overdue     float64
	Today       float64
	Within3Days float64
	Within7Days float64
}

// DeadlineProximity returns a factor that scores an item by how close a
// date-valued field is to its deadline, using calendar-day granularity so a
// deadline does not flap across tiers during a single day.
//
// Tier precedence, first match wins: overdue, today, within 3 days, within
// 7 days, otherwise no contribution. An absent or unparseable date is not
// urgent by default and contributes zero with no reason; this leniency is
// deliberate so incomplete records never break a render.
func DeadlineProximity[T any](accessor func(T) string, tiers DeadlineTiers) Factor[T] {
	return func(item T) Outcome {
		deadline, ok := parseDate(accessor(item))
		if !ok {
			return Outcome{}
		}

		days := daysUntil(deadline, time.Now())

		var score float64
		var label string
		switch {
		case days < 0:
			score = tiers.Overdue
			label = fmt.Sprintf("Deadline overdue by %d day(s)", -days)
		case days == 0:
			score = tiers.Today
			label = "Deadline is today"
		case days <= 3:
			score = tiers.Within3Days
			label = fmt.Sprintf("Deadline in %d day(s)", days)
		case days <= 7:
			score = tiers.Within7Days
			label = fmt.Sprintf("Deadline in %d day(s)", days)
		default:
			return Outcome{}
		}

		if score <= 0 {
			return Outcome{}
		}
		return Outcome{
			Score:  score,
			Reason: &Reason{Type: ReasonDeadline, Label: label, Weight: score},
		}
	}
}

// CountTier maps a minimum count to a score. Tiers are evaluated in slice
// order, so callers list them from highest Min to lowest.
type CountTier struct {
	Min   int
	Score float64
}

// CountThreshold returns a factor that scores an integer-count field into
// discrete bands. labelFormat is an fmt format with one %d verb for the
// count. A count below every tier contributes zero with no reason.
func CountThreshold[T any](rt ReasonType, labelFormat string, accessor func(T) int, tiers []CountTier) Factor[T] {
	return func(item T) Outcome {
		count := accessor(item)
		for _, tier := range tiers {
			if count >= tier.Min && tier.Score > 0 {
				return Outcome{
					Score: tier.Score,
					Reason: &Reason{
						Type:   rt,
						Label:  fmt.Sprintf(labelFormat, count),
						Weight: tier.Score,
					},
				}
			}
		}
		return Outcome{}
	}
}

// StatusWeight is the label and score a status value contributes.
type StatusWeight struct {
	Label string
	Score float64
}

// StatusScore returns a factor that contributes a fixed score per enum
// state. Unknown states contribute zero with no reason.
func StatusScore[T any](rt ReasonType, accessor func(T) string, weights map[string]StatusWeight) Factor[T] {
	return func(item T) Outcome {
		w, ok := weights[accessor(item)]
		if !ok || w.Score <= 0 {
			return Outcome{}
		}
		return Outcome{
			Score:  w.Score,
			Reason: &Reason{Type: rt, Label: w.Label, Weight: w.Score},
		}
	}
}

// AmountTier maps a minimum monetary amount to a score and label.
type AmountTier struct {
	Min   float64
	Score float64
	Label string
}

// AmountThreshold returns a factor that scores a monetary field into
// discrete bands, listed from highest Min to lowest.
func AmountThreshold[T any](accessor func(T) float64, tiers []AmountTier) Factor[T] {
	return func(item T) Outcome {
		amount := accessor(item)
		for _, tier := range tiers {
			if amount >= tier.Min && tier.Score > 0 {
				return Outcome{
					Score:  tier.Score,
					Reason: &Reason{Type: ReasonAmount, Label: tier.Label, Weight: tier.Score},
				}
			}
		}
		return Outcome{}
	}
}

// parseDate parses a date-only string, falling back to RFC3339 for records
// that carry a full timestamp.
func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		t, err = time.Parse(time.RFC3339, s)
		if err != nil {
			return time.Time{}, false
		}
	}
	return t, true
}

// daysUntil returns the whole calendar days from now to the deadline,
// ignoring time of day. Rounding absorbs DST-shortened days.
func daysUntil(deadline, now time.Time) int {
	d := midnight(deadline)
	n := midnight(now.In(deadline.Location()))
	return int(math.Round(d.Sub(n).Hours() / 24))
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
