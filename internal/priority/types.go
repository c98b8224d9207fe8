// Package priority provides a generic multi-factor priority engine.
//
// A domain wires an ordered list of factors and a suggestion generator into
// an Engine; the engine scores items additively, keeps an audit trail of
// which factors contributed, ranks collections, and summarizes the urgency
// distribution for dashboards.
package priority

// ReasonType is a stable machine-readable category for a priority reason.
// The string values are wire-visible in JSON output and must not change.
type ReasonType string

const (
	ReasonDeadline           ReasonType = "deadline"
	ReasonFlaggedItems       ReasonType = "flagged_items"
	ReasonOpenQuestions      ReasonType = "open_questions"
	ReasonDDProgress         ReasonType = "dd_progress"
	ReasonStatus             ReasonType = "status"
	ReasonAmount             ReasonType = "amount"
	ReasonUnresolvedComments ReasonType = "unresolved_comments"
	ReasonSeverity           ReasonType = "severity"
)

// Reason records why a factor contributed points. Weight equals the score
// the factor contributed for this item, so reasons are independently
// auditable against the total.
//
// Two factors registered with the same ReasonType produce two separate
// reasons; the engine never merges them.
type Reason struct {
	Type   ReasonType `json:"type"`
	Label  string     `json:"label"`
	Weight float64    `json:"weight"`
}

// Outcome is the result of evaluating one factor against one item.
// A factor that does not apply returns a zero Outcome.
type Outcome struct {
	Score  float64
	Reason *Reason
}

// Factor encapsulates one urgency signal as a pure function over an item.
// Implementations must be deterministic, must not perform I/O, and must
// handle every legal value of T (absent or malformed fields score zero).
type Factor[T any] func(item T) Outcome

// SuggestionFunc produces a suggested next action for an item given its
// contributing reasons, sorted by descending weight. It must return a
// neutral default when reasons is empty.
type SuggestionFunc[T any] func(item T, reasons []Reason) string

// Result is the computed priority for a single item.
type Result struct {
	Score           float64  `json:"score"`
	Reasons         []Reason `json:"reasons"`
	SuggestedAction string   `json:"suggested_action"`
}

// Prioritized pairs an item with its computed priority. Values are created
// fresh on every engine call and never mutated in place.
type Prioritized[T any] struct {
	Item     T      `json:"item"`
	Priority Result `json:"priority"`
}

// Band is a coarse urgency category derived from a score.
type Band int

const (
	BandLow Band = iota
	BandMedium
	BandHigh
	BandCritical
)

// String returns the lowercase band name.
func (b Band) String() string {
	switch b {
	case BandCritical:
		return "critical"
	case BandHigh:
		return "high"
	case BandMedium:
		return "medium"
	default:
		return "low"
	}
}

// Buckets defines the lower score bound of each band. Scores below Medium
// fall into the low band, so classification is exhaustive and the bands
// never overlap.
type Buckets struct {
	Critical float64 `json:"critical"`
	High     float64 `json:"high"`
	Medium   float64 `json:"medium"`
}

// DefaultBuckets returns the bucket boundaries shared by all domain engines
// unless overridden in configuration.
func DefaultBuckets() Buckets {
	return Buckets{Critical: 70, High: 40, Medium: 20}
}

// Classify returns the band a score falls into.
func (b Buckets) Classify(score float64) Band {
	switch {
	case score >= b.Critical:
		return BandCritical
	case score >= b.High:
		return BandHigh
	case score >= b.Medium:
		return BandMedium
	default:
		return BandLow
	}
}

// Stats is the urgency distribution of a prioritized collection.
// The four band counts always sum to Total.
type Stats struct {
	Critical int `json:"critical"`
	High     int `json:"high"`
	Medium   int `json:"medium"`
	Low      int `json:"low"`
	Total    int `json:"total"`
}
