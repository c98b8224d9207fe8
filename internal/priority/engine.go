package priority

import "sort"

// Engine aggregates an ordered list of factors and a suggestion generator
// for one item type. An engine holds no per-call state, so a single instance
// is safe to share across goroutines.
type Engine[T any] struct {
	factors []Factor[T]
	suggest SuggestionFunc[T]
	buckets Buckets
}

// Config wires an Engine. Factors run in slice order; Suggest is required.
// A zero Buckets value selects DefaultBuckets.
type Config[T any] struct {
	Factors []Factor[T]
	Suggest SuggestionFunc[T]
	Buckets Buckets
}

// New creates an engine from the given configuration. Construction is a
// one-time cost; callers should build an engine once and reuse it.
func New[T any](cfg Config[T]) *Engine[T] {
	buckets := cfg.Buckets
	if buckets == (Buckets{}) {
		buckets = DefaultBuckets()
	}
	return &Engine[T]{
		factors: cfg.Factors,
		suggest: cfg.Suggest,
		buckets: buckets,
	}
}

// CalculatePriority runs every registered factor against the item, in
// registration order, and aggregates the outcomes. All factors always run;
// aggregation is additive with no cap. Reasons contains exactly the factors
// that contributed a non-zero score, sorted by descending weight (ties keep
// registration order).
//
// A factor that panics is a configuration error and is not recovered here.
func (e *Engine[T]) CalculatePriority(item T) Result {
	var score float64
	var reasons []Reason
	for _, factor := range e.factors {
		out := factor(item)
		score += out.Score
		if out.Score > 0 && out.Reason != nil {
			reasons = append(reasons, *out.Reason)
		}
	}

	sort.SliceStable(reasons, func(i, j int) bool {
		return reasons[i].Weight > reasons[j].Weight
	})

	return Result{
		Score:           score,
		Reasons:         reasons,
		SuggestedAction: e.suggest(item, reasons),
	}
}

// PrioritizeItems computes a priority for every item and returns the pairs
// sorted by descending score. The sort is stable: items with equal scores
// keep their relative input order.
func (e *Engine[T]) PrioritizeItems(items []T) []Prioritized[T] {
	ranked := make([]Prioritized[T], len(items))
	for i, item := range items {
		ranked[i] = Prioritized[T]{Item: item, Priority: e.CalculatePriority(item)}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Priority.Score > ranked[j].Priority.Score
	})
	return ranked
}

// Summarize buckets each prioritized item by score and returns the per-band
// counts. Every item falls into exactly one band, so the counts sum to
// len(ranked).
func (e *Engine[T]) Summarize(ranked []Prioritized[T]) Stats {
	var stats Stats
	for _, p := range ranked {
		switch e.buckets.Classify(p.Priority.Score) {
		case BandCritical:
			stats.Critical++
		case BandHigh:
			stats.High++
		case BandMedium:
			stats.Medium++
		default:
			stats.Low++
		}
		stats.Total++
	}
	return stats
}

// Buckets returns the bucket boundaries this engine classifies with.
func (e *Engine[T]) Buckets() Buckets {
	return e.buckets
}
