package domain

// Estimate reasoning tags identifying which strategy produced the range.
const (
	ReasoningHeuristic = "age-and-growth-rate heuristic"
	ReasoningBlended   = "age heuristic blended with historical moving average"
)

// EstimateRange is the suggested return-visit window in days from the last
// completed (or the current) visit. Produced by the estimator, never
// persisted.
type EstimateRange struct {
	MinDays   int
	MaxDays   int
	Reasoning string
}
