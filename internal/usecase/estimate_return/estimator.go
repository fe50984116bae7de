package estimate_return

import (
	"math"
	"sort"

	"github.com/barbearia/barbershop-service/internal/domain"
)

// ageAdjustedRate applies the age bracket multiplier to the base growth
// rate. An unknown age uses the base rate unchanged.
func ageAdjustedRate(baseRate float64, age *int) float64 {
	if age == nil {
		return baseRate
	}
	switch {
	case *age < domain.EstimatorYouthAgeLimit:
		return baseRate * domain.EstimatorYouthFactor
	case *age > domain.EstimatorAdultAgeLimit:
		return baseRate * domain.EstimatorSeniorFactor
	default:
		return baseRate
	}
}

// baselineDays converts the growth target into days at the age-adjusted
// rate, floored at MinBaselineDays.
func baselineDays(targetCm, rate float64) int {
	days := int(math.Round(targetCm / rate))
	if days < domain.MinBaselineDays {
		return domain.MinBaselineDays
	}
	return days
}

// doneVisitsAscending filters the history down to completed visits ordered
// by their datetime.
func doneVisitsAscending(history []*domain.Appointment) []*domain.Appointment {
	done := make([]*domain.Appointment, 0, len(history))
	for _, a := range history {
		if a.IsDone() {
			done = append(done, a)
		}
	}
	sort.Slice(done, func(i, j int) bool {
		return done[i].AppointmentDateTime.Before(done[j].AppointmentDateTime)
	})
	return done
}

// averageGapDays returns the arithmetic mean of the whole-day gaps between
// consecutive completed visits. Gaps are computed on calendar dates, so two
// visits on the same day contribute a zero-day gap.
func averageGapDays(done []*domain.Appointment) float64 {
	total := 0.0
	for i := 1; i < len(done); i++ {
		total += float64(domain.DaysBetween(done[i-1].AppointmentDateTime, done[i].AppointmentDateTime))
	}
	return total / float64(len(done)-1)
}

// heuristicRange is the estimate used when the client has too little
// history for the moving-average blend.
func heuristicRange(baseline int) domain.EstimateRange {
	minDays := baseline - 3
	if minDays < domain.MinEstimateDays {
		minDays = domain.MinEstimateDays
	}
	return domain.EstimateRange{
		MinDays:   minDays,
		MaxDays:   baseline + 4,
		Reasoning: domain.ReasoningHeuristic,
	}
}

// blendedRange averages the baseline with the client's observed visit
// cadence and builds a tighter window around the midpoint.
func blendedRange(baseline int, avgGap float64) domain.EstimateRange {
	mid := int(math.Round((float64(baseline) + avgGap) / 2))

	minDays := mid - 2
	if minDays < domain.MinEstimateDays {
		minDays = domain.MinEstimateDays
	}
	maxDays := mid + 3
	if maxDays < mid-1 {
		maxDays = mid - 1
	}
	return domain.EstimateRange{
		MinDays:   minDays,
		MaxDays:   maxDays,
		Reasoning: domain.ReasoningBlended,
	}
}
