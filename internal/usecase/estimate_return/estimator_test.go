package estimate_return

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barbearia/barbershop-service/internal/domain"
	settingsService "github.com/barbearia/barbershop-service/internal/service/settings"
	"github.com/barbearia/barbershop-service/pkg/ptr"
)

type stubSettings struct {
	targetCm float64
	baseRate float64
	err      error
}

func (s *stubSettings) EstimatorTargetCm(ctx context.Context) (float64, error) {
	return s.targetCm, s.err
}

func (s *stubSettings) EstimatorBaseRate(ctx context.Context) (float64, error) {
	return s.baseRate, s.err
}

type countingMetrics struct {
	strategies map[string]int
}

func (m *countingMetrics) IncEstimate(strategy string) {
	if m.strategies == nil {
		m.strategies = map[string]int{}
	}
	m.strategies[strategy]++
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func doneVisit(t *testing.T, date string) *domain.Appointment {
	t.Helper()
	parsed, err := time.ParseInLocation(domain.DateFormat, date, time.Local)
	require.NoError(t, err)
	return &domain.Appointment{AppointmentDateTime: parsed.Add(10 * time.Hour), Status: domain.StatusDone}
}

func newTestUseCase(settings *stubSettings, m *countingMetrics) *UseCase {
	return NewUseCase(nil, nil, settings, m, noopLogger{})
}

func TestEstimateForClient_HeuristicDefaults(t *testing.T) {
	// target 1.2 cm at 0.04 cm/day gives a 30-day baseline.
	m := &countingMetrics{}
	uc := newTestUseCase(&stubSettings{targetCm: 1.2, baseRate: 0.04}, m)

	estimate, err := uc.EstimateForClient(context.Background(), &domain.Client{ID: 1}, nil)
	require.NoError(t, err)

	assert.Equal(t, 27, estimate.MinDays)
	assert.Equal(t, 34, estimate.MaxDays)
	assert.Equal(t, domain.ReasoningHeuristic, estimate.Reasoning)
	assert.Equal(t, 1, m.strategies[strategyHeuristic])
}

func TestEstimateForClient_AgeBrackets(t *testing.T) {
	uc := newTestUseCase(&stubSettings{targetCm: 1.2, baseRate: 0.04}, &countingMetrics{})

	// Under 18 grows faster, so the window shrinks.
	young, err := uc.EstimateForClient(context.Background(), &domain.Client{Age: ptr.Ptr(16)}, nil)
	require.NoError(t, err)
	assert.Equal(t, 24, young.MinDays)
	assert.Equal(t, 31, young.MaxDays)

	// Over 45 grows slower, so the window stretches.
	senior, err := uc.EstimateForClient(context.Background(), &domain.Client{Age: ptr.Ptr(60)}, nil)
	require.NoError(t, err)
	assert.Equal(t, 30, senior.MinDays)
	assert.Equal(t, 37, senior.MaxDays)

	// 18 to 45 uses the base rate unchanged, same as an unknown age.
	adult, err := uc.EstimateForClient(context.Background(), &domain.Client{Age: ptr.Ptr(30)}, nil)
	require.NoError(t, err)
	assert.Equal(t, 27, adult.MinDays)
	assert.Equal(t, 34, adult.MaxDays)
}

func TestEstimateForClient_BlendsWithHistory(t *testing.T) {
	m := &countingMetrics{}
	uc := newTestUseCase(&stubSettings{targetCm: 1.2, baseRate: 0.04}, m)

	history := []*domain.Appointment{
		doneVisit(t, "2026-01-01"),
		doneVisit(t, "2026-01-15"),
		doneVisit(t, "2026-01-29"),
	}

	// Average gap 14 days, baseline 30: midpoint rounds to 22.
	estimate, err := uc.EstimateForClient(context.Background(), &domain.Client{ID: 1}, history)
	require.NoError(t, err)

	assert.Equal(t, 20, estimate.MinDays)
	assert.Equal(t, 25, estimate.MaxDays)
	assert.Equal(t, domain.ReasoningBlended, estimate.Reasoning)
	assert.Equal(t, 1, m.strategies[strategyBlended])
}

func TestEstimateForClient_GapAverageAcrossClockChange(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	uc := newTestUseCase(&stubSettings{targetCm: 1.2, baseRate: 0.04}, &countingMetrics{})

	visit := func(y int, mo time.Month, d int) *domain.Appointment {
		return &domain.Appointment{
			AppointmentDateTime: time.Date(y, mo, d, 10, 0, 0, 0, loc),
			Status:              domain.StatusDone,
		}
	}

	// The first gap straddles the 2026-03-08 spring-forward, so it spans an
	// hour less than fourteen 24-hour days. Both gaps still count as 14
	// calendar days and the result matches the plain 14-day cadence.
	history := []*domain.Appointment{
		visit(2026, time.February, 22),
		visit(2026, time.March, 8),
		visit(2026, time.March, 22),
	}

	estimate, err := uc.EstimateForClient(context.Background(), &domain.Client{ID: 1}, history)
	require.NoError(t, err)
	assert.Equal(t, 20, estimate.MinDays)
	assert.Equal(t, 25, estimate.MaxDays)
	assert.Equal(t, domain.ReasoningBlended, estimate.Reasoning)
}

func TestEstimateForClient_TwoVisitsStayHeuristic(t *testing.T) {
	uc := newTestUseCase(&stubSettings{targetCm: 1.2, baseRate: 0.04}, &countingMetrics{})

	history := []*domain.Appointment{
		doneVisit(t, "2026-01-01"),
		doneVisit(t, "2026-01-15"),
	}

	estimate, err := uc.EstimateForClient(context.Background(), &domain.Client{ID: 1}, history)
	require.NoError(t, err)
	assert.Equal(t, domain.ReasoningHeuristic, estimate.Reasoning)
}

func TestEstimateForClient_IgnoresNonDoneVisits(t *testing.T) {
	uc := newTestUseCase(&stubSettings{targetCm: 1.2, baseRate: 0.04}, &countingMetrics{})

	history := []*domain.Appointment{
		doneVisit(t, "2026-01-01"),
		doneVisit(t, "2026-01-15"),
		{AppointmentDateTime: time.Now(), Status: domain.StatusScheduled},
		{AppointmentDateTime: time.Now(), Status: domain.StatusCanceled},
	}

	estimate, err := uc.EstimateForClient(context.Background(), &domain.Client{ID: 1}, history)
	require.NoError(t, err)
	assert.Equal(t, domain.ReasoningHeuristic, estimate.Reasoning)
}

func TestEstimateForClient_FloorsShortBaselines(t *testing.T) {
	// A tiny target collapses to the 5-day baseline floor and the 3-day
	// range floor.
	uc := newTestUseCase(&stubSettings{targetCm: 0.05, baseRate: 0.04}, &countingMetrics{})

	estimate, err := uc.EstimateForClient(context.Background(), &domain.Client{ID: 1}, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, estimate.MinDays)
	assert.Equal(t, 9, estimate.MaxDays)
}

func TestEstimateForClient_RejectsInvalidSettings(t *testing.T) {
	uc := newTestUseCase(&stubSettings{targetCm: 0, baseRate: 0.04}, &countingMetrics{})

	_, err := uc.EstimateForClient(context.Background(), &domain.Client{ID: 1}, nil)
	assert.ErrorIs(t, err, ErrInvalidSettings)
}

func TestEstimateForClient_MalformedStoredSetting(t *testing.T) {
	stored := fmt.Errorf("%w: estimator.targetCm=%q", settingsService.ErrInvalidNumericSetting, "abc")
	uc := newTestUseCase(&stubSettings{err: stored}, &countingMetrics{})

	_, err := uc.EstimateForClient(context.Background(), &domain.Client{ID: 1}, nil)
	assert.ErrorIs(t, err, ErrInvalidSettings)
	assert.ErrorIs(t, err, settingsService.ErrInvalidNumericSetting)
}
