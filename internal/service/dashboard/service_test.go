package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubClients struct {
	count int64
}

func (r stubClients) Count(ctx context.Context) (int64, error) { return r.count, nil }

type period struct {
	start time.Time
	end   time.Time
}

type recordingAppointments struct {
	periods []period
	counts  []int64
}

func (r *recordingAppointments) CountByPeriod(ctx context.Context, start, end time.Time) (int64, error) {
	r.periods = append(r.periods, period{start: start, end: end})
	count := r.counts[len(r.periods)-1]
	return count, nil
}

type stubSubscriptions struct {
	active int64
}

func (r stubSubscriptions) CountActive(ctx context.Context) (int64, error) { return r.active, nil }

type stubPlans struct {
	inactive int64
}

func (r stubPlans) CountInactive(ctx context.Context) (int64, error) { return r.inactive, nil }

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func TestSummary_Counters(t *testing.T) {
	appointments := &recordingAppointments{counts: []int64{2, 5}}
	svc := NewService(stubClients{count: 10}, appointments, stubSubscriptions{active: 4}, stubPlans{inactive: 1}, noopLogger{})

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(10), summary.TotalClients)
	assert.Equal(t, int64(2), summary.AppointmentsToday)
	assert.Equal(t, int64(5), summary.AppointmentsNext7Days)
	assert.Equal(t, int64(6), summary.ClientsWithoutPlan)
	assert.Equal(t, int64(1), summary.InactivePlans)
}

func TestSummary_WindowsAreDisjoint(t *testing.T) {
	appointments := &recordingAppointments{counts: []int64{0, 0}}
	svc := NewService(stubClients{}, appointments, stubSubscriptions{}, stubPlans{}, noopLogger{})

	_, err := svc.Summary(context.Background())
	require.NoError(t, err)
	require.Len(t, appointments.periods, 2)

	today := appointments.periods[0]
	next7 := appointments.periods[1]

	// Both bounds are inclusive in storage, so the today window must end
	// strictly before the next-7-days window starts or a midnight
	// appointment is counted twice.
	assert.True(t, today.end.Before(next7.start))
	assert.Equal(t, today.start.AddDate(0, 0, 1), next7.start)
	assert.Equal(t, next7.start.AddDate(0, 0, 7).Add(-time.Second), next7.end)
}

func TestSummary_WithoutPlanNeverNegative(t *testing.T) {
	appointments := &recordingAppointments{counts: []int64{0, 0}}
	svc := NewService(stubClients{count: 2}, appointments, stubSubscriptions{active: 5}, stubPlans{}, noopLogger{})

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.Zero(t, summary.ClientsWithoutPlan)
}
