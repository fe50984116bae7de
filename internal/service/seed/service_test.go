package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barbearia/barbershop-service/internal/domain"
	planRepo "github.com/barbearia/barbershop-service/internal/infra/storage/plan"
)

type memoryPlans struct {
	plans   map[string]*domain.Plan
	created int
	nextID  int64
}

func newMemoryPlans() *memoryPlans {
	return &memoryPlans{plans: map[string]*domain.Plan{}, nextID: 1}
}

func (r *memoryPlans) Create(ctx context.Context, p *domain.Plan) (*domain.Plan, error) {
	created := *p
	created.ID = r.nextID
	r.nextID++
	r.plans[created.Name] = &created
	r.created++
	return &created, nil
}

func (r *memoryPlans) GetByName(ctx context.Context, name string) (*domain.Plan, error) {
	p, ok := r.plans[name]
	if !ok {
		return nil, planRepo.ErrPlanNotFound
	}
	return p, nil
}

type recordingSettings struct {
	calls int
}

func (s *recordingSettings) EnsureDefaults(ctx context.Context) error {
	s.calls++
	return nil
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func TestRun_SeedsStarterPlansAndSettings(t *testing.T) {
	plans := newMemoryPlans()
	settings := &recordingSettings{}
	svc := NewService(plans, settings, noopLogger{})

	require.NoError(t, svc.Run(context.Background()))

	assert.Equal(t, 3, plans.created)
	assert.Equal(t, 1, settings.calls)

	basic, err := plans.GetByName(context.Background(), "Basic")
	require.NoError(t, err)
	assert.Equal(t, 1, basic.WeeklyLimit)
	assert.Equal(t, 7, basic.MinDaysBetweenAppointments)
	assert.Equal(t, domain.DayRuleAnyDay, basic.DayRule)
}

func TestRun_IsIdempotent(t *testing.T) {
	plans := newMemoryPlans()
	settings := &recordingSettings{}
	svc := NewService(plans, settings, noopLogger{})

	require.NoError(t, svc.Run(context.Background()))
	require.NoError(t, svc.Run(context.Background()))

	assert.Equal(t, 3, plans.created)
}

func TestRun_KeepsExistingPlanUntouched(t *testing.T) {
	plans := newMemoryPlans()
	plans.plans["Basic"] = &domain.Plan{ID: 10, Name: "Basic", Price: 49.90, DayRule: domain.DayRuleAnyDay, WeeklyLimit: 2, Active: true}
	svc := NewService(plans, &recordingSettings{}, noopLogger{})

	require.NoError(t, svc.Run(context.Background()))

	assert.Equal(t, 2, plans.created)
	existing, err := plans.GetByName(context.Background(), "Basic")
	require.NoError(t, err)
	assert.Equal(t, 49.90, existing.Price)
	assert.Equal(t, 2, existing.WeeklyLimit)
}
