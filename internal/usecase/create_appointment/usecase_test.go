package create_appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barbearia/barbershop-service/internal/domain"
	subscriptionRepo "github.com/barbearia/barbershop-service/internal/infra/storage/subscription"
)

type stubClients struct {
	client *domain.Client
	err    error
}

func (s *stubClients) GetByID(ctx context.Context, id int64) (*domain.Client, error) {
	return s.client, s.err
}

type stubSubscriptions struct {
	sub *domain.Subscription
	err error
}

func (s *stubSubscriptions) GetActiveByClient(ctx context.Context, clientID int64) (*domain.Subscription, error) {
	return s.sub, s.err
}

type stubPlans struct {
	plan *domain.Plan
	err  error
}

func (s *stubPlans) GetByID(ctx context.Context, id int64) (*domain.Plan, error) {
	return s.plan, s.err
}

type stubAppointments struct {
	history []*domain.Appointment
	created *domain.Appointment
}

func (s *stubAppointments) Create(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	created := *a
	created.ID = 42
	s.created = &created
	return &created, nil
}

func (s *stubAppointments) ListByClient(ctx context.Context, clientID int64) ([]*domain.Appointment, error) {
	return s.history, nil
}

type inlineTxManager struct{}

func (inlineTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type countingMetrics struct {
	rules map[string]int
}

func (m *countingMetrics) IncPolicyViolation(rule string) {
	if m.rules == nil {
		m.rules = map[string]int{}
	}
	m.rules[rule]++
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func newTestUseCase(clients *stubClients, subs *stubSubscriptions, plans *stubPlans, appts *stubAppointments, m *countingMetrics) *UseCase {
	return NewUseCase(clients, subs, plans, appts, inlineTxManager{}, m, noopLogger{})
}

func TestExecute_CreatesScheduledAppointment(t *testing.T) {
	appts := &stubAppointments{}
	uc := newTestUseCase(
		&stubClients{client: &domain.Client{ID: 1}},
		&stubSubscriptions{sub: &domain.Subscription{ID: 10, ClientID: 1, PlanID: 5}},
		&stubPlans{plan: &domain.Plan{ID: 5, Name: "Basic", DayRule: domain.DayRuleAnyDay, WeeklyLimit: 1, MinDaysBetweenAppointments: 7}},
		appts,
		&countingMetrics{},
	)

	resp, err := uc.Execute(context.Background(), &Request{
		ClientID:            1,
		AppointmentDateTime: mustParse(t, "2026-03-02T10:00:00"),
		Service:             "corte",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, string(domain.StatusScheduled), resp.Status)
	require.NotNil(t, appts.created)
	assert.Equal(t, domain.StatusScheduled, appts.created.Status)
}

func TestExecute_NoActivePlan(t *testing.T) {
	m := &countingMetrics{}
	uc := newTestUseCase(
		&stubClients{client: &domain.Client{ID: 1}},
		&stubSubscriptions{err: subscriptionRepo.ErrSubscriptionNotFound},
		&stubPlans{},
		&stubAppointments{},
		m,
	)

	_, err := uc.Execute(context.Background(), &Request{
		ClientID:            1,
		AppointmentDateTime: mustParse(t, "2026-03-07T10:00:00"),
		Service:             "corte",
	})
	assert.ErrorIs(t, err, ErrNoActivePlan)
	assert.Equal(t, 1, m.rules[ruleNoActivePlan])
}

func TestExecute_RuleOrder_DayRuleBeforeWeeklyLimit(t *testing.T) {
	// Saturday booking on a weekday-only plan whose weekly limit is also
	// exhausted: the day rule must win.
	m := &countingMetrics{}
	uc := newTestUseCase(
		&stubClients{client: &domain.Client{ID: 1}},
		&stubSubscriptions{sub: &domain.Subscription{ClientID: 1, PlanID: 5}},
		&stubPlans{plan: &domain.Plan{ID: 5, DayRule: domain.DayRuleWeekdaysOnly, WeeklyLimit: 0}},
		&stubAppointments{},
		m,
	)

	_, err := uc.Execute(context.Background(), &Request{
		ClientID:            1,
		AppointmentDateTime: mustParse(t, "2026-03-07T10:00:00"),
		Service:             "corte",
	})
	assert.ErrorIs(t, err, ErrWeekdayOnly)
	assert.Equal(t, 1, m.rules[ruleWeekdayOnly])
	assert.Zero(t, m.rules[ruleWeeklyLimit])
}

func TestExecute_WeeklyLimitReached(t *testing.T) {
	m := &countingMetrics{}
	uc := newTestUseCase(
		&stubClients{client: &domain.Client{ID: 1}},
		&stubSubscriptions{sub: &domain.Subscription{ClientID: 1, PlanID: 5}},
		&stubPlans{plan: &domain.Plan{ID: 5, DayRule: domain.DayRuleAnyDay, WeeklyLimit: 1}},
		&stubAppointments{history: []*domain.Appointment{
			{AppointmentDateTime: mustParse(t, "2026-03-03T10:00:00"), Status: domain.StatusScheduled},
		}},
		m,
	)

	_, err := uc.Execute(context.Background(), &Request{
		ClientID:            1,
		AppointmentDateTime: mustParse(t, "2026-03-05T10:00:00"),
		Service:             "corte",
	})
	assert.ErrorIs(t, err, ErrWeeklyLimit)
	assert.Equal(t, 1, m.rules[ruleWeeklyLimit])
}
