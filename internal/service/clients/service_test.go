package clients

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barbearia/barbershop-service/internal/domain"
	clientRepo "github.com/barbearia/barbershop-service/internal/infra/storage/client"
	subscriptionRepo "github.com/barbearia/barbershop-service/internal/infra/storage/subscription"
	"github.com/barbearia/barbershop-service/internal/service/clients/models"
	estimateReturnUC "github.com/barbearia/barbershop-service/internal/usecase/estimate_return"
)

type stubClientRepo struct {
	clients   map[int64]*domain.Client
	createErr error
	nextID    int64
}

func newStubClientRepo() *stubClientRepo {
	return &stubClientRepo{clients: map[int64]*domain.Client{}, nextID: 1}
}

func (r *stubClientRepo) Create(ctx context.Context, c *domain.Client) (*domain.Client, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	created := *c
	created.ID = r.nextID
	r.nextID++
	created.CreatedAt = time.Now()
	r.clients[created.ID] = &created
	return &created, nil
}

func (r *stubClientRepo) GetByID(ctx context.Context, id int64) (*domain.Client, error) {
	c, ok := r.clients[id]
	if !ok {
		return nil, clientRepo.ErrClientNotFound
	}
	copied := *c
	return &copied, nil
}

func (r *stubClientRepo) List(ctx context.Context, q string) ([]*domain.Client, error) {
	result := make([]*domain.Client, 0, len(r.clients))
	for _, c := range r.clients {
		result = append(result, c)
	}
	return result, nil
}

func (r *stubClientRepo) Update(ctx context.Context, c *domain.Client) error {
	if _, ok := r.clients[c.ID]; !ok {
		return clientRepo.ErrClientNotFound
	}
	copied := *c
	r.clients[c.ID] = &copied
	return nil
}

func (r *stubClientRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.clients[id]; !ok {
		return clientRepo.ErrClientNotFound
	}
	delete(r.clients, id)
	return nil
}

type stubAppointments struct {
	history []*domain.Appointment
}

func (r stubAppointments) ListByClient(ctx context.Context, clientID int64) ([]*domain.Appointment, error) {
	return r.history, nil
}

type stubSubscriptions struct {
	active *domain.Subscription
}

func (r stubSubscriptions) GetActiveByClient(ctx context.Context, clientID int64) (*domain.Subscription, error) {
	if r.active == nil {
		return nil, subscriptionRepo.ErrSubscriptionNotFound
	}
	return r.active, nil
}

type stubPlans struct {
	plan *domain.Plan
}

func (r stubPlans) GetByID(ctx context.Context, id int64) (*domain.Plan, error) {
	return r.plan, nil
}

type stubEstimator struct {
	estimate domain.EstimateRange
	err      error
}

func (e stubEstimator) EstimateForClient(ctx context.Context, client *domain.Client, history []*domain.Appointment) (domain.EstimateRange, error) {
	return e.estimate, e.err
}

type stubNotifier struct {
	calls int
	err   error
}

func (n *stubNotifier) SendWelcome(ctx context.Context, client *domain.Client) error {
	n.calls++
	return n.err
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func newTestService(repo *stubClientRepo, appts stubAppointments, subs stubSubscriptions, plans stubPlans, est stubEstimator, notif *stubNotifier) *Service {
	return NewService(repo, appts, subs, plans, est, notif, noopLogger{})
}

func visitAt(id int64, when time.Time, status domain.AppointmentStatus) *domain.Appointment {
	return &domain.Appointment{ID: id, ClientID: 1, AppointmentDateTime: when, Service: "haircut", Status: status}
}

func TestCreate_WelcomeSent(t *testing.T) {
	repo := newStubClientRepo()
	notifier := &stubNotifier{}
	svc := newTestService(repo, stubAppointments{}, stubSubscriptions{}, stubPlans{}, stubEstimator{}, notifier)

	resp, err := svc.Create(context.Background(), &models.CreateClientRequest{
		FullName: "Ana Souza",
		Email:    "ana@example.com",
	})

	require.NoError(t, err)
	assert.True(t, resp.WelcomeEmailSent)
	assert.Equal(t, 1, notifier.calls)
	assert.Len(t, repo.clients, 1)
}

func TestCreate_WelcomeFailureDoesNotRollBack(t *testing.T) {
	repo := newStubClientRepo()
	notifier := &stubNotifier{err: errors.New("smtp down")}
	svc := newTestService(repo, stubAppointments{}, stubSubscriptions{}, stubPlans{}, stubEstimator{}, notifier)

	resp, err := svc.Create(context.Background(), &models.CreateClientRequest{
		FullName: "Ana Souza",
		Email:    "ana@example.com",
	})

	require.NoError(t, err)
	assert.False(t, resp.WelcomeEmailSent)
	assert.Len(t, repo.clients, 1)
}

func TestCreate_DuplicateEmail(t *testing.T) {
	repo := newStubClientRepo()
	repo.createErr = clientRepo.ErrDuplicateEmail
	notifier := &stubNotifier{}
	svc := newTestService(repo, stubAppointments{}, stubSubscriptions{}, stubPlans{}, stubEstimator{}, notifier)

	_, err := svc.Create(context.Background(), &models.CreateClientRequest{
		FullName: "Ana Souza",
		Email:    "ana@example.com",
	})

	assert.ErrorIs(t, err, ErrDuplicateEmail)
	assert.Zero(t, notifier.calls)
}

func TestCreate_RejectsInvalidEmail(t *testing.T) {
	svc := newTestService(newStubClientRepo(), stubAppointments{}, stubSubscriptions{}, stubPlans{}, stubEstimator{}, &stubNotifier{})

	_, err := svc.Create(context.Background(), &models.CreateClientRequest{
		FullName: "Ana Souza",
		Email:    "not-an-address",
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetDetails_HistoryNewestFirst(t *testing.T) {
	repo := newStubClientRepo()
	repo.clients[1] = &domain.Client{ID: 1, FullName: "Ana Souza", Email: "ana@example.com"}

	older := visitAt(10, time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC), domain.StatusDone)
	newer := visitAt(11, time.Date(2026, 2, 5, 10, 0, 0, 0, time.UTC), domain.StatusScheduled)
	appts := stubAppointments{history: []*domain.Appointment{older, newer}}

	svc := newTestService(repo, appts, stubSubscriptions{}, stubPlans{}, stubEstimator{
		estimate: domain.EstimateRange{MinDays: 27, MaxDays: 34, Reasoning: "age-and-growth-rate heuristic"},
	}, &stubNotifier{})

	resp, err := svc.GetDetails(context.Background(), 1)

	require.NoError(t, err)
	require.Len(t, resp.Appointments, 2)
	assert.Equal(t, int64(11), resp.Appointments[0].ID)
	assert.Equal(t, int64(10), resp.Appointments[1].ID)
	assert.Nil(t, resp.ActivePlan)
	require.NotNil(t, resp.Estimate)
	assert.Equal(t, 27, resp.Estimate.MinDays)
}

func TestGetDetails_IncludesActivePlan(t *testing.T) {
	repo := newStubClientRepo()
	repo.clients[1] = &domain.Client{ID: 1, FullName: "Ana Souza", Email: "ana@example.com"}

	subs := stubSubscriptions{active: &domain.Subscription{
		ID:        5,
		ClientID:  1,
		PlanID:    2,
		StartDate: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		Active:    true,
	}}
	plans := stubPlans{plan: &domain.Plan{ID: 2, Name: "Plus", Price: 119.90}}

	svc := newTestService(repo, stubAppointments{}, subs, plans, stubEstimator{}, &stubNotifier{})

	resp, err := svc.GetDetails(context.Background(), 1)

	require.NoError(t, err)
	require.NotNil(t, resp.ActivePlan)
	assert.Equal(t, "Plus", resp.ActivePlan.PlanName)
	assert.Equal(t, "2026-01-01", resp.ActivePlan.StartDate)
}

func TestGetDetails_EstimateFailureOmitted(t *testing.T) {
	repo := newStubClientRepo()
	repo.clients[1] = &domain.Client{ID: 1, FullName: "Ana Souza", Email: "ana@example.com"}

	svc := newTestService(repo, stubAppointments{}, stubSubscriptions{}, stubPlans{}, stubEstimator{
		err: errors.New("settings corrupted"),
	}, &stubNotifier{})

	resp, err := svc.GetDetails(context.Background(), 1)

	require.NoError(t, err)
	assert.Nil(t, resp.Estimate)
}

func TestGetDetails_EstimatorMisconfigured(t *testing.T) {
	repo := newStubClientRepo()
	repo.clients[1] = &domain.Client{ID: 1, FullName: "Ana Souza", Email: "ana@example.com"}

	// A malformed stored setting is a system misconfiguration and must fail
	// the request rather than silently dropping the estimate.
	svc := newTestService(repo, stubAppointments{}, stubSubscriptions{}, stubPlans{}, stubEstimator{
		err: estimateReturnUC.ErrInvalidSettings,
	}, &stubNotifier{})

	_, err := svc.GetDetails(context.Background(), 1)
	assert.ErrorIs(t, err, ErrEstimatorMisconfigured)
}

func TestGetDetails_NotFound(t *testing.T) {
	svc := newTestService(newStubClientRepo(), stubAppointments{}, stubSubscriptions{}, stubPlans{}, stubEstimator{}, &stubNotifier{})

	_, err := svc.GetDetails(context.Background(), 99)

	assert.ErrorIs(t, err, ErrClientNotFound)
}

func TestUpdate_AppliesPartialFields(t *testing.T) {
	repo := newStubClientRepo()
	repo.clients[1] = &domain.Client{ID: 1, FullName: "Ana Souza", Email: "ana@example.com", Phone: "555-0001"}

	svc := newTestService(repo, stubAppointments{}, stubSubscriptions{}, stubPlans{}, stubEstimator{}, &stubNotifier{})

	name := "Ana Lima"
	resp, err := svc.Update(context.Background(), 1, &models.UpdateClientRequest{FullName: &name})

	require.NoError(t, err)
	assert.Equal(t, "Ana Lima", resp.FullName)
	assert.Equal(t, "ana@example.com", resp.Email)
	assert.Equal(t, "555-0001", resp.Phone)
}
