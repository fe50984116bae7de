package clients

import (
	"context"

	"github.com/barbearia/barbershop-service/internal/domain"
)

// ClientRepository is the storage surface for clients.
type ClientRepository interface {
	Create(ctx context.Context, c *domain.Client) (*domain.Client, error)
	GetByID(ctx context.Context, id int64) (*domain.Client, error)
	List(ctx context.Context, q string) ([]*domain.Client, error)
	Update(ctx context.Context, c *domain.Client) error
	Delete(ctx context.Context, id int64) error
}

// AppointmentRepository loads the client's visit history for the detail
// view.
type AppointmentRepository interface {
	ListByClient(ctx context.Context, clientID int64) ([]*domain.Appointment, error)
}

// SubscriptionRepository resolves the client's active subscription for the
// detail view.
type SubscriptionRepository interface {
	GetActiveByClient(ctx context.Context, clientID int64) (*domain.Subscription, error)
}

// PlanRepository loads the plan behind the active subscription.
type PlanRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Plan, error)
}

// Estimator produces the return-visit suggestion shown on the detail view.
type Estimator interface {
	EstimateForClient(ctx context.Context, client *domain.Client, history []*domain.Appointment) (domain.EstimateRange, error)
}

// Notifier sends the welcome message after registration.
type Notifier interface {
	SendWelcome(ctx context.Context, client *domain.Client) error
}

// Logger defines the logging interface used by the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
