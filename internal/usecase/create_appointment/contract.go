package create_appointment

import (
	"context"

	"github.com/barbearia/barbershop-service/internal/domain"
)

// ClientRepository loads the booking client.
type ClientRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Client, error)
}

// SubscriptionRepository resolves the client's active subscription.
type SubscriptionRepository interface {
	GetActiveByClient(ctx context.Context, clientID int64) (*domain.Subscription, error)
}

// PlanRepository loads the plan backing the subscription.
type PlanRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Plan, error)
}

// AppointmentRepository reads the history the policy rules run against and
// persists the validated appointment.
type AppointmentRepository interface {
	Create(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error)
	ListByClient(ctx context.Context, clientID int64) ([]*domain.Appointment, error)
}

// TransactionManager runs the validate-then-create sequence atomically so
// two concurrent bookings cannot both pass the weekly limit check.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics counts rejected validations by rule.
type Metrics interface {
	IncPolicyViolation(rule string)
}

// Logger defines the logging interface used by the use case.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
