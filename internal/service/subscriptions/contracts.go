package subscriptions

import (
	"context"

	"github.com/barbearia/barbershop-service/internal/domain"
)

// SubscriptionRepository is the storage surface for subscriptions.
type SubscriptionRepository interface {
	Create(ctx context.Context, s *domain.Subscription) (*domain.Subscription, error)
	GetActiveByClient(ctx context.Context, clientID int64) (*domain.Subscription, error)
	Deactivate(ctx context.Context, id int64) error
}

// ClientRepository checks the client exists before activation.
type ClientRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Client, error)
}

// PlanRepository checks the plan exists and is active.
type PlanRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Plan, error)
}

// TransactionManager runs the switch (deactivate old, create new)
// atomically.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger defines the logging interface used by the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
