package plans

import (
	"context"

	"github.com/barbearia/barbershop-service/internal/domain"
)

// PlanRepository is the storage surface for plans.
type PlanRepository interface {
	Create(ctx context.Context, p *domain.Plan) (*domain.Plan, error)
	GetByID(ctx context.Context, id int64) (*domain.Plan, error)
	GetByName(ctx context.Context, name string) (*domain.Plan, error)
	List(ctx context.Context) ([]*domain.Plan, error)
	Update(ctx context.Context, p *domain.Plan) error
	Delete(ctx context.Context, id int64) error
}

// Logger defines the logging interface used by the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
