package seed

import (
	"context"

	"github.com/barbearia/barbershop-service/internal/domain"
)

// PlanRepository creates the starter plans.
type PlanRepository interface {
	Create(ctx context.Context, p *domain.Plan) (*domain.Plan, error)
	GetByName(ctx context.Context, name string) (*domain.Plan, error)
}

// SettingsService seeds the well-known setting defaults.
type SettingsService interface {
	EnsureDefaults(ctx context.Context) error
}

// Logger defines the logging interface used by the seeder.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
