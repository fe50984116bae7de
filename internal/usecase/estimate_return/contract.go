package estimate_return

import (
	"context"

	"github.com/barbearia/barbershop-service/internal/domain"
)

// ClientRepository loads the client whose return visit is being estimated.
type ClientRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Client, error)
}

// AppointmentRepository loads the client's visit history.
type AppointmentRepository interface {
	ListByClient(ctx context.Context, clientID int64) ([]*domain.Appointment, error)
}

// SettingsProvider resolves the estimator tuning parameters.
type SettingsProvider interface {
	EstimatorTargetCm(ctx context.Context) (float64, error)
	EstimatorBaseRate(ctx context.Context) (float64, error)
}

// Metrics counts produced estimates by strategy.
type Metrics interface {
	IncEstimate(strategy string)
}

// Logger defines the logging interface used by the use case.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
