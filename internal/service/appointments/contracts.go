package appointments

import (
	"context"
	"time"

	"github.com/barbearia/barbershop-service/internal/domain"
)

// AppointmentRepository is the storage surface for appointments.
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	ListByPeriod(ctx context.Context, start, end time.Time) ([]*domain.Appointment, error)
	Update(ctx context.Context, a *domain.Appointment) error
	Delete(ctx context.Context, id int64) error
}

// Logger defines the logging interface used by the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
