package get_dashboard

import (
	"context"

	"github.com/barbearia/barbershop-service/internal/service/dashboard/models"
)

type DashboardService interface {
	Summary(ctx context.Context) (*models.Summary, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
