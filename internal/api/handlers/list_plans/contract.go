package list_plans

import (
	"context"

	"github.com/barbearia/barbershop-service/internal/service/plans/models"
)

type PlanService interface {
	List(ctx context.Context) (*models.PlanListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
