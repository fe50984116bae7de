package create_plan

import (
	"context"

	"github.com/barbearia/barbershop-service/internal/service/plans/models"
)

type PlanService interface {
	Create(ctx context.Context, req *models.CreatePlanRequest) (*models.PlanResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
