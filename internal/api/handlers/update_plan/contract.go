package update_plan

import (
	"context"

	"github.com/barbearia/barbershop-service/internal/service/plans/models"
)

type PlanService interface {
	Update(ctx context.Context, id int64, req *models.UpdatePlanRequest) (*models.PlanResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
