package get_client

import (
	"context"

	"github.com/barbearia/barbershop-service/internal/service/clients/models"
)

type ClientService interface {
	GetDetails(ctx context.Context, id int64) (*models.ClientDetailsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
