package list_clients

import (
	"context"

	"github.com/barbearia/barbershop-service/internal/service/clients/models"
)

type ClientService interface {
	List(ctx context.Context, q string) (*models.ClientListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
