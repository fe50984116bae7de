package get_settings

import (
	"context"

	"github.com/barbearia/barbershop-service/internal/domain"
)

type SettingsService interface {
	List(ctx context.Context) ([]*domain.Setting, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
