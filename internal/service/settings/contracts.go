package settings

import (
	"context"

	"github.com/barbearia/barbershop-service/internal/domain"
)

// SettingRepository is the storage surface for settings.
type SettingRepository interface {
	Get(ctx context.Context, key string) (string, error)
	Upsert(ctx context.Context, key, value string) error
	List(ctx context.Context) ([]*domain.Setting, error)
}

// Logger defines the logging interface used by the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
