package dashboard

import (
	"context"
	"time"
)

// ClientRepository counts registered clients.
type ClientRepository interface {
	Count(ctx context.Context) (int64, error)
}

// AppointmentRepository counts appointments inside a period.
type AppointmentRepository interface {
	CountByPeriod(ctx context.Context, start, end time.Time) (int64, error)
}

// SubscriptionRepository counts active subscriptions. At most one is
// active per client, so the count equals the number of covered clients.
type SubscriptionRepository interface {
	CountActive(ctx context.Context) (int64, error)
}

// PlanRepository counts deactivated plans.
type PlanRepository interface {
	CountInactive(ctx context.Context) (int64, error)
}

// Logger defines the logging interface used by the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
