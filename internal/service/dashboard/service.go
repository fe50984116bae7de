package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/barbearia/barbershop-service/internal/service/dashboard/models"
)

// Service aggregates the dashboard counters.
type Service struct {
	clientRepo       ClientRepository
	appointmentRepo  AppointmentRepository
	subscriptionRepo SubscriptionRepository
	planRepo         PlanRepository
	logger           Logger
}

// NewService creates a new dashboard service.
func NewService(
	clientRepo ClientRepository,
	appointmentRepo AppointmentRepository,
	subscriptionRepo SubscriptionRepository,
	planRepo PlanRepository,
	logger Logger,
) *Service {
	return &Service{
		clientRepo:       clientRepo,
		appointmentRepo:  appointmentRepo,
		subscriptionRepo: subscriptionRepo,
		planRepo:         planRepo,
		logger:           logger,
	}
}

// Summary computes the five dashboard counters.
func (s *Service) Summary(ctx context.Context) (*models.Summary, error) {
	totalClients, err := s.clientRepo.Count(ctx)
	if err != nil {
		s.logger.Error("Summary: failed to count clients: %v", err)
		return nil, fmt.Errorf("%w: Summary - repository error: %v", ErrInternal, err)
	}

	now := time.Now()
	y, m, d := now.Date()
	todayStart := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	tomorrowStart := todayStart.AddDate(0, 0, 1)

	// CountByPeriod is inclusive on both ends, so each window stops one
	// second short of the next midnight to keep them disjoint.
	today, err := s.appointmentRepo.CountByPeriod(ctx, todayStart, tomorrowStart.Add(-time.Second))
	if err != nil {
		s.logger.Error("Summary: failed to count today's appointments: %v", err)
		return nil, fmt.Errorf("%w: Summary - repository error: %v", ErrInternal, err)
	}

	next7, err := s.appointmentRepo.CountByPeriod(ctx, tomorrowStart, todayStart.AddDate(0, 0, 8).Add(-time.Second))
	if err != nil {
		s.logger.Error("Summary: failed to count upcoming appointments: %v", err)
		return nil, fmt.Errorf("%w: Summary - repository error: %v", ErrInternal, err)
	}

	activeSubscriptions, err := s.subscriptionRepo.CountActive(ctx)
	if err != nil {
		s.logger.Error("Summary: failed to count active subscriptions: %v", err)
		return nil, fmt.Errorf("%w: Summary - repository error: %v", ErrInternal, err)
	}

	inactivePlans, err := s.planRepo.CountInactive(ctx)
	if err != nil {
		s.logger.Error("Summary: failed to count inactive plans: %v", err)
		return nil, fmt.Errorf("%w: Summary - repository error: %v", ErrInternal, err)
	}

	withoutPlan := totalClients - activeSubscriptions
	if withoutPlan < 0 {
		withoutPlan = 0
	}

	return &models.Summary{
		TotalClients:          totalClients,
		AppointmentsToday:     today,
		AppointmentsNext7Days: next7,
		ClientsWithoutPlan:    withoutPlan,
		InactivePlans:         inactivePlans,
	}, nil
}
