package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/barbearia/barbershop-service/internal/domain"
	planRepo "github.com/barbearia/barbershop-service/internal/infra/storage/plan"
)

// Starter plans created on first run.
var starterPlans = []domain.Plan{
	{
		Name:                       "Basic",
		Price:                      79.90,
		DayRule:                    domain.DayRuleAnyDay,
		MinDaysBetweenAppointments: 7,
		WeeklyLimit:                1,
		Active:                     true,
	},
	{
		Name:                       "Plus",
		Price:                      119.90,
		DayRule:                    domain.DayRuleWeekdaysOnly,
		MinDaysBetweenAppointments: 0,
		WeeklyLimit:                999,
		Active:                     true,
	},
	{
		Name:                       "Max",
		Price:                      159.90,
		DayRule:                    domain.DayRuleAnyDay,
		MinDaysBetweenAppointments: 0,
		WeeklyLimit:                999,
		Active:                     true,
	},
}

// Service seeds the starter plans and the default settings at startup.
// Seeding is idempotent; existing records are never touched.
type Service struct {
	planRepo PlanRepository
	settings SettingsService
	logger   Logger
}

// NewService creates a new seeder.
func NewService(planRepo PlanRepository, settings SettingsService, logger Logger) *Service {
	return &Service{planRepo: planRepo, settings: settings, logger: logger}
}

// Run applies all seeds.
func (s *Service) Run(ctx context.Context) error {
	for i := range starterPlans {
		plan := starterPlans[i]

		_, err := s.planRepo.GetByName(ctx, plan.Name)
		if err == nil {
			continue
		}
		if !errors.Is(err, planRepo.ErrPlanNotFound) {
			s.logger.Error("Run: failed to look up plan %q: %v", plan.Name, err)
			return fmt.Errorf("seed: look up plan %q: %w", plan.Name, err)
		}

		created, err := s.planRepo.Create(ctx, &plan)
		if err != nil {
			s.logger.Error("Run: failed to seed plan %q: %v", plan.Name, err)
			return fmt.Errorf("seed: create plan %q: %w", plan.Name, err)
		}
		s.logger.Info("Run: seeded plan %q (id=%d)", created.Name, created.ID)
	}

	if err := s.settings.EnsureDefaults(ctx); err != nil {
		s.logger.Error("Run: failed to seed settings: %v", err)
		return fmt.Errorf("seed: settings defaults: %w", err)
	}

	s.logger.Info("Run: seeding complete")
	return nil
}
