package plans

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/barbearia/barbershop-service/internal/domain"
	planRepo "github.com/barbearia/barbershop-service/internal/infra/storage/plan"
	"github.com/barbearia/barbershop-service/internal/service/plans/models"
)

// Service manages subscription plans.
type Service struct {
	planRepo PlanRepository
	logger   Logger
}

// NewService creates a new plans service.
func NewService(planRepo PlanRepository, logger Logger) *Service {
	return &Service{planRepo: planRepo, logger: logger}
}

// Create registers a new plan. New plans start active.
func (s *Service) Create(ctx context.Context, req *models.CreatePlanRequest) (*models.PlanResponse, error) {
	plan := &domain.Plan{
		Name:                       strings.TrimSpace(req.Name),
		Price:                      req.Price,
		DayRule:                    domain.PlanDayRule(req.DayRule),
		MinDaysBetweenAppointments: req.MinDaysBetweenAppointments,
		WeeklyLimit:                req.WeeklyLimit,
		Active:                     true,
	}
	if err := validatePlan(plan); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.planRepo.Create(ctx, plan)
	if err != nil {
		if errors.Is(err, planRepo.ErrDuplicateName) {
			s.logger.Warn("Create: plan name %q already in use", plan.Name)
			return nil, ErrDuplicateName
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: plan id=%d name=%q created", created.ID, created.Name)
	return models.FromDomainPlan(created), nil
}

// GetByID returns one plan.
func (s *Service) GetByID(ctx context.Context, id int64) (*models.PlanResponse, error) {
	plan, err := s.planRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, planRepo.ErrPlanNotFound) {
			s.logger.Warn("GetByID: plan id=%d not found", id)
			return nil, ErrPlanNotFound
		}
		s.logger.Error("GetByID: repository error for plan id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainPlan(plan), nil
}

// List returns every plan ordered by name.
func (s *Service) List(ctx context.Context) (*models.PlanListResponse, error) {
	found, err := s.planRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	resp := &models.PlanListResponse{
		Plans: make([]*models.PlanResponse, 0, len(found)),
		Total: len(found),
	}
	for _, p := range found {
		resp.Plans = append(resp.Plans, models.FromDomainPlan(p))
	}
	return resp, nil
}

// Update applies the non-nil fields of the request to an existing plan.
// Rule changes affect future validations only; booked appointments are
// never revisited.
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdatePlanRequest) (*models.PlanResponse, error) {
	plan, err := s.planRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, planRepo.ErrPlanNotFound) {
			s.logger.Warn("Update: plan id=%d not found", id)
			return nil, ErrPlanNotFound
		}
		s.logger.Error("Update: repository error for plan id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	applyUpdate(plan, req)
	if err := validatePlan(plan); err != nil {
		s.logger.Warn("Update: validation failed for plan id=%d: %v", id, err)
		return nil, err
	}

	if err := s.planRepo.Update(ctx, plan); err != nil {
		if errors.Is(err, planRepo.ErrDuplicateName) {
			s.logger.Warn("Update: plan name %q already in use", plan.Name)
			return nil, ErrDuplicateName
		}
		if errors.Is(err, planRepo.ErrPlanNotFound) {
			return nil, ErrPlanNotFound
		}
		s.logger.Error("Update: repository error for plan id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	updated, err := s.planRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("Update: reload failed for plan id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: plan id=%d updated", id)
	return models.FromDomainPlan(updated), nil
}

// Delete removes a plan that has no subscriptions.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.planRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, planRepo.ErrPlanNotFound) {
			s.logger.Warn("Delete: plan id=%d not found", id)
			return ErrPlanNotFound
		}
		if errors.Is(err, planRepo.ErrPlanInUse) {
			s.logger.Warn("Delete: plan id=%d has subscriptions", id)
			return ErrPlanInUse
		}
		s.logger.Error("Delete: repository error for plan id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}
	s.logger.Info("Delete: plan id=%d deleted", id)
	return nil
}

func applyUpdate(plan *domain.Plan, req *models.UpdatePlanRequest) {
	if req.Name != nil {
		plan.Name = strings.TrimSpace(*req.Name)
	}
	if req.Price != nil {
		plan.Price = *req.Price
	}
	if req.DayRule != nil {
		plan.DayRule = domain.PlanDayRule(*req.DayRule)
	}
	if req.MinDaysBetweenAppointments != nil {
		plan.MinDaysBetweenAppointments = *req.MinDaysBetweenAppointments
	}
	if req.WeeklyLimit != nil {
		plan.WeeklyLimit = *req.WeeklyLimit
	}
	if req.Active != nil {
		plan.Active = *req.Active
	}
}

func validatePlan(p *domain.Plan) error {
	if p.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(p.Name) > domain.MaxPlanNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidInput, domain.MaxPlanNameLength)
	}
	if p.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}
	if !p.DayRule.IsValid() {
		return fmt.Errorf("%w: dayRule must be %s or %s", ErrInvalidInput, domain.DayRuleAnyDay, domain.DayRuleWeekdaysOnly)
	}
	if p.MinDaysBetweenAppointments < 0 {
		return fmt.Errorf("%w: minDaysBetweenAppointments must not be negative", ErrInvalidInput)
	}
	if p.WeeklyLimit < 0 {
		return fmt.Errorf("%w: weeklyLimit must not be negative", ErrInvalidInput)
	}
	return nil
}
