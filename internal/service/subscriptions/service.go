package subscriptions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/barbearia/barbershop-service/internal/domain"
	clientRepo "github.com/barbearia/barbershop-service/internal/infra/storage/client"
	planRepo "github.com/barbearia/barbershop-service/internal/infra/storage/plan"
	subscriptionRepo "github.com/barbearia/barbershop-service/internal/infra/storage/subscription"
	"github.com/barbearia/barbershop-service/internal/service/subscriptions/models"
)

// Service manages plan subscriptions. A client holds at most one active
// subscription; activating a new plan deactivates the current one in the
// same transaction.
type Service struct {
	subscriptionRepo SubscriptionRepository
	clientRepo       ClientRepository
	planRepo         PlanRepository
	txManager        TransactionManager
	logger           Logger
}

// NewService creates a new subscriptions service.
func NewService(
	subscriptionRepo SubscriptionRepository,
	clientRepo ClientRepository,
	planRepo PlanRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		subscriptionRepo: subscriptionRepo,
		clientRepo:       clientRepo,
		planRepo:         planRepo,
		txManager:        txManager,
		logger:           logger,
	}
}

// Activate subscribes the client to the plan. Any currently active
// subscription is deactivated first; both writes commit together.
func (s *Service) Activate(ctx context.Context, req *models.ActivateRequest) (*models.SubscriptionResponse, error) {
	startDate, err := parseStartDate(req.StartDate)
	if err != nil {
		s.logger.Warn("Activate: invalid startDate %q", req.StartDate)
		return nil, err
	}

	var (
		created *domain.Subscription
		plan    *domain.Plan
	)
	err = s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		if _, err := s.clientRepo.GetByID(ctx, req.ClientID); err != nil {
			if errors.Is(err, clientRepo.ErrClientNotFound) {
				return ErrClientNotFound
			}
			return fmt.Errorf("%w: failed to load client: %v", ErrInternal, err)
		}

		plan, err = s.planRepo.GetByID(ctx, req.PlanID)
		if err != nil {
			if errors.Is(err, planRepo.ErrPlanNotFound) {
				return ErrPlanNotFound
			}
			return fmt.Errorf("%w: failed to load plan: %v", ErrInternal, err)
		}
		if !plan.Active {
			return ErrPlanInactive
		}

		current, err := s.subscriptionRepo.GetActiveByClient(ctx, req.ClientID)
		if err != nil && !errors.Is(err, subscriptionRepo.ErrSubscriptionNotFound) {
			return fmt.Errorf("%w: failed to load subscription: %v", ErrInternal, err)
		}
		if current != nil {
			if err := s.subscriptionRepo.Deactivate(ctx, current.ID); err != nil {
				return fmt.Errorf("%w: failed to deactivate subscription: %v", ErrInternal, err)
			}
			s.logger.Info("Activate: deactivated subscription id=%d of client=%d", current.ID, req.ClientID)
		}

		created, err = s.subscriptionRepo.Create(ctx, &domain.Subscription{
			ClientID:  req.ClientID,
			PlanID:    req.PlanID,
			StartDate: startDate,
			Active:    true,
		})
		if err != nil {
			return fmt.Errorf("%w: failed to create subscription: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		s.logger.Warn("Activate: client=%d plan=%d failed: %v", req.ClientID, req.PlanID, err)
		return nil, err
	}

	s.logger.Info("Activate: client=%d subscribed to plan %q (subscription id=%d)", req.ClientID, plan.Name, created.ID)
	return models.FromDomainSubscription(created, plan.Name), nil
}

// Cancel deactivates the client's active subscription.
func (s *Service) Cancel(ctx context.Context, clientID int64) error {
	current, err := s.subscriptionRepo.GetActiveByClient(ctx, clientID)
	if err != nil {
		if errors.Is(err, subscriptionRepo.ErrSubscriptionNotFound) {
			s.logger.Warn("Cancel: client=%d has no active subscription", clientID)
			return ErrNoActiveSubscription
		}
		s.logger.Error("Cancel: repository error for client=%d: %v", clientID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if err := s.subscriptionRepo.Deactivate(ctx, current.ID); err != nil {
		s.logger.Error("Cancel: failed to deactivate subscription id=%d: %v", current.ID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: subscription id=%d of client=%d deactivated", current.ID, clientID)
	return nil
}

// GetActive returns the client's active subscription.
func (s *Service) GetActive(ctx context.Context, clientID int64) (*models.SubscriptionResponse, error) {
	current, err := s.subscriptionRepo.GetActiveByClient(ctx, clientID)
	if err != nil {
		if errors.Is(err, subscriptionRepo.ErrSubscriptionNotFound) {
			return nil, ErrNoActiveSubscription
		}
		s.logger.Error("GetActive: repository error for client=%d: %v", clientID, err)
		return nil, fmt.Errorf("%w: GetActive - repository error: %v", ErrInternal, err)
	}

	planName := ""
	if plan, err := s.planRepo.GetByID(ctx, current.PlanID); err == nil {
		planName = plan.Name
	}
	return models.FromDomainSubscription(current, planName), nil
}

func parseStartDate(raw string) (time.Time, error) {
	if raw == "" {
		now := time.Now()
		y, m, d := now.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, now.Location()), nil
	}
	parsed, err := time.ParseInLocation(domain.DateFormat, raw, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: startDate must be YYYY-MM-DD", ErrInvalidInput)
	}
	return parsed, nil
}
