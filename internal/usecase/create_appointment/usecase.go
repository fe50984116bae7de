package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/barbearia/barbershop-service/internal/domain"
	clientRepo "github.com/barbearia/barbershop-service/internal/infra/storage/client"
	planRepo "github.com/barbearia/barbershop-service/internal/infra/storage/plan"
	subscriptionRepo "github.com/barbearia/barbershop-service/internal/infra/storage/subscription"
)

// UseCase validates a booking against the client's plan rules and persists
// it. The whole sequence runs inside a serializable transaction so the
// weekly limit cannot be exceeded by concurrent bookings.
type UseCase struct {
	clients       ClientRepository
	subscriptions SubscriptionRepository
	plans         PlanRepository
	appointments  AppointmentRepository
	txManager     TransactionManager
	metrics       Metrics
	logger        Logger
}

// NewUseCase creates a new appointment creation use case.
func NewUseCase(
	clients ClientRepository,
	subscriptions SubscriptionRepository,
	plans PlanRepository,
	appointments AppointmentRepository,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		clients:       clients,
		subscriptions: subscriptions,
		plans:         plans,
		appointments:  appointments,
		txManager:     txManager,
		metrics:       metrics,
		logger:        logger,
	}
}

// Execute validates and creates one appointment.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: client=%d, datetime=%s, service=%q",
		req.ClientID, req.AppointmentDateTime.Format(domain.DateTimeFormat), req.Service)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	var created *domain.Appointment
	err := uc.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		if _, err := uc.clients.GetByID(ctx, req.ClientID); err != nil {
			if errors.Is(err, clientRepo.ErrClientNotFound) {
				return ErrClientNotFound
			}
			return fmt.Errorf("%w: failed to load client: %v", ErrInternal, err)
		}

		plan, err := uc.resolveActivePlan(ctx, req.ClientID)
		if err != nil {
			return err
		}

		history, err := uc.appointments.ListByClient(ctx, req.ClientID)
		if err != nil {
			return fmt.Errorf("%w: failed to load history: %v", ErrInternal, err)
		}

		if err := uc.applyPolicy(plan, history, req); err != nil {
			return err
		}

		created, err = uc.appointments.Create(ctx, &domain.Appointment{
			ClientID:            req.ClientID,
			AppointmentDateTime: req.AppointmentDateTime,
			Service:             req.Service,
			Status:              domain.StatusScheduled,
		})
		if err != nil {
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: created appointment id=%d for client=%d", created.ID, created.ClientID)
	return FromDomainAppointment(created), nil
}

// resolveActivePlan finds the client's active subscription and loads its
// plan.
func (uc *UseCase) resolveActivePlan(ctx context.Context, clientID int64) (*domain.Plan, error) {
	sub, err := uc.subscriptions.GetActiveByClient(ctx, clientID)
	if err != nil {
		if errors.Is(err, subscriptionRepo.ErrSubscriptionNotFound) {
			uc.logger.Warn("CreateAppointment: client=%d has no active plan", clientID)
			uc.metrics.IncPolicyViolation(ruleNoActivePlan)
			return nil, ErrNoActivePlan
		}
		return nil, fmt.Errorf("%w: failed to load subscription: %v", ErrInternal, err)
	}

	plan, err := uc.plans.GetByID(ctx, sub.PlanID)
	if err != nil {
		if errors.Is(err, planRepo.ErrPlanNotFound) {
			uc.logger.Error("CreateAppointment: subscription id=%d references missing plan id=%d", sub.ID, sub.PlanID)
			return nil, ErrPlanNotFound
		}
		return nil, fmt.Errorf("%w: failed to load plan: %v", ErrInternal, err)
	}
	return plan, nil
}

// applyPolicy runs the plan rules in their fixed order: day rule, weekly
// limit, minimum spacing.
func (uc *UseCase) applyPolicy(plan *domain.Plan, history []*domain.Appointment, req *Request) error {
	if err := validateDayRule(plan, req.AppointmentDateTime); err != nil {
		uc.logger.Warn("CreateAppointment: client=%d rejected by day rule of plan %q", req.ClientID, plan.Name)
		uc.metrics.IncPolicyViolation(ruleWeekdayOnly)
		return err
	}
	if err := validateWeeklyLimit(plan, history, req.AppointmentDateTime); err != nil {
		uc.logger.Warn("CreateAppointment: client=%d rejected by weekly limit %d of plan %q",
			req.ClientID, plan.WeeklyLimit, plan.Name)
		uc.metrics.IncPolicyViolation(ruleWeeklyLimit)
		return err
	}
	if err := validateMinimumSpacing(plan, history, req.AppointmentDateTime); err != nil {
		uc.logger.Warn("CreateAppointment: client=%d rejected by minimum spacing %d of plan %q",
			req.ClientID, plan.MinDaysBetweenAppointments, plan.Name)
		uc.metrics.IncPolicyViolation(ruleMinimumSpacing)
		return err
	}
	return nil
}
