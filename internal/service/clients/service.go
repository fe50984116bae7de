package clients

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"sort"
	"strings"

	"github.com/barbearia/barbershop-service/internal/domain"
	clientRepo "github.com/barbearia/barbershop-service/internal/infra/storage/client"
	subscriptionRepo "github.com/barbearia/barbershop-service/internal/infra/storage/subscription"
	"github.com/barbearia/barbershop-service/internal/service/clients/models"
	estimateReturnUC "github.com/barbearia/barbershop-service/internal/usecase/estimate_return"
)

// Service manages the client roster: registration with the welcome
// notification, the detail view with history and return estimate, and the
// plain CRUD operations.
type Service struct {
	clientRepo       ClientRepository
	appointmentRepo  AppointmentRepository
	subscriptionRepo SubscriptionRepository
	planRepo         PlanRepository
	estimator        Estimator
	notifier         Notifier
	logger           Logger
}

// NewService creates a new clients service.
func NewService(
	clientRepo ClientRepository,
	appointmentRepo AppointmentRepository,
	subscriptionRepo SubscriptionRepository,
	planRepo PlanRepository,
	estimator Estimator,
	notifier Notifier,
	logger Logger,
) *Service {
	return &Service{
		clientRepo:       clientRepo,
		appointmentRepo:  appointmentRepo,
		subscriptionRepo: subscriptionRepo,
		planRepo:         planRepo,
		estimator:        estimator,
		notifier:         notifier,
		logger:           logger,
	}
}

// Create registers a client and then attempts the welcome notification.
// The registration is committed first; a failed notification is reported in
// the response but never rolls the client back.
func (s *Service) Create(ctx context.Context, req *models.CreateClientRequest) (*models.CreateClientResponse, error) {
	if err := validateCreateRequest(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.clientRepo.Create(ctx, &domain.Client{
		FullName: strings.TrimSpace(req.FullName),
		Email:    strings.TrimSpace(req.Email),
		Phone:    strings.TrimSpace(req.Phone),
		Age:      req.Age,
		Notes:    req.Notes,
	})
	if err != nil {
		if errors.Is(err, clientRepo.ErrDuplicateEmail) {
			s.logger.Warn("Create: email %s already registered", req.Email)
			return nil, ErrDuplicateEmail
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	welcomeSent := true
	if err := s.notifier.SendWelcome(ctx, created); err != nil {
		s.logger.Warn("Create: welcome notification for client id=%d failed: %v", created.ID, err)
		welcomeSent = false
	}

	s.logger.Info("Create: registered client id=%d email=%s welcomeSent=%t", created.ID, created.Email, welcomeSent)
	return &models.CreateClientResponse{
		ClientResponse:   *models.FromDomainClient(created),
		WelcomeEmailSent: welcomeSent,
	}, nil
}

// GetDetails returns the full client detail view: the card, the visit
// history newest first, the active plan when one exists and the return
// estimate.
func (s *Service) GetDetails(ctx context.Context, id int64) (*models.ClientDetailsResponse, error) {
	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			s.logger.Warn("GetDetails: client id=%d not found", id)
			return nil, ErrClientNotFound
		}
		s.logger.Error("GetDetails: repository error for client id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetDetails - repository error: %v", ErrInternal, err)
	}

	history, err := s.appointmentRepo.ListByClient(ctx, id)
	if err != nil {
		s.logger.Error("GetDetails: failed to load history for client id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetDetails - repository error: %v", ErrInternal, err)
	}

	resp := &models.ClientDetailsResponse{
		Client:       models.FromDomainClient(client),
		Appointments: models.FromDomainAppointments(newestFirst(history)),
	}

	if active, err := s.loadActivePlan(ctx, id); err != nil {
		return nil, err
	} else if active != nil {
		resp.ActivePlan = active
	}

	estimate, err := s.estimator.EstimateForClient(ctx, client, history)
	switch {
	case errors.Is(err, estimateReturnUC.ErrInvalidSettings):
		s.logger.Error("GetDetails: estimator misconfigured: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrEstimatorMisconfigured, err)
	case err != nil:
		s.logger.Warn("GetDetails: estimate for client id=%d unavailable: %v", id, err)
	default:
		resp.Estimate = models.FromDomainEstimate(estimate)
	}

	return resp, nil
}

// List returns clients ordered by name, optionally filtered by a substring
// of the name or email.
func (s *Service) List(ctx context.Context, q string) (*models.ClientListResponse, error) {
	found, err := s.clientRepo.List(ctx, strings.TrimSpace(q))
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	resp := &models.ClientListResponse{
		Clients: make([]*models.ClientResponse, 0, len(found)),
		Total:   len(found),
	}
	for _, c := range found {
		resp.Clients = append(resp.Clients, models.FromDomainClient(c))
	}
	return resp, nil
}

// Update applies the non-nil fields of the request to an existing client.
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateClientRequest) (*models.ClientResponse, error) {
	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			s.logger.Warn("Update: client id=%d not found", id)
			return nil, ErrClientNotFound
		}
		s.logger.Error("Update: repository error for client id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	applyUpdate(client, req)
	if err := validateClient(client); err != nil {
		s.logger.Warn("Update: validation failed for client id=%d: %v", id, err)
		return nil, err
	}

	if err := s.clientRepo.Update(ctx, client); err != nil {
		if errors.Is(err, clientRepo.ErrDuplicateEmail) {
			s.logger.Warn("Update: email %s already registered", client.Email)
			return nil, ErrDuplicateEmail
		}
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			return nil, ErrClientNotFound
		}
		s.logger.Error("Update: repository error for client id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	updated, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("Update: reload failed for client id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: client id=%d updated", id)
	return models.FromDomainClient(updated), nil
}

// Delete removes a client.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.clientRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			s.logger.Warn("Delete: client id=%d not found", id)
			return ErrClientNotFound
		}
		s.logger.Error("Delete: repository error for client id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}
	s.logger.Info("Delete: client id=%d deleted", id)
	return nil
}

func (s *Service) loadActivePlan(ctx context.Context, clientID int64) (*models.ActivePlan, error) {
	sub, err := s.subscriptionRepo.GetActiveByClient(ctx, clientID)
	if err != nil {
		if errors.Is(err, subscriptionRepo.ErrSubscriptionNotFound) {
			return nil, nil
		}
		s.logger.Error("GetDetails: failed to load subscription for client id=%d: %v", clientID, err)
		return nil, fmt.Errorf("%w: GetDetails - repository error: %v", ErrInternal, err)
	}

	plan, err := s.planRepo.GetByID(ctx, sub.PlanID)
	if err != nil {
		s.logger.Error("GetDetails: subscription id=%d references missing plan id=%d: %v", sub.ID, sub.PlanID, err)
		return nil, fmt.Errorf("%w: GetDetails - repository error: %v", ErrInternal, err)
	}

	return &models.ActivePlan{
		SubscriptionID: sub.ID,
		PlanID:         plan.ID,
		PlanName:       plan.Name,
		Price:          plan.Price,
		StartDate:      sub.StartDate.Format(domain.DateFormat),
	}, nil
}

func newestFirst(history []*domain.Appointment) []*domain.Appointment {
	sorted := make([]*domain.Appointment, len(history))
	copy(sorted, history)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].AppointmentDateTime.After(sorted[j].AppointmentDateTime)
	})
	return sorted
}

func applyUpdate(client *domain.Client, req *models.UpdateClientRequest) {
	if req.FullName != nil {
		client.FullName = strings.TrimSpace(*req.FullName)
	}
	if req.Email != nil {
		client.Email = strings.TrimSpace(*req.Email)
	}
	if req.Phone != nil {
		client.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Age != nil {
		client.Age = req.Age
	}
	if req.Notes != nil {
		client.Notes = req.Notes
	}
}

func validateCreateRequest(req *models.CreateClientRequest) error {
	return validateClient(&domain.Client{
		FullName: strings.TrimSpace(req.FullName),
		Email:    strings.TrimSpace(req.Email),
		Phone:    strings.TrimSpace(req.Phone),
		Age:      req.Age,
		Notes:    req.Notes,
	})
}

func validateClient(c *domain.Client) error {
	if c.FullName == "" {
		return fmt.Errorf("%w: fullName is required", ErrInvalidInput)
	}
	if len(c.FullName) > domain.MaxFullNameLength {
		return fmt.Errorf("%w: fullName exceeds %d characters", ErrInvalidInput, domain.MaxFullNameLength)
	}
	if c.Email == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if len(c.Email) > domain.MaxEmailLength {
		return fmt.Errorf("%w: email exceeds %d characters", ErrInvalidInput, domain.MaxEmailLength)
	}
	if _, err := mail.ParseAddress(c.Email); err != nil {
		return fmt.Errorf("%w: email is not a valid address", ErrInvalidInput)
	}
	if len(c.Phone) > domain.MaxPhoneLength {
		return fmt.Errorf("%w: phone exceeds %d characters", ErrInvalidInput, domain.MaxPhoneLength)
	}
	if c.Age != nil && (*c.Age < 0 || *c.Age > 150) {
		return fmt.Errorf("%w: age must be between 0 and 150", ErrInvalidInput)
	}
	if c.Notes != nil && len(*c.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}
	return nil
}
