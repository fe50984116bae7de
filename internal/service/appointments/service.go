package appointments

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/barbearia/barbershop-service/internal/domain"
	appointmentRepo "github.com/barbearia/barbershop-service/internal/infra/storage/appointment"
	"github.com/barbearia/barbershop-service/internal/service/appointments/models"
)

// Agenda window around today.
const agendaWindowMonths = 3

// Service manages the appointment agenda. Creation goes through the
// policy-checked use case; edits here are administrative corrections of
// already committed bookings and skip the plan rules.
type Service struct {
	appointmentRepo AppointmentRepository
	logger          Logger
}

// NewService creates a new appointments service.
func NewService(appointmentRepo AppointmentRepository, logger Logger) *Service {
	return &Service{appointmentRepo: appointmentRepo, logger: logger}
}

// List returns the agenda from three months back to three months ahead,
// ordered by datetime.
func (s *Service) List(ctx context.Context) (*models.AppointmentListResponse, error) {
	now := time.Now()
	start := now.AddDate(0, -agendaWindowMonths, 0)
	end := now.AddDate(0, agendaWindowMonths, 0)

	found, err := s.appointmentRepo.ListByPeriod(ctx, start, end)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	resp := &models.AppointmentListResponse{
		Appointments: make([]*models.AppointmentResponse, 0, len(found)),
		Total:        len(found),
	}
	for _, a := range found {
		resp.Appointments = append(resp.Appointments, models.FromDomainAppointment(a))
	}
	return resp, nil
}

// GetByID returns one appointment.
func (s *Service) GetByID(ctx context.Context, id int64) (*models.AppointmentResponse, error) {
	found, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainAppointment(found), nil
}

// Update applies the non-nil fields of the request to an existing
// appointment.
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateAppointmentRequest) (*models.AppointmentResponse, error) {
	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Update: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("Update: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	if err := applyUpdate(appointment, req); err != nil {
		s.logger.Warn("Update: validation failed for appointment id=%d: %v", id, err)
		return nil, err
	}

	if err := s.appointmentRepo.Update(ctx, appointment); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("Update: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	updated, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("Update: reload failed for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: appointment id=%d updated (status=%s)", id, updated.Status)
	return models.FromDomainAppointment(updated), nil
}

// Delete removes an appointment.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.appointmentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Delete: appointment id=%d not found", id)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Delete: repository error for appointment id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}
	s.logger.Info("Delete: appointment id=%d deleted", id)
	return nil
}

func applyUpdate(a *domain.Appointment, req *models.UpdateAppointmentRequest) error {
	if req.AppointmentDateTime != nil {
		parsed, err := time.ParseInLocation(domain.DateTimeFormat, *req.AppointmentDateTime, time.Local)
		if err != nil {
			return fmt.Errorf("%w: appointmentDateTime must be %s", ErrInvalidInput, domain.DateTimeFormat)
		}
		a.AppointmentDateTime = parsed
	}
	if req.Service != nil {
		service := strings.TrimSpace(*req.Service)
		if service == "" {
			return fmt.Errorf("%w: service must not be empty", ErrInvalidInput)
		}
		if len(service) > domain.MaxServiceLength {
			return fmt.Errorf("%w: service exceeds %d characters", ErrInvalidInput, domain.MaxServiceLength)
		}
		a.Service = service
	}
	if req.Status != nil {
		status := domain.AppointmentStatus(*req.Status)
		if !status.IsValid() {
			return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *req.Status)
		}
		a.Status = status
	}
	return nil
}
