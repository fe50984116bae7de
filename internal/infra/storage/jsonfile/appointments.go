package jsonfile

import (
	"context"
	"time"

	"github.com/barbearia/barbershop-service/internal/domain"
	appointmentRepo "github.com/barbearia/barbershop-service/internal/infra/storage/appointment"
)

// AppointmentStore is the appointment-collection view of the JSON store.
type AppointmentStore struct {
	s *Store
}

// Create appends a new appointment.
func (as *AppointmentStore) Create(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	as.s.mu.Lock()
	defer as.s.mu.Unlock()

	now := time.Now()
	a.ID = as.s.nextID("appointments")
	a.CreatedAt = now
	a.UpdatedAt = now

	as.s.data.Appointments = append(as.s.data.Appointments, appointmentToRecord(a))
	if err := as.s.saveLocked(); err != nil {
		return nil, err
	}
	return a, nil
}

// GetByID fetches an appointment by id.
func (as *AppointmentStore) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	as.s.mu.Lock()
	defer as.s.mu.Unlock()

	for i := range as.s.data.Appointments {
		if as.s.data.Appointments[i].ID == id {
			return appointmentFromRecord(&as.s.data.Appointments[i]), nil
		}
	}
	return nil, appointmentRepo.ErrAppointmentNotFound
}

// ListByClient returns every appointment of the client ordered by datetime
// ascending.
func (as *AppointmentStore) ListByClient(ctx context.Context, clientID int64) ([]*domain.Appointment, error) {
	as.s.mu.Lock()
	defer as.s.mu.Unlock()

	appointments := make([]*domain.Appointment, 0)
	for i := range as.s.data.Appointments {
		if as.s.data.Appointments[i].ClientID == clientID {
			appointments = append(appointments, appointmentFromRecord(&as.s.data.Appointments[i]))
		}
	}
	sortAppointmentsByDateTime(appointments)
	return appointments, nil
}

// ListByPeriod returns appointments within [start, end] ordered by datetime.
func (as *AppointmentStore) ListByPeriod(ctx context.Context, start, end time.Time) ([]*domain.Appointment, error) {
	as.s.mu.Lock()
	defer as.s.mu.Unlock()

	appointments := make([]*domain.Appointment, 0)
	for i := range as.s.data.Appointments {
		a := appointmentFromRecord(&as.s.data.Appointments[i])
		if a.AppointmentDateTime.Before(start) || a.AppointmentDateTime.After(end) {
			continue
		}
		appointments = append(appointments, a)
	}
	sortAppointmentsByDateTime(appointments)
	return appointments, nil
}

// Update overwrites the mutable fields of an appointment.
func (as *AppointmentStore) Update(ctx context.Context, a *domain.Appointment) error {
	as.s.mu.Lock()
	defer as.s.mu.Unlock()

	for i := range as.s.data.Appointments {
		if as.s.data.Appointments[i].ID == a.ID {
			a.UpdatedAt = time.Now()
			updated := appointmentToRecord(a)
			updated.CreatedAt = as.s.data.Appointments[i].CreatedAt
			as.s.data.Appointments[i] = updated
			return as.s.saveLocked()
		}
	}
	return appointmentRepo.ErrAppointmentNotFound
}

// Delete removes an appointment.
func (as *AppointmentStore) Delete(ctx context.Context, id int64) error {
	as.s.mu.Lock()
	defer as.s.mu.Unlock()

	for i := range as.s.data.Appointments {
		if as.s.data.Appointments[i].ID == id {
			as.s.data.Appointments = append(as.s.data.Appointments[:i], as.s.data.Appointments[i+1:]...)
			return as.s.saveLocked()
		}
	}
	return appointmentRepo.ErrAppointmentNotFound
}

// CountByPeriod returns how many appointments fall within [start, end].
func (as *AppointmentStore) CountByPeriod(ctx context.Context, start, end time.Time) (int64, error) {
	as.s.mu.Lock()
	defer as.s.mu.Unlock()

	var count int64
	for i := range as.s.data.Appointments {
		a := appointmentFromRecord(&as.s.data.Appointments[i])
		if a.AppointmentDateTime.Before(start) || a.AppointmentDateTime.After(end) {
			continue
		}
		count++
	}
	return count, nil
}

func appointmentToRecord(a *domain.Appointment) appointmentRecord {
	return appointmentRecord{
		ID:                  a.ID,
		ClientID:            a.ClientID,
		AppointmentDateTime: a.AppointmentDateTime.Format(domain.DateTimeFormat),
		Service:             a.Service,
		Status:              string(a.Status),
		CreatedAt:           formatTimestamp(a.CreatedAt),
		UpdatedAt:           formatTimestamp(a.UpdatedAt),
	}
}

func appointmentFromRecord(rec *appointmentRecord) *domain.Appointment {
	return &domain.Appointment{
		ID:                  rec.ID,
		ClientID:            rec.ClientID,
		AppointmentDateTime: parseTimestamp(rec.AppointmentDateTime),
		Service:             rec.Service,
		Status:              domain.AppointmentStatus(rec.Status),
		CreatedAt:           parseTimestamp(rec.CreatedAt),
		UpdatedAt:           parseTimestamp(rec.UpdatedAt),
	}
}
