package domain

import "time"

// AppointmentStatus represents the lifecycle state of an appointment.
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "SCHEDULED"
	StatusDone      AppointmentStatus = "DONE"
	StatusCanceled  AppointmentStatus = "CANCELED"
	StatusNoShow    AppointmentStatus = "NO_SHOW"
)

// IsValid reports whether the status is one of the known values.
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case StatusScheduled, StatusDone, StatusCanceled, StatusNoShow:
		return true
	}
	return false
}

// Appointment represents a single visit. The datetime is naive local time;
// no timezone conversion is applied anywhere.
type Appointment struct {
	ID                  int64
	ClientID            int64
	AppointmentDateTime time.Time
	Service             string
	Status              AppointmentStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsScheduled returns true for appointments still on the books.
func (a *Appointment) IsScheduled() bool {
	return a.Status == StatusScheduled
}

// IsDone returns true for completed appointments, the factual basis for
// spacing and history-based estimation.
func (a *Appointment) IsDone() bool {
	return a.Status == StatusDone
}

// Date returns the appointment's calendar date with the time zeroed out.
func (a *Appointment) Date() time.Time {
	y, m, d := a.AppointmentDateTime.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, a.AppointmentDateTime.Location())
}
