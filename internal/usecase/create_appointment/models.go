package create_appointment

import (
	"time"

	"github.com/barbearia/barbershop-service/internal/domain"
)

// Request describes the appointment to create. The datetime is naive local
// time in the ISO-8601 format without offset.
type Request struct {
	ClientID            int64
	AppointmentDateTime time.Time
	Service             string
}

// Response carries the persisted appointment.
type Response struct {
	ID                  int64  `json:"id"`
	ClientID            int64  `json:"clientId"`
	AppointmentDateTime string `json:"appointmentDateTime"`
	Service             string `json:"service"`
	Status              string `json:"status"`
	CreatedAt           string `json:"createdAt"`
}

// FromDomainAppointment converts a persisted appointment to a response.
func FromDomainAppointment(a *domain.Appointment) *Response {
	return &Response{
		ID:                  a.ID,
		ClientID:            a.ClientID,
		AppointmentDateTime: a.AppointmentDateTime.Format(domain.DateTimeFormat),
		Service:             a.Service,
		Status:              string(a.Status),
		CreatedAt:           a.CreatedAt.Format(domain.DateTimeFormat),
	}
}
