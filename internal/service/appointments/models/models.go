package models

import "github.com/barbearia/barbershop-service/internal/domain"

// UpdateAppointmentRequest changes an existing appointment. Nil fields are
// left untouched. Updates are administrative corrections and skip the plan
// policy on purpose.
type UpdateAppointmentRequest struct {
	AppointmentDateTime *string `json:"appointmentDateTime,omitempty"`
	Service             *string `json:"service,omitempty"`
	Status              *string `json:"status,omitempty"`
}

// AppointmentResponse is a single appointment.
type AppointmentResponse struct {
	ID                  int64  `json:"id"`
	ClientID            int64  `json:"clientId"`
	AppointmentDateTime string `json:"appointmentDateTime"`
	Service             string `json:"service"`
	Status              string `json:"status"`
	CreatedAt           string `json:"createdAt"`
	UpdatedAt           string `json:"updatedAt"`
}

// AppointmentListResponse wraps the agenda payload.
type AppointmentListResponse struct {
	Appointments []*AppointmentResponse `json:"appointments"`
	Total        int                    `json:"total"`
}

// FromDomainAppointment converts a domain appointment to a response.
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		ID:                  a.ID,
		ClientID:            a.ClientID,
		AppointmentDateTime: a.AppointmentDateTime.Format(domain.DateTimeFormat),
		Service:             a.Service,
		Status:              string(a.Status),
		CreatedAt:           a.CreatedAt.Format(domain.DateTimeFormat),
		UpdatedAt:           a.UpdatedAt.Format(domain.DateTimeFormat),
	}
}
