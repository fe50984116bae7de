package create_appointment

import (
	"time"

	"github.com/barbearia/barbershop-service/internal/domain"
	createAppointment "github.com/barbearia/barbershop-service/internal/usecase/create_appointment"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	ClientID            int64  `json:"clientId"`
	AppointmentDateTime string `json:"appointmentDateTime"` // "2026-03-02T10:00:00"
	Service             string `json:"service"`
}

// ToUseCaseRequest converts the HTTP request into the use case model,
// parsing the naive local datetime.
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*createAppointment.Request, error) {
	parsed, err := time.ParseInLocation(domain.DateTimeFormat, r.AppointmentDateTime, time.Local)
	if err != nil {
		return nil, err
	}
	return &createAppointment.Request{
		ClientID:            r.ClientID,
		AppointmentDateTime: parsed,
		Service:             r.Service,
	}, nil
}
