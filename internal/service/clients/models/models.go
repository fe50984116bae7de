package models

import (
	"github.com/barbearia/barbershop-service/internal/domain"
)

// Request models

// CreateClientRequest registers a new client.
type CreateClientRequest struct {
	FullName string  `json:"fullName"`
	Email    string  `json:"email"`
	Phone    string  `json:"phone"`
	Age      *int    `json:"age,omitempty"`
	Notes    *string `json:"notes,omitempty"`
}

// UpdateClientRequest changes an existing client. Nil fields are left
// untouched.
type UpdateClientRequest struct {
	FullName *string `json:"fullName,omitempty"`
	Email    *string `json:"email,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Age      *int    `json:"age,omitempty"`
	Notes    *string `json:"notes,omitempty"`
}

// Response models

// ClientResponse is the client card returned by list and create.
type ClientResponse struct {
	ID        int64   `json:"id"`
	FullName  string  `json:"fullName"`
	Email     string  `json:"email"`
	Phone     string  `json:"phone"`
	Age       *int    `json:"age,omitempty"`
	Notes     *string `json:"notes,omitempty"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
}

// CreateClientResponse is the ClientResponse plus the welcome delivery
// outcome. The client is committed even when the welcome message fails.
type CreateClientResponse struct {
	ClientResponse
	WelcomeEmailSent bool `json:"welcomeEmailSent"`
}

// ClientListResponse wraps the list payload.
type ClientListResponse struct {
	Clients []*ClientResponse `json:"clients"`
	Total   int               `json:"total"`
}

// AppointmentEntry is one history row on the detail view.
type AppointmentEntry struct {
	ID                  int64  `json:"id"`
	AppointmentDateTime string `json:"appointmentDateTime"`
	Service             string `json:"service"`
	Status              string `json:"status"`
}

// ActivePlan describes the plan behind the client's active subscription.
type ActivePlan struct {
	SubscriptionID int64   `json:"subscriptionId"`
	PlanID         int64   `json:"planId"`
	PlanName       string  `json:"planName"`
	Price          float64 `json:"price"`
	StartDate      string  `json:"startDate"`
}

// EstimateResponse is the suggested return window.
type EstimateResponse struct {
	MinDays   int    `json:"minDays"`
	MaxDays   int    `json:"maxDays"`
	Reasoning string `json:"reasoning"`
}

// ClientDetailsResponse is the full detail view: the card, the history
// newest first, the active plan when one exists, and the return estimate.
type ClientDetailsResponse struct {
	Client       *ClientResponse     `json:"client"`
	Appointments []*AppointmentEntry `json:"appointments"`
	ActivePlan   *ActivePlan         `json:"activePlan,omitempty"`
	Estimate     *EstimateResponse   `json:"estimate,omitempty"`
}

// FromDomainClient converts a domain client to a response.
func FromDomainClient(c *domain.Client) *ClientResponse {
	return &ClientResponse{
		ID:        c.ID,
		FullName:  c.FullName,
		Email:     c.Email,
		Phone:     c.Phone,
		Age:       c.Age,
		Notes:     c.Notes,
		CreatedAt: c.CreatedAt.Format(domain.DateTimeFormat),
		UpdatedAt: c.UpdatedAt.Format(domain.DateTimeFormat),
	}
}

// FromDomainAppointments converts a history slice to detail entries.
func FromDomainAppointments(history []*domain.Appointment) []*AppointmentEntry {
	entries := make([]*AppointmentEntry, 0, len(history))
	for _, a := range history {
		entries = append(entries, &AppointmentEntry{
			ID:                  a.ID,
			AppointmentDateTime: a.AppointmentDateTime.Format(domain.DateTimeFormat),
			Service:             a.Service,
			Status:              string(a.Status),
		})
	}
	return entries
}

// FromDomainEstimate converts an estimate range to a response.
func FromDomainEstimate(r domain.EstimateRange) *EstimateResponse {
	return &EstimateResponse{
		MinDays:   r.MinDays,
		MaxDays:   r.MaxDays,
		Reasoning: r.Reasoning,
	}
}
