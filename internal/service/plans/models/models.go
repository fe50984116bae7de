package models

import "github.com/barbearia/barbershop-service/internal/domain"

// Request models

// CreatePlanRequest registers a new subscription plan.
type CreatePlanRequest struct {
	Name                       string  `json:"name"`
	Price                      float64 `json:"price"`
	DayRule                    string  `json:"dayRule"`
	MinDaysBetweenAppointments int     `json:"minDaysBetweenAppointments"`
	WeeklyLimit                int     `json:"weeklyLimit"`
}

// UpdatePlanRequest changes an existing plan. Nil fields are left
// untouched.
type UpdatePlanRequest struct {
	Name                       *string  `json:"name,omitempty"`
	Price                      *float64 `json:"price,omitempty"`
	DayRule                    *string  `json:"dayRule,omitempty"`
	MinDaysBetweenAppointments *int     `json:"minDaysBetweenAppointments,omitempty"`
	WeeklyLimit                *int     `json:"weeklyLimit,omitempty"`
	Active                     *bool    `json:"active,omitempty"`
}

// Response models

// PlanResponse is a single plan.
type PlanResponse struct {
	ID                         int64   `json:"id"`
	Name                       string  `json:"name"`
	Price                      float64 `json:"price"`
	DayRule                    string  `json:"dayRule"`
	MinDaysBetweenAppointments int     `json:"minDaysBetweenAppointments"`
	WeeklyLimit                int     `json:"weeklyLimit"`
	Active                     bool    `json:"active"`
	CreatedAt                  string  `json:"createdAt"`
	UpdatedAt                  string  `json:"updatedAt"`
}

// PlanListResponse wraps the list payload.
type PlanListResponse struct {
	Plans []*PlanResponse `json:"plans"`
	Total int             `json:"total"`
}

// FromDomainPlan converts a domain plan to a response.
func FromDomainPlan(p *domain.Plan) *PlanResponse {
	return &PlanResponse{
		ID:                         p.ID,
		Name:                       p.Name,
		Price:                      p.Price,
		DayRule:                    string(p.DayRule),
		MinDaysBetweenAppointments: p.MinDaysBetweenAppointments,
		WeeklyLimit:                p.WeeklyLimit,
		Active:                     p.Active,
		CreatedAt:                  p.CreatedAt.Format(domain.DateTimeFormat),
		UpdatedAt:                  p.UpdatedAt.Format(domain.DateTimeFormat),
	}
}
