package estimate_return

import "github.com/barbearia/barbershop-service/internal/domain"

// Request identifies the client to estimate a return visit for.
type Request struct {
	ClientID int64
}

// Response carries the suggested return window.
type Response struct {
	MinDays   int    `json:"minDays"`
	MaxDays   int    `json:"maxDays"`
	Reasoning string `json:"reasoning"`
}

// FromDomainRange converts the domain estimate to a response.
func FromDomainRange(r domain.EstimateRange) *Response {
	return &Response{
		MinDays:   r.MinDays,
		MaxDays:   r.MaxDays,
		Reasoning: r.Reasoning,
	}
}
