package models

import "github.com/barbearia/barbershop-service/internal/domain"

// ActivateRequest subscribes a client to a plan, replacing any active
// subscription.
type ActivateRequest struct {
	ClientID  int64  `json:"clientId"`
	PlanID    int64  `json:"planId"`
	StartDate string `json:"startDate,omitempty"` // YYYY-MM-DD, defaults to today
}

// SubscriptionResponse is a single subscription.
type SubscriptionResponse struct {
	ID        int64  `json:"id"`
	ClientID  int64  `json:"clientId"`
	PlanID    int64  `json:"planId"`
	PlanName  string `json:"planName,omitempty"`
	StartDate string `json:"startDate"`
	Active    bool   `json:"active"`
	CreatedAt string `json:"createdAt"`
}

// FromDomainSubscription converts a domain subscription to a response.
func FromDomainSubscription(s *domain.Subscription, planName string) *SubscriptionResponse {
	return &SubscriptionResponse{
		ID:        s.ID,
		ClientID:  s.ClientID,
		PlanID:    s.PlanID,
		PlanName:  planName,
		StartDate: s.StartDate.Format(domain.DateFormat),
		Active:    s.Active,
		CreatedAt: s.CreatedAt.Format(domain.DateTimeFormat),
	}
}
