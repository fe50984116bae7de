package activate_subscription

// ActivateSubscriptionRequest HTTP request model. The client comes from the
// URL path.
type ActivateSubscriptionRequest struct {
	PlanID    int64  `json:"planId"`
	StartDate string `json:"startDate,omitempty"` // "2026-03-02", defaults to today
}
