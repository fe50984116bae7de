package domain

import "time"

// Subscription links one client to one plan. At most one subscription per
// client is active at any time; the activation flow enforces that.
type Subscription struct {
	ID        int64
	ClientID  int64
	PlanID    int64
	StartDate time.Time
	Active    bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
