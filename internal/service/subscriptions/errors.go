package subscriptions

import "errors"

var (
	// ErrClientNotFound is returned when the client does not exist.
	ErrClientNotFound = errors.New("client not found")

	// ErrPlanNotFound is returned when the plan does not exist.
	ErrPlanNotFound = errors.New("plan not found")

	// ErrPlanInactive is returned when activating an inactive plan.
	ErrPlanInactive = errors.New("plan is not active")

	// ErrNoActiveSubscription is returned when cancelling a client with no
	// active subscription.
	ErrNoActiveSubscription = errors.New("client has no active subscription")

	// ErrInvalidInput is returned for malformed request data.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on repository failures.
	ErrInternal = errors.New("service: internal error")
)
