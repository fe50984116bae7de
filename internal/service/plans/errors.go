package plans

import "errors"

var (
	// ErrPlanNotFound is returned when the plan does not exist.
	ErrPlanNotFound = errors.New("plan not found")

	// ErrDuplicateName is returned when another plan already uses the name.
	ErrDuplicateName = errors.New("plan name already in use")

	// ErrPlanInUse is returned when a plan with subscriptions is deleted.
	ErrPlanInUse = errors.New("plan has subscriptions and cannot be deleted")

	// ErrInvalidInput is returned for malformed request data.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on repository failures.
	ErrInternal = errors.New("service: internal error")
)
