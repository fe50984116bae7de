package create_appointment

import "errors"

var (
	// ErrClientNotFound is returned when the client does not exist.
	ErrClientNotFound = errors.New("client not found")

	// ErrNoActivePlan is returned when the client has no active subscription.
	ErrNoActivePlan = errors.New("client has no active plan")

	// ErrPlanNotFound is returned when the subscribed plan no longer exists.
	ErrPlanNotFound = errors.New("plan not found")

	// ErrWeekdayOnly is returned when the plan forbids weekend appointments.
	ErrWeekdayOnly = errors.New("plan allows weekday appointments only")

	// ErrWeeklyLimit is returned when the plan's weekly booking limit is
	// already reached for the target week.
	ErrWeeklyLimit = errors.New("weekly appointment limit reached")

	// ErrMinimumSpacing is returned when the appointment is too close to the
	// client's last completed visit.
	ErrMinimumSpacing = errors.New("minimum days between appointments not respected")

	// ErrInvalidInput is returned for malformed request data.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on repository failures.
	ErrInternal = errors.New("usecase: internal error")
)
