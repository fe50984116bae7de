package clients

import "errors"

var (
	// ErrClientNotFound is returned when the client does not exist.
	ErrClientNotFound = errors.New("client not found")

	// ErrDuplicateEmail is returned when another client already uses the
	// email address.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrInvalidInput is returned for malformed request data.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrEstimatorMisconfigured is returned when the stored estimator
	// settings cannot be parsed as numbers.
	ErrEstimatorMisconfigured = errors.New("return estimator is misconfigured")

	// ErrInternal is returned on repository failures.
	ErrInternal = errors.New("service: internal error")
)
