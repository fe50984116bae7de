package estimate_return

import "errors"

var (
	// ErrClientNotFound is returned when the client does not exist.
	ErrClientNotFound = errors.New("client not found")

	// ErrInvalidSettings is returned when the estimator settings are
	// malformed or not positive numbers.
	ErrInvalidSettings = errors.New("estimator settings are invalid")

	// ErrInternal is returned on repository or settings failures.
	ErrInternal = errors.New("usecase: internal error")
)
