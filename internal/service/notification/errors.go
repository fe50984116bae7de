package notification

import "errors"

var (
	// ErrSendFailed is returned when a message could not be delivered.
	ErrSendFailed = errors.New("notification could not be sent")

	// ErrInternal is returned when settings cannot be resolved.
	ErrInternal = errors.New("service: internal error")
)
