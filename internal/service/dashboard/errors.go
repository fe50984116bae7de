package dashboard

import "errors"

var (
	// ErrInternal is returned on repository failures.
	ErrInternal = errors.New("service: internal error")
)
