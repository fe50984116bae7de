package client

import "errors"

var (
	// ErrClientNotFound is returned when no client row matches the id.
	ErrClientNotFound = errors.New("client.repository: client not found")

	// ErrDuplicateEmail is returned when the unique email constraint fires.
	ErrDuplicateEmail = errors.New("client.repository: email already registered")

	// ErrBuildQuery is returned when building the SQL query fails.
	ErrBuildQuery = errors.New("client.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails.
	ErrExecQuery = errors.New("client.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails.
	ErrScanRow = errors.New("client.repository: failed to scan row")
)
