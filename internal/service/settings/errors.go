package settings

import "errors"

var (
	// ErrSettingNotFound is returned when a key has neither a stored value
	// nor a built-in default.
	ErrSettingNotFound = errors.New("setting not found")

	// ErrInvalidNumericSetting is returned when a numeric setting holds a
	// value that cannot be parsed.
	ErrInvalidNumericSetting = errors.New("setting value is not a valid number")

	// ErrInvalidInput is returned for malformed keys or values.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned for repository failures.
	ErrInternal = errors.New("service: internal error")
)
