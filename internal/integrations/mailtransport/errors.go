package mailtransport

import "errors"

var (
	// ErrTransport is returned when the SMTP server cannot be reached or
	// rejects the message.
	ErrTransport = errors.New("mailtransport: delivery failed")
)
