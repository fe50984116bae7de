package notification

import "context"

// SettingsProvider resolves the email configuration at send time so that
// setting changes take effect without a restart.
type SettingsProvider interface {
	EmailMode(ctx context.Context) (string, error)
	EmailFrom(ctx context.Context) (string, error)
}

// MailClient delivers messages over SMTP.
type MailClient interface {
	Send(ctx context.Context, from, to, subject, body string) error
}

// Metrics counts delivery attempts by mode and result.
type Metrics interface {
	IncWelcomeEmail(mode, result string)
}

// Logger defines the logging interface used by the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
