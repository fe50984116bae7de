package notification

import (
	"context"
	"fmt"

	"github.com/barbearia/barbershop-service/internal/domain"
)

const (
	welcomeSubject = "Welcome to the Barbershop"

	resultSent   = "sent"
	resultFailed = "failed"
)

// Service sends client-facing notifications. In TEST mode messages are
// written to the log instead of being delivered.
type Service struct {
	settings SettingsProvider
	mail     MailClient
	metrics  Metrics
	logger   Logger
}

// NewService creates a new notification service.
func NewService(settings SettingsProvider, mail MailClient, metrics Metrics, logger Logger) *Service {
	return &Service{
		settings: settings,
		mail:     mail,
		metrics:  metrics,
		logger:   logger,
	}
}

// SendWelcome sends the welcome message to a newly registered client. The
// delivery mode and sender address are resolved from settings on every call.
func (s *Service) SendWelcome(ctx context.Context, client *domain.Client) error {
	mode, err := s.settings.EmailMode(ctx)
	if err != nil {
		return fmt.Errorf("%w: SendWelcome - resolve email mode: %v", ErrInternal, err)
	}
	from, err := s.settings.EmailFrom(ctx)
	if err != nil {
		return fmt.Errorf("%w: SendWelcome - resolve sender: %v", ErrInternal, err)
	}

	body := welcomeBody(client.FullName)

	if mode != domain.EmailModeSMTP {
		s.logger.Info("[EMAIL TEST] to=%s from=%s subject=%q", client.Email, from, welcomeSubject)
		s.logger.Info("[EMAIL TEST] body: %s", body)
		s.logger.Warn("[ALERT] New client registered: %s (%s)", client.FullName, client.Email)
		s.metrics.IncWelcomeEmail(domain.EmailModeTest, resultSent)
		return nil
	}

	if err := s.mail.Send(ctx, from, client.Email, welcomeSubject, body); err != nil {
		s.logger.Error("SendWelcome: delivery to %s failed: %v", client.Email, err)
		s.metrics.IncWelcomeEmail(domain.EmailModeSMTP, resultFailed)
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	s.logger.Info("SendWelcome: welcome email delivered to %s", client.Email)
	s.metrics.IncWelcomeEmail(domain.EmailModeSMTP, resultSent)
	return nil
}

func welcomeBody(name string) string {
	return fmt.Sprintf("Hello %s,\n\nWelcome to the Barbershop! Your registration is complete.\nWe look forward to seeing you soon.\n\nReminder: don't forget to schedule your first cut.\n", name)
}
