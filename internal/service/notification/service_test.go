package notification

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barbearia/barbershop-service/internal/domain"
)

type stubSettings struct {
	mode string
	from string
}

func (s stubSettings) EmailMode(ctx context.Context) (string, error) { return s.mode, nil }
func (s stubSettings) EmailFrom(ctx context.Context) (string, error) { return s.from, nil }

type recordingMail struct {
	calls int
	to    string
	from  string
	body  string
	err   error
}

func (m *recordingMail) Send(ctx context.Context, from, to, subject, body string) error {
	m.calls++
	m.from = from
	m.to = to
	m.body = body
	return m.err
}

type countingMetrics struct {
	welcome map[string]int
}

func newCountingMetrics() *countingMetrics {
	return &countingMetrics{welcome: map[string]int{}}
}

func (m *countingMetrics) IncWelcomeEmail(mode, result string) {
	m.welcome[mode+"/"+result]++
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

type recordingLogger struct {
	infos []string
	warns []string
}

func (l *recordingLogger) Info(format string, v ...interface{}) {
	l.infos = append(l.infos, fmt.Sprintf(format, v...))
}

func (l *recordingLogger) Warn(format string, v ...interface{}) {
	l.warns = append(l.warns, fmt.Sprintf(format, v...))
}

func (l *recordingLogger) Error(format string, v ...interface{}) {}

func testClient() *domain.Client {
	return &domain.Client{ID: 7, FullName: "Ana Souza", Email: "ana@example.com"}
}

func TestSendWelcome_TestModeSkipsTransport(t *testing.T) {
	mail := &recordingMail{}
	metrics := newCountingMetrics()
	log := &recordingLogger{}
	svc := NewService(stubSettings{mode: domain.EmailModeTest, from: "no-reply@barbearia.local"}, mail, metrics, log)

	err := svc.SendWelcome(context.Background(), testClient())

	require.NoError(t, err)
	assert.Zero(t, mail.calls)
	assert.Equal(t, 1, metrics.welcome["TEST/sent"])

	// The message content is logged plus a separate alert line.
	require.Len(t, log.infos, 2)
	assert.Contains(t, log.infos[1], "Welcome to the Barbershop")
	require.Len(t, log.warns, 1)
	assert.Contains(t, log.warns[0], "New client registered: Ana Souza (ana@example.com)")
}

func TestSendWelcome_SMTPDelivers(t *testing.T) {
	mail := &recordingMail{}
	metrics := newCountingMetrics()
	svc := NewService(stubSettings{mode: domain.EmailModeSMTP, from: "barber@example.com"}, mail, metrics, noopLogger{})

	err := svc.SendWelcome(context.Background(), testClient())

	require.NoError(t, err)
	assert.Equal(t, 1, mail.calls)
	assert.Equal(t, "barber@example.com", mail.from)
	assert.Equal(t, "ana@example.com", mail.to)
	assert.Contains(t, mail.body, "Hello Ana Souza")
	assert.Contains(t, mail.body, "Reminder: don't forget to schedule your first cut.")
	assert.Equal(t, 1, metrics.welcome["SMTP/sent"])
}

func TestSendWelcome_SMTPFailure(t *testing.T) {
	mail := &recordingMail{err: errors.New("connection refused")}
	metrics := newCountingMetrics()
	svc := NewService(stubSettings{mode: domain.EmailModeSMTP, from: "barber@example.com"}, mail, metrics, noopLogger{})

	err := svc.SendWelcome(context.Background(), testClient())

	assert.ErrorIs(t, err, ErrSendFailed)
	assert.Equal(t, 1, metrics.welcome["SMTP/failed"])
}

func TestSendWelcome_UnknownModeFallsBackToTest(t *testing.T) {
	mail := &recordingMail{}
	metrics := newCountingMetrics()
	svc := NewService(stubSettings{mode: "BOGUS", from: "no-reply@barbearia.local"}, mail, metrics, noopLogger{})

	err := svc.SendWelcome(context.Background(), testClient())

	require.NoError(t, err)
	assert.Zero(t, mail.calls)
	assert.Equal(t, 1, metrics.welcome["TEST/sent"])
}
