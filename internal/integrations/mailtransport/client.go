package mailtransport

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strings"
	"time"
)

// Client sends mail through a plain SMTP relay.
type Client struct {
	addr     string
	username string
	password string
	timeout  time.Duration
	log      Logger
}

// NewClient creates a new SMTP mail client. Username and password may be
// empty for relays that do not require authentication.
func NewClient(host string, port int, username, password string, timeout time.Duration, log Logger) *Client {
	return &Client{
		addr:     fmt.Sprintf("%s:%d", host, port),
		username: username,
		password: password,
		timeout:  timeout,
		log:      log,
	}
}

// Send delivers a single plain-text message.
func (c *Client) Send(ctx context.Context, from, to, subject, body string) error {
	dialer := net.Dialer{Timeout: c.timeout}

	conn, err := dialer.DialContext(ctx, "tcp", c.addr)
	if err != nil {
		return fmt.Errorf("%w: dial %s: %v", ErrTransport, c.addr, err)
	}

	host := c.addr
	if idx := strings.LastIndex(c.addr, ":"); idx >= 0 {
		host = c.addr[:idx]
	}

	client, err := smtp.NewClient(conn, host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("%w: handshake: %v", ErrTransport, err)
	}
	defer client.Close()

	if c.username != "" {
		auth := smtp.PlainAuth("", c.username, c.password, host)
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("%w: auth: %v", ErrTransport, err)
		}
	}

	if err := client.Mail(from); err != nil {
		return fmt.Errorf("%w: MAIL FROM: %v", ErrTransport, err)
	}
	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("%w: RCPT TO: %v", ErrTransport, err)
	}

	wc, err := client.Data()
	if err != nil {
		return fmt.Errorf("%w: DATA: %v", ErrTransport, err)
	}

	msg := buildMessage(from, to, subject, body)
	if _, err := wc.Write([]byte(msg)); err != nil {
		wc.Close()
		return fmt.Errorf("%w: write body: %v", ErrTransport, err)
	}
	if err := wc.Close(); err != nil {
		return fmt.Errorf("%w: close body: %v", ErrTransport, err)
	}

	if err := client.Quit(); err != nil {
		c.log.Warn("mailtransport: QUIT failed: %v", err)
	}

	c.log.Info("mailtransport: message sent to %s", to)
	return nil
}

func buildMessage(from, to, subject, body string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)
	b.WriteString("\r\n")
	return b.String()
}
