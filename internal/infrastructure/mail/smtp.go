// Package mail implements the outbound mail transport over SMTP.
package mail

import (
	"context"
	"fmt"
	"time"

	gomail "github.com/wneessen/go-mail"

	"github.com/christian-constantin/commandit/internal/core/ports"
)

const defaultSendTimeout = 10 * time.Second

// Config captures the SMTP transport settings.
type Config struct {
	Host     string
	Port     int
	Secure   bool // implicit TLS (SMTPS) instead of opportunistic STARTTLS
	User     string
	Password string
	From     string
	Timeout  time.Duration
}

// SMTPMailer sends messages through an SMTP server using go-mail.
type SMTPMailer struct {
	client *gomail.Client
	from   string
}

// NewSMTPMailer builds the SMTP client. The connection is established lazily
// on the first Send.
func NewSMTPMailer(cfg Config) (*SMTPMailer, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultSendTimeout
	}

	opts := []gomail.Option{
		gomail.WithPort(cfg.Port),
		gomail.WithTimeout(timeout),
		gomail.WithTLSPortPolicy(gomail.TLSOpportunistic),
	}
	if cfg.Secure {
		opts = append(opts, gomail.WithSSL())
	}
	if cfg.User != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.User),
			gomail.WithPassword(cfg.Password),
		)
	}

	client, err := gomail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("smtp client: %w", err)
	}

	return &SMTPMailer{client: client, from: cfg.From}, nil
}

// Send delivers a single message. It blocks until the server accepts or
// rejects it, bounded by the client timeout and the caller's context.
func (m *SMTPMailer) Send(ctx context.Context, msg ports.MailMessage) error {
	mm := gomail.NewMsg()
	if err := mm.From(m.from); err != nil {
		return fmt.Errorf("smtp from address: %w", err)
	}
	if err := mm.To(msg.To...); err != nil {
		return fmt.Errorf("smtp recipients: %w", err)
	}
	mm.Subject(msg.Subject)
	mm.SetBodyString(gomail.TypeTextHTML, msg.HTML)

	if err := m.client.DialAndSendWithContext(ctx, mm); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}
