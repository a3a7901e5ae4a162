// Package email sends transactional mail over SMTP.
package email

import (
	"context"
	"fmt"
	"time"

	"pitchside_backend/platform/config"

	gomail "github.com/wneessen/go-mail"
)

// Sender delivers transactional mail. Sends are best-effort: callers log
// failures but never fail the originating request on them.
type Sender interface {
	SendWelcomeEmail(ctx context.Context, toEmail, username string) error
}

// NewSender returns an SMTP-backed sender, or a no-op sender when email is
// not configured.
func NewSender(cfg config.EmailConfig) Sender {
	if !cfg.GetEmailEnabled() {
		return noopSender{}
	}
	return &SMTPSender{
		host:      cfg.GetSMTPHost(),
		port:      cfg.GetSMTPPort(),
		username:  cfg.GetSMTPUsername(),
		password:  cfg.GetSMTPPassword(),
		fromName:  cfg.GetEmailFromName(),
		fromEmail: cfg.GetEmailFromAddress(),
	}
}

type noopSender struct{}

func (noopSender) SendWelcomeEmail(context.Context, string, string) error { return nil }

// SMTPSender implements Sender using a direct SMTP connection via go-mail.
type SMTPSender struct {
	host      string
	port      int
	username  string
	password  string
	fromName  string
	fromEmail string
}

// SendWelcomeEmail greets a freshly registered user.
func (s *SMTPSender) SendWelcomeEmail(ctx context.Context, toEmail, username string) error {
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Your account is ready. Browse players, follow live competitions and build your first squad.</p>",
		username,
	)
	return s.send(ctx, toEmail, "Welcome to Pitchside", body)
}

func (s *SMTPSender) send(ctx context.Context, toEmail, subject, htmlContent string) error {
	msg := gomail.NewMsg()
	if err := msg.FromFormat(s.fromName, s.fromEmail); err != nil {
		return fmt.Errorf("smtp from: %w", err)
	}
	if err := msg.To(toEmail); err != nil {
		return fmt.Errorf("smtp to: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextHTML, htmlContent)

	client, err := gomail.NewClient(s.host,
		gomail.WithPort(s.port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(s.username),
		gomail.WithPassword(s.password),
		gomail.WithTLSPortPolicy(gomail.TLSOpportunistic),
		gomail.WithTimeout(15*time.Second),
	)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}

	return nil
}
