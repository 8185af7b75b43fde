package mail

import (
	"context"
	"fmt"
	"net/http"

	"log/slog"

	gerr "github.com/Growth-8020/free-scripts/internal/errors"
	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

type Config struct {
	APIKey    string `mapstructure:"sendgrid_api_key"`
	FromEmail string `mapstructure:"from_email"`
	FromName  string `mapstructure:"from_email_name"`
	ReplyTo   string `mapstructure:"reply_to"`
}

// Mailer sends notification emails through SendGrid.
type Mailer struct {
	cli  *sendgrid.Client
	from *sgmail.Email
	c    *Config
}

func New(c *Config) (*Mailer, error) {
	if c.APIKey == "" || c.FromEmail == "" || c.FromName == "" {
		return nil, fmt.Errorf("incomplete mailer config: sendgrid_api_key, from_email and from_email_name are required")
	}

	return &Mailer{
		cli:  sendgrid.NewSendClient(c.APIKey),
		from: sgmail.NewEmail(c.FromName, c.FromEmail),
		c:    c,
	}, nil
}

// Send delivers one message to all recipients with both HTML and plain
// text bodies.
func (m *Mailer) Send(ctx context.Context, recipients []string, subject, html, text string) error {
	if len(recipients) == 0 {
		return gerr.BadMailRequest
	}

	msg := sgmail.NewV3Mail()
	msg.SetFrom(m.from)
	msg.Subject = subject
	if m.c.ReplyTo != "" {
		msg.SetReplyTo(sgmail.NewEmail("", m.c.ReplyTo))
	}

	p := sgmail.NewPersonalization()
	for _, r := range recipients {
		p.AddTos(sgmail.NewEmail("", r))
	}
	msg.AddPersonalizations(p)
	msg.AddContent(sgmail.NewContent("text/plain", text))
	msg.AddContent(sgmail.NewContent("text/html", html))

	resp, err := m.cli.SendWithContext(ctx, msg)
	if err != nil {
		return fmt.Errorf("error sending email: %w", err)
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		return gerr.MailApiLimitReached
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("error sending email bad status code: %s, status code: %d", resp.Body, resp.StatusCode)
	}

	slog.Default().InfoContext(ctx, "email sent",
		slog.String("subject", subject),
		slog.Int("recipients", len(recipients)))

	return nil
}
