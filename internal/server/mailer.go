package server

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"

	"github.com/studio-ormeau/folio/internal/config"
	"github.com/studio-ormeau/folio/internal/models"
)

// Mailer sends a notification when the contact form is submitted.
type Mailer interface {
	Notify(ctx context.Context, contact *models.Contact) error
}

// ResendMailer delivers contact notifications through the Resend API.
type ResendMailer struct {
	client *resend.Client
	from   string
	to     string
}

// NewResendMailer returns a mailer, or nil when the config has no API
// key or recipient.
func NewResendMailer(cfg config.MailConfig) *ResendMailer {
	if cfg.APIKey == "" || cfg.AdminEmail == "" {
		return nil
	}
	return &ResendMailer{
		client: resend.NewClient(cfg.APIKey),
		from:   cfg.From,
		to:     cfg.AdminEmail,
	}
}

func (m *ResendMailer) Notify(ctx context.Context, contact *models.Contact) error {
	_, err := m.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{m.to},
		Subject: fmt.Sprintf("New contact message: %s", contact.Subject),
		Text: fmt.Sprintf("From: %s <%s>\n\n%s",
			contact.Name, contact.Email, contact.Message),
	})
	return err
}
