package email

import (
	"context"
	"time"
)

// ContactNotice is what the agency receives when a visitor uses the contact form.
type ContactNotice struct {
	SiteName    string
	FirstName   string
	LastName    string
	Email       string
	Subject     string
	Message     string
	SubmittedAt time.Time
}

type Welcome struct {
	SiteName string
	Email    string
}

type Mailer interface {
	SendContactNotification(ctx context.Context, to string, notice ContactNotice) error
	SendNewsletterWelcome(ctx context.Context, welcome Welcome) error
}

// NoopMailer drops every message. Used when no email provider is configured.
type NoopMailer struct{}

func (NoopMailer) SendContactNotification(context.Context, string, ContactNotice) error {
	return nil
}

func (NoopMailer) SendNewsletterWelcome(context.Context, Welcome) error {
	return nil
}
