package email

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"time"

	"github.com/resendlabs/resend-go"
	"go.uber.org/zap"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

type sendFunc func(params *resend.SendEmailRequest) (string, error)

type ResendMailer struct {
	send     sendFunc
	from     string
	fromName string
	logger   *zap.Logger
}

func NewResendMailer(apiKey, from, fromName string, logger *zap.Logger) *ResendMailer {
	client := resend.NewClient(apiKey)
	return newResendMailer(func(params *resend.SendEmailRequest) (string, error) {
		resp, err := client.Emails.Send(params)
		if err != nil {
			return "", err
		}
		return resp.Id, nil
	}, from, fromName, logger)
}

func newResendMailer(send sendFunc, from, fromName string, logger *zap.Logger) *ResendMailer {
	return &ResendMailer{
		send:     send,
		from:     from,
		fromName: fromName,
		logger:   logger.Named("email"),
	}
}

func (s *ResendMailer) SendContactNotification(_ context.Context, to string, notice ContactNotice) error {
	html, err := s.parseTemplate("contact-notification.html", map[string]interface{}{
		"Notice": notice,
		"Year":   time.Now().Year(),
	})
	if err != nil {
		return err
	}

	return s.deliver(&resend.SendEmailRequest{
		From:    s.sender(),
		To:      []string{to},
		ReplyTo: notice.Email,
		Subject: fmt.Sprintf("New enquiry: %s", notice.Subject),
		Html:    html,
	}, "contact_notification")
}

func (s *ResendMailer) SendNewsletterWelcome(_ context.Context, welcome Welcome) error {
	html, err := s.parseTemplate("newsletter-welcome.html", map[string]interface{}{
		"SiteName": welcome.SiteName,
		"Email":    welcome.Email,
		"Year":     time.Now().Year(),
	})
	if err != nil {
		return err
	}

	return s.deliver(&resend.SendEmailRequest{
		From:    s.sender(),
		To:      []string{welcome.Email},
		Subject: fmt.Sprintf("Welcome to %s!", welcome.SiteName),
		Html:    html,
	}, "newsletter_welcome")
}

func (s *ResendMailer) sender() string {
	return s.fromName + " <" + s.from + ">"
}

func (s *ResendMailer) deliver(params *resend.SendEmailRequest, kind string) error {
	id, err := s.send(params)
	if err != nil {
		s.logger.Warn("email send failed", zap.String("kind", kind), zap.Strings("to", params.To), zap.Error(err))
		return fmt.Errorf("failed to send %s email: %w", kind, err)
	}
	s.logger.Info("email sent", zap.String("kind", kind), zap.Strings("to", params.To), zap.String("id", id))
	return nil
}

func (s *ResendMailer) parseTemplate(name string, data interface{}) (string, error) {
	var body bytes.Buffer
	if err := templates.ExecuteTemplate(&body, name, data); err != nil {
		return "", fmt.Errorf("failed to render %s: %w", name, err)
	}
	return body.String(), nil
}
