package service

import (
	"context"
	"fmt"

	"bizcelona-backend/internal/logger"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type sendGridMailer struct {
	apiKey string
}

// NewSendGridMailer returns a Mailer backed by the SendGrid v3 API.
func NewSendGridMailer(apiKey string) Mailer {
	return &sendGridMailer{apiKey: apiKey}
}

func (m *sendGridMailer) Send(ctx context.Context, msg *Email) (string, error) {
	message := mail.NewV3Mail()
	message.SetFrom(mail.NewEmail(msg.FromName, msg.From))
	message.Subject = msg.Subject

	personalization := mail.NewPersonalization()
	for _, to := range msg.To {
		personalization.AddTos(mail.NewEmail("", to))
	}
	for _, cc := range msg.CC {
		personalization.AddCCs(mail.NewEmail("", cc))
	}
	message.AddPersonalizations(personalization)
	message.AddContent(mail.NewContent("text/html", msg.HTML))

	logger.ExternalServiceCall("sendgrid", "send", "subject", msg.Subject, "to", msg.To)
	client := sendgrid.NewSendClient(m.apiKey)
	response, err := client.SendWithContext(ctx, message)
	logger.ExternalServiceResult("sendgrid", "send", err)
	if err != nil {
		return "", fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return "", fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}

	if ids := response.Headers["X-Message-Id"]; len(ids) > 0 {
		return ids[0], nil
	}
	return "", nil
}
