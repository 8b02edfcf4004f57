package mail

import (
	"context"
	"fmt"

	"github.com/mailgun/mailgun-go/v4"

	"github.com/openlluna/website/internal/entity"
)

type MailgunSender struct {
	client *mailgun.MailgunImpl
}

func NewMailgunSender(domain, apiKey, apiBase string) *MailgunSender {
	client := mailgun.NewMailgun(domain, apiKey)
	if apiBase != "" {
		client.SetAPIBase(apiBase)
	}
	return &MailgunSender{client: client}
}

func (s *MailgunSender) Send(ctx context.Context, email entity.Email) (string, error) {
	message := s.client.NewMessage(email.From, email.Subject, email.Text, email.To...)
	message.SetHtml(email.HTML)
	if email.ReplyTo != "" {
		message.SetReplyTo(email.ReplyTo)
	}
	for k, v := range email.Headers {
		message.AddHeader(k, v)
	}

	_, id, err := s.client.Send(ctx, message)
	if err != nil {
		return "", fmt.Errorf("mailgun send: %w", err)
	}
	return id, nil
}
