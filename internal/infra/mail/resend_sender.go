package mail

import (
	"context"

	"github.com/openlluna/website/internal/entity"
	"github.com/openlluna/website/internal/infra/integration/resend"
)

type ResendSender struct {
	client *resend.Client
}

func NewResendSender(client *resend.Client) *ResendSender {
	return &ResendSender{client: client}
}

func (s *ResendSender) Send(ctx context.Context, email entity.Email) (string, error) {
	output, err := s.client.SendEmail(ctx, resend.SendEmailInput{
		From:    email.From,
		To:      email.To,
		Subject: email.Subject,
		HTML:    email.HTML,
		Text:    email.Text,
		ReplyTo: email.ReplyTo,
		Headers: email.Headers,
	})
	if err != nil {
		return "", err
	}
	return output.ID, nil
}
