package mail

import (
	"context"
	"fmt"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/openlluna/website/internal/entity"
)

const sendGridEndpoint = "/v3/mail/send"

type SendGridSender struct {
	apiKey string
	host   string
}

func NewSendGridSender(apiKey, host string) *SendGridSender {
	return &SendGridSender{apiKey: apiKey, host: host}
}

func (s *SendGridSender) Send(ctx context.Context, email entity.Email) (string, error) {
	fromName, fromAddr := splitAddress(email.From)

	message := sgmail.NewV3Mail()
	message.SetFrom(sgmail.NewEmail(fromName, fromAddr))
	message.Subject = email.Subject

	p := sgmail.NewPersonalization()
	for _, to := range email.To {
		name, addr := splitAddress(to)
		p.AddTos(sgmail.NewEmail(name, addr))
	}
	message.AddPersonalizations(p)
	message.AddContent(
		sgmail.NewContent("text/plain", email.Text),
		sgmail.NewContent("text/html", email.HTML),
	)
	if email.ReplyTo != "" {
		message.SetReplyTo(sgmail.NewEmail("", email.ReplyTo))
	}
	for k, v := range email.Headers {
		message.SetHeader(k, v)
	}

	request := sendgrid.GetRequest(s.apiKey, sendGridEndpoint, s.host)
	request.Method = rest.Post
	request.Body = sgmail.GetRequestBody(message)

	response, err := sendgrid.MakeRequestWithContext(ctx, request)
	if err != nil {
		return "", fmt.Errorf("sendgrid send: %w", err)
	}
	if response.StatusCode >= 300 {
		return "", &ProviderError{Provider: "sendgrid", StatusCode: response.StatusCode, Body: response.Body}
	}

	return firstHeader(response.Headers, "X-Message-Id"), nil
}

func firstHeader(headers map[string][]string, key string) string {
	if values := headers[key]; len(values) > 0 {
		return values[0]
	}
	return ""
}
