package mail

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gopkg.in/gomail.v2"

	"github.com/openlluna/website/internal/entity"
)

type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMTPSender delivers through a plain SMTP relay.
type SMTPSender struct {
	Host     string
	Port     int
	User     string
	Password string

	dialer dialer
}

func NewSMTPSender(host string, port int, user, password string) *SMTPSender {
	return &SMTPSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		dialer:   gomail.NewDialer(host, port, user, password),
	}
}

// Send returns the generated Message-ID since SMTP relays do not hand one back.
func (s *SMTPSender) Send(ctx context.Context, email entity.Email) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	messageID := fmt.Sprintf("<%s@%s>", uuid.New().String(), domainOf(email.From))

	m := gomail.NewMessage()
	m.SetHeader("From", email.From)
	m.SetHeader("To", email.To...)
	m.SetHeader("Subject", email.Subject)
	m.SetHeader("Message-ID", messageID)
	if email.ReplyTo != "" {
		m.SetHeader("Reply-To", email.ReplyTo)
	}
	for k, v := range email.Headers {
		m.SetHeader(k, v)
	}
	m.SetBody("text/plain", email.Text)
	m.AddAlternative("text/html", email.HTML)

	if err := s.dialer.DialAndSend(m); err != nil {
		return "", fmt.Errorf("smtp send: %w", err)
	}

	return messageID, nil
}
