package mail

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/openlluna/website/internal/config"
	"github.com/openlluna/website/internal/infra/integration/resend"
	"github.com/openlluna/website/internal/usecase"
)

// NewSender builds the sender for the configured provider.
func NewSender(cfg config.EmailConfig, logger *zap.Logger) (usecase.EmailSender, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	switch cfg.Provider {
	case config.ProviderResend:
		return NewResendSender(resend.NewClient(cfg.ResendAPIKey, cfg.ResendBaseURL)), nil
	case config.ProviderMailgun:
		return NewMailgunSender(cfg.MailgunDomain, cfg.MailgunAPIKey, cfg.MailgunAPIBase), nil
	case config.ProviderSendGrid:
		return NewSendGridSender(cfg.SendGridAPIKey, cfg.SendGridHost), nil
	case config.ProviderSMTP:
		return NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword), nil
	case config.ProviderLog:
		return NewLogSender(logger), nil
	}

	return nil, fmt.Errorf("unknown email provider %q", cfg.Provider)
}
