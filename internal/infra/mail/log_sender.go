package mail

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/openlluna/website/internal/entity"
)

// LogSender writes emails to the log instead of delivering them. Used in development.
type LogSender struct {
	logger *zap.Logger
}

func NewLogSender(logger *zap.Logger) *LogSender {
	return &LogSender{logger: logger.Named("mail.log")}
}

func (s *LogSender) Send(ctx context.Context, email entity.Email) (string, error) {
	id := "log-" + uuid.New().String()
	s.logger.Info("email not delivered (log provider)",
		zap.String("id", id),
		zap.String("from", email.From),
		zap.Strings("to", email.To),
		zap.String("reply_to", email.ReplyTo),
		zap.String("subject", email.Subject),
		zap.String("ref", email.RefID()),
		zap.Int("html_bytes", len(email.HTML)),
		zap.String("text", email.Text),
	)
	return id, nil
}
