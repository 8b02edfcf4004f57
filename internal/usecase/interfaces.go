package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/openlluna/website/internal/entity"
)

// EmailSender delivers one rendered email and returns the provider's message id.
type EmailSender interface {
	Send(ctx context.Context, email entity.Email) (string, error)
}

type InquiryRenderer interface {
	Notification(inquiry *entity.Inquiry) (entity.EmailContent, error)
	Acknowledgement(inquiry *entity.Inquiry) (entity.EmailContent, error)
}

type MetricsRecorder interface {
	RecordInquiry(outcome string)
	RecordEmailDispatch(recipient, status string)
}

type SubmitInquiryUseCase struct {
	Sender      EmailSender
	Renderer    InquiryRenderer
	Metrics     MetricsRecorder
	Mailboxes   Mailboxes
	SendTimeout time.Duration
	Logger      *zap.Logger
}
