package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/openlluna/website/internal/entity"
)

const (
	OutcomeAccepted = "accepted"
	OutcomeDegraded = "degraded"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

func NewSubmitInquiryUseCase(
	sender EmailSender,
	renderer InquiryRenderer,
	metrics MetricsRecorder,
	mailboxes Mailboxes,
	logger *zap.Logger,
) *SubmitInquiryUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SubmitInquiryUseCase{
		Sender:    sender,
		Renderer:  renderer,
		Metrics:   metrics,
		Mailboxes: mailboxes,
		Logger:    logger.Named("submit_inquiry"),
	}
}

// Execute validates the inquiry, renders both emails and sends them
// concurrently. Only a failed internal notification fails the request.
func (uc *SubmitInquiryUseCase) Execute(ctx context.Context, input SubmitInquiryInput) (*SubmitInquiryOutput, error) {
	composed, err := uc.Compose(input)
	if err != nil {
		if IsDomainError(err) {
			uc.recordInquiry(OutcomeRejected)
		}
		return nil, err
	}

	admin, client := uc.dispatch(ctx, composed)

	log := uc.Logger.With(zap.String("inquiry_id", composed.Inquiry.ID))

	if admin.Failed() {
		log.Error("internal notification failed",
			zap.String("ref", composed.Notification.RefID()),
			zap.Error(admin.Err),
		)
		if client.Failed() {
			log.Warn("acknowledgement failed", zap.Error(client.Err))
		}
		uc.recordInquiry(OutcomeFailed)
		return nil, &TechnicalError{
			Code:    CodeNotificationFailed,
			Message: "Notification send failed.",
			Err:     admin.Err,
		}
	}

	output := &SubmitInquiryOutput{
		OK:              true,
		AdminID:         admin.MessageID,
		Acknowledgement: AcknowledgementSent,
	}

	if client.Failed() {
		log.Warn("acknowledgement failed",
			zap.String("ref", composed.Acknowledgement.RefID()),
			zap.Error(client.Err),
		)
		output.Acknowledgement = AcknowledgementFailed
		uc.recordInquiry(OutcomeDegraded)
		return output, nil
	}

	output.ClientID = client.MessageID
	log.Info("inquiry delivered",
		zap.String("admin_id", admin.MessageID),
		zap.String("client_id", client.MessageID),
	)
	uc.recordInquiry(OutcomeAccepted)

	return output, nil
}

// Compose validates the input and renders both emails without sending them.
func (uc *SubmitInquiryUseCase) Compose(input SubmitInquiryInput) (*ComposedInquiry, error) {
	validationErrors := ValidateSubmitInquiryInput(input)
	if len(validationErrors) > 0 {
		return nil, &DomainError{
			Code:    CodeValidation,
			Message: "Missing required fields.",
			Fields:  validationErrors,
		}
	}

	inquiry, err := entity.NewInquiry(input.Name, input.Email, input.Phone, input.Message)
	if err != nil {
		return nil, &DomainError{
			Code:    CodeValidation,
			Message: "Missing required fields.",
		}
	}

	notification, err := uc.Renderer.Notification(inquiry)
	if err != nil {
		return nil, fmt.Errorf("render notification: %w", err)
	}

	acknowledgement, err := uc.Renderer.Acknowledgement(inquiry)
	if err != nil {
		return nil, fmt.Errorf("render acknowledgement: %w", err)
	}

	adminEmail := entity.Email{
		From:    uc.Mailboxes.ContactFrom,
		To:      []string{uc.Mailboxes.ContactTo},
		Subject: notification.Subject,
		HTML:    notification.HTML,
		Text:    notification.Text,
		Headers: map[string]string{entity.HeaderEntityRefID: refID(entity.RecipientAdmin)},
	}
	if uc.Mailboxes.ReplyToSubmitter {
		adminEmail.ReplyTo = inquiry.Email
	}

	clientEmail := entity.Email{
		From:    uc.Mailboxes.ClientFrom,
		To:      []string{inquiry.Email},
		Subject: acknowledgement.Subject,
		HTML:    acknowledgement.HTML,
		Text:    acknowledgement.Text,
		Headers: map[string]string{entity.HeaderEntityRefID: refID(entity.RecipientClient)},
	}

	return &ComposedInquiry{
		Inquiry:         inquiry,
		Notification:    adminEmail,
		Acknowledgement: clientEmail,
	}, nil
}

// dispatch starts both sends at once and waits for both. The sends run on a
// context detached from the caller so a disconnecting client cannot abort them.
func (uc *SubmitInquiryUseCase) dispatch(ctx context.Context, composed *ComposedInquiry) (DispatchResult, DispatchResult) {
	sendCtx := context.WithoutCancel(ctx)
	if uc.SendTimeout > 0 {
		var cancel context.CancelFunc
		sendCtx, cancel = context.WithTimeout(sendCtx, uc.SendTimeout)
		defer cancel()
	}

	var (
		wg     sync.WaitGroup
		admin  DispatchResult
		client DispatchResult
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		admin = uc.send(sendCtx, entity.RecipientAdmin, composed.Notification)
	}()
	go func() {
		defer wg.Done()
		client = uc.send(sendCtx, entity.RecipientClient, composed.Acknowledgement)
	}()
	wg.Wait()

	return admin, client
}

func (uc *SubmitInquiryUseCase) send(ctx context.Context, recipient entity.Recipient, email entity.Email) (result DispatchResult) {
	result.Recipient = recipient

	defer func() {
		if r := recover(); r != nil {
			result.MessageID = ""
			result.Err = fmt.Errorf("email sender panicked: %v", r)
		}

		status := "sent"
		if result.Failed() {
			status = "failed"
		}
		if uc.Metrics != nil {
			uc.Metrics.RecordEmailDispatch(string(recipient), status)
		}
	}()

	id, err := uc.Sender.Send(ctx, email)
	if err != nil {
		result.Err = fmt.Errorf("send %s email: %w", recipient, err)
		return result
	}
	result.MessageID = id
	return result
}

func (uc *SubmitInquiryUseCase) recordInquiry(outcome string) {
	if uc.Metrics != nil {
		uc.Metrics.RecordInquiry(outcome)
	}
}

func refID(recipient entity.Recipient) string {
	return fmt.Sprintf("contact-%s-%s", recipient, uuid.New().String())
}
