package usecase

import "github.com/openlluna/website/internal/entity"

const (
	AcknowledgementSent   = "sent"
	AcknowledgementFailed = "failed"
)

type SubmitInquiryInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Message string `json:"message"`
}

type SubmitInquiryOutput struct {
	OK              bool   `json:"ok"`
	AdminID         string `json:"adminId,omitempty"`
	ClientID        string `json:"clientId,omitempty"`
	Acknowledgement string `json:"acknowledgement"`
}

// ComposedInquiry holds both rendered emails for one inquiry, before dispatch.
type ComposedInquiry struct {
	Inquiry         *entity.Inquiry
	Notification    entity.Email
	Acknowledgement entity.Email
}

// DispatchResult is the outcome of one send. Err is nil on success.
type DispatchResult struct {
	Recipient entity.Recipient
	MessageID string
	Err       error
}

func (r DispatchResult) Failed() bool {
	return r.Err != nil
}

// Mailboxes are the sender and recipient addresses used for the contact emails.
type Mailboxes struct {
	ContactTo        string
	ContactFrom      string
	ClientFrom       string
	ReplyToSubmitter bool
}
