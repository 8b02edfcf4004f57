package entity

const HeaderEntityRefID = "X-Entity-Ref-ID"

type Recipient string

const (
	RecipientAdmin  Recipient = "admin"
	RecipientClient Recipient = "client"
)

// Email is a fully rendered message ready for a delivery provider.
type Email struct {
	From    string            `json:"from"`
	To      []string          `json:"to"`
	ReplyTo string            `json:"reply_to,omitempty"`
	Subject string            `json:"subject"`
	HTML    string            `json:"html"`
	Text    string            `json:"text"`
	Headers map[string]string `json:"headers,omitempty"`
}

// EmailContent is the rendered part of an email: subject and both bodies.
type EmailContent struct {
	Subject string
	HTML    string
	Text    string
}

func (e Email) RefID() string {
	return e.Headers[HeaderEntityRefID]
}
