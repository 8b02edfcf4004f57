package resend

import "fmt"

type SendEmailInput struct {
	From    string            `json:"from"`
	To      []string          `json:"to"`
	Subject string            `json:"subject"`
	HTML    string            `json:"html,omitempty"`
	Text    string            `json:"text,omitempty"`
	ReplyTo string            `json:"reply_to,omitempty"`
	Headers map[string]string `json:"headers,omitempty"`
}

type SendEmailOutput struct {
	ID string `json:"id"`
}

// APIError is the error body Resend returns on 4xx/5xx.
type APIError struct {
	StatusCode int    `json:"statusCode"`
	Name       string `json:"name"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("resend %d %s: %s", e.StatusCode, e.Name, e.Message)
}
