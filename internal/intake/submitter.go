package intake

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync/atomic"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	DefaultEndpoint     = "/api/contact"
	DefaultContactEmail = "contact@openlluna.com"

	titleMissing = "Missing fields"
	bodyMissing  = "Please fill in your name, email and a short message."
	titleSuccess = "Thanks — we received your message!"
	bodySuccess  = "Our team will get back to you within 24–48 hours. You’ll also receive a confirmation email shortly."
	titleFailure = "Something went wrong"
	bodyFailure  = "Please try again in a moment."
	titleNetwork = "Network error"
	bodyNetwork  = "We couldn’t reach the server. Please check your connection and try again."
)

// ErrSubmitInProgress is returned when a submit arrives while another is in flight.
var ErrSubmitInProgress = errors.New("submit already in progress")

type response struct {
	OK              bool   `json:"ok"`
	Error           string `json:"error"`
	AdminID         string `json:"adminId"`
	ClientID        string `json:"clientId"`
	Acknowledgement string `json:"acknowledgement"`
}

// Submitter posts the contact form to the inquiry endpoint. At most one
// request is in flight at a time and nothing is retried.
type Submitter struct {
	http         *resty.Client
	endpoint     string
	contactEmail string
	submitting   atomic.Bool
}

func NewSubmitter(baseURL string) *Submitter {
	return &Submitter{
		http: resty.New().
			SetBaseURL(strings.TrimSuffix(baseURL, "/")).
			SetHeader("Content-Type", "application/json").
			SetHeader("Accept", "application/json").
			SetTimeout(30 * time.Second),
		endpoint:     DefaultEndpoint,
		contactEmail: DefaultContactEmail,
	}
}

func (s *Submitter) WithContactEmail(address string) *Submitter {
	s.contactEmail = address
	return s
}

func (s *Submitter) Submitting() bool {
	return s.submitting.Load()
}

// Submit validates the form locally, then sends it. The form is cleared only on
// success. A missing field returns an error modal without any request.
func (s *Submitter) Submit(ctx context.Context, form *Form) (Modal, error) {
	if !s.submitting.CompareAndSwap(false, true) {
		return Modal{}, ErrSubmitInProgress
	}
	defer s.submitting.Store(false)

	payload := form.trimmed()
	if !payload.Complete() {
		return s.modal(ModalError, titleMissing, bodyMissing), nil
	}

	resp, err := s.http.R().
		SetContext(ctx).
		SetBody(payload).
		Post(s.endpoint)
	if err != nil {
		return s.modal(ModalError, titleNetwork, bodyNetwork), nil
	}

	var body response
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return s.modal(ModalError, titleFailure, bodyFailure), nil
	}

	if resp.IsSuccess() && body.Error == "" {
		form.Reset()
		return s.modal(ModalSuccess, titleSuccess, bodySuccess), nil
	}

	message := body.Error
	if message == "" {
		message = bodyFailure
	}
	return s.modal(ModalError, titleFailure, message), nil
}

func (s *Submitter) modal(kind ModalKind, title, body string) Modal {
	return Modal{Kind: kind, Title: title, Body: body, ContactEmail: s.contactEmail}
}
