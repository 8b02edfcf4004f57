package entity

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNameRequired    = errors.New("name is required")
	ErrEmailRequired   = errors.New("email is required")
	ErrMessageRequired = errors.New("message is required")
)

// Inquiry is a single contact form submission. It lives for one request only.
type Inquiry struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone,omitempty"`
	Message    string    `json:"message"`
	ReceivedAt time.Time `json:"received_at"`
}

// Factory
func NewInquiry(name, email, phone, message string) (*Inquiry, error) {
	inquiry := &Inquiry{
		ID:         uuid.New().String(),
		Name:       strings.TrimSpace(name),
		Email:      strings.TrimSpace(email),
		Phone:      strings.TrimSpace(phone),
		Message:    strings.TrimSpace(message),
		ReceivedAt: time.Now(),
	}

	if err := inquiry.Validate(); err != nil {
		return nil, err
	}

	return inquiry, nil
}

// Validate checks presence only. The email address format is deliberately left
// to the delivery provider.
func (i *Inquiry) Validate() error {
	if i.Name == "" {
		return ErrNameRequired
	}
	if i.Email == "" {
		return ErrEmailRequired
	}
	if i.Message == "" {
		return ErrMessageRequired
	}
	return nil
}

func (i *Inquiry) HasPhone() bool {
	return i.Phone != ""
}
