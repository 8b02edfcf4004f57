package resend

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

const DefaultBaseURL = "https://api.resend.com"

var ErrNotConfigured = errors.New("resend not configured")

type Client struct {
	apiKey string
	http   *resty.Client
}

func NewClient(apiKey, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		apiKey: apiKey,
		http: resty.New().
			SetBaseURL(baseURL).
			SetAuthToken(apiKey).
			SetHeader("Content-Type", "application/json").
			SetHeader("Accept", "application/json").
			SetTimeout(15 * time.Second),
	}
}

// SendEmail posts one email to /emails and returns the id Resend assigned.
func (c *Client) SendEmail(ctx context.Context, input SendEmailInput) (*SendEmailOutput, error) {
	if c.apiKey == "" {
		return nil, ErrNotConfigured
	}

	var (
		output SendEmailOutput
		apiErr APIError
	)

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(input).
		SetResult(&output).
		SetError(&apiErr).
		Post("/emails")
	if err != nil {
		return nil, fmt.Errorf("resend request: %w", err)
	}

	if resp.IsError() {
		if apiErr.StatusCode == 0 {
			apiErr.StatusCode = resp.StatusCode()
		}
		if apiErr.Message == "" {
			apiErr.Message = http.StatusText(resp.StatusCode())
		}
		return nil, &apiErr
	}

	if output.ID == "" {
		return nil, fmt.Errorf("resend: empty id in response (status %d)", resp.StatusCode())
	}

	return &output, nil
}
