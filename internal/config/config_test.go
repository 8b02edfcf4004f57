package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "Open Lluna", cfg.Site.Name)
	assert.Equal(t, "https://openlluna.com", cfg.Site.URL)
	assert.Equal(t, "https://openlluna.com/logo.png", cfg.Site.LogoURL)
	assert.Equal(t, "#28B7D5", cfg.Site.BrandColor)
	assert.Equal(t, "contact@openlluna.com", cfg.Email.ContactTo)
	assert.Equal(t, "Open Lluna <send@openlluna.ca>", cfg.Email.ContactFrom)
	assert.Equal(t, "Open Lluna <send@openlluna.ca>", cfg.Email.ClientFrom)
	assert.Equal(t, ProviderLog, cfg.Email.Provider)
	assert.True(t, cfg.Email.ReplyToSubmitter)
	assert.Equal(t, time.Duration(0), cfg.Email.SendTimeout)
	assert.Equal(t, ":8080", cfg.Addr())
}

func TestParseTrimsTrailingSlash(t *testing.T) {
	t.Setenv("SITE_URL", "https://example.com/")
	t.Setenv("SITE_NAME", "Example")

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, "https://example.com", cfg.Site.URL)
	assert.Equal(t, "https://example.com/logo.png", cfg.Site.LogoURL)
	assert.Equal(t, "Example <send@openlluna.ca>", cfg.Email.ContactFrom)
}

func TestParseCorsOrigins(t *testing.T) {
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.com,https://b.com")

	cfg, err := Parse()
	require.NoError(t, err)
	assert.Equal(t, []string{"https://a.com", "https://b.com"}, cfg.AllowedOrigins)
}

func TestEmailConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     EmailConfig
		wantErr string
	}{
		{name: "log needs nothing", cfg: EmailConfig{Provider: ProviderLog}},
		{name: "resend without key", cfg: EmailConfig{Provider: ProviderResend}, wantErr: "RESEND_API_KEY is required"},
		{name: "resend with key", cfg: EmailConfig{Provider: ProviderResend, ResendAPIKey: "re_123"}},
		{name: "mailgun without domain", cfg: EmailConfig{Provider: ProviderMailgun, MailgunAPIKey: "k"}, wantErr: "MAILGUN_DOMAIN is required"},
		{name: "mailgun without key", cfg: EmailConfig{Provider: ProviderMailgun, MailgunDomain: "mg.example.com"}, wantErr: "MAILGUN_API_KEY is required"},
		{name: "sendgrid without key", cfg: EmailConfig{Provider: ProviderSendGrid}, wantErr: "SENDGRID_API_KEY is required"},
		{name: "smtp without host", cfg: EmailConfig{Provider: ProviderSMTP}, wantErr: "SMTP_HOST is required"},
		{name: "unknown provider", cfg: EmailConfig{Provider: "pigeon"}, wantErr: `unknown EMAIL_PROVIDER "pigeon"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestParseRejectsMissingProviderCredentials(t *testing.T) {
	t.Setenv("EMAIL_PROVIDER", "Resend")
	t.Setenv("RESEND_API_KEY", "")

	_, err := Parse()
	assert.EqualError(t, err, "RESEND_API_KEY is required")
}

func TestParseRejectsLogProviderInProduction(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")

	_, err := Parse()
	assert.EqualError(t, err, `EMAIL_PROVIDER "log" does not deliver mail and is not allowed in production`)

	t.Setenv("EMAIL_PROVIDER", "resend")
	t.Setenv("RESEND_API_KEY", "re_123")

	cfg, err := Parse()
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
}

func TestParseTrustedProxies(t *testing.T) {
	cfg, err := Parse()
	require.NoError(t, err)
	assert.Empty(t, cfg.RateLimit.TrustedProxies)

	t.Setenv("TRUSTED_PROXIES", "10.0.0.0/8,192.0.2.1")
	cfg, err = Parse()
	require.NoError(t, err)
	assert.Equal(t, []string{"10.0.0.0/8", "192.0.2.1"}, cfg.RateLimit.TrustedProxies)
}
