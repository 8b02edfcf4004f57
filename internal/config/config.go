package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	ProviderResend   = "resend"
	ProviderMailgun  = "mailgun"
	ProviderSendGrid = "sendgrid"
	ProviderSMTP     = "smtp"
	ProviderLog      = "log"
)

type Config struct {
	Port            int           `env:"PORT" envDefault:"8080"`
	Environment     string        `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	Version         string        `env:"APP_VERSION" envDefault:"1.0.0"`
	AllowedOrigins  []string      `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"30s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	RateLimit RateLimitConfig
	Site      SiteConfig
	Email     EmailConfig
}

type RateLimitConfig struct {
	PerMinute int `env:"RATE_LIMIT_PER_MINUTE" envDefault:"10"`
	Burst     int `env:"RATE_LIMIT_BURST" envDefault:"5"`
	// IPs or CIDR ranges whose X-Forwarded-For is honoured.
	TrustedProxies []string `env:"TRUSTED_PROXIES" envSeparator:","`
}

// SiteConfig carries the branding used by the contact emails and page.
type SiteConfig struct {
	Name       string `env:"SITE_NAME" envDefault:"Open Lluna"`
	URL        string `env:"SITE_URL" envDefault:"https://openlluna.com"`
	LogoURL    string `env:"LOGO_URL"`
	BrandColor string `env:"BRAND_COLOR" envDefault:"#28B7D5"`
}

type EmailConfig struct {
	Provider         string        `env:"EMAIL_PROVIDER" envDefault:"log"`
	SendTimeout      time.Duration `env:"EMAIL_SEND_TIMEOUT" envDefault:"0s"`
	ContactTo        string        `env:"CONTACT_TO_EMAIL" envDefault:"contact@openlluna.com"`
	ContactFrom      string        `env:"CONTACT_FROM_EMAIL"`
	ClientFrom       string        `env:"CLIENT_FROM_EMAIL"`
	ReplyToSubmitter bool          `env:"CONTACT_REPLY_TO_SUBMITTER" envDefault:"true"`

	ResendAPIKey  string `env:"RESEND_API_KEY"`
	ResendBaseURL string `env:"RESEND_BASE_URL" envDefault:"https://api.resend.com"`

	MailgunDomain  string `env:"MAILGUN_DOMAIN"`
	MailgunAPIKey  string `env:"MAILGUN_API_KEY"`
	MailgunAPIBase string `env:"MAILGUN_API_BASE"`

	SendGridAPIKey string `env:"SENDGRID_API_KEY"`
	SendGridHost   string `env:"SENDGRID_HOST" envDefault:"https://api.sendgrid.com"`

	SMTPHost     string `env:"SMTP_HOST"`
	SMTPPort     int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUsername string `env:"SMTP_USERNAME"`
	SMTPPassword string `env:"SMTP_PASSWORD"`
}

// Load reads .env when present, then parses the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return Parse()
}

func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) normalize() {
	c.Site.URL = strings.TrimSuffix(c.Site.URL, "/")
	if c.Site.LogoURL == "" {
		c.Site.LogoURL = c.Site.URL + "/logo.png"
	}

	defaultFrom := fmt.Sprintf("%s <send@openlluna.ca>", c.Site.Name)
	if c.Email.ContactFrom == "" {
		c.Email.ContactFrom = defaultFrom
	}
	if c.Email.ClientFrom == "" {
		c.Email.ClientFrom = defaultFrom
	}
	c.Email.Provider = strings.ToLower(strings.TrimSpace(c.Email.Provider))
}

func (c *Config) Validate() error {
	if c.Port <= 0 {
		return fmt.Errorf("PORT must be positive")
	}
	if c.RateLimit.PerMinute <= 0 {
		return fmt.Errorf("RATE_LIMIT_PER_MINUTE must be positive")
	}
	if c.Email.ContactTo == "" {
		return fmt.Errorf("CONTACT_TO_EMAIL is required")
	}
	if c.IsProduction() && c.Email.Provider == ProviderLog {
		return fmt.Errorf("EMAIL_PROVIDER %q does not deliver mail and is not allowed in production", ProviderLog)
	}
	return c.Email.Validate()
}

// Validate checks that the selected provider has its credentials.
func (e EmailConfig) Validate() error {
	switch e.Provider {
	case ProviderResend:
		if e.ResendAPIKey == "" {
			return fmt.Errorf("RESEND_API_KEY is required")
		}
	case ProviderMailgun:
		if e.MailgunDomain == "" {
			return fmt.Errorf("MAILGUN_DOMAIN is required")
		}
		if e.MailgunAPIKey == "" {
			return fmt.Errorf("MAILGUN_API_KEY is required")
		}
	case ProviderSendGrid:
		if e.SendGridAPIKey == "" {
			return fmt.Errorf("SENDGRID_API_KEY is required")
		}
	case ProviderSMTP:
		if e.SMTPHost == "" {
			return fmt.Errorf("SMTP_HOST is required")
		}
	case ProviderLog:
	default:
		return fmt.Errorf("unknown EMAIL_PROVIDER %q", e.Provider)
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
