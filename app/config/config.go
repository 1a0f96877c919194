// Package config loads runtime settings from the environment once at startup.
package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"
	"time"

	// this will automatically load your .env file:
	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/viper"
)

type Config struct {
	Logs   LogConfig      `mapstructure:",squash"`
	DB     PostgresConfig `mapstructure:",squash"`
	Server ServerConfig   `mapstructure:",squash"`
	Stripe StripeConfig   `mapstructure:",squash"`
	LLM    LLMConfig      `mapstructure:",squash"`
	Email  EmailConfig    `mapstructure:",squash"`
}

type LogConfig struct {
	Style string `mapstructure:"LOG_STYLE"`
	Level string `mapstructure:"LOG_LEVEL"`
}

type PostgresConfig struct {
	Username string `mapstructure:"POSTGRES_USER"`
	Password string `mapstructure:"POSTGRES_PWD"`
	URL      string `mapstructure:"POSTGRES_URL"`
	Port     string `mapstructure:"POSTGRES_PORT"`
	Name     string `mapstructure:"POSTGRES_DB"`
	SSLMode  string `mapstructure:"POSTGRES_SSLMODE"`
	// DSN, when set, wins over the individual fields above.
	DSN string `mapstructure:"DATABASE_URL"`
}

type ServerConfig struct {
	Port           string `mapstructure:"PORT"`
	AllowedOrigins string `mapstructure:"ALLOWED_ORIGINS"`
	MigrateOnStart bool   `mapstructure:"MIGRATE_ON_START"`
}

type StripeConfig struct {
	SecretKey     string `mapstructure:"STRIPE_SECRET_KEY"`
	WebhookSecret string `mapstructure:"STRIPE_WEBHOOK_SECRET"`
	FrontendURL   string `mapstructure:"FRONTEND_URL"`
}

type LLMConfig struct {
	Provider string        `mapstructure:"LLM_PROVIDER"` // openai or gemini
	APIKey   string        `mapstructure:"LLM_API_KEY"`
	Model    string        `mapstructure:"LLM_MODEL"`
	Timeout  time.Duration `mapstructure:"LLM_TIMEOUT"`
}

type EmailConfig struct {
	Provider    string `mapstructure:"EMAIL_PROVIDER"` // sendgrid or ses
	APIKey      string `mapstructure:"SENDGRID_API_KEY"`
	FromAddress string `mapstructure:"EMAIL_FROM_ADDRESS"`
	FromName    string `mapstructure:"EMAIL_FROM_NAME"`
	Region      string `mapstructure:"AWS_REGION"`
}

var keys = []string{
	"LOG_STYLE", "LOG_LEVEL",
	"POSTGRES_USER", "POSTGRES_PWD", "POSTGRES_URL", "POSTGRES_PORT", "POSTGRES_DB", "POSTGRES_SSLMODE", "DATABASE_URL",
	"PORT", "ALLOWED_ORIGINS", "MIGRATE_ON_START",
	"STRIPE_SECRET_KEY", "STRIPE_WEBHOOK_SECRET", "FRONTEND_URL",
	"LLM_PROVIDER", "LLM_API_KEY", "LLM_MODEL", "LLM_TIMEOUT",
	"EMAIL_PROVIDER", "SENDGRID_API_KEY", "EMAIL_FROM_ADDRESS", "EMAIL_FROM_NAME", "AWS_REGION",
}

// LoadConfig reads the environment (and .env, if present) into a Config.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("LOG_STYLE", "json")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("POSTGRES_PORT", "5432")
	v.SetDefault("POSTGRES_DB", "postgres")
	v.SetDefault("POSTGRES_SSLMODE", "disable")
	v.SetDefault("PORT", "8080")
	v.SetDefault("ALLOWED_ORIGINS", "*")
	v.SetDefault("MIGRATE_ON_START", false)
	v.SetDefault("FRONTEND_URL", "http://localhost:3000")
	v.SetDefault("LLM_PROVIDER", "openai")
	v.SetDefault("LLM_MODEL", "gpt-3.5-turbo")
	v.SetDefault("LLM_TIMEOUT", "120s")
	v.SetDefault("EMAIL_PROVIDER", "sendgrid")
	v.SetDefault("EMAIL_FROM_NAME", "Cosmic Lottery Support")

	for _, k := range keys {
		_ = v.BindEnv(k)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the settings the server cannot start without. Stripe, LLM
// and email settings are optional here and fail per request instead.
func (c *Config) Validate() error {
	if c.DB.DSN == "" && (c.DB.Username == "" || c.DB.URL == "") {
		return errors.New("either DATABASE_URL or POSTGRES_USER and POSTGRES_URL are required")
	}
	switch c.LLM.Provider {
	case "openai", "gemini":
	default:
		return fmt.Errorf("unsupported LLM_PROVIDER %q", c.LLM.Provider)
	}
	switch c.Email.Provider {
	case "sendgrid", "ses":
	default:
		return fmt.Errorf("unsupported EMAIL_PROVIDER %q", c.Email.Provider)
	}
	return nil
}

// PostgresDSN builds the connection string for lib/pq.
func (c PostgresConfig) PostgresDSN() string {
	if c.DSN != "" {
		return c.DSN
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.Username, c.Password),
		Host:     net.JoinHostPort(c.URL, c.Port),
		Path:     "/" + c.Name,
		RawQuery: url.Values{"sslmode": {c.SSLMode}}.Encode(),
	}
	return u.String()
}

// Origins splits ALLOWED_ORIGINS on commas.
func (c ServerConfig) Origins() []string {
	var out []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}
