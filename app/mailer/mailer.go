// Package mailer sends transactional email through SendGrid or Amazon SES.
package mailer

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"example/cosmic-api/app/config"
)

var (
	ErrNotConfigured    = errors.New("email service not configured")
	ErrInvalidRecipient = errors.New("invalid recipient email")
)

type Message struct {
	To      string
	Subject string
	HTML    string
	Text    string
}

type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

type Sender struct {
	Address string
	Name    string
}

// New picks the provider from cfg. When credentials or the from-address are
// missing it returns a Mailer whose sends fail with ErrNotConfigured.
func New(ctx context.Context, cfg config.EmailConfig) (Mailer, error) {
	if cfg.FromAddress == "" {
		return Unconfigured{}, nil
	}
	from := Sender{Address: cfg.FromAddress, Name: cfg.FromName}

	switch cfg.Provider {
	case "sendgrid", "":
		if cfg.APIKey == "" {
			return Unconfigured{}, nil
		}
		return NewSendGrid(cfg.APIKey, from), nil
	case "ses":
		return NewSESFromEnv(ctx, cfg.Region, from)
	default:
		return nil, fmt.Errorf("unsupported email provider %q", cfg.Provider)
	}
}

// Unconfigured rejects every send.
type Unconfigured struct{}

func (Unconfigured) Send(context.Context, Message) error {
	return ErrNotConfigured
}

// ValidateAddress trims addr and checks it is a bare email address.
func ValidateAddress(addr string) (string, error) {
	addr = strings.TrimSpace(addr)
	parsed, err := mail.ParseAddress(addr)
	if err != nil || parsed.Address != addr {
		return "", ErrInvalidRecipient
	}
	return addr, nil
}
