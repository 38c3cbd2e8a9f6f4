// Package sms provides the notification dispatcher abstraction for sending
// text messages to customers, with the concrete provider selected by
// configuration at startup.
package sms

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// ErrEmptyMessage is returned when the destination number or body is missing.
var ErrEmptyMessage = errors.New("phone number and message are required")

// Message describes a single outbound text message. From is optional and
// falls back to the provider's configured sender id.
type Message struct {
	To   string
	Body string
	From string
}

// Result describes the outcome of a successful send.
type Result struct {
	MessageID string
}

// Provider is the one-method contract every SMS backend implements.
type Provider interface {
	Send(ctx context.Context, msg Message) (*Result, error)
	Name() string
}

// Config selects and parameterizes the provider.
type Config struct {
	Provider string

	TwilioAccountSID string
	TwilioAuthToken  string
	TwilioFromNumber string
}

// Provider names accepted in configuration.
const (
	ProviderConsole = "console"
	ProviderTwilio  = "twilio"
)

// NewProvider creates the provider named in the configuration.
func NewProvider(cfg Config, logger *zap.Logger) (Provider, error) {
	switch cfg.Provider {
	case ProviderConsole, "":
		return NewConsoleProvider(logger), nil
	case ProviderTwilio:
		return NewTwilioProvider(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioFromNumber, logger), nil
	default:
		return nil, fmt.Errorf("unknown sms provider: %s", cfg.Provider)
	}
}
