package sms

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// ConsoleProvider logs messages instead of sending them. It is the default
// provider so nothing dials out unless explicitly configured.
type ConsoleProvider struct {
	logger *zap.Logger
}

// NewConsoleProvider creates a logging-only provider.
func NewConsoleProvider(logger *zap.Logger) *ConsoleProvider {
	return &ConsoleProvider{logger: logger}
}

// Send logs the message and synthesizes a success result.
func (p *ConsoleProvider) Send(_ context.Context, msg Message) (*Result, error) {
	if msg.To == "" || msg.Body == "" {
		return nil, ErrEmptyMessage
	}

	p.logger.Info("sms message would be sent",
		zap.String("to", msg.To),
		zap.String("body", msg.Body),
	)

	return &Result{
		MessageID: fmt.Sprintf("mock-%d", time.Now().UnixMilli()),
	}, nil
}

// Name identifies the provider in diagnostics.
func (p *ConsoleProvider) Name() string {
	return "Console (Development)"
}
