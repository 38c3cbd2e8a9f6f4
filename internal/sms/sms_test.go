package sms

import (
	"context"
	"testing"

	"go.uber.org/zap"
)

func TestNewProvider(t *testing.T) {
	tests := []struct {
		name     string
		provider string
		want     string
		wantErr  bool
	}{
		{name: "console", provider: "console", want: "Console (Development)"},
		{name: "default to console", provider: "", want: "Console (Development)"},
		{name: "twilio", provider: "twilio", want: "Twilio"},
		{name: "unknown", provider: "carrier-pigeon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewProvider(Config{Provider: tt.provider}, zap.NewNop())
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for provider %q", tt.provider)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewProvider: %v", err)
			}
			if p.Name() != tt.want {
				t.Fatalf("Name() = %q, want %q", p.Name(), tt.want)
			}
		})
	}
}

func TestConsoleProvider_Send(t *testing.T) {
	p := NewConsoleProvider(zap.NewNop())

	result, err := p.Send(context.Background(), Message{To: "+15550100", Body: "ready"})
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if result.MessageID == "" {
		t.Fatalf("empty message id")
	}
}

func TestConsoleProvider_EmptyMessage(t *testing.T) {
	p := NewConsoleProvider(zap.NewNop())
	ctx := context.Background()

	if _, err := p.Send(ctx, Message{To: "", Body: "ready"}); err != ErrEmptyMessage {
		t.Fatalf("err = %v, want ErrEmptyMessage", err)
	}
	if _, err := p.Send(ctx, Message{To: "+15550100", Body: ""}); err != ErrEmptyMessage {
		t.Fatalf("err = %v, want ErrEmptyMessage", err)
	}
}
