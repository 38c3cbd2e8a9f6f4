package sms

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

const twilioAPIBase = "https://api.twilio.com"

// TwilioProvider sends messages through the Twilio Messages REST endpoint.
type TwilioProvider struct {
	accountSID string
	authToken  string
	fromNumber string
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewTwilioProvider creates a provider for the given Twilio account.
func NewTwilioProvider(accountSID, authToken, fromNumber string, logger *zap.Logger) *TwilioProvider {
	return &TwilioProvider{
		accountSID: accountSID,
		authToken:  authToken,
		fromNumber: fromNumber,
		baseURL:    twilioAPIBase,
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
		logger: logger,
	}
}

type twilioResponse struct {
	SID     string `json:"sid"`
	Message string `json:"message"`
}

// Send posts the message to Twilio and returns the message sid.
func (p *TwilioProvider) Send(ctx context.Context, msg Message) (*Result, error) {
	if msg.To == "" || msg.Body == "" {
		return nil, ErrEmptyMessage
	}

	from := msg.From
	if from == "" {
		from = p.fromNumber
	}

	form := url.Values{}
	form.Set("To", msg.To)
	form.Set("From", from)
	form.Set("Body", msg.Body)

	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json",
		strings.TrimRight(p.baseURL, "/"), p.accountSID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.SetBasicAuth(p.accountSID, p.authToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	p.logger.Info("sending sms via twilio",
		zap.String("to", msg.To),
		zap.String("from", from),
	)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	var result twilioResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		if result.Message != "" {
			return nil, fmt.Errorf("twilio error: %s", result.Message)
		}
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	return &Result{MessageID: result.SID}, nil
}

// Name identifies the provider in diagnostics.
func (p *TwilioProvider) Name() string {
	return "Twilio"
}
