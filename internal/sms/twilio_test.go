package sms

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
)

func TestTwilioProvider_Send(t *testing.T) {
	var gotPath, gotTo, gotFrom, gotBody string
	var gotUser, gotPass string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotUser, gotPass, _ = r.BasicAuth()

		if err := r.ParseForm(); err != nil {
			t.Errorf("parse form: %v", err)
		}
		gotTo = r.PostFormValue("To")
		gotFrom = r.PostFormValue("From")
		gotBody = r.PostFormValue("Body")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"sid":"SM123"}`))
	}))
	defer srv.Close()

	p := NewTwilioProvider("AC42", "token", "+15550000", zap.NewNop())
	p.baseURL = srv.URL

	result, err := p.Send(context.Background(), Message{To: "+15550100", Body: "ready for pickup"})
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if result.MessageID != "SM123" {
		t.Fatalf("message id = %q, want SM123", result.MessageID)
	}

	if gotPath != "/2010-04-01/Accounts/AC42/Messages.json" {
		t.Fatalf("path = %q", gotPath)
	}
	if gotUser != "AC42" || gotPass != "token" {
		t.Fatalf("basic auth = %q:%q", gotUser, gotPass)
	}
	if gotTo != "+15550100" || gotBody != "ready for pickup" {
		t.Fatalf("form To=%q Body=%q", gotTo, gotBody)
	}
	if gotFrom != "+15550000" {
		t.Fatalf("From = %q, want configured sender", gotFrom)
	}
}

func TestTwilioProvider_ExplicitFromOverridesDefault(t *testing.T) {
	var gotFrom string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.ParseForm()
		gotFrom = r.PostFormValue("From")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"sid":"SM124"}`))
	}))
	defer srv.Close()

	p := NewTwilioProvider("AC42", "token", "+15550000", zap.NewNop())
	p.baseURL = srv.URL

	_, err := p.Send(context.Background(), Message{To: "+15550100", Body: "x", From: "+15559999"})
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if gotFrom != "+15559999" {
		t.Fatalf("From = %q, want explicit sender", gotFrom)
	}
}

func TestTwilioProvider_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Authentication Error"}`))
	}))
	defer srv.Close()

	p := NewTwilioProvider("AC42", "bad-token", "+15550000", zap.NewNop())
	p.baseURL = srv.URL

	_, err := p.Send(context.Background(), Message{To: "+15550100", Body: "x"})
	if err == nil {
		t.Fatalf("expected error from api failure")
	}
}

func TestTwilioProvider_EmptyMessage(t *testing.T) {
	p := NewTwilioProvider("AC42", "token", "+15550000", zap.NewNop())

	if _, err := p.Send(context.Background(), Message{}); err != ErrEmptyMessage {
		t.Fatalf("err = %v, want ErrEmptyMessage", err)
	}
}
