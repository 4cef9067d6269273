package brevo

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/drossler/wicket"
)

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:    "valid config",
			config:  Config{APIKey: "key", SenderEmail: "noreply@x.com"},
			wantErr: false,
		},
		{
			name:    "missing api key",
			config:  Config{SenderEmail: "noreply@x.com"},
			wantErr: true,
		},
		{
			name:    "missing sender email",
			config:  Config{APIKey: "key"},
			wantErr: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			// Act
			n, err := New(test.config)

			// Assert
			if (err != nil) != test.wantErr {
				t.Fatalf("New() error = %v, wantErr %v", err, test.wantErr)
			}
			if !test.wantErr && n == nil {
				t.Fatal("New() returned nil notifier")
			}
		})
	}
}

func TestSend(t *testing.T) {
	// Arrange
	var got sendRequest
	var gotHeaders http.Header
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		gotHeaders = r.Header.Clone()
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}
		rw.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	n, err := New(Config{
		APIKey:      "test-api-key",
		SenderName:  "Wicket",
		SenderEmail: "noreply@x.com",
		Endpoint:    server.URL,
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	// Act
	err = n.Send(context.Background(), wicket.Message{
		To:      "a@x.com",
		Subject: "Password Reset Request",
		HTML:    "<p>reset link</p>",
	})

	// Assert
	if err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if gotHeaders.Get("api-key") != "test-api-key" {
		t.Errorf("api-key header = %q", gotHeaders.Get("api-key"))
	}
	if gotHeaders.Get("Content-Type") != "application/json" {
		t.Errorf("content-type = %q", gotHeaders.Get("Content-Type"))
	}
	if got.Sender.Email != "noreply@x.com" || got.Sender.Name != "Wicket" {
		t.Errorf("sender = %+v", got.Sender)
	}
	if len(got.To) != 1 || got.To[0].Email != "a@x.com" {
		t.Errorf("to = %+v", got.To)
	}
	if got.Subject != "Password Reset Request" {
		t.Errorf("subject = %q", got.Subject)
	}
	if got.HTMLContent != "<p>reset link</p>" {
		t.Errorf("htmlContent = %q", got.HTMLContent)
	}
}

func TestSend_APIError(t *testing.T) {
	// Arrange
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		rw.WriteHeader(http.StatusUnauthorized)
		rw.Write([]byte(`{"code":"unauthorized","message":"Key not found"}`))
	}))
	defer server.Close()

	n, err := New(Config{APIKey: "bad-key", SenderEmail: "noreply@x.com", Endpoint: server.URL})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	// Act
	err = n.Send(context.Background(), wicket.Message{To: "a@x.com", Subject: "s", HTML: "<p>h</p>"})

	// Assert
	if err == nil {
		t.Fatal("Send() should fail on a non-2xx answer")
	}
	if !strings.Contains(err.Error(), "status 401") {
		t.Errorf("error = %v, want status detail", err)
	}
	if !strings.Contains(err.Error(), "Key not found") {
		t.Errorf("error = %v, want response body detail", err)
	}
}

func TestSend_ContextCanceled(t *testing.T) {
	// Arrange
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		rw.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	n, err := New(Config{APIKey: "key", SenderEmail: "noreply@x.com", Endpoint: server.URL})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Act
	err = n.Send(ctx, wicket.Message{To: "a@x.com", Subject: "s", HTML: "<p>h</p>"})

	// Assert
	if err == nil {
		t.Fatal("Send() should fail when the context is already canceled")
	}
}
