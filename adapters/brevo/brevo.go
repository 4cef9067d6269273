// Package brevo delivers reset emails through the Brevo transactional
// email REST API (POST /v3/smtp/email).
package brevo

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/drossler/wicket"
)

const defaultEndpoint = "https://api.brevo.com/v3/smtp/email"

type Config struct {
	APIKey      string
	SenderName  string
	SenderEmail string

	// Endpoint overrides the API URL. Tests point this at a local server.
	Endpoint string
	Client   *http.Client
}

type Notifier struct {
	apiKey      string
	senderName  string
	senderEmail string
	endpoint    string
	client      *http.Client
}

var _ wicket.Notifier = (*Notifier)(nil)

func New(config Config) (*Notifier, error) {
	if config.APIKey == "" {
		return nil, errors.New("brevo: api key is required")
	}
	if config.SenderEmail == "" {
		return nil, errors.New("brevo: sender email is required")
	}

	endpoint := config.Endpoint
	if endpoint == "" {
		endpoint = defaultEndpoint
	}

	client := config.Client
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}

	return &Notifier{
		apiKey:      config.APIKey,
		senderName:  config.SenderName,
		senderEmail: config.SenderEmail,
		endpoint:    endpoint,
		client:      client,
	}, nil
}

type emailAddress struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
}

type sendRequest struct {
	Sender      emailAddress   `json:"sender"`
	To          []emailAddress `json:"to"`
	Subject     string         `json:"subject"`
	HTMLContent string         `json:"htmlContent"`
}

// Send delivers one message. Any transport failure or non-2xx answer is
// an error, so callers can roll back state that assumed delivery.
func (n *Notifier) Send(ctx context.Context, msg wicket.Message) error {
	body, err := json.Marshal(sendRequest{
		Sender:      emailAddress{Name: n.senderName, Email: n.senderEmail},
		To:          []emailAddress{{Email: msg.To}},
		Subject:     msg.Subject,
		HTMLContent: msg.HTML,
	})
	if err != nil {
		return fmt.Errorf("brevo: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("brevo: build request: %w", err)
	}
	req.Header.Set("api-key", n.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("brevo: send email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("brevo: send email: status %d: %s", resp.StatusCode, detail)
	}

	return nil
}
