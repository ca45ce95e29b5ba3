package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const resendEndpoint = "https://api.resend.com/emails"

// Message is a plain-text outbound email.
type Message struct {
	Subject string
	Text    string
}

// Mailer delivers notification emails. Implementations are best-effort:
// the contact flow never waits on or fails because of a send.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// Resend delivers mail through the Resend HTTPS API.
type Resend struct {
	apiKey string
	from   string
	to     string
	client *http.Client
}

// NewResend builds a client. Callers should only construct one when an
// API key and destination address are configured.
func NewResend(apiKey, from, to string) *Resend {
	return &Resend{
		apiKey: apiKey,
		from:   from,
		to:     to,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

type resendPayload struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Text    string   `json:"text"`
}

// Send posts the message to the Resend API.
func (r *Resend) Send(ctx context.Context, msg Message) error {
	body, err := json.Marshal(resendPayload{
		From:    r.from,
		To:      []string{r.to},
		Subject: msg.Subject,
		Text:    msg.Text,
	})
	if err != nil {
		return fmt.Errorf("encode email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, resendEndpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build email request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+r.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= 400 {
		return fmt.Errorf("resend API returned %d", resp.StatusCode)
	}
	return nil
}
