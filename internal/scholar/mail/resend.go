package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultResendBaseURL = "https://api.resend.com"

// ResendMailer sends mail through the Resend HTTP API.
type ResendMailer struct {
	apiKey  string
	from    string
	client  *http.Client
	baseURL string
}

func NewResendMailer(cfg Config) *ResendMailer {
	base := cfg.ResendBaseURL
	if base == "" {
		base = defaultResendBaseURL
	}
	return &ResendMailer{
		apiKey:  cfg.ResendAPIKey,
		from:    cfg.From,
		client:  &http.Client{Timeout: 5 * time.Second},
		baseURL: base,
	}
}

type resendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Text    string   `json:"text"`
}

func (m *ResendMailer) SendOTP(ctx context.Context, msg OTPMessage) error {
	subject, body := ComposeOTP(msg)

	b, err := json.Marshal(resendRequest{
		From:    m.from,
		To:      []string{msg.To},
		Subject: subject,
		Text:    body,
	})
	if err != nil {
		return fmt.Errorf("resend encode: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.baseURL+"/emails", bytes.NewReader(b))
	if err != nil {
		return fmt.Errorf("resend request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("resend send: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("resend send: status %d: %s", resp.StatusCode, bytes.TrimSpace(detail))
	}
	return nil
}
