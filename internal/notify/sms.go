package notify

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	domain "github.com/donaldgifford/msp-alert-engine/pkg/types"
)

const maxSMSLength = 160

// SMSNotifier implements Notifier by posting one JSON message per phone
// number to an HTTP SMS gateway.
type SMSNotifier struct {
	client     *resty.Client
	gatewayURL string
	sender     string
}

// SMSOption configures an SMSNotifier.
type SMSOption func(*SMSNotifier)

// WithSMSClient replaces the resty client, mainly for tests.
func WithSMSClient(c *resty.Client) SMSOption {
	return func(s *SMSNotifier) { s.client = c }
}

type smsRequest struct {
	From string `json:"from,omitempty"`
	To   string `json:"to"`
	Text string `json:"text"`
}

type smsResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// NewSMSNotifier creates an SMSNotifier posting to gatewayURL. A non-empty
// apiKey is sent as a bearer token.
func NewSMSNotifier(gatewayURL, apiKey, sender string, timeout time.Duration, opts ...SMSOption) *SMSNotifier {
	client := resty.New().
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	if apiKey != "" {
		client.SetAuthToken(apiKey)
	}

	s := &SMSNotifier{client: client, gatewayURL: gatewayURL, sender: sender}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Notify texts every recipient with a phone number. A failure for one number
// does not stop the others; all failures are joined.
func (s *SMSNotifier) Notify(ctx context.Context, recipients []domain.Recipient, alert *AlertPayload) error {
	text := smsText(alert)

	var errs []error
	sent := 0
	for _, r := range recipients {
		if r.Phone == "" {
			continue
		}
		sent++
		if err := s.send(ctx, r.Phone, text); err != nil {
			errs = append(errs, fmt.Errorf("sms to %s: %w", r.Name, err))
		}
	}
	if sent == 0 {
		return ErrNoRecipients
	}
	return errors.Join(errs...)
}

func (s *SMSNotifier) send(ctx context.Context, to, text string) error {
	var out smsResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(smsRequest{From: s.sender, To: to, Text: text}).
		SetResult(&out).
		Post(s.gatewayURL)
	if err != nil {
		return fmt.Errorf("posting to sms gateway: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("sms gateway returned %d: %s", resp.StatusCode(), resp.String())
	}
	return nil
}

func smsText(alert *AlertPayload) string {
	text := alert.Subject()
	if len(text) > maxSMSLength {
		text = text[:maxSMSLength-3] + "..."
	}
	return text
}
