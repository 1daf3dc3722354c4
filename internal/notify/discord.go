package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	domain "github.com/donaldgifford/msp-alert-engine/pkg/types"
)

const (
	colorRed    = 0xC0392B // critical
	colorOrange = 0xE67E22 // high
	colorYellow = 0xF1C40F // medium
	colorGreen  = 0x2ECC71 // low
)

// DiscordNotifier implements Notifier via a Discord webhook. It posts one
// embed per alert regardless of recipients, naming them in a field, so an
// operations channel sees every escalation.
type DiscordNotifier struct {
	webhookURL string
	client     *http.Client
}

// NewDiscordNotifier creates a new DiscordNotifier.
func NewDiscordNotifier(webhookURL string, opts ...DiscordOption) *DiscordNotifier {
	d := &DiscordNotifier{
		webhookURL: webhookURL,
		client:     http.DefaultClient,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DiscordOption configures a DiscordNotifier.
type DiscordOption func(*DiscordNotifier)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) DiscordOption {
	return func(d *DiscordNotifier) {
		d.client = c
	}
}

// discordWebhookPayload is the Discord webhook JSON structure.
type discordWebhookPayload struct {
	Embeds []discordEmbed `json:"embeds"`
}

type discordEmbed struct {
	Title       string              `json:"title"`
	Color       int                 `json:"color"`
	Description string              `json:"description,omitempty"`
	Fields      []discordEmbedField `json:"fields,omitempty"`
	Timestamp   string              `json:"timestamp,omitempty"`
}

type discordEmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

// Notify posts the alert as a single embed.
func (d *DiscordNotifier) Notify(ctx context.Context, recipients []domain.Recipient, alert *AlertPayload) error {
	payload := discordWebhookPayload{
		Embeds: []discordEmbed{buildEmbed(alert, recipients)},
	}
	return d.post(ctx, payload)
}

func buildEmbed(alert *AlertPayload, recipients []domain.Recipient) discordEmbed {
	names := make([]string, 0, len(recipients))
	for _, r := range recipients {
		names = append(names, r.Name)
	}
	notified := strings.Join(names, ", ")
	if notified == "" {
		notified = "nobody"
	}

	return discordEmbed{
		Title:       fmt.Sprintf("Escalation: %s", alert.Message),
		Color:       severityColor(alert.Severity),
		Description: fmt.Sprintf("Policy %q step %d", alert.PolicyName, alert.Step+1),
		Timestamp:   alert.TriggeredAt.UTC().Format("2006-01-02T15:04:05Z"),
		Fields: []discordEmbedField{
			{Name: "Severity", Value: string(alert.Severity), Inline: true},
			{Name: "Device", Value: alert.DeviceID, Inline: true},
			{Name: "Tenant", Value: alert.TenantID, Inline: true},
			{Name: "Metric", Value: alert.MetricName, Inline: true},
			{Name: "Value", Value: domain.FormatValue(alert.MetricValue), Inline: true},
			{Name: "Threshold", Value: domain.FormatValue(alert.Threshold), Inline: true},
			{Name: "Notified", Value: notified, Inline: false},
		},
	}
}

func severityColor(s domain.Severity) int {
	switch s {
	case domain.SeverityCritical:
		return colorRed
	case domain.SeverityHigh:
		return colorOrange
	case domain.SeverityMedium:
		return colorYellow
	default:
		return colorGreen
	}
}

func (d *DiscordNotifier) post(ctx context.Context, payload discordWebhookPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling discord payload: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		d.webhookURL,
		bytes.NewReader(body),
	)
	if err != nil {
		return fmt.Errorf("creating discord request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending discord webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return fmt.Errorf("discord rate limited (429)")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return fmt.Errorf("discord returned %d (body unreadable)", resp.StatusCode)
		}
		return fmt.Errorf("discord returned %d: %s", resp.StatusCode, respBody)
	}

	return nil
}
