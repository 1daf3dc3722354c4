package notify

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/donaldgifford/msp-alert-engine/internal/realtime"
	domain "github.com/donaldgifford/msp-alert-engine/pkg/types"
)

// MessageTypeEscalation is the realtime frame type for escalation notices.
const MessageTypeEscalation = "alert.escalation"

// HubPublisher is the part of realtime.Hub used for notifications.
type HubPublisher interface {
	Publish(channel string, msg realtime.Message) bool
}

// HubNotifier implements Notifier by pushing to each recipient's realtime
// channel.
type HubNotifier struct {
	hub HubPublisher
}

// NewHubNotifier creates a HubNotifier.
func NewHubNotifier(hub HubPublisher) *HubNotifier {
	return &HubNotifier{hub: hub}
}

type realtimeAlert struct {
	AlertID     string          `json:"alert_id"`
	TenantID    string          `json:"tenant_id"`
	DeviceID    string          `json:"device_id"`
	Severity    domain.Severity `json:"severity"`
	Message     string          `json:"message"`
	MetricName  string          `json:"metric_name"`
	MetricValue float64         `json:"metric_value"`
	Threshold   float64         `json:"threshold"`
	TriggeredAt time.Time       `json:"triggered_at"`
	Policy      string          `json:"policy"`
	Step        int             `json:"step"`
	Recipient   string          `json:"recipient"`
}

// Notify publishes one frame per recipient channel. The hub drops frames
// when its queue is full; that is reported as an error.
func (h *HubNotifier) Notify(_ context.Context, recipients []domain.Recipient, alert *AlertPayload) error {
	var errs []error
	sent := 0
	for _, r := range recipients {
		if r.RealtimeChannel == "" {
			continue
		}
		sent++
		ok := h.hub.Publish(r.RealtimeChannel, realtime.Message{
			Type: MessageTypeEscalation,
			Data: realtimeAlert{
				AlertID:     alert.AlertID,
				TenantID:    alert.TenantID,
				DeviceID:    alert.DeviceID,
				Severity:    alert.Severity,
				Message:     alert.Message,
				MetricName:  alert.MetricName,
				MetricValue: alert.MetricValue,
				Threshold:   alert.Threshold,
				TriggeredAt: alert.TriggeredAt,
				Policy:      alert.PolicyName,
				Step:        alert.Step,
				Recipient:   r.Name,
			},
		})
		if !ok {
			errs = append(errs, fmt.Errorf("realtime channel %s: queue full", r.RealtimeChannel))
		}
	}
	if sent == 0 {
		return ErrNoRecipients
	}
	return errors.Join(errs...)
}
