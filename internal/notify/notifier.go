// Package notify delivers escalation notifications to people over email,
// SMS and realtime channels.
package notify

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	domain "github.com/donaldgifford/msp-alert-engine/pkg/types"
)

// ErrNoRecipients means none of the recipients has an address for the
// notifier's transport.
var ErrNoRecipients = errors.New("no recipients reachable on channel")

// AlertPayload contains the data needed to notify someone about an alert.
type AlertPayload struct {
	AlertID     string
	TenantID    string
	DeviceID    string
	Severity    domain.Severity
	Message     string
	MetricName  string
	MetricValue float64
	Threshold   float64
	TriggeredAt time.Time
	PolicyName  string
	Step        int // zero-based
	Roles       []string
}

// NewAlertPayload builds the payload for one escalation step of an alert.
func NewAlertPayload(
	a *domain.AlertInstance,
	p *domain.EscalationPolicy,
	step int,
	roles []string,
) *AlertPayload {
	return &AlertPayload{
		AlertID:     a.ID,
		TenantID:    a.TenantID,
		DeviceID:    a.DeviceID,
		Severity:    a.Severity,
		Message:     a.Message,
		MetricName:  a.MetricName,
		MetricValue: a.MetricValue,
		Threshold:   a.ThresholdValue,
		TriggeredAt: a.TriggeredAt,
		PolicyName:  p.Name,
		Step:        step,
		Roles:       roles,
	}
}

// Subject is a one-line summary used for email subjects and SMS bodies.
func (p *AlertPayload) Subject() string {
	return fmt.Sprintf("[%s] %s (device %s)", strings.ToUpper(string(p.Severity)), p.Message, p.DeviceID)
}

// Notifier sends one alert payload to a set of recipients over a single
// transport.
type Notifier interface {
	Notify(ctx context.Context, recipients []domain.Recipient, alert *AlertPayload) error
}

// Dispatcher routes a payload to the notifier configured for a channel.
type Dispatcher interface {
	Dispatch(
		ctx context.Context,
		channel domain.Channel,
		recipients []domain.Recipient,
		alert *AlertPayload,
	) error
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(ctx context.Context, recipients []domain.Recipient, alert *AlertPayload) error

// Notify calls f.
func (f NotifierFunc) Notify(ctx context.Context, recipients []domain.Recipient, alert *AlertPayload) error {
	return f(ctx, recipients, alert)
}
