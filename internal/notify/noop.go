package notify

import (
	"context"
	"errors"
	"log/slog"

	domain "github.com/donaldgifford/msp-alert-engine/pkg/types"
)

// NoOpNotifier implements Notifier by logging discarded notifications. It is
// registered for channels whose transport is not configured, so steps that
// ask for them still execute.
type NoOpNotifier struct {
	channel domain.Channel
	log     *slog.Logger
}

// NewNoOpNotifier creates a notifier that discards alerts with a log message.
func NewNoOpNotifier(channel domain.Channel, log *slog.Logger) *NoOpNotifier {
	return &NoOpNotifier{channel: channel, log: log}
}

// Notify logs and discards the notification.
func (n *NoOpNotifier) Notify(_ context.Context, recipients []domain.Recipient, alert *AlertPayload) error {
	n.log.Debug("notification discarded (no backend configured)",
		"channel", n.channel,
		"alert_id", alert.AlertID,
		"step", alert.Step,
		"recipients", len(recipients),
	)
	return nil
}

// Multi fans one notification out to several notifiers. Every notifier is
// tried; errors are joined. ErrNoRecipients is returned only when every
// notifier reports it.
type Multi []Notifier

// Notify calls each notifier in order.
func (m Multi) Notify(ctx context.Context, recipients []domain.Recipient, alert *AlertPayload) error {
	var errs []error
	unreachable := 0
	for _, n := range m {
		err := n.Notify(ctx, recipients, alert)
		switch {
		case errors.Is(err, ErrNoRecipients):
			unreachable++
		case err != nil:
			errs = append(errs, err)
		}
	}
	if len(m) > 0 && unreachable == len(m) {
		return ErrNoRecipients
	}
	return errors.Join(errs...)
}
