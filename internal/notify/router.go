package notify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/donaldgifford/msp-alert-engine/internal/metrics"
	domain "github.com/donaldgifford/msp-alert-engine/pkg/types"
)

// ErrNoNotifier is returned when a channel has no configured transport.
var ErrNoNotifier = errors.New("no notifier configured for channel")

// Router implements Dispatcher over a channel → Notifier table.
type Router struct {
	notifiers map[domain.Channel]Notifier
	log       *slog.Logger
}

// RouterOption configures a Router.
type RouterOption func(*Router)

// WithLogger sets the router's logger.
func WithLogger(l *slog.Logger) RouterOption {
	return func(r *Router) { r.log = l }
}

// WithNotifier registers n for channel, replacing any previous entry.
func WithNotifier(channel domain.Channel, n Notifier) RouterOption {
	return func(r *Router) { r.notifiers[channel] = n }
}

// NewRouter creates a Router.
func NewRouter(opts ...RouterOption) *Router {
	r := &Router{
		notifiers: make(map[domain.Channel]Notifier),
		log:       slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Channels returns the channels with a registered notifier.
func (r *Router) Channels() []domain.Channel {
	out := make([]domain.Channel, 0, len(r.notifiers))
	for _, ch := range []domain.Channel{domain.ChannelEmail, domain.ChannelSMS, domain.ChannelRealtime} {
		if _, ok := r.notifiers[ch]; ok {
			out = append(out, ch)
		}
	}
	return out
}

// Dispatch sends alert to recipients over channel. Errors are advisory: they
// are counted and returned but callers must not retry the step on them.
func (r *Router) Dispatch(
	ctx context.Context,
	channel domain.Channel,
	recipients []domain.Recipient,
	alert *AlertPayload,
) error {
	n, ok := r.notifiers[channel]
	if !ok {
		metrics.NotificationFailuresTotal.WithLabelValues(string(channel)).Inc()
		return fmt.Errorf("%w: %s", ErrNoNotifier, channel)
	}

	err := n.Notify(ctx, recipients, alert)
	if errors.Is(err, ErrNoRecipients) {
		r.log.Warn("no recipients reachable", "channel", channel, "alert_id", alert.AlertID, "step", alert.Step)
		return err
	}
	if err != nil {
		metrics.NotificationFailuresTotal.WithLabelValues(string(channel)).Inc()
		r.log.Error("notification failed",
			"channel", channel,
			"alert_id", alert.AlertID,
			"step", alert.Step,
			"recipients", len(recipients),
			"error", err,
		)
		return fmt.Errorf("dispatching %s: %w", channel, err)
	}

	metrics.NotificationsSentTotal.WithLabelValues(string(channel)).Inc()
	return nil
}
