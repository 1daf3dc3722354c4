package notify

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	ptestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/msp-alert-engine/internal/metrics"
	"github.com/donaldgifford/msp-alert-engine/internal/realtime"
	domain "github.com/donaldgifford/msp-alert-engine/pkg/types"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Router tests touch shared counters, so they do not run in parallel.
func TestRouter_Dispatch(t *testing.T) {
	var (
		nextErr error
		gotTo   []domain.Recipient
	)
	email := NotifierFunc(func(_ context.Context, to []domain.Recipient, _ *AlertPayload) error {
		gotTo = to
		return nextErr
	})
	r := NewRouter(WithLogger(quietLogger()), WithNotifier(domain.ChannelEmail, email))
	p := testPayload(domain.SeverityCritical)
	ctx := context.Background()

	t.Run("success counts sent", func(t *testing.T) {
		before := ptestutil.ToFloat64(metrics.NotificationsSentTotal.WithLabelValues("email"))
		nextErr = nil

		require.NoError(t, r.Dispatch(ctx, domain.ChannelEmail, testRecipients(), p))
		assert.Equal(t, testRecipients(), gotTo)
		assert.InDelta(t, 1, ptestutil.ToFloat64(metrics.NotificationsSentTotal.WithLabelValues("email"))-before, 0)
	})

	t.Run("failure counts failed", func(t *testing.T) {
		before := ptestutil.ToFloat64(metrics.NotificationFailuresTotal.WithLabelValues("email"))
		nextErr = errors.New("smtp down")

		err := r.Dispatch(ctx, domain.ChannelEmail, testRecipients(), p)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "dispatching email")
		assert.InDelta(t, 1, ptestutil.ToFloat64(metrics.NotificationFailuresTotal.WithLabelValues("email"))-before, 0)
	})

	t.Run("unreachable recipients are not failures", func(t *testing.T) {
		before := ptestutil.ToFloat64(metrics.NotificationFailuresTotal.WithLabelValues("email"))
		nextErr = ErrNoRecipients

		err := r.Dispatch(ctx, domain.ChannelEmail, nil, p)
		require.ErrorIs(t, err, ErrNoRecipients)
		assert.InDelta(t, 0, ptestutil.ToFloat64(metrics.NotificationFailuresTotal.WithLabelValues("email"))-before, 0)
	})

	t.Run("unconfigured channel", func(t *testing.T) {
		err := r.Dispatch(ctx, domain.ChannelSMS, testRecipients(), p)
		require.ErrorIs(t, err, ErrNoNotifier)
	})
}

func TestRouter_Channels(t *testing.T) {
	t.Parallel()

	r := NewRouter(
		WithNotifier(domain.ChannelRealtime, NewNoOpNotifier(domain.ChannelRealtime, quietLogger())),
		WithNotifier(domain.ChannelEmail, NewNoOpNotifier(domain.ChannelEmail, quietLogger())),
	)
	assert.Equal(t, []domain.Channel{domain.ChannelEmail, domain.ChannelRealtime}, r.Channels())
}

type fakeHub struct {
	full     bool
	channels []string
	msgs     []realtime.Message
}

func (f *fakeHub) Publish(channel string, msg realtime.Message) bool {
	if f.full {
		return false
	}
	f.channels = append(f.channels, channel)
	f.msgs = append(f.msgs, msg)
	return true
}

func TestHubNotifier_Notify(t *testing.T) {
	t.Parallel()

	hub := &fakeHub{}
	n := NewHubNotifier(hub)
	require.NoError(t, n.Notify(context.Background(), testRecipients(), testPayload(domain.SeverityCritical)))

	assert.Equal(t, []string{"oncall-ana"}, hub.channels)
	require.Len(t, hub.msgs, 1)
	assert.Equal(t, MessageTypeEscalation, hub.msgs[0].Type)
	data, ok := hub.msgs[0].Data.(realtimeAlert)
	require.True(t, ok)
	assert.Equal(t, "Ana", data.Recipient)
	assert.Equal(t, "a-1", data.AlertID)

	err := n.Notify(context.Background(), []domain.Recipient{{Name: "Bo"}}, testPayload(domain.SeverityCritical))
	require.ErrorIs(t, err, ErrNoRecipients)

	full := NewHubNotifier(&fakeHub{full: true})
	err = full.Notify(context.Background(), testRecipients(), testPayload(domain.SeverityCritical))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "queue full")
}

func TestAlertPayload_FromInstance(t *testing.T) {
	t.Parallel()

	a := &domain.AlertInstance{
		ID: "a-9", TenantID: "acme", DeviceID: "srv-02", Severity: domain.SeverityHigh,
		Message: "Disk: disk_usage is 95 (threshold >= 90)", MetricName: "disk_usage",
		MetricValue: 95, ThresholdValue: 90,
	}
	p := NewAlertPayload(a, &domain.EscalationPolicy{Name: "disk"}, 1, []string{"manager"})
	assert.Equal(t, "disk", p.PolicyName)
	assert.Equal(t, 1, p.Step)
	assert.Equal(t, "[HIGH] Disk: disk_usage is 95 (threshold >= 90) (device srv-02)", p.Subject())
}
