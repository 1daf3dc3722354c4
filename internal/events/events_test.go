package events

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/msp-alert-engine/internal/realtime"
	domain "github.com/donaldgifford/msp-alert-engine/pkg/types"
)

func testEvent() domain.Event {
	step := 1
	return domain.Event{
		ID:         "e-1",
		Type:       domain.EventEscalationStep,
		TenantID:   "acme",
		AlertID:    "a-1",
		PolicyID:   "p-1",
		Step:       &step,
		Severity:   domain.SeverityCritical,
		OccurredAt: time.Date(2026, 4, 1, 9, 30, 0, 0, time.UTC),
	}
}

type fakeNATS struct {
	subjects []string
	payloads [][]byte
	err      error
	drained  bool
}

func (f *fakeNATS) Publish(subject string, data []byte) error {
	if f.err != nil {
		return f.err
	}
	f.subjects = append(f.subjects, subject)
	f.payloads = append(f.payloads, data)
	return nil
}

func (f *fakeNATS) Drain() error { f.drained = true; return nil }
func (f *fakeNATS) Close()       {}

func TestNATSPublisher_Publish(t *testing.T) {
	t.Parallel()

	conn := &fakeNATS{}
	p := newNATSPublisher(conn, "mae")
	require.NoError(t, p.Publish(context.Background(), testEvent()))

	require.Equal(t, []string{"mae.escalation.step_executed"}, conn.subjects)
	var got domain.Event
	require.NoError(t, json.Unmarshal(conn.payloads[0], &got))
	assert.Equal(t, "a-1", got.AlertID)
	require.NotNil(t, got.Step)
	assert.Equal(t, 1, *got.Step)

	p.Close()
	assert.True(t, conn.drained)
}

func TestNATSPublisher_Error(t *testing.T) {
	t.Parallel()

	p := newNATSPublisher(&fakeNATS{err: errors.New("nats: connection closed")}, "")
	assert.Equal(t, "alert.created", p.Subject(domain.EventAlertCreated))
	err := p.Publish(context.Background(), testEvent())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection closed")
}

func TestRedisStreamPublisher_Publish(t *testing.T) {
	t.Parallel()

	mr := miniredis.RunT(t)
	ctx := context.Background()
	p, err := NewRedisStreamPublisher(ctx, &redis.Options{Addr: mr.Addr()}, "mae:events", 1000)
	require.NoError(t, err)
	t.Cleanup(func() { _ = p.Close() })
	require.NoError(t, p.Ping(ctx))

	require.NoError(t, p.Publish(ctx, testEvent()))
	require.NoError(t, p.Publish(ctx, testEvent()))

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	msgs, err := client.XRange(ctx, "mae:events", "-", "+").Result()
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "escalation.step_executed", msgs[0].Values["type"])
	assert.Equal(t, "acme", msgs[0].Values["tenant_id"])

	var got domain.Event
	require.NoError(t, json.Unmarshal([]byte(msgs[0].Values["data"].(string)), &got))
	assert.Equal(t, "e-1", got.ID)
}

func TestRedisStreamPublisher_Unreachable(t *testing.T) {
	t.Parallel()

	_, err := NewRedisStreamPublisher(context.Background(), &redis.Options{Addr: "127.0.0.1:1"}, "s", 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pinging redis")
}

type recordingHub struct {
	ok       bool
	channels []string
	msgs     []realtime.Message
}

func (h *recordingHub) Publish(channel string, msg realtime.Message) bool {
	h.channels = append(h.channels, channel)
	h.msgs = append(h.msgs, msg)
	return h.ok
}

func TestHubPublisher_Publish(t *testing.T) {
	t.Parallel()

	hub := &recordingHub{ok: true}
	require.NoError(t, NewHubPublisher(hub).Publish(context.Background(), testEvent()))
	assert.Equal(t, []string{"tenant:acme"}, hub.channels)
	assert.Equal(t, "escalation.step_executed", hub.msgs[0].Type)

	err := NewHubPublisher(&recordingHub{}).Publish(context.Background(), testEvent())
	require.Error(t, err)
}

type funcPublisher func(context.Context, domain.Event) error

func (f funcPublisher) Publish(ctx context.Context, e domain.Event) error { return f(ctx, e) }

func TestMulti_Publish(t *testing.T) {
	t.Parallel()

	var seen []string
	ok := funcPublisher(func(_ context.Context, e domain.Event) error {
		seen = append(seen, e.ID)
		return nil
	})
	failing := funcPublisher(func(context.Context, domain.Event) error { return errors.New("down") })

	e := testEvent()
	e.ID = ""
	err := Multi{ok, failing, ok}.Publish(context.Background(), e)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "down")
	require.Len(t, seen, 2, "a failing backend does not stop the others")
	assert.NotEmpty(t, seen[0])
	assert.Equal(t, seen[0], seen[1], "all backends see the same generated id")
}

func TestLogPublisher_Publish(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := NewLogPublisher(slog.New(slog.NewTextHandler(&buf, nil)))
	require.NoError(t, p.Publish(context.Background(), testEvent()))

	out := buf.String()
	assert.Contains(t, out, "msg=escalation.step_executed")
	assert.Contains(t, out, "alert_id=a-1")
	assert.Contains(t, out, "step=1")
	assert.NotContains(t, out, "actor=")
}
