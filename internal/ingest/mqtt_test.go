package ingest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/msp-alert-engine/internal/config"
	"github.com/donaldgifford/msp-alert-engine/internal/engine"
	domain "github.com/donaldgifford/msp-alert-engine/pkg/types"
)

type fakeIngester struct {
	transport string
	deviceID  string
	samples   []domain.MetricSample
	err       error
}

func (f *fakeIngester) IngestSamplesFrom(
	_ context.Context,
	transport, deviceID string,
	samples []domain.MetricSample,
) (*engine.IngestResult, error) {
	f.transport, f.deviceID, f.samples = transport, deviceID, samples
	if f.err != nil {
		return nil, f.err
	}
	return &engine.IngestResult{DeviceID: deviceID, Accepted: len(samples)}, nil
}

func newTestSubscriber(ing SampleIngester) *Subscriber {
	return NewSubscriber(&config.MQTTConfig{
		Broker:      "tcp://127.0.0.1:1883",
		ClientID:    "test",
		TopicPrefix: "mae/agents/",
	}, ing, WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))), WithHandlerTimeout(time.Second))
}

func TestDeviceFromTopic(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		prefix  string
		topic   string
		want    string
		wantErr bool
	}{
		{name: "prefixed", prefix: "mae/agents", topic: "mae/agents/D1/metrics", want: "D1"},
		{name: "no prefix", prefix: "", topic: "D1/metrics", want: "D1"},
		{name: "wrong prefix", prefix: "mae/agents", topic: "other/D1/metrics", wantErr: true},
		{name: "wrong suffix", prefix: "mae/agents", topic: "mae/agents/D1/status", wantErr: true},
		{name: "nested", prefix: "mae/agents", topic: "mae/agents/D1/x/metrics", wantErr: true},
		{name: "empty device", prefix: "mae/agents", topic: "mae/agents//metrics", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := DeviceFromTopic(tt.prefix, tt.topic)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrBadTopic)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParsePayload(t *testing.T) {
	t.Parallel()

	t.Run("batch", func(t *testing.T) {
		t.Parallel()
		got, err := ParsePayload([]byte(`{"samples":[
			{"collected_at":"2026-03-02T10:00:00Z","values":{"cpu_percent":95,"online":true}},
			{"collected_at":"2026-03-02T10:01:00Z","values":{"cpu_percent":91.5}}
		]}`))
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, json.Number("95"), got[0].Values["cpu_percent"])
		v, ok := got[1].Numeric("cpu_percent")
		require.True(t, ok)
		assert.InDelta(t, 91.5, v, 0)
	})

	t.Run("single sample", func(t *testing.T) {
		t.Parallel()
		got, err := ParsePayload([]byte(`{"values":{"disk_free":9}}`))
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.True(t, got[0].CollectedAt.IsZero())
	})

	t.Run("errors", func(t *testing.T) {
		t.Parallel()
		for _, body := range []string{``, `not json`, `{"samples":[]}`, `{"cpu_percent":95}`, `[1,2]`} {
			_, err := ParsePayload([]byte(body))
			assert.Error(t, err, body)
		}
	})
}

func TestSubscriber_Topic(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "mae/agents/+/metrics", newTestSubscriber(&fakeIngester{}).Topic())
}

func TestSubscriber_HandleMessage(t *testing.T) {
	t.Parallel()

	ing := &fakeIngester{}
	s := newTestSubscriber(ing)

	err := s.HandleMessage(context.Background(), "mae/agents/D1/metrics",
		[]byte(`{"values":{"cpu_percent":95}}`))
	require.NoError(t, err)
	assert.Equal(t, "mqtt", ing.transport)
	assert.Equal(t, "D1", ing.deviceID)
	assert.Len(t, ing.samples, 1)
}

func TestSubscriber_HandleMessage_Errors(t *testing.T) {
	t.Parallel()

	ing := &fakeIngester{err: errors.New("device not found")}
	s := newTestSubscriber(ing)

	err := s.HandleMessage(context.Background(), "mae/agents/D1/metrics", []byte(`{"values":{"cpu_percent":95}}`))
	require.ErrorContains(t, err, "device not found")

	err = s.HandleMessage(context.Background(), "elsewhere/D1/metrics", []byte(`{}`))
	require.ErrorIs(t, err, ErrBadTopic)
}

func TestSubscriber_PingBeforeStart(t *testing.T) {
	t.Parallel()

	require.Error(t, newTestSubscriber(&fakeIngester{}).Ping(context.Background()))
}
