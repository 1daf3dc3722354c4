// Package ingest receives metric samples from agents over MQTT and feeds
// them to the engine.
package ingest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/donaldgifford/msp-alert-engine/internal/config"
	"github.com/donaldgifford/msp-alert-engine/internal/engine"
	domain "github.com/donaldgifford/msp-alert-engine/pkg/types"
)

const (
	transportMQTT   = "mqtt"
	metricsSuffix   = "metrics"
	connectTimeout  = 10 * time.Second
	disconnectQuiet = 250 // ms
)

// ErrBadTopic is returned for topics that do not carry a device id.
var ErrBadTopic = errors.New("topic does not match <prefix>/<device>/metrics")

// SampleIngester is the engine surface used by the subscriber.
type SampleIngester interface {
	IngestSamplesFrom(
		ctx context.Context,
		transport, deviceID string,
		samples []domain.MetricSample,
	) (*engine.IngestResult, error)
}

// Batch is the JSON body agents publish. A bare sample object is also
// accepted.
type Batch struct {
	Samples []domain.MetricSample `json:"samples"`
}

// Subscriber consumes "<prefix>/+/metrics" and ingests each message.
type Subscriber struct {
	client   mqtt.Client
	ingester SampleIngester
	prefix   string
	qos      byte
	timeout  time.Duration
	log      *slog.Logger
	ctx      context.Context
}

// SubscriberOption configures a Subscriber.
type SubscriberOption func(*Subscriber)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) SubscriberOption {
	return func(s *Subscriber) {
		s.log = l
	}
}

// WithHandlerTimeout bounds how long one message may take to ingest.
func WithHandlerTimeout(d time.Duration) SubscriberOption {
	return func(s *Subscriber) {
		s.timeout = d
	}
}

// NewSubscriber creates an unconnected subscriber for cfg.
func NewSubscriber(cfg *config.MQTTConfig, ing SampleIngester, opts ...SubscriberOption) *Subscriber {
	s := &Subscriber{
		ingester: ing,
		prefix:   strings.TrimSuffix(cfg.TopicPrefix, "/"),
		qos:      cfg.QoS,
		timeout:  30 * time.Second,
		log:      slog.Default(),
		ctx:      context.Background(),
	}
	for _, opt := range opts {
		opt(s)
	}

	co := mqtt.NewClientOptions()
	co.AddBroker(cfg.Broker)
	co.SetClientID(cfg.ClientID)
	if cfg.Username != "" {
		co.SetUsername(cfg.Username)
	}
	if cfg.Password != "" {
		co.SetPassword(cfg.Password)
	}
	co.SetAutoReconnect(true)
	co.SetCleanSession(true)
	co.SetConnectTimeout(connectTimeout)
	// Subscriptions do not survive a clean-session reconnect.
	co.SetOnConnectHandler(func(c mqtt.Client) {
		if err := s.subscribe(c); err != nil {
			s.log.Error("mqtt subscribe failed", "error", err)
		}
	})
	co.SetConnectionLostHandler(func(_ mqtt.Client, err error) {
		s.log.Warn("mqtt connection lost", "error", err)
	})

	s.client = mqtt.NewClient(co)
	return s
}

// Topic is the wildcard subscription.
func (s *Subscriber) Topic() string {
	return s.prefix + "/+/" + metricsSuffix
}

// Start connects to the broker. Messages are ingested under ctx until Stop.
func (s *Subscriber) Start(ctx context.Context) error {
	s.ctx = ctx
	token := s.client.Connect()
	if !token.WaitTimeout(connectTimeout) {
		return fmt.Errorf("connecting to mqtt broker: timed out after %s", connectTimeout)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("connecting to mqtt broker: %w", err)
	}
	s.log.Info("mqtt subscriber started", "topic", s.Topic())
	return nil
}

// Stop disconnects from the broker.
func (s *Subscriber) Stop() {
	s.client.Disconnect(disconnectQuiet)
}

// Ping reports an error while the broker connection is down.
func (s *Subscriber) Ping(_ context.Context) error {
	if !s.client.IsConnectionOpen() {
		return errors.New("mqtt broker not connected")
	}
	return nil
}

func (s *Subscriber) subscribe(c mqtt.Client) error {
	token := c.Subscribe(s.Topic(), s.qos, func(_ mqtt.Client, msg mqtt.Message) {
		if err := s.HandleMessage(s.ctx, msg.Topic(), msg.Payload()); err != nil {
			s.log.Warn("mqtt message rejected", "topic", msg.Topic(), "error", err)
		}
	})
	token.Wait()
	if err := token.Error(); err != nil {
		return fmt.Errorf("subscribing to %s: %w", s.Topic(), err)
	}
	return nil
}

// HandleMessage parses one message and ingests it for the device named in
// the topic.
func (s *Subscriber) HandleMessage(ctx context.Context, topic string, payload []byte) error {
	deviceID, err := DeviceFromTopic(s.prefix, topic)
	if err != nil {
		return err
	}
	samples, err := ParsePayload(payload)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	res, err := s.ingester.IngestSamplesFrom(ctx, transportMQTT, deviceID, samples)
	if err != nil {
		return fmt.Errorf("ingesting samples for %s: %w", deviceID, err)
	}
	s.log.Debug("mqtt batch ingested",
		"device_id", deviceID,
		"accepted", res.Accepted,
		"fired", res.Fired,
	)
	return nil
}

// DeviceFromTopic extracts the device id from "<prefix>/<device>/metrics".
func DeviceFromTopic(prefix, topic string) (string, error) {
	rest := topic
	if prefix != "" {
		var ok bool
		rest, ok = strings.CutPrefix(topic, prefix+"/")
		if !ok {
			return "", fmt.Errorf("%w: %s", ErrBadTopic, topic)
		}
	}
	device, suffix, ok := strings.Cut(rest, "/")
	if !ok || suffix != metricsSuffix || device == "" {
		return "", fmt.Errorf("%w: %s", ErrBadTopic, topic)
	}
	return device, nil
}

// ParsePayload decodes a Batch or a single sample. Numbers are kept as
// json.Number so integer metrics are not rounded through float64 early.
func ParsePayload(data []byte) ([]domain.MetricSample, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, engine.ErrEmptyBatch
	}

	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return nil, fmt.Errorf("decoding payload: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	if _, ok := keys["samples"]; ok {
		var b Batch
		if err := dec.Decode(&b); err != nil {
			return nil, fmt.Errorf("decoding batch: %w", err)
		}
		if len(b.Samples) == 0 {
			return nil, engine.ErrEmptyBatch
		}
		return b.Samples, nil
	}

	if _, ok := keys["values"]; !ok {
		return nil, errors.New("payload has neither samples nor values")
	}
	var one domain.MetricSample
	if err := dec.Decode(&one); err != nil {
		return nil, fmt.Errorf("decoding sample: %w", err)
	}
	return []domain.MetricSample{one}, nil
}
