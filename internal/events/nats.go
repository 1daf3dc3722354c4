package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"

	domain "github.com/donaldgifford/msp-alert-engine/pkg/types"
)

// natsConn is the subset of *nats.Conn used for publishing.
type natsConn interface {
	Publish(subject string, data []byte) error
	Drain() error
	Close()
}

// NATSPublisher publishes JSON events on "<prefix>.<event type>", for example
// "mae.alert.created".
type NATSPublisher struct {
	conn   natsConn
	prefix string
}

// NewNATSPublisher connects to url. The connection reconnects forever in the
// background; publishes during an outage are buffered by the client.
func NewNATSPublisher(url, prefix string, log *slog.Logger) (*NATSPublisher, error) {
	conn, err := nats.Connect(url,
		nats.Name("msp-alert-engine"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				log.Warn("nats disconnected", "error", err)
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			log.Info("nats reconnected", "url", c.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("connecting to nats %s: %w", url, err)
	}
	return newNATSPublisher(conn, prefix), nil
}

func newNATSPublisher(conn natsConn, prefix string) *NATSPublisher {
	return &NATSPublisher{conn: conn, prefix: prefix}
}

// Subject returns the subject an event type is published on.
func (p *NATSPublisher) Subject(t domain.EventType) string {
	if p.prefix == "" {
		return string(t)
	}
	return p.prefix + "." + string(t)
}

// Publish implements Publisher.
func (p *NATSPublisher) Publish(_ context.Context, e domain.Event) error {
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshaling event: %w", err)
	}
	if err := p.conn.Publish(p.Subject(e.Type), data); err != nil {
		publishFailed("nats")
		return fmt.Errorf("publishing %s to nats: %w", e.Type, err)
	}
	return nil
}

// Close drains pending messages and closes the connection.
func (p *NATSPublisher) Close() {
	if err := p.conn.Drain(); err != nil {
		p.conn.Close()
	}
}
