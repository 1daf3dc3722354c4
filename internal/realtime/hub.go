// Package realtime pushes alert notifications and lifecycle events to
// connected websocket clients. Clients subscribe to one or more channels
// (a user's realtime channel, a tenant feed) when they connect.
package realtime

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/donaldgifford/msp-alert-engine/internal/metrics"
)

// AllChannel receives every message regardless of target channel.
const AllChannel = "*"

const defaultBufferSize = 64

// Message is the JSON frame written to websocket clients.
type Message struct {
	Type      string    `json:"type"`
	Channel   string    `json:"channel,omitempty"`
	Data      any       `json:"data,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type delivery struct {
	channel string
	payload []byte
}

// Hub tracks connected clients and routes messages to their subscriptions.
type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]struct{}

	register   chan *Client
	unregister chan *Client
	deliver    chan delivery
	done       chan struct{}

	bufferSize   int
	writeTimeout time.Duration
	log          *slog.Logger
}

// Option configures a Hub.
type Option func(*Hub)

// WithLogger sets the hub's logger.
func WithLogger(l *slog.Logger) Option {
	return func(h *Hub) { h.log = l }
}

// WithBufferSize sets the per-client outbound queue length.
func WithBufferSize(n int) Option {
	return func(h *Hub) {
		if n > 0 {
			h.bufferSize = n
		}
	}
}

// WithWriteTimeout sets the deadline for a single websocket write.
func WithWriteTimeout(d time.Duration) Option {
	return func(h *Hub) {
		if d > 0 {
			h.writeTimeout = d
		}
	}
}

// NewHub creates a Hub. Call Run to start routing.
func NewHub(opts ...Option) *Hub {
	h := &Hub{
		clients:      make(map[*Client]struct{}),
		register:     make(chan *Client),
		unregister:   make(chan *Client),
		deliver:      make(chan delivery, 256),
		done:         make(chan struct{}),
		bufferSize:   defaultBufferSize,
		writeTimeout: writeWait,
		log:          slog.Default(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Run routes registrations and deliveries until ctx is cancelled, then
// disconnects every client.
func (h *Hub) Run(ctx context.Context) {
	h.log.Info("realtime hub started")
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			h.log.Info("realtime hub stopped")
			return
		case c := <-h.register:
			h.add(c)
		case c := <-h.unregister:
			h.remove(c)
		case d := <-h.deliver:
			h.fanOut(d)
		}
	}
}

// Publish queues msg for every client subscribed to channel (and every
// AllChannel subscriber). It never blocks; a full hub queue drops the message
// and returns false.
func (h *Hub) Publish(channel string, msg Message) bool {
	msg.Channel = channel
	if msg.Timestamp.IsZero() {
		msg.Timestamp = time.Now().UTC()
	}
	payload, err := json.Marshal(msg)
	if err != nil {
		h.log.Error("encoding realtime message", "type", msg.Type, "error", err)
		return false
	}
	select {
	case h.deliver <- delivery{channel: channel, payload: payload}:
		return true
	default:
		h.log.Warn("realtime hub queue full, message dropped", "channel", channel, "type", msg.Type)
		return false
	}
}

// Broadcast queues msg for AllChannel subscribers only.
func (h *Hub) Broadcast(msg Message) bool {
	return h.Publish(AllChannel, msg)
}

// Clients returns the number of connected clients.
func (h *Hub) Clients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Subscribers returns how many connected clients would receive a message
// published to channel.
func (h *Hub) Subscribers(channel string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	n := 0
	for c := range h.clients {
		if c.wants(channel) {
			n++
		}
	}
	return n
}

func (h *Hub) add(c *Client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	n := len(h.clients)
	h.mu.Unlock()

	metrics.RealtimeClients.Set(float64(n))
	h.log.Debug("realtime client connected", "client_id", c.ID, "channels", c.channelList(), "clients", n)
}

func (h *Hub) remove(c *Client) {
	h.mu.Lock()
	if _, ok := h.clients[c]; !ok {
		h.mu.Unlock()
		return
	}
	delete(h.clients, c)
	close(c.send)
	n := len(h.clients)
	h.mu.Unlock()

	metrics.RealtimeClients.Set(float64(n))
	h.log.Debug("realtime client disconnected", "client_id", c.ID, "clients", n)
}

func (h *Hub) fanOut(d delivery) {
	h.mu.RLock()
	var slow []*Client
	for c := range h.clients {
		if !c.wants(d.channel) {
			continue
		}
		select {
		case c.send <- d.payload:
		default:
			slow = append(slow, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range slow {
		h.log.Warn("realtime client too slow, disconnecting", "client_id", c.ID)
		h.remove(c)
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	for c := range h.clients {
		delete(h.clients, c)
		close(c.send)
	}
	h.mu.Unlock()
	metrics.RealtimeClients.Set(0)
}
