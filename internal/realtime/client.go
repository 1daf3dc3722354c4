package realtime

import (
	"encoding/json"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 1024
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(*http.Request) bool { return true },
}

// Client is one websocket connection and its channel subscriptions.
type Client struct {
	ID string

	hub  *Hub
	conn *websocket.Conn
	send chan []byte

	mu       sync.RWMutex
	channels map[string]struct{}
}

// subscription is an inbound control frame:
// {"action":"subscribe","channel":"oncall-ana"}.
type subscription struct {
	Action  string `json:"action"`
	Channel string `json:"channel"`
}

// ServeHTTP upgrades the request to a websocket. Initial subscriptions come
// from repeated or comma-separated ?channel= parameters.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("websocket upgrade failed", "remote_addr", r.RemoteAddr, "error", err)
		return
	}

	c := &Client{
		ID:       uuid.NewString(),
		hub:      h,
		conn:     conn,
		send:     make(chan []byte, h.bufferSize),
		channels: make(map[string]struct{}),
	}
	for _, raw := range r.URL.Query()["channel"] {
		for ch := range strings.SplitSeq(raw, ",") {
			c.subscribe(ch)
		}
	}

	select {
	case h.register <- c:
	case <-h.done:
		conn.Close()
		return
	}

	go c.writePump()
	go c.readPump()
}

func (c *Client) subscribe(channel string) {
	channel = strings.TrimSpace(channel)
	if channel == "" {
		return
	}
	c.mu.Lock()
	c.channels[channel] = struct{}{}
	c.mu.Unlock()
}

func (c *Client) unsubscribe(channel string) {
	c.mu.Lock()
	delete(c.channels, channel)
	c.mu.Unlock()
}

// wants reports whether a message for channel should reach this client.
func (c *Client) wants(channel string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if _, ok := c.channels[AllChannel]; ok {
		return true
	}
	_, ok := c.channels[channel]
	return ok
}

func (c *Client) channelList() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, 0, len(c.channels))
	for ch := range c.channels {
		out = append(out, ch)
	}
	sort.Strings(out)
	return out
}

func (c *Client) readPump() {
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.done:
		}
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.hub.log.Debug("websocket read error", "client_id", c.ID, "error", err)
			}
			return
		}

		var sub subscription
		if err := json.Unmarshal(raw, &sub); err != nil {
			continue
		}
		switch sub.Action {
		case "subscribe":
			c.subscribe(sub.Channel)
		case "unsubscribe":
			c.unsubscribe(sub.Channel)
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(c.hub.writeTimeout))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(c.hub.writeTimeout))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
