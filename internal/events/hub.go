package events

import (
	"context"
	"fmt"

	"github.com/donaldgifford/msp-alert-engine/internal/realtime"
	domain "github.com/donaldgifford/msp-alert-engine/pkg/types"
)

// Broadcaster is the part of realtime.Hub used for events.
type Broadcaster interface {
	Publish(channel string, msg realtime.Message) bool
}

// TenantChannel is the realtime channel carrying a tenant's events.
func TenantChannel(tenantID string) string {
	return "tenant:" + tenantID
}

// HubPublisher pushes events to websocket clients subscribed to the
// tenant's channel (and to AllChannel subscribers).
type HubPublisher struct {
	hub Broadcaster
}

// NewHubPublisher creates a HubPublisher.
func NewHubPublisher(hub Broadcaster) *HubPublisher {
	return &HubPublisher{hub: hub}
}

// Publish implements Publisher.
func (p *HubPublisher) Publish(_ context.Context, e domain.Event) error {
	ok := p.hub.Publish(TenantChannel(e.TenantID), realtime.Message{
		Type:      string(e.Type),
		Data:      e,
		Timestamp: e.OccurredAt,
	})
	if !ok {
		publishFailed("realtime")
		return fmt.Errorf("realtime hub dropped %s", e.Type)
	}
	return nil
}
