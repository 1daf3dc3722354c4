package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"

	domain "github.com/donaldgifford/msp-alert-engine/pkg/types"
)

// RedisStreamPublisher appends events to a Redis stream with XADD. The
// stream is trimmed approximately to maxLen entries.
type RedisStreamPublisher struct {
	client *redis.Client
	stream string
	maxLen int64
}

// NewRedisStreamPublisher creates a publisher and verifies the connection.
func NewRedisStreamPublisher(ctx context.Context, opts *redis.Options, stream string, maxLen int64) (*RedisStreamPublisher, error) {
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("pinging redis %s: %w", opts.Addr, err)
	}
	return &RedisStreamPublisher{client: client, stream: stream, maxLen: maxLen}, nil
}

// Publish implements Publisher. Entry fields are type, tenant_id, alert_id
// and data (the JSON-encoded event).
func (p *RedisStreamPublisher) Publish(ctx context.Context, e domain.Event) error {
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshaling event: %w", err)
	}

	err = p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		MaxLen: p.maxLen,
		Approx: true,
		Values: map[string]any{
			"type":      string(e.Type),
			"tenant_id": e.TenantID,
			"alert_id":  e.AlertID,
			"data":      string(data),
		},
	}).Err()
	if err != nil {
		publishFailed("redis")
		return fmt.Errorf("xadd %s: %w", p.stream, err)
	}
	return nil
}

// Ping checks the Redis connection.
func (p *RedisStreamPublisher) Ping(ctx context.Context) error {
	return p.client.Ping(ctx).Err()
}

// Close closes the Redis client.
func (p *RedisStreamPublisher) Close() error {
	return p.client.Close()
}
