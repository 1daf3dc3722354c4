package client

import (
	"context"
	"net/url"
	"time"

	"github.com/donaldgifford/msp-alert-engine/internal/engine"
)

// Sample is one reading sent by PushMetrics.
type Sample struct {
	CollectedAt time.Time      `json:"collected_at,omitzero"`
	Values      map[string]any `json:"values"`
}

// PushMetrics sends a sample batch for deviceID and returns what it raised.
func (c *Client) PushMetrics(ctx context.Context, deviceID string, samples []Sample) (*engine.IngestResult, error) {
	body := map[string]any{"samples": samples}

	var res engine.IngestResult
	if err := c.post(ctx, "/api/v1/agents/"+url.PathEscape(deviceID)+"/metrics", body, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// RunEscalationScan triggers an escalation scan on the server.
func (c *Client) RunEscalationScan(ctx context.Context) (*engine.ScanResult, error) {
	var res engine.ScanResult
	if err := c.post(ctx, "/api/v1/escalations/scan", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
