package client

import (
	"context"
	"net/url"
	"strconv"
	"time"

	domain "github.com/donaldgifford/msp-alert-engine/pkg/types"
)

// AlertFilter narrows ListAlerts.
type AlertFilter struct {
	TenantID string
	DeviceID string
	RuleID   string
	Severity string
	Statuses []string
	Since    time.Time
	Limit    int
	Offset   int
	OrderBy  string
}

func (f *AlertFilter) query() string {
	v := url.Values{}
	set := func(k, val string) {
		if val != "" {
			v.Set(k, val)
		}
	}
	set("tenant_id", f.TenantID)
	set("device_id", f.DeviceID)
	set("rule_id", f.RuleID)
	set("severity", f.Severity)
	set("order_by", f.OrderBy)
	for _, s := range f.Statuses {
		v.Add("status", s)
	}
	if !f.Since.IsZero() {
		v.Set("since", f.Since.UTC().Format(time.RFC3339))
	}
	if f.Limit > 0 {
		v.Set("limit", strconv.Itoa(f.Limit))
	}
	if f.Offset > 0 {
		v.Set("offset", strconv.Itoa(f.Offset))
	}
	return encode(v)
}

// AlertPage is one page of alert history.
type AlertPage struct {
	Alerts []domain.AlertInstance `json:"alerts"`
	Total  int                    `json:"total"`
	Limit  int                    `json:"limit"`
	Offset int                    `json:"offset"`
}

// AlertEscalations is the escalation record of one alert.
type AlertEscalations struct {
	States     []domain.EscalationState    `json:"states"`
	Dispatches []domain.EscalationDispatch `json:"dispatches"`
}

type transitionRequest struct {
	Actor string `json:"actor"`
	Note  string `json:"note,omitempty"`
}

// ListAlerts returns a page of alert history.
func (c *Client) ListAlerts(ctx context.Context, f *AlertFilter) (*AlertPage, error) {
	var page AlertPage
	if err := c.get(ctx, "/api/v1/alerts"+f.query(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetAlert returns a single alert instance.
func (c *Client) GetAlert(ctx context.Context, id string) (*domain.AlertInstance, error) {
	var a domain.AlertInstance
	if err := c.get(ctx, "/api/v1/alerts/"+url.PathEscape(id), &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// AcknowledgeAlert acknowledges an active alert.
func (c *Client) AcknowledgeAlert(ctx context.Context, id, actor, note string) (*domain.AlertInstance, error) {
	var a domain.AlertInstance
	err := c.post(ctx, "/api/v1/alerts/"+url.PathEscape(id)+"/acknowledge", transitionRequest{actor, note}, &a)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// ResolveAlert resolves an active or acknowledged alert.
func (c *Client) ResolveAlert(ctx context.Context, id, actor, note string) (*domain.AlertInstance, error) {
	var a domain.AlertInstance
	err := c.post(ctx, "/api/v1/alerts/"+url.PathEscape(id)+"/resolve", transitionRequest{actor, note}, &a)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// GetAlertEscalations returns the escalation states and dispatches of an alert.
func (c *Client) GetAlertEscalations(ctx context.Context, id string) (*AlertEscalations, error) {
	var out AlertEscalations
	if err := c.get(ctx, "/api/v1/alerts/"+url.PathEscape(id)+"/escalations", &out); err != nil {
		return nil, err
	}
	return &out, nil
}
