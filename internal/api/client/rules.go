package client

import (
	"context"
	"net/url"

	domain "github.com/donaldgifford/msp-alert-engine/pkg/types"
)

// RuleRequest contains only the fields the API accepts for create/update.
type RuleRequest struct {
	TenantID  string           `json:"tenant_id"`
	Name      string           `json:"name"`
	AlertType string           `json:"alert_type,omitempty"`
	Severity  domain.Severity  `json:"severity"`
	DeviceID  string           `json:"device_id,omitempty"`
	Condition domain.Condition `json:"condition"`
	IsActive  *bool            `json:"is_active,omitempty"`
}

// RuleFilter narrows ListRules.
type RuleFilter struct {
	TenantID       string
	DeviceID       string
	ActiveOnly     bool
	IncludeDeleted bool
}

func (f RuleFilter) query() string {
	v := url.Values{}
	if f.TenantID != "" {
		v.Set("tenant_id", f.TenantID)
	}
	if f.DeviceID != "" {
		v.Set("device_id", f.DeviceID)
	}
	if f.ActiveOnly {
		v.Set("active", "true")
	}
	if f.IncludeDeleted {
		v.Set("include_deleted", "true")
	}
	return encode(v)
}

// ListRules returns rules matching f.
func (c *Client) ListRules(ctx context.Context, f RuleFilter) ([]domain.AlertRule, error) {
	var rules []domain.AlertRule
	if err := c.get(ctx, "/api/v1/rules"+f.query(), &rules); err != nil {
		return nil, err
	}
	return rules, nil
}

// GetRule returns a single rule by ID.
func (c *Client) GetRule(ctx context.Context, id string) (*domain.AlertRule, error) {
	var r domain.AlertRule
	if err := c.get(ctx, "/api/v1/rules/"+url.PathEscape(id), &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// CreateRule creates a rule.
func (c *Client) CreateRule(ctx context.Context, req *RuleRequest) (*domain.AlertRule, error) {
	var r domain.AlertRule
	if err := c.post(ctx, "/api/v1/rules", req, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// UpdateRule replaces a rule's definition.
func (c *Client) UpdateRule(ctx context.Context, id string, req *RuleRequest) (*domain.AlertRule, error) {
	var r domain.AlertRule
	if err := c.put(ctx, "/api/v1/rules/"+url.PathEscape(id), req, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// SetRuleActive enables or disables a rule.
func (c *Client) SetRuleActive(ctx context.Context, id string, active bool) error {
	return c.put(ctx, "/api/v1/rules/"+url.PathEscape(id)+"/active", map[string]bool{"active": active}, nil)
}

// DeleteRule soft-deletes a rule.
func (c *Client) DeleteRule(ctx context.Context, id string) error {
	return c.del(ctx, "/api/v1/rules/"+url.PathEscape(id))
}

func encode(v url.Values) string {
	if len(v) == 0 {
		return ""
	}
	return "?" + v.Encode()
}
