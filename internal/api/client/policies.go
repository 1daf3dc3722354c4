package client

import (
	"context"
	"net/url"

	domain "github.com/donaldgifford/msp-alert-engine/pkg/types"
)

// PolicyRequest contains only the fields the API accepts for create/update.
type PolicyRequest struct {
	TenantID            string                  `json:"tenant_id"`
	Name                string                  `json:"name"`
	TriggerSeverities   []domain.Severity       `json:"trigger_severities"`
	TriggerAfterMinutes int                     `json:"trigger_after_minutes"`
	Enabled             *bool                   `json:"enabled,omitempty"`
	Steps               []domain.EscalationStep `json:"steps"`
}

// ListPolicies returns policies, optionally for one tenant.
func (c *Client) ListPolicies(ctx context.Context, tenantID string, enabledOnly bool) ([]domain.EscalationPolicy, error) {
	v := url.Values{}
	if tenantID != "" {
		v.Set("tenant_id", tenantID)
	}
	if enabledOnly {
		v.Set("enabled", "true")
	}

	var policies []domain.EscalationPolicy
	if err := c.get(ctx, "/api/v1/policies"+encode(v), &policies); err != nil {
		return nil, err
	}
	return policies, nil
}

// GetPolicy returns a single policy by ID.
func (c *Client) GetPolicy(ctx context.Context, id string) (*domain.EscalationPolicy, error) {
	var p domain.EscalationPolicy
	if err := c.get(ctx, "/api/v1/policies/"+url.PathEscape(id), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// CreatePolicy creates a policy.
func (c *Client) CreatePolicy(ctx context.Context, req *PolicyRequest) (*domain.EscalationPolicy, error) {
	var p domain.EscalationPolicy
	if err := c.post(ctx, "/api/v1/policies", req, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdatePolicy replaces a policy.
func (c *Client) UpdatePolicy(ctx context.Context, id string, req *PolicyRequest) (*domain.EscalationPolicy, error) {
	var p domain.EscalationPolicy
	if err := c.put(ctx, "/api/v1/policies/"+url.PathEscape(id), req, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// DeletePolicy removes a policy.
func (c *Client) DeletePolicy(ctx context.Context, id string) error {
	return c.del(ctx, "/api/v1/policies/"+url.PathEscape(id))
}
