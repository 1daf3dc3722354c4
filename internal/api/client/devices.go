package client

import (
	"context"
	"net/url"

	domain "github.com/donaldgifford/msp-alert-engine/pkg/types"
)

// ListDevices returns the devices of a tenant.
func (c *Client) ListDevices(ctx context.Context, tenantID string) ([]domain.Device, error) {
	var devices []domain.Device
	if err := c.get(ctx, "/api/v1/devices?tenant_id="+url.QueryEscape(tenantID), &devices); err != nil {
		return nil, err
	}
	return devices, nil
}

// CreateDevice registers a device. An empty id lets the server generate one.
func (c *Client) CreateDevice(ctx context.Context, id, tenantID, hostname string) (*domain.Device, error) {
	body := map[string]string{"tenant_id": tenantID, "hostname": hostname}
	if id != "" {
		body["id"] = id
	}

	var d domain.Device
	if err := c.post(ctx, "/api/v1/devices", body, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// GetDevice returns a single device.
func (c *Client) GetDevice(ctx context.Context, id string) (*domain.Device, error) {
	var d domain.Device
	if err := c.get(ctx, "/api/v1/devices/"+url.PathEscape(id), &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// ListRoleMembers returns the members of a tenant role.
func (c *Client) ListRoleMembers(ctx context.Context, tenantID, role string) ([]domain.RoleMember, error) {
	var members []domain.RoleMember
	path := "/api/v1/roles/" + url.PathEscape(role) + "/members?tenant_id=" + url.QueryEscape(tenantID)
	if err := c.get(ctx, path, &members); err != nil {
		return nil, err
	}
	return members, nil
}

// AddRoleMember adds m to its role.
func (c *Client) AddRoleMember(ctx context.Context, m *domain.RoleMember) (*domain.RoleMember, error) {
	body := map[string]string{
		"tenant_id":        m.TenantID,
		"name":             m.Name,
		"email":            m.Email,
		"phone":            m.Phone,
		"realtime_channel": m.RealtimeChannel,
	}
	for k, v := range body {
		if v == "" {
			delete(body, k)
		}
	}

	var out domain.RoleMember
	if err := c.post(ctx, "/api/v1/roles/"+url.PathEscape(m.Role)+"/members", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RemoveRoleMember deletes a role member.
func (c *Client) RemoveRoleMember(ctx context.Context, role, id string) error {
	return c.del(ctx, "/api/v1/roles/"+url.PathEscape(role)+"/members/"+url.PathEscape(id))
}
