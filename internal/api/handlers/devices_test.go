package handlers_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/msp-alert-engine/internal/api/handlers"
	"github.com/donaldgifford/msp-alert-engine/internal/store"
	storeMocks "github.com/donaldgifford/msp-alert-engine/internal/store/mocks"
	domain "github.com/donaldgifford/msp-alert-engine/pkg/types"
)

func TestDeviceHandler(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().ListDevices(mock.Anything, "acme").
		Return([]domain.Device{{ID: "D1", TenantID: "acme", Hostname: "web-01"}}, nil).Once()
	ms.EXPECT().CreateDevice(mock.Anything, mock.MatchedBy(func(d *domain.Device) bool {
		return d.TenantID == "acme" && d.Hostname == "db-01"
	})).Run(func(_ context.Context, d *domain.Device) {
		d.ID = "D2"
	}).Return(nil).Once()
	ms.EXPECT().GetDevice(mock.Anything, "D9").Return(nil, store.ErrNotFound).Once()

	_, api := humatest.New(t)
	handlers.RegisterDeviceRoutes(api, handlers.NewDeviceHandler(ms))

	resp := api.Get("/api/v1/devices?tenant_id=acme")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"web-01"`)

	resp = api.Get("/api/v1/devices")
	require.Equal(t, http.StatusUnprocessableEntity, resp.Code)

	resp = api.Post("/api/v1/devices", map[string]any{"tenant_id": "acme", "hostname": "db-01"})
	require.Equal(t, http.StatusCreated, resp.Code)
	assert.Contains(t, resp.Body.String(), `"D2"`)

	resp = api.Get("/api/v1/devices/D9")
	require.Equal(t, http.StatusNotFound, resp.Code)
	assert.Contains(t, resp.Body.String(), "device not found")
}

func TestRoleHandler(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().ListRoleMembers(mock.Anything, "acme", []string{"manager"}).
		Return([]domain.RoleMember{{ID: "m1", Role: "manager", Name: "Jane"}}, nil).Once()
	ms.EXPECT().CreateRoleMember(mock.Anything, mock.MatchedBy(func(m *domain.RoleMember) bool {
		return m.Role == "manager" && m.TenantID == "acme" && m.Email == "jane@acme.example"
	})).Return(nil).Once()
	ms.EXPECT().DeleteRoleMember(mock.Anything, "m1").Return(nil).Once()
	ms.EXPECT().DeleteRoleMember(mock.Anything, "m2").Return(store.ErrNotFound).Once()

	_, api := humatest.New(t)
	handlers.RegisterRoleRoutes(api, handlers.NewRoleHandler(ms))

	resp := api.Get("/api/v1/roles/manager/members?tenant_id=acme")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"Jane"`)

	resp = api.Post("/api/v1/roles/manager/members", map[string]any{
		"tenant_id": "acme", "name": "Jane", "email": "jane@acme.example",
	})
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())

	resp = api.Post("/api/v1/roles/manager/members", map[string]any{"tenant_id": "acme", "name": "Nobody"})
	require.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	assert.Contains(t, resp.Body.String(), "at least one of")

	resp = api.Delete("/api/v1/roles/manager/members/m1")
	require.Equal(t, http.StatusNoContent, resp.Code)

	resp = api.Delete("/api/v1/roles/manager/members/m2")
	require.Equal(t, http.StatusNotFound, resp.Code)
}
