package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/msp-alert-engine/internal/store"
	domain "github.com/donaldgifford/msp-alert-engine/pkg/types"
)

// DeviceHandler handles device registration.
type DeviceHandler struct {
	store store.Store
}

// NewDeviceHandler creates a new DeviceHandler.
func NewDeviceHandler(s store.Store) *DeviceHandler {
	return &DeviceHandler{store: s}
}

// ListDevicesInput filters devices by tenant.
type ListDevicesInput struct {
	TenantID string `query:"tenant_id" required:"true" doc:"Owning tenant"`
}

// ListDevicesOutput is the response for listing devices.
type ListDevicesOutput struct {
	Body []domain.Device
}

// CreateDeviceInput registers a device.
type CreateDeviceInput struct {
	Body struct {
		ID       string `json:"id,omitempty" doc:"Device ID; generated when empty"`
		TenantID string `json:"tenant_id"    minLength:"1"`
		Hostname string `json:"hostname"     minLength:"1"`
	}
}

// DeviceOutput is a single device response.
type DeviceOutput struct {
	Body domain.Device
}

// GetDeviceInput identifies a device.
type GetDeviceInput struct {
	ID string `path:"id" doc:"Device ID"`
}

// List returns the devices of a tenant.
func (h *DeviceHandler) List(ctx context.Context, input *ListDevicesInput) (*ListDevicesOutput, error) {
	devices, err := h.store.ListDevices(ctx, input.TenantID)
	if err != nil {
		return nil, apiError("listing devices", err)
	}
	if devices == nil {
		devices = []domain.Device{}
	}
	return &ListDevicesOutput{Body: devices}, nil
}

// Create registers a device.
func (h *DeviceHandler) Create(ctx context.Context, input *CreateDeviceInput) (*DeviceOutput, error) {
	d := domain.Device{
		ID:       input.Body.ID,
		TenantID: input.Body.TenantID,
		Hostname: input.Body.Hostname,
	}
	if err := h.store.CreateDevice(ctx, &d); err != nil {
		return nil, apiError("creating device", err)
	}
	return &DeviceOutput{Body: d}, nil
}

// Get returns one device.
func (h *DeviceHandler) Get(ctx context.Context, input *GetDeviceInput) (*DeviceOutput, error) {
	d, err := h.store.GetDevice(ctx, input.ID)
	if err != nil {
		return nil, apiError("device", err)
	}
	return &DeviceOutput{Body: *d}, nil
}

// RegisterDeviceRoutes registers device endpoints with the Huma API.
func RegisterDeviceRoutes(api huma.API, h *DeviceHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-devices",
		Method:      http.MethodGet,
		Path:        "/api/v1/devices",
		Summary:     "List devices",
		Tags:        []string{"devices"},
	}, h.List)

	huma.Register(api, huma.Operation{
		OperationID:   "create-device",
		Method:        http.MethodPost,
		Path:          "/api/v1/devices",
		Summary:       "Register a device",
		Tags:          []string{"devices"},
		DefaultStatus: http.StatusCreated,
		Errors:        []int{http.StatusConflict},
	}, h.Create)

	huma.Register(api, huma.Operation{
		OperationID: "get-device",
		Method:      http.MethodGet,
		Path:        "/api/v1/devices/{id}",
		Summary:     "Get a device",
		Tags:        []string{"devices"},
		Errors:      []int{http.StatusNotFound},
	}, h.Get)
}
