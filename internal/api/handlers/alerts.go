package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/msp-alert-engine/internal/store"
	domain "github.com/donaldgifford/msp-alert-engine/pkg/types"
)

// AlertTransitioner changes alert status and stops escalation.
type AlertTransitioner interface {
	Acknowledge(ctx context.Context, alertID, actor, note string) (*domain.AlertInstance, error)
	Resolve(ctx context.Context, alertID, actor, note string) (*domain.AlertInstance, error)
}

// AlertHandler handles alert history and operator actions.
type AlertHandler struct {
	store   store.Store
	actions AlertTransitioner
}

// NewAlertHandler creates a new AlertHandler.
func NewAlertHandler(s store.Store, actions AlertTransitioner) *AlertHandler {
	return &AlertHandler{store: s, actions: actions}
}

// --- Input/Output types ---

// ListAlertsInput filters alert history.
type ListAlertsInput struct {
	TenantID string    `query:"tenant_id" doc:"Filter by tenant"`
	DeviceID string    `query:"device_id" doc:"Filter by device"`
	RuleID   string    `query:"rule_id"   doc:"Filter by rule"`
	Severity string    `query:"severity"  doc:"Filter by severity"            enum:"low,medium,high,critical,"`
	Status   []string  `query:"status,explode" doc:"Filter by status, repeatable"`
	Since    time.Time `query:"since"     doc:"Only alerts triggered at or after this time"`
	Limit    int       `query:"limit"     doc:"Number of results (default 50)" minimum:"1" maximum:"1000"`
	Offset   int       `query:"offset"    doc:"Pagination offset"             minimum:"0"`
	OrderBy  string    `query:"order_by"  doc:"Sort field"                    enum:"triggered_at,severity,"`
}

// ListAlertsOutput is the response for listing alerts.
type ListAlertsOutput struct {
	Body struct {
		Alerts []domain.AlertInstance `json:"alerts"`
		Total  int                    `json:"total"`
		Limit  int                    `json:"limit"`
		Offset int                    `json:"offset"`
	}
}

// AlertIDInput identifies an alert instance.
type AlertIDInput struct {
	ID string `path:"id" doc:"Alert instance ID"`
}

// AlertOutput is a single alert response.
type AlertOutput struct {
	Body domain.AlertInstance
}

// TransitionInput carries the operator and an optional note.
type TransitionInput struct {
	ID   string `path:"id" doc:"Alert instance ID"`
	Body struct {
		Actor string `json:"actor"          minLength:"1" example:"jane@acme.example"`
		Note  string `json:"note,omitempty"`
	}
}

// EscalationsOutput is the escalation record of one alert.
type EscalationsOutput struct {
	Body struct {
		States     []domain.EscalationState    `json:"states"`
		Dispatches []domain.EscalationDispatch `json:"dispatches"`
	}
}

// --- Handlers ---

// List returns alert history with filters and pagination.
func (h *AlertHandler) List(ctx context.Context, input *ListAlertsInput) (*ListAlertsOutput, error) {
	q := &store.AlertQuery{
		TenantID: optional(input.TenantID),
		DeviceID: optional(input.DeviceID),
		RuleID:   optional(input.RuleID),
		Severity: optional(input.Severity),
		Limit:    input.Limit,
		Offset:   input.Offset,
		OrderBy:  input.OrderBy,
	}
	if !input.Since.IsZero() {
		q.Since = &input.Since
	}
	for _, s := range input.Status {
		if !domain.AlertStatus(s).Valid() {
			return nil, huma.Error422UnprocessableEntity("unknown status " + s)
		}
		q.Statuses = append(q.Statuses, s)
	}

	alerts, total, err := h.store.ListAlertInstances(ctx, q)
	if err != nil {
		return nil, apiError("listing alerts", err)
	}
	if alerts == nil {
		alerts = []domain.AlertInstance{}
	}

	resp := &ListAlertsOutput{}
	resp.Body.Alerts = alerts
	resp.Body.Total = total
	resp.Body.Limit = q.Limit
	resp.Body.Offset = q.Offset
	return resp, nil
}

// Get returns one alert instance.
func (h *AlertHandler) Get(ctx context.Context, input *AlertIDInput) (*AlertOutput, error) {
	a, err := h.store.GetAlertInstance(ctx, input.ID)
	if err != nil {
		return nil, apiError("alert", err)
	}
	return &AlertOutput{Body: *a}, nil
}

// Acknowledge marks an active alert as acknowledged.
func (h *AlertHandler) Acknowledge(ctx context.Context, input *TransitionInput) (*AlertOutput, error) {
	a, err := h.actions.Acknowledge(ctx, input.ID, input.Body.Actor, input.Body.Note)
	if err != nil {
		return nil, apiError("alert", err)
	}
	return &AlertOutput{Body: *a}, nil
}

// Resolve marks an active or acknowledged alert as resolved.
func (h *AlertHandler) Resolve(ctx context.Context, input *TransitionInput) (*AlertOutput, error) {
	a, err := h.actions.Resolve(ctx, input.ID, input.Body.Actor, input.Body.Note)
	if err != nil {
		return nil, apiError("alert", err)
	}
	return &AlertOutput{Body: *a}, nil
}

// Escalations returns the escalation states and dispatch log of an alert.
func (h *AlertHandler) Escalations(ctx context.Context, input *AlertIDInput) (*EscalationsOutput, error) {
	if _, err := h.store.GetAlertInstance(ctx, input.ID); err != nil {
		return nil, apiError("alert", err)
	}
	states, err := h.store.ListEscalationStates(ctx, []string{input.ID})
	if err != nil {
		return nil, apiError("listing escalation states", err)
	}
	dispatches, err := h.store.ListEscalationDispatches(ctx, input.ID)
	if err != nil {
		return nil, apiError("listing escalation dispatches", err)
	}

	resp := &EscalationsOutput{}
	resp.Body.States = states
	resp.Body.Dispatches = dispatches
	if resp.Body.States == nil {
		resp.Body.States = []domain.EscalationState{}
	}
	if resp.Body.Dispatches == nil {
		resp.Body.Dispatches = []domain.EscalationDispatch{}
	}
	return resp, nil
}

// RegisterAlertRoutes registers alert endpoints with the Huma API.
func RegisterAlertRoutes(api huma.API, h *AlertHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-alerts",
		Method:      http.MethodGet,
		Path:        "/api/v1/alerts",
		Summary:     "List alert history",
		Tags:        []string{"alerts"},
		Errors:      []int{http.StatusUnprocessableEntity},
	}, h.List)

	huma.Register(api, huma.Operation{
		OperationID: "get-alert",
		Method:      http.MethodGet,
		Path:        "/api/v1/alerts/{id}",
		Summary:     "Get an alert",
		Tags:        []string{"alerts"},
		Errors:      []int{http.StatusNotFound},
	}, h.Get)

	huma.Register(api, huma.Operation{
		OperationID: "acknowledge-alert",
		Method:      http.MethodPost,
		Path:        "/api/v1/alerts/{id}/acknowledge",
		Summary:     "Acknowledge an alert",
		Description: "Moves an active alert to acknowledged and cancels its escalation.",
		Tags:        []string{"alerts"},
		Errors:      []int{http.StatusNotFound, http.StatusConflict},
	}, h.Acknowledge)

	huma.Register(api, huma.Operation{
		OperationID: "resolve-alert",
		Method:      http.MethodPost,
		Path:        "/api/v1/alerts/{id}/resolve",
		Summary:     "Resolve an alert",
		Description: "Moves an active or acknowledged alert to resolved and cancels its escalation.",
		Tags:        []string{"alerts"},
		Errors:      []int{http.StatusNotFound, http.StatusConflict},
	}, h.Resolve)

	huma.Register(api, huma.Operation{
		OperationID: "get-alert-escalations",
		Method:      http.MethodGet,
		Path:        "/api/v1/alerts/{id}/escalations",
		Summary:     "Get an alert's escalation record",
		Tags:        []string{"alerts"},
		Errors:      []int{http.StatusNotFound},
	}, h.Escalations)
}
