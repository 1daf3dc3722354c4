package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/msp-alert-engine/internal/store"
	domain "github.com/donaldgifford/msp-alert-engine/pkg/types"
)

// RuleHandler handles alert rule authoring.
type RuleHandler struct {
	store store.Store
}

// NewRuleHandler creates a new RuleHandler.
func NewRuleHandler(s store.Store) *RuleHandler {
	return &RuleHandler{store: s}
}

// --- Input/Output types ---

// RuleBody is the writable part of a rule.
type RuleBody struct {
	TenantID  string           `json:"tenant_id"           minLength:"1"`
	Name      string           `json:"name"                minLength:"1"`
	AlertType string           `json:"alert_type,omitempty" doc:"Free-form classification, e.g. cpu or disk"`
	Severity  domain.Severity  `json:"severity"            enum:"low,medium,high,critical"`
	DeviceID  string           `json:"device_id,omitempty" doc:"Scope to one device; empty means every device of the tenant"`
	Condition domain.Condition `json:"condition"`
	IsActive  *bool            `json:"is_active,omitempty" doc:"Defaults to true"`
}

func (b *RuleBody) apply(r *domain.AlertRule) error {
	if err := b.Condition.Validate(); err != nil {
		return err
	}
	if !b.Severity.Valid() {
		return fmt.Errorf("%w: unknown severity %q", domain.ErrInvalidCondition, b.Severity)
	}
	r.TenantID = b.TenantID
	r.Name = b.Name
	r.AlertType = b.AlertType
	r.Severity = b.Severity
	r.DeviceID = optional(b.DeviceID)
	r.Condition = b.Condition
	r.IsActive = b.IsActive == nil || *b.IsActive
	return nil
}

// ListRulesInput filters rule listings.
type ListRulesInput struct {
	TenantID       string `query:"tenant_id"       doc:"Filter by tenant"`
	DeviceID       string `query:"device_id"       doc:"Filter by device scope"`
	ActiveOnly     bool   `query:"active"          doc:"Only active rules"`
	IncludeDeleted bool   `query:"include_deleted" doc:"Include soft-deleted rules"`
}

// ListRulesOutput is the response for listing rules.
type ListRulesOutput struct {
	Body []domain.AlertRule
}

// RuleIDInput identifies a rule.
type RuleIDInput struct {
	ID string `path:"id" doc:"Rule ID"`
}

// CreateRuleInput creates a rule.
type CreateRuleInput struct {
	Body RuleBody
}

// UpdateRuleInput replaces a rule's definition.
type UpdateRuleInput struct {
	ID   string `path:"id" doc:"Rule ID"`
	Body RuleBody
}

// SetRuleActiveInput toggles a rule.
type SetRuleActiveInput struct {
	ID   string `path:"id" doc:"Rule ID"`
	Body struct {
		Active bool `json:"active" example:"false"`
	}
}

// RuleOutput is a single rule response.
type RuleOutput struct {
	Body domain.AlertRule
}

// StatusOutput is a generic status response.
type StatusOutput struct {
	Body StatusResponse
}

// --- Handlers ---

// List returns rules matching the filters.
func (h *RuleHandler) List(ctx context.Context, input *ListRulesInput) (*ListRulesOutput, error) {
	rules, err := h.store.ListRules(ctx, &store.RuleQuery{
		TenantID:       optional(input.TenantID),
		DeviceID:       optional(input.DeviceID),
		ActiveOnly:     input.ActiveOnly,
		IncludeDeleted: input.IncludeDeleted,
	})
	if err != nil {
		return nil, apiError("listing rules", err)
	}
	if rules == nil {
		rules = []domain.AlertRule{}
	}
	return &ListRulesOutput{Body: rules}, nil
}

// Get returns one rule.
func (h *RuleHandler) Get(ctx context.Context, input *RuleIDInput) (*RuleOutput, error) {
	r, err := h.store.GetRule(ctx, input.ID)
	if err != nil {
		return nil, apiError("rule", err)
	}
	return &RuleOutput{Body: *r}, nil
}

// Create validates and stores a new rule.
func (h *RuleHandler) Create(ctx context.Context, input *CreateRuleInput) (*RuleOutput, error) {
	var r domain.AlertRule
	if err := input.Body.apply(&r); err != nil {
		return nil, apiError("creating rule", err)
	}
	if err := h.store.CreateRule(ctx, &r); err != nil {
		return nil, apiError("creating rule", err)
	}
	return &RuleOutput{Body: r}, nil
}

// Update replaces a rule's definition. Runtime counters are preserved.
func (h *RuleHandler) Update(ctx context.Context, input *UpdateRuleInput) (*RuleOutput, error) {
	r, err := h.store.GetRule(ctx, input.ID)
	if err != nil {
		return nil, apiError("rule", err)
	}
	if r.Deleted {
		return nil, huma.Error404NotFound("rule not found")
	}
	if err := input.Body.apply(r); err != nil {
		return nil, apiError("updating rule", err)
	}
	if err := h.store.UpdateRule(ctx, r); err != nil {
		return nil, apiError("updating rule", err)
	}
	return &RuleOutput{Body: *r}, nil
}

// SetActive enables or disables a rule.
func (h *RuleHandler) SetActive(ctx context.Context, input *SetRuleActiveInput) (*StatusOutput, error) {
	if err := h.store.SetRuleActive(ctx, input.ID, input.Body.Active); err != nil {
		return nil, apiError("rule", err)
	}
	return &StatusOutput{Body: StatusResponse{Status: "updated"}}, nil
}

// Delete soft-deletes a rule. Alert history keeps referencing it.
func (h *RuleHandler) Delete(ctx context.Context, input *RuleIDInput) (*struct{}, error) {
	if err := h.store.SoftDeleteRule(ctx, input.ID); err != nil {
		return nil, apiError("rule", err)
	}
	return nil, nil
}

// RegisterRuleRoutes registers rule endpoints with the Huma API.
func RegisterRuleRoutes(api huma.API, h *RuleHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-rules",
		Method:      http.MethodGet,
		Path:        "/api/v1/rules",
		Summary:     "List alert rules",
		Tags:        []string{"rules"},
	}, h.List)

	huma.Register(api, huma.Operation{
		OperationID: "get-rule",
		Method:      http.MethodGet,
		Path:        "/api/v1/rules/{id}",
		Summary:     "Get an alert rule",
		Tags:        []string{"rules"},
		Errors:      []int{http.StatusNotFound},
	}, h.Get)

	huma.Register(api, huma.Operation{
		OperationID:   "create-rule",
		Method:        http.MethodPost,
		Path:          "/api/v1/rules",
		Summary:       "Create an alert rule",
		Description:   "Creates a rule. A rule without device_id applies to every device of its tenant.",
		Tags:          []string{"rules"},
		DefaultStatus: http.StatusCreated,
		Errors:        []int{http.StatusUnprocessableEntity},
	}, h.Create)

	huma.Register(api, huma.Operation{
		OperationID: "update-rule",
		Method:      http.MethodPut,
		Path:        "/api/v1/rules/{id}",
		Summary:     "Update an alert rule",
		Tags:        []string{"rules"},
		Errors:      []int{http.StatusNotFound, http.StatusUnprocessableEntity},
	}, h.Update)

	huma.Register(api, huma.Operation{
		OperationID: "set-rule-active",
		Method:      http.MethodPut,
		Path:        "/api/v1/rules/{id}/active",
		Summary:     "Enable or disable an alert rule",
		Tags:        []string{"rules"},
		Errors:      []int{http.StatusNotFound},
	}, h.SetActive)

	huma.Register(api, huma.Operation{
		OperationID:   "delete-rule",
		Method:        http.MethodDelete,
		Path:          "/api/v1/rules/{id}",
		Summary:       "Delete an alert rule",
		Tags:          []string{"rules"},
		DefaultStatus: http.StatusNoContent,
		Errors:        []int{http.StatusNotFound},
	}, h.Delete)
}
