package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/msp-alert-engine/internal/store"
	domain "github.com/donaldgifford/msp-alert-engine/pkg/types"
)

// PolicyHandler handles escalation policy authoring.
type PolicyHandler struct {
	store store.Store
}

// NewPolicyHandler creates a new PolicyHandler.
func NewPolicyHandler(s store.Store) *PolicyHandler {
	return &PolicyHandler{store: s}
}

// StepBody is one escalation step in a policy body.
type StepBody struct {
	Order                    int      `json:"order"`
	WaitMinutesAfterPrevious int      `json:"wait_minutes_after_previous,omitempty"`
	Roles                    []string `json:"roles"                                 minItems:"1"`
	NotifyEmail              bool     `json:"notify_email,omitempty"`
	NotifySMS                bool     `json:"notify_sms,omitempty"`
	NotifyRealtime           bool     `json:"notify_realtime,omitempty"`
}

// PolicyBody is the writable part of a policy.
type PolicyBody struct {
	TenantID            string            `json:"tenant_id"                       minLength:"1"`
	Name                string            `json:"name"                            minLength:"1"`
	TriggerSeverities   []domain.Severity `json:"trigger_severities"              minItems:"1"`
	TriggerAfterMinutes int               `json:"trigger_after_minutes,omitempty"`
	Enabled             *bool             `json:"enabled,omitempty"               doc:"Defaults to true"`
	Steps               []StepBody        `json:"steps"`
}

func (b *PolicyBody) apply(p *domain.EscalationPolicy) error {
	p.TenantID = b.TenantID
	p.Name = b.Name
	p.TriggerSeverities = b.TriggerSeverities
	p.TriggerAfterMinutes = b.TriggerAfterMinutes
	p.Enabled = b.Enabled == nil || *b.Enabled
	p.Steps = make([]domain.EscalationStep, 0, len(b.Steps))
	for _, s := range b.Steps {
		p.Steps = append(p.Steps, domain.EscalationStep{
			Order:                    s.Order,
			WaitMinutesAfterPrevious: s.WaitMinutesAfterPrevious,
			Roles:                    s.Roles,
			NotifyEmail:              s.NotifyEmail,
			NotifySMS:                s.NotifySMS,
			NotifyRealtime:           s.NotifyRealtime,
		})
	}
	return p.Validate()
}

// ListPoliciesInput filters policy listings.
type ListPoliciesInput struct {
	TenantID    string `query:"tenant_id" doc:"Filter by tenant"`
	EnabledOnly bool   `query:"enabled"   doc:"Only enabled policies"`
}

// ListPoliciesOutput is the response for listing policies.
type ListPoliciesOutput struct {
	Body []domain.EscalationPolicy
}

// PolicyIDInput identifies a policy.
type PolicyIDInput struct {
	ID string `path:"id" doc:"Policy ID"`
}

// CreatePolicyInput creates a policy.
type CreatePolicyInput struct {
	Body PolicyBody
}

// UpdatePolicyInput replaces a policy. Running escalations pick up the new
// steps on their next scan.
type UpdatePolicyInput struct {
	ID   string `path:"id" doc:"Policy ID"`
	Body PolicyBody
}

// PolicyOutput is a single policy response.
type PolicyOutput struct {
	Body domain.EscalationPolicy
}

// List returns policies matching the filters.
func (h *PolicyHandler) List(ctx context.Context, input *ListPoliciesInput) (*ListPoliciesOutput, error) {
	policies, err := h.store.ListPolicies(ctx, &store.PolicyQuery{
		TenantID:    optional(input.TenantID),
		EnabledOnly: input.EnabledOnly,
	})
	if err != nil {
		return nil, apiError("listing policies", err)
	}
	if policies == nil {
		policies = []domain.EscalationPolicy{}
	}
	return &ListPoliciesOutput{Body: policies}, nil
}

// Get returns one policy.
func (h *PolicyHandler) Get(ctx context.Context, input *PolicyIDInput) (*PolicyOutput, error) {
	p, err := h.store.GetPolicy(ctx, input.ID)
	if err != nil {
		return nil, apiError("policy", err)
	}
	return &PolicyOutput{Body: *p}, nil
}

// Create validates and stores a new policy.
func (h *PolicyHandler) Create(ctx context.Context, input *CreatePolicyInput) (*PolicyOutput, error) {
	var p domain.EscalationPolicy
	if err := input.Body.apply(&p); err != nil {
		return nil, apiError("creating policy", err)
	}
	if err := h.store.CreatePolicy(ctx, &p); err != nil {
		return nil, apiError("creating policy", err)
	}
	return &PolicyOutput{Body: p}, nil
}

// Update replaces a policy's definition.
func (h *PolicyHandler) Update(ctx context.Context, input *UpdatePolicyInput) (*PolicyOutput, error) {
	p, err := h.store.GetPolicy(ctx, input.ID)
	if err != nil {
		return nil, apiError("policy", err)
	}
	if err := input.Body.apply(p); err != nil {
		return nil, apiError("updating policy", err)
	}
	if err := h.store.UpdatePolicy(ctx, p); err != nil {
		return nil, apiError("updating policy", err)
	}
	return &PolicyOutput{Body: *p}, nil
}

// Delete removes a policy.
func (h *PolicyHandler) Delete(ctx context.Context, input *PolicyIDInput) (*struct{}, error) {
	if err := h.store.DeletePolicy(ctx, input.ID); err != nil {
		return nil, apiError("policy", err)
	}
	return nil, nil
}

// RegisterPolicyRoutes registers escalation policy endpoints with the Huma API.
func RegisterPolicyRoutes(api huma.API, h *PolicyHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-policies",
		Method:      http.MethodGet,
		Path:        "/api/v1/policies",
		Summary:     "List escalation policies",
		Tags:        []string{"policies"},
	}, h.List)

	huma.Register(api, huma.Operation{
		OperationID: "get-policy",
		Method:      http.MethodGet,
		Path:        "/api/v1/policies/{id}",
		Summary:     "Get an escalation policy",
		Tags:        []string{"policies"},
		Errors:      []int{http.StatusNotFound},
	}, h.Get)

	huma.Register(api, huma.Operation{
		OperationID:   "create-policy",
		Method:        http.MethodPost,
		Path:          "/api/v1/policies",
		Summary:       "Create an escalation policy",
		Tags:          []string{"policies"},
		DefaultStatus: http.StatusCreated,
		Errors:        []int{http.StatusUnprocessableEntity},
	}, h.Create)

	huma.Register(api, huma.Operation{
		OperationID: "update-policy",
		Method:      http.MethodPut,
		Path:        "/api/v1/policies/{id}",
		Summary:     "Update an escalation policy",
		Description: "Replaces the policy. Alerts already escalating follow the new steps from their next scan.",
		Tags:        []string{"policies"},
		Errors:      []int{http.StatusNotFound, http.StatusUnprocessableEntity},
	}, h.Update)

	huma.Register(api, huma.Operation{
		OperationID:   "delete-policy",
		Method:        http.MethodDelete,
		Path:          "/api/v1/policies/{id}",
		Summary:       "Delete an escalation policy",
		Tags:          []string{"policies"},
		DefaultStatus: http.StatusNoContent,
		Errors:        []int{http.StatusNotFound},
	}, h.Delete)
}
