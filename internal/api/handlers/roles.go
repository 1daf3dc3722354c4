package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/msp-alert-engine/internal/store"
	domain "github.com/donaldgifford/msp-alert-engine/pkg/types"
)

// RoleHandler manages the role directory stored in the database.
type RoleHandler struct {
	store store.Store
}

// NewRoleHandler creates a new RoleHandler.
func NewRoleHandler(s store.Store) *RoleHandler {
	return &RoleHandler{store: s}
}

// ListMembersInput selects a tenant role.
type ListMembersInput struct {
	Role     string `path:"role"       doc:"Role name, e.g. manager"`
	TenantID string `query:"tenant_id" required:"true"`
}

// ListMembersOutput is the response for listing role members.
type ListMembersOutput struct {
	Body []domain.RoleMember
}

// AddMemberInput adds a person to a role.
type AddMemberInput struct {
	Role string `path:"role" doc:"Role name"`
	Body struct {
		TenantID        string `json:"tenant_id"                  minLength:"1"`
		Name            string `json:"name"                       minLength:"1"`
		Email           string `json:"email,omitempty"            format:"email"`
		Phone           string `json:"phone,omitempty"`
		RealtimeChannel string `json:"realtime_channel,omitempty"`
	}
}

// MemberOutput is a single role member response.
type MemberOutput struct {
	Body domain.RoleMember
}

// RemoveMemberInput identifies a role member.
type RemoveMemberInput struct {
	Role string `path:"role"`
	ID   string `path:"id"`
}

// List returns the members of a role.
func (h *RoleHandler) List(ctx context.Context, input *ListMembersInput) (*ListMembersOutput, error) {
	members, err := h.store.ListRoleMembers(ctx, input.TenantID, []string{input.Role})
	if err != nil {
		return nil, apiError("listing role members", err)
	}
	if members == nil {
		members = []domain.RoleMember{}
	}
	return &ListMembersOutput{Body: members}, nil
}

// Add stores a role member.
func (h *RoleHandler) Add(ctx context.Context, input *AddMemberInput) (*MemberOutput, error) {
	b := input.Body
	if b.Email == "" && b.Phone == "" && b.RealtimeChannel == "" {
		return nil, huma.Error422UnprocessableEntity("member needs at least one of email, phone or realtime_channel")
	}
	m := domain.RoleMember{
		TenantID:        b.TenantID,
		Role:            input.Role,
		Name:            b.Name,
		Email:           b.Email,
		Phone:           b.Phone,
		RealtimeChannel: b.RealtimeChannel,
	}
	if err := h.store.CreateRoleMember(ctx, &m); err != nil {
		return nil, apiError("adding role member", err)
	}
	return &MemberOutput{Body: m}, nil
}

// Remove deletes a role member.
func (h *RoleHandler) Remove(ctx context.Context, input *RemoveMemberInput) (*struct{}, error) {
	if err := h.store.DeleteRoleMember(ctx, input.ID); err != nil {
		return nil, apiError("role member", err)
	}
	return nil, nil
}

// RegisterRoleRoutes registers role directory endpoints with the Huma API.
func RegisterRoleRoutes(api huma.API, h *RoleHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-role-members",
		Method:      http.MethodGet,
		Path:        "/api/v1/roles/{role}/members",
		Summary:     "List role members",
		Tags:        []string{"roles"},
	}, h.List)

	huma.Register(api, huma.Operation{
		OperationID:   "add-role-member",
		Method:        http.MethodPost,
		Path:          "/api/v1/roles/{role}/members",
		Summary:       "Add a role member",
		Tags:          []string{"roles"},
		DefaultStatus: http.StatusCreated,
		Errors:        []int{http.StatusUnprocessableEntity},
	}, h.Add)

	huma.Register(api, huma.Operation{
		OperationID:   "remove-role-member",
		Method:        http.MethodDelete,
		Path:          "/api/v1/roles/{role}/members/{id}",
		Summary:       "Remove a role member",
		Tags:          []string{"roles"},
		DefaultStatus: http.StatusNoContent,
		Errors:        []int{http.StatusNotFound},
	}, h.Remove)
}
