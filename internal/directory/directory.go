// Package directory resolves escalation roles to the people who hold them.
package directory

import (
	"context"
	"errors"
	"fmt"

	domain "github.com/donaldgifford/msp-alert-engine/pkg/types"
)

// AnyTenant is the static directory key whose roles apply to every tenant.
const AnyTenant = "*"

// Directory resolves role names within a tenant to recipients. A person
// holding several of the requested roles appears once.
type Directory interface {
	Resolve(ctx context.Context, tenantID string, roles []string) ([]domain.Recipient, error)
}

// MemberLister is the store query StoreDirectory needs.
type MemberLister interface {
	ListRoleMembers(ctx context.Context, tenantID string, roles []string) ([]domain.RoleMember, error)
}

// StoreDirectory resolves roles from the role_members table.
type StoreDirectory struct {
	members MemberLister
}

// NewStoreDirectory creates a StoreDirectory.
func NewStoreDirectory(members MemberLister) *StoreDirectory {
	return &StoreDirectory{members: members}
}

// Resolve implements Directory.
func (d *StoreDirectory) Resolve(ctx context.Context, tenantID string, roles []string) ([]domain.Recipient, error) {
	if len(roles) == 0 {
		return nil, nil
	}
	members, err := d.members.ListRoleMembers(ctx, tenantID, roles)
	if err != nil {
		return nil, fmt.Errorf("listing role members: %w", err)
	}
	out := make([]domain.Recipient, 0, len(members))
	for i := range members {
		out = append(out, members[i].Recipient())
	}
	return dedupe(out), nil
}

// Static resolves roles from a fixed table, typically loaded from config.
type Static struct {
	entries map[string]map[string][]domain.Recipient
}

// NewStatic creates a Static directory keyed by tenant id (or AnyTenant)
// and then role.
func NewStatic(entries map[string]map[string][]domain.Recipient) *Static {
	if entries == nil {
		entries = map[string]map[string][]domain.Recipient{}
	}
	return &Static{entries: entries}
}

// Resolve implements Directory. Tenant-specific entries come before
// AnyTenant entries.
func (s *Static) Resolve(_ context.Context, tenantID string, roles []string) ([]domain.Recipient, error) {
	var out []domain.Recipient
	for _, key := range []string{tenantID, AnyTenant} {
		byRole := s.entries[key]
		for _, role := range roles {
			out = append(out, byRole[role]...)
		}
	}
	return dedupe(out), nil
}

// Chain consults directories in order and returns the first non-empty
// result. A failing directory is skipped; its error is only returned when
// no directory produced recipients.
type Chain []Directory

// Resolve implements Directory.
func (c Chain) Resolve(ctx context.Context, tenantID string, roles []string) ([]domain.Recipient, error) {
	var errs []error
	for _, d := range c {
		got, err := d.Resolve(ctx, tenantID, roles)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if len(got) > 0 {
			return got, nil
		}
	}
	return nil, errors.Join(errs...)
}

type recipientKey struct {
	name, email, phone, channel string
}

func dedupe(in []domain.Recipient) []domain.Recipient {
	if len(in) < 2 {
		return in
	}
	seen := make(map[recipientKey]struct{}, len(in))
	out := in[:0]
	for _, r := range in {
		k := recipientKey{r.Name, r.Email, r.Phone, r.RealtimeChannel}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, r)
	}
	return out
}
