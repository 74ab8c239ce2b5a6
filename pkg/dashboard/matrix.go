package dashboard

import (
	"context"

	"github.com/schoolkit/schoolkit/pkg/authz"
	"github.com/schoolkit/schoolkit/pkg/feature"
	"github.com/schoolkit/schoolkit/pkg/rbac"
)

// AccessEntry is one row of the audit access matrix: how a role stands
// against one feature within a tenant, with both authorization levels
// spelled out next to their conjunction.
type AccessEntry struct {
	Feature       feature.Feature `json:"feature"`
	TenantEnabled bool            `json:"tenant_enabled"`
	Capability    rbac.Capability `json:"capability"`
	Allowed       bool            `json:"allowed"`
}

// AccessMatrix renders the full feature cross-product for one (tenant,
// role) pair, in canonical feature order. A row is allowed when the
// tenant has the feature enabled and the role holds any capability on
// it. Intended for audit and demo views; it is the projector run in
// reverse, over the registries instead of a snapshot.
func AccessMatrix(ctx context.Context, resolver *authz.Resolver, tenantID string, role rbac.Role) ([]AccessEntry, error) {
	features := feature.All()
	entries := make([]AccessEntry, 0, len(features))

	for _, f := range features {
		enabled, err := resolver.FeatureEnabled(ctx, tenantID, f)
		if err != nil {
			return nil, err
		}
		c, err := resolver.RoleCapability(ctx, tenantID, role, f)
		if err != nil {
			return nil, err
		}
		entries = append(entries, AccessEntry{
			Feature:       f,
			TenantEnabled: enabled,
			Capability:    c,
			Allowed:       enabled && c.Any(),
		})
	}

	return entries, nil
}
