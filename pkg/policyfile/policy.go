package policyfile

import (
	"context"
	"slices"

	"github.com/schoolkit/schoolkit/pkg/authz"
	"github.com/schoolkit/schoolkit/pkg/feature"
	"github.com/schoolkit/schoolkit/pkg/rbac"
	"github.com/schoolkit/schoolkit/pkg/tenant"
)

// Tenants returns the declared tenant catalog. The returned slice is a
// copy and safe to modify.
func (p *Policy) Tenants() []tenant.Tenant {
	return slices.Clone(p.tenants)
}

// TenantProvider builds an in-memory tenant catalog from the policy.
func (p *Policy) TenantProvider() (*tenant.InMemProvider, error) {
	return tenant.NewInMemProvider(p.tenants)
}

// FeatureProvider builds the tenant feature registry from the policy.
func (p *Policy) FeatureProvider() (feature.Provider, error) {
	return feature.NewMemoryProvider(p.entitlements)
}

// Matrix builds the role-capability matrix from the policy. Capability
// consistency (admin implies the full bit set) is enforced here, at
// load time, not on the lookup path.
func (p *Policy) Matrix(ctx context.Context) (rbac.Matrix, error) {
	return rbac.NewMatrix(ctx, rbac.NewInMemMatrixSource(p.grants))
}

// Resolver wires both registries into a permission resolver. This is the
// usual entry point for processes that boot from a policy file.
func (p *Policy) Resolver(ctx context.Context, opts ...authz.Option) (*authz.Resolver, error) {
	features, err := p.FeatureProvider()
	if err != nil {
		return nil, err
	}
	matrix, err := p.Matrix(ctx)
	if err != nil {
		return nil, err
	}
	return authz.NewResolver(features, matrix, opts...), nil
}
