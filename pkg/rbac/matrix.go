package rbac

import (
	"context"
	"errors"
	"fmt"

	"github.com/schoolkit/schoolkit/pkg/feature"
)

// Matrix answers point queries against the role-capability matrix: which
// capability does a role hold on a feature within a tenant?
//
// Implementations must fail closed: an unknown tenant, an unknown role
// for that tenant, or an unknown feature for that role yields the zero
// capability with a nil error. Absence of a rule is implicit denial,
// never implicit allow. A non-nil error is reserved for upstream failures
// and should wrap ErrUnavailable.
type Matrix interface {
	Capability(ctx context.Context, tenantID string, role Role, f feature.Feature) (Capability, error)
}

// MatrixSource provides the raw matrix data, typically from configuration
// or a remote store. Load must be idempotent: repeated calls return the
// same data absent an out-of-band change.
type MatrixSource interface {
	Load(ctx context.Context) (map[string]TenantGrants, error)
}

// matrix is the Matrix implementation over a precomputed grant table.
// The table is treated as immutable after construction, so lookups need
// no locking.
type matrix struct {
	grants map[string]TenantGrants
}

// NewMatrix loads the matrix from the source and validates it. Every
// capability record is checked for consistency (admin implies the other
// four bits, see ErrInconsistentCapability) and every key must belong to
// the closed role and feature enums. Validation happens here, at load
// time, so queries never have to deal with malformed records.
func NewMatrix(ctx context.Context, source MatrixSource) (Matrix, error) {
	grants, err := source.Load(ctx)
	if err != nil {
		return nil, errors.Join(ErrUnavailable, err)
	}

	if err := validateGrants(grants); err != nil {
		return nil, err
	}

	return &matrix{grants: copyGrants(grants)}, nil
}

// Capability returns the role's capability on the feature within the
// tenant, or the zero capability when no record exists.
func (m *matrix) Capability(ctx context.Context, tenantID string, role Role, f feature.Feature) (Capability, error) {
	tenantGrants, ok := m.grants[tenantID]
	if !ok {
		return Capability{}, nil
	}
	roleGrants, ok := tenantGrants[role]
	if !ok {
		return Capability{}, nil
	}
	return roleGrants[f], nil
}

func validateGrants(grants map[string]TenantGrants) error {
	for tenantID, tenantGrants := range grants {
		for role, roleGrants := range tenantGrants {
			if !role.IsValid() {
				return errors.Join(ErrInvalidRole, fmt.Errorf("tenant %q: role %q", tenantID, role))
			}
			for f, c := range roleGrants {
				if !f.IsValid() {
					return errors.Join(feature.ErrInvalidFeature, fmt.Errorf("tenant %q: role %q: feature %q", tenantID, role, f))
				}
				if c.Admin && !(c.View && c.Create && c.Edit && c.Delete) {
					return errors.Join(ErrInconsistentCapability,
						fmt.Errorf("tenant %q: role %q: feature %q", tenantID, role, f))
				}
			}
		}
	}
	return nil
}

func copyGrants(grants map[string]TenantGrants) map[string]TenantGrants {
	out := make(map[string]TenantGrants, len(grants))
	for tenantID, tenantGrants := range grants {
		tenantCopy := make(TenantGrants, len(tenantGrants))
		for role, roleGrants := range tenantGrants {
			roleCopy := make(RoleGrants, len(roleGrants))
			for f, c := range roleGrants {
				roleCopy[f] = c
			}
			tenantCopy[role] = roleCopy
		}
		out[tenantID] = tenantCopy
	}
	return out
}
