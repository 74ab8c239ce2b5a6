// Package rbac implements the role-capability matrix: the second of the
// two levels in the platform's authorization model. For every (tenant,
// role, feature) triple the matrix holds a five-bit Capability record
// (view, create, edit, delete, admin).
//
// The role and action sets are closed enums. The matrix is a pure lookup
// with fail-closed semantics: any missing record is the zero capability,
// which grants nothing. Consistency is enforced when the matrix is built,
// not when it is queried: a record granting admin without the other four
// bits is rejected by NewMatrix with ErrInconsistentCapability.
//
// Basic usage:
//
//	source := rbac.NewInMemMatrixSource(map[string]rbac.TenantGrants{
//	    "school_a": {
//	        rbac.RoleStaff: {
//	            feature.FeeManagement: {View: true},
//	        },
//	    },
//	})
//	matrix, err := rbac.NewMatrix(ctx, source)
//
//	c, err := matrix.Capability(ctx, "school_a", rbac.RoleStaff, feature.FeeManagement)
//	if c.Allows(rbac.ActionView) {
//	    // ...
//	}
//
// The matrix alone never authorizes anything; combine it with the tenant
// feature registry through pkg/authz, which evaluates the conjunction of
// both levels.
package rbac
