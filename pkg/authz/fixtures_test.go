package authz_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/schoolkit/schoolkit/pkg/authz"
	"github.com/schoolkit/schoolkit/pkg/feature"
	"github.com/schoolkit/schoolkit/pkg/rbac"
)

// The fixtures model two schools: Greenwood Academy (school_a) with every
// feature enabled, and Riverside High (school_b) where exam and
// attendance management are switched off at the tenant level even though
// its role matrix still grants capabilities on them.

func fullAccess() rbac.Capability {
	return rbac.Capability{View: true, Create: true, Edit: true, Delete: true, Admin: true}
}

func viewOnly() rbac.Capability {
	return rbac.Capability{View: true}
}

func testEntitlements() map[string][]feature.Entitlement {
	allOn := make([]feature.Entitlement, 0, 10)
	for _, f := range feature.All() {
		allOn = append(allOn, feature.Entitlement{Feature: f, Enabled: true})
	}

	schoolB := make([]feature.Entitlement, 0, 10)
	for _, f := range feature.All() {
		enabled := f != feature.ExamManagement && f != feature.AttendanceManagement
		schoolB = append(schoolB, feature.Entitlement{Feature: f, Enabled: enabled})
	}

	return map[string][]feature.Entitlement{
		"school_a": allOn,
		"school_b": schoolB,
	}
}

func testGrants() map[string]rbac.TenantGrants {
	adminAll := make(rbac.RoleGrants, 10)
	for _, f := range feature.All() {
		adminAll[f] = fullAccess()
	}

	roleGrants := rbac.TenantGrants{
		rbac.RoleAdmin: adminAll,
		rbac.RoleAccountant: {
			feature.StudentManagement:    {View: true, Edit: true},
			feature.StaffManagement:      viewOnly(),
			feature.FeeManagement:        {View: true, Create: true, Edit: true},
			feature.ExamManagement:       viewOnly(),
			feature.AttendanceManagement: viewOnly(),
			feature.ReportsAnalytics:     viewOnly(),
			feature.Notifications:        viewOnly(),
			// class_management, library_management and settings_config
			// have no record at all: silent absence.
		},
		rbac.RoleStaff: {
			feature.StudentManagement:    {View: true, Edit: true},
			feature.StaffManagement:      viewOnly(),
			feature.ClassManagement:      {View: true, Edit: true},
			feature.FeeManagement:        viewOnly(),
			feature.ExamManagement:       {View: true, Create: true, Edit: true},
			feature.AttendanceManagement: {View: true, Create: true, Edit: true},
			feature.LibraryManagement:    {View: true, Edit: true},
			feature.ReportsAnalytics:     viewOnly(),
			feature.Notifications:        viewOnly(),
		},
		rbac.RoleStudent: {
			feature.ClassManagement:      viewOnly(),
			feature.FeeManagement:        viewOnly(),
			feature.ExamManagement:       viewOnly(),
			feature.AttendanceManagement: viewOnly(),
			feature.LibraryManagement:    viewOnly(),
			feature.Notifications:        viewOnly(),
		},
	}

	grants := map[string]rbac.TenantGrants{
		"school_a": roleGrants,
		"school_b": {},
	}
	// school_b reuses school_a's role policy; the tenant-level feature
	// switches are what differ between the two.
	for role, rg := range roleGrants {
		cp := make(rbac.RoleGrants, len(rg))
		for f, c := range rg {
			cp[f] = c
		}
		grants["school_b"][role] = cp
	}
	return grants
}

func newTestResolver(t *testing.T) *authz.Resolver {
	t.Helper()
	return newTestResolverWithOptions(t)
}

func newTestResolverWithOptions(t *testing.T, opts ...authz.Option) *authz.Resolver {
	t.Helper()

	features, err := feature.NewMemoryProvider(testEntitlements())
	require.NoError(t, err)

	matrix, err := rbac.NewMatrix(context.Background(), rbac.NewInMemMatrixSource(testGrants()))
	require.NoError(t, err)

	return authz.NewResolver(features, matrix, opts...)
}

// newResolverWithFeeDisabled mirrors newTestResolver but with fee
// management switched off for school_a, for monotonicity tests.
func newResolverWithFeeDisabled(t *testing.T) *authz.Resolver {
	t.Helper()

	entitlements := testEntitlements()
	list := entitlements["school_a"]
	for i := range list {
		if list[i].Feature == feature.FeeManagement {
			list[i].Enabled = false
		}
	}

	features, err := feature.NewMemoryProvider(entitlements)
	require.NoError(t, err)

	matrix, err := rbac.NewMatrix(context.Background(), rbac.NewInMemMatrixSource(testGrants()))
	require.NoError(t, err)

	return authz.NewResolver(features, matrix)
}

func testUser(role rbac.Role, tenantID string) authz.User {
	return authz.User{
		ID:       uuid.New(),
		Email:    string(role) + "@" + tenantID + ".edu",
		Name:     "Test User",
		Role:     role,
		TenantID: tenantID,
	}
}

// failing registries for upstream-failure tests

type failingFeatureProvider struct{}

func (failingFeatureProvider) IsEnabled(ctx context.Context, tenantID string, f feature.Feature) (bool, error) {
	return false, errors.Join(feature.ErrUnavailable, errors.New("registry timeout"))
}

func (failingFeatureProvider) Enabled(ctx context.Context, tenantID string) ([]feature.Feature, error) {
	return nil, errors.Join(feature.ErrUnavailable, errors.New("registry timeout"))
}

type failingMatrix struct{}

func (failingMatrix) Capability(ctx context.Context, tenantID string, role rbac.Role, f feature.Feature) (rbac.Capability, error) {
	return rbac.Capability{}, errors.Join(rbac.ErrUnavailable, errors.New("matrix timeout"))
}
