package dashboard_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/schoolkit/schoolkit/pkg/authz"
	"github.com/schoolkit/schoolkit/pkg/feature"
	"github.com/schoolkit/schoolkit/pkg/rbac"
)

func fullAccess() rbac.Capability {
	return rbac.Capability{View: true, Create: true, Edit: true, Delete: true, Admin: true}
}

func viewOnly() rbac.Capability {
	return rbac.Capability{View: true}
}

func testEntitlements() map[string][]feature.Entitlement {
	allOn := make([]feature.Entitlement, 0, len(feature.All()))
	for _, f := range feature.All() {
		allOn = append(allOn, feature.Entitlement{Feature: f, Enabled: true})
	}

	partial := make([]feature.Entitlement, 0, len(feature.All()))
	for _, f := range feature.All() {
		enabled := f != feature.ExamManagement && f != feature.AttendanceManagement
		partial = append(partial, feature.Entitlement{Feature: f, Enabled: enabled})
	}

	return map[string][]feature.Entitlement{
		"school_a": allOn,
		"school_b": partial,
	}
}

func testGrants() map[string]rbac.TenantGrants {
	adminGrants := rbac.RoleGrants{}
	for _, f := range feature.All() {
		adminGrants[f] = fullAccess()
	}

	grants := rbac.TenantGrants{
		rbac.RoleAdmin: adminGrants,
		rbac.RoleStudent: rbac.RoleGrants{
			feature.ClassManagement:      viewOnly(),
			feature.ExamManagement:       viewOnly(),
			feature.AttendanceManagement: viewOnly(),
			feature.LibraryManagement:    viewOnly(),
		},
	}

	return map[string]rbac.TenantGrants{
		"school_a": grants,
		"school_b": grants,
	}
}

func newTestResolver(t *testing.T) *authz.Resolver {
	t.Helper()

	features, err := feature.NewMemoryProvider(testEntitlements())
	require.NoError(t, err)

	matrix, err := rbac.NewMatrix(context.Background(), rbac.NewInMemMatrixSource(testGrants()))
	require.NoError(t, err)

	return authz.NewResolver(features, matrix)
}

type failingFeatures struct{}

func (failingFeatures) IsEnabled(context.Context, string, feature.Feature) (bool, error) {
	return false, errors.Join(feature.ErrUnavailable, errors.New("registry offline"))
}

func (failingFeatures) Enabled(context.Context, string) ([]feature.Feature, error) {
	return nil, errors.Join(feature.ErrUnavailable, errors.New("registry offline"))
}
