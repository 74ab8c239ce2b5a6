package authz_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schoolkit/schoolkit/pkg/authz"
	"github.com/schoolkit/schoolkit/pkg/feature"
	"github.com/schoolkit/schoolkit/pkg/rbac"
)

func grantIDs(grants []authz.Grant) []string {
	ids := make([]string, 0, len(grants))
	for _, g := range grants {
		ids = append(ids, g.ID)
	}
	return ids
}

func optionIDs(options []authz.GrantOption) []string {
	ids := make([]string, 0, len(options))
	for _, o := range options {
		ids = append(ids, o.ID)
	}
	return ids
}

func findGrant(t *testing.T, grants []authz.Grant, id string) authz.Grant {
	t.Helper()
	for _, g := range grants {
		if g.ID == id {
			return g
		}
	}
	t.Fatalf("grant %q not found in %v", id, grantIDs(grants))
	return authz.Grant{}
}

func TestUserPermissions_Admin(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	resolver := newTestResolver(t)

	snapshot, err := resolver.UserPermissions(ctx, testUser(rbac.RoleAdmin, "school_a"))
	require.NoError(t, err)

	assert.Equal(t, []string{
		"totalStudents", "totalStaff", "totalClasses", "pendingFees", "upcomingExams",
	}, snapshot.Statistics)

	assert.Equal(t, []string{
		"add_student", "add_staff", "view_classes", "manage_fees",
		"exam_management", "attendance_management", "library_management",
		"reports_analytics",
	}, grantIDs(snapshot.Grants))

	fees := findGrant(t, snapshot.Grants, "manage_fees")
	assert.Equal(t, authz.KindGroup, fees.Kind)
	assert.Equal(t, []string{"pay_fee", "configure_fee", "fee_reports"}, optionIDs(fees.Options))

	exams := findGrant(t, snapshot.Grants, "exam_management")
	assert.Equal(t, authz.KindGroup, exams.Kind)
	assert.Equal(t, []string{"schedule_exam", "view_results"}, optionIDs(exams.Options))
}

func TestUserPermissions_AccountantSilentAbsence(t *testing.T) {
	t.Parallel()

	// The accountant at school_a has no capability record at all for
	// class management: the feature must contribute neither a statistic
	// nor a grant, and no error.
	ctx := context.Background()
	resolver := newTestResolver(t)

	snapshot, err := resolver.UserPermissions(ctx, testUser(rbac.RoleAccountant, "school_a"))
	require.NoError(t, err)

	assert.NotContains(t, snapshot.Statistics, "totalClasses")
	assert.NotContains(t, grantIDs(snapshot.Grants), "view_classes")

	// What the accountant does hold is intact.
	assert.Contains(t, snapshot.Statistics, "pendingFees")
	fees := findGrant(t, snapshot.Grants, "manage_fees")
	// configure_fee needs the admin level, which the accountant lacks.
	assert.Equal(t, []string{"pay_fee", "fee_reports"}, optionIDs(fees.Options))
}

func TestUserPermissions_SubOptionGating(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	resolver := newTestResolver(t)

	t.Run("student sees only view_results in the exam group", func(t *testing.T) {
		t.Parallel()
		snapshot, err := resolver.UserPermissions(ctx, testUser(rbac.RoleStudent, "school_a"))
		require.NoError(t, err)

		exams := findGrant(t, snapshot.Grants, "exam_management")
		assert.Equal(t, []string{"view_results"}, optionIDs(exams.Options))
	})

	t.Run("staff schedules exams but cannot manage fees", func(t *testing.T) {
		t.Parallel()
		snapshot, err := resolver.UserPermissions(ctx, testUser(rbac.RoleStaff, "school_a"))
		require.NoError(t, err)

		exams := findGrant(t, snapshot.Grants, "exam_management")
		assert.Equal(t, []string{"schedule_exam", "view_results"}, optionIDs(exams.Options))

		// Staff hold only view on fees: no manage_fees group at all.
		assert.NotContains(t, grantIDs(snapshot.Grants), "manage_fees")
	})
}

func TestUserPermissions_DisabledFeatureRemovedEverywhere(t *testing.T) {
	t.Parallel()

	// school_b disables exam and attendance management; the matrix still
	// grants capabilities on both. Neither may surface anywhere in the
	// snapshot, for any role.
	ctx := context.Background()
	resolver := newTestResolver(t)

	for _, role := range rbac.AllRoles() {
		snapshot, err := resolver.UserPermissions(ctx, testUser(role, "school_b"))
		require.NoError(t, err)

		assert.NotContains(t, snapshot.Statistics, "upcomingExams", "role %s", role)
		assert.NotContains(t, grantIDs(snapshot.Grants), "exam_management", "role %s", role)
		assert.NotContains(t, grantIDs(snapshot.Grants), "attendance_management", "role %s", role)
	}
}

func TestUserPermissions_Idempotent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	resolver := newTestResolver(t)

	for _, role := range rbac.AllRoles() {
		user := testUser(role, "school_a")

		first, err := resolver.UserPermissions(ctx, user)
		require.NoError(t, err)
		second, err := resolver.UserPermissions(ctx, user)
		require.NoError(t, err)

		// Deep-equal, including ordering of grants and options.
		assert.Equal(t, first, second, "role %s", role)
	}
}

func TestUserPermissions_UnknownTenantYieldsEmptySnapshot(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	resolver := newTestResolver(t)

	snapshot, err := resolver.UserPermissions(ctx, testUser(rbac.RoleAdmin, "school_z"))
	require.NoError(t, err)
	assert.Empty(t, snapshot.Statistics)
	assert.Empty(t, snapshot.Grants)
}

func TestUserPermissions_NoPartialSnapshotOnFailure(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	features, err := feature.NewMemoryProvider(testEntitlements())
	require.NoError(t, err)
	resolver := authz.NewResolver(features, failingMatrix{})

	snapshot, err := resolver.UserPermissions(ctx, testUser(rbac.RoleAdmin, "school_a"))
	assert.Nil(t, snapshot)
	assert.ErrorIs(t, err, rbac.ErrUnavailable)
}
