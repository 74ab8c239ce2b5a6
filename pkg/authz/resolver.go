package authz

import (
	"context"
	"io"
	"log/slog"

	"github.com/schoolkit/schoolkit/pkg/feature"
	"github.com/schoolkit/schoolkit/pkg/rbac"
)

// Resolver combines the tenant feature registry with the role-capability
// matrix into effective permissions:
//
//	allowed = featureEnabled(tenant, feature) AND capability(tenant, role, feature)[action]
//
// Every authorization decision in the system reduces to that conjunction;
// the resolver is the only place it is evaluated. Both registries are
// explicit constructor arguments; there is no ambient global state, so
// tests and multi-configuration processes can run isolated resolvers
// side by side.
type Resolver struct {
	features feature.Provider
	matrix   rbac.Matrix
	log      *slog.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLogger sets the logger used for diagnostic output. Without it the
// resolver stays silent.
func WithLogger(log *slog.Logger) Option {
	return func(r *Resolver) { r.log = log }
}

// NewResolver creates a resolver over the given registries.
func NewResolver(features feature.Provider, matrix rbac.Matrix, opts ...Option) *Resolver {
	r := &Resolver{
		features: features,
		matrix:   matrix,
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// HasPermission reports whether the role may perform the action on the
// feature within the tenant. The feature-enabled check runs first and
// short-circuits: a disabled feature denies every action regardless of
// role, including admin. Tenant policy always outranks role policy.
//
// A false result with a nil error is an ordinary denial. A non-nil error
// means the answer could not be determined (registry I/O failed) and the
// caller must treat the permission as not granted, but may retry.
func (r *Resolver) HasPermission(ctx context.Context, tenantID string, role rbac.Role, f feature.Feature, action rbac.Action) (bool, error) {
	enabled, err := r.features.IsEnabled(ctx, tenantID, f)
	if err != nil {
		r.log.ErrorContext(ctx, "feature registry lookup failed",
			slog.String("tenant_id", tenantID), slog.String("feature", f.String()), slog.Any("error", err))
		return false, err
	}
	if !enabled {
		return false, nil
	}

	c, err := r.matrix.Capability(ctx, tenantID, role, f)
	if err != nil {
		r.log.ErrorContext(ctx, "capability matrix lookup failed",
			slog.String("tenant_id", tenantID), slog.String("role", role.String()),
			slog.String("feature", f.String()), slog.Any("error", err))
		return false, err
	}
	return c.Allows(action), nil
}

// UserPermissions derives the user's full capability snapshot: statistic
// keys for every viewable feature that defines one, and grants for every
// feature-specific UI affordance the user's capability admits.
//
// Features are visited in canonical enum order, so the snapshot is
// deterministic and deep-equal across calls while the registries are
// unchanged. A feature enabled for the tenant but without a capability
// record for the role contributes nothing: absence is silent, not an
// error. On any registry failure no partial snapshot is returned.
func (r *Resolver) UserPermissions(ctx context.Context, user User) (*Snapshot, error) {
	enabled, err := r.features.Enabled(ctx, user.TenantID)
	if err != nil {
		r.log.ErrorContext(ctx, "feature registry lookup failed",
			slog.String("tenant_id", user.TenantID), slog.Any("error", err))
		return nil, err
	}

	snapshot := &Snapshot{Statistics: []string{}, Grants: []Grant{}}
	for _, f := range enabled {
		c, err := r.matrix.Capability(ctx, user.TenantID, user.Role, f)
		if err != nil {
			r.log.ErrorContext(ctx, "capability matrix lookup failed",
				slog.String("tenant_id", user.TenantID), slog.String("role", user.Role.String()),
				slog.String("feature", f.String()), slog.Any("error", err))
			return nil, err
		}
		if c.IsZero() {
			continue
		}

		builder := grantBuilders[f]
		if builder.stat != "" && c.View {
			snapshot.Statistics = append(snapshot.Statistics, builder.stat)
		}
		if builder.build != nil {
			snapshot.Grants = append(snapshot.Grants, builder.build(user.Role, c)...)
		}
	}
	return snapshot, nil
}

// sectionFeatures maps coarse navigation-section names to the feature
// whose view permission guards them.
var sectionFeatures = map[string]feature.Feature{
	"students":   feature.StudentManagement,
	"staff":      feature.StaffManagement,
	"classes":    feature.ClassManagement,
	"fees":       feature.FeeManagement,
	"exams":      feature.ExamManagement,
	"attendance": feature.AttendanceManagement,
	"library":    feature.LibraryManagement,
	"reports":    feature.ReportsAnalytics,
	"settings":   feature.SettingsConfig,
}

// CanAccessSection reports whether the user may open a navigation
// section. Sections map to a (feature, view) permission check; unknown
// section names resolve to false, never an error.
func (r *Resolver) CanAccessSection(ctx context.Context, user User, section string) (bool, error) {
	f, ok := sectionFeatures[section]
	if !ok {
		return false, nil
	}
	return r.HasPermission(ctx, user.TenantID, user.Role, f, rbac.ActionView)
}

// FeatureEnabled exposes the tenant-level half of the decision for route
// guards and audit views.
func (r *Resolver) FeatureEnabled(ctx context.Context, tenantID string, f feature.Feature) (bool, error) {
	return r.features.IsEnabled(ctx, tenantID, f)
}

// RoleCapability exposes the role-level half of the decision for route
// guards and audit views.
func (r *Resolver) RoleCapability(ctx context.Context, tenantID string, role rbac.Role, f feature.Feature) (rbac.Capability, error) {
	return r.matrix.Capability(ctx, tenantID, role, f)
}
