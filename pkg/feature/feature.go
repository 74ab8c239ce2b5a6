package feature

import "context"

// Feature identifies a functional area of the platform that can be
// enabled or disabled per tenant. The set is closed: adding a feature
// is a code change, never a configuration change.
type Feature string

// All system features.
const (
	StudentManagement    Feature = "student_management"
	StaffManagement      Feature = "staff_management"
	ClassManagement      Feature = "class_management"
	FeeManagement        Feature = "fee_management"
	ExamManagement       Feature = "exam_management"
	AttendanceManagement Feature = "attendance_management"
	LibraryManagement    Feature = "library_management"
	ReportsAnalytics     Feature = "reports_analytics"
	Notifications        Feature = "notifications"
	SettingsConfig       Feature = "settings_config"
)

// all holds the features in their canonical order. Every iteration over
// the feature set (snapshots, audit matrices) uses this order, so results
// are deterministic across calls and processes.
var all = []Feature{
	StudentManagement,
	StaffManagement,
	ClassManagement,
	FeeManagement,
	ExamManagement,
	AttendanceManagement,
	LibraryManagement,
	ReportsAnalytics,
	Notifications,
	SettingsConfig,
}

// All returns the complete feature set in canonical order.
// The returned slice is a copy and safe to modify.
func All() []Feature {
	out := make([]Feature, len(all))
	copy(out, all)
	return out
}

// IsValid reports whether f is a known feature.
func (f Feature) IsValid() bool {
	for _, known := range all {
		if f == known {
			return true
		}
	}
	return false
}

// String returns the wire name of the feature.
func (f Feature) String() string { return string(f) }

// Parse converts a wire name into a Feature.
// Returns ErrInvalidFeature for unknown names.
func Parse(name string) (Feature, error) {
	f := Feature(name)
	if !f.IsValid() {
		return "", ErrInvalidFeature
	}
	return f, nil
}

// Entitlement records whether a single feature is switched on for a tenant.
type Entitlement struct {
	Feature Feature `json:"feature" yaml:"feature"`
	Enabled bool    `json:"enabled" yaml:"enabled"`
}

// Provider answers per-tenant feature enablement questions.
//
// Implementations must fail closed: an unknown tenant or an unlisted
// feature yields false with a nil error. A non-nil error is reserved for
// upstream failures (the registry could not be consulted at all) and
// should wrap ErrUnavailable so callers can tell "denied" apart from
// "could not determine".
type Provider interface {
	// IsEnabled reports whether the feature is enabled for the tenant.
	IsEnabled(ctx context.Context, tenantID string, f Feature) (bool, error)

	// Enabled returns the tenant's enabled features in canonical order.
	// Unknown tenants yield an empty slice, not an error.
	Enabled(ctx context.Context, tenantID string) ([]Feature, error)
}
