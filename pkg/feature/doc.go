// Package feature implements the tenant feature registry: the first of
// the two levels in the platform's authorization model. Each tenant
// (school) carries its own set of enabled features, and every
// authorization decision starts by consulting this registry.
//
// The registry is a pure lookup with fail-closed semantics: an unknown
// tenant or an unlisted feature is simply disabled. Errors are reserved
// for upstream failures, so callers can distinguish "denied" from
// "could not determine" (see ErrUnavailable).
//
// Basic usage:
//
//	provider, err := feature.NewMemoryProvider(map[string][]feature.Entitlement{
//	    "school_a": {
//	        {Feature: feature.StudentManagement, Enabled: true},
//	        {Feature: feature.ExamManagement, Enabled: false},
//	    },
//	})
//
//	enabled, err := provider.IsEnabled(ctx, "school_a", feature.StudentManagement)
//
// The feature set itself is closed: the Feature constants in this package
// are the only valid values, and Parse rejects anything else. Remote
// implementations of Provider may suspend on I/O but must stay idempotent;
// repeated lookups return the same answer absent a registry change.
package feature
