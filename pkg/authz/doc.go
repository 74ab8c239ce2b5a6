// Package authz is the permission resolver: the single place where the
// platform's two authorization levels are combined. A user may perform
// an action on a feature only when the tenant has the feature enabled
// AND the user's role holds that action-level capability on it:
//
//	allowed = featureEnabled(tenant, feature) AND capability(tenant, role, feature)[action]
//
// The feature check runs first and short-circuits, so tenant policy
// always outranks role policy: a disabled feature denies even admins.
// Downstream code must never re-implement either half of the check; it
// asks the resolver.
//
// Basic usage:
//
//	resolver := authz.NewResolver(featureProvider, matrix)
//
//	ok, err := resolver.HasPermission(ctx, "school_a", rbac.RoleStaff,
//	    feature.FeeManagement, rbac.ActionView)
//
//	snapshot, err := resolver.UserPermissions(ctx, user)
//	// snapshot.Statistics and snapshot.Grants drive the dashboard;
//	// see pkg/dashboard for the UI-facing projection.
//
// Denial is an ordinary boolean result, never an error. Errors are
// reserved for registry failures, which callers must treat as "could not
// determine" (fail closed, possibly retry) rather than "denied".
//
// Snapshots are deterministic: features are visited in the canonical
// enum order and per-feature grants come from a builder table keyed at
// package init, so two calls against unchanged registries return
// deep-equal snapshots.
package authz
