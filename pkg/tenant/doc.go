// Package tenant provides the tenant catalog: each tenant (school)
// carries a display name, an informational subscription tier, and the
// per-feature entitlements that drive the first level of the
// authorization model.
//
// The catalog is read-only to the authorization core. Provider is the
// lookup contract; InMemProvider serves a static catalog, CachedProvider
// decorates any Provider with a Cache (in-memory TTL/LRU, Redis-backed,
// or no-op) for deployments where the catalog lives behind I/O.
//
// FeatureProvider adapts the catalog into a feature.Provider, so the
// permission resolver consults tenant entitlements without knowing about
// catalog plumbing. Unknown tenants fail closed; catalog failures surface
// as feature.ErrUnavailable.
//
// Context helpers (WithTenant, FromContext) carry the resolved tenant
// through a request, and LoggerExtractor exposes the tenant id as an
// slog attribute.
package tenant
