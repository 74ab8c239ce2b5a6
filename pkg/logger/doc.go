// Package logger provides a context-aware wrapper around Go's slog package
// adding functional options for configuration, helper attribute constructors,
// and transparent injection of values stored in context.Context.
//
// New builds a *slog.Logger whose handler runs registered ContextExtractor
// callbacks on every record, so request-scoped values like the current
// tenant or authenticated user appear on every log line without callers
// passing them explicitly. The tenant and authz packages export matching
// extractors.
//
//	log := logger.New(
//	    logger.WithProduction("schoolkit"),
//	    logger.WithContextExtractors(
//	        tenant.LoggerExtractor(),
//	        authz.LoggerExtractor(),
//	    ),
//	)
//
//	resolver := authz.NewResolver(features, matrix, authz.WithLogger(log))
//
// Helper constructors (Error, TenantID, Role, Feature, Action) keep
// attribute naming consistent across packages.
package logger
