package tenant

import "errors"

var (
	// ErrTenantNotFound is returned when a tenant cannot be found.
	ErrTenantNotFound = errors.New("tenant not found")

	// ErrInvalidTier is returned when a subscription tier name is unknown.
	ErrInvalidTier = errors.New("invalid subscription tier")

	// ErrDuplicateTenant is returned when the same tenant id is
	// registered twice.
	ErrDuplicateTenant = errors.New("duplicate tenant id")

	// ErrNoTenantInContext is returned when no tenant is found in context.
	ErrNoTenantInContext = errors.New("no tenant in context")
)
