package feature

import "errors"

var (
	// ErrInvalidFeature is returned when a feature name is not part of
	// the closed feature set.
	ErrInvalidFeature = errors.New("feature: unknown feature")

	// ErrDuplicateEntitlement is returned when a tenant lists the same
	// feature more than once.
	ErrDuplicateEntitlement = errors.New("feature: duplicate entitlement for feature")

	// ErrUnavailable indicates the registry could not be consulted
	// (e.g. the backing store is unreachable). It is distinct from a
	// negative answer: callers that receive it must treat the permission
	// as undetermined, not denied.
	ErrUnavailable = errors.New("feature: registry unavailable")
)
