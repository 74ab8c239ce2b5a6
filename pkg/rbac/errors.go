package rbac

import "errors"

var (
	// ErrInvalidRole is returned when a role name is not part of the
	// closed role set.
	ErrInvalidRole = errors.New("rbac: unknown role")

	// ErrInvalidAction is returned when an action name is not part of
	// the closed action set.
	ErrInvalidAction = errors.New("rbac: unknown action")

	// ErrInconsistentCapability is returned at matrix load time when a
	// capability grants admin without the other four bits. A record like
	// that would make a feature administrable but invisible, which is a
	// data-entry error, so it is rejected before any query runs.
	ErrInconsistentCapability = errors.New("rbac: admin capability without full access bits")

	// ErrUnavailable indicates the matrix could not be consulted.
	// It is distinct from the zero capability: callers that receive it
	// must treat the permission as undetermined, not denied.
	ErrUnavailable = errors.New("rbac: capability matrix unavailable")
)
