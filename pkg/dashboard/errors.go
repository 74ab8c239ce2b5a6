package dashboard

import "errors"

var (
	// ErrMalformedSnapshot is returned when a snapshot violates the
	// shape the resolver guarantees (nil, a group without options, an
	// unknown grant kind). It signals a bug in snapshot construction,
	// not a runtime condition to recover from.
	ErrMalformedSnapshot = errors.New("dashboard: malformed capability snapshot")
)
