package rbac

import (
	"context"
	"sync"
)

// inMemMatrixSource is a MatrixSource that serves grants from memory.
// It deep-copies its input so the caller cannot mutate it afterwards.
type inMemMatrixSource struct {
	mu     sync.RWMutex
	grants map[string]TenantGrants
}

// NewInMemMatrixSource creates a matrix source from a map of per-tenant
// grants. The input is deep-copied to prevent external modifications.
func NewInMemMatrixSource(grants map[string]TenantGrants) MatrixSource {
	return &inMemMatrixSource{grants: copyGrants(grants)}
}

// Load returns a copy of the grant table.
func (s *inMemMatrixSource) Load(ctx context.Context) (map[string]TenantGrants, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyGrants(s.grants), nil
}
