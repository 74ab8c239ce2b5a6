package feature

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// MemoryProvider is an in-memory implementation of the Provider interface
// backed by a per-tenant entitlement table. It is immutable after
// construction and safe for concurrent use.
type MemoryProvider struct {
	mu      sync.RWMutex
	tenants map[string]map[Feature]bool
}

// NewMemoryProvider creates a provider from per-tenant entitlement lists.
// The input is deep-copied so later modifications by the caller have no
// effect. A tenant listing the same feature twice or naming an unknown
// feature fails construction.
func NewMemoryProvider(entitlements map[string][]Entitlement) (*MemoryProvider, error) {
	tenants := make(map[string]map[Feature]bool, len(entitlements))
	for tenantID, list := range entitlements {
		features := make(map[Feature]bool, len(list))
		for _, e := range list {
			if !e.Feature.IsValid() {
				return nil, errors.Join(ErrInvalidFeature, fmt.Errorf("tenant %q: feature %q", tenantID, e.Feature))
			}
			if _, seen := features[e.Feature]; seen {
				return nil, errors.Join(ErrDuplicateEntitlement, fmt.Errorf("tenant %q: feature %q", tenantID, e.Feature))
			}
			features[e.Feature] = e.Enabled
		}
		tenants[tenantID] = features
	}

	return &MemoryProvider{tenants: tenants}, nil
}

// IsEnabled reports whether the feature is enabled for the tenant.
// Unknown tenants and unlisted features are disabled, never an error.
func (p *MemoryProvider) IsEnabled(ctx context.Context, tenantID string, f Feature) (bool, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	features, ok := p.tenants[tenantID]
	if !ok {
		return false, nil
	}
	return features[f], nil
}

// Enabled returns the tenant's enabled features in canonical order.
func (p *MemoryProvider) Enabled(ctx context.Context, tenantID string) ([]Feature, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	features, ok := p.tenants[tenantID]
	if !ok {
		return nil, nil
	}

	var out []Feature
	for _, f := range all {
		if features[f] {
			out = append(out, f)
		}
	}
	return out, nil
}
