package tenant

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"sort"
	"sync"
	"time"

	"github.com/schoolkit/schoolkit/pkg/feature"
)

// InMemProvider serves the tenant catalog from memory. It deep-copies
// tenants on the way in and out, so callers can never mutate its state.
type InMemProvider struct {
	mu      sync.RWMutex
	tenants map[string]Tenant
}

// NewInMemProvider creates a provider from a list of tenants.
// Duplicate tenant ids and unknown tiers or features fail construction.
func NewInMemProvider(tenants []Tenant) (*InMemProvider, error) {
	byID := make(map[string]Tenant, len(tenants))
	for _, t := range tenants {
		if _, exists := byID[t.ID]; exists {
			return nil, errors.Join(ErrDuplicateTenant, fmt.Errorf("tenant %q", t.ID))
		}
		if !t.Tier.IsValid() {
			return nil, errors.Join(ErrInvalidTier, fmt.Errorf("tenant %q: tier %q", t.ID, t.Tier))
		}
		for f := range t.Features {
			if !f.IsValid() {
				return nil, errors.Join(feature.ErrInvalidFeature, fmt.Errorf("tenant %q: feature %q", t.ID, f))
			}
		}
		t.Features = maps.Clone(t.Features)
		byID[t.ID] = t
	}

	return &InMemProvider{tenants: byID}, nil
}

// GetByID returns a copy of the tenant, or ErrTenantNotFound.
func (p *InMemProvider) GetByID(ctx context.Context, id string) (*Tenant, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	t, ok := p.tenants[id]
	if !ok {
		return nil, ErrTenantNotFound
	}
	t.Features = maps.Clone(t.Features)
	return &t, nil
}

// All returns the full catalog ordered by tenant id. Useful for
// administration screens and the access-matrix audit view.
func (p *InMemProvider) All(ctx context.Context) ([]Tenant, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	out := make([]Tenant, 0, len(p.tenants))
	for _, t := range p.tenants {
		t.Features = maps.Clone(t.Features)
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// CachedProvider decorates a Provider with a Cache. Lookups hit the cache
// first; misses fall through to the underlying provider and populate the
// cache. Not-found answers are not cached, so a freshly provisioned
// tenant becomes visible as soon as the catalog knows it.
type CachedProvider struct {
	provider Provider
	cache    Cache
	ttl      time.Duration
}

// NewCachedProvider wraps the provider with the given cache and TTL.
func NewCachedProvider(provider Provider, cache Cache, ttl time.Duration) *CachedProvider {
	return &CachedProvider{provider: provider, cache: cache, ttl: ttl}
}

// GetByID returns the tenant from cache when present, otherwise from the
// underlying provider.
func (p *CachedProvider) GetByID(ctx context.Context, id string) (*Tenant, error) {
	if t, ok := p.cache.Get(ctx, id); ok {
		return t, nil
	}

	t, err := p.provider.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	p.cache.Set(ctx, id, t, p.ttl)
	return t, nil
}

// featureProvider exposes the tenant catalog as a feature.Provider, so
// the permission resolver can consult tenant entitlements directly.
type featureProvider struct {
	provider Provider
}

// FeatureProvider adapts a tenant Provider into a feature.Provider.
// An unknown tenant fails closed (every feature disabled); any other
// catalog failure is surfaced as feature.ErrUnavailable so callers can
// tell denial apart from inability to determine.
func FeatureProvider(p Provider) feature.Provider {
	return &featureProvider{provider: p}
}

func (fp *featureProvider) IsEnabled(ctx context.Context, tenantID string, f feature.Feature) (bool, error) {
	t, err := fp.provider.GetByID(ctx, tenantID)
	if err != nil {
		if errors.Is(err, ErrTenantNotFound) {
			return false, nil
		}
		return false, errors.Join(feature.ErrUnavailable, err)
	}
	return t.FeatureEnabled(f), nil
}

func (fp *featureProvider) Enabled(ctx context.Context, tenantID string) ([]feature.Feature, error) {
	t, err := fp.provider.GetByID(ctx, tenantID)
	if err != nil {
		if errors.Is(err, ErrTenantNotFound) {
			return nil, nil
		}
		return nil, errors.Join(feature.ErrUnavailable, err)
	}

	var out []feature.Feature
	for _, f := range feature.All() {
		if t.FeatureEnabled(f) {
			out = append(out, f)
		}
	}
	return out, nil
}
