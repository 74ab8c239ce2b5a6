package tenant_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schoolkit/schoolkit/pkg/feature"
	"github.com/schoolkit/schoolkit/pkg/tenant"
)

func TestInMemoryCache(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("set and get", func(t *testing.T) {
		t.Parallel()
		cache := tenant.NewInMemoryCache()
		defer cache.Close()

		cache.Set(ctx, "school_a", &tenant.Tenant{ID: "school_a", Name: "Greenwood Academy"}, time.Minute)

		got, ok := cache.Get(ctx, "school_a")
		require.True(t, ok)
		assert.Equal(t, "Greenwood Academy", got.Name)
	})

	t.Run("miss on unknown key", func(t *testing.T) {
		t.Parallel()
		cache := tenant.NewInMemoryCache()
		defer cache.Close()

		_, ok := cache.Get(ctx, "school_z")
		assert.False(t, ok)
	})

	t.Run("expired entry is a miss", func(t *testing.T) {
		t.Parallel()
		cache := tenant.NewInMemoryCache()
		defer cache.Close()

		cache.Set(ctx, "school_a", &tenant.Tenant{ID: "school_a"}, -time.Second)

		_, ok := cache.Get(ctx, "school_a")
		assert.False(t, ok)
	})

	t.Run("delete removes entry", func(t *testing.T) {
		t.Parallel()
		cache := tenant.NewInMemoryCache()
		defer cache.Close()

		cache.Set(ctx, "school_a", &tenant.Tenant{ID: "school_a"}, time.Minute)
		cache.Delete(ctx, "school_a")

		_, ok := cache.Get(ctx, "school_a")
		assert.False(t, ok)
	})

	t.Run("evicts least recently used at capacity", func(t *testing.T) {
		t.Parallel()
		cache := tenant.NewInMemoryCacheWithSize(2)
		defer cache.Close()

		cache.Set(ctx, "a", &tenant.Tenant{ID: "a"}, time.Minute)
		cache.Set(ctx, "b", &tenant.Tenant{ID: "b"}, time.Minute)

		// Touch "a" so "b" becomes the eviction candidate.
		_, ok := cache.Get(ctx, "a")
		require.True(t, ok)

		cache.Set(ctx, "c", &tenant.Tenant{ID: "c"}, time.Minute)

		_, ok = cache.Get(ctx, "b")
		assert.False(t, ok)
		_, ok = cache.Get(ctx, "a")
		assert.True(t, ok)
		_, ok = cache.Get(ctx, "c")
		assert.True(t, ok)
	})

	t.Run("cached value is isolated from callers", func(t *testing.T) {
		t.Parallel()
		cache := tenant.NewInMemoryCache()
		defer cache.Close()

		original := &tenant.Tenant{
			ID:       "school_a",
			Features: map[feature.Feature]bool{feature.FeeManagement: true},
		}
		cache.Set(ctx, "school_a", original, time.Minute)
		original.Features[feature.FeeManagement] = false

		got, ok := cache.Get(ctx, "school_a")
		require.True(t, ok)
		assert.True(t, got.FeatureEnabled(feature.FeeManagement))

		got.Features[feature.FeeManagement] = false
		again, ok := cache.Get(ctx, "school_a")
		require.True(t, ok)
		assert.True(t, again.FeatureEnabled(feature.FeeManagement))
	})

	t.Run("close is idempotent", func(t *testing.T) {
		t.Parallel()
		cache := tenant.NewInMemoryCache()
		require.NoError(t, cache.Close())
		require.NoError(t, cache.Close())
	})
}

func TestNoOpCache(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cache := tenant.NewNoOpCache()

	cache.Set(ctx, "school_a", &tenant.Tenant{ID: "school_a"}, time.Minute)
	_, ok := cache.Get(ctx, "school_a")
	assert.False(t, ok)
	assert.NoError(t, cache.Close())
}

func TestCachedProvider(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("populates cache on miss", func(t *testing.T) {
		t.Parallel()
		underlying, err := tenant.NewInMemProvider(testTenants())
		require.NoError(t, err)
		cache := tenant.NewInMemoryCache()
		defer cache.Close()
		provider := tenant.NewCachedProvider(underlying, cache, time.Minute)

		got, err := provider.GetByID(ctx, "school_a")
		require.NoError(t, err)
		assert.Equal(t, "Greenwood Academy", got.Name)

		cached, ok := cache.Get(ctx, "school_a")
		require.True(t, ok)
		assert.Equal(t, "Greenwood Academy", cached.Name)
	})

	t.Run("serves from cache", func(t *testing.T) {
		t.Parallel()
		counting := &countingProvider{}
		cache := tenant.NewInMemoryCache()
		defer cache.Close()
		provider := tenant.NewCachedProvider(counting, cache, time.Minute)

		_, err := provider.GetByID(ctx, "school_a")
		require.NoError(t, err)
		_, err = provider.GetByID(ctx, "school_a")
		require.NoError(t, err)

		assert.Equal(t, 1, counting.calls)
	})

	t.Run("not-found is not cached", func(t *testing.T) {
		t.Parallel()
		underlying, err := tenant.NewInMemProvider(testTenants())
		require.NoError(t, err)
		cache := tenant.NewInMemoryCache()
		defer cache.Close()
		provider := tenant.NewCachedProvider(underlying, cache, time.Minute)

		_, err = provider.GetByID(ctx, "school_z")
		assert.ErrorIs(t, err, tenant.ErrTenantNotFound)

		_, ok := cache.Get(ctx, "school_z")
		assert.False(t, ok)
	})
}

type countingProvider struct {
	calls int
}

func (p *countingProvider) GetByID(ctx context.Context, id string) (*tenant.Tenant, error) {
	p.calls++
	return &tenant.Tenant{ID: id, Name: "Counted"}, nil
}
