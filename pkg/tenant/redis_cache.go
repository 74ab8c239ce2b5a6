package tenant

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCacheConfig configures the Redis-backed tenant cache.
// Fields can be populated from environment variables via
// github.com/caarlos0/env.
type RedisCacheConfig struct {
	KeyPrefix string `env:"TENANT_CACHE_PREFIX" envDefault:"tenant:"`
}

// redisCache is a Cache implementation backed by Redis. Tenants are
// stored as JSON values under a configurable key prefix. All Redis
// failures degrade to cache misses.
type redisCache struct {
	client *redis.Client
	prefix string
}

// NewRedisCache creates a tenant cache on top of an existing Redis client.
func NewRedisCache(client *redis.Client, cfg RedisCacheConfig) Cache {
	prefix := cfg.KeyPrefix
	if prefix == "" {
		prefix = "tenant:"
	}
	return &redisCache{client: client, prefix: prefix}
}

func (c *redisCache) Get(ctx context.Context, key string) (*Tenant, bool) {
	data, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if err != nil {
		return nil, false
	}

	var t Tenant
	if err := json.Unmarshal(data, &t); err != nil {
		// A corrupt entry is useless; drop it so the next lookup repopulates.
		c.client.Del(ctx, c.prefix+key)
		return nil, false
	}
	return &t, true
}

func (c *redisCache) Set(ctx context.Context, key string, tenant *Tenant, ttl time.Duration) {
	if tenant == nil {
		return
	}

	data, err := json.Marshal(tenant)
	if err != nil {
		return
	}
	c.client.Set(ctx, c.prefix+key, data, ttl)
}

func (c *redisCache) Delete(ctx context.Context, key string) {
	c.client.Del(ctx, c.prefix+key)
}

// Close is a no-op: the Redis client is owned by the caller.
func (c *redisCache) Close() error {
	return nil
}
