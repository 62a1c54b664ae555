package enrich

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
)

// Cache stores enrichment results keyed by CacheKey. Implementations must be
// safe for concurrent use.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string)
	Has(ctx context.Context, key string) bool
}

// CacheKey is the lowercased "place|hint" pair.
func CacheKey(placeName, destinationHint string) string {
	return strings.ToLower(strings.TrimSpace(placeName) + "|" + strings.TrimSpace(destinationHint))
}

// MemoryCache never evicts. It lives as long as the process.
type MemoryCache struct {
	mu    sync.RWMutex
	store map[string]string
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{store: make(map[string]string)}
}

func (c *MemoryCache) Get(_ context.Context, key string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.store[key]
	return v, ok
}

func (c *MemoryCache) Set(_ context.Context, key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store[key] = value
}

func (c *MemoryCache) Has(ctx context.Context, key string) bool {
	_, ok := c.Get(ctx, key)
	return ok
}

// NoopCache disables caching.
type NoopCache struct{}

func (NoopCache) Get(context.Context, string) (string, bool) { return "", false }
func (NoopCache) Set(context.Context, string, string)        {}
func (NoopCache) Has(context.Context, string) bool           { return false }

// TTLCache expires entries after a fixed duration.
type TTLCache struct {
	c *cache.Cache
}

func NewTTLCache(ttl time.Duration) *TTLCache {
	cleanup := ttl
	if cleanup > time.Hour {
		cleanup = time.Hour
	}
	return &TTLCache{c: cache.New(ttl, cleanup)}
}

func (t *TTLCache) Get(_ context.Context, key string) (string, bool) {
	v, ok := t.c.Get(key)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

func (t *TTLCache) Set(_ context.Context, key, value string) {
	t.c.Set(key, value, cache.DefaultExpiration)
}

func (t *TTLCache) Has(ctx context.Context, key string) bool {
	_, ok := t.Get(ctx, key)
	return ok
}

// RedisCache shares entries between instances. Redis errors read as misses.
type RedisCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func NewRedisCache(client *redis.Client, prefix string, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, prefix: prefix, ttl: ttl}
}

func (r *RedisCache) Get(ctx context.Context, key string) (string, bool) {
	v, err := r.client.Get(ctx, r.prefix+key).Result()
	if err != nil {
		return "", false
	}
	return v, true
}

func (r *RedisCache) Set(ctx context.Context, key, value string) {
	_ = r.client.Set(ctx, r.prefix+key, value, r.ttl).Err()
}

func (r *RedisCache) Has(ctx context.Context, key string) bool {
	n, err := r.client.Exists(ctx, r.prefix+key).Result()
	return err == nil && n > 0
}
