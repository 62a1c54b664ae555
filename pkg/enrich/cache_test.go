package enrich

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

func TestCacheKey(t *testing.T) {
	t.Parallel()

	if got := CacheKey(" Eiffel Tower ", "Paris"); got != "eiffel tower|paris" {
		t.Fatalf("CacheKey() = %q", got)
	}
	if CacheKey("Louvre", "Paris") == CacheKey("Louvre", "Abu Dhabi") {
		t.Fatal("hint must be part of the key")
	}
}

func TestCaches(t *testing.T) {
	t.Parallel()

	caches := map[string]Cache{
		"memory": NewMemoryCache(),
		"ttl":    NewTTLCache(time.Minute),
	}
	for name, c := range caches {
		c := c
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			ctx := context.Background()
			if c.Has(ctx, "k") {
				t.Fatal("empty cache reports a key")
			}
			c.Set(ctx, "k", "v")
			if v, ok := c.Get(ctx, "k"); !ok || v != "v" {
				t.Fatalf("Get() = %q, %v", v, ok)
			}
			if !c.Has(ctx, "k") {
				t.Fatal("Has() = false after Set")
			}
		})
	}
}

func TestTTLCacheExpires(t *testing.T) {
	t.Parallel()

	c := NewTTLCache(20 * time.Millisecond)
	c.Set(context.Background(), "k", "v")
	time.Sleep(50 * time.Millisecond)
	if c.Has(context.Background(), "k") {
		t.Fatal("entry should have expired")
	}
}

func TestNoopCache(t *testing.T) {
	t.Parallel()

	var c Cache = NoopCache{}
	c.Set(context.Background(), "k", "v")
	if _, ok := c.Get(context.Background(), "k"); ok {
		t.Fatal("noop cache returned a value")
	}
}

func TestRedisCacheUnreachableIsMiss(t *testing.T) {
	t.Parallel()

	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	c := NewRedisCache(client, "test:", time.Minute)
	ctx := context.Background()
	c.Set(ctx, "k", "v")
	if _, ok := c.Get(ctx, "k"); ok {
		t.Fatal("unreachable redis should read as a miss")
	}
	if c.Has(ctx, "k") {
		t.Fatal("unreachable redis should not report keys")
	}
}
