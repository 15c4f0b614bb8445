package cache

import (
	"context"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/docsim/backend/internal/config"
)

// Key for the full document listing.
const AllDocsKey = "all_docs"

// ErrCacheMiss is returned by Get when the key is absent or expired.
var ErrCacheMiss = errors.New("cache miss")

// DocsCache stores serialized listing results as text with a TTL. It is never
// purged on document writes; staleness is bounded by the TTL alone.
type DocsCache struct {
	rdb *goredis.Client
	ttl time.Duration
}

func NewDocsCache(ctx context.Context, cfg config.RedisConfig, ttlSeconds int) (*DocsCache, error) {
	rdb, err := newClient(ctx, cfg, docsCacheDB)
	if err != nil {
		return nil, err
	}
	return &DocsCache{
		rdb: rdb,
		ttl: time.Duration(ttlSeconds) * time.Second,
	}, nil
}

// NewDocsCacheWithClient wires an existing client, used by tests.
func NewDocsCacheWithClient(rdb *goredis.Client, ttl time.Duration) *DocsCache {
	return &DocsCache{rdb: rdb, ttl: ttl}
}

func (c *DocsCache) Put(ctx context.Context, key, value string) error {
	return c.rdb.Set(ctx, key, value, c.ttl).Err()
}

func (c *DocsCache) Exists(ctx context.Context, key string) (bool, error) {
	n, err := c.rdb.Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (c *DocsCache) Get(ctx context.Context, key string) (string, error) {
	val, err := c.rdb.Get(ctx, key).Result()
	if err == goredis.Nil {
		return "", ErrCacheMiss
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

func (c *DocsCache) Close() error {
	return c.rdb.Close()
}
