package cache

import (
	"context"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/docsim/backend/internal/config"
)

// Blocklist records revoked token identifiers. Entries expire on their own
// after the configured TTL, which bounds blocklist growth to the lifetime of
// the tokens it rejects.
type Blocklist struct {
	rdb *goredis.Client
	ttl time.Duration
}

func NewBlocklist(ctx context.Context, cfg config.RedisConfig, ttlSeconds int) (*Blocklist, error) {
	rdb, err := newClient(ctx, cfg, blocklistDB)
	if err != nil {
		return nil, err
	}
	return &Blocklist{
		rdb: rdb,
		ttl: time.Duration(ttlSeconds) * time.Second,
	}, nil
}

// NewBlocklistWithClient wires an existing client, used by tests.
func NewBlocklistWithClient(rdb *goredis.Client, ttl time.Duration) *Blocklist {
	return &Blocklist{rdb: rdb, ttl: ttl}
}

// Add marks a jti as revoked. Idempotent: re-adding resets the TTL.
func (b *Blocklist) Add(ctx context.Context, jti string) error {
	return b.rdb.Set(ctx, jti, "", b.ttl).Err()
}

// Contains reports whether a jti is currently revoked.
func (b *Blocklist) Contains(ctx context.Context, jti string) (bool, error) {
	n, err := b.rdb.Exists(ctx, jti).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (b *Blocklist) Close() error {
	return b.rdb.Close()
}
