// Package cache holds the two Redis-backed stores: the jti blocklist used for
// token revocation and the response cache for document listings. Both are
// created at startup and injected; neither is a package-level singleton.
package cache

import (
	"context"
	"fmt"
	"net"

	goredis "github.com/redis/go-redis/v9"

	"github.com/docsim/backend/internal/config"
)

// Redis database numbers. The blocklist and the docs cache live in separate
// logical databases on the same server.
const (
	blocklistDB = 0
	docsCacheDB = 1
)

func newClient(ctx context.Context, cfg config.RedisConfig, db int) (*goredis.Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr: net.JoinHostPort(cfg.Host, cfg.Port),
		DB:   db,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to ping redis db %d: %w", db, err)
	}

	return rdb, nil
}
