package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
)

func newTestRedis(t *testing.T) (*goredis.Client, *miniredis.Miniredis) {
	t.Helper()
	mini, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(mini.Close)

	rdb := goredis.NewClient(&goredis.Options{Addr: mini.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return rdb, mini
}

func TestBlocklistAddContains(t *testing.T) {
	rdb, _ := newTestRedis(t)
	blocklist := NewBlocklistWithClient(rdb, time.Hour)
	ctx := context.Background()

	revoked, err := blocklist.Contains(ctx, "jti-1")
	if err != nil {
		t.Fatalf("Contains failed: %v", err)
	}
	if revoked {
		t.Fatal("expected unknown jti to be absent")
	}

	if err := blocklist.Add(ctx, "jti-1"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	revoked, err = blocklist.Contains(ctx, "jti-1")
	if err != nil {
		t.Fatalf("Contains failed: %v", err)
	}
	if !revoked {
		t.Fatal("expected revoked jti to be present immediately")
	}
}

func TestBlocklistAddIdempotent(t *testing.T) {
	rdb, _ := newTestRedis(t)
	blocklist := NewBlocklistWithClient(rdb, time.Hour)
	ctx := context.Background()

	if err := blocklist.Add(ctx, "jti-1"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := blocklist.Add(ctx, "jti-1"); err != nil {
		t.Fatalf("second Add failed: %v", err)
	}

	revoked, _ := blocklist.Contains(ctx, "jti-1")
	if !revoked {
		t.Fatal("expected jti to remain present")
	}
}

func TestBlocklistEntryExpires(t *testing.T) {
	rdb, mini := newTestRedis(t)
	blocklist := NewBlocklistWithClient(rdb, 2*time.Second)
	ctx := context.Background()

	if err := blocklist.Add(ctx, "jti-1"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	revoked, _ := blocklist.Contains(ctx, "jti-1")
	if !revoked {
		t.Fatal("expected jti present before TTL")
	}

	mini.FastForward(3 * time.Second)

	revoked, err := blocklist.Contains(ctx, "jti-1")
	if err != nil {
		t.Fatalf("Contains after TTL failed: %v", err)
	}
	if revoked {
		t.Fatal("expected jti gone after TTL")
	}
}
