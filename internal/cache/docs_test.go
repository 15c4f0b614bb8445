package cache

import (
	"context"
	"testing"
	"time"
)

func TestDocsCachePutGet(t *testing.T) {
	rdb, _ := newTestRedis(t)
	docsCache := NewDocsCacheWithClient(rdb, time.Minute)
	ctx := context.Background()

	hit, err := docsCache.Exists(ctx, AllDocsKey)
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if hit {
		t.Fatal("expected empty cache")
	}

	if _, err := docsCache.Get(ctx, AllDocsKey); err != ErrCacheMiss {
		t.Fatalf("expected ErrCacheMiss, got %v", err)
	}

	payload := `[{"id":1,"title":"t","created":"2021-01-01T00:00:00Z"}]`
	if err := docsCache.Put(ctx, AllDocsKey, payload); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	hit, _ = docsCache.Exists(ctx, AllDocsKey)
	if !hit {
		t.Fatal("expected key after Put")
	}

	got, err := docsCache.Get(ctx, AllDocsKey)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != payload {
		t.Fatalf("expected cached value byte-identical, got %q", got)
	}
}

func TestDocsCacheOverwrite(t *testing.T) {
	rdb, _ := newTestRedis(t)
	docsCache := NewDocsCacheWithClient(rdb, time.Minute)
	ctx := context.Background()

	docsCache.Put(ctx, AllDocsKey, "first")
	docsCache.Put(ctx, AllDocsKey, "second")

	got, _ := docsCache.Get(ctx, AllDocsKey)
	if got != "second" {
		t.Fatalf("expected overwrite, got %q", got)
	}
}

func TestDocsCacheEntryExpires(t *testing.T) {
	rdb, mini := newTestRedis(t)
	docsCache := NewDocsCacheWithClient(rdb, 60*time.Second)
	ctx := context.Background()

	if err := docsCache.Put(ctx, AllDocsKey, "[]"); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	mini.FastForward(61 * time.Second)

	hit, err := docsCache.Exists(ctx, AllDocsKey)
	if err != nil {
		t.Fatalf("Exists after TTL failed: %v", err)
	}
	if hit {
		t.Fatal("expected key gone after TTL")
	}
	if _, err := docsCache.Get(ctx, AllDocsKey); err != ErrCacheMiss {
		t.Fatalf("expected ErrCacheMiss after TTL, got %v", err)
	}
}
