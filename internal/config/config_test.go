package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.JWT.Algorithm == "" {
		t.Fatal("expected default JWT algorithm")
	}
	if cfg.JWT.AccessTokenExpiry != 3600 {
		t.Fatalf("expected default access expiry 3600, got %d", cfg.JWT.AccessTokenExpiry)
	}
	if cfg.JWT.RefreshTokenExpiry != 3600*24*2 {
		t.Fatalf("expected default refresh expiry 172800, got %d", cfg.JWT.RefreshTokenExpiry)
	}
	if cfg.Cache.JTITokenExpiry != 3600 {
		t.Fatalf("expected default blocklist TTL 3600, got %d", cfg.Cache.JTITokenExpiry)
	}
	if cfg.Cache.DocsCacheExpiry != 60 {
		t.Fatalf("expected default docs cache TTL 60, got %d", cfg.Cache.DocsCacheExpiry)
	}
	if cfg.Postgres.Host == "" || cfg.Postgres.Port == "" {
		t.Fatal("expected postgres host/port defaults")
	}
	if cfg.Redis.Host == "" || cfg.Redis.Port == "" {
		t.Fatal("expected redis host/port defaults")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_EXPIRY", "120")
	t.Setenv("DOCS_CACHE_EXPIRY", "5")
	t.Setenv("JWT_ALGORITHM", "HS512")

	cfg := Load()
	if cfg.JWT.AccessTokenExpiry != 120 {
		t.Fatalf("expected access expiry override, got %d", cfg.JWT.AccessTokenExpiry)
	}
	if cfg.Cache.DocsCacheExpiry != 5 {
		t.Fatalf("expected docs cache TTL override, got %d", cfg.Cache.DocsCacheExpiry)
	}
	if cfg.JWT.Algorithm != "HS512" {
		t.Fatalf("expected algorithm override, got %q", cfg.JWT.Algorithm)
	}
}

func TestLoadIgnoresBadIntegers(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_EXPIRY", "not-a-number")

	cfg := Load()
	if cfg.JWT.AccessTokenExpiry != 3600 {
		t.Fatalf("expected fallback on bad integer, got %d", cfg.JWT.AccessTokenExpiry)
	}
}
