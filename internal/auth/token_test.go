package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/docsim/backend/internal/config"
	"github.com/docsim/backend/internal/model"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:             "test-secret",
		Algorithm:          "HS256",
		AccessTokenExpiry:  3600,
		RefreshTokenExpiry: 3600 * 24 * 2,
	}
}

func testSnapshot() model.UserSnapshot {
	return model.UserSnapshot{ID: 1, Username: "john", Email: "a@b.com"}
}

func TestCodecRoundTrip(t *testing.T) {
	codec, err := NewCodec(testJWTConfig())
	if err != nil {
		t.Fatalf("NewCodec failed: %v", err)
	}

	token, err := codec.Encode(testSnapshot(), 0, false)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}
	if strings.Count(token, ".") != 2 {
		t.Fatalf("expected three-part token, got %q", token)
	}

	claims, err := codec.Decode(token)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if claims.User != testSnapshot() {
		t.Fatalf("expected user snapshot round-trip, got %+v", claims.User)
	}
	if claims.Refresh {
		t.Fatal("expected refresh=false")
	}
	if claims.JTI() == "" {
		t.Fatal("expected non-empty jti")
	}
	if claims.ExpiresAt == nil || !claims.ExpiresAt.After(time.Now()) {
		t.Fatal("expected future expiry")
	}
}

func TestCodecRefreshFlag(t *testing.T) {
	codec, _ := NewCodec(testJWTConfig())

	token, err := codec.Encode(testSnapshot(), time.Hour, true)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	claims, err := codec.Decode(token)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !claims.Refresh {
		t.Fatal("expected refresh=true")
	}
}

func TestCodecFreshJTIPerToken(t *testing.T) {
	codec, _ := NewCodec(testJWTConfig())

	first, _ := codec.Encode(testSnapshot(), 0, false)
	second, _ := codec.Encode(testSnapshot(), 0, false)
	if first == second {
		t.Fatal("expected distinct tokens per issuance")
	}

	firstClaims, _ := codec.Decode(first)
	secondClaims, _ := codec.Decode(second)
	if firstClaims.JTI() == secondClaims.JTI() {
		t.Fatal("expected distinct jti per issuance")
	}
}

func TestCodecRejectsExpired(t *testing.T) {
	codec, _ := NewCodec(testJWTConfig())

	token, err := codec.Encode(testSnapshot(), -time.Minute, false)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	if _, err := codec.Decode(token); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestCodecRejectsWrongSecret(t *testing.T) {
	codec, _ := NewCodec(testJWTConfig())

	other := testJWTConfig()
	other.Secret = "different-secret"
	otherCodec, _ := NewCodec(other)

	token, _ := codec.Encode(testSnapshot(), 0, false)
	if _, err := otherCodec.Decode(token); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for wrong secret, got %v", err)
	}
}

func TestCodecRejectsGarbage(t *testing.T) {
	codec, _ := NewCodec(testJWTConfig())

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := codec.Decode(token); err != ErrInvalidToken {
			t.Fatalf("expected ErrInvalidToken for %q, got %v", token, err)
		}
	}
}

func TestCodecRejectsTampered(t *testing.T) {
	codec, _ := NewCodec(testJWTConfig())

	token, _ := codec.Encode(testSnapshot(), 0, false)
	parts := strings.Split(token, ".")
	tampered := parts[0] + "." + parts[1] + "x." + parts[2]
	if _, err := codec.Decode(tampered); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for tampered payload, got %v", err)
	}
}

func TestNewCodecConfigValidation(t *testing.T) {
	cfg := testJWTConfig()
	cfg.Secret = ""
	if _, err := NewCodec(cfg); err == nil {
		t.Fatal("expected error for missing secret")
	}

	cfg = testJWTConfig()
	cfg.Algorithm = "RS256"
	if _, err := NewCodec(cfg); err == nil {
		t.Fatal("expected error for non-HMAC algorithm")
	}

	cfg = testJWTConfig()
	cfg.Algorithm = "bogus"
	if _, err := NewCodec(cfg); err == nil {
		t.Fatal("expected error for unknown algorithm")
	}
}
