package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/docsim/backend/internal/config"
	"github.com/docsim/backend/internal/model"
)

var (
	// ErrInvalidToken covers every decode failure: malformed input, bad
	// signature, wrong algorithm, expiry. Callers never see which one.
	ErrInvalidToken = errors.New("invalid token")

	ErrMissingCredentials   = errors.New("missing bearer credentials")
	ErrAccessTokenRequired  = errors.New("access token required")
	ErrRefreshTokenRequired = errors.New("refresh token required")

	ErrMisconfigured = errors.New("jwt config invalid")
)

// TokenClaims is the signed payload: {user, exp, jti, refresh}.
type TokenClaims struct {
	User    model.UserSnapshot `json:"user"`
	Refresh bool               `json:"refresh"`
	jwt.RegisteredClaims
}

// JTI returns the unique token identifier used as the revocation key.
func (c *TokenClaims) JTI() string {
	return c.ID
}

// Codec signs and verifies token claim blobs with a shared HMAC secret.
type Codec struct {
	secret    []byte
	method    jwt.SigningMethod
	accessTTL time.Duration
}

func NewCodec(cfg config.JWTConfig) (*Codec, error) {
	if cfg.Secret == "" {
		return nil, fmt.Errorf("%w: JWT_SECRET is required", ErrMisconfigured)
	}

	method := jwt.GetSigningMethod(cfg.Algorithm)
	if method == nil {
		return nil, fmt.Errorf("%w: unknown JWT_ALGORITHM %q", ErrMisconfigured, cfg.Algorithm)
	}
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("%w: JWT_ALGORITHM %q is not an HMAC method", ErrMisconfigured, cfg.Algorithm)
	}

	return &Codec{
		secret:    []byte(cfg.Secret),
		method:    method,
		accessTTL: time.Duration(cfg.AccessTokenExpiry) * time.Second,
	}, nil
}

// Encode signs a fresh token for the user snapshot. A zero ttl falls back to
// the configured access-token expiry. Each call generates a new jti.
func (c *Codec) Encode(user model.UserSnapshot, ttl time.Duration, refresh bool) (string, error) {
	if ttl == 0 {
		ttl = c.accessTTL
	}

	now := time.Now()
	claims := TokenClaims{
		User:    user,
		Refresh: refresh,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	return jwt.NewWithClaims(c.method, claims).SignedString(c.secret)
}

// Decode verifies the signature and expiry and returns the claims. Any
// failure is reported as ErrInvalidToken.
func (c *Codec) Decode(tokenStr string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return c.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
