package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/docsim/backend/internal/auth"
)

const tokenClaimsKey = "token_claims"

// TokenKind selects which bearer variant a route accepts.
type TokenKind int

const (
	AccessToken TokenKind = iota
	RefreshToken
)

// RevocationChecker is the read side of the jti blocklist.
type RevocationChecker interface {
	Contains(ctx context.Context, jti string) (bool, error)
}

// TokenBearer gates a route on a bearer token of the given kind. Steps run in
// order: extract credentials, decode, revocation check, kind check. Any
// failure aborts with 401 before the handler runs.
func TokenBearer(kind TokenKind, codec *auth.Codec, blocklist RevocationChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			abortUnauthorized(c, auth.ErrMissingCredentials)
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		if token == "" {
			abortUnauthorized(c, auth.ErrMissingCredentials)
			return
		}

		claims, err := codec.Decode(token)
		if err != nil {
			abortUnauthorized(c, auth.ErrInvalidToken)
			return
		}

		revoked, err := blocklist.Contains(c.Request.Context(), claims.JTI())
		if err != nil || revoked {
			abortUnauthorized(c, auth.ErrInvalidToken)
			return
		}

		switch kind {
		case AccessToken:
			if claims.Refresh {
				abortUnauthorized(c, auth.ErrAccessTokenRequired)
				return
			}
		case RefreshToken:
			if !claims.Refresh {
				abortUnauthorized(c, auth.ErrRefreshTokenRequired)
				return
			}
		}

		c.Set(tokenClaimsKey, claims)
		c.Next()
	}
}

// GetTokenClaims returns the verified claims set by TokenBearer, or nil on an
// unguarded route.
func GetTokenClaims(c *gin.Context) *auth.TokenClaims {
	if value, ok := c.Get(tokenClaimsKey); ok {
		if claims, ok := value.(*auth.TokenClaims); ok {
			return claims
		}
	}
	return nil
}

// RequestLogger logs method, path, status, and latency for every request.
func RequestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Str("client", c.ClientIP()).
			Msg("request")
	}
}

// CORSMiddleware allows cross-origin requests from any origin.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")

		if c.Request.Method == http.MethodOptions {
			c.Status(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
