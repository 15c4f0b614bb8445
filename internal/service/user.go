package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/docsim/backend/internal/auth"
	"github.com/docsim/backend/internal/config"
	"github.com/docsim/backend/internal/db"
	"github.com/docsim/backend/internal/model"
)

type UserRepo interface {
	CreateUser(ctx context.Context, username, email, passwordHash string) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	GetAllUsers(ctx context.Context) ([]model.User, error)
}

// TokenBlocklist is the revocation store side the service writes to; the
// bearer verifier owns the read side.
type TokenBlocklist interface {
	Add(ctx context.Context, jti string) error
}

// UserService orchestrates signup, login, token refresh, and logout.
type UserService struct {
	repo       UserRepo
	codec      *auth.Codec
	blocklist  TokenBlocklist
	refreshTTL time.Duration
	log        zerolog.Logger
}

func NewUserService(repo UserRepo, codec *auth.Codec, blocklist TokenBlocklist, cfg config.JWTConfig, log zerolog.Logger) *UserService {
	return &UserService{
		repo:       repo,
		codec:      codec,
		blocklist:  blocklist,
		refreshTTL: time.Duration(cfg.RefreshTokenExpiry) * time.Second,
		log:        log,
	}
}

// Signup creates a user, rejecting duplicates on either email or username.
func (s *UserService) Signup(ctx context.Context, req model.UserCreateRequest) (*model.User, error) {
	if _, err := s.repo.GetUserByEmail(ctx, req.Email); err == nil {
		return nil, ErrUserAlreadyExists
	} else if !db.IsNoRows(err) {
		return nil, err
	}

	if _, err := s.repo.GetUserByUsername(ctx, req.Username); err == nil {
		return nil, ErrUserAlreadyExists
	} else if !db.IsNoRows(err) {
		return nil, err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.CreateUser(ctx, req.Username, req.Email, hash)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("email", user.Email).Msg("user created")
	return user, nil
}

// Login verifies the credentials and issues an access/refresh token pair.
// An unknown email and a wrong password are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, email, password string) (*model.LoginResponse, error) {
	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.VerifyPassword(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	snapshot := user.Snapshot()

	accessToken, err := s.codec.Encode(snapshot, 0, false)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.codec.Encode(snapshot, s.refreshTTL, true)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("email", email).Msg("login successful")

	return &model.LoginResponse{
		Message:      "Login successful",
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         snapshot,
	}, nil
}

// Refresh issues a new access token from refresh-kind claims. The claims have
// already passed the bearer verifier; expiry is re-checked against now.
func (s *UserService) Refresh(ctx context.Context, claims *auth.TokenClaims) (string, error) {
	if claims.ExpiresAt == nil || !claims.ExpiresAt.After(time.Now()) {
		return "", auth.ErrInvalidToken
	}
	return s.codec.Encode(claims.User, 0, false)
}

// Logout revokes the presented token by blocklisting its jti. The blocklist
// TTL bounds how long the entry outlives the token itself.
func (s *UserService) Logout(ctx context.Context, claims *auth.TokenClaims) error {
	if err := s.blocklist.Add(ctx, claims.JTI()); err != nil {
		return err
	}
	s.log.Info().Str("email", claims.User.Email).Msg("token revoked")
	return nil
}

// CurrentUser resolves the claims' email against the store for a fresh
// snapshot of the authenticated user.
func (s *UserService) CurrentUser(ctx context.Context, claims *auth.TokenClaims) (*model.User, error) {
	return s.GetByEmail(ctx, claims.User.Email)
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) GetAll(ctx context.Context) ([]model.User, error) {
	return s.repo.GetAllUsers(ctx)
}
