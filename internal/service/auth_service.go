package service

import (
	"context"
	"crypto/subtle"
	"time"

	"github.com/spec-kit/equiflow/internal/auth"
	"github.com/spec-kit/equiflow/internal/config"
	"github.com/spec-kit/equiflow/internal/domain"
	"github.com/spec-kit/equiflow/internal/store"
	apperrors "github.com/spec-kit/equiflow/pkg/util"
)

// AuthService implements the session gate: a plaintext password check
// against the user's stored password, falling back to the literal default
// when none is set. This is deliberately not a hardened boundary.
type AuthService struct {
	store    *store.Store
	tokenMgr *auth.TokenManager
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AuthConfig, st *store.Store) *AuthService {
	return &AuthService{
		store:    st,
		tokenMgr: auth.NewTokenManager(cfg.JWTSecret, cfg.AccessTokenTTLMinutes),
	}
}

// Login authenticates the selected user. Unknown user and wrong password
// report the same condition.
func (s *AuthService) Login(_ context.Context, userID, password string) (domain.User, string, time.Time, error) {
	user, ok := s.store.UserByID(userID)
	if !ok {
		return domain.User{}, "", time.Time{}, apperrors.NewInvalidCredentials()
	}
	if subtle.ConstantTimeCompare([]byte(password), []byte(user.EffectivePassword())) != 1 {
		return domain.User{}, "", time.Time{}, apperrors.NewInvalidCredentials()
	}

	token, exp, err := s.tokenMgr.GenerateToken(user)
	if err != nil {
		return domain.User{}, "", time.Time{}, err
	}
	return user, token, exp, nil
}

// ListUsers returns the accounts shown on the login picker.
func (s *AuthService) ListUsers(_ context.Context) []domain.User {
	return s.store.Users()
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
