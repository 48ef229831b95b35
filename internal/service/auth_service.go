package service

import (
	"context"
	"time"

	"github.com/spec-kit/movie-api/internal/auth"
	"github.com/spec-kit/movie-api/internal/config"
	"github.com/spec-kit/movie-api/internal/domain"
	"github.com/spec-kit/movie-api/internal/repository"
)

// AuthService coordinates login and token verification.
type AuthService struct {
	tokenMgr  *auth.TokenManager
	passwords *auth.PasswordVerifier
	bearer    *auth.TokenVerifier
}

// NewAuthService builds the service. The signing secret comes from cfg.
func NewAuthService(cfg config.AuthConfig, accounts repository.AccountRepository) *AuthService {
	tokenMgr := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL())
	return &AuthService{
		tokenMgr:  tokenMgr,
		passwords: auth.NewPasswordVerifier(accounts),
		bearer:    auth.NewTokenVerifier(tokenMgr, accounts),
	}
}

// Login verifies the credential and issues an access token for the account.
// Rejections wrap auth.ErrUnauthenticated; anything else is a store failure.
func (s *AuthService) Login(ctx context.Context, cred auth.Credential) (*domain.Account, string, time.Time, error) {
	account, err := s.passwords.Verify(ctx, cred)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	token, exp, err := s.IssueToken(account)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return account, token, exp, nil
}

// IssueToken signs an access token for an already authenticated account.
func (s *AuthService) IssueToken(account *domain.Account) (string, time.Time, error) {
	return s.tokenMgr.GenerateToken(account)
}

// LocalStrategy authenticates requests carrying Username and Password. Only POST /login uses it.
func (s *AuthService) LocalStrategy() auth.Strategy {
	return auth.NewLocalStrategy(s.passwords)
}

// BearerStrategy authenticates requests carrying an access token. It guards every protected route.
func (s *AuthService) BearerStrategy() auth.Strategy {
	return auth.NewBearerStrategy(s.bearer)
}

// TokenManager exposes the underlying token manager.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
