package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/movie-api/internal/domain"
)

// Credential is a username and plaintext password submitted at login.
type Credential struct {
	Username string `json:"Username" form:"Username"`
	Password string `json:"Password" form:"Password"`
}

// AccountStore is the read access the verifiers need. Absent accounts are reported as pgx.ErrNoRows.
type AccountStore interface {
	GetByUsername(ctx context.Context, username string) (*domain.Account, error)
	GetByID(ctx context.Context, id string) (*domain.Account, error)
}

// PasswordVerifier checks a Credential against the stored bcrypt hash.
type PasswordVerifier struct {
	accounts AccountStore
}

// NewPasswordVerifier returns a new PasswordVerifier.
func NewPasswordVerifier(accounts AccountStore) *PasswordVerifier {
	return &PasswordVerifier{accounts: accounts}
}

// Verify returns the account identified by cred. Rejections wrap ErrUnauthenticated;
// store failures are returned as they are.
func (v *PasswordVerifier) Verify(ctx context.Context, cred Credential) (*domain.Account, error) {
	if cred.Username == "" || cred.Password == "" {
		return nil, ErrNoCredentials
	}

	account, err := v.accounts.GetByUsername(ctx, cred.Username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrIncorrectUsername
		}
		return nil, fmt.Errorf("lookup account %q: %w", cred.Username, err)
	}

	if err := ComparePassword(account.PasswordHash, cred.Password); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, ErrIncorrectPassword
		}
		return nil, fmt.Errorf("compare password: %w", err)
	}
	return account, nil
}

// TokenVerifier resolves a bearer token to the account it was issued for.
type TokenVerifier struct {
	tokens   *TokenManager
	accounts AccountStore
}

// NewTokenVerifier returns a new TokenVerifier.
func NewTokenVerifier(tokens *TokenManager, accounts AccountStore) *TokenVerifier {
	return &TokenVerifier{tokens: tokens, accounts: accounts}
}

// Verify parses the token and loads its account. It has no side effects.
func (v *TokenVerifier) Verify(ctx context.Context, token string) (*domain.Account, error) {
	claims, err := v.tokens.ParseToken(token)
	if err != nil {
		return nil, err
	}

	account, err := v.accounts.GetByID(ctx, claims.AccountID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("lookup account %s: %w", claims.AccountID, err)
	}
	return account, nil
}
