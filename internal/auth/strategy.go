package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/movie-api/internal/domain"
)

// Strategy authenticates a request from one kind of credential.
// It returns ErrNoCredentials when its credential is absent from the request.
type Strategy interface {
	Name() string
	Authenticate(c *fiber.Ctx) (*domain.Account, error)
}

// LocalStrategy authenticates with a username and password sent in the request.
type LocalStrategy struct {
	verifier *PasswordVerifier
}

// NewLocalStrategy returns a new LocalStrategy.
func NewLocalStrategy(verifier *PasswordVerifier) *LocalStrategy {
	return &LocalStrategy{verifier: verifier}
}

func (s *LocalStrategy) Name() string { return "local" }

func (s *LocalStrategy) Authenticate(c *fiber.Ctx) (*domain.Account, error) {
	cred, err := CredentialFromRequest(c)
	if err != nil {
		return nil, err
	}
	return s.verifier.Verify(c.UserContext(), cred)
}

// CredentialFromRequest reads Username and Password from a JSON or form body.
// The query string is never read.
func CredentialFromRequest(c *fiber.Ctx) (Credential, error) {
	var cred Credential
	if len(c.Body()) == 0 {
		return cred, nil
	}
	if err := c.BodyParser(&cred); err != nil {
		return Credential{}, ErrNoCredentials
	}
	return cred, nil
}

// BearerStrategy reads a token from "Authorization: Bearer <token>".
type BearerStrategy struct {
	verifier *TokenVerifier
}

// NewBearerStrategy returns a new BearerStrategy.
func NewBearerStrategy(verifier *TokenVerifier) *BearerStrategy {
	return &BearerStrategy{verifier: verifier}
}

func (s *BearerStrategy) Name() string { return "bearer" }

func (s *BearerStrategy) Authenticate(c *fiber.Ctx) (*domain.Account, error) {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" {
		return nil, ErrNoCredentials
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return nil, ErrMalformedHeader
	}
	return s.verifier.Verify(c.UserContext(), strings.TrimSpace(parts[1]))
}
