package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/movie-api/internal/domain"
	apperrors "github.com/spec-kit/movie-api/pkg/util/errorutil"
)

const accountKey = "auth_account"

// Guard gates protected routes behind an ordered chain of strategies.
// The first strategy that authenticates wins. A strategy without credentials
// passes to the next one; any rejection ends the chain with 401.
type Guard struct {
	strategies []Strategy
	logger     *zap.Logger
}

// NewGuard constructs a guard trying strategies in the given order.
func NewGuard(logger *zap.Logger, strategies ...Strategy) *Guard {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Guard{strategies: strategies, logger: logger}
}

// Handle enforces authentication for protected routes.
func (g *Guard) Handle(c *fiber.Ctx) error {
	reason := ErrNoCredentials
	strategy := ""

	for _, s := range g.strategies {
		account, err := s.Authenticate(c)
		if err == nil {
			c.Locals(accountKey, account)
			return c.Next()
		}
		if !errors.Is(err, ErrUnauthenticated) {
			g.logger.Error("authentication failed",
				zap.String("strategy", s.Name()),
				zap.String("path", c.Path()),
				zap.Error(err))
			return apperrors.NewInternalError(err)
		}
		reason, strategy = err, s.Name()
		if !errors.Is(err, ErrNoCredentials) {
			break
		}
	}

	// The client only ever sees a generic message.
	g.logger.Info("request rejected",
		zap.String("strategy", strategy),
		zap.String("path", c.Path()),
		zap.String("reason", reason.Error()))
	return apperrors.NewUnauthorized("unauthorized")
}

// AccountFromContext returns the account attached by Guard.
func AccountFromContext(c *fiber.Ctx) (*domain.Account, bool) {
	account, ok := c.Locals(accountKey).(*domain.Account)
	return account, ok && account != nil
}
