package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/movie-api/internal/api/dto"
	"github.com/spec-kit/movie-api/internal/auth"
	"github.com/spec-kit/movie-api/internal/service"
	apperrors "github.com/spec-kit/movie-api/pkg/util/errorutil"
)

// AuthHandler exposes the login endpoint.
type AuthHandler struct {
	auth   *service.AuthService
	local  auth.Strategy
	logger *zap.Logger
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{auth: authService, local: authService.LocalStrategy(), logger: logger}
}

// Login handles POST /login. Every rejection gets the same 400 body; the reason is only logged.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	account, err := h.local.Authenticate(c)
	if err == nil {
		token, _, tokenErr := h.auth.IssueToken(account)
		if tokenErr == nil {
			return c.JSON(dto.LoginResponse{User: dto.NewAccountResponse(account), Token: token})
		}
		err = tokenErr
	}

	if !errors.Is(err, auth.ErrUnauthenticated) {
		h.logger.Error("login failed", zap.Error(err))
		return apperrors.NewInternalError(err)
	}
	h.logger.Info("login rejected", zap.String("strategy", h.local.Name()), zap.String("reason", err.Error()))
	return c.Status(http.StatusBadRequest).JSON(dto.LoginFailure{Message: dto.LoginFailureMessage, User: false})
}
