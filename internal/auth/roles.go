package auth

import (
	"github.com/gofiber/fiber/v2"

	apperrors "github.com/spec-kit/movie-api/pkg/util/errorutil"
)

// RequireSelf allows the request only when the route parameter names the authenticated account.
// It must run after Guard.
func RequireSelf(param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		account, ok := AccountFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized("unauthorized")
		}
		if c.Params(param) != account.Username {
			return apperrors.NewForbidden("you can only modify your own account")
		}
		return c.Next()
	}
}
