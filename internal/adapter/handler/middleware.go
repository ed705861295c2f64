package handler

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/rl1809/pos-backend/internal/core/domain"
	"github.com/rl1809/pos-backend/internal/core/service"
)

// NewAuthMiddleware rejects requests without a live bearer token. The 401
// body is fixed regardless of the requested content type. A token store
// outage is not an expired token; it surfaces as a logged 500.
func NewAuthMiddleware(auth *service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := bearerToken(c)
		if token == "" {
			return unauthenticated(c)
		}
		if _, err := auth.Authenticate(c.Context(), token); err != nil {
			if errors.Is(err, domain.ErrTokenNotFound) {
				return unauthenticated(c)
			}
			return writeError(c, err)
		}
		return c.Next()
	}
}

func bearerToken(c *fiber.Ctx) string {
	const prefix = "Bearer "
	header := c.Get(fiber.HeaderAuthorization)
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}
