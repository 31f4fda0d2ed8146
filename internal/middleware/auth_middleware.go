package middleware

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/ttravel-backend/internal/service"
	"github.com/sefazor/ttravel-backend/internal/session"
	"go.uber.org/zap"
)

// Authenticator resolves a session token to its live session.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*session.Session, error)
}

// AuthMiddleware lets a request through only when the session cookie names a
// live session. The user id and username are stored in Locals for handlers.
func AuthMiddleware(auth Authenticator, cookieName string, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(cookieName)

		sess, err := auth.Authenticate(c.UserContext(), token)
		if err != nil {
			if !errors.Is(err, service.ErrUnauthenticated) {
				logger.Error("session lookup failed", zap.Error(err), zap.String("path", c.Path()))
			}
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authentication required",
			})
		}

		c.Locals("userID", sess.UserID)
		c.Locals("username", sess.Username)

		return c.Next()
	}
}

// UserID returns the id stored by AuthMiddleware, or "" outside the gate.
func UserID(c *fiber.Ctx) string {
	id, _ := c.Locals("userID").(string)
	return id
}
