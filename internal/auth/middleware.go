package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

const sessionKey = "session"

// Middleware returns a Fiber handler that rejects requests without a valid
// bearer token and stores the resulting Session in the request locals.
func Middleware(verifier *Verifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": true, "message": "missing bearer token",
			})
		}

		session, err := verifier.VerifyToken(tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": true, "message": err.Error(),
			})
		}

		c.Locals(sessionKey, session)
		return c.Next()
	}
}

// SessionFrom retrieves the Session stored by Middleware. It returns nil on
// routes that never passed through the middleware.
func SessionFrom(c *fiber.Ctx) *Session {
	session, _ := c.Locals(sessionKey).(*Session)
	return session
}
