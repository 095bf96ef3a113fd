package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

const medalNotFoundError = "medal not found"

// requestContext derives a per-request context with the configured backend
// timeout. Every handler runs its persistence calls under this deadline.
func requestContext(c *fiber.Ctx, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.UserContext(), timeout)
}
