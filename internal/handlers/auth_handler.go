package handlers

import (
	"github.com/gofiber/fiber/v2"

	"medal-service/internal/models"
	"medal-service/internal/validation"
)

// AuthHandler covers the thin local edge of authentication. Sign-up, sign-in
// and password reset run against the external identity provider; this
// service only mirrors the client-side field validation so the app can fail
// fast with per-field messages before calling the provider.
type AuthHandler struct{}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

// SignUpPrecheck handles POST /auth/precheck.
// @Summary Validate sign-up form fields
// @Description Runs local field validation (email format, password length, confirmation, terms) without contacting the identity provider
// @Tags auth
// @Accept json
// @Success 204 "No Content"
// @Failure 400 {object} map[string]interface{} "Validation failure"
// @Router /auth/precheck [post]
func (h *AuthHandler) SignUpPrecheck(c *fiber.Ctx) error {
	var req models.SignUpPrecheck
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "invalid request format",
		})
	}
	if err := validation.ValidateStruct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
