package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"medal-service/internal/auth"
	"medal-service/internal/models"
	"medal-service/internal/prefs"
	"medal-service/internal/validation"
)

// PreferenceHandler defines handlers for the per-user app preference store.
type PreferenceHandler struct {
	Store   *prefs.Store
	Log     *zap.SugaredLogger
	Timeout time.Duration
}

// NewPreferenceHandler creates a new PreferenceHandler.
func NewPreferenceHandler(store *prefs.Store, log *zap.SugaredLogger, timeout time.Duration) *PreferenceHandler {
	return &PreferenceHandler{Store: store, Log: log, Timeout: timeout}
}

// GetPreferences handles GET /preferences.
// @Summary Get app preferences
// @Description Returns the user's saved app mode and last map viewport
// @Tags preferences
// @Produce json
// @Success 200 {object} models.Preferences "Preferences"
// @Router /preferences [get]
func (h *PreferenceHandler) GetPreferences(c *fiber.Ctx) error {
	session := auth.SessionFrom(c)
	ctx, cancel := requestContext(c, h.Timeout)
	defer cancel()

	return c.JSON(models.Preferences{
		AppMode:  h.Store.GetMode(ctx, session.UserID),
		Viewport: h.Store.GetViewport(ctx, session.UserID),
	})
}

// SavePreferences handles PUT /preferences. Persistence is best-effort: the
// store logs failures and the endpoint still returns success, because a lost
// preference only degrades UX.
// @Summary Save app preferences
// @Description Stores the user's app mode and/or last map viewport
// @Tags preferences
// @Accept json
// @Param request body models.Preferences true "Preferences"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Router /preferences [put]
func (h *PreferenceHandler) SavePreferences(c *fiber.Ctx) error {
	var req models.Preferences
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

	session := auth.SessionFrom(c)
	ctx, cancel := requestContext(c, h.Timeout)
	defer cancel()

	if req.AppMode != "" {
		h.Store.SaveMode(ctx, session.UserID, req.AppMode)
	}
	if req.Viewport != nil {
		h.Store.SaveViewport(ctx, session.UserID, req.Viewport)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
