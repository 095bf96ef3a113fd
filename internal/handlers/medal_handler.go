package handlers

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"medal-service/internal/auth"
	"medal-service/internal/cache"
	"medal-service/internal/metrics"
	"medal-service/internal/models"
	"medal-service/internal/services"
	"medal-service/internal/validation"
)

// MedalHandler defines handlers for registering, searching and deleting medals.
type MedalHandler struct {
	Service *services.MedalService
	Cache   *cache.SearchCache
	Metrics *metrics.Metrics
	Log     *zap.SugaredLogger

	DefaultRadiusKm float64
	Timeout         time.Duration
}

// NewMedalHandler creates a new MedalHandler.
func NewMedalHandler(service *services.MedalService, searchCache *cache.SearchCache, m *metrics.Metrics, log *zap.SugaredLogger, defaultRadiusKm float64, timeout time.Duration) *MedalHandler {
	return &MedalHandler{
		Service:         service,
		Cache:           searchCache,
		Metrics:         m,
		Log:             log,
		DefaultRadiusKm: defaultRadiusKm,
		Timeout:         timeout,
	}
}

// RegisterMedal handles POST /medals to place a new medal at the caller's position.
// @Summary Register a medal
// @Description Places a new medal at the given coordinates for the authenticated user
// @Tags medals
// @Accept json
// @Produce json
// @Param request body models.RegisterMedalRequest true "Medal position"
// @Success 201 {object} models.Medal "Registered medal"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 412 {object} map[string]interface{} "GPS accuracy too low"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /medals [post]
func (h *MedalHandler) RegisterMedal(c *fiber.Ctx) error {
	var req models.RegisterMedalRequest
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

	medal, err := h.Service.Register(ctx, session.UserID, req.Latitude, req.Longitude, req.Accuracy, req.Force)
	if err != nil {
		if errors.Is(err, services.ErrPoorAccuracy) {
			return c.Status(fiber.StatusPreconditionFailed).JSON(fiber.Map{
				"error": true, "message": err.Error(),
			})
		}
		h.Log.Errorw("register medal failed", "user_id", session.UserID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": true, "message": "registration failed, please try again",
		})
	}

	h.Metrics.IncMedalsRegistered()
	return c.Status(fiber.StatusCreated).JSON(medal)
}

// SearchMedals handles GET /medals to retrieve medals around a center point.
// @Summary Search medals within a radius
// @Description Returns non-deleted medals inside the bounding box of the given radius (superset of the true circle)
// @Tags medals
// @Produce json
// @Param lat query number true "Center latitude"
// @Param lon query number true "Center longitude"
// @Param radius_km query number false "Radius in kilometers (default 5)"
// @Success 200 {array} models.Medal "Medals within the bounding box"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /medals [get]
func (h *MedalHandler) SearchMedals(c *fiber.Ctx) error {
	var req models.SearchMedalsRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "invalid query parameters",
		})
	}
	if err := validation.ValidateStruct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": err.Error(),
		})
	}
	if req.RadiusKm <= 0 {
		req.RadiusKm = h.DefaultRadiusKm
	}

	ctx, cancel := requestContext(c, h.Timeout)
	defer cancel()

	key := cache.Key(req.Latitude, req.Longitude, req.RadiusKm)
	if medals, ok := h.Cache.Get(ctx, key); ok {
		return c.JSON(medals)
	}

	medals, err := h.Service.SearchWithinRadius(ctx, req.Latitude, req.Longitude, req.RadiusKm)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": true, "message": "failed to load medals",
		})
	}
	if medals == nil {
		medals = []models.Medal{}
	}

	h.Cache.Store(ctx, key, medals)
	h.Metrics.ObserveSearch(len(medals))
	return c.JSON(medals)
}

// ListMyMedals handles GET /medals/mine to list the caller's own medals.
// @Summary List own medals
// @Description Returns the authenticated user's non-deleted medals, newest first
// @Tags medals
// @Produce json
// @Success 200 {array} models.Medal "User's medals"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /medals/mine [get]
func (h *MedalHandler) ListMyMedals(c *fiber.Ctx) error {
	session := auth.SessionFrom(c)
	ctx, cancel := requestContext(c, h.Timeout)
	defer cancel()

	medals, err := h.Service.ListByUser(ctx, session.UserID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": true, "message": "failed to load medals",
		})
	}
	if medals == nil {
		medals = []models.Medal{}
	}
	return c.JSON(medals)
}

// DeleteMedal handles DELETE /medals/:medalNo to remove an owned medal.
// @Summary Delete a medal
// @Description Hard-deletes a medal; only the owner may delete it
// @Tags medals
// @Param medalNo path int true "Medal number"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]interface{} "Invalid medal number"
// @Failure 403 {object} map[string]interface{} "Not the owner"
// @Failure 404 {object} map[string]interface{} "Medal not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /medals/{medalNo} [delete]
func (h *MedalHandler) DeleteMedal(c *fiber.Ctx) error {
	medalNo, err := strconv.ParseInt(c.Params("medalNo"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "invalid medal number",
		})
	}

	session := auth.SessionFrom(c)
	ctx, cancel := requestContext(c, h.Timeout)
	defer cancel()

	if err := h.Service.Delete(ctx, medalNo, session.UserID); err != nil {
		switch {
		case errors.Is(err, services.ErrMedalNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": true, "message": medalNotFoundError,
			})
		case errors.Is(err, services.ErrNotOwner):
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": true, "message": err.Error(),
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": true, "message": "deletion failed, please try again",
			})
		}
	}

	h.Metrics.IncMedalsDeleted()
	return c.SendStatus(fiber.StatusNoContent)
}
