package handlers

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"medal-service/internal/auth"
	"medal-service/internal/metrics"
	"medal-service/internal/models"
	"medal-service/internal/services"
)

// CollectionHandler defines handlers for the exploration-mode collect ledger.
type CollectionHandler struct {
	Service *services.CollectionService
	Metrics *metrics.Metrics
	Log     *zap.SugaredLogger
	Timeout time.Duration
}

// NewCollectionHandler creates a new CollectionHandler.
func NewCollectionHandler(service *services.CollectionService, m *metrics.Metrics, log *zap.SugaredLogger, timeout time.Duration) *CollectionHandler {
	return &CollectionHandler{Service: service, Metrics: m, Log: log, Timeout: timeout}
}

type collectRequest struct {
	MedalNo int64 `json:"medal_no" validate:"required,gt=0"`
}

// Collect handles POST /collections to claim a medal.
// @Summary Collect a medal
// @Description Claims a medal for the authenticated user in exploration mode
// @Tags collections
// @Accept json
// @Produce json
// @Param request body object true "Medal number"
// @Success 201 {object} models.MedalCollection "Collection record"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 409 {object} map[string]interface{} "Already collected"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /collections [post]
func (h *CollectionHandler) Collect(c *fiber.Ctx) error {
	var req collectRequest
	if err := c.BodyParser(&req); err != nil || req.MedalNo <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "invalid medal number",
		})
	}

	session := auth.SessionFrom(c)
	ctx, cancel := requestContext(c, h.Timeout)
	defer cancel()

	collection, err := h.Service.Collect(ctx, session.UserID, req.MedalNo)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateCollection) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": true, "message": err.Error(),
			})
		}
		h.Log.Errorw("collect failed", "medal_no", req.MedalNo, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": true, "message": "collection failed, please try again",
		})
	}

	h.Metrics.IncCollections()
	return c.Status(fiber.StatusCreated).JSON(collection)
}

// Uncollect handles DELETE /collections/:medalNo to withdraw a claim.
// @Summary Uncollect a medal
// @Description Withdraws the authenticated user's claim; succeeds even if nothing was collected
// @Tags collections
// @Param medalNo path int true "Medal number"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]interface{} "Invalid medal number"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /collections/{medalNo} [delete]
func (h *CollectionHandler) Uncollect(c *fiber.Ctx) error {
	medalNo, err := strconv.ParseInt(c.Params("medalNo"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "invalid medal number",
		})
	}

	session := auth.SessionFrom(c)
	ctx, cancel := requestContext(c, h.Timeout)
	defer cancel()

	if err := h.Service.Uncollect(ctx, session.UserID, medalNo); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": true, "message": "uncollect failed, please try again",
		})
	}

	h.Metrics.IncUncollections()
	return c.SendStatus(fiber.StatusNoContent)
}

// ListCollections handles GET /collections to list the caller's claims.
// @Summary List own collections
// @Description Returns the authenticated user's collections, most recent first
// @Tags collections
// @Produce json
// @Success 200 {array} models.MedalCollection "Collections"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /collections [get]
func (h *CollectionHandler) ListCollections(c *fiber.Ctx) error {
	session := auth.SessionFrom(c)
	ctx, cancel := requestContext(c, h.Timeout)
	defer cancel()

	collections, err := h.Service.ListByUser(ctx, session.UserID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": true, "message": "failed to load collections",
		})
	}
	if collections == nil {
		collections = []models.MedalCollection{}
	}
	return c.JSON(collections)
}

// IsCollected handles GET /collections/:medalNo so the client can render the
// claim state of a marker.
// @Summary Check collection status
// @Description Reports whether the authenticated user has collected the medal
// @Tags collections
// @Produce json
// @Param medalNo path int true "Medal number"
// @Success 200 {object} map[string]interface{} "Collection status"
// @Failure 400 {object} map[string]interface{} "Invalid medal number"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /collections/{medalNo} [get]
func (h *CollectionHandler) IsCollected(c *fiber.Ctx) error {
	medalNo, err := strconv.ParseInt(c.Params("medalNo"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "invalid medal number",
		})
	}

	session := auth.SessionFrom(c)
	ctx, cancel := requestContext(c, h.Timeout)
	defer cancel()

	collected, err := h.Service.IsCollected(ctx, session.UserID, medalNo)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": true, "message": "failed to check collection status",
		})
	}
	return c.JSON(fiber.Map{"collected": collected})
}
