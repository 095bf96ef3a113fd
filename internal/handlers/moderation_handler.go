package handlers

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"medal-service/internal/auth"
	"medal-service/internal/metrics"
	"medal-service/internal/services"
)

// ModerationHandler defines handlers for the report pipeline.
type ModerationHandler struct {
	Service *services.ModerationService
	Metrics *metrics.Metrics
	Log     *zap.SugaredLogger
	Timeout time.Duration
}

// NewModerationHandler creates a new ModerationHandler.
func NewModerationHandler(service *services.ModerationService, m *metrics.Metrics, log *zap.SugaredLogger, timeout time.Duration) *ModerationHandler {
	return &ModerationHandler{Service: service, Metrics: m, Log: log, Timeout: timeout}
}

// ReportMedal handles POST /medals/:medalNo/reports. The full moderation
// pipeline runs inside the service; there is no separate invalidate or ban
// endpoint for callers to forget.
// @Summary Report a medal
// @Description Files a report against a medal and runs the invalidation and ban threshold checks
// @Tags moderation
// @Produce json
// @Param medalNo path int true "Medal number"
// @Success 201 {object} services.ReportOutcome "Report accepted"
// @Failure 400 {object} map[string]interface{} "Invalid medal number"
// @Failure 404 {object} map[string]interface{} "Medal not found"
// @Failure 409 {object} map[string]interface{} "Already reported"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /medals/{medalNo}/reports [post]
func (h *ModerationHandler) ReportMedal(c *fiber.Ctx) error {
	medalNo, err := strconv.ParseInt(c.Params("medalNo"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "invalid medal number",
		})
	}

	session := auth.SessionFrom(c)
	ctx, cancel := requestContext(c, h.Timeout)
	defer cancel()

	outcome, err := h.Service.SubmitReport(ctx, medalNo, session.UserID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDuplicateReport):
			h.Metrics.IncDuplicateReports()
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": true, "message": err.Error(),
			})
		case errors.Is(err, services.ErrMedalNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": true, "message": medalNotFoundError,
			})
		default:
			h.Log.Errorw("report failed", "medal_no", medalNo, "error", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": true, "message": "report failed, please try again",
			})
		}
	}

	h.Metrics.IncReportsSubmitted()
	if outcome.MedalInvalidated {
		h.Metrics.IncMedalsInvalidated()
	}
	if outcome.UserBanned {
		h.Metrics.IncUsersBanned()
	}
	return c.Status(fiber.StatusCreated).JSON(outcome)
}

// HasReported handles GET /medals/:medalNo/reports/me so the client can gray
// out the report button.
// @Summary Check own report status
// @Description Reports whether the authenticated user already reported the medal
// @Tags moderation
// @Produce json
// @Param medalNo path int true "Medal number"
// @Success 200 {object} map[string]interface{} "Report status"
// @Failure 400 {object} map[string]interface{} "Invalid medal number"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /medals/{medalNo}/reports/me [get]
func (h *ModerationHandler) HasReported(c *fiber.Ctx) error {
	medalNo, err := strconv.ParseInt(c.Params("medalNo"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "invalid medal number",
		})
	}

	session := auth.SessionFrom(c)
	ctx, cancel := requestContext(c, h.Timeout)
	defer cancel()

	reported, err := h.Service.HasUserReported(ctx, medalNo, session.UserID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": true, "message": "failed to check report status",
		})
	}
	return c.JSON(fiber.Map{"reported": reported})
}
