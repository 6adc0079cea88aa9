package handlers

import (
	"findash/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type AnalyticsHandler struct {
	analyticsService *service.AnalyticsService
	logger           *zap.Logger
}

func NewAnalyticsHandler(analyticsService *service.AnalyticsService, logger *zap.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
		logger:           logger,
	}
}

// MonthlyAnalytics godoc
// @Summary Monthly spending totals
// @Tags analytics
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {array} dto.MonthlyAnalyticsItem
// @Router /analytics/monthly/{user_id} [get]
func (h *AnalyticsHandler) MonthlyAnalytics(c *fiber.Ctx) error {
	userID := c.Params("user_id")

	items, err := h.analyticsService.Monthly(c.Context(), userID)
	if err != nil {
		h.logger.Error("Failed to aggregate monthly spending", zap.String("user_id", userID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to aggregate monthly spending",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    items,
	})
}

// CategoryAnalytics godoc
// @Summary Per-category spending totals for one month
// @Tags analytics
// @Produce json
// @Param user_id path string true "User ID"
// @Param month query string true "Month (YYYY-MM)"
// @Success 200 {array} dto.CategoryAnalyticsItem
// @Failure 400 {object} map[string]string
// @Router /analytics/category/{user_id} [get]
func (h *AnalyticsHandler) CategoryAnalytics(c *fiber.Ctx) error {
	userID := c.Params("user_id")
	month := c.Query("month")
	if month == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Month parameter is required",
		})
	}

	items, err := h.analyticsService.ByCategory(c.Context(), userID, month)
	if err != nil {
		if isClientError(err) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid month format. Use YYYY-MM",
			})
		}
		h.logger.Error("Failed to aggregate category spending", zap.String("user_id", userID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to aggregate category spending",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    items,
	})
}

// CategoryAnalyticsAllTime godoc
// @Summary Per-category spending totals for all time
// @Tags analytics
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {array} dto.CategoryAnalyticsItem
// @Router /analytics/category-all/{user_id} [get]
func (h *AnalyticsHandler) CategoryAnalyticsAllTime(c *fiber.Ctx) error {
	userID := c.Params("user_id")

	items, err := h.analyticsService.ByCategoryAllTime(c.Context(), userID)
	if err != nil {
		h.logger.Error("Failed to aggregate category spending", zap.String("user_id", userID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to aggregate category spending",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    items,
	})
}
