package handlers

import (
	"time"

	"findash/internal/dto"
	"findash/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type BudgetHandler struct {
	budgetService *service.BudgetService
	logger        *zap.Logger
}

func NewBudgetHandler(budgetService *service.BudgetService, logger *zap.Logger) *BudgetHandler {
	return &BudgetHandler{
		budgetService: budgetService,
		logger:        logger,
	}
}

// CreateBudget godoc
// @Summary Set a monthly category budget
// @Tags budgets
// @Accept json
// @Produce json
// @Param request body dto.CreateBudgetRequest true "Budget"
// @Success 201 {object} dto.BudgetResponse
// @Failure 400 {object} map[string]string
// @Router /budgets [post]
func (h *BudgetHandler) CreateBudget(c *fiber.Ctx) error {
	var req dto.CreateBudgetRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	budget, err := h.budgetService.Create(c.Context(), &req)
	if err != nil {
		if isClientError(err) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		h.logger.Error("Failed to create budget", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create budget",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    budget,
	})
}

// ListBudgets godoc
// @Summary List budgets for a month with spent amounts
// @Tags budgets
// @Produce json
// @Param user_id path string true "User ID"
// @Param month query string false "Month (YYYY-MM), defaults to the current month"
// @Success 200 {array} dto.BudgetResponse
// @Failure 400 {object} map[string]string
// @Router /budgets/{user_id} [get]
func (h *BudgetHandler) ListBudgets(c *fiber.Ctx) error {
	userID := c.Params("user_id")
	month := c.Query("month")
	if month == "" {
		month = time.Now().Format("2006-01")
	}

	budgets, err := h.budgetService.List(c.Context(), userID, month)
	if err != nil {
		if isClientError(err) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid month format. Use YYYY-MM",
			})
		}
		h.logger.Error("Failed to list budgets", zap.String("user_id", userID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list budgets",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    budgets,
	})
}
