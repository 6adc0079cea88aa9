package handlers

import (
	"findash/internal/dto"
	"findash/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CategoryHandler struct {
	categoryService   *service.CategoryService
	suggestionService *service.SuggestionService
	logger            *zap.Logger
}

func NewCategoryHandler(categoryService *service.CategoryService, suggestionService *service.SuggestionService, logger *zap.Logger) *CategoryHandler {
	return &CategoryHandler{
		categoryService:   categoryService,
		suggestionService: suggestionService,
		logger:            logger,
	}
}

// CreateCategory godoc
// @Summary Create a category
// @Tags categories
// @Accept json
// @Produce json
// @Param request body dto.CreateCategoryRequest true "Category"
// @Success 201 {object} dto.CategoryResponse
// @Failure 400 {object} map[string]string
// @Router /categories [post]
func (h *CategoryHandler) CreateCategory(c *fiber.Ctx) error {
	var req dto.CreateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	category, err := h.categoryService.Create(c.Context(), &req)
	if err != nil {
		if isClientError(err) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		h.logger.Error("Failed to create category", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create category",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    category,
	})
}

// ListCategories godoc
// @Summary List a user's categories
// @Tags categories
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {array} dto.CategoryResponse
// @Router /categories/{user_id} [get]
func (h *CategoryHandler) ListCategories(c *fiber.Ctx) error {
	userID := c.Params("user_id")

	categories, err := h.categoryService.List(c.Context(), userID)
	if err != nil {
		h.logger.Error("Failed to list categories", zap.String("user_id", userID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list categories",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    categories,
	})
}

// UpdateCategory godoc
// @Summary Rename a category
// @Tags categories
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Param request body dto.UpdateCategoryRequest true "New name"
// @Success 200 {object} map[string]bool
// @Router /categories/{id} [put]
func (h *CategoryHandler) UpdateCategory(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid category ID",
		})
	}

	var req dto.UpdateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := h.categoryService.Rename(c.Context(), id, req.Name); err != nil {
		if isClientError(err) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		h.logger.Error("Failed to update category", zap.String("id", id.String()), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update category",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
	})
}

// DeleteCategory godoc
// @Summary Delete a category
// @Tags categories
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} map[string]bool
// @Router /categories/{id} [delete]
func (h *CategoryHandler) DeleteCategory(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid category ID",
		})
	}

	if err := h.categoryService.Delete(c.Context(), id); err != nil {
		h.logger.Error("Failed to delete category", zap.String("id", id.String()), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete category",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
	})
}

// SuggestCategory godoc
// @Summary Suggest a category for an expense title
// @Description Runs the suggestion cascade: past corrections, external classifier, pattern rules. Always returns a category.
// @Tags categories
// @Accept json
// @Produce json
// @Param request body dto.SuggestCategoryRequest true "Expense title and amount"
// @Success 200 {object} dto.SuggestCategoryResponse
// @Failure 400 {object} map[string]string
// @Router /categories/suggest [post]
func (h *CategoryHandler) SuggestCategory(c *fiber.Ctx) error {
	var req dto.SuggestCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if req.UserID == "" || req.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "user_id and title are required",
		})
	}

	category := h.suggestionService.Suggest(c.Context(), req.UserID, req.Title, req.Amount)

	return c.JSON(dto.SuggestCategoryResponse{
		SuggestedCategory: category,
	})
}

// RecordCorrection godoc
// @Summary Record a category correction
// @Description Stores the user's override of a suggested category so future suggestions prefer it
// @Tags categories
// @Accept json
// @Produce json
// @Param request body dto.RecordCorrectionRequest true "Correction"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} map[string]string
// @Router /categories/correction [post]
func (h *CategoryHandler) RecordCorrection(c *fiber.Ctx) error {
	var req dto.RecordCorrectionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if req.UserID == "" || req.ExpenseTitle == "" || req.UserCorrected == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "user_id, expense_title and user_corrected are required",
		})
	}

	// The service logs and swallows store faults
	h.suggestionService.RecordCorrection(c.Context(), req.UserID, req.ExpenseTitle, req.AISuggested, req.UserCorrected)

	return c.JSON(fiber.Map{
		"success": true,
	})
}
