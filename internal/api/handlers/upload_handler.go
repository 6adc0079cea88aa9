package handlers

import (
	"findash/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type UploadHandler struct {
	importService *service.ImportService
	logger        *zap.Logger
}

func NewUploadHandler(importService *service.ImportService, logger *zap.Logger) *UploadHandler {
	return &UploadHandler{
		importService: importService,
		logger:        logger,
	}
}

// UploadExpenses godoc
// @Summary Bulk-import expenses from a CSV or XLSX file
// @Description Required columns: title, amount, date. Optional: category; blank categories go through the suggestion cascade.
// @Tags upload
// @Accept multipart/form-data
// @Produce json
// @Param user_id path string true "User ID"
// @Param file formData file true "CSV or XLSX file"
// @Success 200 {object} dto.ImportResult
// @Failure 400 {object} map[string]string
// @Router /upload/csv/{user_id} [post]
func (h *UploadHandler) UploadExpenses(c *fiber.Ctx) error {
	userID := c.Params("user_id")

	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "File is required",
		})
	}

	src, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to open file",
		})
	}
	defer src.Close()

	result, err := h.importService.Import(c.Context(), userID, file.Filename, src)
	if err != nil {
		if isClientError(err) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		h.logger.Error("Failed to import expenses", zap.String("user_id", userID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to import expenses",
		})
	}

	return c.JSON(fiber.Map{
		"success":        true,
		"expenses_added": result.ExpensesAdded,
		"errors":         result.Errors,
		"data":           result.Data,
	})
}
