package handlers

import (
	"errors"

	"findash/internal/service"
)

// isClientError separates validation failures (400) from store or
// dependency failures (500).
func isClientError(err error) bool {
	for _, target := range []error{
		service.ErrInvalidDate,
		service.ErrInvalidMonth,
		service.ErrMissingFields,
		service.ErrInvalidAmount,
		service.ErrMissingCategoryName,
		service.ErrMissingBudgetFields,
		service.ErrMissingColumns,
		service.ErrEmptyFile,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
