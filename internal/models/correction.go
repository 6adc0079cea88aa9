package models

import (
	"time"

	"github.com/google/uuid"
)

// CategoryCorrection records a user's override of a suggested category.
// Rows are append-only and feed future correction lookups.
type CategoryCorrection struct {
	ID            uuid.UUID `db:"id"`
	UserID        string    `db:"user_id"`
	ExpenseTitle  string    `db:"expense_title"`
	AISuggested   string    `db:"ai_suggested"`
	UserCorrected string    `db:"user_corrected"`
	CreatedAt     time.Time `db:"created_at"`
}
