package models

import (
	"time"

	"github.com/google/uuid"
)

// Budget is a monthly spending limit for one (user, category) pair.
// Month is normalized to the first day of the month.
type Budget struct {
	ID          uuid.UUID `db:"id"`
	UserID      string    `db:"user_id"`
	Category    string    `db:"category"`
	LimitAmount float64   `db:"limit_amount"`
	Month       time.Time `db:"month"`
	CreatedAt   time.Time `db:"created_at"`
}
