package models

import (
	"time"

	"github.com/google/uuid"
)

// CategoryUncategorized is the fallback assigned when no category is
// provided and no tier of the suggestion cascade produces one.
const CategoryUncategorized = "Uncategorized"

type Expense struct {
	ID        uuid.UUID `db:"id"`
	UserID    string    `db:"user_id"`
	Title     string    `db:"title"`
	Amount    float64   `db:"amount"`
	Category  string    `db:"category"`
	Date      time.Time `db:"date"`
	CreatedAt time.Time `db:"created_at"`
}

// MonthlyTotal is one row of the monthly spending aggregate.
type MonthlyTotal struct {
	Month  string  `db:"month"`
	Amount float64 `db:"amount"`
}

// CategoryTotal is one row of the per-category spending aggregate.
type CategoryTotal struct {
	Category string  `db:"category"`
	Amount   float64 `db:"amount"`
}
