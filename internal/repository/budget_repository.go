package repository

import (
	"context"
	"time"

	"findash/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type BudgetRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewBudgetRepository(db *pgxpool.Pool, logger *zap.Logger) *BudgetRepository {
	return &BudgetRepository{
		db:     db,
		logger: logger,
	}
}

// Create upserts the limit for the (user, category, month) triple so
// re-submitting a budget replaces the old limit.
func (r *BudgetRepository) Create(ctx context.Context, budget *models.Budget) error {
	query := squirrel.Insert("budgets").
		Columns("id", "user_id", "category", "limit_amount", "month", "created_at").
		Values(budget.ID, budget.UserID, budget.Category, budget.LimitAmount, budget.Month, budget.CreatedAt).
		Suffix("ON CONFLICT (user_id, category, month) DO UPDATE SET limit_amount = EXCLUDED.limit_amount").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *BudgetRepository) ListByMonth(ctx context.Context, userID string, month time.Time) ([]*models.Budget, error) {
	query := squirrel.Select("id", "user_id", "category", "limit_amount", "month", "created_at").
		From("budgets").
		Where(squirrel.Eq{"user_id": userID, "month": month}).
		OrderBy("category").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var budgets []*models.Budget
	for rows.Next() {
		var b models.Budget
		if err := rows.Scan(&b.ID, &b.UserID, &b.Category, &b.LimitAmount, &b.Month, &b.CreatedAt); err != nil {
			return nil, err
		}
		budgets = append(budgets, &b)
	}

	return budgets, rows.Err()
}
