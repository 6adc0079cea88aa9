package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// The UNIQUE (user_id, name) constraint on categories backs the
// ON CONFLICT DO NOTHING insert in the category repository, so
// concurrent auto-creation of the same category cannot produce
// duplicate rows.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS expenses (
		id UUID PRIMARY KEY,
		user_id TEXT NOT NULL,
		title TEXT NOT NULL,
		amount DOUBLE PRECISION NOT NULL,
		category TEXT NOT NULL DEFAULT 'Uncategorized',
		date DATE NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_expenses_user_date ON expenses (user_id, date DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_expenses_user_category ON expenses (user_id, category)`,
	`CREATE TABLE IF NOT EXISTS categories (
		id UUID PRIMARY KEY,
		user_id TEXT NOT NULL,
		name TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		UNIQUE (user_id, name)
	)`,
	`CREATE TABLE IF NOT EXISTS category_corrections (
		id UUID PRIMARY KEY,
		user_id TEXT NOT NULL,
		expense_title TEXT NOT NULL,
		ai_suggested TEXT NOT NULL,
		user_corrected TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_corrections_user_created ON category_corrections (user_id, created_at DESC)`,
	`CREATE TABLE IF NOT EXISTS budgets (
		id UUID PRIMARY KEY,
		user_id TEXT NOT NULL,
		category TEXT NOT NULL,
		limit_amount DOUBLE PRECISION NOT NULL,
		month DATE NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		UNIQUE (user_id, category, month)
	)`,
}

// InitSchema creates the tables and indexes if they do not exist yet.
func InitSchema(ctx context.Context, pool *pgxpool.Pool, logger *zap.Logger) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema statement: %w", err)
		}
	}

	logger.Info("Database schema ready")
	return nil
}
