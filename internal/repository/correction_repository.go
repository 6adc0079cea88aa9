package repository

import (
	"context"
	"errors"

	"findash/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type CorrectionRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewCorrectionRepository(db *pgxpool.Pool, logger *zap.Logger) *CorrectionRepository {
	return &CorrectionRepository{
		db:     db,
		logger: logger,
	}
}

func (r *CorrectionRepository) Create(ctx context.Context, correction *models.CategoryCorrection) error {
	query := squirrel.Insert("category_corrections").
		Columns("id", "user_id", "expense_title", "ai_suggested", "user_corrected", "created_at").
		Values(correction.ID, correction.UserID, correction.ExpenseTitle, correction.AISuggested, correction.UserCorrected, correction.CreatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

// LatestMatch returns the most recent correction whose stored title
// contains the given title, case-insensitively. Returns (nil, nil)
// when no row matches.
func (r *CorrectionRepository) LatestMatch(ctx context.Context, userID, title string) (*models.CategoryCorrection, error) {
	query := squirrel.Select("id", "user_id", "expense_title", "ai_suggested", "user_corrected", "created_at").
		From("category_corrections").
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.ILike{"expense_title": "%" + title + "%"}).
		OrderBy("created_at DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var c models.CategoryCorrection
	err = r.db.QueryRow(ctx, sql, args...).Scan(&c.ID, &c.UserID, &c.ExpenseTitle, &c.AISuggested, &c.UserCorrected, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &c, nil
}
