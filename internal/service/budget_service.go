package service

import (
	"context"
	"errors"
	"time"

	"findash/internal/dto"
	"findash/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrMissingBudgetFields = errors.New("user_id, category, limit_amount and month are required")

// BudgetStore is the budget table surface.
type BudgetStore interface {
	Create(ctx context.Context, budget *models.Budget) error
	ListByMonth(ctx context.Context, userID string, month time.Time) ([]*models.Budget, error)
}

// BudgetService manages monthly per-category spending limits and
// reports how much of each limit is already spent.
type BudgetService struct {
	budgets    BudgetStore
	aggregates SpendingAggregates
	logger     *zap.Logger
}

func NewBudgetService(budgets BudgetStore, aggregates SpendingAggregates, logger *zap.Logger) *BudgetService {
	return &BudgetService{
		budgets:    budgets,
		aggregates: aggregates,
		logger:     logger,
	}
}

func (s *BudgetService) Create(ctx context.Context, req *dto.CreateBudgetRequest) (*dto.BudgetResponse, error) {
	if req.UserID == "" || req.Category == "" || req.Month == "" {
		return nil, ErrMissingBudgetFields
	}
	if req.LimitAmount <= 0 {
		return nil, ErrInvalidAmount
	}

	month, err := parseMonth(req.Month)
	if err != nil {
		return nil, err
	}

	budget := &models.Budget{
		ID:          uuid.New(),
		UserID:      req.UserID,
		Category:    req.Category,
		LimitAmount: req.LimitAmount,
		Month:       month,
		CreatedAt:   time.Now(),
	}

	if err := s.budgets.Create(ctx, budget); err != nil {
		return nil, err
	}

	return toBudgetResponse(budget, 0), nil
}

// List returns the user's budgets for the month together with the
// amount already spent per category in that month.
func (s *BudgetService) List(ctx context.Context, userID, month string) ([]dto.BudgetResponse, error) {
	m, err := parseMonth(month)
	if err != nil {
		return nil, err
	}

	budgets, err := s.budgets.ListByMonth(ctx, userID, m)
	if err != nil {
		return nil, err
	}

	from, to := monthWindow(m)
	totals, err := s.aggregates.CategoryTotals(ctx, userID, &from, &to)
	if err != nil {
		// Budgets are still useful without spent amounts
		s.logger.Warn("Spending totals unavailable for budget listing", zap.Error(err))
		totals = nil
	}

	spentByCategory := make(map[string]float64, len(totals))
	for _, t := range totals {
		spentByCategory[t.Category] = t.Amount
	}

	responses := make([]dto.BudgetResponse, 0, len(budgets))
	for _, b := range budgets {
		responses = append(responses, *toBudgetResponse(b, spentByCategory[b.Category]))
	}
	return responses, nil
}

func toBudgetResponse(b *models.Budget, spent float64) *dto.BudgetResponse {
	var percentage float64
	if b.LimitAmount > 0 {
		percentage = spent / b.LimitAmount * 100
	}
	return &dto.BudgetResponse{
		ID:          b.ID.String(),
		UserID:      b.UserID,
		Category:    b.Category,
		LimitAmount: b.LimitAmount,
		Month:       b.Month.Format("2006-01"),
		Spent:       spent,
		Percentage:  percentage,
	}
}
