package service

import (
	"context"
	"time"

	"findash/internal/dto"
	"findash/internal/models"

	"go.uber.org/zap"
)

// SpendingAggregates is the aggregate query surface of the expense
// table. Grouping and summing happen in SQL.
type SpendingAggregates interface {
	MonthlyTotals(ctx context.Context, userID string) ([]models.MonthlyTotal, error)
	CategoryTotals(ctx context.Context, userID string, from, to *time.Time) ([]models.CategoryTotal, error)
}

type AnalyticsService struct {
	aggregates SpendingAggregates
	logger     *zap.Logger
}

func NewAnalyticsService(aggregates SpendingAggregates, logger *zap.Logger) *AnalyticsService {
	return &AnalyticsService{
		aggregates: aggregates,
		logger:     logger,
	}
}

func (s *AnalyticsService) Monthly(ctx context.Context, userID string) ([]dto.MonthlyAnalyticsItem, error) {
	totals, err := s.aggregates.MonthlyTotals(ctx, userID)
	if err != nil {
		return nil, err
	}

	items := make([]dto.MonthlyAnalyticsItem, 0, len(totals))
	for _, t := range totals {
		items = append(items, dto.MonthlyAnalyticsItem{Month: t.Month, Amount: t.Amount})
	}
	return items, nil
}

// ByCategory aggregates spending per category within one month
// (YYYY-MM).
func (s *AnalyticsService) ByCategory(ctx context.Context, userID, month string) ([]dto.CategoryAnalyticsItem, error) {
	m, err := parseMonth(month)
	if err != nil {
		return nil, err
	}

	from, to := monthWindow(m)
	return s.categoryItems(ctx, userID, &from, &to)
}

// ByCategoryAllTime aggregates spending per category with no date
// filter.
func (s *AnalyticsService) ByCategoryAllTime(ctx context.Context, userID string) ([]dto.CategoryAnalyticsItem, error) {
	return s.categoryItems(ctx, userID, nil, nil)
}

func (s *AnalyticsService) categoryItems(ctx context.Context, userID string, from, to *time.Time) ([]dto.CategoryAnalyticsItem, error) {
	totals, err := s.aggregates.CategoryTotals(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}

	items := make([]dto.CategoryAnalyticsItem, 0, len(totals))
	for _, t := range totals {
		items = append(items, dto.CategoryAnalyticsItem{Category: t.Category, Amount: t.Amount})
	}
	return items, nil
}
