package service

import (
	"context"
	"testing"
	"time"

	"findash/internal/dto"
	"findash/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeBudgetStore struct {
	budgets []*models.Budget
}

func (f *fakeBudgetStore) Create(_ context.Context, budget *models.Budget) error {
	f.budgets = append(f.budgets, budget)
	return nil
}

func (f *fakeBudgetStore) ListByMonth(_ context.Context, userID string, month time.Time) ([]*models.Budget, error) {
	var out []*models.Budget
	for _, b := range f.budgets {
		if b.UserID == userID && b.Month.Equal(month) {
			out = append(out, b)
		}
	}
	return out, nil
}

type fakeAggregates struct {
	monthly  []models.MonthlyTotal
	byCat    []models.CategoryTotal
	monthErr error
	catErr   error
}

func (f *fakeAggregates) MonthlyTotals(context.Context, string) ([]models.MonthlyTotal, error) {
	return f.monthly, f.monthErr
}

func (f *fakeAggregates) CategoryTotals(context.Context, string, *time.Time, *time.Time) ([]models.CategoryTotal, error) {
	return f.byCat, f.catErr
}

func TestBudgetCreateNormalizesMonth(t *testing.T) {
	store := &fakeBudgetStore{}
	svc := NewBudgetService(store, &fakeAggregates{}, zap.NewNop())

	resp, err := svc.Create(context.Background(), &dto.CreateBudgetRequest{
		UserID:      "user-1",
		Category:    "Groceries",
		LimitAmount: 400,
		Month:       "2025-03-15",
	})
	require.NoError(t, err)

	assert.Equal(t, "2025-03", resp.Month)
	require.Len(t, store.budgets, 1)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), store.budgets[0].Month)
}

func TestBudgetCreateValidation(t *testing.T) {
	svc := NewBudgetService(&fakeBudgetStore{}, &fakeAggregates{}, zap.NewNop())

	_, err := svc.Create(context.Background(), &dto.CreateBudgetRequest{
		UserID: "user-1", Category: "Groceries", LimitAmount: 0, Month: "2025-03",
	})
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = svc.Create(context.Background(), &dto.CreateBudgetRequest{
		UserID: "user-1", Category: "Groceries", LimitAmount: 100, Month: "next month",
	})
	assert.ErrorIs(t, err, ErrInvalidMonth)
}

func TestBudgetListReportsSpentAndPercentage(t *testing.T) {
	store := &fakeBudgetStore{}
	aggregates := &fakeAggregates{byCat: []models.CategoryTotal{
		{Category: "Groceries", Amount: 300},
	}}
	svc := NewBudgetService(store, aggregates, zap.NewNop())

	_, err := svc.Create(context.Background(), &dto.CreateBudgetRequest{
		UserID: "user-1", Category: "Groceries", LimitAmount: 400, Month: "2025-03",
	})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), &dto.CreateBudgetRequest{
		UserID: "user-1", Category: "Fitness", LimitAmount: 50, Month: "2025-03",
	})
	require.NoError(t, err)

	budgets, err := svc.List(context.Background(), "user-1", "2025-03")
	require.NoError(t, err)
	require.Len(t, budgets, 2)

	byCategory := make(map[string]dto.BudgetResponse)
	for _, b := range budgets {
		byCategory[b.Category] = b
	}
	assert.Equal(t, 300.0, byCategory["Groceries"].Spent)
	assert.Equal(t, 75.0, byCategory["Groceries"].Percentage)
	assert.Equal(t, 0.0, byCategory["Fitness"].Spent)
}
