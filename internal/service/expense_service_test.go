package service

import (
	"context"
	"errors"
	"testing"

	"findash/internal/dto"
	"findash/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeExpenseStore struct {
	expenses  map[uuid.UUID]*models.Expense
	createErr error
}

func newFakeExpenseStore() *fakeExpenseStore {
	return &fakeExpenseStore{expenses: make(map[uuid.UUID]*models.Expense)}
}

func (f *fakeExpenseStore) Create(_ context.Context, expense *models.Expense) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.expenses[expense.ID] = expense
	return nil
}

func (f *fakeExpenseStore) ListByUser(_ context.Context, userID string, _ int) ([]*models.Expense, error) {
	var out []*models.Expense
	for _, e := range f.expenses {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeExpenseStore) GetByID(_ context.Context, id uuid.UUID) (*models.Expense, error) {
	return f.expenses[id], nil
}

func (f *fakeExpenseStore) Update(_ context.Context, expense *models.Expense) error {
	f.expenses[expense.ID] = expense
	return nil
}

func (f *fakeExpenseStore) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.expenses, id)
	return nil
}

type fakeCategoryEnsurer struct {
	ensured []string
	err     error
}

func (f *fakeCategoryEnsurer) Ensure(_ context.Context, _, name string) error {
	if f.err != nil {
		return f.err
	}
	f.ensured = append(f.ensured, name)
	return nil
}

type stubAnomalyChecker struct {
	result bool
}

func (s *stubAnomalyChecker) IsAnomalous(context.Context, string, string, float64) bool {
	return s.result
}

func newExpenseService(store *fakeExpenseStore, ensurer *fakeCategoryEnsurer, anomaly bool) *ExpenseService {
	return NewExpenseService(store, ensurer, &stubAnomalyChecker{result: anomaly}, zap.NewNop())
}

func TestCreateExpenseDefaultsCategory(t *testing.T) {
	store := newFakeExpenseStore()
	ensurer := &fakeCategoryEnsurer{}
	svc := newExpenseService(store, ensurer, false)

	resp, err := svc.Create(context.Background(), &dto.CreateExpenseRequest{
		UserID: "user-1",
		Title:  "Mystery charge",
		Amount: 12.50,
		Date:   "2025-03-15",
	})
	require.NoError(t, err)

	assert.Equal(t, models.CategoryUncategorized, resp.Category)
	assert.Empty(t, ensurer.ensured, "Uncategorized must not be auto-created")
	assert.Len(t, store.expenses, 1)
}

func TestCreateExpenseAutoCreatesCategory(t *testing.T) {
	store := newFakeExpenseStore()
	ensurer := &fakeCategoryEnsurer{}
	svc := newExpenseService(store, ensurer, false)

	resp, err := svc.Create(context.Background(), &dto.CreateExpenseRequest{
		UserID:   "user-1",
		Title:    "Weekly groceries",
		Amount:   80,
		Category: "Groceries",
		Date:     "2025-03-15",
	})
	require.NoError(t, err)

	assert.Equal(t, "Groceries", resp.Category)
	assert.Equal(t, []string{"Groceries"}, ensurer.ensured)
}

func TestCreateExpenseSurvivesCategoryEnsureFault(t *testing.T) {
	store := newFakeExpenseStore()
	ensurer := &fakeCategoryEnsurer{err: errors.New("conflict")}
	svc := newExpenseService(store, ensurer, false)

	_, err := svc.Create(context.Background(), &dto.CreateExpenseRequest{
		UserID:   "user-1",
		Title:    "Weekly groceries",
		Amount:   80,
		Category: "Groceries",
		Date:     "2025-03-15",
	})
	require.NoError(t, err)
	assert.Len(t, store.expenses, 1)
}

func TestCreateExpenseValidation(t *testing.T) {
	svc := newExpenseService(newFakeExpenseStore(), &fakeCategoryEnsurer{}, false)

	_, err := svc.Create(context.Background(), &dto.CreateExpenseRequest{
		Title: "no user", Amount: 5, Date: "2025-03-15",
	})
	assert.ErrorIs(t, err, ErrMissingFields)

	_, err = svc.Create(context.Background(), &dto.CreateExpenseRequest{
		UserID: "user-1", Title: "bad amount", Amount: 0, Date: "2025-03-15",
	})
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = svc.Create(context.Background(), &dto.CreateExpenseRequest{
		UserID: "user-1", Title: "bad date", Amount: 5, Date: "15/03/2025",
	})
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestCreateExpenseCarriesAnomalyFlag(t *testing.T) {
	svc := newExpenseService(newFakeExpenseStore(), &fakeCategoryEnsurer{}, true)

	resp, err := svc.Create(context.Background(), &dto.CreateExpenseRequest{
		UserID: "user-1", Title: "Huge dinner", Amount: 500, Category: "Dining Out", Date: "2025-03-15",
	})
	require.NoError(t, err)
	assert.True(t, resp.IsAnomaly)
}

func TestUpdateExpenseMergesFields(t *testing.T) {
	store := newFakeExpenseStore()
	ensurer := &fakeCategoryEnsurer{}
	svc := newExpenseService(store, ensurer, false)

	created, err := svc.Create(context.Background(), &dto.CreateExpenseRequest{
		UserID: "user-1", Title: "Dinner", Amount: 40, Category: "Dining Out", Date: "2025-03-15",
	})
	require.NoError(t, err)

	id := uuid.MustParse(created.ID)
	newAmount := 55.0
	newCategory := "Treats"
	updated, err := svc.Update(context.Background(), id, &dto.UpdateExpenseRequest{
		Amount:   &newAmount,
		Category: &newCategory,
	})
	require.NoError(t, err)

	assert.Equal(t, "Dinner", updated.Title)
	assert.Equal(t, 55.0, updated.Amount)
	assert.Equal(t, "Treats", updated.Category)
	assert.Contains(t, ensurer.ensured, "Treats")
}

func TestUpdateExpenseNotFound(t *testing.T) {
	svc := newExpenseService(newFakeExpenseStore(), &fakeCategoryEnsurer{}, false)

	_, err := svc.Update(context.Background(), uuid.New(), &dto.UpdateExpenseRequest{})
	assert.ErrorIs(t, err, ErrNotFound)
}
