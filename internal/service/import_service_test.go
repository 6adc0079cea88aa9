package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubSuggester struct {
	category string
	calls    int
}

func (s *stubSuggester) Suggest(context.Context, string, string, float64) string {
	s.calls++
	return s.category
}

func newImportService(store *fakeExpenseStore, ensurer *fakeCategoryEnsurer, suggester *stubSuggester) *ImportService {
	return NewImportService(store, ensurer, suggester, zap.NewNop())
}

func TestImportCSV(t *testing.T) {
	csvData := strings.Join([]string{
		"title,amount,date,category",
		"Weekly groceries,82.50,2025-03-01,Groceries",
		"Mystery diner,30.00,2025-03-02,",
		"Broken row,not-a-number,2025-03-03,Misc",
	}, "\n")

	store := newFakeExpenseStore()
	suggester := &stubSuggester{category: "Dining Out"}
	svc := newImportService(store, &fakeCategoryEnsurer{}, suggester)

	result, err := svc.Import(context.Background(), "user-1", "expenses.csv", strings.NewReader(csvData))
	require.NoError(t, err)

	assert.Equal(t, 2, result.ExpensesAdded)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "Row 3")
	assert.Len(t, store.expenses, 2)

	// The blank category ran the suggestion cascade
	assert.Equal(t, 1, suggester.calls)
	categories := make(map[string]bool)
	for _, e := range store.expenses {
		categories[e.Category] = true
	}
	assert.True(t, categories["Groceries"])
	assert.True(t, categories["Dining Out"])
}

func TestImportMissingRequiredColumns(t *testing.T) {
	csvData := "title,amount\nDinner,30\n"
	svc := newImportService(newFakeExpenseStore(), &fakeCategoryEnsurer{}, &stubSuggester{})

	_, err := svc.Import(context.Background(), "user-1", "expenses.csv", strings.NewReader(csvData))
	assert.ErrorIs(t, err, ErrMissingColumns)
}

func TestImportEmptyFile(t *testing.T) {
	svc := newImportService(newFakeExpenseStore(), &fakeCategoryEnsurer{}, &stubSuggester{})

	_, err := svc.Import(context.Background(), "user-1", "expenses.csv", strings.NewReader("title,amount,date\n"))
	assert.ErrorIs(t, err, ErrEmptyFile)
}

func TestImportHeaderIsCaseInsensitive(t *testing.T) {
	csvData := "Title,Amount,Date\nDinner,30,2025-03-02\n"
	store := newFakeExpenseStore()
	suggester := &stubSuggester{category: "Dining Out"}
	svc := newImportService(store, &fakeCategoryEnsurer{}, suggester)

	result, err := svc.Import(context.Background(), "user-1", "expenses.csv", strings.NewReader(csvData))
	require.NoError(t, err)
	assert.Equal(t, 1, result.ExpensesAdded)
}
