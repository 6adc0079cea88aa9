package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"findash/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeCorrectionStore mimics the ILIKE lookup of the real repository:
// a stored title matches when it contains the queried title,
// case-insensitively, and the most recently appended row wins.
type fakeCorrectionStore struct {
	corrections []*models.CategoryCorrection
	lookupErr   error
	createErr   error
}

func (f *fakeCorrectionStore) Create(_ context.Context, correction *models.CategoryCorrection) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.corrections = append(f.corrections, correction)
	return nil
}

func (f *fakeCorrectionStore) LatestMatch(_ context.Context, userID, title string) (*models.CategoryCorrection, error) {
	if f.lookupErr != nil {
		return nil, f.lookupErr
	}
	for i := len(f.corrections) - 1; i >= 0; i-- {
		c := f.corrections[i]
		if c.UserID == userID && strings.Contains(strings.ToLower(c.ExpenseTitle), strings.ToLower(title)) {
			return c, nil
		}
	}
	return nil, nil
}

type stubClassifier struct {
	label string
	err   error
	calls int
}

func (s *stubClassifier) Classify(context.Context, string) (string, error) {
	s.calls++
	return s.label, s.err
}

func newSuggestionService(store CorrectionStore, classifier Classifier) *SuggestionService {
	matcher := NewPatternMatcher(DefaultPatternRules())
	return NewSuggestionService(store, classifier, matcher, zap.NewNop())
}

func TestSuggestPrefersUserCorrection(t *testing.T) {
	store := &fakeCorrectionStore{}
	classifier := &stubClassifier{label: "Dining Out"}
	svc := newSuggestionService(store, classifier)

	svc.RecordCorrection(context.Background(), "user-1", "Starbucks downtown", "Dining Out", "Coffee Budget")

	got := svc.Suggest(context.Background(), "user-1", "Starbucks", 4.50)
	assert.Equal(t, "Coffee Budget", got)
	assert.Zero(t, classifier.calls, "correction hit must bypass the classifier")
}

func TestSuggestCorrectionIsPerUser(t *testing.T) {
	store := &fakeCorrectionStore{}
	classifier := &stubClassifier{label: "Dining Out"}
	svc := newSuggestionService(store, classifier)

	svc.RecordCorrection(context.Background(), "user-1", "Starbucks downtown", "Dining Out", "Coffee Budget")

	got := svc.Suggest(context.Background(), "user-2", "Starbucks", 4.50)
	assert.Equal(t, "Dining Out", got)
}

func TestSuggestMostRecentCorrectionWins(t *testing.T) {
	store := &fakeCorrectionStore{}
	svc := newSuggestionService(store, &stubClassifier{err: errors.New("down")})

	svc.RecordCorrection(context.Background(), "user-1", "Gym downtown", "Fitness", "Health")
	svc.RecordCorrection(context.Background(), "user-1", "Gym downtown", "Fitness", "Wellness")

	got := svc.Suggest(context.Background(), "user-1", "Gym", 30)
	assert.Equal(t, "Wellness", got)
}

func TestSuggestFallsBackToClassifier(t *testing.T) {
	store := &fakeCorrectionStore{}
	classifier := &stubClassifier{label: "Travel"}
	svc := newSuggestionService(store, classifier)

	got := svc.Suggest(context.Background(), "user-1", "Flight to Lisbon", 250)
	assert.Equal(t, "Travel", got)
	assert.Equal(t, 1, classifier.calls)
}

func TestSuggestFallsBackToPatternsOnClassifierFailure(t *testing.T) {
	store := &fakeCorrectionStore{}
	classifier := &stubClassifier{err: errors.New("timeout")}
	svc := newSuggestionService(store, classifier)

	got := svc.Suggest(context.Background(), "user-1", "Uber ride", 18)
	assert.Equal(t, "Transportation", got)
}

func TestSuggestNeverFails(t *testing.T) {
	// Both the store and the classifier are unreachable; the pattern
	// tier still produces an answer.
	store := &fakeCorrectionStore{lookupErr: errors.New("store down")}
	classifier := &stubClassifier{err: errors.New("classifier down")}
	svc := newSuggestionService(store, classifier)

	assert.Equal(t, "Transportation", svc.Suggest(context.Background(), "user-1", "Uber ride", 18))
	assert.Equal(t, models.CategoryUncategorized, svc.Suggest(context.Background(), "user-1", "zzz", 1))
}

func TestRecordCorrectionThenLookup(t *testing.T) {
	store := &fakeCorrectionStore{}
	svc := newSuggestionService(store, &stubClassifier{err: errors.New("down")})

	svc.RecordCorrection(context.Background(), "user-1", "Corner bakery", "Dining Out", "Treats")

	require.Len(t, store.corrections, 1)
	assert.Equal(t, "Treats", svc.Suggest(context.Background(), "user-1", "Corner bakery", 6))
}

func TestRecordCorrectionSwallowsStoreFault(t *testing.T) {
	store := &fakeCorrectionStore{createErr: errors.New("insert failed")}
	svc := newSuggestionService(store, &stubClassifier{label: "Shopping"})

	// Must not panic or surface the error
	svc.RecordCorrection(context.Background(), "user-1", "Corner bakery", "Dining Out", "Treats")
	assert.Empty(t, store.corrections)
}
