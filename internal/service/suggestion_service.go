package service

import (
	"context"
	"time"

	"findash/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CorrectionStore is the slice of the persistent store the suggestion
// service needs: the append-only correction log and its
// most-recent-match lookup.
type CorrectionStore interface {
	Create(ctx context.Context, correction *models.CategoryCorrection) error
	LatestMatch(ctx context.Context, userID, title string) (*models.CategoryCorrection, error)
}

// SuggestionService assigns a category to an expense title through a
// three-tier cascade: the user's own past corrections, the external
// zero-shot classifier, and finally the pattern rules. Each tier's
// failure is mapped to the next tier, so Suggest always returns a
// category and never an error.
type SuggestionService struct {
	corrections CorrectionStore
	classifier  Classifier
	matcher     *PatternMatcher
	logger      *zap.Logger
}

func NewSuggestionService(corrections CorrectionStore, classifier Classifier, matcher *PatternMatcher, logger *zap.Logger) *SuggestionService {
	return &SuggestionService{
		corrections: corrections,
		classifier:  classifier,
		matcher:     matcher,
		logger:      logger,
	}
}

// Suggest returns a category for the given title. The amount is
// accepted for API symmetry with the anomaly detector but does not
// influence any tier.
func (s *SuggestionService) Suggest(ctx context.Context, userID, title string, amount float64) string {
	// Tier 1: an explicit user correction overrides everything
	if category, ok := s.lookupCorrection(ctx, userID, title); ok {
		return category
	}

	// Tier 2: external zero-shot classification
	label, err := s.classifier.Classify(ctx, title)
	if err == nil {
		return label
	}
	s.logger.Warn("Classifier unavailable, falling back to pattern rules",
		zap.String("title", title),
		zap.Error(err),
	)

	// Tier 3: pattern rules, total by construction
	return s.matcher.Categorize(title)
}

// lookupCorrection resolves the most recent correction whose stored
// title contains the given title. Store faults are logged and treated
// as a miss.
func (s *SuggestionService) lookupCorrection(ctx context.Context, userID, title string) (string, bool) {
	correction, err := s.corrections.LatestMatch(ctx, userID, title)
	if err != nil {
		s.logger.Warn("Correction lookup failed",
			zap.String("user_id", userID),
			zap.Error(err),
		)
		return "", false
	}
	if correction == nil {
		return "", false
	}
	return correction.UserCorrected, true
}

// RecordCorrection appends the user's override to the correction log.
// Best-effort: a store fault is logged and swallowed so the caller's
// primary operation never fails on the learning side-channel.
func (s *SuggestionService) RecordCorrection(ctx context.Context, userID, title, aiSuggested, userCorrected string) {
	correction := &models.CategoryCorrection{
		ID:            uuid.New(),
		UserID:        userID,
		ExpenseTitle:  title,
		AISuggested:   aiSuggested,
		UserCorrected: userCorrected,
		CreatedAt:     time.Now(),
	}

	if err := s.corrections.Create(ctx, correction); err != nil {
		s.logger.Warn("Failed to record category correction",
			zap.String("user_id", userID),
			zap.Error(err),
		)
	}
}
