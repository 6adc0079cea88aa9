package service

import (
	"context"

	"go.uber.org/zap"
)

// minAnomalySamples is the smallest history that may flag an anomaly.
const minAnomalySamples = 3

// AmountHistory provides historical expense amounts for a
// (user, category) pair.
type AmountHistory interface {
	AmountsByCategory(ctx context.Context, userID, category string) ([]float64, error)
}

// AnomalyService flags expense amounts that exceed twice the user's
// historical mean for the category. It fails closed: any store fault
// or insufficient history reads as "not anomalous" so the expense
// creation flow is never blocked.
type AnomalyService struct {
	history AmountHistory
	logger  *zap.Logger
}

func NewAnomalyService(history AmountHistory, logger *zap.Logger) *AnomalyService {
	return &AnomalyService{
		history: history,
		logger:  logger,
	}
}

// IsAnomalous reports whether amount is strictly greater than twice
// the mean of the user's past amounts in the category. Fewer than
// three historical samples never flag.
func (s *AnomalyService) IsAnomalous(ctx context.Context, userID, category string, amount float64) bool {
	amounts, err := s.history.AmountsByCategory(ctx, userID, category)
	if err != nil {
		s.logger.Warn("Anomaly check skipped, history unavailable",
			zap.String("user_id", userID),
			zap.String("category", category),
			zap.Error(err),
		)
		return false
	}

	if len(amounts) < minAnomalySamples {
		return false
	}

	var sum float64
	for _, a := range amounts {
		sum += a
	}
	mean := sum / float64(len(amounts))

	return amount > mean*2
}
