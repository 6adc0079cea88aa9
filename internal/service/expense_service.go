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

var (
	ErrMissingFields = errors.New("user_id, title, amount and date are required")
	ErrInvalidAmount = errors.New("amount must be positive")
)

// ExpenseStore is the expense table surface the services depend on.
type ExpenseStore interface {
	Create(ctx context.Context, expense *models.Expense) error
	ListByUser(ctx context.Context, userID string, limit int) ([]*models.Expense, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Expense, error)
	Update(ctx context.Context, expense *models.Expense) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// CategoryEnsurer auto-creates a category for a user if missing.
type CategoryEnsurer interface {
	Ensure(ctx context.Context, userID, name string) error
}

// AnomalyChecker reports whether an amount is an outlier for the
// user's category history.
type AnomalyChecker interface {
	IsAnomalous(ctx context.Context, userID, category string, amount float64) bool
}

type ExpenseService struct {
	expenses   ExpenseStore
	categories CategoryEnsurer
	anomalies  AnomalyChecker
	logger     *zap.Logger
}

func NewExpenseService(expenses ExpenseStore, categories CategoryEnsurer, anomalies AnomalyChecker, logger *zap.Logger) *ExpenseService {
	return &ExpenseService{
		expenses:   expenses,
		categories: categories,
		anomalies:  anomalies,
		logger:     logger,
	}
}

// Create stores a new expense. A missing category defaults to
// "Uncategorized"; named categories are auto-created for the user. The
// anomaly flag is computed against the history as it was before this
// expense is inserted.
func (s *ExpenseService) Create(ctx context.Context, req *dto.CreateExpenseRequest) (*dto.ExpenseResponse, error) {
	if req.UserID == "" || req.Title == "" || req.Date == "" {
		return nil, ErrMissingFields
	}
	if req.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}

	category := req.Category
	if category == "" {
		category = models.CategoryUncategorized
	}
	if category != models.CategoryUncategorized {
		if err := s.categories.Ensure(ctx, req.UserID, category); err != nil {
			// Auto-creation is best-effort, the expense still goes in
			s.logger.Warn("Category auto-creation skipped", zap.String("category", category), zap.Error(err))
		}
	}

	isAnomaly := s.anomalies.IsAnomalous(ctx, req.UserID, category, req.Amount)

	expense := &models.Expense{
		ID:        uuid.New(),
		UserID:    req.UserID,
		Title:     req.Title,
		Amount:    req.Amount,
		Category:  category,
		Date:      date,
		CreatedAt: time.Now(),
	}

	if err := s.expenses.Create(ctx, expense); err != nil {
		return nil, err
	}

	resp := toExpenseResponse(expense)
	resp.IsAnomaly = isAnomaly
	return resp, nil
}

func (s *ExpenseService) List(ctx context.Context, userID string, limit int) ([]dto.ExpenseResponse, error) {
	expenses, err := s.expenses.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		responses = append(responses, *toExpenseResponse(e))
	}
	return responses, nil
}

// Update applies the non-nil fields of req to an existing expense. A
// changed category is auto-created for the expense owner, mirroring
// the create path.
func (s *ExpenseService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateExpenseRequest) (*dto.ExpenseResponse, error) {
	expense, err := s.expenses.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, ErrNotFound
	}

	if req.Title != nil {
		expense.Title = *req.Title
	}
	if req.Amount != nil {
		if *req.Amount <= 0 {
			return nil, ErrInvalidAmount
		}
		expense.Amount = *req.Amount
	}
	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			return nil, err
		}
		expense.Date = date
	}
	if req.Category != nil && *req.Category != "" {
		expense.Category = *req.Category
		if *req.Category != models.CategoryUncategorized {
			if err := s.categories.Ensure(ctx, expense.UserID, *req.Category); err != nil {
				s.logger.Warn("Category auto-creation skipped", zap.String("category", *req.Category), zap.Error(err))
			}
		}
	}

	if err := s.expenses.Update(ctx, expense); err != nil {
		return nil, err
	}

	return toExpenseResponse(expense), nil
}

func (s *ExpenseService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.expenses.Delete(ctx, id)
}

func toExpenseResponse(e *models.Expense) *dto.ExpenseResponse {
	return &dto.ExpenseResponse{
		ID:        e.ID.String(),
		UserID:    e.UserID,
		Title:     e.Title,
		Amount:    e.Amount,
		Category:  e.Category,
		Date:      e.Date.Format(dateLayout),
		CreatedAt: e.CreatedAt.Format(time.RFC3339),
	}
}
