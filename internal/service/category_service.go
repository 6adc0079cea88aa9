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

var ErrMissingCategoryName = errors.New("category name is required")

// CategoryStore is the category table surface.
type CategoryStore interface {
	Create(ctx context.Context, category *models.Category) error
	ListByUser(ctx context.Context, userID string) ([]*models.Category, error)
	UpdateName(ctx context.Context, id uuid.UUID, name string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type CategoryService struct {
	categories CategoryStore
	logger     *zap.Logger
}

func NewCategoryService(categories CategoryStore, logger *zap.Logger) *CategoryService {
	return &CategoryService{
		categories: categories,
		logger:     logger,
	}
}

func (s *CategoryService) Create(ctx context.Context, req *dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if req.UserID == "" || req.Name == "" {
		return nil, ErrMissingCategoryName
	}

	category := &models.Category{
		ID:        uuid.New(),
		UserID:    req.UserID,
		Name:      req.Name,
		CreatedAt: time.Now(),
	}

	if err := s.categories.Create(ctx, category); err != nil {
		return nil, err
	}

	return toCategoryResponse(category), nil
}

func (s *CategoryService) List(ctx context.Context, userID string) ([]dto.CategoryResponse, error) {
	categories, err := s.categories.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		responses = append(responses, *toCategoryResponse(c))
	}
	return responses, nil
}

func (s *CategoryService) Rename(ctx context.Context, id uuid.UUID, name string) error {
	if name == "" {
		return ErrMissingCategoryName
	}
	return s.categories.UpdateName(ctx, id, name)
}

func (s *CategoryService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.categories.Delete(ctx, id)
}

func toCategoryResponse(c *models.Category) *dto.CategoryResponse {
	return &dto.CategoryResponse{
		ID:        c.ID.String(),
		UserID:    c.UserID,
		Name:      c.Name,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}
}
