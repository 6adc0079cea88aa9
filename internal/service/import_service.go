package service

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"findash/internal/dto"
	"findash/internal/models"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

var (
	ErrMissingColumns = errors.New("file must contain columns: title, amount, date")
	ErrEmptyFile      = errors.New("file contains no data rows")
)

// CategorySuggester runs the suggestion cascade for a title.
type CategorySuggester interface {
	Suggest(ctx context.Context, userID, title string, amount float64) string
}

// ImportService ingests bulk expenses from CSV or XLSX uploads. Rows
// without a category go through the suggestion cascade; bad rows are
// collected as errors while the rest are inserted.
type ImportService struct {
	expenses   ExpenseStore
	categories CategoryEnsurer
	suggester  CategorySuggester
	logger     *zap.Logger
}

func NewImportService(expenses ExpenseStore, categories CategoryEnsurer, suggester CategorySuggester, logger *zap.Logger) *ImportService {
	return &ImportService{
		expenses:   expenses,
		categories: categories,
		suggester:  suggester,
		logger:     logger,
	}
}

func (s *ImportService) Import(ctx context.Context, userID, filename string, r io.Reader) (*dto.ImportResult, error) {
	var (
		rows [][]string
		err  error
	)
	if strings.EqualFold(filepath.Ext(filename), ".xlsx") {
		rows, err = readXLSX(r)
	} else {
		rows, err = readCSV(r)
	}
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, ErrEmptyFile
	}

	columns, err := columnIndex(rows[0])
	if err != nil {
		return nil, err
	}

	result := &dto.ImportResult{
		Errors: []string{},
		Data:   []dto.ExpenseResponse{},
	}

	for i, row := range rows[1:] {
		rowNumber := i + 1
		expense, err := s.buildExpense(ctx, userID, columns, row)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", rowNumber, err))
			continue
		}
		if err := s.expenses.Create(ctx, expense); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", rowNumber, err))
			continue
		}
		result.ExpensesAdded++
		result.Data = append(result.Data, *toExpenseResponse(expense))
	}

	s.logger.Info("Bulk import finished",
		zap.String("user_id", userID),
		zap.String("file", filename),
		zap.Int("added", result.ExpensesAdded),
		zap.Int("errors", len(result.Errors)),
	)

	return result, nil
}

func (s *ImportService) buildExpense(ctx context.Context, userID string, columns map[string]int, row []string) (*models.Expense, error) {
	title := strings.TrimSpace(cell(row, columns["title"]))
	if title == "" {
		return nil, errors.New("title is empty")
	}

	amount, err := strconv.ParseFloat(strings.TrimSpace(cell(row, columns["amount"])), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid amount: %s", cell(row, columns["amount"]))
	}
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	date, err := parseDate(strings.TrimSpace(cell(row, columns["date"])))
	if err != nil {
		return nil, err
	}

	category := ""
	if idx, ok := columns["category"]; ok {
		category = strings.TrimSpace(cell(row, idx))
	}
	if category == "" {
		// Blank category: run the full suggestion cascade
		category = s.suggester.Suggest(ctx, userID, title, amount)
	}
	if category != models.CategoryUncategorized {
		if err := s.categories.Ensure(ctx, userID, category); err != nil {
			s.logger.Warn("Category auto-creation skipped", zap.String("category", category), zap.Error(err))
		}
	}

	return &models.Expense{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     title,
		Amount:    amount,
		Category:  category,
		Date:      date,
		CreatedAt: time.Now(),
	}, nil
}

func readCSV(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	return rows, nil
}

func readXLSX(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open XLSX: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read XLSX rows: %w", err)
	}
	return rows, nil
}

// columnIndex maps the lower-cased header names to their positions and
// verifies the required columns are present. The category column is
// optional.
func columnIndex(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{"title", "amount", "date"} {
		if _, ok := columns[required]; !ok {
			return nil, ErrMissingColumns
		}
	}
	return columns, nil
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
