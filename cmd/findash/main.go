package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"findash/internal/api"
	"findash/internal/api/handlers"
	"findash/internal/repository"
	"findash/internal/service"
	"findash/pkg/config"
	"findash/pkg/logger"
	"findash/pkg/postgres"

	"go.uber.org/zap"
)

// @title Finance Dashboard API
// @version 1.0
// @description Personal-finance tracking backend with AI-assisted expense categorization

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting finance dashboard service")

	// Initialize database
	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := postgres.InitSchema(ctx, db, appLogger); err != nil {
		appLogger.Fatal("Failed to initialize schema", zap.Error(err))
	}

	// Initialize repositories
	expenseRepo := repository.NewExpenseRepository(db, appLogger)
	categoryRepo := repository.NewCategoryRepository(db, appLogger)
	correctionRepo := repository.NewCorrectionRepository(db, appLogger)
	budgetRepo := repository.NewBudgetRepository(db, appLogger)

	// Initialize services
	classifier := service.NewZeroShotClassifier(&cfg.Classifier, appLogger)
	matcher := service.NewPatternMatcher(service.DefaultPatternRules())
	suggestionService := service.NewSuggestionService(correctionRepo, classifier, matcher, appLogger)
	anomalyService := service.NewAnomalyService(expenseRepo, appLogger)

	expenseService := service.NewExpenseService(expenseRepo, categoryRepo, anomalyService, appLogger)
	categoryService := service.NewCategoryService(categoryRepo, appLogger)
	analyticsService := service.NewAnalyticsService(expenseRepo, appLogger)
	budgetService := service.NewBudgetService(budgetRepo, expenseRepo, appLogger)
	importService := service.NewImportService(expenseRepo, categoryRepo, suggestionService, appLogger)

	// Initialize handlers
	expenseHandler := handlers.NewExpenseHandler(expenseService, appLogger)
	categoryHandler := handlers.NewCategoryHandler(categoryService, suggestionService, appLogger)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService, appLogger)
	budgetHandler := handlers.NewBudgetHandler(budgetService, appLogger)
	uploadHandler := handlers.NewUploadHandler(importService, appLogger)

	// Setup router
	app := api.SetupRouter(expenseHandler, categoryHandler, analyticsHandler, budgetHandler, uploadHandler, &cfg.Auth, appLogger)

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
