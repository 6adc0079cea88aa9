package api

import (
	"findash/docs"
	"findash/internal/api/handlers"
	"findash/pkg/config"
	"findash/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

func SetupRouter(
	expenseHandler *handlers.ExpenseHandler,
	categoryHandler *handlers.CategoryHandler,
	analyticsHandler *handlers.AnalyticsHandler,
	budgetHandler *handlers.BudgetHandler,
	uploadHandler *handlers.UploadHandler,
	authCfg *config.AuthConfig,
	appLogger *zap.Logger,
) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))
	app.Use(logger.New())

	// Swagger - importing docs registers the spec via init()
	_ = docs.SwaggerInfo
	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Finance Dashboard API",
			"status":  "running",
		})
	})

	identity := middleware.UserIdentity(authCfg.JWTSecret, appLogger)

	expenses := app.Group("/expenses", identity)
	expenses.Post("", expenseHandler.CreateExpense)
	expenses.Get("/:user_id", expenseHandler.ListExpenses)
	expenses.Put("/:id", expenseHandler.UpdateExpense)
	expenses.Delete("/:id", expenseHandler.DeleteExpense)

	// Static segments before the :user_id wildcard
	categories := app.Group("/categories", identity)
	categories.Post("/suggest", categoryHandler.SuggestCategory)
	categories.Post("/correction", categoryHandler.RecordCorrection)
	categories.Post("", categoryHandler.CreateCategory)
	categories.Get("/:user_id", categoryHandler.ListCategories)
	categories.Put("/:id", categoryHandler.UpdateCategory)
	categories.Delete("/:id", categoryHandler.DeleteCategory)

	analytics := app.Group("/analytics", identity)
	analytics.Get("/monthly/:user_id", analyticsHandler.MonthlyAnalytics)
	analytics.Get("/category/:user_id", analyticsHandler.CategoryAnalytics)
	analytics.Get("/category-all/:user_id", analyticsHandler.CategoryAnalyticsAllTime)

	budgets := app.Group("/budgets", identity)
	budgets.Post("", budgetHandler.CreateBudget)
	budgets.Get("/:user_id", budgetHandler.ListBudgets)

	app.Post("/upload/csv/:user_id", identity, uploadHandler.UploadExpenses)

	return app
}
