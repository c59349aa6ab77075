// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/budgetbook/backend/internal/integration/entrypoint/controller"
	"github.com/budgetbook/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	authController        *controller.AuthController
	accountController     *controller.AccountController
	categoryController    *controller.CategoryController
	transactionController *controller.TransactionController
	budgetController      *controller.BudgetController
	scheduledController   *controller.ScheduledController
	budgetViewController  *controller.BudgetViewController
	documentController    *controller.DocumentController
	loginRateLimiter      *middleware.RateLimiter
	authMiddleware        *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	accountController *controller.AccountController,
	categoryController *controller.CategoryController,
	transactionController *controller.TransactionController,
	budgetController *controller.BudgetController,
	scheduledController *controller.ScheduledController,
	budgetViewController *controller.BudgetViewController,
	documentController *controller.DocumentController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:      healthController,
		authController:        authController,
		accountController:     accountController,
		categoryController:    categoryController,
		transactionController: transactionController,
		budgetController:      budgetController,
		scheduledController:   scheduledController,
		budgetViewController:  budgetViewController,
		documentController:    documentController,
		loginRateLimiter:      loginRateLimiter,
		authMiddleware:        authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		// Auth routes
		auth := v1.Group("/auth")
		{
			auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
		}

		// Account routes (require authentication)
		accounts := v1.Group("/accounts")
		accounts.Use(r.authMiddleware.Authenticate())
		{
			accounts.GET("", r.accountController.List)
			accounts.POST("", r.accountController.Create)
			accounts.PATCH("/:id", r.accountController.Update)
			accounts.DELETE("/:id", r.accountController.Delete)
			accounts.GET("/:id/balance", r.accountController.GetBalance)
		}

		accountTypes := v1.Group("/account-types")
		accountTypes.Use(r.authMiddleware.Authenticate())
		{
			accountTypes.GET("", r.accountController.ListTypes)
		}

		// Budget category routes (require authentication)
		categories := v1.Group("/categories")
		categories.Use(r.authMiddleware.Authenticate())
		{
			categories.GET("", r.categoryController.List)
			categories.POST("", r.categoryController.Create)
			categories.PATCH("/:id", r.categoryController.Update)
			categories.DELETE("/:id", r.categoryController.Delete)
			categories.PUT("/:id/budget", r.categoryController.SetBudgetAmount)
		}

		// Transaction routes (require authentication)
		transactions := v1.Group("/transactions")
		transactions.Use(r.authMiddleware.Authenticate())
		{
			transactions.GET("", r.transactionController.List)
			transactions.POST("", r.transactionController.Create)
			transactions.PATCH("/:id", r.transactionController.Update)
			transactions.DELETE("/:id", r.transactionController.Delete)
		}

		// Budget evaluation routes (require authentication)
		budget := v1.Group("/budget")
		budget.Use(r.authMiddleware.Authenticate())
		{
			budget.GET("/evaluate", r.budgetController.Evaluate)
			budget.GET("/net-income", r.budgetController.NetIncome)
			budget.GET("/net-worth", r.budgetController.NetWorth)
		}

		// Scheduled transaction routes (require authentication)
		scheduled := v1.Group("/scheduled")
		scheduled.Use(r.authMiddleware.Authenticate())
		{
			scheduled.GET("", r.scheduledController.List)
			scheduled.POST("", r.scheduledController.Create)
			scheduled.DELETE("/:id", r.scheduledController.Delete)
			scheduled.POST("/materialize", r.scheduledController.Materialize)
		}

		// Budgeting view routes (require authentication)
		views := v1.Group("/views")
		views.Use(r.authMiddleware.Authenticate())
		{
			views.GET("", r.budgetViewController.Get)
			views.PUT("", r.budgetViewController.Set)
		}

		// Document routes (require authentication)
		documents := v1.Group("/document")
		documents.Use(r.authMiddleware.Authenticate())
		{
			documents.POST("/save", r.documentController.Save)
		}
	}
}
