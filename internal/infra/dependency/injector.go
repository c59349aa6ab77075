// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/budgetbook/backend/config"
	"github.com/budgetbook/backend/internal/application/adapter"
	"github.com/budgetbook/backend/internal/application/usecase/account"
	"github.com/budgetbook/backend/internal/application/usecase/auth"
	"github.com/budgetbook/backend/internal/application/usecase/budget"
	"github.com/budgetbook/backend/internal/application/usecase/budgetview"
	"github.com/budgetbook/backend/internal/application/usecase/category"
	docusecase "github.com/budgetbook/backend/internal/application/usecase/document"
	"github.com/budgetbook/backend/internal/application/usecase/scheduled"
	"github.com/budgetbook/backend/internal/application/usecase/transaction"
	"github.com/budgetbook/backend/internal/domain/document"
	"github.com/budgetbook/backend/internal/infra/server/router"
	"github.com/budgetbook/backend/internal/integration/adapters"
	"github.com/budgetbook/backend/internal/integration/entrypoint/controller"
	"github.com/budgetbook/backend/internal/integration/entrypoint/middleware"
	"github.com/budgetbook/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Doc    *document.Document
	Store  adapter.DocumentStore
	Router *router.Router

	// MaterializeUseCase is exposed for the background scheduler worker.
	MaterializeUseCase *scheduled.MaterializeScheduledUseCase
}

// NewInjector loads the document from storage and wires all dependencies.
func NewInjector(ctx context.Context, cfg *config.Config, db *gorm.DB, dbHealthChecker func() bool) (*Injector, error) {
	store := persistence.NewDocumentStore(db)

	doc, err := store.Load(ctx)
	if err != nil {
		return nil, err
	}

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.TokenExpiry)

	// Create auth use cases
	loginUseCase := auth.NewLoginUserUseCase(cfg.Auth.Username, cfg.Auth.PasswordHash, passwordService, tokenService)

	// Create account use cases
	listAccountsUseCase := account.NewListAccountsUseCase(doc)
	createAccountUseCase := account.NewCreateAccountUseCase(doc, store)
	updateAccountUseCase := account.NewUpdateAccountUseCase(doc, store)
	deleteAccountUseCase := account.NewDeleteAccountUseCase(doc, store)
	getBalanceUseCase := account.NewGetBalanceUseCase(doc)
	listAccountTypesUseCase := account.NewListAccountTypesUseCase(doc)

	// Create category use cases
	listCategoriesUseCase := category.NewListCategoriesUseCase(doc)
	createCategoryUseCase := category.NewCreateCategoryUseCase(doc, store)
	updateCategoryUseCase := category.NewUpdateCategoryUseCase(doc, store)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(doc, store)
	setBudgetAmountUseCase := category.NewSetBudgetAmountUseCase(doc, store)

	// Create transaction use cases
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(doc)
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(doc, store)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(doc, store)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(doc, store)

	// Create budget use cases
	evaluateBudgetUseCase := budget.NewEvaluateBudgetUseCase(doc)
	getNetIncomeUseCase := budget.NewGetNetIncomeUseCase(doc)
	getNetWorthUseCase := budget.NewGetNetWorthUseCase(doc)

	// Create scheduled transaction use cases
	listScheduledUseCase := scheduled.NewListScheduledUseCase(doc)
	createScheduledUseCase := scheduled.NewCreateScheduledUseCase(doc, store)
	deleteScheduledUseCase := scheduled.NewDeleteScheduledUseCase(doc, store)
	materializeUseCase := scheduled.NewMaterializeScheduledUseCase(doc, store)

	// Create budgeting view use cases
	getViewUseCase := budgetview.NewGetViewUseCase(doc)
	setViewUseCase := budgetview.NewSetViewUseCase(doc, store)

	// Create document use cases
	saveDocumentUseCase := docusecase.NewSaveDocumentUseCase(doc, store)

	// Create controllers
	healthController := controller.NewHealthController(dbHealthChecker)
	authController := controller.NewAuthController(loginUseCase)

	accountController := controller.NewAccountController(
		listAccountsUseCase,
		createAccountUseCase,
		updateAccountUseCase,
		deleteAccountUseCase,
		getBalanceUseCase,
		listAccountTypesUseCase,
	)

	categoryController := controller.NewCategoryController(
		listCategoriesUseCase,
		createCategoryUseCase,
		updateCategoryUseCase,
		deleteCategoryUseCase,
		setBudgetAmountUseCase,
	)

	transactionController := controller.NewTransactionController(
		listTransactionsUseCase,
		createTransactionUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
	)

	budgetController := controller.NewBudgetController(
		evaluateBudgetUseCase,
		getNetIncomeUseCase,
		getNetWorthUseCase,
	)

	scheduledController := controller.NewScheduledController(
		listScheduledUseCase,
		createScheduledUseCase,
		deleteScheduledUseCase,
		materializeUseCase,
	)

	budgetViewController := controller.NewBudgetViewController(
		getViewUseCase,
		setViewUseCase,
	)

	documentController := controller.NewDocumentController(saveDocumentUseCase)

	// Create middleware
	// Use higher rate limits for test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		accountController,
		categoryController,
		transactionController,
		budgetController,
		scheduledController,
		budgetViewController,
		documentController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config:             cfg,
		DB:                 db,
		Doc:                doc,
		Store:              store,
		Router:             r,
		MaterializeUseCase: materializeUseCase,
	}, nil
}
