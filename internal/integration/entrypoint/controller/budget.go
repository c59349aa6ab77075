// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/budgetbook/backend/internal/application/usecase/budget"
	"github.com/budgetbook/backend/internal/domain/entity"
	domainerror "github.com/budgetbook/backend/internal/domain/error"
	"github.com/budgetbook/backend/internal/integration/entrypoint/dto"
)

// BudgetController handles budget evaluation endpoints.
type BudgetController struct {
	evaluateUseCase  *budget.EvaluateBudgetUseCase
	netIncomeUseCase *budget.GetNetIncomeUseCase
	netWorthUseCase  *budget.GetNetWorthUseCase
}

// NewBudgetController creates a new budget controller instance.
func NewBudgetController(
	evaluateUseCase *budget.EvaluateBudgetUseCase,
	netIncomeUseCase *budget.GetNetIncomeUseCase,
	netWorthUseCase *budget.GetNetWorthUseCase,
) *BudgetController {
	return &BudgetController{
		evaluateUseCase:  evaluateUseCase,
		netIncomeUseCase: netIncomeUseCase,
		netWorthUseCase:  netWorthUseCase,
	}
}

// Evaluate handles GET /budget/evaluate requests. Without a category_id it
// evaluates the whole category forest.
func (c *BudgetController) Evaluate(ctx *gin.Context) {
	input := budget.EvaluateBudgetInput{Date: time.Now()}

	if dateStr := ctx.Query("date"); dateStr != "" {
		date, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid date format. Use YYYY-MM-DD",
			})
			return
		}
		input.Date = date
	}

	if categoryIDStr := ctx.Query("category_id"); categoryIDStr != "" {
		categoryID, err := uuid.Parse(categoryIDStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid category_id format",
			})
			return
		}
		input.CategoryID = &categoryID
	}

	output, err := c.evaluateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToEvaluateBudgetResponse(output))
}

// NetIncome handles GET /budget/net-income requests.
func (c *BudgetController) NetIncome(ctx *gin.Context) {
	input := budget.GetNetIncomeInput{
		PeriodType: entity.PeriodType(ctx.Query("period_type")),
		Date:       time.Now(),
	}

	if dateStr := ctx.Query("date"); dateStr != "" {
		date, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid date format. Use YYYY-MM-DD",
			})
			return
		}
		input.Date = date
	}

	output, err := c.netIncomeUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToNetIncomeResponse(output))
}

// NetWorth handles GET /budget/net-worth requests.
func (c *BudgetController) NetWorth(ctx *gin.Context) {
	var input budget.GetNetWorthInput

	if asOfStr := ctx.Query("as_of"); asOfStr != "" {
		asOf, err := time.Parse("2006-01-02", asOfStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid as_of date format. Use YYYY-MM-DD",
			})
			return
		}
		input.AsOf = &asOf
	}

	output, err := c.netWorthUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToNetWorthResponse(output))
}

// handleBudgetError handles budget errors and returns appropriate HTTP responses.
func (c *BudgetController) handleBudgetError(ctx *gin.Context, err error) {
	var budgetErr *domainerror.BudgetError
	if errors.As(err, &budgetErr) {
		statusCode := http.StatusBadRequest
		if budgetErr.Code == domainerror.ErrCodeCategoryNotFound {
			statusCode = http.StatusNotFound
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: budgetErr.Message,
			Code:  string(budgetErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
