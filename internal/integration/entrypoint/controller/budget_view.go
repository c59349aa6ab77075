// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/budgetbook/backend/internal/application/usecase/budgetview"
	"github.com/budgetbook/backend/internal/domain/entity"
	domainerror "github.com/budgetbook/backend/internal/domain/error"
	"github.com/budgetbook/backend/internal/integration/entrypoint/dto"
)

// BudgetViewController handles budgeting view navigation endpoints.
type BudgetViewController struct {
	getUseCase *budgetview.GetViewUseCase
	setUseCase *budgetview.SetViewUseCase
}

// NewBudgetViewController creates a new budget view controller instance.
func NewBudgetViewController(
	getUseCase *budgetview.GetViewUseCase,
	setUseCase *budgetview.SetViewUseCase,
) *BudgetViewController {
	return &BudgetViewController{
		getUseCase: getUseCase,
		setUseCase: setUseCase,
	}
}

// Get handles GET /views requests. Without a name it reads the default view.
func (c *BudgetViewController) Get(ctx *gin.Context) {
	input := budgetview.GetViewInput{Name: ctx.Query("name")}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleViewError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToViewResponse(output.View))
}

// Set handles PUT /views requests.
func (c *BudgetViewController) Set(ctx *gin.Context) {
	var req dto.SetViewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := budgetview.SetViewInput{Name: ctx.Query("name")}

	if req.PeriodType != nil {
		periodType := entity.PeriodType(*req.PeriodType)
		input.PeriodType = &periodType
	}
	if req.Date != nil {
		date, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid date format. Use YYYY-MM-DD",
			})
			return
		}
		input.Date = &date
	}

	output, err := c.setUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleViewError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToViewResponse(output.View))
}

// handleViewError handles budgeting view errors and returns appropriate
// HTTP responses.
func (c *BudgetViewController) handleViewError(ctx *gin.Context, err error) {
	var budgetErr *domainerror.BudgetError
	if errors.As(err, &budgetErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
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
