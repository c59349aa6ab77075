// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/budgetbook/backend/internal/application/usecase/scheduled"
	"github.com/budgetbook/backend/internal/domain/entity"
	domainerror "github.com/budgetbook/backend/internal/domain/error"
	"github.com/budgetbook/backend/internal/integration/entrypoint/dto"
)

// ScheduledController handles scheduled transaction endpoints.
type ScheduledController struct {
	listUseCase        *scheduled.ListScheduledUseCase
	createUseCase      *scheduled.CreateScheduledUseCase
	deleteUseCase      *scheduled.DeleteScheduledUseCase
	materializeUseCase *scheduled.MaterializeScheduledUseCase
}

// NewScheduledController creates a new scheduled transaction controller
// instance.
func NewScheduledController(
	listUseCase *scheduled.ListScheduledUseCase,
	createUseCase *scheduled.CreateScheduledUseCase,
	deleteUseCase *scheduled.DeleteScheduledUseCase,
	materializeUseCase *scheduled.MaterializeScheduledUseCase,
) *ScheduledController {
	return &ScheduledController{
		listUseCase:        listUseCase,
		createUseCase:      createUseCase,
		deleteUseCase:      deleteUseCase,
		materializeUseCase: materializeUseCase,
	}
}

// List handles GET /scheduled requests.
func (c *ScheduledController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleScheduledError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToScheduledListResponse(output))
}

// Create handles POST /scheduled requests.
func (c *ScheduledController) Create(ctx *gin.Context) {
	var req dto.CreateScheduledRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid start date format. Use YYYY-MM-DD",
		})
		return
	}

	amount, err := dto.ParseAmount(req.Amount)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid amount: " + err.Error(),
		})
		return
	}

	from, err := dto.ToScheduledSourceRef(req.From)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	to, err := dto.ToScheduledSourceRef(req.To)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := scheduled.CreateScheduledInput{
		Name:        req.Name,
		Frequency:   entity.Frequency(req.Frequency),
		StartDate:   startDate,
		Amount:      amount,
		From:        from,
		To:          to,
		Description: req.Description,
		Memo:        req.Memo,
	}

	if req.EndDate != nil && *req.EndDate != "" {
		endDate, err := time.Parse("2006-01-02", *req.EndDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid end date format. Use YYYY-MM-DD",
			})
			return
		}
		input.EndDate = &endDate
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleScheduledError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToScheduledResponse(output.Scheduled))
}

// Delete handles DELETE /scheduled/:id requests.
func (c *ScheduledController) Delete(ctx *gin.Context) {
	scheduledID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid scheduled transaction ID format",
		})
		return
	}

	input := scheduled.DeleteScheduledInput{ScheduledID: scheduledID}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleScheduledError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Materialize handles POST /scheduled/materialize requests. It turns every
// due occurrence into a concrete ledger transaction.
func (c *ScheduledController) Materialize(ctx *gin.Context) {
	var req dto.MaterializeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	var input scheduled.MaterializeScheduledInput
	if req.AsOf != "" {
		asOf, err := time.Parse("2006-01-02", req.AsOf)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid as_of date format. Use YYYY-MM-DD",
			})
			return
		}
		input.AsOf = &asOf
	}

	output, err := c.materializeUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleScheduledError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MaterializeResponse{Created: output.Created})
}

// handleScheduledError handles scheduled transaction errors and returns
// appropriate HTTP responses. Endpoint resolution can surface account and
// category lookup errors.
func (c *ScheduledController) handleScheduledError(ctx *gin.Context, err error) {
	var ledgerErr *domainerror.LedgerError
	if errors.As(err, &ledgerErr) {
		statusCode := http.StatusBadRequest
		if ledgerErr.Code == domainerror.ErrCodeScheduledNotFound ||
			ledgerErr.Code == domainerror.ErrCodeTransactionNotFound {
			statusCode = http.StatusNotFound
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: ledgerErr.Message,
			Code:  string(ledgerErr.Code),
		})
		return
	}

	var accErr *domainerror.AccountError
	if errors.As(err, &accErr) {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: accErr.Message,
			Code:  string(accErr.Code),
		})
		return
	}

	var budgetErr *domainerror.BudgetError
	if errors.As(err, &budgetErr) {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
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
