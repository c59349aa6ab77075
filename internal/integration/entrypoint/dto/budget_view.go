// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/budgetbook/backend/internal/application/usecase/budgetview"
)

// SetViewRequest represents the request body for changing a budgeting
// view. Omitted fields are left unchanged.
type SetViewRequest struct {
	PeriodType *string `json:"period_type,omitempty" binding:"omitempty,oneof=week semi_month month quarter year"`
	Date       *string `json:"date,omitempty"` // YYYY-MM-DD
}

// ViewResponse represents the navigation state of a budgeting view.
type ViewResponse struct {
	Name        string    `json:"name"`
	PeriodType  string    `json:"period_type"`
	Date        time.Time `json:"date"`
	PeriodStart time.Time `json:"period_start"`
	PeriodEnd   time.Time `json:"period_end"`
}

// ToViewResponse converts a ViewOutput to a response DTO.
func ToViewResponse(view *budgetview.ViewOutput) ViewResponse {
	return ViewResponse{
		Name:        view.Name,
		PeriodType:  string(view.PeriodType),
		Date:        view.Date,
		PeriodStart: view.PeriodStart,
		PeriodEnd:   view.PeriodEnd,
	}
}
