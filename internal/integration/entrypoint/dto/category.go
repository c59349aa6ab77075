// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/budgetbook/backend/internal/application/usecase/category"
)

// CreateCategoryRequest represents the request body for category creation.
type CreateCategoryRequest struct {
	Name       string  `json:"name" binding:"required,min=1,max=100"`
	PeriodType string  `json:"period_type" binding:"required,oneof=week semi_month month quarter year"`
	Income     bool    `json:"income"`
	ParentID   *string `json:"parent_id,omitempty" binding:"omitempty,uuid"`
	Notes      string  `json:"notes,omitempty"`
}

// UpdateCategoryRequest represents the request body for category update.
// ParentID set to the zero UUID moves the category to the forest root.
type UpdateCategoryRequest struct {
	Name     *string `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Income   *bool   `json:"income,omitempty"`
	Notes    *string `json:"notes,omitempty"`
	Expanded *bool   `json:"expanded,omitempty"`
	ParentID *string `json:"parent_id,omitempty" binding:"omitempty,uuid"`
}

// SetBudgetAmountRequest represents the request body for storing a
// budgeted amount.
type SetBudgetAmountRequest struct {
	Date   string `json:"date" binding:"required"` // YYYY-MM-DD
	Amount string `json:"amount" binding:"required"`
}

// CategoryResponse represents a single budget category in API responses.
type CategoryResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	FullName   string  `json:"full_name"`
	ParentID   *string `json:"parent_id,omitempty"`
	PeriodType string  `json:"period_type"`
	Income     bool    `json:"income"`
	Expanded   bool    `json:"expanded"`
	Deleted    bool    `json:"deleted"`
	Notes      string  `json:"notes,omitempty"`
	Depth      int     `json:"depth"`
}

// CategoryListResponse represents the response for listing categories.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// BudgetAmountResponse represents the response for storing a budgeted
// amount.
type BudgetAmountResponse struct {
	Category  CategoryResponse `json:"category"`
	PeriodKey string           `json:"period_key"`
	Amount    string           `json:"amount"`
}

// ToCategoryResponse converts a CategoryOutput to a CategoryResponse DTO.
func ToCategoryResponse(output *category.CategoryOutput) CategoryResponse {
	response := CategoryResponse{
		ID:         output.ID.String(),
		Name:       output.Name,
		FullName:   output.FullName,
		PeriodType: string(output.PeriodType),
		Income:     output.Income,
		Expanded:   output.Expanded,
		Deleted:    output.Deleted,
		Notes:      output.Notes,
		Depth:      output.Depth,
	}
	if output.ParentID != nil {
		parentID := output.ParentID.String()
		response.ParentID = &parentID
	}
	return response
}

// ToCategoryListResponse converts a ListCategoriesOutput to a response DTO.
func ToCategoryListResponse(output *category.ListCategoriesOutput) CategoryListResponse {
	categories := make([]CategoryResponse, len(output.Categories))
	for i, c := range output.Categories {
		categories[i] = ToCategoryResponse(c)
	}
	return CategoryListResponse{Categories: categories}
}

// ToBudgetAmountResponse converts a SetBudgetAmountOutput to a response DTO.
func ToBudgetAmountResponse(output *category.SetBudgetAmountOutput) BudgetAmountResponse {
	return BudgetAmountResponse{
		Category:  ToCategoryResponse(output.Category),
		PeriodKey: output.PeriodKey,
		Amount:    FormatAmount(output.Amount),
	}
}
