// Package category contains budget category-related use cases.
package category

import (
	"context"

	"github.com/google/uuid"

	"github.com/budgetbook/backend/internal/application/adapter"
	"github.com/budgetbook/backend/internal/domain/document"
	"github.com/budgetbook/backend/internal/domain/entity"
)

// CreateCategoryInput represents the input for category creation.
type CreateCategoryInput struct {
	Name       string
	PeriodType entity.PeriodType
	Income     bool
	ParentID   *uuid.UUID
	Notes      string
}

// CreateCategoryOutput represents the output of category creation.
type CreateCategoryOutput struct {
	Category *CategoryOutput
}

// CreateCategoryUseCase handles category creation logic.
type CreateCategoryUseCase struct {
	doc   *document.Document
	store adapter.DocumentStore
}

// NewCreateCategoryUseCase creates a new CreateCategoryUseCase instance.
func NewCreateCategoryUseCase(doc *document.Document, store adapter.DocumentStore) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{doc: doc, store: store}
}

// Execute creates the category and persists the document.
func (uc *CreateCategoryUseCase) Execute(ctx context.Context, input CreateCategoryInput) (*CreateCategoryOutput, error) {
	category, err := uc.doc.AddBudgetCategory(input.Name, input.PeriodType, input.Income, input.ParentID)
	if err != nil {
		return nil, err
	}
	if input.Notes != "" {
		notes := input.Notes
		if err := uc.doc.UpdateBudgetCategory(category.ID, document.CategoryUpdate{Notes: &notes}); err != nil {
			return nil, err
		}
	}
	if err := uc.store.Save(ctx, uc.doc); err != nil {
		return nil, err
	}
	return &CreateCategoryOutput{Category: toCategoryOutput(category)}, nil
}
