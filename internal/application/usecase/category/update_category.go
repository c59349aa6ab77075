// Package category contains budget category-related use cases.
package category

import (
	"context"

	"github.com/google/uuid"

	"github.com/budgetbook/backend/internal/application/adapter"
	"github.com/budgetbook/backend/internal/domain/document"
)

// UpdateCategoryInput represents the input for category updates. Nil fields
// are left unchanged; ParentID pointing at uuid.Nil moves the category to
// the forest root.
type UpdateCategoryInput struct {
	CategoryID uuid.UUID
	Name       *string
	Income     *bool
	Notes      *string
	Expanded   *bool
	ParentID   *uuid.UUID
}

// UpdateCategoryOutput represents the output of a category update.
type UpdateCategoryOutput struct {
	Category *CategoryOutput
}

// UpdateCategoryUseCase handles category update logic.
type UpdateCategoryUseCase struct {
	doc   *document.Document
	store adapter.DocumentStore
}

// NewUpdateCategoryUseCase creates a new UpdateCategoryUseCase instance.
func NewUpdateCategoryUseCase(doc *document.Document, store adapter.DocumentStore) *UpdateCategoryUseCase {
	return &UpdateCategoryUseCase{doc: doc, store: store}
}

// Execute applies the update and persists the document.
func (uc *UpdateCategoryUseCase) Execute(ctx context.Context, input UpdateCategoryInput) (*UpdateCategoryOutput, error) {
	err := uc.doc.UpdateBudgetCategory(input.CategoryID, document.CategoryUpdate{
		Name:     input.Name,
		Income:   input.Income,
		Notes:    input.Notes,
		Expanded: input.Expanded,
		Parent:   input.ParentID,
	})
	if err != nil {
		return nil, err
	}
	if err := uc.store.Save(ctx, uc.doc); err != nil {
		return nil, err
	}

	category, err := uc.doc.CategoryByID(input.CategoryID)
	if err != nil {
		return nil, err
	}
	return &UpdateCategoryOutput{Category: toCategoryOutput(category)}, nil
}
