// Package category contains budget category-related use cases.
package category

import (
	"context"

	"github.com/google/uuid"

	"github.com/budgetbook/backend/internal/application/adapter"
	"github.com/budgetbook/backend/internal/domain/document"
)

// DeleteCategoryInput represents the input for category deletion.
type DeleteCategoryInput struct {
	CategoryID uuid.UUID
}

// DeleteCategoryUseCase handles category soft-deletion logic.
type DeleteCategoryUseCase struct {
	doc   *document.Document
	store adapter.DocumentStore
}

// NewDeleteCategoryUseCase creates a new DeleteCategoryUseCase instance.
func NewDeleteCategoryUseCase(doc *document.Document, store adapter.DocumentStore) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{doc: doc, store: store}
}

// Execute soft-deletes the category, re-parenting its children, and
// persists the document.
func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, input DeleteCategoryInput) error {
	if err := uc.doc.RemoveBudgetCategory(input.CategoryID); err != nil {
		return err
	}
	return uc.store.Save(ctx, uc.doc)
}
