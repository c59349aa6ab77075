// Package scheduled contains scheduled transaction use cases.
package scheduled

import (
	"context"

	"github.com/google/uuid"

	"github.com/budgetbook/backend/internal/application/adapter"
	"github.com/budgetbook/backend/internal/domain/document"
)

// DeleteScheduledInput represents the input for deleting a template.
type DeleteScheduledInput struct {
	ScheduledID uuid.UUID
}

// DeleteScheduledUseCase handles scheduled transaction deletion.
type DeleteScheduledUseCase struct {
	doc   *document.Document
	store adapter.DocumentStore
}

// NewDeleteScheduledUseCase creates a new DeleteScheduledUseCase instance.
func NewDeleteScheduledUseCase(doc *document.Document, store adapter.DocumentStore) *DeleteScheduledUseCase {
	return &DeleteScheduledUseCase{doc: doc, store: store}
}

// Execute removes the template and persists the document. Transactions
// already materialized from it stay in the ledger.
func (uc *DeleteScheduledUseCase) Execute(ctx context.Context, input DeleteScheduledInput) error {
	if err := uc.doc.RemoveScheduledTransaction(input.ScheduledID); err != nil {
		return err
	}
	return uc.store.Save(ctx, uc.doc)
}
