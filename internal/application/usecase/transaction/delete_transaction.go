// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"

	"github.com/google/uuid"

	"github.com/budgetbook/backend/internal/application/adapter"
	"github.com/budgetbook/backend/internal/domain/document"
)

// DeleteTransactionInput represents the input for transaction deletion.
type DeleteTransactionInput struct {
	TransactionID uuid.UUID
}

// DeleteTransactionUseCase handles transaction deletion logic.
type DeleteTransactionUseCase struct {
	doc   *document.Document
	store adapter.DocumentStore
}

// NewDeleteTransactionUseCase creates a new DeleteTransactionUseCase instance.
func NewDeleteTransactionUseCase(doc *document.Document, store adapter.DocumentStore) *DeleteTransactionUseCase {
	return &DeleteTransactionUseCase{doc: doc, store: store}
}

// Execute removes the transaction from the ledger and persists the document.
func (uc *DeleteTransactionUseCase) Execute(ctx context.Context, input DeleteTransactionInput) error {
	if err := uc.doc.RemoveTransaction(input.TransactionID); err != nil {
		return err
	}
	return uc.store.Save(ctx, uc.doc)
}
