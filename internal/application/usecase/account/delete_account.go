// Package account contains account-related use cases.
package account

import (
	"context"

	"github.com/google/uuid"

	"github.com/budgetbook/backend/internal/application/adapter"
	"github.com/budgetbook/backend/internal/domain/document"
)

// DeleteAccountInput represents the input for account deletion.
type DeleteAccountInput struct {
	AccountID uuid.UUID
}

// DeleteAccountUseCase handles account soft-deletion logic.
type DeleteAccountUseCase struct {
	doc   *document.Document
	store adapter.DocumentStore
}

// NewDeleteAccountUseCase creates a new DeleteAccountUseCase instance.
func NewDeleteAccountUseCase(doc *document.Document, store adapter.DocumentStore) *DeleteAccountUseCase {
	return &DeleteAccountUseCase{doc: doc, store: store}
}

// Execute soft-deletes the account and persists the document. History
// referencing the account stays intact.
func (uc *DeleteAccountUseCase) Execute(ctx context.Context, input DeleteAccountInput) error {
	if err := uc.doc.RemoveAccount(input.AccountID); err != nil {
		return err
	}
	return uc.store.Save(ctx, uc.doc)
}
