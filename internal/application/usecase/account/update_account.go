// Package account contains account-related use cases.
package account

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/budgetbook/backend/internal/application/adapter"
	"github.com/budgetbook/backend/internal/domain/document"
)

// UpdateAccountInput represents the input for account updates. Nil fields
// are left unchanged.
type UpdateAccountInput struct {
	AccountID       uuid.UUID
	Name            *string
	TypeID          *uuid.UUID
	StartingBalance *int64
	StartDate       *time.Time
	Notes           *string
}

// UpdateAccountOutput represents the output of an account update.
type UpdateAccountOutput struct {
	Account *AccountOutput
}

// UpdateAccountUseCase handles account update logic.
type UpdateAccountUseCase struct {
	doc   *document.Document
	store adapter.DocumentStore
}

// NewUpdateAccountUseCase creates a new UpdateAccountUseCase instance.
func NewUpdateAccountUseCase(doc *document.Document, store adapter.DocumentStore) *UpdateAccountUseCase {
	return &UpdateAccountUseCase{doc: doc, store: store}
}

// Execute applies the update and persists the document.
func (uc *UpdateAccountUseCase) Execute(ctx context.Context, input UpdateAccountInput) (*UpdateAccountOutput, error) {
	err := uc.doc.UpdateAccount(input.AccountID, document.AccountUpdate{
		Name:            input.Name,
		TypeID:          input.TypeID,
		StartingBalance: input.StartingBalance,
		StartDate:       input.StartDate,
		Notes:           input.Notes,
	})
	if err != nil {
		return nil, err
	}
	if err := uc.store.Save(ctx, uc.doc); err != nil {
		return nil, err
	}

	account, err := uc.doc.AccountByID(input.AccountID)
	if err != nil {
		return nil, err
	}
	balances, err := uc.doc.BalancesAsOf(account.ID, time.Now())
	if err != nil {
		return nil, err
	}
	return &UpdateAccountOutput{Account: toAccountOutput(account, balances)}, nil
}
