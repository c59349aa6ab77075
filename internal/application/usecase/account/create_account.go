// Package account contains account-related use cases.
package account

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/budgetbook/backend/internal/application/adapter"
	"github.com/budgetbook/backend/internal/domain/document"
)

// CreateAccountInput represents the input for account creation. Amounts are
// minor currency units.
type CreateAccountInput struct {
	Name            string
	TypeID          uuid.UUID
	StartingBalance int64
	StartDate       time.Time
	Notes           string
}

// CreateAccountOutput represents the output of account creation.
type CreateAccountOutput struct {
	Account *AccountOutput
}

// CreateAccountUseCase handles account creation logic.
type CreateAccountUseCase struct {
	doc   *document.Document
	store adapter.DocumentStore
}

// NewCreateAccountUseCase creates a new CreateAccountUseCase instance.
func NewCreateAccountUseCase(doc *document.Document, store adapter.DocumentStore) *CreateAccountUseCase {
	return &CreateAccountUseCase{doc: doc, store: store}
}

// Execute performs the account creation and persists the document.
func (uc *CreateAccountUseCase) Execute(ctx context.Context, input CreateAccountInput) (*CreateAccountOutput, error) {
	account, err := uc.doc.AddAccount(input.Name, input.TypeID, input.StartingBalance, input.StartDate, input.Notes)
	if err != nil {
		return nil, err
	}
	if err := uc.store.Save(ctx, uc.doc); err != nil {
		return nil, err
	}

	balances, err := uc.doc.BalancesAsOf(account.ID, time.Now())
	if err != nil {
		return nil, err
	}
	return &CreateAccountOutput{Account: toAccountOutput(account, balances)}, nil
}
