// Package account contains account-related use cases.
package account

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/budgetbook/backend/internal/domain/document"
)

// GetBalanceInput represents the input for a balance query. A nil AsOf
// means the end of the current day.
type GetBalanceInput struct {
	AccountID uuid.UUID
	AsOf      *time.Time
}

// GetBalanceOutput represents the output of a balance query.
type GetBalanceOutput struct {
	AccountID  uuid.UUID
	AsOf       time.Time
	Balance    int64
	Cleared    int64
	Reconciled int64
}

// GetBalanceUseCase handles account balance queries.
type GetBalanceUseCase struct {
	doc *document.Document
}

// NewGetBalanceUseCase creates a new GetBalanceUseCase instance.
func NewGetBalanceUseCase(doc *document.Document) *GetBalanceUseCase {
	return &GetBalanceUseCase{doc: doc}
}

// Execute replays the ledger for the account up to the as-of day.
func (uc *GetBalanceUseCase) Execute(ctx context.Context, input GetBalanceInput) (*GetBalanceOutput, error) {
	asOf := time.Now()
	if input.AsOf != nil {
		asOf = *input.AsOf
	}
	balances, err := uc.doc.BalancesAsOf(input.AccountID, asOf)
	if err != nil {
		return nil, err
	}
	return &GetBalanceOutput{
		AccountID:  input.AccountID,
		AsOf:       balances.AsOf,
		Balance:    balances.Balance,
		Cleared:    balances.Cleared,
		Reconciled: balances.Reconciled,
	}, nil
}
