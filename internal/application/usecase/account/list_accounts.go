// Package account contains account-related use cases.
package account

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/budgetbook/backend/internal/domain/document"
	"github.com/budgetbook/backend/internal/domain/entity"
)

// ListAccountsInput represents the input for listing accounts.
type ListAccountsInput struct {
	IncludeDeleted bool
}

// AccountOutput represents a single account in the output. Balances are as
// of the day the query ran.
type AccountOutput struct {
	ID                uuid.UUID
	Name              string
	TypeID            uuid.UUID
	TypeName          string
	Credit            bool
	StartingBalance   int64
	StartDate         time.Time
	Notes             string
	Deleted           bool
	Balance           int64
	ClearedBalance    int64
	ReconciledBalance int64
}

// AccountTypeOutput represents an account type in the output.
type AccountTypeOutput struct {
	ID       uuid.UUID
	Name     string
	Credit   bool
	Expanded bool
}

// ListAccountsOutput represents the output of listing accounts.
type ListAccountsOutput struct {
	Accounts []*AccountOutput
	NetWorth int64
}

// ListAccountsUseCase handles account listing logic.
type ListAccountsUseCase struct {
	doc *document.Document
}

// NewListAccountsUseCase creates a new ListAccountsUseCase instance.
func NewListAccountsUseCase(doc *document.Document) *ListAccountsUseCase {
	return &ListAccountsUseCase{doc: doc}
}

// Execute lists accounts with their current balances and the net worth of
// the non-deleted set.
func (uc *ListAccountsUseCase) Execute(ctx context.Context, input ListAccountsInput) (*ListAccountsOutput, error) {
	now := time.Now()
	accounts := uc.doc.Accounts(input.IncludeDeleted)
	out := &ListAccountsOutput{
		Accounts: make([]*AccountOutput, 0, len(accounts)),
		NetWorth: uc.doc.NetWorth(now),
	}
	for _, a := range accounts {
		balances, err := uc.doc.BalancesAsOf(a.ID, now)
		if err != nil {
			return nil, err
		}
		output := toAccountOutput(a, balances)
		out.Accounts = append(out.Accounts, output)
	}
	return out, nil
}

func toAccountOutput(a *entity.Account, balances document.AccountBalances) *AccountOutput {
	out := &AccountOutput{
		ID:                a.ID,
		Name:              a.Name,
		StartingBalance:   a.StartingBalance,
		StartDate:         a.StartDate,
		Notes:             a.Notes,
		Deleted:           a.Deleted,
		Balance:           balances.Balance,
		ClearedBalance:    balances.Cleared,
		ReconciledBalance: balances.Reconciled,
	}
	if a.Type != nil {
		out.TypeID = a.Type.ID
		out.TypeName = a.Type.Name
		out.Credit = a.Type.Credit
	}
	return out
}
