package entity

import (
	"time"

	"github.com/google/uuid"
)

// AccountType classifies accounts as debit (assets) or credit (liabilities)
// and groups them for display. The Expanded flag is persisted UI state and
// plays no part in any computation.
type AccountType struct {
	ID       uuid.UUID
	Name     string
	Credit   bool
	Expanded bool
}

// NewAccountType creates a new AccountType.
func NewAccountType(name string, credit bool) *AccountType {
	return &AccountType{
		ID:       uuid.New(),
		Name:     name,
		Credit:   credit,
		Expanded: true,
	}
}

// DefaultAccountTypes returns the account types installed in a new document.
func DefaultAccountTypes() []*AccountType {
	return []*AccountType{
		NewAccountType("Checking", false),
		NewAccountType("Savings", false),
		NewAccountType("Cash", false),
		NewAccountType("Investment", false),
		NewAccountType("Credit Card", true),
		NewAccountType("Loan", true),
		NewAccountType("Liability", true),
	}
}

// Account represents a monetary account. Its balance is never stored: it is
// always derivable from StartingBalance plus ledger replay.
type Account struct {
	ID              uuid.UUID
	Name            string
	Type            *AccountType
	StartingBalance int64 // minor currency units
	StartDate       time.Time
	Notes           string
	Deleted         bool
}

// NewAccount creates a new Account entity.
func NewAccount(name string, accountType *AccountType, startingBalance int64, startDate time.Time) *Account {
	return &Account{
		ID:              uuid.New(),
		Name:            name,
		Type:            accountType,
		StartingBalance: startingBalance,
		StartDate:       Day(startDate),
	}
}

// Source implementation.

func (a *Account) SourceID() uuid.UUID    { return a.ID }
func (a *Account) SourceKind() SourceKind { return SourceKindAccount }
func (a *Account) SourceName() string     { return a.Name }
func (a *Account) SourceFullName() string { return a.Name }
func (a *Account) IsDeleted() bool        { return a.Deleted }
func (a *Account) IsIncome() bool         { return false }

// IsCredit reports whether the account is a liability-style account.
func (a *Account) IsCredit() bool {
	return a.Type != nil && a.Type.Credit
}
