// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/budgetbook/backend/internal/application/usecase/account"
)

// CreateAccountRequest represents the request body for account creation.
type CreateAccountRequest struct {
	Name            string `json:"name" binding:"required,min=1,max=100"`
	TypeID          string `json:"type_id" binding:"required,uuid"`
	StartingBalance string `json:"starting_balance,omitempty"`
	StartDate       string `json:"start_date,omitempty"` // YYYY-MM-DD, defaults to today
	Notes           string `json:"notes,omitempty"`
}

// UpdateAccountRequest represents the request body for account update.
type UpdateAccountRequest struct {
	Name            *string `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	TypeID          *string `json:"type_id,omitempty" binding:"omitempty,uuid"`
	StartingBalance *string `json:"starting_balance,omitempty"`
	StartDate       *string `json:"start_date,omitempty"`
	Notes           *string `json:"notes,omitempty"`
}

// AccountResponse represents a single account in API responses.
type AccountResponse struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	TypeID            string    `json:"type_id"`
	TypeName          string    `json:"type_name"`
	Credit            bool      `json:"credit"`
	StartingBalance   string    `json:"starting_balance"`
	StartDate         time.Time `json:"start_date"`
	Notes             string    `json:"notes,omitempty"`
	Deleted           bool      `json:"deleted"`
	Balance           string    `json:"balance"`
	ClearedBalance    string    `json:"cleared_balance"`
	ReconciledBalance string    `json:"reconciled_balance"`
}

// AccountListResponse represents the response for listing accounts.
type AccountListResponse struct {
	Accounts []AccountResponse `json:"accounts"`
	NetWorth string            `json:"net_worth"`
}

// AccountTypeResponse represents an account type in API responses.
type AccountTypeResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Credit   bool   `json:"credit"`
	Expanded bool   `json:"expanded"`
}

// AccountTypeListResponse represents the response for listing account types.
type AccountTypeListResponse struct {
	Types []AccountTypeResponse `json:"types"`
}

// BalanceResponse represents the response for a balance query.
type BalanceResponse struct {
	AccountID  string    `json:"account_id"`
	AsOf       time.Time `json:"as_of"`
	Balance    string    `json:"balance"`
	Cleared    string    `json:"cleared"`
	Reconciled string    `json:"reconciled"`
}

// ToAccountResponse converts an AccountOutput to an AccountResponse DTO.
func ToAccountResponse(output *account.AccountOutput) AccountResponse {
	return AccountResponse{
		ID:                output.ID.String(),
		Name:              output.Name,
		TypeID:            output.TypeID.String(),
		TypeName:          output.TypeName,
		Credit:            output.Credit,
		StartingBalance:   FormatAmount(output.StartingBalance),
		StartDate:         output.StartDate,
		Notes:             output.Notes,
		Deleted:           output.Deleted,
		Balance:           FormatAmount(output.Balance),
		ClearedBalance:    FormatAmount(output.ClearedBalance),
		ReconciledBalance: FormatAmount(output.ReconciledBalance),
	}
}

// ToAccountListResponse converts a ListAccountsOutput to a response DTO.
func ToAccountListResponse(output *account.ListAccountsOutput) AccountListResponse {
	accounts := make([]AccountResponse, len(output.Accounts))
	for i, a := range output.Accounts {
		accounts[i] = ToAccountResponse(a)
	}
	return AccountListResponse{
		Accounts: accounts,
		NetWorth: FormatAmount(output.NetWorth),
	}
}

// ToAccountTypeListResponse converts a ListAccountTypesOutput to a
// response DTO.
func ToAccountTypeListResponse(output *account.ListAccountTypesOutput) AccountTypeListResponse {
	types := make([]AccountTypeResponse, len(output.Types))
	for i, at := range output.Types {
		types[i] = AccountTypeResponse{
			ID:       at.ID.String(),
			Name:     at.Name,
			Credit:   at.Credit,
			Expanded: at.Expanded,
		}
	}
	return AccountTypeListResponse{Types: types}
}

// ToBalanceResponse converts a GetBalanceOutput to a BalanceResponse DTO.
func ToBalanceResponse(output *account.GetBalanceOutput) BalanceResponse {
	return BalanceResponse{
		AccountID:  output.AccountID.String(),
		AsOf:       output.AsOf,
		Balance:    FormatAmount(output.Balance),
		Cleared:    FormatAmount(output.Cleared),
		Reconciled: FormatAmount(output.Reconciled),
	}
}
