// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/budgetbook/backend/internal/application/usecase/transaction"
	"github.com/budgetbook/backend/internal/domain/entity"
)

// SourceRefRequest identifies a transaction endpoint in a request. The
// split placeholder is {"kind": "split"} with no id.
type SourceRefRequest struct {
	Kind string `json:"kind" binding:"required,oneof=account category split"`
	ID   string `json:"id,omitempty" binding:"omitempty,uuid"`
}

// SplitRequest represents one split entry on a transaction side.
type SplitRequest struct {
	Source SourceRefRequest `json:"source" binding:"required"`
	Amount string           `json:"amount" binding:"required"`
}

// CreateTransactionRequest represents the request body for transaction
// creation.
type CreateTransactionRequest struct {
	Date        string           `json:"date" binding:"required"` // YYYY-MM-DD
	Description string           `json:"description,omitempty" binding:"omitempty,max=255"`
	Number      string           `json:"number,omitempty" binding:"omitempty,max=50"`
	Memo        string           `json:"memo,omitempty" binding:"omitempty,max=1000"`
	Amount      string           `json:"amount" binding:"required"`
	From        SourceRefRequest `json:"from" binding:"required"`
	To          SourceRefRequest `json:"to" binding:"required"`
	FromSplits  []SplitRequest   `json:"from_splits,omitempty"`
	ToSplits    []SplitRequest   `json:"to_splits,omitempty"`

	ClearedFrom    bool `json:"cleared_from,omitempty"`
	ClearedTo      bool `json:"cleared_to,omitempty"`
	ReconciledFrom bool `json:"reconciled_from,omitempty"`
	ReconciledTo   bool `json:"reconciled_to,omitempty"`
}

// UpdateTransactionRequest represents the request body for transaction
// update. Omitted fields are left unchanged; an empty split array clears
// that side.
type UpdateTransactionRequest struct {
	Date        *string           `json:"date,omitempty"`
	Description *string           `json:"description,omitempty" binding:"omitempty,max=255"`
	Number      *string           `json:"number,omitempty" binding:"omitempty,max=50"`
	Memo        *string           `json:"memo,omitempty" binding:"omitempty,max=1000"`
	Amount      *string           `json:"amount,omitempty"`
	From        *SourceRefRequest `json:"from,omitempty"`
	To          *SourceRefRequest `json:"to,omitempty"`
	FromSplits  []SplitRequest    `json:"from_splits,omitempty"`
	ToSplits    []SplitRequest    `json:"to_splits,omitempty"`

	ClearedFrom    *bool `json:"cleared_from,omitempty"`
	ClearedTo      *bool `json:"cleared_to,omitempty"`
	ReconciledFrom *bool `json:"reconciled_from,omitempty"`
	ReconciledTo   *bool `json:"reconciled_to,omitempty"`
}

// SourceResponse represents a transaction endpoint in API responses.
type SourceResponse struct {
	Kind     string `json:"kind"`
	ID       string `json:"id,omitempty"`
	Name     string `json:"name,omitempty"`
	FullName string `json:"full_name,omitempty"`
}

// SplitResponse represents a split entry in API responses.
type SplitResponse struct {
	ID     string         `json:"id"`
	Source SourceResponse `json:"source"`
	Amount string         `json:"amount"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID          string          `json:"id"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description,omitempty"`
	Number      string          `json:"number,omitempty"`
	Memo        string          `json:"memo,omitempty"`
	Amount      string          `json:"amount"`
	From        SourceResponse  `json:"from"`
	To          SourceResponse  `json:"to"`
	FromSplits  []SplitResponse `json:"from_splits,omitempty"`
	ToSplits    []SplitResponse `json:"to_splits,omitempty"`

	ClearedFrom    bool `json:"cleared_from"`
	ClearedTo      bool `json:"cleared_to"`
	ReconciledFrom bool `json:"reconciled_from"`
	ReconciledTo   bool `json:"reconciled_to"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToSourceRef converts a SourceRefRequest to a use case SourceRef.
func (r SourceRefRequest) ToSourceRef() (transaction.SourceRef, error) {
	ref := transaction.SourceRef{Kind: entity.SourceKind(r.Kind)}
	if r.Kind == string(entity.SourceKindSplit) {
		return ref, nil
	}
	id, err := uuid.Parse(r.ID)
	if err != nil {
		return ref, fmt.Errorf("invalid source id %q: %w", r.ID, err)
	}
	ref.ID = id
	return ref, nil
}

// ToSplitInputs converts split requests to use case inputs.
func ToSplitInputs(requests []SplitRequest) ([]transaction.SplitInput, error) {
	if requests == nil {
		return nil, nil
	}
	inputs := make([]transaction.SplitInput, 0, len(requests))
	for _, r := range requests {
		source, err := r.Source.ToSourceRef()
		if err != nil {
			return nil, err
		}
		amount, err := ParseAmount(r.Amount)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, transaction.SplitInput{Source: source, Amount: amount})
	}
	return inputs, nil
}

// ToTransactionResponse converts a TransactionOutput to a response DTO.
func ToTransactionResponse(output *transaction.TransactionOutput) TransactionResponse {
	return TransactionResponse{
		ID:             output.ID.String(),
		Date:           output.Date,
		Description:    output.Description,
		Number:         output.Number,
		Memo:           output.Memo,
		Amount:         FormatAmount(output.Amount),
		From:           toSourceResponse(output.From),
		To:             toSourceResponse(output.To),
		FromSplits:     toSplitResponses(output.FromSplits),
		ToSplits:       toSplitResponses(output.ToSplits),
		ClearedFrom:    output.ClearedFrom,
		ClearedTo:      output.ClearedTo,
		ReconciledFrom: output.ReconciledFrom,
		ReconciledTo:   output.ReconciledTo,
	}
}

// ToTransactionListResponse converts a ListTransactionsOutput to a
// response DTO.
func ToTransactionListResponse(output *transaction.ListTransactionsOutput) TransactionListResponse {
	transactions := make([]TransactionResponse, len(output.Transactions))
	for i, t := range output.Transactions {
		transactions[i] = ToTransactionResponse(t)
	}
	return TransactionListResponse{Transactions: transactions}
}

func toSourceResponse(s transaction.SourceOutput) SourceResponse {
	response := SourceResponse{
		Kind:     string(s.Kind),
		Name:     s.Name,
		FullName: s.FullName,
	}
	if s.Kind != entity.SourceKindSplit {
		response.ID = s.ID.String()
	}
	return response
}

func toSplitResponses(splits []*transaction.SplitOutput) []SplitResponse {
	if len(splits) == 0 {
		return nil
	}
	out := make([]SplitResponse, len(splits))
	for i, s := range splits {
		out[i] = SplitResponse{
			ID:     s.ID.String(),
			Source: toSourceResponse(s.Source),
			Amount: FormatAmount(s.Amount),
		}
	}
	return out
}
