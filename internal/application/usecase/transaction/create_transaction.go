// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"time"

	"github.com/budgetbook/backend/internal/application/adapter"
	"github.com/budgetbook/backend/internal/domain/document"
	"github.com/budgetbook/backend/internal/domain/entity"
)

// CreateTransactionInput represents the input for transaction creation.
// Amounts are minor currency units; direction is carried by From and To.
type CreateTransactionInput struct {
	Date        time.Time
	Description string
	Number      string
	Memo        string
	Amount      int64
	From        SourceRef
	To          SourceRef
	FromSplits  []SplitInput
	ToSplits    []SplitInput

	ClearedFrom    bool
	ClearedTo      bool
	ReconciledFrom bool
	ReconciledTo   bool
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *TransactionOutput
}

// CreateTransactionUseCase handles transaction creation logic.
type CreateTransactionUseCase struct {
	doc   *document.Document
	store adapter.DocumentStore
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(doc *document.Document, store adapter.DocumentStore) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{doc: doc, store: store}
}

// Execute resolves the source references, builds the transaction, and
// appends it to the ledger. The document validates every invariant before
// anything is committed.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	from, err := uc.doc.SourceByID(input.From.Kind, input.From.ID)
	if err != nil {
		return nil, err
	}
	to, err := uc.doc.SourceByID(input.To.Kind, input.To.ID)
	if err != nil {
		return nil, err
	}

	t := entity.NewTransaction(input.Date, input.Description, input.Amount, from, to)
	t.Number = input.Number
	t.Memo = input.Memo
	t.ClearedFrom = input.ClearedFrom
	t.ClearedTo = input.ClearedTo
	t.ReconciledFrom = input.ReconciledFrom
	t.ReconciledTo = input.ReconciledTo

	if t.FromSplits, err = uc.resolveSplits(input.FromSplits); err != nil {
		return nil, err
	}
	if t.ToSplits, err = uc.resolveSplits(input.ToSplits); err != nil {
		return nil, err
	}

	if err := uc.doc.AddTransaction(t); err != nil {
		return nil, err
	}
	if err := uc.store.Save(ctx, uc.doc); err != nil {
		return nil, err
	}
	return &CreateTransactionOutput{Transaction: toTransactionOutput(t)}, nil
}

func (uc *CreateTransactionUseCase) resolveSplits(inputs []SplitInput) ([]*entity.TransactionSplit, error) {
	return resolveSplits(uc.doc, inputs)
}

// resolveSplits maps split inputs to entities, resolving each source
// against the document.
func resolveSplits(doc *document.Document, inputs []SplitInput) ([]*entity.TransactionSplit, error) {
	if len(inputs) == 0 {
		return nil, nil
	}
	splits := make([]*entity.TransactionSplit, 0, len(inputs))
	for _, in := range inputs {
		source, err := doc.SourceByID(in.Source.Kind, in.Source.ID)
		if err != nil {
			return nil, err
		}
		splits = append(splits, entity.NewTransactionSplit(source, in.Amount))
	}
	return splits, nil
}
