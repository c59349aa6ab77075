// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/budgetbook/backend/internal/application/adapter"
	"github.com/budgetbook/backend/internal/domain/document"
	"github.com/budgetbook/backend/internal/domain/entity"
)

// UpdateTransactionInput represents the input for transaction updates. Nil
// fields are left unchanged; a non-nil empty split slice clears that side.
type UpdateTransactionInput struct {
	TransactionID uuid.UUID
	Date          *time.Time
	Description   *string
	Number        *string
	Memo          *string
	Amount        *int64
	From          *SourceRef
	To            *SourceRef
	FromSplits    []SplitInput
	ToSplits      []SplitInput

	ClearedFrom    *bool
	ClearedTo      *bool
	ReconciledFrom *bool
	ReconciledTo   *bool
}

// UpdateTransactionOutput represents the output of a transaction update.
type UpdateTransactionOutput struct {
	Transaction *TransactionOutput
}

// UpdateTransactionUseCase handles transaction update logic.
type UpdateTransactionUseCase struct {
	doc   *document.Document
	store adapter.DocumentStore
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(doc *document.Document, store adapter.DocumentStore) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{doc: doc, store: store}
}

// Execute applies the update. The document stages and validates the full
// change set before committing, so a rejected edit leaves the ledger
// exactly as it was.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	update := document.TransactionUpdate{
		Date:           input.Date,
		Description:    input.Description,
		Number:         input.Number,
		Memo:           input.Memo,
		Amount:         input.Amount,
		ClearedFrom:    input.ClearedFrom,
		ClearedTo:      input.ClearedTo,
		ReconciledFrom: input.ReconciledFrom,
		ReconciledTo:   input.ReconciledTo,
	}

	var err error
	if input.From != nil {
		if update.From, err = uc.doc.SourceByID(input.From.Kind, input.From.ID); err != nil {
			return nil, err
		}
	}
	if input.To != nil {
		if update.To, err = uc.doc.SourceByID(input.To.Kind, input.To.ID); err != nil {
			return nil, err
		}
	}
	if input.FromSplits != nil {
		if update.FromSplits, err = resolveSplits(uc.doc, input.FromSplits); err != nil {
			return nil, err
		}
		if update.FromSplits == nil {
			update.FromSplits = []*entity.TransactionSplit{}
		}
	}
	if input.ToSplits != nil {
		if update.ToSplits, err = resolveSplits(uc.doc, input.ToSplits); err != nil {
			return nil, err
		}
		if update.ToSplits == nil {
			update.ToSplits = []*entity.TransactionSplit{}
		}
	}

	if err := uc.doc.UpdateTransaction(input.TransactionID, update); err != nil {
		return nil, err
	}
	if err := uc.store.Save(ctx, uc.doc); err != nil {
		return nil, err
	}

	t, err := uc.doc.TransactionByID(input.TransactionID)
	if err != nil {
		return nil, err
	}
	return &UpdateTransactionOutput{Transaction: toTransactionOutput(t)}, nil
}
