// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/budgetbook/backend/internal/domain/document"
	"github.com/budgetbook/backend/internal/domain/entity"
)

// SourceRef identifies one endpoint of a transaction by kind and id. The
// split placeholder is referenced by kind alone.
type SourceRef struct {
	Kind entity.SourceKind
	ID   uuid.UUID
}

// SplitInput represents one split entry on a transaction side.
type SplitInput struct {
	Source SourceRef
	Amount int64
}

// ListTransactionsInput represents the input for listing transactions. A
// nil Source lists across all sources; nil dates default to an unbounded
// range. The range is half-open: [StartDate, EndDate).
type ListTransactionsInput struct {
	Source    *SourceRef
	StartDate *time.Time
	EndDate   *time.Time
}

// SourceOutput represents a transaction endpoint in the output.
type SourceOutput struct {
	Kind     entity.SourceKind
	ID       uuid.UUID
	Name     string
	FullName string
}

// SplitOutput represents a split entry in the output.
type SplitOutput struct {
	ID     uuid.UUID
	Source SourceOutput
	Amount int64
}

// TransactionOutput represents a single transaction in the output.
type TransactionOutput struct {
	ID          uuid.UUID
	Date        time.Time
	Description string
	Number      string
	Memo        string
	Amount      int64
	From        SourceOutput
	To          SourceOutput
	FromSplits  []*SplitOutput
	ToSplits    []*SplitOutput

	ClearedFrom    bool
	ClearedTo      bool
	ReconciledFrom bool
	ReconciledTo   bool
}

// ListTransactionsOutput represents the output of listing transactions,
// ordered by date ascending with insertion-order ties.
type ListTransactionsOutput struct {
	Transactions []*TransactionOutput
}

// ListTransactionsUseCase handles transaction listing logic.
type ListTransactionsUseCase struct {
	doc *document.Document
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(doc *document.Document) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{doc: doc}
}

// Execute lists the transactions matching the filter.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	var source entity.Source
	if input.Source != nil {
		resolved, err := uc.doc.SourceByID(input.Source.Kind, input.Source.ID)
		if err != nil {
			return nil, err
		}
		source = resolved
	}

	start := entity.NewDate(1, time.January, 1)
	if input.StartDate != nil {
		start = *input.StartDate
	}
	end := entity.NewDate(9999, time.January, 1)
	if input.EndDate != nil {
		end = *input.EndDate
	}

	transactions := uc.doc.TransactionsInRange(source, start, end)
	out := &ListTransactionsOutput{Transactions: make([]*TransactionOutput, 0, len(transactions))}
	for _, t := range transactions {
		out.Transactions = append(out.Transactions, toTransactionOutput(t))
	}
	return out, nil
}

func toSourceOutput(s entity.Source) SourceOutput {
	return SourceOutput{
		Kind:     s.SourceKind(),
		ID:       s.SourceID(),
		Name:     s.SourceName(),
		FullName: s.SourceFullName(),
	}
}

func toSplitOutputs(splits []*entity.TransactionSplit) []*SplitOutput {
	if len(splits) == 0 {
		return nil
	}
	out := make([]*SplitOutput, 0, len(splits))
	for _, s := range splits {
		out = append(out, &SplitOutput{
			ID:     s.ID,
			Source: toSourceOutput(s.Source),
			Amount: s.Amount,
		})
	}
	return out
}

func toTransactionOutput(t *entity.Transaction) *TransactionOutput {
	return &TransactionOutput{
		ID:             t.ID,
		Date:           t.Date,
		Description:    t.Description,
		Number:         t.Number,
		Memo:           t.Memo,
		Amount:         t.Amount,
		From:           toSourceOutput(t.From),
		To:             toSourceOutput(t.To),
		FromSplits:     toSplitOutputs(t.FromSplits),
		ToSplits:       toSplitOutputs(t.ToSplits),
		ClearedFrom:    t.ClearedFrom,
		ClearedTo:      t.ClearedTo,
		ReconciledFrom: t.ReconciledFrom,
		ReconciledTo:   t.ReconciledTo,
	}
}
