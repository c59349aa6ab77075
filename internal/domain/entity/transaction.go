package entity

import (
	"time"

	"github.com/google/uuid"

	domainerror "github.com/budgetbook/backend/internal/domain/error"
)

// TransactionSplit divides one side of a transaction. It is owned
// exclusively by its parent transaction and never exists outside one.
type TransactionSplit struct {
	ID     uuid.UUID
	Source Source
	Amount int64 // minor currency units, non-negative
}

// NewTransactionSplit creates a split entry for a transaction side.
func NewTransactionSplit(source Source, amount int64) *TransactionSplit {
	return &TransactionSplit{
		ID:     uuid.New(),
		Source: source,
		Amount: amount,
	}
}

// Transaction represents a single double-entry movement of money. Amount is
// always non-negative; direction is encoded by From and To. When a side is
// the split placeholder, the matching split list carries the real sources
// and their amounts must sum to Amount.
type Transaction struct {
	ID          uuid.UUID
	Date        time.Time
	Description string
	Number      string
	Memo        string
	Amount      int64 // minor currency units, non-negative
	From        Source
	To          Source
	FromSplits  []*TransactionSplit
	ToSplits    []*TransactionSplit

	// Cleared/reconciled state is tracked independently per side.
	ClearedFrom    bool
	ClearedTo      bool
	ReconciledFrom bool
	ReconciledTo   bool

	// Sequence is assigned by the ledger on insertion and breaks date ties
	// in range queries. It is not part of the transaction's identity.
	Sequence uint64
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(date time.Time, description string, amount int64, from, to Source) *Transaction {
	return &Transaction{
		ID:          uuid.New(),
		Date:        Day(date),
		Description: description,
		Amount:      amount,
		From:        from,
		To:          to,
	}
}

// Validate checks every structural invariant of the transaction: endpoints
// present and distinct, amount non-negative, and split lists present exactly
// on split sides with amounts summing to the transaction amount.
func (t *Transaction) Validate() error {
	if t.From == nil || t.To == nil {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeNilSource,
			"transaction requires both a from and a to source",
			domainerror.ErrNilSource,
		)
	}
	if t.Amount < 0 {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeNegativeAmount,
			"transaction amount must not be negative",
			domainerror.ErrNegativeAmount,
		)
	}
	if SameSource(t.From, t.To) {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeSameFromTo,
			"transaction from and to must be different sources",
			domainerror.ErrSameFromTo,
		)
	}
	if err := validateSide(t.From, t.FromSplits, t.Amount); err != nil {
		return err
	}
	return validateSide(t.To, t.ToSplits, t.Amount)
}

// validateSide enforces the split-sum invariant for one side.
func validateSide(source Source, splits []*TransactionSplit, amount int64) error {
	if source.SourceKind() != SourceKindSplit {
		if len(splits) > 0 {
			return domainerror.NewLedgerError(
				domainerror.ErrCodeUnexpectedSplits,
				"splits are only allowed when the side is the split placeholder",
				domainerror.ErrUnexpectedSplits,
			)
		}
		return nil
	}

	if len(splits) == 0 {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeEmptySplits,
			"a split side requires at least one split",
			domainerror.ErrEmptySplits,
		)
	}

	var sum int64
	for _, s := range splits {
		if s.Source == nil {
			return domainerror.NewLedgerError(
				domainerror.ErrCodeNilSource,
				"split requires a source",
				domainerror.ErrNilSource,
			)
		}
		if s.Source.SourceKind() == SourceKindSplit {
			return domainerror.NewLedgerError(
				domainerror.ErrCodeSplitSourceInvalid,
				"split source must be a real account or category",
				domainerror.ErrSplitSourceInvalid,
			)
		}
		if s.Amount < 0 {
			return domainerror.NewLedgerError(
				domainerror.ErrCodeNegativeAmount,
				"split amount must not be negative",
				domainerror.ErrNegativeAmount,
			)
		}
		sum += s.Amount
	}
	if sum != amount {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeSplitSumMismatch,
			"split amounts must sum to the transaction amount",
			domainerror.ErrSplitSumMismatch,
		)
	}
	return nil
}

// Touches reports whether source appears as an endpoint or inside a split on
// either side of the transaction.
func (t *Transaction) Touches(source Source) bool {
	return SameSource(t.From, source) || SameSource(t.To, source) ||
		splitsContain(t.FromSplits, source) || splitsContain(t.ToSplits, source)
}

// FromAmount returns how much of the transaction leaves source via the from
// side: the whole amount when source is the from endpoint, the matching
// split amounts when the from side is split, otherwise 0.
func (t *Transaction) FromAmount(source Source) int64 {
	return t.contribution(source, t.From, t.FromSplits)
}

// ToAmount returns how much of the transaction arrives at source via the to
// side.
func (t *Transaction) ToAmount(source Source) int64 {
	return t.contribution(source, t.To, t.ToSplits)
}

func (t *Transaction) contribution(source, side Source, splits []*TransactionSplit) int64 {
	if SameSource(side, source) {
		return t.Amount
	}
	if side.SourceKind() != SourceKindSplit {
		return 0
	}
	var sum int64
	for _, s := range splits {
		if SameSource(s.Source, source) {
			sum += s.Amount
		}
	}
	return sum
}

func splitsContain(splits []*TransactionSplit, source Source) bool {
	for _, s := range splits {
		if SameSource(s.Source, source) {
			return true
		}
	}
	return false
}
