package document

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/budgetbook/backend/internal/domain/entity"
	domainerror "github.com/budgetbook/backend/internal/domain/error"
)

// AddTransaction validates a transaction against the document and appends
// it to the ledger. On any validation failure the ledger is untouched.
func (d *Document) AddTransaction(t *entity.Transaction) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.addTransactionLocked(t); err != nil {
		return err
	}
	d.notify(ChangeTransaction, ActionCreated, t.ID)
	return nil
}

func (d *Document) addTransactionLocked(t *entity.Transaction) error {
	if err := d.validateTransaction(t); err != nil {
		return err
	}
	t.Date = entity.Day(t.Date)
	d.nextSequence++
	t.Sequence = d.nextSequence
	d.transactions = append(d.transactions, t)
	d.byID[t.ID] = t
	d.invalidateTouched(t)
	return nil
}

// validateTransaction runs the structural invariants plus document
// ownership of every referenced source.
func (d *Document) validateTransaction(t *entity.Transaction) error {
	if err := t.Validate(); err != nil {
		return err
	}
	if err := d.checkEndpoint(t.From); err != nil {
		return err
	}
	if err := d.checkEndpoint(t.To); err != nil {
		return err
	}
	for _, s := range append(append([]*entity.TransactionSplit(nil), t.FromSplits...), t.ToSplits...) {
		if err := d.checkEndpoint(s.Source); err != nil {
			return err
		}
	}
	return nil
}

// TransactionByID looks up a ledger transaction.
func (d *Document) TransactionByID(id uuid.UUID) (*entity.Transaction, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.transactionByID(id)
}

func (d *Document) transactionByID(id uuid.UUID) (*entity.Transaction, error) {
	if t, ok := d.byID[id]; ok {
		return t, nil
	}
	return nil, domainerror.NewLedgerError(
		domainerror.ErrCodeTransactionNotFound,
		"transaction not found",
		domainerror.ErrTransactionNotFound,
	)
}

// RemoveTransaction hard-deletes a transaction from the ledger.
func (d *Document) RemoveTransaction(id uuid.UUID) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	t, err := d.transactionByID(id)
	if err != nil {
		return err
	}
	for i, stored := range d.transactions {
		if stored == t {
			d.transactions = append(d.transactions[:i], d.transactions[i+1:]...)
			delete(d.byID, id)
			d.invalidateTouched(t)
			d.notify(ChangeTransaction, ActionDeleted, id)
			return nil
		}
	}
	// byID and the slice disagree: the aggregate is corrupt and no answer
	// derived from it can be trusted.
	panic("document: transaction index out of sync with ledger")
}

// TransactionUpdate carries the optional field changes of UpdateTransaction.
// Nil fields are left unchanged; a non-nil empty split slice clears that
// side's splits.
type TransactionUpdate struct {
	Date        *time.Time
	Description *string
	Number      *string
	Memo        *string
	Amount      *int64
	From        entity.Source
	To          entity.Source
	FromSplits  []*entity.TransactionSplit
	ToSplits    []*entity.TransactionSplit

	ClearedFrom    *bool
	ClearedTo      *bool
	ReconciledFrom *bool
	ReconciledTo   *bool
}

// UpdateTransaction applies the update atomically: the change set is staged
// on a copy and validated in full before anything is committed, so a
// rejected update leaves the transaction exactly as it was.
func (d *Document) UpdateTransaction(id uuid.UUID, update TransactionUpdate) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	stored, err := d.transactionByID(id)
	if err != nil {
		return err
	}

	staged := *stored
	if update.Date != nil {
		staged.Date = entity.Day(*update.Date)
	}
	if update.Description != nil {
		staged.Description = *update.Description
	}
	if update.Number != nil {
		staged.Number = *update.Number
	}
	if update.Memo != nil {
		staged.Memo = *update.Memo
	}
	if update.Amount != nil {
		staged.Amount = *update.Amount
	}
	if update.From != nil {
		staged.From = update.From
	}
	if update.To != nil {
		staged.To = update.To
	}
	if update.FromSplits != nil {
		staged.FromSplits = update.FromSplits
	}
	if update.ToSplits != nil {
		staged.ToSplits = update.ToSplits
	}
	if update.ClearedFrom != nil {
		staged.ClearedFrom = *update.ClearedFrom
	}
	if update.ClearedTo != nil {
		staged.ClearedTo = *update.ClearedTo
	}
	if update.ReconciledFrom != nil {
		staged.ReconciledFrom = *update.ReconciledFrom
	}
	if update.ReconciledTo != nil {
		staged.ReconciledTo = *update.ReconciledTo
	}

	if err := d.validateTransaction(&staged); err != nil {
		return err
	}

	// Invalidate under both the old and the new shape: sources dropped by
	// the update still have stale cached balances.
	d.invalidateTouched(stored)
	*stored = staged
	d.invalidateTouched(stored)
	d.notify(ChangeTransaction, ActionUpdated, id)
	return nil
}

// Transactions returns the whole ledger ordered by date ascending, ties
// broken by insertion order.
func (d *Document) Transactions() []*entity.Transaction {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := append([]*entity.Transaction(nil), d.transactions...)
	sortTransactions(out)
	return out
}

// TransactionsInRange returns the transactions with date in [start, end)
// that touch source, ordered by date ascending with insertion-order ties.
// A nil source matches every transaction.
func (d *Document) TransactionsInRange(source entity.Source, start, end time.Time) []*entity.Transaction {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.transactionsInRange(source, start, end)
}

func (d *Document) transactionsInRange(source entity.Source, start, end time.Time) []*entity.Transaction {
	start, end = entity.Day(start), entity.Day(end)
	var out []*entity.Transaction
	for _, t := range d.transactions {
		if t.Date.Before(start) || !t.Date.Before(end) {
			continue
		}
		if source != nil && !t.Touches(source) {
			continue
		}
		out = append(out, t)
	}
	sortTransactions(out)
	return out
}

func sortTransactions(ts []*entity.Transaction) {
	sort.SliceStable(ts, func(i, j int) bool {
		if !ts[i].Date.Equal(ts[j].Date) {
			return ts[i].Date.Before(ts[j].Date)
		}
		return ts[i].Sequence < ts[j].Sequence
	})
}
