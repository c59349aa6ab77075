package document

import (
	"time"

	"github.com/google/uuid"

	"github.com/budgetbook/backend/internal/domain/entity"
)

// balanceEntry caches one account's replayed balances as of a given day.
// Entries are dropped whenever a mutation touches the account, so a present
// entry is always consistent with the ledger.
type balanceEntry struct {
	asOf       time.Time
	balance    int64
	cleared    int64
	reconciled int64
}

// invalidateBalance drops the cached balances of one account.
func (d *Document) invalidateBalance(accountID uuid.UUID) {
	delete(d.balances, accountID)
}

// invalidateTouched drops the cached balances of every account the
// transaction references, on either side and inside splits.
func (d *Document) invalidateTouched(t *entity.Transaction) {
	d.invalidateSource(t.From)
	d.invalidateSource(t.To)
	for _, s := range t.FromSplits {
		d.invalidateSource(s.Source)
	}
	for _, s := range t.ToSplits {
		d.invalidateSource(s.Source)
	}
}

func (d *Document) invalidateSource(s entity.Source) {
	if s != nil && s.SourceKind() == entity.SourceKindAccount {
		d.invalidateBalance(s.SourceID())
	}
}

// BalanceAsOf replays the ledger and returns the account's balance at the
// end of the given day: starting balance plus every arrival minus every
// departure dated on or before asOf.
func (d *Document) BalanceAsOf(accountID uuid.UUID, asOf time.Time) (int64, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	account, err := d.accountByID(accountID)
	if err != nil {
		return 0, err
	}
	entry := d.replay(account, entity.Day(asOf))
	return entry.balance, nil
}

// AccountBalances bundles the full, cleared and reconciled balances of an
// account as of one day.
type AccountBalances struct {
	AsOf       time.Time
	Balance    int64
	Cleared    int64
	Reconciled int64
}

// BalancesAsOf returns the full, cleared and reconciled balances of an
// account at the end of the given day. Results for the current day are
// cached until a mutation touches the account.
func (d *Document) BalancesAsOf(accountID uuid.UUID, asOf time.Time) (AccountBalances, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.balancesLocked(accountID, entity.Day(asOf))
}

func (d *Document) balancesLocked(accountID uuid.UUID, asOf time.Time) (AccountBalances, error) {
	account, err := d.accountByID(accountID)
	if err != nil {
		return AccountBalances{}, err
	}
	if cached, ok := d.balances[accountID]; ok && cached.asOf.Equal(asOf) {
		return AccountBalances{AsOf: asOf, Balance: cached.balance, Cleared: cached.cleared, Reconciled: cached.reconciled}, nil
	}
	entry := d.replay(account, asOf)
	d.balances[accountID] = entry
	return AccountBalances{AsOf: asOf, Balance: entry.balance, Cleared: entry.cleared, Reconciled: entry.reconciled}, nil
}

// replay computes an account's balances by walking the ledger. The cleared
// and reconciled figures count a movement only when the flag on the side
// through which the account participates is set; the starting balance is
// always included.
func (d *Document) replay(account *entity.Account, asOf time.Time) *balanceEntry {
	entry := &balanceEntry{
		asOf:       asOf,
		balance:    account.StartingBalance,
		cleared:    account.StartingBalance,
		reconciled: account.StartingBalance,
	}
	for _, t := range d.transactions {
		if t.Date.After(asOf) {
			continue
		}
		if in := t.ToAmount(account); in != 0 {
			entry.balance += in
			if t.ClearedTo {
				entry.cleared += in
			}
			if t.ReconciledTo {
				entry.reconciled += in
			}
		}
		if out := t.FromAmount(account); out != 0 {
			entry.balance -= out
			if t.ClearedFrom {
				entry.cleared -= out
			}
			if t.ReconciledFrom {
				entry.reconciled -= out
			}
		}
	}
	return entry
}

// NetWorth sums the balances of all non-deleted accounts as of the given
// day, negating credit-type accounts so liabilities reduce the total.
func (d *Document) NetWorth(asOf time.Time) int64 {
	d.mu.Lock()
	defer d.mu.Unlock()

	asOf = entity.Day(asOf)
	var total int64
	for _, account := range d.accounts {
		if account.Deleted {
			continue
		}
		balances, err := d.balancesLocked(account.ID, asOf)
		if err != nil {
			continue
		}
		if account.IsCredit() {
			total -= balances.Balance
		} else {
			total += balances.Balance
		}
	}
	return total
}
