package document

import (
	"testing"
	"time"

	"github.com/budgetbook/backend/internal/domain/entity"
)

func TestBalanceAsOf(t *testing.T) {
	d := New()
	checking := newTestAccount(t, d, "Checking", "Checking", 0)
	groceries := newTestCategory(t, d, "Groceries", false, nil)

	tx := entity.NewTransaction(entity.NewDate(2025, time.October, 15), "groceries", 10000, checking, groceries)
	if err := d.AddTransaction(tx); err != nil {
		t.Fatalf("add transaction: %v", err)
	}

	t.Run("outflow reduces the balance", func(t *testing.T) {
		balance, err := d.BalanceAsOf(checking.ID, entity.NewDate(2025, time.October, 20))
		if err != nil {
			t.Fatalf("balance: %v", err)
		}
		if balance != -10000 {
			t.Errorf("expected -10000, got %d", balance)
		}
	})

	t.Run("transactions after asOf are excluded", func(t *testing.T) {
		balance, err := d.BalanceAsOf(checking.ID, entity.NewDate(2025, time.October, 14))
		if err != nil {
			t.Fatalf("balance: %v", err)
		}
		if balance != 0 {
			t.Errorf("expected 0, got %d", balance)
		}
	})

	t.Run("the transaction day itself is included", func(t *testing.T) {
		balance, err := d.BalanceAsOf(checking.ID, entity.NewDate(2025, time.October, 15))
		if err != nil {
			t.Fatalf("balance: %v", err)
		}
		if balance != -10000 {
			t.Errorf("expected -10000, got %d", balance)
		}
	})

	t.Run("starting balance seeds the replay", func(t *testing.T) {
		savings := newTestAccount(t, d, "Savings", "Savings", 250000)
		balance, err := d.BalanceAsOf(savings.ID, entity.NewDate(2025, time.October, 20))
		if err != nil {
			t.Fatalf("balance: %v", err)
		}
		if balance != 250000 {
			t.Errorf("expected 250000, got %d", balance)
		}
	})
}

func TestBalanceWithSplits(t *testing.T) {
	d := New()
	checking := newTestAccount(t, d, "Checking", "Checking", 0)
	groceriesA := newTestCategory(t, d, "GroceriesA", false, nil)
	groceriesB := newTestCategory(t, d, "GroceriesB", false, nil)

	tx := entity.NewTransaction(entity.NewDate(2025, time.October, 15), "shopping", 9000, checking, entity.Split)
	tx.ToSplits = []*entity.TransactionSplit{
		entity.NewTransactionSplit(groceriesA, 5000),
		entity.NewTransactionSplit(groceriesB, 4000),
	}
	if err := d.AddTransaction(tx); err != nil {
		t.Fatalf("add transaction: %v", err)
	}

	balance, err := d.BalanceAsOf(checking.ID, entity.NewDate(2025, time.October, 20))
	if err != nil {
		t.Fatalf("balance: %v", err)
	}
	if balance != -9000 {
		t.Errorf("expected -9000, got %d", balance)
	}
}

func TestClearedAndReconciledBalances(t *testing.T) {
	d := New()
	checking := newTestAccount(t, d, "Checking", "Checking", 1000)
	salary := newTestCategory(t, d, "Salary", true, nil)

	deposit := entity.NewTransaction(entity.NewDate(2025, time.October, 1), "pay", 5000, salary, checking)
	deposit.ClearedTo = true
	deposit.ReconciledTo = true
	if err := d.AddTransaction(deposit); err != nil {
		t.Fatalf("add deposit: %v", err)
	}

	pending := entity.NewTransaction(entity.NewDate(2025, time.October, 2), "pending pay", 700, salary, checking)
	if err := d.AddTransaction(pending); err != nil {
		t.Fatalf("add pending: %v", err)
	}

	balances, err := d.BalancesAsOf(checking.ID, entity.NewDate(2025, time.October, 10))
	if err != nil {
		t.Fatalf("balances: %v", err)
	}
	if balances.Balance != 6700 {
		t.Errorf("expected balance 6700, got %d", balances.Balance)
	}
	if balances.Cleared != 6000 {
		t.Errorf("expected cleared 6000, got %d", balances.Cleared)
	}
	if balances.Reconciled != 6000 {
		t.Errorf("expected reconciled 6000, got %d", balances.Reconciled)
	}

	t.Run("flags are tracked per side", func(t *testing.T) {
		// Clearing only the from side must not affect the to-side account.
		cleared := true
		if err := d.UpdateTransaction(pending.ID, TransactionUpdate{ClearedFrom: &cleared}); err != nil {
			t.Fatalf("update: %v", err)
		}
		balances, err := d.BalancesAsOf(checking.ID, entity.NewDate(2025, time.October, 10))
		if err != nil {
			t.Fatalf("balances: %v", err)
		}
		if balances.Cleared != 6000 {
			t.Errorf("expected cleared 6000, got %d", balances.Cleared)
		}
	})

	t.Run("cache is invalidated by mutations", func(t *testing.T) {
		extra := entity.NewTransaction(entity.NewDate(2025, time.October, 3), "bonus", 300, salary, checking)
		if err := d.AddTransaction(extra); err != nil {
			t.Fatalf("add extra: %v", err)
		}
		balances, err := d.BalancesAsOf(checking.ID, entity.NewDate(2025, time.October, 10))
		if err != nil {
			t.Fatalf("balances: %v", err)
		}
		if balances.Balance != 7000 {
			t.Errorf("expected balance 7000, got %d", balances.Balance)
		}
	})
}

func TestNetWorth(t *testing.T) {
	d := New()
	checking := newTestAccount(t, d, "Checking", "Checking", 10000)
	creditCard := newTestAccount(t, d, "Visa", "Credit Card", 0)
	groceries := newTestCategory(t, d, "Groceries", false, nil)

	// Spend 3000 on the card: its replayed balance goes to -3000, which a
	// credit account reports as 3000 of debt against net worth.
	tx := entity.NewTransaction(entity.NewDate(2025, time.October, 5), "card groceries", 3000, creditCard, groceries)
	if err := d.AddTransaction(tx); err != nil {
		t.Fatalf("add transaction: %v", err)
	}

	asOf := entity.NewDate(2025, time.October, 20)

	t.Run("credit balances count against the total", func(t *testing.T) {
		if got := d.NetWorth(asOf); got != 7000 {
			t.Errorf("expected 7000, got %d", got)
		}
	})

	t.Run("deleted accounts are excluded", func(t *testing.T) {
		if err := d.RemoveAccount(checking.ID); err != nil {
			t.Fatalf("remove account: %v", err)
		}
		if got := d.NetWorth(asOf); got != -3000 {
			t.Errorf("expected -3000, got %d", got)
		}
		// The deleted account's own balance stays computable.
		balance, err := d.BalanceAsOf(checking.ID, asOf)
		if err != nil {
			t.Fatalf("balance of deleted account: %v", err)
		}
		if balance != 10000 {
			t.Errorf("expected 10000, got %d", balance)
		}
	})
}
