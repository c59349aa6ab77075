package entity

import (
	"errors"
	"testing"
	"time"

	domainerror "github.com/budgetbook/backend/internal/domain/error"
)

func testSources() (*Account, *BudgetCategory) {
	accountType := NewAccountType("Checking", false)
	account := NewAccount("Checking", accountType, 0, NewDate(2025, time.January, 1))
	category := NewBudgetCategory("Groceries", PeriodMonth, false)
	return account, category
}

func TestTransactionValidate(t *testing.T) {
	account, category := testSources()

	t.Run("valid simple transaction", func(t *testing.T) {
		tx := NewTransaction(NewDate(2025, time.October, 15), "groceries", 10000, account, category)
		if err := tx.Validate(); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})

	t.Run("nil source is rejected", func(t *testing.T) {
		tx := NewTransaction(NewDate(2025, time.October, 15), "groceries", 10000, account, nil)
		if err := tx.Validate(); !errors.Is(err, domainerror.ErrNilSource) {
			t.Errorf("expected ErrNilSource, got %v", err)
		}
	})

	t.Run("negative amount is rejected", func(t *testing.T) {
		tx := NewTransaction(NewDate(2025, time.October, 15), "groceries", -1, account, category)
		if err := tx.Validate(); !errors.Is(err, domainerror.ErrNegativeAmount) {
			t.Errorf("expected ErrNegativeAmount, got %v", err)
		}
	})

	t.Run("same from and to is rejected", func(t *testing.T) {
		tx := NewTransaction(NewDate(2025, time.October, 15), "noop", 100, account, account)
		if err := tx.Validate(); !errors.Is(err, domainerror.ErrSameFromTo) {
			t.Errorf("expected ErrSameFromTo, got %v", err)
		}
	})

	t.Run("splits on a non-split side are rejected", func(t *testing.T) {
		tx := NewTransaction(NewDate(2025, time.October, 15), "groceries", 10000, account, category)
		tx.ToSplits = []*TransactionSplit{NewTransactionSplit(category, 10000)}
		if err := tx.Validate(); !errors.Is(err, domainerror.ErrUnexpectedSplits) {
			t.Errorf("expected ErrUnexpectedSplits, got %v", err)
		}
	})

	t.Run("split side without splits is rejected", func(t *testing.T) {
		tx := NewTransaction(NewDate(2025, time.October, 15), "groceries", 10000, account, Split)
		if err := tx.Validate(); !errors.Is(err, domainerror.ErrEmptySplits) {
			t.Errorf("expected ErrEmptySplits, got %v", err)
		}
	})

	t.Run("split amounts must sum to the transaction amount", func(t *testing.T) {
		other := NewBudgetCategory("Household", PeriodMonth, false)
		tx := NewTransaction(NewDate(2025, time.October, 15), "shopping", 9000, account, Split)
		tx.ToSplits = []*TransactionSplit{
			NewTransactionSplit(category, 5000),
			NewTransactionSplit(other, 4001),
		}
		if err := tx.Validate(); !errors.Is(err, domainerror.ErrSplitSumMismatch) {
			t.Errorf("expected ErrSplitSumMismatch, got %v", err)
		}
	})

	t.Run("matching split sums pass", func(t *testing.T) {
		other := NewBudgetCategory("Household", PeriodMonth, false)
		tx := NewTransaction(NewDate(2025, time.October, 15), "shopping", 9000, account, Split)
		tx.ToSplits = []*TransactionSplit{
			NewTransactionSplit(category, 5000),
			NewTransactionSplit(other, 4000),
		}
		if err := tx.Validate(); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})

	t.Run("split placeholder inside a split is rejected", func(t *testing.T) {
		tx := NewTransaction(NewDate(2025, time.October, 15), "shopping", 9000, account, Split)
		tx.ToSplits = []*TransactionSplit{NewTransactionSplit(Split, 9000)}
		if err := tx.Validate(); !errors.Is(err, domainerror.ErrSplitSourceInvalid) {
			t.Errorf("expected ErrSplitSourceInvalid, got %v", err)
		}
	})
}

func TestTransactionContributions(t *testing.T) {
	account, category := testSources()
	other := NewBudgetCategory("Household", PeriodMonth, false)

	t.Run("endpoint carries the whole amount", func(t *testing.T) {
		tx := NewTransaction(NewDate(2025, time.October, 15), "groceries", 10000, account, category)
		if got := tx.FromAmount(account); got != 10000 {
			t.Errorf("expected 10000, got %d", got)
		}
		if got := tx.ToAmount(category); got != 10000 {
			t.Errorf("expected 10000, got %d", got)
		}
		if got := tx.ToAmount(account); got != 0 {
			t.Errorf("expected 0, got %d", got)
		}
	})

	t.Run("split side contributes only the matching splits", func(t *testing.T) {
		tx := NewTransaction(NewDate(2025, time.October, 15), "shopping", 9000, account, Split)
		tx.ToSplits = []*TransactionSplit{
			NewTransactionSplit(category, 5000),
			NewTransactionSplit(other, 4000),
		}
		if got := tx.ToAmount(category); got != 5000 {
			t.Errorf("expected 5000, got %d", got)
		}
		if got := tx.ToAmount(other); got != 4000 {
			t.Errorf("expected 4000, got %d", got)
		}
		if got := tx.FromAmount(account); got != 9000 {
			t.Errorf("expected 9000, got %d", got)
		}
	})

	t.Run("touches covers endpoints and split entries", func(t *testing.T) {
		tx := NewTransaction(NewDate(2025, time.October, 15), "shopping", 9000, account, Split)
		tx.ToSplits = []*TransactionSplit{NewTransactionSplit(category, 9000)}
		if !tx.Touches(account) {
			t.Error("expected transaction to touch its from account")
		}
		if !tx.Touches(category) {
			t.Error("expected transaction to touch the split category")
		}
		if tx.Touches(other) {
			t.Error("expected transaction not to touch an unrelated category")
		}
	})
}

func TestSameSource(t *testing.T) {
	account, category := testSources()

	if SameSource(nil, account) {
		t.Error("nil source must never match")
	}
	if SameSource(Split, Split) {
		t.Error("the split placeholder must never match itself")
	}
	if SameSource(account, category) {
		t.Error("different kinds must not match")
	}
	if !SameSource(account, account) {
		t.Error("a source must match itself")
	}
}

func TestCategoryAmounts(t *testing.T) {
	category := NewBudgetCategory("Groceries", PeriodMonth, false)

	t.Run("amount defaults to zero", func(t *testing.T) {
		if got := category.Amount(NewDate(2025, time.October, 15)); got != 0 {
			t.Errorf("expected 0, got %d", got)
		}
	})

	t.Run("amount is normalized to the period start", func(t *testing.T) {
		category.SetAmount(NewDate(2025, time.October, 20), 30000)
		if got := category.Amount(NewDate(2025, time.October, 1)); got != 30000 {
			t.Errorf("expected 30000, got %d", got)
		}
		if got := category.Amount(NewDate(2025, time.November, 1)); got != 0 {
			t.Errorf("expected 0 in the next period, got %d", got)
		}
	})

	t.Run("setting zero clears the stored entry", func(t *testing.T) {
		category.SetAmount(NewDate(2025, time.October, 20), 0)
		if got := len(category.Amounts()); got != 0 {
			t.Errorf("expected no stored amounts, got %d", got)
		}
	})
}

func TestCategoryFullName(t *testing.T) {
	parent := NewBudgetCategory("Auto", PeriodMonth, false)
	child := NewBudgetCategory("Gas", PeriodMonth, false)
	child.Parent = parent
	parent.Children = append(parent.Children, child)

	if got := child.SourceFullName(); got != "Auto:Gas" {
		t.Errorf("expected Auto:Gas, got %s", got)
	}
	if !parent.IsAncestorOf(child) {
		t.Error("expected parent to be ancestor of child")
	}
	if child.IsAncestorOf(parent) {
		t.Error("expected child not to be ancestor of parent")
	}
}

func TestScheduledDueDates(t *testing.T) {
	account, category := testSources()

	t.Run("monthly occurrences up to asOf", func(t *testing.T) {
		s := NewScheduledTransaction("rent", FrequencyMonthly, NewDate(2025, time.January, 1), 50000, account, category)
		due := s.DueDates(NewDate(2025, time.March, 15))
		if len(due) != 3 {
			t.Fatalf("expected 3 due dates, got %d", len(due))
		}
		if !due[2].Equal(NewDate(2025, time.March, 1)) {
			t.Errorf("expected last due date 2025-03-01, got %v", due[2])
		}
	})

	t.Run("last run excludes already materialized dates", func(t *testing.T) {
		s := NewScheduledTransaction("rent", FrequencyMonthly, NewDate(2025, time.January, 1), 50000, account, category)
		s.LastRun = NewDate(2025, time.February, 1)
		due := s.DueDates(NewDate(2025, time.March, 15))
		if len(due) != 1 {
			t.Fatalf("expected 1 due date, got %d", len(due))
		}
		if !due[0].Equal(NewDate(2025, time.March, 1)) {
			t.Errorf("expected 2025-03-01, got %v", due[0])
		}
	})

	t.Run("end date caps the schedule", func(t *testing.T) {
		s := NewScheduledTransaction("rent", FrequencyMonthly, NewDate(2025, time.January, 1), 50000, account, category)
		end := NewDate(2025, time.February, 10)
		s.EndDate = &end
		due := s.DueDates(NewDate(2025, time.December, 31))
		if len(due) != 2 {
			t.Fatalf("expected 2 due dates, got %d", len(due))
		}
	})

	t.Run("nothing due before the start date", func(t *testing.T) {
		s := NewScheduledTransaction("rent", FrequencyMonthly, NewDate(2025, time.June, 1), 50000, account, category)
		if due := s.DueDates(NewDate(2025, time.May, 31)); len(due) != 0 {
			t.Errorf("expected no due dates, got %d", len(due))
		}
	})

	t.Run("biweekly steps by fourteen days", func(t *testing.T) {
		s := NewScheduledTransaction("salary", FrequencyBiweekly, NewDate(2025, time.October, 3), 200000, category, account)
		due := s.DueDates(NewDate(2025, time.October, 31))
		if len(due) != 3 {
			t.Fatalf("expected 3 due dates, got %d", len(due))
		}
		if !due[1].Equal(NewDate(2025, time.October, 17)) {
			t.Errorf("expected 2025-10-17, got %v", due[1])
		}
	})
}
