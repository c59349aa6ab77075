package document

import (
	"testing"
	"time"

	"github.com/budgetbook/backend/internal/domain/entity"
)

func TestEvaluateActuals(t *testing.T) {
	d := New()
	checking := newTestAccount(t, d, "Checking", "Checking", 0)
	groceries := newTestCategory(t, d, "Groceries", false, nil)
	salary, err := d.AddBudgetCategory("Salary", entity.PeriodMonth, true, nil)
	if err != nil {
		t.Fatalf("add salary: %v", err)
	}

	tx := entity.NewTransaction(entity.NewDate(2025, time.October, 15), "groceries", 10000, checking, groceries)
	if err := d.AddTransaction(tx); err != nil {
		t.Fatalf("add transaction: %v", err)
	}
	pay := entity.NewTransaction(entity.NewDate(2025, time.October, 1), "pay", 300000, salary, checking)
	if err := d.AddTransaction(pay); err != nil {
		t.Fatalf("add pay: %v", err)
	}

	t.Run("expense actuals are negative", func(t *testing.T) {
		e, err := d.Evaluate(groceries.ID, entity.NewDate(2025, time.October, 15))
		if err != nil {
			t.Fatalf("evaluate: %v", err)
		}
		if e.ActualOwn != -10000 {
			t.Errorf("expected -10000, got %d", e.ActualOwn)
		}
	})

	t.Run("income actuals are positive", func(t *testing.T) {
		e, err := d.Evaluate(salary.ID, entity.NewDate(2025, time.October, 15))
		if err != nil {
			t.Fatalf("evaluate: %v", err)
		}
		if e.ActualOwn != 300000 {
			t.Errorf("expected 300000, got %d", e.ActualOwn)
		}
	})

	t.Run("a different period sees nothing", func(t *testing.T) {
		e, err := d.Evaluate(groceries.ID, entity.NewDate(2025, time.September, 15))
		if err != nil {
			t.Fatalf("evaluate: %v", err)
		}
		if e.ActualOwn != 0 {
			t.Errorf("expected 0, got %d", e.ActualOwn)
		}
	})

	t.Run("the period bound is exclusive", func(t *testing.T) {
		boundary := entity.NewTransaction(entity.NewDate(2025, time.November, 1), "next month", 500, checking, groceries)
		if err := d.AddTransaction(boundary); err != nil {
			t.Fatalf("add boundary: %v", err)
		}
		e, err := d.Evaluate(groceries.ID, entity.NewDate(2025, time.October, 15))
		if err != nil {
			t.Fatalf("evaluate: %v", err)
		}
		if e.ActualOwn != -10000 {
			t.Errorf("expected -10000, got %d", e.ActualOwn)
		}
	})
}

func TestEvaluateRollups(t *testing.T) {
	d := New()
	checking := newTestAccount(t, d, "Checking", "Checking", 0)
	auto := newTestCategory(t, d, "Auto", false, nil)
	gas := newTestCategory(t, d, "Gas", false, auto)
	repairs := newTestCategory(t, d, "Repairs", false, auto)

	date := entity.NewDate(2025, time.October, 10)
	if err := d.SetBudgetAmount(auto.ID, date, 5000); err != nil {
		t.Fatalf("set amount: %v", err)
	}
	if err := d.SetBudgetAmount(gas.ID, date, 12000); err != nil {
		t.Fatalf("set amount: %v", err)
	}
	if err := d.SetBudgetAmount(repairs.ID, date, 8000); err != nil {
		t.Fatalf("set amount: %v", err)
	}

	fill := entity.NewTransaction(date, "fill up", 4500, checking, gas)
	if err := d.AddTransaction(fill); err != nil {
		t.Fatalf("add transaction: %v", err)
	}

	t.Run("budgeted rolls up over children", func(t *testing.T) {
		e, err := d.Evaluate(auto.ID, date)
		if err != nil {
			t.Fatalf("evaluate: %v", err)
		}
		if e.BudgetedOwn != 5000 {
			t.Errorf("expected own 5000, got %d", e.BudgetedOwn)
		}
		if e.BudgetedWithChildren != 25000 {
			t.Errorf("expected rollup 25000, got %d", e.BudgetedWithChildren)
		}
	})

	t.Run("actual rolls up over children", func(t *testing.T) {
		e, err := d.Evaluate(auto.ID, date)
		if err != nil {
			t.Fatalf("evaluate: %v", err)
		}
		if e.ActualOwn != 0 {
			t.Errorf("expected own 0, got %d", e.ActualOwn)
		}
		if e.ActualWithChildren != -4500 {
			t.Errorf("expected rollup -4500, got %d", e.ActualWithChildren)
		}
	})

	t.Run("leaf rollup equals its own figures", func(t *testing.T) {
		e, err := d.Evaluate(gas.ID, date)
		if err != nil {
			t.Fatalf("evaluate: %v", err)
		}
		if e.BudgetedWithChildren != e.BudgetedOwn || e.ActualWithChildren != e.ActualOwn {
			t.Errorf("leaf rollup diverged: %+v", e)
		}
		if e.Depth != 1 {
			t.Errorf("expected depth 1, got %d", e.Depth)
		}
	})

	t.Run("deleted children leave the rollup but stay evaluable", func(t *testing.T) {
		if err := d.RemoveBudgetCategory(repairs.ID); err != nil {
			t.Fatalf("remove: %v", err)
		}
		e, err := d.Evaluate(auto.ID, date)
		if err != nil {
			t.Fatalf("evaluate: %v", err)
		}
		if e.BudgetedWithChildren != 17000 {
			t.Errorf("expected rollup 17000, got %d", e.BudgetedWithChildren)
		}
		deleted, err := d.Evaluate(repairs.ID, date)
		if err != nil {
			t.Fatalf("evaluate deleted: %v", err)
		}
		if deleted.BudgetedOwn != 8000 {
			t.Errorf("expected deleted own 8000, got %d", deleted.BudgetedOwn)
		}
	})
}

func TestBudgetedNetIncome(t *testing.T) {
	d := New()
	salary, err := d.AddBudgetCategory("Salary", entity.PeriodMonth, true, nil)
	if err != nil {
		t.Fatalf("add salary: %v", err)
	}
	groceries := newTestCategory(t, d, "Groceries", false, nil)
	weekly, err := d.AddBudgetCategory("Coffee", entity.PeriodWeek, false, nil)
	if err != nil {
		t.Fatalf("add coffee: %v", err)
	}

	date := entity.NewDate(2025, time.October, 10)
	if err := d.SetBudgetAmount(salary.ID, date, 300000); err != nil {
		t.Fatalf("set amount: %v", err)
	}
	if err := d.SetBudgetAmount(groceries.ID, date, 40000); err != nil {
		t.Fatalf("set amount: %v", err)
	}
	if err := d.SetBudgetAmount(weekly.ID, date, 1500); err != nil {
		t.Fatalf("set amount: %v", err)
	}

	t.Run("income minus expenses for the period type", func(t *testing.T) {
		if got := d.BudgetedNetIncome(entity.PeriodMonth, date); got != 260000 {
			t.Errorf("expected 260000, got %d", got)
		}
	})

	t.Run("other period types are ignored", func(t *testing.T) {
		if got := d.BudgetedNetIncome(entity.PeriodWeek, date); got != -1500 {
			t.Errorf("expected -1500, got %d", got)
		}
	})

	t.Run("deleted categories are excluded", func(t *testing.T) {
		if err := d.RemoveBudgetCategory(groceries.ID); err != nil {
			t.Fatalf("remove: %v", err)
		}
		if got := d.BudgetedNetIncome(entity.PeriodMonth, date); got != 300000 {
			t.Errorf("expected 300000, got %d", got)
		}
	})
}
