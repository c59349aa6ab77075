package document

import (
	"testing"
	"time"

	"github.com/budgetbook/backend/internal/domain/entity"
)

func TestBudgetViewNavigation(t *testing.T) {
	t.Run("new views start at the current month", func(t *testing.T) {
		v := NewBudgetView(entity.NewDate(2025, time.October, 20))
		if v.PeriodType() != entity.PeriodMonth {
			t.Errorf("expected month, got %s", v.PeriodType())
		}
		if !v.Date().Equal(entity.NewDate(2025, time.October, 1)) {
			t.Errorf("expected 2025-10-01, got %v", v.Date())
		}
	})

	t.Run("set date normalizes to the period start", func(t *testing.T) {
		v := NewBudgetView(entity.NewDate(2025, time.October, 20))
		v.SetDate(entity.NewDate(2025, time.December, 25))
		if !v.Date().Equal(entity.NewDate(2025, time.December, 1)) {
			t.Errorf("expected 2025-12-01, got %v", v.Date())
		}
	})

	t.Run("switching period type and back restores the month", func(t *testing.T) {
		v := NewBudgetView(entity.NewDate(2025, time.October, 20))
		monthDate := v.Date()

		v.SetPeriodType(entity.PeriodWeek)
		if v.PeriodType() != entity.PeriodWeek {
			t.Fatalf("expected week, got %s", v.PeriodType())
		}
		if !v.Date().Equal(entity.PeriodWeek.StartOfPeriod(monthDate)) {
			t.Errorf("expected week containing %v, got %v", monthDate, v.Date())
		}

		v.SetPeriodType(entity.PeriodMonth)
		if !v.Date().Equal(monthDate) {
			t.Errorf("expected restored date %v, got %v", monthDate, v.Date())
		}
	})

	t.Run("each period type remembers its own date", func(t *testing.T) {
		v := NewBudgetView(entity.NewDate(2025, time.October, 20))
		v.SetPeriodType(entity.PeriodWeek)
		v.SetDate(entity.NewDate(2025, time.March, 5))
		weekDate := v.Date()

		v.SetPeriodType(entity.PeriodMonth)
		v.SetDate(entity.NewDate(2025, time.July, 1))

		v.SetPeriodType(entity.PeriodWeek)
		if !v.Date().Equal(weekDate) {
			t.Errorf("expected remembered week %v, got %v", weekDate, v.Date())
		}
	})

	t.Run("switching to the same type is a no-op", func(t *testing.T) {
		v := NewBudgetView(entity.NewDate(2025, time.October, 20))
		before := v.Date()
		v.SetPeriodType(entity.PeriodMonth)
		if !v.Date().Equal(before) {
			t.Errorf("expected %v, got %v", before, v.Date())
		}
	})
}

func TestDocumentBudgetViews(t *testing.T) {
	d := New()

	t.Run("views are created on first access", func(t *testing.T) {
		pt, date := d.BudgetViewState("main")
		if pt != entity.PeriodMonth {
			t.Errorf("expected month, got %s", pt)
		}
		if !date.Equal(entity.PeriodMonth.StartOfPeriod(date)) {
			t.Errorf("expected a normalized date, got %v", date)
		}
	})

	t.Run("state survives period type round trips", func(t *testing.T) {
		d.SetBudgetViewDate("main", entity.NewDate(2025, time.October, 20))
		if err := d.SetBudgetViewPeriodType("main", entity.PeriodWeek); err != nil {
			t.Fatalf("set period type: %v", err)
		}
		if err := d.SetBudgetViewPeriodType("main", entity.PeriodMonth); err != nil {
			t.Fatalf("set period type: %v", err)
		}
		_, date := d.BudgetViewState("main")
		if !date.Equal(entity.NewDate(2025, time.October, 1)) {
			t.Errorf("expected 2025-10-01, got %v", date)
		}
	})

	t.Run("invalid period type is rejected", func(t *testing.T) {
		if err := d.SetBudgetViewPeriodType("main", entity.PeriodType("decade")); err == nil {
			t.Error("expected error for unknown period type")
		}
	})
}
