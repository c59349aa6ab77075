package entity

import (
	"testing"
	"time"
)

func TestScheduledTransactionDueDates(t *testing.T) {
	account, category := testSources()

	newTemplate := func(frequency Frequency, start time.Time) *ScheduledTransaction {
		return NewScheduledTransaction("rent", frequency, start, 100000, account, category)
	}

	t.Run("monthly occurrences up to the as-of date", func(t *testing.T) {
		s := newTemplate(FrequencyMonthly, NewDate(2025, time.January, 1))
		due := s.DueDates(NewDate(2025, time.March, 15))
		if len(due) != 3 {
			t.Fatalf("expected 3 due dates, got %d", len(due))
		}
		if !due[2].Equal(NewDate(2025, time.March, 1)) {
			t.Errorf("expected last due date 2025-03-01, got %v", due[2])
		}
	})

	t.Run("nothing due before the start date", func(t *testing.T) {
		s := newTemplate(FrequencyWeekly, NewDate(2025, time.June, 1))
		if due := s.DueDates(NewDate(2025, time.May, 31)); len(due) != 0 {
			t.Errorf("expected no due dates, got %d", len(due))
		}
	})

	t.Run("occurrences before the last run are skipped", func(t *testing.T) {
		s := newTemplate(FrequencyMonthly, NewDate(2025, time.January, 1))
		s.LastRun = NewDate(2025, time.February, 1)
		due := s.DueDates(NewDate(2025, time.April, 10))
		if len(due) != 2 {
			t.Fatalf("expected 2 due dates, got %d", len(due))
		}
		if !due[0].Equal(NewDate(2025, time.March, 1)) {
			t.Errorf("expected first due date 2025-03-01, got %v", due[0])
		}
	})

	t.Run("end date caps the occurrences", func(t *testing.T) {
		s := newTemplate(FrequencyWeekly, NewDate(2025, time.January, 6))
		end := NewDate(2025, time.January, 20)
		s.EndDate = &end
		due := s.DueDates(NewDate(2025, time.December, 31))
		if len(due) != 3 {
			t.Errorf("expected 3 due dates, got %d", len(due))
		}
	})

	t.Run("biweekly advances fourteen days", func(t *testing.T) {
		s := newTemplate(FrequencyBiweekly, NewDate(2025, time.January, 1))
		due := s.DueDates(NewDate(2025, time.January, 31))
		if len(due) != 3 {
			t.Fatalf("expected 3 due dates, got %d", len(due))
		}
		if !due[1].Equal(NewDate(2025, time.January, 15)) {
			t.Errorf("expected second due date 2025-01-15, got %v", due[1])
		}
	})

	t.Run("semi-monthly fires on the start day and fifteen days later", func(t *testing.T) {
		s := newTemplate(FrequencySemiMonthly, NewDate(2025, time.January, 1))
		due := s.DueDates(NewDate(2025, time.February, 28))
		want := []time.Time{
			NewDate(2025, time.January, 1),
			NewDate(2025, time.January, 16),
			NewDate(2025, time.February, 1),
			NewDate(2025, time.February, 16),
		}
		if len(due) != len(want) {
			t.Fatalf("expected %d due dates, got %d", len(want), len(due))
		}
		for i := range want {
			if !due[i].Equal(want[i]) {
				t.Errorf("due date %d: expected %v, got %v", i, want[i], due[i])
			}
		}
	})

	t.Run("daily is bounded by the as-of date inclusively", func(t *testing.T) {
		s := newTemplate(FrequencyDaily, NewDate(2025, time.January, 1))
		due := s.DueDates(NewDate(2025, time.January, 3))
		if len(due) != 3 {
			t.Errorf("expected 3 due dates, got %d", len(due))
		}
	})
}

func TestFrequencyValid(t *testing.T) {
	for _, f := range []Frequency{FrequencyDaily, FrequencyWeekly, FrequencyBiweekly, FrequencySemiMonthly, FrequencyMonthly, FrequencyYearly} {
		if !f.Valid() {
			t.Errorf("expected %q to be valid", f)
		}
	}
	if Frequency("fortnightly").Valid() {
		t.Error("expected unknown frequency to be invalid")
	}
}

func TestScheduledTransactionNewInstance(t *testing.T) {
	account, category := testSources()
	s := NewScheduledTransaction("rent", FrequencyMonthly, NewDate(2025, time.January, 1), 100000, account, category)
	s.Description = "Rent payment"
	s.Memo = "landlord"

	tx := s.NewInstance(NewDate(2025, time.February, 1))
	if tx.Amount != 100000 {
		t.Errorf("expected amount 100000, got %d", tx.Amount)
	}
	if tx.Description != "Rent payment" {
		t.Errorf("expected description to carry over, got %q", tx.Description)
	}
	if tx.Memo != "landlord" {
		t.Errorf("expected memo to carry over, got %q", tx.Memo)
	}
	if !tx.Date.Equal(NewDate(2025, time.February, 1)) {
		t.Errorf("expected date 2025-02-01, got %v", tx.Date)
	}
}
