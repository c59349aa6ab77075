package entity

import (
	"testing"
	"time"
)

func TestStartOfPeriod(t *testing.T) {
	tests := []struct {
		name       string
		periodType PeriodType
		date       time.Time
		expected   time.Time
	}{
		{"week starts on Monday", PeriodWeek, NewDate(2025, time.October, 15), NewDate(2025, time.October, 13)},
		{"week containing a Sunday", PeriodWeek, NewDate(2025, time.October, 19), NewDate(2025, time.October, 13)},
		{"week of a Monday is itself", PeriodWeek, NewDate(2025, time.October, 13), NewDate(2025, time.October, 13)},
		{"first half of month", PeriodSemiMonth, NewDate(2025, time.October, 15), NewDate(2025, time.October, 1)},
		{"second half of month", PeriodSemiMonth, NewDate(2025, time.October, 16), NewDate(2025, time.October, 16)},
		{"month", PeriodMonth, NewDate(2025, time.October, 31), NewDate(2025, time.October, 1)},
		{"quarter", PeriodQuarter, NewDate(2025, time.November, 20), NewDate(2025, time.October, 1)},
		{"first month of quarter", PeriodQuarter, NewDate(2025, time.July, 1), NewDate(2025, time.July, 1)},
		{"year", PeriodYear, NewDate(2025, time.June, 15), NewDate(2025, time.January, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.periodType.StartOfPeriod(tt.date)
			if !got.Equal(tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestStartOfPeriodIsIdempotent(t *testing.T) {
	dates := []time.Time{
		NewDate(2025, time.January, 1),
		NewDate(2025, time.February, 28),
		NewDate(2025, time.October, 16),
		NewDate(2025, time.December, 31),
	}
	for _, pt := range PeriodTypes {
		for _, date := range dates {
			once := pt.StartOfPeriod(date)
			twice := pt.StartOfPeriod(once)
			if !once.Equal(twice) {
				t.Errorf("%s: StartOfPeriod not idempotent for %v: %v != %v", pt, date, once, twice)
			}
		}
	}
}

func TestOffsetComposes(t *testing.T) {
	// offset(d, n1) must equal offset(offset(d, n2), n1-n2).
	date := NewDate(2025, time.October, 20)
	for _, pt := range PeriodTypes {
		for n1 := -30; n1 <= 30; n1 += 7 {
			for n2 := -5; n2 <= 5; n2++ {
				direct := pt.Offset(date, n1)
				composed := pt.Offset(pt.Offset(date, n2), n1-n2)
				if !direct.Equal(composed) {
					t.Errorf("%s: offset(%d) = %v but offset(offset(%d), %d) = %v", pt, n1, direct, n2, n1-n2, composed)
				}
			}
		}
	}
}

func TestOffsetSemiMonthCrossesBoundaries(t *testing.T) {
	tests := []struct {
		name     string
		date     time.Time
		n        int
		expected time.Time
	}{
		{"forward within month", NewDate(2025, time.October, 3), 1, NewDate(2025, time.October, 16)},
		{"forward across month", NewDate(2025, time.October, 20), 1, NewDate(2025, time.November, 1)},
		{"forward across year", NewDate(2025, time.December, 25), 1, NewDate(2026, time.January, 1)},
		{"backward across month", NewDate(2025, time.October, 3), -1, NewDate(2025, time.September, 16)},
		{"backward across year", NewDate(2025, time.January, 10), -1, NewDate(2024, time.December, 16)},
		{"two years forward", NewDate(2025, time.March, 1), 48, NewDate(2027, time.March, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PeriodSemiMonth.Offset(tt.date, tt.n)
			if !got.Equal(tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestEndOfPeriodIsExclusiveBound(t *testing.T) {
	for _, pt := range PeriodTypes {
		date := NewDate(2025, time.October, 20)
		end := pt.EndOfPeriod(date)
		if !end.Equal(pt.StartOfPeriod(end)) {
			t.Errorf("%s: EndOfPeriod is not a period start: %v", pt, end)
		}
		if !end.After(pt.StartOfPeriod(date)) {
			t.Errorf("%s: EndOfPeriod %v not after StartOfPeriod %v", pt, end, pt.StartOfPeriod(date))
		}
		// The day before the bound still belongs to the queried period.
		lastDay := end.AddDate(0, 0, -1)
		if !pt.StartOfPeriod(lastDay).Equal(pt.StartOfPeriod(date)) {
			t.Errorf("%s: day before bound %v falls outside the period", pt, lastDay)
		}
	}
}

func TestPeriodKey(t *testing.T) {
	if got := PeriodMonth.Key(NewDate(2025, time.October, 20)); got != "2025-10-01" {
		t.Errorf("expected 2025-10-01, got %s", got)
	}
	if got := PeriodSemiMonth.Key(NewDate(2025, time.October, 20)); got != "2025-10-16" {
		t.Errorf("expected 2025-10-16, got %s", got)
	}
}

func TestDayNormalizesToUTCMidnight(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*3600)
	in := time.Date(2025, time.October, 15, 23, 30, 0, 0, loc)
	got := Day(in)
	expected := NewDate(2025, time.October, 15)
	if !got.Equal(expected) {
		t.Errorf("expected %v, got %v", expected, got)
	}
}
