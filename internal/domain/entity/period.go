// Package entity defines the core business entities for the domain layer.
package entity

import "time"

// PeriodType represents a budgeting calendar granularity. Budgeted amounts
// are stored keyed by the start of the period containing their date, and
// actual amounts are aggregated over [StartOfPeriod, EndOfPeriod).
type PeriodType string

const (
	PeriodWeek      PeriodType = "week"
	PeriodSemiMonth PeriodType = "semi_month"
	PeriodMonth     PeriodType = "month"
	PeriodQuarter   PeriodType = "quarter"
	PeriodYear      PeriodType = "year"
)

// PeriodTypes lists every supported period type.
var PeriodTypes = []PeriodType{PeriodWeek, PeriodSemiMonth, PeriodMonth, PeriodQuarter, PeriodYear}

// Valid reports whether the period type is one of the supported granularities.
func (p PeriodType) Valid() bool {
	switch p {
	case PeriodWeek, PeriodSemiMonth, PeriodMonth, PeriodQuarter, PeriodYear:
		return true
	}
	return false
}

// Day normalizes a time to midnight UTC. All engine dates are day-resolution.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// NewDate builds a day-resolution UTC date.
func NewDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// StartOfPeriod returns the first day of the period containing date.
// It is idempotent: StartOfPeriod(StartOfPeriod(d)) == StartOfPeriod(d).
func (p PeriodType) StartOfPeriod(date time.Time) time.Time {
	date = Day(date)
	y, m, d := date.Date()

	switch p {
	case PeriodWeek:
		// Weeks start on Monday.
		weekday := int(date.Weekday())
		if weekday == 0 {
			weekday = 7
		}
		return date.AddDate(0, 0, -(weekday - 1))
	case PeriodSemiMonth:
		if d < 16 {
			return NewDate(y, m, 1)
		}
		return NewDate(y, m, 16)
	case PeriodMonth:
		return NewDate(y, m, 1)
	case PeriodQuarter:
		quarter := (int(m) - 1) / 3
		return NewDate(y, time.Month(quarter*3+1), 1)
	case PeriodYear:
		return NewDate(y, time.January, 1)
	default:
		return date
	}
}

// EndOfPeriod returns the exclusive upper bound of the period containing
// date, which is the start of the next period. Range queries over a period
// use the half-open interval [StartOfPeriod(d), EndOfPeriod(d)).
func (p PeriodType) EndOfPeriod(date time.Time) time.Time {
	return p.Offset(date, 1)
}

// Offset returns the start of the period n periods after (n < 0: before)
// the period containing date. Offset(d, 0) == StartOfPeriod(d).
func (p PeriodType) Offset(date time.Time, n int) time.Time {
	start := p.StartOfPeriod(date)

	switch p {
	case PeriodWeek:
		return start.AddDate(0, 0, 7*n)
	case PeriodSemiMonth:
		// Index half-months absolutely so offsets compose across month and
		// year boundaries.
		y, m, d := start.Date()
		idx := (y*12+int(m)-1)*2 + n
		if d >= 16 {
			idx++
		}
		year := idx / 24
		rem := idx % 24
		if rem < 0 {
			rem += 24
			year--
		}
		day := 1
		if rem%2 == 1 {
			day = 16
		}
		return NewDate(year, time.Month(rem/2+1), day)
	case PeriodMonth:
		return start.AddDate(0, n, 0)
	case PeriodQuarter:
		return start.AddDate(0, 3*n, 0)
	case PeriodYear:
		return start.AddDate(n, 0, 0)
	default:
		return start
	}
}

// Key returns the canonical storage key for the period containing date.
// Budgeted amounts are stored in maps keyed by this value.
func (p PeriodType) Key(date time.Time) string {
	return p.StartOfPeriod(date).Format("2006-01-02")
}
