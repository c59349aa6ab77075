package entity

import (
	"time"

	"github.com/google/uuid"
)

// Frequency is the recurrence rule of a scheduled transaction.
type Frequency string

const (
	FrequencyDaily       Frequency = "daily"
	FrequencyWeekly      Frequency = "weekly"
	FrequencyBiweekly    Frequency = "biweekly"
	FrequencySemiMonthly Frequency = "semi_monthly"
	FrequencyMonthly     Frequency = "monthly"
	FrequencyYearly      Frequency = "yearly"
)

// Valid reports whether the frequency is one of the supported rules.
func (f Frequency) Valid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyBiweekly, FrequencySemiMonthly, FrequencyMonthly, FrequencyYearly:
		return true
	}
	return false
}

// ScheduledTransaction is a template that generates concrete ledger
// transactions on its due dates. It does not participate in balance
// computation until materialized.
type ScheduledTransaction struct {
	ID          uuid.UUID
	Name        string
	Frequency   Frequency
	StartDate   time.Time
	EndDate     *time.Time // nil: no end
	LastRun     time.Time  // zero until the first materialization
	Amount      int64
	From        Source
	To          Source
	Description string
	Memo        string
}

// NewScheduledTransaction creates a new ScheduledTransaction entity.
func NewScheduledTransaction(name string, frequency Frequency, startDate time.Time, amount int64, from, to Source) *ScheduledTransaction {
	return &ScheduledTransaction{
		ID:        uuid.New(),
		Name:      name,
		Frequency: frequency,
		StartDate: Day(startDate),
		Amount:    amount,
		From:      from,
		To:        to,
	}
}

// DueDates returns, in ascending order, every occurrence after LastRun and
// no later than asOf (and no later than EndDate when set).
func (s *ScheduledTransaction) DueDates(asOf time.Time) []time.Time {
	asOf = Day(asOf)
	if s.EndDate != nil && s.EndDate.Before(asOf) {
		asOf = Day(*s.EndDate)
	}

	var due []time.Time
	for k := 0; ; k++ {
		occurrence := s.occurrence(k)
		if occurrence.After(asOf) {
			break
		}
		if occurrence.After(s.LastRun) {
			due = append(due, occurrence)
		}
	}
	return due
}

// occurrence returns the k-th occurrence, counting from StartDate.
func (s *ScheduledTransaction) occurrence(k int) time.Time {
	start := Day(s.StartDate)
	switch s.Frequency {
	case FrequencyDaily:
		return start.AddDate(0, 0, k)
	case FrequencyWeekly:
		return start.AddDate(0, 0, 7*k)
	case FrequencyBiweekly:
		return start.AddDate(0, 0, 14*k)
	case FrequencySemiMonthly:
		// Twice per month: the start date and fifteen days after it.
		base := start.AddDate(0, k/2, 0)
		if k%2 == 1 {
			base = base.AddDate(0, 0, 15)
		}
		return base
	case FrequencyMonthly:
		return start.AddDate(0, k, 0)
	case FrequencyYearly:
		return start.AddDate(k, 0, 0)
	default:
		return start
	}
}

// NewInstance builds the concrete transaction for one due date.
func (s *ScheduledTransaction) NewInstance(date time.Time) *Transaction {
	t := NewTransaction(date, s.Description, s.Amount, s.From, s.To)
	t.Memo = s.Memo
	return t
}
