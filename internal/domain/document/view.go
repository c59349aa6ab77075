package document

import (
	"time"

	"github.com/budgetbook/backend/internal/domain/entity"
)

// BudgetView is the persisted navigation state of one budgeting screen: the
// selected period type and a date normalized to that type's period start.
// The last date viewed under each period type is remembered, so switching
// from month to week and back lands on the month the user left.
type BudgetView struct {
	periodType entity.PeriodType
	date       time.Time
	lastDates  map[entity.PeriodType]time.Time
}

// NewBudgetView creates a view showing the month containing now.
func NewBudgetView(now time.Time) *BudgetView {
	pt := entity.PeriodMonth
	date := pt.StartOfPeriod(now)
	return &BudgetView{
		periodType: pt,
		date:       date,
		lastDates:  map[entity.PeriodType]time.Time{pt: date},
	}
}

// RestoreBudgetView rebuilds a view from persisted state.
func RestoreBudgetView(periodType entity.PeriodType, date time.Time, lastDates map[entity.PeriodType]time.Time) *BudgetView {
	v := &BudgetView{
		periodType: periodType,
		date:       periodType.StartOfPeriod(date),
		lastDates:  make(map[entity.PeriodType]time.Time, len(lastDates)+1),
	}
	for pt, last := range lastDates {
		v.lastDates[pt] = pt.StartOfPeriod(last)
	}
	v.lastDates[periodType] = v.date
	return v
}

// PeriodType returns the view's selected period type.
func (v *BudgetView) PeriodType() entity.PeriodType { return v.periodType }

// Date returns the selected date, normalized to the start of its period.
func (v *BudgetView) Date() time.Time { return v.date }

// LastDates returns a copy of the remembered per-type dates.
func (v *BudgetView) LastDates() map[entity.PeriodType]time.Time {
	out := make(map[entity.PeriodType]time.Time, len(v.lastDates))
	for pt, last := range v.lastDates {
		out[pt] = last
	}
	return out
}

// SetDate selects the period (in the current period type) containing date.
func (v *BudgetView) SetDate(date time.Time) {
	v.date = v.periodType.StartOfPeriod(date)
	v.lastDates[v.periodType] = v.date
}

// SetPeriodType switches the period type. The current date is remembered
// under the old type; if the new type was viewed before, its last date is
// restored, otherwise the current date is re-normalized to the new type.
func (v *BudgetView) SetPeriodType(periodType entity.PeriodType) {
	if periodType == v.periodType {
		return
	}
	v.lastDates[v.periodType] = v.date

	if last, ok := v.lastDates[periodType]; ok {
		v.date = last
	} else {
		v.date = periodType.StartOfPeriod(v.date)
	}
	v.periodType = periodType
	v.lastDates[periodType] = v.date
}
