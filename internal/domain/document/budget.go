package document

import (
	"time"

	"github.com/google/uuid"

	"github.com/budgetbook/backend/internal/domain/entity"
)

// Evaluation is the budgeted-versus-actual picture of one category for the
// period (in the category's own period type) containing the queried date.
// Actual figures are signed: money flowing out of a category (income) is
// positive, money flowing into it (expense) is negative.
type Evaluation struct {
	Category             *entity.BudgetCategory
	Depth                int
	BudgetedOwn          int64
	BudgetedWithChildren int64
	ActualOwn            int64
	ActualWithChildren   int64
}

// Evaluate computes the budgeted and actual figures of a category, own and
// rolled up over its non-deleted descendants, for the period containing
// date. Deleted categories can still be evaluated individually; they are
// only excluded when reached as somebody's child.
func (d *Document) Evaluate(categoryID uuid.UUID, date time.Time) (*Evaluation, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	category, err := d.categoryByID(categoryID)
	if err != nil {
		return nil, err
	}
	return d.evaluate(category, date), nil
}

// EvaluateAll evaluates every non-deleted category in depth-first preorder.
func (d *Document) EvaluateAll(date time.Time) []*Evaluation {
	d.mu.RLock()
	defer d.mu.RUnlock()

	categories := d.categoriesLocked(false)
	out := make([]*Evaluation, 0, len(categories))
	for _, c := range categories {
		out = append(out, d.evaluate(c, date))
	}
	return out
}

func (d *Document) evaluate(category *entity.BudgetCategory, date time.Time) *Evaluation {
	e := &Evaluation{
		Category:    category,
		Depth:       category.Depth(),
		BudgetedOwn: category.Amount(date),
		ActualOwn:   d.actualOwn(category, date),
	}
	e.BudgetedWithChildren = e.BudgetedOwn
	e.ActualWithChildren = e.ActualOwn
	for _, child := range category.Children {
		if child.Deleted {
			continue
		}
		ce := d.evaluate(child, date)
		e.BudgetedWithChildren += ce.BudgetedWithChildren
		e.ActualWithChildren += ce.ActualWithChildren
	}
	return e
}

// actualOwn sums the category's direct transaction flow over the half-open
// period [start, nextStart) containing date, in the category's own period
// type. Outflow from the category counts positive, inflow negative.
func (d *Document) actualOwn(category *entity.BudgetCategory, date time.Time) int64 {
	start := category.PeriodType.StartOfPeriod(date)
	end := category.PeriodType.EndOfPeriod(date)

	var total int64
	for _, t := range d.transactionsInRange(category, start, end) {
		total += t.FromAmount(category) - t.ToAmount(category)
	}
	return total
}

// BudgetedNetIncome sums the budgeted amounts of every non-deleted category
// of the given period type for the period containing date, counting income
// categories positive and expense categories negative.
func (d *Document) BudgetedNetIncome(periodType entity.PeriodType, date time.Time) int64 {
	d.mu.RLock()
	defer d.mu.RUnlock()

	var total int64
	for _, c := range d.categoriesLocked(false) {
		if c.PeriodType != periodType {
			continue
		}
		amount := c.Amount(date)
		if c.Income {
			total += amount
		} else {
			total -= amount
		}
	}
	return total
}
