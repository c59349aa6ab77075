package entity

import (
	"time"

	"github.com/google/uuid"
)

// FullNameSeparator joins ancestor names in a category's full name.
const FullNameSeparator = ":"

// BudgetCategory is a node in the budget forest. The parent pointer is a
// non-owning back-reference used for traversal; ownership flows downward
// through Children. Budgeted amounts are stored keyed by the start of the
// period (in this category's own period type) containing their date.
//
// The Expanded flag is persisted UI state and plays no part in any
// computation.
type BudgetCategory struct {
	ID         uuid.UUID
	Name       string
	Parent     *BudgetCategory
	Children   []*BudgetCategory
	PeriodType PeriodType
	Income     bool
	Expanded   bool
	Deleted    bool
	Notes      string

	amounts map[string]int64 // period key -> budgeted minor units
}

// NewBudgetCategory creates a new BudgetCategory entity.
func NewBudgetCategory(name string, periodType PeriodType, income bool) *BudgetCategory {
	return &BudgetCategory{
		ID:         uuid.New(),
		Name:       name,
		PeriodType: periodType,
		Income:     income,
		Expanded:   true,
		amounts:    make(map[string]int64),
	}
}

// SetAmount stores the budgeted amount for the period containing date,
// normalized to this category's period type. A zero amount clears the entry.
func (c *BudgetCategory) SetAmount(date time.Time, amount int64) {
	if c.amounts == nil {
		c.amounts = make(map[string]int64)
	}
	key := c.PeriodType.Key(date)
	if amount == 0 {
		delete(c.amounts, key)
		return
	}
	c.amounts[key] = amount
}

// Amount returns the budgeted amount for the period containing date,
// defaulting to 0 when none is stored.
func (c *BudgetCategory) Amount(date time.Time) int64 {
	if c.amounts == nil {
		return 0
	}
	return c.amounts[c.PeriodType.Key(date)]
}

// Amounts returns a copy of the stored period-key -> amount map.
func (c *BudgetCategory) Amounts() map[string]int64 {
	out := make(map[string]int64, len(c.amounts))
	for k, v := range c.amounts {
		out[k] = v
	}
	return out
}

// RestoreAmount installs a stored amount under its persisted period key,
// bypassing normalization. Used when loading a document.
func (c *BudgetCategory) RestoreAmount(periodKey string, amount int64) {
	if c.amounts == nil {
		c.amounts = make(map[string]int64)
	}
	if amount == 0 {
		return
	}
	c.amounts[periodKey] = amount
}

// Depth returns the distance from the forest root (roots have depth 0).
func (c *BudgetCategory) Depth() int {
	depth := 0
	for p := c.Parent; p != nil; p = p.Parent {
		depth++
	}
	return depth
}

// IsAncestorOf reports whether c is an ancestor of other.
func (c *BudgetCategory) IsAncestorOf(other *BudgetCategory) bool {
	for p := other.Parent; p != nil; p = p.Parent {
		if p == c {
			return true
		}
	}
	return false
}

// Source implementation.

func (c *BudgetCategory) SourceID() uuid.UUID    { return c.ID }
func (c *BudgetCategory) SourceKind() SourceKind { return SourceKindCategory }
func (c *BudgetCategory) SourceName() string     { return c.Name }

// SourceFullName returns the path-qualified name, e.g. "Auto:Gas".
func (c *BudgetCategory) SourceFullName() string {
	if c.Parent == nil {
		return c.Name
	}
	return c.Parent.SourceFullName() + FullNameSeparator + c.Name
}

func (c *BudgetCategory) IsDeleted() bool { return c.Deleted }
func (c *BudgetCategory) IsIncome() bool  { return c.Income }
func (c *BudgetCategory) IsCredit() bool  { return false }
