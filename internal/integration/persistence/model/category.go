// Package model defines database models for persistence layer.
package model

import (
	"github.com/google/uuid"

	"github.com/budgetbook/backend/internal/domain/entity"
)

// BudgetCategoryModel represents the budget_categories table in the
// database. The forest structure is stored through ParentID; Position keeps
// sibling order stable across load/save cycles.
type BudgetCategoryModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name       string     `gorm:"type:varchar(100);not null"`
	ParentID   *uuid.UUID `gorm:"type:uuid;index"`
	PeriodType string     `gorm:"type:varchar(20);not null"`
	Income     bool       `gorm:"not null"`
	Expanded   bool       `gorm:"not null;default:true"`
	Deleted    bool       `gorm:"not null;index"`
	Notes      string     `gorm:"type:text"`
	Position   int        `gorm:"not null"`
}

// TableName returns the table name for the BudgetCategoryModel.
func (BudgetCategoryModel) TableName() string {
	return "budget_categories"
}

// ToEntity converts a BudgetCategoryModel to a domain BudgetCategory
// entity. Parent and children wiring is the loader's responsibility.
func (m *BudgetCategoryModel) ToEntity() *entity.BudgetCategory {
	c := entity.NewBudgetCategory(m.Name, entity.PeriodType(m.PeriodType), m.Income)
	c.ID = m.ID
	c.Expanded = m.Expanded
	c.Deleted = m.Deleted
	c.Notes = m.Notes
	return c
}

// BudgetCategoryFromEntity creates a BudgetCategoryModel from a domain
// entity.
func BudgetCategoryFromEntity(c *entity.BudgetCategory, position int) *BudgetCategoryModel {
	m := &BudgetCategoryModel{
		ID:         c.ID,
		Name:       c.Name,
		PeriodType: string(c.PeriodType),
		Income:     c.Income,
		Expanded:   c.Expanded,
		Deleted:    c.Deleted,
		Notes:      c.Notes,
		Position:   position,
	}
	if c.Parent != nil {
		parentID := c.Parent.ID
		m.ParentID = &parentID
	}
	return m
}

// BudgetAmountModel represents the budget_amounts table in the database:
// one row per category and period key.
type BudgetAmountModel struct {
	CategoryID uuid.UUID `gorm:"type:uuid;primaryKey"`
	PeriodKey  string    `gorm:"type:varchar(10);primaryKey"`
	Amount     int64     `gorm:"not null"`
}

// TableName returns the table name for the BudgetAmountModel.
func (BudgetAmountModel) TableName() string {
	return "budget_amounts"
}

// BudgetAmountsFromEntity creates the amount rows of one category.
func BudgetAmountsFromEntity(c *entity.BudgetCategory) []*BudgetAmountModel {
	amounts := c.Amounts()
	out := make([]*BudgetAmountModel, 0, len(amounts))
	for key, amount := range amounts {
		out = append(out, &BudgetAmountModel{
			CategoryID: c.ID,
			PeriodKey:  key,
			Amount:     amount,
		})
	}
	return out
}
