// Package model defines database models for persistence layer.
package model

import "time"

// BudgetViewModel represents the budget_views table in the database: the
// selected period type and date of each named budgeting view.
type BudgetViewModel struct {
	Name       string    `gorm:"type:varchar(50);primaryKey"`
	PeriodType string    `gorm:"type:varchar(20);not null"`
	Date       time.Time `gorm:"not null"`
}

// TableName returns the table name for the BudgetViewModel.
func (BudgetViewModel) TableName() string {
	return "budget_views"
}

// BudgetViewDateModel represents the budget_view_dates table in the
// database: the last date viewed under each period type of a view.
type BudgetViewDateModel struct {
	ViewName   string    `gorm:"type:varchar(50);primaryKey"`
	PeriodType string    `gorm:"type:varchar(20);primaryKey"`
	Date       time.Time `gorm:"not null"`
}

// TableName returns the table name for the BudgetViewDateModel.
func (BudgetViewDateModel) TableName() string {
	return "budget_view_dates"
}
