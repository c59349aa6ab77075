// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/budgetbook/backend/internal/domain/entity"
)

// ScheduledTransactionModel represents the scheduled_transactions table in
// the database.
type ScheduledTransactionModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name        string     `gorm:"type:varchar(100);not null"`
	Frequency   string     `gorm:"type:varchar(20);not null"`
	StartDate   time.Time  `gorm:"not null"`
	EndDate     *time.Time `gorm:""`
	LastRun     time.Time  `gorm:""`
	Amount      int64      `gorm:"not null"`
	FromKind    string     `gorm:"type:varchar(10);not null"`
	FromID      uuid.UUID  `gorm:"type:uuid"`
	ToKind      string     `gorm:"type:varchar(10);not null"`
	ToID        uuid.UUID  `gorm:"type:uuid"`
	Description string     `gorm:"type:varchar(255)"`
	Memo        string     `gorm:"type:text"`
}

// TableName returns the table name for the ScheduledTransactionModel.
func (ScheduledTransactionModel) TableName() string {
	return "scheduled_transactions"
}

// ScheduledFromEntity creates a ScheduledTransactionModel from a domain
// entity.
func ScheduledFromEntity(s *entity.ScheduledTransaction) *ScheduledTransactionModel {
	return &ScheduledTransactionModel{
		ID:          s.ID,
		Name:        s.Name,
		Frequency:   string(s.Frequency),
		StartDate:   s.StartDate,
		EndDate:     s.EndDate,
		LastRun:     s.LastRun,
		Amount:      s.Amount,
		FromKind:    string(s.From.SourceKind()),
		FromID:      s.From.SourceID(),
		ToKind:      string(s.To.SourceKind()),
		ToID:        s.To.SourceID(),
		Description: s.Description,
		Memo:        s.Memo,
	}
}
