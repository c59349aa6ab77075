// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/budgetbook/backend/internal/domain/entity"
)

// Split sides stored on TransactionSplitModel rows.
const (
	SplitSideFrom = "from"
	SplitSideTo   = "to"
)

// TransactionModel represents the transactions table in the database.
// Endpoints are stored as (kind, id) pairs; the split placeholder is kind
// "split" with a nil id.
type TransactionModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Date        time.Time `gorm:"not null;index"`
	Description string    `gorm:"type:varchar(255)"`
	Number      string    `gorm:"type:varchar(50)"`
	Memo        string    `gorm:"type:text"`
	Amount      int64     `gorm:"not null"`
	FromKind    string    `gorm:"type:varchar(10);not null"`
	FromID      uuid.UUID `gorm:"type:uuid;index"`
	ToKind      string    `gorm:"type:varchar(10);not null"`
	ToID        uuid.UUID `gorm:"type:uuid;index"`

	ClearedFrom    bool `gorm:"not null"`
	ClearedTo      bool `gorm:"not null"`
	ReconciledFrom bool `gorm:"not null"`
	ReconciledTo   bool `gorm:"not null"`

	Sequence uint64 `gorm:"not null;index"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// TransactionFromEntity creates a TransactionModel from a domain entity.
func TransactionFromEntity(t *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:             t.ID,
		Date:           t.Date,
		Description:    t.Description,
		Number:         t.Number,
		Memo:           t.Memo,
		Amount:         t.Amount,
		FromKind:       string(t.From.SourceKind()),
		FromID:         t.From.SourceID(),
		ToKind:         string(t.To.SourceKind()),
		ToID:           t.To.SourceID(),
		ClearedFrom:    t.ClearedFrom,
		ClearedTo:      t.ClearedTo,
		ReconciledFrom: t.ReconciledFrom,
		ReconciledTo:   t.ReconciledTo,
		Sequence:       t.Sequence,
	}
}

// TransactionSplitModel represents the transaction_splits table in the
// database: one row per split entry, tagged with the side it belongs to.
type TransactionSplitModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	TransactionID uuid.UUID `gorm:"type:uuid;not null;index"`
	Side          string    `gorm:"type:varchar(4);not null"`
	SourceKind    string    `gorm:"type:varchar(10);not null"`
	SourceID      uuid.UUID `gorm:"type:uuid;not null"`
	Amount        int64     `gorm:"not null"`
	Position      int       `gorm:"not null"`
}

// TableName returns the table name for the TransactionSplitModel.
func (TransactionSplitModel) TableName() string {
	return "transaction_splits"
}

// SplitsFromEntity creates the split rows of one transaction.
func SplitsFromEntity(t *entity.Transaction) []*TransactionSplitModel {
	out := make([]*TransactionSplitModel, 0, len(t.FromSplits)+len(t.ToSplits))
	for i, s := range t.FromSplits {
		out = append(out, splitFromEntity(t.ID, SplitSideFrom, s, i))
	}
	for i, s := range t.ToSplits {
		out = append(out, splitFromEntity(t.ID, SplitSideTo, s, i))
	}
	return out
}

func splitFromEntity(transactionID uuid.UUID, side string, s *entity.TransactionSplit, position int) *TransactionSplitModel {
	return &TransactionSplitModel{
		ID:            s.ID,
		TransactionID: transactionID,
		Side:          side,
		SourceKind:    string(s.Source.SourceKind()),
		SourceID:      s.Source.SourceID(),
		Amount:        s.Amount,
		Position:      position,
	}
}
