// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/budgetbook/backend/internal/domain/entity"
)

// AccountTypeModel represents the account_types table in the database.
type AccountTypeModel struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name     string    `gorm:"type:varchar(50);not null"`
	Credit   bool      `gorm:"not null"`
	Expanded bool      `gorm:"not null;default:true"`
	Position int       `gorm:"not null"`
}

// TableName returns the table name for the AccountTypeModel.
func (AccountTypeModel) TableName() string {
	return "account_types"
}

// ToEntity converts an AccountTypeModel to a domain AccountType entity.
func (m *AccountTypeModel) ToEntity() *entity.AccountType {
	return &entity.AccountType{
		ID:       m.ID,
		Name:     m.Name,
		Credit:   m.Credit,
		Expanded: m.Expanded,
	}
}

// AccountTypeFromEntity creates an AccountTypeModel from a domain entity.
func AccountTypeFromEntity(at *entity.AccountType, position int) *AccountTypeModel {
	return &AccountTypeModel{
		ID:       at.ID,
		Name:     at.Name,
		Credit:   at.Credit,
		Expanded: at.Expanded,
		Position: position,
	}
}

// AccountModel represents the accounts table in the database. Balances are
// never stored; they are replayed from the ledger.
type AccountModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name            string    `gorm:"type:varchar(100);not null"`
	TypeID          uuid.UUID `gorm:"type:uuid;not null;index"`
	StartingBalance int64     `gorm:"not null"`
	StartDate       time.Time `gorm:"not null"`
	Notes           string    `gorm:"type:text"`
	Deleted         bool      `gorm:"not null;index"`
	Position        int       `gorm:"not null"`
}

// TableName returns the table name for the AccountModel.
func (AccountModel) TableName() string {
	return "accounts"
}

// ToEntity converts an AccountModel to a domain Account entity. The account
// type is resolved by the caller.
func (m *AccountModel) ToEntity(accountType *entity.AccountType) *entity.Account {
	return &entity.Account{
		ID:              m.ID,
		Name:            m.Name,
		Type:            accountType,
		StartingBalance: m.StartingBalance,
		StartDate:       entity.Day(m.StartDate),
		Notes:           m.Notes,
		Deleted:         m.Deleted,
	}
}

// AccountFromEntity creates an AccountModel from a domain Account entity.
func AccountFromEntity(a *entity.Account, position int) *AccountModel {
	m := &AccountModel{
		ID:              a.ID,
		Name:            a.Name,
		StartingBalance: a.StartingBalance,
		StartDate:       a.StartDate,
		Notes:           a.Notes,
		Deleted:         a.Deleted,
		Position:        position,
	}
	if a.Type != nil {
		m.TypeID = a.Type.ID
	}
	return m
}
