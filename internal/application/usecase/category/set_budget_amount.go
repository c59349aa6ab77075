// Package category contains budget category-related use cases.
package category

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/budgetbook/backend/internal/application/adapter"
	"github.com/budgetbook/backend/internal/domain/document"
)

// SetBudgetAmountInput represents the input for storing a budgeted amount.
// The date may be any day inside the target period; it is normalized to the
// category's own period type.
type SetBudgetAmountInput struct {
	CategoryID uuid.UUID
	Date       time.Time
	Amount     int64
}

// SetBudgetAmountOutput represents the output of storing a budgeted amount.
type SetBudgetAmountOutput struct {
	Category  *CategoryOutput
	PeriodKey string
	Amount    int64
}

// SetBudgetAmountUseCase handles budgeted amount updates.
type SetBudgetAmountUseCase struct {
	doc   *document.Document
	store adapter.DocumentStore
}

// NewSetBudgetAmountUseCase creates a new SetBudgetAmountUseCase instance.
func NewSetBudgetAmountUseCase(doc *document.Document, store adapter.DocumentStore) *SetBudgetAmountUseCase {
	return &SetBudgetAmountUseCase{doc: doc, store: store}
}

// Execute stores the amount and persists the document.
func (uc *SetBudgetAmountUseCase) Execute(ctx context.Context, input SetBudgetAmountInput) (*SetBudgetAmountOutput, error) {
	if err := uc.doc.SetBudgetAmount(input.CategoryID, input.Date, input.Amount); err != nil {
		return nil, err
	}
	if err := uc.store.Save(ctx, uc.doc); err != nil {
		return nil, err
	}

	category, err := uc.doc.CategoryByID(input.CategoryID)
	if err != nil {
		return nil, err
	}
	return &SetBudgetAmountOutput{
		Category:  toCategoryOutput(category),
		PeriodKey: category.PeriodType.Key(input.Date),
		Amount:    category.Amount(input.Date),
	}, nil
}
