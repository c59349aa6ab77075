// Package budget contains budget evaluation use cases.
package budget

import (
	"context"
	"time"

	"github.com/budgetbook/backend/internal/domain/document"
	"github.com/budgetbook/backend/internal/domain/entity"
	domainerror "github.com/budgetbook/backend/internal/domain/error"
)

// GetNetIncomeInput represents the input for a budgeted net income query.
type GetNetIncomeInput struct {
	PeriodType entity.PeriodType
	Date       time.Time
}

// GetNetIncomeOutput represents the output of a budgeted net income query.
type GetNetIncomeOutput struct {
	PeriodType  entity.PeriodType
	PeriodStart time.Time
	NetIncome   int64
}

// GetNetIncomeUseCase handles budgeted net income queries.
type GetNetIncomeUseCase struct {
	doc *document.Document
}

// NewGetNetIncomeUseCase creates a new GetNetIncomeUseCase instance.
func NewGetNetIncomeUseCase(doc *document.Document) *GetNetIncomeUseCase {
	return &GetNetIncomeUseCase{doc: doc}
}

// Execute sums the budgeted amounts of all non-deleted categories of the
// period type, income positive and expenses negative.
func (uc *GetNetIncomeUseCase) Execute(ctx context.Context, input GetNetIncomeInput) (*GetNetIncomeOutput, error) {
	if !input.PeriodType.Valid() {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidPeriodType,
			"unknown period type",
			domainerror.ErrInvalidPeriodType,
		)
	}
	return &GetNetIncomeOutput{
		PeriodType:  input.PeriodType,
		PeriodStart: input.PeriodType.StartOfPeriod(input.Date),
		NetIncome:   uc.doc.BudgetedNetIncome(input.PeriodType, input.Date),
	}, nil
}
