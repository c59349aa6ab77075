// Package budgetview contains budgeting view navigation use cases.
package budgetview

import (
	"context"
	"time"

	"github.com/budgetbook/backend/internal/domain/document"
	"github.com/budgetbook/backend/internal/domain/entity"
)

// DefaultViewName is the view used when the caller does not name one.
const DefaultViewName = "default"

// GetViewInput represents the input for reading a budgeting view's state.
type GetViewInput struct {
	Name string
}

// ViewOutput represents the navigation state of one budgeting view.
type ViewOutput struct {
	Name        string
	PeriodType  entity.PeriodType
	Date        time.Time
	PeriodStart time.Time
	PeriodEnd   time.Time
}

// GetViewOutput represents the output of reading a budgeting view.
type GetViewOutput struct {
	View *ViewOutput
}

// GetViewUseCase handles budgeting view reads.
type GetViewUseCase struct {
	doc *document.Document
}

// NewGetViewUseCase creates a new GetViewUseCase instance.
func NewGetViewUseCase(doc *document.Document) *GetViewUseCase {
	return &GetViewUseCase{doc: doc}
}

// Execute returns the view's state, creating the view on first use.
func (uc *GetViewUseCase) Execute(ctx context.Context, input GetViewInput) (*GetViewOutput, error) {
	name := input.Name
	if name == "" {
		name = DefaultViewName
	}
	periodType, date := uc.doc.BudgetViewState(name)
	return &GetViewOutput{View: toViewOutput(name, periodType, date)}, nil
}

func toViewOutput(name string, periodType entity.PeriodType, date time.Time) *ViewOutput {
	return &ViewOutput{
		Name:        name,
		PeriodType:  periodType,
		Date:        date,
		PeriodStart: periodType.StartOfPeriod(date),
		PeriodEnd:   periodType.EndOfPeriod(date),
	}
}
