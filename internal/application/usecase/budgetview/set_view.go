// Package budgetview contains budgeting view navigation use cases.
package budgetview

import (
	"context"
	"time"

	"github.com/budgetbook/backend/internal/application/adapter"
	"github.com/budgetbook/backend/internal/domain/document"
	"github.com/budgetbook/backend/internal/domain/entity"
)

// SetViewInput represents the input for changing a budgeting view. Nil
// fields are left unchanged; the period type switch runs before the date
// selection so both can be set in one call.
type SetViewInput struct {
	Name       string
	PeriodType *entity.PeriodType
	Date       *time.Time
}

// SetViewOutput represents the output of changing a budgeting view.
type SetViewOutput struct {
	View *ViewOutput
}

// SetViewUseCase handles budgeting view navigation.
type SetViewUseCase struct {
	doc   *document.Document
	store adapter.DocumentStore
}

// NewSetViewUseCase creates a new SetViewUseCase instance.
func NewSetViewUseCase(doc *document.Document, store adapter.DocumentStore) *SetViewUseCase {
	return &SetViewUseCase{doc: doc, store: store}
}

// Execute applies the navigation change and persists the document.
func (uc *SetViewUseCase) Execute(ctx context.Context, input SetViewInput) (*SetViewOutput, error) {
	name := input.Name
	if name == "" {
		name = DefaultViewName
	}
	if input.PeriodType != nil {
		if err := uc.doc.SetBudgetViewPeriodType(name, *input.PeriodType); err != nil {
			return nil, err
		}
	}
	if input.Date != nil {
		uc.doc.SetBudgetViewDate(name, *input.Date)
	}
	if err := uc.store.Save(ctx, uc.doc); err != nil {
		return nil, err
	}

	periodType, date := uc.doc.BudgetViewState(name)
	return &SetViewOutput{View: toViewOutput(name, periodType, date)}, nil
}
