// Package budget contains budget evaluation use cases.
package budget

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/budgetbook/backend/internal/domain/document"
	"github.com/budgetbook/backend/internal/domain/entity"
)

// EvaluateBudgetInput represents the input for a budget evaluation. When
// CategoryID is nil every non-deleted category is evaluated.
type EvaluateBudgetInput struct {
	CategoryID *uuid.UUID
	Date       time.Time
}

// EvaluationOutput represents one category's budgeted-versus-actual figures
// for the period containing the queried date.
type EvaluationOutput struct {
	CategoryID           uuid.UUID
	Name                 string
	FullName             string
	PeriodType           entity.PeriodType
	Income               bool
	Depth                int
	PeriodStart          time.Time
	PeriodEnd            time.Time
	BudgetedOwn          int64
	BudgetedWithChildren int64
	ActualOwn            int64
	ActualWithChildren   int64
}

// EvaluateBudgetOutput represents the output of a budget evaluation, in
// depth-first order so parents precede their children.
type EvaluateBudgetOutput struct {
	Evaluations []*EvaluationOutput
}

// EvaluateBudgetUseCase handles budgeted-versus-actual queries.
type EvaluateBudgetUseCase struct {
	doc *document.Document
}

// NewEvaluateBudgetUseCase creates a new EvaluateBudgetUseCase instance.
func NewEvaluateBudgetUseCase(doc *document.Document) *EvaluateBudgetUseCase {
	return &EvaluateBudgetUseCase{doc: doc}
}

// Execute evaluates one category or the whole forest for the given date.
func (uc *EvaluateBudgetUseCase) Execute(ctx context.Context, input EvaluateBudgetInput) (*EvaluateBudgetOutput, error) {
	if input.CategoryID != nil {
		evaluation, err := uc.doc.Evaluate(*input.CategoryID, input.Date)
		if err != nil {
			return nil, err
		}
		return &EvaluateBudgetOutput{
			Evaluations: []*EvaluationOutput{toEvaluationOutput(evaluation, input.Date)},
		}, nil
	}

	evaluations := uc.doc.EvaluateAll(input.Date)
	out := &EvaluateBudgetOutput{Evaluations: make([]*EvaluationOutput, 0, len(evaluations))}
	for _, e := range evaluations {
		out.Evaluations = append(out.Evaluations, toEvaluationOutput(e, input.Date))
	}
	return out, nil
}

func toEvaluationOutput(e *document.Evaluation, date time.Time) *EvaluationOutput {
	c := e.Category
	return &EvaluationOutput{
		CategoryID:           c.ID,
		Name:                 c.Name,
		FullName:             c.SourceFullName(),
		PeriodType:           c.PeriodType,
		Income:               c.Income,
		Depth:                e.Depth,
		PeriodStart:          c.PeriodType.StartOfPeriod(date),
		PeriodEnd:            c.PeriodType.EndOfPeriod(date),
		BudgetedOwn:          e.BudgetedOwn,
		BudgetedWithChildren: e.BudgetedWithChildren,
		ActualOwn:            e.ActualOwn,
		ActualWithChildren:   e.ActualWithChildren,
	}
}
