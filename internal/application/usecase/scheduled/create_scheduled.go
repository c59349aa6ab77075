// Package scheduled contains scheduled transaction use cases.
package scheduled

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/budgetbook/backend/internal/application/adapter"
	"github.com/budgetbook/backend/internal/domain/document"
	"github.com/budgetbook/backend/internal/domain/entity"
)

// SourceRef identifies a scheduled transaction endpoint by kind and id.
type SourceRef struct {
	Kind entity.SourceKind
	ID   uuid.UUID
}

// CreateScheduledInput represents the input for creating a scheduled
// transaction template.
type CreateScheduledInput struct {
	Name        string
	Frequency   entity.Frequency
	StartDate   time.Time
	EndDate     *time.Time
	Amount      int64
	From        SourceRef
	To          SourceRef
	Description string
	Memo        string
}

// CreateScheduledOutput represents the output of creating a template.
type CreateScheduledOutput struct {
	Scheduled *ScheduledOutput
}

// CreateScheduledUseCase handles scheduled transaction creation.
type CreateScheduledUseCase struct {
	doc   *document.Document
	store adapter.DocumentStore
}

// NewCreateScheduledUseCase creates a new CreateScheduledUseCase instance.
func NewCreateScheduledUseCase(doc *document.Document, store adapter.DocumentStore) *CreateScheduledUseCase {
	return &CreateScheduledUseCase{doc: doc, store: store}
}

// Execute validates and attaches the template, then persists the document.
func (uc *CreateScheduledUseCase) Execute(ctx context.Context, input CreateScheduledInput) (*CreateScheduledOutput, error) {
	from, err := uc.doc.SourceByID(input.From.Kind, input.From.ID)
	if err != nil {
		return nil, err
	}
	to, err := uc.doc.SourceByID(input.To.Kind, input.To.ID)
	if err != nil {
		return nil, err
	}

	s := entity.NewScheduledTransaction(input.Name, input.Frequency, input.StartDate, input.Amount, from, to)
	s.Description = input.Description
	s.Memo = input.Memo
	if input.EndDate != nil {
		end := entity.Day(*input.EndDate)
		s.EndDate = &end
	}

	if err := uc.doc.AddScheduledTransaction(s); err != nil {
		return nil, err
	}
	if err := uc.store.Save(ctx, uc.doc); err != nil {
		return nil, err
	}
	return &CreateScheduledOutput{Scheduled: toScheduledOutput(s)}, nil
}
