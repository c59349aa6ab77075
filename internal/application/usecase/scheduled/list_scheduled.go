// Package scheduled contains scheduled transaction use cases.
package scheduled

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/budgetbook/backend/internal/domain/document"
	"github.com/budgetbook/backend/internal/domain/entity"
)

// SourceOutput represents a scheduled transaction endpoint in the output.
type SourceOutput struct {
	Kind     entity.SourceKind
	ID       uuid.UUID
	Name     string
	FullName string
}

// ScheduledOutput represents a single scheduled transaction template.
type ScheduledOutput struct {
	ID          uuid.UUID
	Name        string
	Frequency   entity.Frequency
	StartDate   time.Time
	EndDate     *time.Time
	LastRun     time.Time
	Amount      int64
	From        SourceOutput
	To          SourceOutput
	Description string
	Memo        string
	NextDue     *time.Time
}

// ListScheduledOutput represents the output of listing scheduled
// transactions.
type ListScheduledOutput struct {
	Scheduled []*ScheduledOutput
}

// ListScheduledUseCase handles scheduled transaction listing.
type ListScheduledUseCase struct {
	doc *document.Document
}

// NewListScheduledUseCase creates a new ListScheduledUseCase instance.
func NewListScheduledUseCase(doc *document.Document) *ListScheduledUseCase {
	return &ListScheduledUseCase{doc: doc}
}

// Execute lists the scheduled transaction templates.
func (uc *ListScheduledUseCase) Execute(ctx context.Context) (*ListScheduledOutput, error) {
	scheduled := uc.doc.ScheduledTransactions()
	out := &ListScheduledOutput{Scheduled: make([]*ScheduledOutput, 0, len(scheduled))}
	for _, s := range scheduled {
		out.Scheduled = append(out.Scheduled, toScheduledOutput(s))
	}
	return out, nil
}

func toSourceOutput(s entity.Source) SourceOutput {
	return SourceOutput{
		Kind:     s.SourceKind(),
		ID:       s.SourceID(),
		Name:     s.SourceName(),
		FullName: s.SourceFullName(),
	}
}

func toScheduledOutput(s *entity.ScheduledTransaction) *ScheduledOutput {
	out := &ScheduledOutput{
		ID:          s.ID,
		Name:        s.Name,
		Frequency:   s.Frequency,
		StartDate:   s.StartDate,
		EndDate:     s.EndDate,
		LastRun:     s.LastRun,
		Amount:      s.Amount,
		From:        toSourceOutput(s.From),
		To:          toSourceOutput(s.To),
		Description: s.Description,
		Memo:        s.Memo,
	}
	// Look a year past the last run for the next occurrence; schedules due
	// further out than that report no next date.
	horizon := entity.Day(time.Now()).AddDate(1, 0, 0)
	if due := s.DueDates(horizon); len(due) > 0 {
		next := due[0]
		out.NextDue = &next
	}
	return out
}
