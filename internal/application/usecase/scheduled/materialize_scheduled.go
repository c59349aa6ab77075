// Package scheduled contains scheduled transaction use cases.
package scheduled

import (
	"context"
	"time"

	"github.com/budgetbook/backend/internal/application/adapter"
	"github.com/budgetbook/backend/internal/domain/document"
)

// MaterializeScheduledInput represents the input for materializing due
// scheduled transactions. A nil AsOf means the current day.
type MaterializeScheduledInput struct {
	AsOf *time.Time
}

// MaterializeScheduledOutput represents the output of a materialization.
type MaterializeScheduledOutput struct {
	Created int
}

// MaterializeScheduledUseCase turns every due occurrence into a concrete
// ledger transaction. It runs on demand and from the background worker.
type MaterializeScheduledUseCase struct {
	doc   *document.Document
	store adapter.DocumentStore
}

// NewMaterializeScheduledUseCase creates a new MaterializeScheduledUseCase
// instance.
func NewMaterializeScheduledUseCase(doc *document.Document, store adapter.DocumentStore) *MaterializeScheduledUseCase {
	return &MaterializeScheduledUseCase{doc: doc, store: store}
}

// Execute materializes due occurrences and persists the document when
// anything was created.
func (uc *MaterializeScheduledUseCase) Execute(ctx context.Context, input MaterializeScheduledInput) (*MaterializeScheduledOutput, error) {
	asOf := time.Now()
	if input.AsOf != nil {
		asOf = *input.AsOf
	}
	created, err := uc.doc.MaterializeScheduled(asOf)
	if err != nil {
		return nil, err
	}
	if created > 0 {
		if err := uc.store.Save(ctx, uc.doc); err != nil {
			return nil, err
		}
	}
	return &MaterializeScheduledOutput{Created: created}, nil
}
