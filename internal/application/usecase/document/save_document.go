// Package document contains document-level use cases.
package document

import (
	"context"
	"time"

	"github.com/budgetbook/backend/internal/application/adapter"
	domaindocument "github.com/budgetbook/backend/internal/domain/document"
)

// SaveDocumentOutput represents the output of an explicit save.
type SaveDocumentOutput struct {
	SavedAt time.Time
}

// SaveDocumentUseCase persists the in-memory document on demand. Mutating
// use cases already save after each change; this exists for explicit
// checkpoints requested by the client.
type SaveDocumentUseCase struct {
	doc   *domaindocument.Document
	store adapter.DocumentStore
}

// NewSaveDocumentUseCase creates a new SaveDocumentUseCase instance.
func NewSaveDocumentUseCase(doc *domaindocument.Document, store adapter.DocumentStore) *SaveDocumentUseCase {
	return &SaveDocumentUseCase{doc: doc, store: store}
}

// Execute writes the full document to the store.
func (uc *SaveDocumentUseCase) Execute(ctx context.Context) (*SaveDocumentOutput, error) {
	if err := uc.store.Save(ctx, uc.doc); err != nil {
		return nil, err
	}
	return &SaveDocumentOutput{SavedAt: time.Now()}, nil
}
