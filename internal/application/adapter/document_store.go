// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/budgetbook/backend/internal/domain/document"
)

// DocumentStore persists and restores the full document graph. The engine
// works entirely in memory; the store only ever sees the complete document.
type DocumentStore interface {
	// Load restores the persisted document, or returns a fresh one when
	// nothing has been saved yet.
	Load(ctx context.Context) (*document.Document, error)

	// Save persists the entire document atomically, replacing any
	// previously saved state.
	Save(ctx context.Context, doc *document.Document) error
}
