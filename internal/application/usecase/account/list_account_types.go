// Package account contains account-related use cases.
package account

import (
	"context"

	"github.com/budgetbook/backend/internal/domain/document"
)

// ListAccountTypesOutput represents the output of listing account types.
type ListAccountTypesOutput struct {
	Types []*AccountTypeOutput
}

// ListAccountTypesUseCase handles account type listing.
type ListAccountTypesUseCase struct {
	doc *document.Document
}

// NewListAccountTypesUseCase creates a new ListAccountTypesUseCase instance.
func NewListAccountTypesUseCase(doc *document.Document) *ListAccountTypesUseCase {
	return &ListAccountTypesUseCase{doc: doc}
}

// Execute lists the document's account types.
func (uc *ListAccountTypesUseCase) Execute(ctx context.Context) (*ListAccountTypesOutput, error) {
	types := uc.doc.AccountTypes()
	out := &ListAccountTypesOutput{Types: make([]*AccountTypeOutput, 0, len(types))}
	for _, at := range types {
		out.Types = append(out.Types, &AccountTypeOutput{
			ID:       at.ID,
			Name:     at.Name,
			Credit:   at.Credit,
			Expanded: at.Expanded,
		})
	}
	return out, nil
}
