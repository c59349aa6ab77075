// Package category contains budget category-related use cases.
package category

import (
	"context"

	"github.com/google/uuid"

	"github.com/budgetbook/backend/internal/domain/document"
	"github.com/budgetbook/backend/internal/domain/entity"
)

// ListCategoriesInput represents the input for listing categories. A
// non-empty PeriodType restricts the listing to categories of that type.
type ListCategoriesInput struct {
	PeriodType     entity.PeriodType
	IncludeDeleted bool
}

// CategoryOutput represents a single budget category in the output.
type CategoryOutput struct {
	ID         uuid.UUID
	Name       string
	FullName   string
	ParentID   *uuid.UUID
	PeriodType entity.PeriodType
	Income     bool
	Expanded   bool
	Deleted    bool
	Notes      string
	Depth      int
}

// ListCategoriesOutput represents the output of listing categories, in
// depth-first order so parents precede their children.
type ListCategoriesOutput struct {
	Categories []*CategoryOutput
}

// ListCategoriesUseCase handles category listing logic.
type ListCategoriesUseCase struct {
	doc *document.Document
}

// NewListCategoriesUseCase creates a new ListCategoriesUseCase instance.
func NewListCategoriesUseCase(doc *document.Document) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{doc: doc}
}

// Execute lists the budget category forest.
func (uc *ListCategoriesUseCase) Execute(ctx context.Context, input ListCategoriesInput) (*ListCategoriesOutput, error) {
	categories := uc.doc.Categories(input.IncludeDeleted)
	out := &ListCategoriesOutput{Categories: make([]*CategoryOutput, 0, len(categories))}
	for _, c := range categories {
		if input.PeriodType != "" && c.PeriodType != input.PeriodType {
			continue
		}
		out.Categories = append(out.Categories, toCategoryOutput(c))
	}
	return out, nil
}

func toCategoryOutput(c *entity.BudgetCategory) *CategoryOutput {
	out := &CategoryOutput{
		ID:         c.ID,
		Name:       c.Name,
		FullName:   c.SourceFullName(),
		PeriodType: c.PeriodType,
		Income:     c.Income,
		Expanded:   c.Expanded,
		Deleted:    c.Deleted,
		Notes:      c.Notes,
		Depth:      c.Depth(),
	}
	if c.Parent != nil {
		parentID := c.Parent.ID
		out.ParentID = &parentID
	}
	return out
}
