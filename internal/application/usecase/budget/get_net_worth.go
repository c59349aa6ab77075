// Package budget contains budget evaluation use cases.
package budget

import (
	"context"
	"time"

	"github.com/budgetbook/backend/internal/domain/document"
	"github.com/budgetbook/backend/internal/domain/entity"
)

// GetNetWorthInput represents the input for a net worth query. A nil AsOf
// means the end of the current day.
type GetNetWorthInput struct {
	AsOf *time.Time
}

// GetNetWorthOutput represents the output of a net worth query.
type GetNetWorthOutput struct {
	AsOf     time.Time
	NetWorth int64
}

// GetNetWorthUseCase handles net worth queries.
type GetNetWorthUseCase struct {
	doc *document.Document
}

// NewGetNetWorthUseCase creates a new GetNetWorthUseCase instance.
func NewGetNetWorthUseCase(doc *document.Document) *GetNetWorthUseCase {
	return &GetNetWorthUseCase{doc: doc}
}

// Execute sums the balances of all non-deleted accounts, with credit-type
// balances counting against the total.
func (uc *GetNetWorthUseCase) Execute(ctx context.Context, input GetNetWorthInput) (*GetNetWorthOutput, error) {
	asOf := entity.Day(time.Now())
	if input.AsOf != nil {
		asOf = entity.Day(*input.AsOf)
	}
	return &GetNetWorthOutput{
		AsOf:     asOf,
		NetWorth: uc.doc.NetWorth(asOf),
	}, nil
}
