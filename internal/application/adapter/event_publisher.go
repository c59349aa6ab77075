package adapter

import (
	"context"

	"github.com/budgetbook/backend/internal/domain/document"
)

// EventPublisher forwards document change events to external consumers.
type EventPublisher interface {
	// Publish delivers one change event.
	Publish(ctx context.Context, event document.ChangeEvent) error

	// Close releases the underlying connection.
	Close() error
}
