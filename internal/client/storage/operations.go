package storage

import (
	"context"

	"github.com/iudanet/coffeeshop/internal/models"
)

// OperationStorage persists the ordered list of pending operations.
// Order of the slice is enqueue order.
type OperationStorage interface {
	// GetOperations returns all pending operations in enqueue order
	GetOperations(ctx context.Context) ([]*models.PendingOperation, error)

	// SaveOperations atomically replaces the persisted list
	SaveOperations(ctx context.Context, ops []*models.PendingOperation) error
}
