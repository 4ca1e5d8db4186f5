// Package queue implements the durable queue of pending mutating operations.
//
// Every mutation is a read-modify-write of the persisted list under a single
// in-process mutex, so concurrent callers never lose each other's appends.
package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/iudanet/coffeeshop/internal/client/storage"
	"github.com/iudanet/coffeeshop/internal/models"
)

// Queue is the durable operation queue
type Queue struct {
	store    storage.OperationStorage
	logger   *slog.Logger
	inFlight map[string]struct{} // id операций, отправляемых в текущем drain
	mu       sync.Mutex
}

// New creates a new Queue
func New(store storage.OperationStorage, logger *slog.Logger) *Queue {
	return &Queue{
		store:    store,
		logger:   logger,
		inFlight: make(map[string]struct{}),
	}
}

// Enqueue validates and persists op before returning.
// Delete по временному id, чей Create еще не отправлен, аннигилирует обе операции:
// из очереди убираются Create и все Update этого id, а сам Delete не добавляется.
// Returns true if the operation was annihilated instead of appended.
func (q *Queue) Enqueue(ctx context.Context, op *models.PendingOperation) (bool, error) {
	if err := op.Validate(); err != nil {
		return false, fmt.Errorf("invalid operation: %w", err)
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	ops, err := q.store.GetOperations(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to load operations: %w", err)
	}

	if op.Kind == models.OperationDelete {
		if target, ok := op.TargetID(); ok && models.IsTempID(target) {
			if kept, ok := q.annihilate(ops, target); ok {
				if err := q.store.SaveOperations(ctx, kept); err != nil {
					return false, fmt.Errorf("failed to save operations: %w", err)
				}
				q.logger.Debug("Delete annihilated pending create", "temp_id", target, "dropped", len(ops)-len(kept))
				return true, nil
			}
		}
	}

	if err := q.store.SaveOperations(ctx, append(ops, op)); err != nil {
		return false, fmt.Errorf("failed to save operations: %w", err)
	}

	q.logger.Debug("Operation enqueued", "op_id", op.ID, "kind", op.Kind, "path", op.Path)
	return false, nil
}

// annihilate убирает Create для tempID и все операции, адресующие tempID.
// Если Create отсутствует или уже отправляется, возвращает false.
func (q *Queue) annihilate(ops []*models.PendingOperation, tempID string) ([]*models.PendingOperation, bool) {
	found := false
	for _, op := range ops {
		if op.Kind == models.OperationCreate && op.TempID == tempID {
			if _, busy := q.inFlight[op.ID]; busy {
				return nil, false
			}
			found = true
		}
	}
	if !found {
		return nil, false
	}

	kept := make([]*models.PendingOperation, 0, len(ops))
	for _, op := range ops {
		if op.TempID == tempID {
			continue
		}
		if target, ok := op.TargetID(); ok && target == tempID {
			continue
		}
		kept = append(kept, op)
	}
	return kept, true
}

// List returns the persisted operations in arrival order
func (q *Queue) List(ctx context.Context) ([]*models.PendingOperation, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	ops, err := q.store.GetOperations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load operations: %w", err)
	}
	return ops, nil
}

// Len returns the number of pending operations
func (q *Queue) Len(ctx context.Context) (int, error) {
	ops, err := q.List(ctx)
	if err != nil {
		return 0, err
	}
	return len(ops), nil
}

// ReplaceAll overwrites the persisted queue with ops
func (q *Queue) ReplaceAll(ctx context.Context, ops []*models.PendingOperation) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if err := q.store.SaveOperations(ctx, ops); err != nil {
		return fmt.Errorf("failed to save operations: %w", err)
	}
	return nil
}

// PendingCreate returns the not yet synced Create for tempID
func (q *Queue) PendingCreate(ctx context.Context, tempID string) (*models.PendingOperation, bool, error) {
	ops, err := q.List(ctx)
	if err != nil {
		return nil, false, err
	}

	for _, op := range ops {
		if op.Kind == models.OperationCreate && op.TempID == tempID {
			return op, true, nil
		}
	}
	return nil, false, nil
}
