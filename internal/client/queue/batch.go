package queue

import (
	"context"
	"fmt"

	"github.com/iudanet/coffeeshop/internal/models"
)

// Batch набор операций, захваченных для одной попытки drain
type Batch struct {
	Ops []*models.PendingOperation
}

// Empty reports whether the batch holds no operations
func (b *Batch) Empty() bool {
	return b == nil || len(b.Ops) == 0
}

// Claim marks the persisted operations matching match (all if nil) as in flight
// and returns them in arrival order. Operations already claimed by another batch
// are skipped.
func (q *Queue) Claim(ctx context.Context, match func(*models.PendingOperation) bool) (*Batch, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	ops, err := q.store.GetOperations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load operations: %w", err)
	}

	batch := &Batch{}
	for _, op := range ops {
		if _, busy := q.inFlight[op.ID]; busy {
			continue
		}
		if match != nil && !match(op) {
			continue
		}
		q.inFlight[op.ID] = struct{}{}
		batch.Ops = append(batch.Ops, op)
	}
	return batch, nil
}

// Settle removes the succeeded operations of b from the persisted queue and
// releases every claim of b. Операции, добавленные во время drain, сохраняются:
// удаление идет по id из свежепрочитанного списка.
func (q *Queue) Settle(ctx context.Context, b *Batch, succeeded map[string]bool) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	defer q.release(b)

	if len(succeeded) == 0 {
		return nil
	}

	ops, err := q.store.GetOperations(ctx)
	if err != nil {
		return fmt.Errorf("failed to load operations: %w", err)
	}

	kept := make([]*models.PendingOperation, 0, len(ops))
	for _, op := range ops {
		if succeeded[op.ID] {
			continue
		}
		kept = append(kept, op)
	}

	if err := q.store.SaveOperations(ctx, kept); err != nil {
		return fmt.Errorf("failed to save operations: %w", err)
	}
	return nil
}

// Release drops the claims of b without touching the persisted queue
func (q *Queue) Release(b *Batch) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.release(b)
}

func (q *Queue) release(b *Batch) {
	if b == nil {
		return
	}
	for _, op := range b.Ops {
		delete(q.inFlight, op.ID)
	}
}
