package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/iudanet/coffeeshop/internal/models"
)

// GetOperations returns all persisted operations in enqueue order
func (s *Storage) GetOperations(ctx context.Context) ([]*models.PendingOperation, error) {
	db, err := s.conn()
	if err != nil {
		return nil, fmt.Errorf("failed to get operations: %w", err)
	}

	rows, err := db.QueryContext(ctx, `
		SELECT id, kind, path, temp_id, payload, enqueued_at
		FROM pending_operations
		ORDER BY seq
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query operations: %w", err)
	}
	defer rows.Close()

	var ops []*models.PendingOperation
	for rows.Next() {
		var (
			op         models.PendingOperation
			payload    []byte
			enqueuedAt int64
		)

		if err := rows.Scan(&op.ID, &op.Kind, &op.Path, &op.TempID, &payload, &enqueuedAt); err != nil {
			return nil, fmt.Errorf("failed to scan operation: %w", err)
		}

		if len(payload) > 0 {
			op.Payload = payload
		}
		op.EnqueuedAt = fromUnixNano(enqueuedAt)
		ops = append(ops, &op)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating operations: %w", err)
	}

	return ops, nil
}

// SaveOperations atomically replaces the persisted operation list
func (s *Storage) SaveOperations(ctx context.Context, ops []*models.PendingOperation) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM pending_operations`); err != nil {
			return fmt.Errorf("failed to clear operations: %w", err)
		}

		stmt, err := tx.PrepareContext(ctx, `
			INSERT INTO pending_operations (seq, id, kind, path, temp_id, payload, enqueued_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`)
		if err != nil {
			return fmt.Errorf("failed to prepare insert: %w", err)
		}
		defer stmt.Close()

		for i, op := range ops {
			var payload []byte
			if len(op.Payload) > 0 {
				payload = op.Payload
			}

			_, err := stmt.ExecContext(ctx, i, op.ID, string(op.Kind), op.Path, op.TempID, payload, toUnixNano(op.EnqueuedAt))
			if err != nil {
				return fmt.Errorf("failed to save operation %s: %w", op.ID, err)
			}
		}
		return nil
	})
}
