package boltdb

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/coffeeshop/internal/client/storage"
	"github.com/iudanet/coffeeshop/internal/models"
)

// GetOperations returns all pending operations in enqueue order.
// Ключи bucket - порядковый номер в big endian, поэтому ForEach идет по порядку.
func (s *Storage) GetOperations(ctx context.Context) ([]*models.PendingOperation, error) {
	ops := []*models.PendingOperation{}

	err := s.view(bucketOperations, func(bucket *bbolt.Bucket) error {
		return bucket.ForEach(func(k, v []byte) error {
			var op models.PendingOperation
			if err := json.Unmarshal(v, &op); err != nil {
				return fmt.Errorf("failed to unmarshal operation: %w", err)
			}
			ops = append(ops, &op)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get operations: %w", err)
	}

	return ops, nil
}

// SaveOperations atomically replaces the persisted list
func (s *Storage) SaveOperations(ctx context.Context, ops []*models.PendingOperation) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		// Пересоздаем bucket целиком, чтобы порядок ключей совпадал с порядком списка
		if err := tx.DeleteBucket(bucketOperations); err != nil && err != bbolt.ErrBucketNotFound {
			return fmt.Errorf("failed to delete bucket: %w", err)
		}
		bucket, err := tx.CreateBucket(bucketOperations)
		if err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}

		for i, op := range ops {
			data, err := json.Marshal(op)
			if err != nil {
				return fmt.Errorf("failed to marshal operation %s: %w", op.ID, err)
			}

			key := make([]byte, 8)
			binary.BigEndian.PutUint64(key, uint64(i))
			if err := bucket.Put(key, data); err != nil {
				return fmt.Errorf("failed to save operation %s: %w", op.ID, err)
			}
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("save operations transaction failed: %w", err)
	}

	return nil
}
