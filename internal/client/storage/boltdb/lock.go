package boltdb

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/iudanet/coffeeshop/internal/models"
)

var keySyncLock = []byte("sync_lock")

// AcquireSyncLock atomically acquires the lock for owner.
// Проверка и запись происходят в одной транзакции bbolt.
func (s *Storage) AcquireSyncLock(ctx context.Context, owner string, now time.Time, policy models.LockPolicy) (bool, *models.SyncLock, error) {
	var (
		acquired bool
		holder   *models.SyncLock
	)

	err := s.update(bucketMetadata, func(bucket *bbolt.Bucket) error {
		if data := bucket.Get(keySyncLock); data != nil {
			var current models.SyncLock
			if err := json.Unmarshal(data, &current); err != nil {
				return fmt.Errorf("failed to unmarshal sync lock: %w", err)
			}
			holder = &current

			// Живой lock - не трогаем
			if !policy.IsStale(current, now) {
				return nil
			}
		}

		data, err := json.Marshal(models.SyncLock{Owner: owner, AcquiredAt: now})
		if err != nil {
			return fmt.Errorf("failed to marshal sync lock: %w", err)
		}
		if err := bucket.Put(keySyncLock, data); err != nil {
			return fmt.Errorf("failed to save sync lock: %w", err)
		}

		acquired = true
		return nil
	})
	if err != nil {
		return false, nil, err
	}

	return acquired, holder, nil
}

// RefreshSyncLock moves AcquiredAt of a lock held by owner to now
func (s *Storage) RefreshSyncLock(ctx context.Context, owner string, now time.Time) (bool, error) {
	var held bool

	err := s.update(bucketMetadata, func(bucket *bbolt.Bucket) error {
		data := bucket.Get(keySyncLock)
		if data == nil {
			return nil
		}

		var current models.SyncLock
		if err := json.Unmarshal(data, &current); err != nil {
			return fmt.Errorf("failed to unmarshal sync lock: %w", err)
		}
		if current.Owner != owner {
			return nil
		}

		current.AcquiredAt = now
		data, err := json.Marshal(current)
		if err != nil {
			return fmt.Errorf("failed to marshal sync lock: %w", err)
		}
		if err := bucket.Put(keySyncLock, data); err != nil {
			return fmt.Errorf("failed to save sync lock: %w", err)
		}

		held = true
		return nil
	})
	if err != nil {
		return false, err
	}

	return held, nil
}

// ReleaseSyncLock clears the lock if it is still held by owner
func (s *Storage) ReleaseSyncLock(ctx context.Context, owner string) error {
	return s.update(bucketMetadata, func(bucket *bbolt.Bucket) error {
		data := bucket.Get(keySyncLock)
		if data == nil {
			return nil
		}

		var current models.SyncLock
		if err := json.Unmarshal(data, &current); err != nil {
			return fmt.Errorf("failed to unmarshal sync lock: %w", err)
		}

		// Lock уже перехвачен другой попыткой - не снимаем чужой
		if current.Owner != owner {
			return nil
		}

		return bucket.Delete(keySyncLock)
	})
}

// GetSyncLock returns nil if the lock is not held
func (s *Storage) GetSyncLock(ctx context.Context) (*models.SyncLock, error) {
	var lock *models.SyncLock

	err := s.view(bucketMetadata, func(bucket *bbolt.Bucket) error {
		data := bucket.Get(keySyncLock)
		if data == nil {
			return nil
		}
		lock = &models.SyncLock{}
		return json.Unmarshal(data, lock)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get sync lock: %w", err)
	}

	return lock, nil
}
