package storage

import (
	"context"
	"time"

	"github.com/iudanet/coffeeshop/internal/models"
)

// SyncLockStorage persists the single sync lock token
type SyncLockStorage interface {
	// AcquireSyncLock atomically acquires the lock for owner at instant now.
	// A held lock that policy reports as stale is overridden.
	// If the lock is held by a live attempt, it returns false and the current holder.
	// When a stale lock is overridden, it returns true and the overridden lock.
	AcquireSyncLock(ctx context.Context, owner string, now time.Time, policy models.LockPolicy) (acquired bool, holder *models.SyncLock, err error)

	// RefreshSyncLock moves AcquiredAt of a lock held by owner to now.
	// It returns false if the lock was released or taken over by another owner.
	RefreshSyncLock(ctx context.Context, owner string, now time.Time) (bool, error)

	// ReleaseSyncLock clears the lock if it is still held by owner
	ReleaseSyncLock(ctx context.Context, owner string) error

	// GetSyncLock returns nil if the lock is not held
	GetSyncLock(ctx context.Context) (*models.SyncLock, error)
}
