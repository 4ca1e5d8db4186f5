package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/coffeeshop/internal/models"
)

// AcquireSyncLock atomically acquires the lock for owner.
// Проверка и запись выполняются в одной транзакции на единственном соединении.
func (s *Storage) AcquireSyncLock(ctx context.Context, owner string, now time.Time, policy models.LockPolicy) (bool, *models.SyncLock, error) {
	var (
		acquired bool
		holder   *models.SyncLock
	)

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		current, err := scanLock(tx.QueryRowContext(ctx, `SELECT owner, acquired_at FROM sync_lock WHERE id = 1`))
		if err != nil {
			return err
		}

		if current != nil {
			holder = current
			// Живой lock - не трогаем
			if !policy.IsStale(*current, now) {
				return nil
			}
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO sync_lock (id, owner, acquired_at) VALUES (1, ?, ?)
			ON CONFLICT(id) DO UPDATE SET owner = excluded.owner, acquired_at = excluded.acquired_at
		`, owner, now.UnixNano())
		if err != nil {
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
	db, err := s.conn()
	if err != nil {
		return false, err
	}

	res, err := db.ExecContext(ctx, `UPDATE sync_lock SET acquired_at = ? WHERE id = 1 AND owner = ?`, now.UnixNano(), owner)
	if err != nil {
		return false, fmt.Errorf("failed to refresh sync lock: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to refresh sync lock: %w", err)
	}
	return n == 1, nil
}

// ReleaseSyncLock clears the lock if it is still held by owner
func (s *Storage) ReleaseSyncLock(ctx context.Context, owner string) error {
	db, err := s.conn()
	if err != nil {
		return err
	}

	if _, err := db.ExecContext(ctx, `DELETE FROM sync_lock WHERE id = 1 AND owner = ?`, owner); err != nil {
		return fmt.Errorf("failed to release sync lock: %w", err)
	}
	return nil
}

// GetSyncLock returns nil if the lock is not held
func (s *Storage) GetSyncLock(ctx context.Context) (*models.SyncLock, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	lock, err := scanLock(db.QueryRowContext(ctx, `SELECT owner, acquired_at FROM sync_lock WHERE id = 1`))
	if err != nil {
		return nil, fmt.Errorf("failed to get sync lock: %w", err)
	}
	return lock, nil
}

func scanLock(row *sql.Row) (*models.SyncLock, error) {
	var (
		lock       models.SyncLock
		acquiredAt int64
	)

	err := row.Scan(&lock.Owner, &acquiredAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan sync lock: %w", err)
	}

	lock.AcquiredAt = time.Unix(0, acquiredAt)
	return &lock, nil
}
