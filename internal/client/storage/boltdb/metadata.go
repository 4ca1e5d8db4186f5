package boltdb

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/iudanet/coffeeshop/internal/models"
)

const (
	keyLastSyncTime = "last_sync_time"
	keyCategories   = "categories"
	flagKeyPrefix   = "flag:"
)

// SetFlag sets or clears a persistent marker
func (s *Storage) SetFlag(ctx context.Context, flag models.Flag, value bool) error {
	key := []byte(flagKeyPrefix + string(flag))

	return s.update(bucketMetadata, func(bucket *bbolt.Bucket) error {
		// Сброшенный флаг просто удаляем
		if !value {
			return bucket.Delete(key)
		}
		if err := bucket.Put(key, []byte{1}); err != nil {
			return fmt.Errorf("failed to save flag %s: %w", flag, err)
		}
		return nil
	})
}

// GetFlag returns false if the marker was never set
func (s *Storage) GetFlag(ctx context.Context, flag models.Flag) (bool, error) {
	var value bool

	err := s.view(bucketMetadata, func(bucket *bbolt.Bucket) error {
		v := bucket.Get([]byte(flagKeyPrefix + string(flag)))
		value = len(v) == 1 && v[0] == 1
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to get flag %s: %w", flag, err)
	}

	return value, nil
}

// SaveCategories caches the category list for offline use
func (s *Storage) SaveCategories(ctx context.Context, categories []string) error {
	data, err := json.Marshal(categories)
	if err != nil {
		return fmt.Errorf("failed to marshal categories: %w", err)
	}

	return s.update(bucketMetadata, func(bucket *bbolt.Bucket) error {
		return bucket.Put([]byte(keyCategories), data)
	})
}

// GetCategories returns the cached categories or an empty slice
func (s *Storage) GetCategories(ctx context.Context) ([]string, error) {
	categories := []string{}

	err := s.view(bucketMetadata, func(bucket *bbolt.Bucket) error {
		data := bucket.Get([]byte(keyCategories))
		if data == nil {
			return nil
		}
		return json.Unmarshal(data, &categories)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}

	return categories, nil
}

// SaveLastSyncTime saves the time of the last successful sync
func (s *Storage) SaveLastSyncTime(ctx context.Context, at time.Time) error {
	return s.update(bucketMetadata, func(bucket *bbolt.Bucket) error {
		// Конвертируем unix nanos в bytes
		buf := make([]byte, 8)
		binary.BigEndian.PutUint64(buf, uint64(at.UnixNano()))

		if err := bucket.Put([]byte(keyLastSyncTime), buf); err != nil {
			return fmt.Errorf("failed to save last sync time: %w", err)
		}
		return nil
	})
}

// GetLastSyncTime returns zero time if no sync has been performed yet
func (s *Storage) GetLastSyncTime(ctx context.Context) (time.Time, error) {
	var at time.Time

	err := s.view(bucketMetadata, func(bucket *bbolt.Bucket) error {
		buf := bucket.Get([]byte(keyLastSyncTime))
		if len(buf) != 8 {
			// Синхронизации еще не было
			return nil
		}
		at = time.Unix(0, int64(binary.BigEndian.Uint64(buf)))
		return nil
	})
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to get last sync time: %w", err)
	}

	return at, nil
}
