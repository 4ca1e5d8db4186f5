package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/iudanet/coffeeshop/internal/models"
)

const (
	keyCategories   = "categories"
	keyLastSyncTime = "last_sync_time"
	flagKeyPrefix   = "flag:"
)

// SetFlag sets or clears a persistent flag
func (s *Storage) SetFlag(ctx context.Context, flag models.Flag, value bool) error {
	key := flagKeyPrefix + string(flag)

	// Снятый флаг - отсутствующая строка
	if !value {
		return s.deleteMeta(ctx, key)
	}
	return s.putMeta(ctx, key, "1")
}

// GetFlag returns false for a flag that was never set
func (s *Storage) GetFlag(ctx context.Context, flag models.Flag) (bool, error) {
	_, ok, err := s.getMeta(ctx, flagKeyPrefix+string(flag))
	if err != nil {
		return false, fmt.Errorf("failed to get flag %s: %w", flag, err)
	}
	return ok, nil
}

// SaveCategories stores the last known category list
func (s *Storage) SaveCategories(ctx context.Context, categories []string) error {
	data, err := json.Marshal(categories)
	if err != nil {
		return fmt.Errorf("failed to marshal categories: %w", err)
	}
	return s.putMeta(ctx, keyCategories, string(data))
}

// GetCategories returns nil if categories were never saved
func (s *Storage) GetCategories(ctx context.Context) ([]string, error) {
	value, ok, err := s.getMeta(ctx, keyCategories)
	if err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}
	if !ok {
		return nil, nil
	}

	var categories []string
	if err := json.Unmarshal([]byte(value), &categories); err != nil {
		return nil, fmt.Errorf("failed to unmarshal categories: %w", err)
	}
	return categories, nil
}

// SaveLastSyncTime stores the time of the last completed sync
func (s *Storage) SaveLastSyncTime(ctx context.Context, at time.Time) error {
	return s.putMeta(ctx, keyLastSyncTime, strconv.FormatInt(at.UnixNano(), 10))
}

// GetLastSyncTime returns zero time if no sync has completed
func (s *Storage) GetLastSyncTime(ctx context.Context) (time.Time, error) {
	value, ok, err := s.getMeta(ctx, keyLastSyncTime)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to get last sync time: %w", err)
	}
	if !ok {
		return time.Time{}, nil
	}

	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid last sync time %q: %w", value, err)
	}
	return time.Unix(0, n), nil
}

func (s *Storage) putMeta(ctx context.Context, key, value string) error {
	db, err := s.conn()
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx,
		`INSERT INTO metadata (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}

func (s *Storage) deleteMeta(ctx context.Context, key string) error {
	db, err := s.conn()
	if err != nil {
		return err
	}

	if _, err := db.ExecContext(ctx, `DELETE FROM metadata WHERE key = ?`, key); err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

func (s *Storage) getMeta(ctx context.Context, key string) (string, bool, error) {
	db, err := s.conn()
	if err != nil {
		return "", false, err
	}

	var value string
	err = db.QueryRowContext(ctx, `SELECT value FROM metadata WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}
