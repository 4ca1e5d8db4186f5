package storage

import (
	"context"
	"time"

	"github.com/iudanet/coffeeshop/internal/models"
)

//go:generate moq -out metadata_mock.go . MetadataStorage

// MetadataStorage defines interface for storing client markers and small caches
type MetadataStorage interface {
	// SetFlag sets or clears a persistent marker
	SetFlag(ctx context.Context, flag models.Flag, value bool) error

	// GetFlag returns false if the marker was never set
	GetFlag(ctx context.Context, flag models.Flag) (bool, error)

	// SaveCategories caches the category list for offline use
	SaveCategories(ctx context.Context, categories []string) error

	// GetCategories returns the cached categories or an empty slice
	GetCategories(ctx context.Context) ([]string, error)

	// SaveLastSyncTime saves the time of the last successful sync
	SaveLastSyncTime(ctx context.Context, at time.Time) error

	// GetLastSyncTime returns zero time if no sync has been performed yet
	GetLastSyncTime(ctx context.Context) (time.Time, error)
}
