package storage

import "context"

// IDMappingStorage persists temporaryId -> permanentId entries one by one
type IDMappingStorage interface {
	// SaveIDMapping stores a single mapping
	SaveIDMapping(ctx context.Context, tempID, permanentID string) error

	// GetIDMapping returns ErrMappingNotFound if tempID is not mapped
	GetIDMapping(ctx context.Context, tempID string) (string, error)

	// GetAllIDMappings returns every stored mapping
	GetAllIDMappings(ctx context.Context) (map[string]string, error)
}
