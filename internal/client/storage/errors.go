package storage

import "errors"

// Common client storage errors
var (
	// ErrAuthNotFound indicates that no authentication data exists
	ErrAuthNotFound = errors.New("authentication data not found")

	// ErrProductNotFound indicates that product is not in the local cache
	ErrProductNotFound = errors.New("product not found in cache")

	// ErrMappingNotFound indicates that temporary id has no permanent id yet
	ErrMappingNotFound = errors.New("id mapping not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
