package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/coffeeshop/internal/client/storage"
)

// SaveIDMapping stores a single mapping
func (s *Storage) SaveIDMapping(ctx context.Context, tempID, permanentID string) error {
	return s.update(bucketIDMappings, func(bucket *bbolt.Bucket) error {
		if err := bucket.Put([]byte(tempID), []byte(permanentID)); err != nil {
			return fmt.Errorf("failed to save id mapping: %w", err)
		}
		return nil
	})
}

// GetIDMapping returns ErrMappingNotFound if tempID is not mapped
func (s *Storage) GetIDMapping(ctx context.Context, tempID string) (string, error) {
	var permanentID string

	err := s.view(bucketIDMappings, func(bucket *bbolt.Bucket) error {
		v := bucket.Get([]byte(tempID))
		if v == nil {
			return storage.ErrMappingNotFound
		}
		permanentID = string(v)
		return nil
	})
	if err != nil {
		return "", err
	}

	return permanentID, nil
}

// GetAllIDMappings returns every stored mapping
func (s *Storage) GetAllIDMappings(ctx context.Context) (map[string]string, error) {
	mappings := make(map[string]string)

	err := s.view(bucketIDMappings, func(bucket *bbolt.Bucket) error {
		return bucket.ForEach(func(k, v []byte) error {
			mappings[string(k)] = string(v)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get id mappings: %w", err)
	}

	return mappings, nil
}
