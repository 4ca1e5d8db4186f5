package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/coffeeshop/internal/models"
)

var productsKey = []byte("list")

// GetCachedProducts returns the cached products in stored order
func (s *Storage) GetCachedProducts(ctx context.Context) ([]*models.CachedProduct, error) {
	products := []*models.CachedProduct{}

	err := s.view(bucketProducts, func(bucket *bbolt.Bucket) error {
		data := bucket.Get(productsKey)
		if data == nil {
			return nil
		}
		if err := json.Unmarshal(data, &products); err != nil {
			return fmt.Errorf("failed to unmarshal products: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get cached products: %w", err)
	}

	return products, nil
}

// SaveCachedProducts atomically replaces the cache contents
func (s *Storage) SaveCachedProducts(ctx context.Context, products []*models.CachedProduct) error {
	if products == nil {
		products = []*models.CachedProduct{}
	}

	data, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("failed to marshal products: %w", err)
	}

	return s.update(bucketProducts, func(bucket *bbolt.Bucket) error {
		if err := bucket.Put(productsKey, data); err != nil {
			return fmt.Errorf("failed to save products: %w", err)
		}
		return nil
	})
}
