package storage

import (
	"context"

	"github.com/iudanet/coffeeshop/internal/models"
)

// ProductCacheStorage persists the optimistic product cache as an ordered list
type ProductCacheStorage interface {
	// GetCachedProducts returns the cached products in stored order
	GetCachedProducts(ctx context.Context) ([]*models.CachedProduct, error)

	// SaveCachedProducts atomically replaces the cache contents
	SaveCachedProducts(ctx context.Context, products []*models.CachedProduct) error
}
