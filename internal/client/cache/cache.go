// Package cache implements the optimistic local mirror of the product collection.
package cache

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/iudanet/coffeeshop/internal/client/storage"
	"github.com/iudanet/coffeeshop/internal/models"
)

// Cache is the optimistic product cache. It holds at most one entry per id.
type Cache struct {
	store  storage.ProductCacheStorage
	logger *slog.Logger
	mu     sync.Mutex
}

// New creates a new Cache
func New(store storage.ProductCacheStorage, logger *slog.Logger) *Cache {
	return &Cache{store: store, logger: logger}
}

// Upsert inserts p or replaces the entry with the same id in place
func (c *Cache) Upsert(ctx context.Context, p *models.CachedProduct) error {
	return c.modify(ctx, func(products []*models.CachedProduct) []*models.CachedProduct {
		for i, existing := range products {
			if existing.Key() == p.Key() {
				products[i] = p
				return products
			}
		}
		return append(products, p)
	})
}

// Remove deletes the entry with id; returns false if it was not cached
func (c *Cache) Remove(ctx context.Context, id string) (bool, error) {
	removed := false
	err := c.modify(ctx, func(products []*models.CachedProduct) []*models.CachedProduct {
		kept := products[:0]
		for _, p := range products {
			if p.Key() == id {
				removed = true
				continue
			}
			kept = append(kept, p)
		}
		return kept
	})
	return removed, err
}

// Get returns storage.ErrProductNotFound if id is not cached
func (c *Cache) Get(ctx context.Context, id string) (*models.CachedProduct, error) {
	products, err := c.All(ctx)
	if err != nil {
		return nil, err
	}

	for _, p := range products {
		if p.Key() == id {
			return p, nil
		}
	}
	return nil, storage.ErrProductNotFound
}

// All returns every cached entry in stored order
func (c *Cache) All(ctx context.Context) ([]*models.CachedProduct, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	products, err := c.store.GetCachedProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load cached products: %w", err)
	}
	return products, nil
}

// Merge reconciles the cache with in and persists the result
func (c *Cache) Merge(ctx context.Context, in MergeInput) ([]*models.CachedProduct, error) {
	var merged []*models.CachedProduct
	err := c.modify(ctx, func(products []*models.CachedProduct) []*models.CachedProduct {
		merged = Merge(products, in)
		return merged
	})
	if err != nil {
		return nil, err
	}

	c.logger.Debug("Cache merged", "entries", len(merged), "mappings", len(in.Mappings))
	return merged, nil
}

// modify выполняет read-modify-write над персистентной копией под мьютексом
func (c *Cache) modify(ctx context.Context, fn func([]*models.CachedProduct) []*models.CachedProduct) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	products, err := c.store.GetCachedProducts(ctx)
	if err != nil {
		return fmt.Errorf("failed to load cached products: %w", err)
	}

	if err := c.store.SaveCachedProducts(ctx, fn(products)); err != nil {
		return fmt.Errorf("failed to save cached products: %w", err)
	}
	return nil
}
