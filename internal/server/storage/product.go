package storage

import (
	"context"

	"github.com/iudanet/coffeeshop/pkg/api"
)

// ProductStorage defines interface for the product catalog
type ProductStorage interface {
	// ListProducts returns every product in catalog order
	ListProducts(ctx context.Context) ([]api.Product, error)

	// GetProduct returns ErrProductNotFound if id is unknown
	GetProduct(ctx context.Context, id string) (*api.Product, error)

	// CreateProduct assigns the next numeric id (max + 1)
	CreateProduct(ctx context.Context, in api.ProductInput) (*api.Product, error)

	// UpdateProduct merges the set fields of patch into the product
	UpdateProduct(ctx context.Context, id string, patch api.ProductPatch) (*api.Product, error)

	// DeleteProduct returns ErrProductNotFound if id is unknown
	DeleteProduct(ctx context.Context, id string) error
}
