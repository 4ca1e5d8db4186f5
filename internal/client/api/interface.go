package api

import (
	"context"
	"encoding/json"

	"github.com/iudanet/coffeeshop/pkg/api"
)

//go:generate moq -out client_mock.go . ClientAPI

// ClientAPI определяет интерфейс HTTP клиента product API
type ClientAPI interface {
	// Do выполняет произвольный запрос с сырым JSON телом
	Do(ctx context.Context, method, path string, payload json.RawMessage) (int, json.RawMessage, error)

	ListProducts(ctx context.Context, q api.ProductQuery) (*api.ProductListResponse, error)
	GetProduct(ctx context.Context, id string) (*api.Product, error)
	CreateProduct(ctx context.Context, in api.ProductInput) (*api.Product, error)
	UpdateProduct(ctx context.Context, id string, patch api.ProductPatch) (*api.Product, error)
	DeleteProduct(ctx context.Context, id string) error
	GetCategories(ctx context.Context) ([]string, error)

	// Ping проверяет живость сервера
	Ping(ctx context.Context) error

	Login(ctx context.Context, req api.LoginRequest) (*api.LoginResponse, error)
	Me(ctx context.Context) (*api.MeResponse, error)
}

// Compile-time check that Client implements ClientAPI
var _ ClientAPI = (*Client)(nil)
