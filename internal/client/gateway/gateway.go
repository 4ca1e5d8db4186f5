// Package gateway is the single entry point for product API calls. It routes
// each request either to the live server or to the offline path.
package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"golang.org/x/sync/singleflight"

	httpClient "github.com/iudanet/coffeeshop/internal/client/api"
	"github.com/iudanet/coffeeshop/internal/client/cache"
	"github.com/iudanet/coffeeshop/internal/client/idmap"
	"github.com/iudanet/coffeeshop/internal/client/queue"
	"github.com/iudanet/coffeeshop/internal/client/storage"
	syncer "github.com/iudanet/coffeeshop/internal/client/sync"
	"github.com/iudanet/coffeeshop/internal/models"
	"github.com/iudanet/coffeeshop/internal/validation"
	"github.com/iudanet/coffeeshop/pkg/api"
)

// Response результат запроса через gateway
type Response struct {
	Data    json.RawMessage `json:"data,omitempty"`
	Status  int             `json:"status,omitempty"`
	Offline bool            `json:"offline"`
}

// Decode unmarshals Data into v; returns false if there is no data
func (r *Response) Decode(v any) (bool, error) {
	if r == nil || len(r.Data) == 0 || string(r.Data) == "null" {
		return false, nil
	}
	if err := json.Unmarshal(r.Data, v); err != nil {
		return false, fmt.Errorf("failed to decode response: %w", err)
	}
	return true, nil
}

// ListResponse форма ответа GET /products из кэша, с маркерами offline
type ListResponse struct {
	Products      []*models.CachedProduct `json:"products"`
	TotalProducts int                     `json:"totalProducts"`
	CurrentPage   int                     `json:"currentPage"`
	TotalPages    int                     `json:"totalPages"`
	ItemsPerPage  int                     `json:"itemsPerPage"`
}

// Availability источник комбинированной доступности
type Availability interface {
	Available() bool
}

// Deps компоненты, через которые gateway обслуживает запросы
type Deps struct {
	API      httpClient.ClientAPI
	Avail    Availability
	Queue    *queue.Queue
	Cache    *cache.Cache
	IDMap    *idmap.Map
	Sync     syncer.Service
	Metadata storage.MetadataStorage
}

// Gateway is the API facade
type Gateway struct {
	deps   Deps
	logger *slog.Logger
	group  singleflight.Group
}

// New creates a new Gateway
func New(deps Deps, logger *slog.Logger) *Gateway {
	return &Gateway{deps: deps, logger: logger}
}

// Get is Request with GET
func (g *Gateway) Get(ctx context.Context, path string) (*Response, error) {
	return g.Request(ctx, http.MethodGet, path, nil)
}

// Post is Request with POST
func (g *Gateway) Post(ctx context.Context, path string, data json.RawMessage) (*Response, error) {
	return g.Request(ctx, http.MethodPost, path, data)
}

// Put is Request with PUT
func (g *Gateway) Put(ctx context.Context, path string, data json.RawMessage) (*Response, error) {
	return g.Request(ctx, http.MethodPut, path, data)
}

// Delete is Request with DELETE
func (g *Gateway) Delete(ctx context.Context, path string) (*Response, error) {
	return g.Request(ctx, http.MethodDelete, path, nil)
}

// Request routes the call by current availability. Ошибки сети в online-режиме
// возвращаются вызывающему без изменений.
func (g *Gateway) Request(ctx context.Context, method, path string, data json.RawMessage) (*Response, error) {
	method = strings.ToUpper(method)

	if err := validatePayload(method, path, data); err != nil {
		return nil, err
	}

	if !g.deps.Avail.Available() {
		return g.offline(ctx, method, path, data)
	}

	if id, ok := models.ParseProductPath(path); ok && models.IsTempID(id) {
		if method == http.MethodGet {
			return g.getTemp(ctx, path, id)
		}
		// Старые ссылки на temp id остаются рабочими и для изменений
		resolved, err := g.resolvePath(ctx, path, id)
		if err != nil {
			return nil, err
		}
		path = resolved
	}

	return g.forward(ctx, method, path, data)
}

// forward выполняет реальный сетевой вызов
func (g *Gateway) forward(ctx context.Context, method, path string, data json.RawMessage) (*Response, error) {
	status, body, err := g.deps.API.Do(ctx, method, path, data)
	if err != nil {
		return nil, err
	}

	// Категории запоминаются для offline-режима
	if method == http.MethodGet {
		if base, _ := models.SplitQuery(path); base == models.CategoriesPath {
			g.rememberCategories(ctx, body)
		}
	}

	return &Response{Status: status, Data: body}, nil
}

func (g *Gateway) rememberCategories(ctx context.Context, body json.RawMessage) {
	var categories []string
	if err := json.Unmarshal(body, &categories); err != nil {
		g.logger.Debug("Unexpected categories payload", "error", err)
		return
	}
	if err := g.deps.Metadata.SaveCategories(ctx, categories); err != nil {
		g.logger.Warn("Failed to cache categories", "error", err)
	}
}

// validatePayload проверяет продукт до отправки или постановки в очередь
func validatePayload(method, path string, data json.RawMessage) error {
	switch {
	case method == http.MethodPost && models.IsCollectionPath(path):
		var in api.ProductInput
		if err := json.Unmarshal(data, &in); err != nil {
			return fmt.Errorf("%w: %v", validation.ErrInvalidProduct, err)
		}
		return validation.ValidateProductInput(in)
	case method == http.MethodPut || method == http.MethodPatch:
		if _, ok := models.ParseProductPath(path); !ok {
			return nil
		}
		var patch api.ProductPatch
		if err := json.Unmarshal(data, &patch); err != nil {
			return fmt.Errorf("%w: %v", validation.ErrInvalidProduct, err)
		}
		return validation.ValidateProductPatch(patch)
	}
	return nil
}

func encode(v any) (json.RawMessage, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode response: %w", err)
	}
	return data, nil
}
