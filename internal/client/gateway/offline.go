package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/iudanet/coffeeshop/internal/client/storage"
	"github.com/iudanet/coffeeshop/internal/models"
	"github.com/iudanet/coffeeshop/pkg/api"
)

// ErrUnsupportedOffline запрос, который нельзя обслужить без сервера
var ErrUnsupportedOffline = errors.New("request is not supported offline")

// offline обслуживает запрос из кэша и очереди, никогда не обращаясь к сети
func (g *Gateway) offline(ctx context.Context, method, path string, data json.RawMessage) (*Response, error) {
	switch method {
	case http.MethodGet:
		return g.offlineGet(ctx, path)
	case http.MethodPost:
		if !models.IsCollectionPath(path) {
			return nil, fmt.Errorf("%w: %s %s", ErrUnsupportedOffline, method, path)
		}
		return g.offlineCreate(ctx, path, data)
	case http.MethodPut, http.MethodPatch, http.MethodDelete:
		return g.offlineMutate(ctx, method, path, data)
	default:
		return nil, fmt.Errorf("%w: %s %s", ErrUnsupportedOffline, method, path)
	}
}

func (g *Gateway) offlineGet(ctx context.Context, path string) (*Response, error) {
	base, rawQuery := models.SplitQuery(path)

	switch {
	case base == models.CategoriesPath:
		categories, err := g.deps.Metadata.GetCategories(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load cached categories: %w", err)
		}
		if categories == nil {
			categories = []string{}
		}
		return g.offlineResponse(categories)

	case models.IsCollectionPath(path):
		products, err := g.deps.Cache.All(ctx)
		if err != nil {
			return nil, err
		}

		values, err := url.ParseQuery(rawQuery)
		if err != nil {
			return nil, fmt.Errorf("invalid query: %w", err)
		}

		page, info := models.ListPage(products, func(p *models.CachedProduct) *api.Product { return &p.Product }, api.ParseProductQuery(values))
		if page == nil {
			page = []*models.CachedProduct{}
		}
		return g.offlineResponse(ListResponse{
			Products:      page,
			TotalProducts: info.TotalProducts,
			CurrentPage:   info.CurrentPage,
			TotalPages:    info.TotalPages,
			ItemsPerPage:  info.ItemsPerPage,
		})
	}

	id, ok := models.ParseProductPath(path)
	if !ok {
		return &Response{Offline: true}, nil
	}

	p, err := g.lookup(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return &Response{Offline: true}, nil
	}
	return g.offlineResponse(p)
}

// lookup ищет сущность по id: прямое совпадение, затем данные отложенного Create,
// затем постоянный id из карты соответствий. nil, если ничего не найдено.
func (g *Gateway) lookup(ctx context.Context, id string) (*models.CachedProduct, error) {
	p, err := g.deps.Cache.Get(ctx, id)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, storage.ErrProductNotFound) {
		return nil, err
	}

	if !models.IsTempID(id) {
		return nil, nil
	}

	if p, err := g.pendingProduct(ctx, id); err != nil || p != nil {
		return p, err
	}

	resolved, ok, err := g.deps.IDMap.Resolve(ctx, id)
	if err != nil || !ok {
		return nil, err
	}

	p, err = g.deps.Cache.Get(ctx, resolved)
	if errors.Is(err, storage.ErrProductNotFound) {
		return nil, nil
	}
	return p, err
}

// pendingProduct собирает сущность из payload еще не отправленного Create
func (g *Gateway) pendingProduct(ctx context.Context, tempID string) (*models.CachedProduct, error) {
	op, ok, err := g.deps.Queue.PendingCreate(ctx, tempID)
	if err != nil || !ok {
		return nil, err
	}
	return productFromPayload(tempID, op.Payload)
}

func productFromPayload(id string, payload json.RawMessage) (*models.CachedProduct, error) {
	var p models.CachedProduct
	if err := json.Unmarshal(payload, &p); err != nil {
		return nil, fmt.Errorf("failed to decode pending payload: %w", err)
	}
	p.ID = api.ProductID(id)
	p.IsOffline = true
	p.IsSynced = false
	return &p, nil
}

// offlineCreate назначает временный id, ставит Create в очередь и кладет сущность в кэш
func (g *Gateway) offlineCreate(ctx context.Context, path string, data json.RawMessage) (*Response, error) {
	tempID := models.NewTempID()

	op := models.NewOperation(models.OperationCreate, path, data)
	op.TempID = tempID
	if _, err := g.deps.Queue.Enqueue(ctx, op); err != nil {
		return nil, fmt.Errorf("failed to queue create: %w", err)
	}

	p, err := productFromPayload(tempID, data)
	if err != nil {
		return nil, err
	}
	if err := g.deps.Cache.Upsert(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to cache offline product: %w", err)
	}

	g.logger.Info("Product created offline", "temp_id", tempID)
	resp, err := g.offlineResponse(p)
	if err != nil {
		return nil, err
	}
	resp.Status = http.StatusCreated
	return resp, nil
}

// offlineMutate ставит Update/Delete в очередь и возвращает подтверждение
func (g *Gateway) offlineMutate(ctx context.Context, method, path string, data json.RawMessage) (*Response, error) {
	if _, ok := models.ParseProductPath(path); !ok {
		return nil, fmt.Errorf("%w: %s %s", ErrUnsupportedOffline, method, path)
	}

	kind, err := models.KindFromMethod(method)
	if err != nil {
		return nil, err
	}
	if kind == models.OperationDelete {
		data = nil
	}

	annihilated, err := g.deps.Queue.Enqueue(ctx, models.NewOperation(kind, path, data))
	if err != nil {
		return nil, fmt.Errorf("failed to queue %s: %w", kind, err)
	}

	g.logger.Info("Operation queued offline", "kind", kind, "path", path, "annihilated", annihilated)
	return &Response{Offline: true, Status: http.StatusAccepted}, nil
}

func (g *Gateway) offlineResponse(v any) (*Response, error) {
	data, err := encode(v)
	if err != nil {
		return nil, err
	}
	return &Response{Offline: true, Status: http.StatusOK, Data: data}, nil
}
