// Package products is the typed product service used by the CLI. It goes
// through the gateway and keeps the local cache warm with confirmed data.
package products

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/iudanet/coffeeshop/internal/client/cache"
	"github.com/iudanet/coffeeshop/internal/client/gateway"
	"github.com/iudanet/coffeeshop/internal/client/storage"
	"github.com/iudanet/coffeeshop/internal/models"
	"github.com/iudanet/coffeeshop/pkg/api"
)

// ErrNotFound продукт не найден ни на сервере, ни локально
var ErrNotFound = errors.New("product not found")

//go:generate moq -out requester_mock_test.go . Requester

// Requester is the subset of the gateway used by the service
type Requester interface {
	Get(ctx context.Context, path string) (*gateway.Response, error)
	Post(ctx context.Context, path string, data json.RawMessage) (*gateway.Response, error)
	Put(ctx context.Context, path string, data json.RawMessage) (*gateway.Response, error)
	Delete(ctx context.Context, path string) (*gateway.Response, error)
}

// Page страница списка продуктов
type Page struct {
	Products []*models.CachedProduct
	Info     models.PageInfo
	Offline  bool
}

// Service предоставляет операции с продуктами
type Service struct {
	gw       Requester
	cache    *cache.Cache
	metadata storage.MetadataStorage
	logger   *slog.Logger
}

// NewService creates a new product service
func NewService(gw Requester, c *cache.Cache, metadata storage.MetadataStorage, logger *slog.Logger) *Service {
	return &Service{
		gw:       gw,
		cache:    c,
		metadata: metadata,
		logger:   logger,
	}
}

// List возвращает страницу продуктов. Если выставлен needsRefresh, кэш
// пересобирается из полного списка сервера, после чего маркер снимается.
func (s *Service) List(ctx context.Context, q api.ProductQuery) (*Page, error) {
	path := models.ProductsPath
	if enc := q.Encode(); enc != "" {
		path += "?" + enc
	}

	resp, err := s.gw.Get(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	if resp.Offline {
		var list gateway.ListResponse
		if _, err := resp.Decode(&list); err != nil {
			return nil, err
		}
		return &Page{
			Products: list.Products,
			Offline:  true,
			Info: models.PageInfo{
				TotalProducts: list.TotalProducts,
				CurrentPage:   list.CurrentPage,
				TotalPages:    list.TotalPages,
				ItemsPerPage:  list.ItemsPerPage,
			},
		}, nil
	}

	var list api.ProductListResponse
	if _, err := resp.Decode(&list); err != nil {
		return nil, err
	}

	if err := s.refreshIfNeeded(ctx, q, list.Products); err != nil {
		// Устаревший кэш не мешает отдать свежую страницу
		s.logger.Warn("Failed to refresh product cache", "error", err)
	}

	page := &Page{
		Products: make([]*models.CachedProduct, 0, len(list.Products)),
		Info: models.PageInfo{
			TotalProducts: list.TotalProducts,
			CurrentPage:   list.CurrentPage,
			TotalPages:    list.TotalPages,
			ItemsPerPage:  list.ItemsPerPage,
		},
	}
	for _, p := range list.Products {
		page.Products = append(page.Products, models.Confirmed(p))
	}
	return page, nil
}

func (s *Service) refreshIfNeeded(ctx context.Context, q api.ProductQuery, fetched []api.Product) error {
	needsRefresh, err := s.metadata.GetFlag(ctx, models.FlagNeedsRefresh)
	if err != nil {
		return err
	}
	wasDown, err := s.metadata.GetFlag(ctx, models.FlagServerWasDown)
	if err != nil {
		return err
	}

	if !needsRefresh && !wasDown {
		// Подтвержденные продукты страницы обновляют кэш
		for _, p := range fetched {
			if err := s.cache.Upsert(ctx, models.Confirmed(p)); err != nil {
				return err
			}
		}
		return nil
	}

	snapshot := fetched
	if !isFullQuery(q) {
		resp, err := s.gw.Get(ctx, models.ProductsPath)
		if err != nil {
			return fmt.Errorf("failed to fetch full product list: %w", err)
		}
		var list api.ProductListResponse
		if _, err := resp.Decode(&list); err != nil {
			return err
		}
		snapshot = list.Products
	}
	if snapshot == nil {
		snapshot = []api.Product{}
	}

	merged, err := s.cache.Merge(ctx, cache.MergeInput{Server: snapshot})
	if err != nil {
		return err
	}

	if err := s.metadata.SetFlag(ctx, models.FlagNeedsRefresh, false); err != nil {
		return err
	}
	if err := s.metadata.SetFlag(ctx, models.FlagServerWasDown, false); err != nil {
		return err
	}

	s.logger.Info("Product cache refreshed", "products", len(merged))
	return nil
}

// isFullQuery запрос без фильтров и пагинации возвращает весь каталог
func isFullQuery(q api.ProductQuery) bool {
	return q.Search == "" && q.Category == "" && q.Limit == 0
}

// Get возвращает продукт по id (в том числе по временному)
func (s *Service) Get(ctx context.Context, id string) (*models.CachedProduct, bool, error) {
	resp, err := s.gw.Get(ctx, models.ProductPath(id))
	if err != nil {
		if api.IsNotFound(err) {
			return nil, false, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, false, fmt.Errorf("failed to get product: %w", err)
	}

	p, err := s.decodeProduct(ctx, resp)
	if err != nil {
		return nil, resp.Offline, err
	}
	if p == nil {
		return nil, true, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return p, resp.Offline, nil
}

// Add создает продукт; offline возвращает сущность с временным id
func (s *Service) Add(ctx context.Context, in api.ProductInput) (*models.CachedProduct, bool, error) {
	data, err := json.Marshal(in)
	if err != nil {
		return nil, false, fmt.Errorf("failed to encode product: %w", err)
	}

	resp, err := s.gw.Post(ctx, models.ProductsPath, data)
	if err != nil {
		return nil, false, fmt.Errorf("failed to add product: %w", err)
	}

	p, err := s.decodeProduct(ctx, resp)
	if err != nil {
		return nil, resp.Offline, err
	}
	if p == nil {
		return nil, resp.Offline, fmt.Errorf("server returned no product")
	}
	return p, resp.Offline, nil
}

// Update применяет частичное обновление. Offline изменение сразу отражается
// в локальном кэше, до подтверждения сервером.
func (s *Service) Update(ctx context.Context, id string, patch api.ProductPatch) (*models.CachedProduct, bool, error) {
	data, err := json.Marshal(patch)
	if err != nil {
		return nil, false, fmt.Errorf("failed to encode patch: %w", err)
	}

	resp, err := s.gw.Put(ctx, models.ProductPath(id), data)
	if err != nil {
		if api.IsNotFound(err) {
			return nil, false, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, false, fmt.Errorf("failed to update product: %w", err)
	}

	if !resp.Offline {
		p, err := s.decodeProduct(ctx, resp)
		return p, false, err
	}

	p, err := s.cache.Get(ctx, id)
	if errors.Is(err, storage.ErrProductNotFound) {
		// Продукта нет в кэше: обновление только в очереди
		return nil, true, nil
	}
	if err != nil {
		return nil, true, err
	}

	applyPatch(p, patch)
	p.IsSynced = false
	if err := s.cache.Upsert(ctx, p); err != nil {
		return nil, true, fmt.Errorf("failed to update cached product: %w", err)
	}
	return p, true, nil
}

// Delete удаляет продукт; запись кэша удаляется и online, и offline.
// При прочих ошибках сервера кэш не трогается: продукт на сервере остался.
func (s *Service) Delete(ctx context.Context, id string) (bool, error) {
	resp, err := s.gw.Delete(ctx, models.ProductPath(id))
	if err != nil {
		if !api.IsNotFound(err) {
			return false, fmt.Errorf("failed to delete product: %w", err)
		}
		// На сервере продукта уже нет: локальная запись устарела
		if _, rerr := s.cache.Remove(ctx, id); rerr != nil {
			s.logger.Warn("Failed to drop cached product", "id", id, "error", rerr)
		}
		return false, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	if _, err := s.cache.Remove(ctx, id); err != nil {
		return resp.Offline, fmt.Errorf("failed to remove cached product: %w", err)
	}
	return resp.Offline, nil
}

// Categories возвращает список категорий
func (s *Service) Categories(ctx context.Context) ([]string, bool, error) {
	resp, err := s.gw.Get(ctx, models.CategoriesPath)
	if err != nil {
		return nil, false, fmt.Errorf("failed to get categories: %w", err)
	}

	var categories []string
	if _, err := resp.Decode(&categories); err != nil {
		return nil, resp.Offline, err
	}
	return categories, resp.Offline, nil
}

// decodeProduct разбирает продукт; online ответ кладется в кэш как подтвержденный
func (s *Service) decodeProduct(ctx context.Context, resp *gateway.Response) (*models.CachedProduct, error) {
	var p models.CachedProduct
	ok, err := resp.Decode(&p)
	if err != nil || !ok {
		return nil, err
	}
	if resp.Offline {
		return &p, nil
	}

	confirmed := models.Confirmed(p.Product)
	if err := s.cache.Upsert(ctx, confirmed); err != nil {
		s.logger.Warn("Failed to cache product", "id", confirmed.ID, "error", err)
	}
	return confirmed, nil
}

func applyPatch(p *models.CachedProduct, patch api.ProductPatch) {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Image != nil {
		p.Image = *patch.Image
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
}
