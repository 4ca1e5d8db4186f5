package sync

import (
	"context"
	"fmt"

	"github.com/iudanet/coffeeshop/internal/client/cache"
	"github.com/iudanet/coffeeshop/internal/client/queue"
	"github.com/iudanet/coffeeshop/internal/models"
	"github.com/iudanet/coffeeshop/pkg/api"
)

// reconcile оставляет в очереди только неуспешные операции и сливает
// подтвержденные результаты в кэш
func (s *service) reconcile(ctx context.Context, batch *queue.Batch, out *drainOutcome) error {
	if err := s.deps.Queue.Settle(ctx, batch, out.succeeded); err != nil {
		return fmt.Errorf("failed to settle queue: %w", err)
	}

	if len(out.succeeded) == 0 {
		return nil
	}

	mappings, err := s.deps.IDMap.All(ctx)
	if err != nil {
		s.logger.Warn("Failed to load id mappings for merge", "error", err)
		mappings = out.newMappings
	}

	if _, err := s.deps.Cache.Merge(ctx, cache.MergeInput{
		Server:    s.snapshot(ctx),
		Confirmed: out.confirmed,
		Mappings:  mappings,
		Deleted:   out.deleted,
	}); err != nil {
		return fmt.Errorf("failed to merge cache: %w", err)
	}

	// Экраны, которым нужен полный список, перечитают его с сервера
	if err := s.deps.Metadata.SetFlag(ctx, models.FlagNeedsRefresh, true); err != nil {
		s.logger.Warn("Failed to set needs_refresh flag", "error", err)
	}
	if err := s.deps.Metadata.SaveLastSyncTime(ctx, s.now()); err != nil {
		s.logger.Warn("Failed to save last sync time", "error", err)
	}

	return nil
}

// snapshot получает полный список с сервера; nil, если сервер не ответил
func (s *service) snapshot(ctx context.Context) []api.Product {
	opCtx, cancel := context.WithTimeout(ctx, s.cfg.OperationTimeout)
	defer cancel()

	// Без limit сервер отдает весь список одной страницей
	resp, err := s.deps.API.ListProducts(opCtx, api.ProductQuery{})
	if err != nil {
		s.logger.Warn("Failed to fetch products after sync, merging local results only", "error", err)
		return nil
	}
	// "products": [] декодируется в пустой, но не nil срез: это тоже полный снимок
	return resp.Products
}
