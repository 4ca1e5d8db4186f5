package gateway

import (
	"context"
	"net/http"

	"github.com/iudanet/coffeeshop/internal/client/idmap"
	"github.com/iudanet/coffeeshop/internal/models"
)

// getTemp обслуживает online GET по временному id: уже отображенный id
// переписывается, для отложенного Create сначала синхронизируется его цепочка
func (g *Gateway) getTemp(ctx context.Context, path, tempID string) (*Response, error) {
	resolved, ok, err := g.deps.IDMap.Resolve(ctx, tempID)
	if err != nil {
		return nil, err
	}
	if ok {
		return g.forward(ctx, http.MethodGet, models.ProductPath(resolved), nil)
	}

	pending, err := g.pendingProduct(ctx, tempID)
	if err != nil {
		return nil, err
	}
	if pending == nil {
		// Ни маппинга, ни Create: сервер ответит 404
		return g.forward(ctx, http.MethodGet, path, nil)
	}

	// Параллельные запросы одного temp id делят одну синхронизацию
	_, err, _ = g.group.Do(tempID, func() (any, error) {
		return g.deps.Sync.SyncChain(ctx, tempID)
	})
	if err != nil {
		g.logger.Warn("Inline sync failed", "temp_id", tempID, "error", err)
	}

	if resolved, ok, err := g.deps.IDMap.Resolve(ctx, tempID); err == nil && ok {
		resp, err := g.forward(ctx, http.MethodGet, models.ProductPath(resolved), nil)
		if err == nil {
			return resp, nil
		}
		g.logger.Warn("Failed to fetch synced product", "temp_id", tempID, "id", resolved, "error", err)
		if p, lerr := g.lookup(ctx, resolved); lerr == nil && p != nil {
			return g.offlineResponse(p)
		}
	}

	// Синхронизация не разрешила id - отдаем локальные данные
	return g.offlineResponse(pending)
}

// resolvePath подставляет постоянный id вместо отображенного temp id
func (g *Gateway) resolvePath(ctx context.Context, path, tempID string) (string, error) {
	resolved, err := g.deps.IDMap.ResolveOrSelf(ctx, tempID)
	if err != nil {
		return "", err
	}
	if resolved == tempID {
		return path, nil
	}
	return idmap.RewritePath(path, map[string]string{tempID: resolved}), nil
}
