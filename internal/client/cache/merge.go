package cache

import (
	"github.com/iudanet/coffeeshop/internal/models"
	"github.com/iudanet/coffeeshop/pkg/api"
)

// MergeInput is what a completed sync batch or a server fetch knows
type MergeInput struct {
	// Server полный список с сервера; nil, если список получить не удалось
	Server []api.Product
	// Confirmed сущности, которые сервер вернул на успешные Create/Update
	Confirmed []api.Product
	// Mappings temp id -> permanent id, полученные в этом батче
	Mappings map[string]string
	// Deleted id, удаление которых сервер подтвердил
	Deleted []string
}

// Merge returns the reconciled cache contents. The result depends only on its
// arguments, so merging the same input twice yields the same list.
//
// Order: server entities in server order, then confirmed entities the snapshot
// does not contain yet, then retained local entries in their previous order.
func Merge(cached []*models.CachedProduct, in MergeInput) []*models.CachedProduct {
	out := make([]*models.CachedProduct, 0, len(in.Server)+len(cached))
	index := make(map[string]struct{}, cap(out))

	deleted := make(map[string]struct{}, len(in.Deleted))
	for _, id := range in.Deleted {
		deleted[id] = struct{}{}
	}

	add := func(p *models.CachedProduct) {
		key := p.Key()
		if _, dup := index[key]; dup {
			return
		}
		index[key] = struct{}{}
		out = append(out, p)
	}

	// 1. Сервер авторитетен для всего, что вернул
	for _, p := range in.Server {
		add(models.Confirmed(p))
	}

	// 2. Подтвержденные в этом батче, даже если снимок их еще не содержит
	for _, p := range in.Confirmed {
		if _, gone := deleted[p.ID.String()]; gone {
			continue
		}
		add(models.Confirmed(p))
	}

	// 3. Локальные записи, не затененные сервером и не отображенные на постоянный id
	snapshot := in.Server != nil
	for _, p := range cached {
		key := p.Key()
		if _, mapped := in.Mappings[key]; mapped {
			continue
		}
		if _, gone := deleted[key]; gone {
			continue
		}
		// Подтвержденная ранее запись, которой больше нет в полном снимке, удалена на сервере
		if snapshot && p.IsSynced {
			continue
		}
		add(p)
	}

	return out
}
