package models

import "github.com/iudanet/coffeeshop/pkg/api"

// CachedProduct представляет продукт в локальном оптимистичном кэше
type CachedProduct struct {
	api.Product

	// IsOffline true пока продукт создан локально и не подтвержден сервером
	IsOffline bool `json:"_isOffline,omitempty"`
	// IsSynced true когда текущее состояние подтверждено сервером
	IsSynced bool `json:"_synced,omitempty"`
}

// Key возвращает ключ дедупликации в кэше
func (p *CachedProduct) Key() string {
	return p.ID.String()
}

// Confirmed wraps a server-returned product as a synced cache entry
func Confirmed(p api.Product) *CachedProduct {
	return &CachedProduct{Product: p, IsSynced: true}
}

// CategoryOrder порядок категорий меню, остальные идут после по алфавиту
var CategoryOrder = []string{"Classic Coffee", "Specialty Drinks", "Cold Brews", "Teas"}

// CategoryRank returns the menu position of a category, or len(CategoryOrder) if unknown
func CategoryRank(category string) int {
	for i, c := range CategoryOrder {
		if c == category {
			return i
		}
	}
	return len(CategoryOrder)
}
