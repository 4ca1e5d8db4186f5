package models

import (
	"sort"
	"strings"

	"github.com/iudanet/coffeeshop/pkg/api"
)

// PageInfo метаданные страницы списка продуктов
type PageInfo struct {
	TotalProducts int
	CurrentPage   int
	TotalPages    int
	ItemsPerPage  int
}

// ListPage applies the menu listing rules to items: search by name or description,
// category filter, grouping by category in menu order, optional price sort inside
// each category and pagination. Limit 0 returns everything on a single page.
func ListPage[T any](items []T, product func(T) *api.Product, q api.ProductQuery) ([]T, PageInfo) {
	search := strings.ToLower(q.Search)

	// Группируем с сохранением порядка первого появления категории
	groups := make(map[string][]T)
	var seen []string
	for _, item := range items {
		p := product(item)
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Description), search) {
			continue
		}
		if q.Category != "" && p.Category != q.Category {
			continue
		}
		if _, ok := groups[p.Category]; !ok {
			seen = append(seen, p.Category)
		}
		groups[p.Category] = append(groups[p.Category], item)
	}

	// Известные категории в порядке меню, остальные следом
	sort.SliceStable(seen, func(i, j int) bool {
		return CategoryRank(seen[i]) < CategoryRank(seen[j])
	})

	var ordered []T
	for _, category := range seen {
		group := groups[category]
		if q.Sort == "asc" || q.Sort == "desc" {
			sort.SliceStable(group, func(i, j int) bool {
				if q.Sort == "asc" {
					return product(group[i]).Price < product(group[j]).Price
				}
				return product(group[i]).Price > product(group[j]).Price
			})
		}
		ordered = append(ordered, group...)
	}

	total := len(ordered)
	if q.Limit <= 0 {
		return ordered, PageInfo{TotalProducts: total, CurrentPage: 1, TotalPages: 1, ItemsPerPage: total}
	}

	page := max(q.Page, 1)
	// Сравнение делением: (page-1)*limit переполняется на больших page
	start := total
	if page-1 <= total/q.Limit {
		start = min((page-1)*q.Limit, total)
	}
	end := start + min(q.Limit, total-start)

	pages := 0
	if total > 0 {
		pages = (total-1)/q.Limit + 1
	}

	return ordered[start:end], PageInfo{
		TotalProducts: total,
		CurrentPage:   page,
		TotalPages:    pages,
		ItemsPerPage:  q.Limit,
	}
}

// SortCategories orders categories by menu rank, unknown ones alphabetically after
func SortCategories(categories []string) {
	sort.SliceStable(categories, func(i, j int) bool {
		ri, rj := CategoryRank(categories[i]), CategoryRank(categories[j])
		if ri != rj {
			return ri < rj
		}
		return categories[i] < categories[j]
	})
}
