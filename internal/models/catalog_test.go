package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/coffeeshop/pkg/api"
)

func menu() []api.Product {
	return []api.Product{
		{ID: "1", Name: "Iced Chai", Category: "Teas", Price: 4},
		{ID: "2", Name: "Espresso", Category: "Classic Coffee", Price: 3, Description: "Strong shot"},
		{ID: "3", Name: "Cold Brew", Category: "Cold Brews", Price: 5},
		{ID: "4", Name: "Latte", Category: "Classic Coffee", Price: 4.5, Description: "Milk and espresso"},
		{ID: "5", Name: "Seasonal Special", Category: "Seasonal", Price: 6},
		{ID: "6", Name: "Americano", Category: "Classic Coffee", Price: 3.5},
	}
}

func ids(products []api.Product) []string {
	var out []string
	for _, p := range products {
		out = append(out, p.ID.String())
	}
	return out
}

func self(p api.Product) *api.Product { return &p }

func TestListPage_CategoryOrder(t *testing.T) {
	page, info := ListPage(menu(), self, api.ProductQuery{})

	// Classic Coffee -> Cold Brews -> Teas -> неизвестные
	assert.Equal(t, []string{"2", "4", "6", "3", "1", "5"}, ids(page))
	assert.Equal(t, PageInfo{TotalProducts: 6, CurrentPage: 1, TotalPages: 1, ItemsPerPage: 6}, info)
}

func TestListPage_SearchAndSort(t *testing.T) {
	// Поиск по описанию без учета регистра
	page, _ := ListPage(menu(), self, api.ProductQuery{Search: "ESPRESSO"})
	assert.Equal(t, []string{"2", "4"}, ids(page))

	page, _ = ListPage(menu(), self, api.ProductQuery{Category: "Classic Coffee", Sort: "desc"})
	assert.Equal(t, []string{"4", "6", "2"}, ids(page))

	page, _ = ListPage(menu(), self, api.ProductQuery{Category: "Classic Coffee", Sort: "asc"})
	assert.Equal(t, []string{"2", "6", "4"}, ids(page))
}

func TestListPage_Pagination(t *testing.T) {
	page, info := ListPage(menu(), self, api.ProductQuery{Page: 2, Limit: 4})

	assert.Equal(t, []string{"1", "5"}, ids(page))
	assert.Equal(t, PageInfo{TotalProducts: 6, CurrentPage: 2, TotalPages: 2, ItemsPerPage: 4}, info)

	// Страница за пределами списка пустая
	page, info = ListPage(menu(), self, api.ProductQuery{Page: 9, Limit: 4})
	assert.Empty(t, page)
	assert.Equal(t, 9, info.CurrentPage)

	// Огромные page и limit не переполняют смещение
	huge := []api.ProductQuery{
		{Page: math.MaxInt/50 + 2, Limit: 50},
		{Page: math.MaxInt, Limit: math.MaxInt},
		{Page: 2, Limit: math.MaxInt},
	}
	for _, q := range huge {
		require.NotPanics(t, func() { page, info = ListPage(menu(), self, q) })
		assert.Empty(t, page)
		assert.Equal(t, 1, info.TotalPages)
	}

	page, info = ListPage(menu(), self, api.ProductQuery{Page: 1, Limit: math.MaxInt})
	assert.Len(t, page, 6)
	assert.Equal(t, 1, info.TotalPages)
}

func TestSortCategories(t *testing.T) {
	categories := []string{"Zebra", "Teas", "Aurora", "Classic Coffee"}
	SortCategories(categories)

	assert.Equal(t, []string{"Classic Coffee", "Teas", "Aurora", "Zebra"}, categories)
}
