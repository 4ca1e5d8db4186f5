package api

import (
	"net/url"
	"strconv"
)

const (
	// DefaultPage первая страница списка
	DefaultPage = 1
	// DefaultLimit размер страницы, если limit передан, но не разобран
	DefaultLimit = 9
	// MaxLimit верхняя граница размера страницы
	MaxLimit = 50
)

// Values encodes the query for GET /products, omitting empty parameters
func (q ProductQuery) Values() url.Values {
	v := url.Values{}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	if q.Category != "" {
		v.Set("category", q.Category)
	}
	if q.Sort != "" {
		v.Set("sort", q.Sort)
	}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	return v
}

// Encode returns the query string without the leading '?'
func (q ProductQuery) Encode() string {
	return q.Values().Encode()
}

// ParseProductQuery decodes GET /products parameters.
// Limit 0 означает "без пагинации": так сервер отдает полный список.
func ParseProductQuery(v url.Values) ProductQuery {
	q := ProductQuery{
		Search:   v.Get("search"),
		Category: v.Get("category"),
		Sort:     v.Get("sort"),
		Page:     DefaultPage,
	}

	if page, err := strconv.Atoi(v.Get("page")); err == nil && page > 0 {
		q.Page = page
	}

	if v.Has("limit") {
		limit, err := strconv.Atoi(v.Get("limit"))
		if err != nil || limit <= 0 {
			limit = DefaultLimit
		}
		q.Limit = min(limit, MaxLimit)
	}
	return q
}
