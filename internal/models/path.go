package models

import (
	"net/url"
	"strings"
)

const (
	// ProductsPath путь коллекции продуктов
	ProductsPath = "/products"
	// CategoriesPath путь списка категорий
	CategoriesPath = "/products/categories"
)

// ProductPath возвращает путь конкретного продукта
func ProductPath(id string) string {
	return ProductsPath + "/" + url.PathEscape(id)
}

// SplitQuery отделяет query string от пути
func SplitQuery(path string) (string, string) {
	if i := strings.IndexByte(path, '?'); i >= 0 {
		return path[:i], path[i+1:]
	}
	return path, ""
}

// IsCollectionPath reports whether path addresses the product collection
func IsCollectionPath(path string) bool {
	p, _ := SplitQuery(path)
	return strings.TrimSuffix(p, "/") == ProductsPath
}

// ParseProductPath извлекает id из пути вида /products/{id}
// Возвращает false для коллекции и для /products/categories
func ParseProductPath(path string) (string, bool) {
	p, _ := SplitQuery(path)
	p = strings.TrimSuffix(p, "/")
	if p == CategoriesPath {
		return "", false
	}

	rest, ok := strings.CutPrefix(p, ProductsPath+"/")
	if !ok || rest == "" || strings.Contains(rest, "/") {
		return "", false
	}

	id, err := url.PathUnescape(rest)
	if err != nil {
		return "", false
	}
	return id, true
}
