package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// ProductID идентификатор продукта
// Сервер отдает числовые id, клиент offline создает строковые (temp_...)
type ProductID string

// MarshalJSON пишет числовой id как число, остальные как строку
func (id ProductID) MarshalJSON() ([]byte, error) {
	if n, err := strconv.ParseInt(string(id), 10, 64); err == nil {
		return []byte(strconv.FormatInt(n, 10)), nil
	}
	return json.Marshal(string(id))
}

// UnmarshalJSON принимает как число, так и строку
func (id *ProductID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("failed to decode product id: %w", err)
		}
		*id = ProductID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("failed to decode product id: %w", err)
	}
	*id = ProductID(n.String())
	return nil
}

// String returns the id as plain text
func (id ProductID) String() string {
	return string(id)
}

// Product представляет продукт (entity) в REST API
type Product struct {
	ID          ProductID `json:"id,omitempty"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Image       string    `json:"image"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
}

// ProductInput тело POST /products
type ProductInput struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Image       string  `json:"image,omitempty"`
	Price       float64 `json:"price"`
}

// ProductPatch тело PUT /products/{id}, все поля опциональны
type ProductPatch struct {
	Name        *string  `json:"name,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Description *string  `json:"description,omitempty"`
	Image       *string  `json:"image,omitempty"`
	Price       *float64 `json:"price,omitempty"`
}

// ProductListResponse ответ GET /products
type ProductListResponse struct {
	Products      []Product `json:"products"`
	TotalProducts int       `json:"totalProducts"`
	CurrentPage   int       `json:"currentPage"`
	TotalPages    int       `json:"totalPages"`
	ItemsPerPage  int       `json:"itemsPerPage"`
}

// ProductQuery параметры GET /products
type ProductQuery struct {
	Search   string
	Category string
	Sort     string // "asc" | "desc" по цене
	Page     int
	Limit    int
}
