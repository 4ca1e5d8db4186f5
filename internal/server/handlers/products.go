package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/iudanet/coffeeshop/internal/models"
	"github.com/iudanet/coffeeshop/internal/server/storage"
	"github.com/iudanet/coffeeshop/internal/validation"
	"github.com/iudanet/coffeeshop/pkg/api"
)

// ProductHandler обрабатывает запросы каталога
type ProductHandler struct {
	logger   *slog.Logger
	products storage.ProductStorage
}

// NewProductHandler создает новый handler каталога
func NewProductHandler(logger *slog.Logger, products storage.ProductStorage) *ProductHandler {
	return &ProductHandler{
		logger:   logger,
		products: products,
	}
}

// List обрабатывает GET /products
// Без limit возвращается весь каталог одной страницей
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	all, err := h.products.ListProducts(r.Context())
	if err != nil {
		h.internalError(w, r, "failed to list products", err)
		return
	}

	q := api.ParseProductQuery(r.URL.Query())
	page, info := models.ListPage(all, func(p api.Product) *api.Product { return &p }, q)
	if page == nil {
		page = []api.Product{}
	}

	sendJSON(h.logger, w, api.ProductListResponse{
		Products:      page,
		TotalProducts: info.TotalProducts,
		CurrentPage:   info.CurrentPage,
		TotalPages:    info.TotalPages,
		ItemsPerPage:  info.ItemsPerPage,
	}, http.StatusOK)
}

// Categories обрабатывает GET /products/categories
func (h *ProductHandler) Categories(w http.ResponseWriter, r *http.Request) {
	all, err := h.products.ListProducts(r.Context())
	if err != nil {
		h.internalError(w, r, "failed to list products", err)
		return
	}

	seen := make(map[string]struct{})
	categories := []string{}
	for _, p := range all {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		categories = append(categories, p.Category)
	}
	models.SortCategories(categories)

	sendJSON(h.logger, w, categories, http.StatusOK)
}

// Get обрабатывает GET /products/{id}
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.products.GetProduct(r.Context(), r.PathValue("id"))
	if err != nil {
		h.storageError(w, r, err)
		return
	}
	sendJSON(h.logger, w, p, http.StatusOK)
}

// Create обрабатывает POST /products
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in api.ProductInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := validation.ValidateProductInput(in); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	p, err := h.products.CreateProduct(r.Context(), in)
	if err != nil {
		h.internalError(w, r, "failed to create product", err)
		return
	}

	h.logger.InfoContext(r.Context(), "product created", slog.String("id", p.ID.String()))
	sendJSON(h.logger, w, p, http.StatusCreated)
}

// Update обрабатывает PUT /products/{id}, переданные поля сливаются с текущими
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch api.ProductPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := validation.ValidateProductPatch(patch); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	p, err := h.products.UpdateProduct(r.Context(), r.PathValue("id"), patch)
	if err != nil {
		h.storageError(w, r, err)
		return
	}
	sendJSON(h.logger, w, p, http.StatusOK)
}

// Delete обрабатывает DELETE /products/{id}
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.products.DeleteProduct(r.Context(), r.PathValue("id")); err != nil {
		h.storageError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ProductHandler) storageError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, storage.ErrProductNotFound) {
		sendError(h.logger, w, "Product not found", http.StatusNotFound)
		return
	}
	h.internalError(w, r, "product storage failed", err)
}

func (h *ProductHandler) internalError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	h.logger.ErrorContext(r.Context(), msg, slog.Any("error", err))
	sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
}
