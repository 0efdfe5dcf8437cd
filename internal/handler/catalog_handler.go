package handler

import (
	"net/http"

	"github.com/bagdasarian/club-shop/internal/domain"
)

func (h *Handler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req CategoryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}
	if err := h.validateRequest(req); err != nil {
		h.handleError(w, r, err)
		return
	}

	category, err := h.categoryService.CreateCategory(r.Context(), httpCategoryToDomain(req))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, domainCategoryToHTTP(category))
}

func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryService.ListCategories(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	response := make([]CategoryResponse, 0, len(categories))
	for _, category := range categories {
		response = append(response, domainCategoryToHTTP(category))
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handler) GetCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	category, err := h.categoryService.GetCategory(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainCategoryToHTTP(category))
}

// ListProducts поддерживает фильтр ?category=<id>
func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	categoryID, err := queryID(r, "category")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	products, err := h.productService.ListProducts(r.Context(), domain.ProductFilter{CategoryID: categoryID})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	response := make([]ProductResponse, 0, len(products))
	for _, product := range products {
		response = append(response, domainProductToHTTP(product))
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	product, err := h.productService.GetProduct(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainProductToHTTP(product))
}
