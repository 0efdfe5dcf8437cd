package handler

import (
	"net/http"

	"github.com/bagdasarian/club-shop/internal/domain"
)

func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req OrderRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}
	if err := h.validateRequest(req); err != nil {
		h.handleError(w, r, err)
		return
	}

	order, err := h.orderService.CreateOrder(r.Context(), req.By, httpOrderLinesToDomain(req.Items))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, domainOrderToHTTP(order))
}

// ListOrders поддерживает фильтр ?by=<member id>
func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	memberID, err := queryID(r, "by")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	orders, err := h.orderService.ListOrders(r.Context(), domain.OrderFilter{MemberID: memberID})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	response := make([]OrderResponse, 0, len(orders))
	for _, order := range orders {
		response = append(response, domainOrderToHTTP(order))
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	order, err := h.orderService.GetOrder(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainOrderToHTTP(order))
}
