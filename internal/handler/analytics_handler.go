package handler

import (
	"net/http"

	"github.com/bagdasarian/club-shop/internal/service"
)

func (h *Handler) TopProducts(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit", service.DefaultTopLimit)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	series, err := h.analyticsService.TopProducts(r.Context(), limit)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainSeriesToHTTP(series))
}

func (h *Handler) TopUsers(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit", service.DefaultTopLimit)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	series, err := h.analyticsService.TopUsers(r.Context(), limit)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainSeriesToHTTP(series))
}

// Summary без user_id возвращает общую сводку вместе с суммой балансов
func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	memberID, err := queryID(r, "user_id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	summary, err := h.analyticsService.Summary(r.Context(), memberID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainSummaryToHTTP(summary))
}

func (h *Handler) SalesOverTime(w http.ResponseWriter, r *http.Request) {
	days, err := queryInt(r, "days", service.DefaultSalesDays)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	series, err := h.analyticsService.SalesOverTime(r.Context(), days)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainSeriesToHTTP(series))
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}
