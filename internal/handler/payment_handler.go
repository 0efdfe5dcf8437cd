package handler

import (
	"net/http"
)

// CreatePayment всегда создает платеж в состоянии pending.
// Завершение платежа доступно только из административной консоли.
func (h *Handler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	var req PaymentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}
	if err := h.validateRequest(req); err != nil {
		h.handleError(w, r, err)
		return
	}

	payment, err := h.paymentService.CreatePayment(r.Context(), httpPaymentToDomain(req))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, domainPaymentToHTTP(payment))
}

func (h *Handler) ListPayments(w http.ResponseWriter, r *http.Request) {
	payments, err := h.paymentService.ListPayments(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	response := make([]PaymentResponse, 0, len(payments))
	for _, payment := range payments {
		response = append(response, domainPaymentToHTTP(payment))
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handler) GetPayment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	payment, err := h.paymentService.GetPayment(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainPaymentToHTTP(payment))
}
