package handler

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/matchday-api/internal/application/order"
	"github.com/matchday-api/internal/domain"
)

// OrderHandler handles checkout and the admin order listing.
type OrderHandler struct {
	svc        order.Service
	adminToken string
}

func NewOrderHandler(svc order.Service, adminToken string) *OrderHandler {
	return &OrderHandler{svc: svc, adminToken: adminToken}
}

func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload domain.OrderPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.Place(r.Context(), payload)
	if err != nil {
		httpError(w, err, "Failed to save order.")
		return
	}
	writeJSON(w, http.StatusOK, OrderPlacedEnvelope{
		OK:             true,
		OrderID:        result.Order.ID,
		Source:         result.Source,
		Message:        result.Message,
		AdminReviewURL: "/api/orders?token=" + url.QueryEscape(h.adminToken),
		SheetURL:       result.SheetURL,
	})
}

func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	orders, err := h.svc.List(r.Context())
	if err != nil {
		httpError(w, err, "Failed to load orders.")
		return
	}
	if orders == nil {
		orders = []domain.StoredOrder{}
	}
	writeJSON(w, http.StatusOK, OrderListEnvelope{
		Orders:   orders,
		Source:   h.svc.Source(),
		SheetURL: h.svc.SheetURL(),
	})
}
