package handler

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/matchday-api/internal/application/catalog"
	"github.com/matchday-api/internal/domain"
)

// ProductHandler serves the kit catalog and product images.
type ProductHandler struct {
	svc catalog.Service
}

func NewProductHandler(svc catalog.Service) *ProductHandler {
	return &ProductHandler{svc: svc}
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, struct {
		Products []domain.Product `json:"products"`
	}{Products: h.svc.List(r.Context())})
}

func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpError(w, err, "Failed to load product.")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *ProductHandler) GetImage(w http.ResponseWriter, r *http.Request) {
	body, contentType, err := h.svc.GetImage(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpError(w, err, "Failed to load product image.")
		return
	}
	defer body.Close()

	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	_, _ = io.Copy(w, body)
}

func (h *ProductHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	contentType := r.Header.Get("Content-Type")
	if err := h.svc.UploadImage(r.Context(), chi.URLParam(r, "id"), r.Body, contentType); err != nil {
		httpError(w, err, "Failed to store product image.")
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "Image uploaded."})
}
