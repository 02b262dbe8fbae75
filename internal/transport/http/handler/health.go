package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// HealthHandler handles health-check endpoints. The source field reports
// which order backend is active so a deploy can be sanity-checked from curl.
type HealthHandler struct {
	source string
}

func NewHealthHandler(source string) *HealthHandler {
	return &HealthHandler{source: source}
}

func (h *HealthHandler) Ping(w http.ResponseWriter, r *http.Request) {
	action := chi.URLParam(r, "action")
	if action == "ping" {
		writeJSON(w, http.StatusOK, struct {
			Message string `json:"message"`
			Orders  string `json:"orders"`
		}{Message: "pong", Orders: h.source})
		return
	}
	writeError(w, http.StatusBadRequest, "unknown action")
}
