package handlers

import (
	"net/http"
)

type HealthResponse struct {
	Status string `json:"status"`
}

func (h *Handlers) HealthHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.HealthService.Check(r.Context()); err != nil {
		h.Log.WithError(err).Error("health check failed")
		WriteJSON(w, HealthResponse{Status: "unavailable"}, http.StatusServiceUnavailable)
		return
	}

	WriteJSON(w, HealthResponse{Status: "ok"}, http.StatusOK)
}
