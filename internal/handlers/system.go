package handlers

import (
	"net/http"

	"projectTracker/internal/logger"
)

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.HealthCheck(r.Context()); err != nil {
		logger.Error("HTTP: Хранилище не отвечает", err)
		responseWithJSON(w, http.StatusServiceUnavailable, toPayload("status", "unavailable"))
		return
	}
	responseWithJSON(w, http.StatusOK, toPayload("status", "ok"))
}

func (h *Handler) Seed(w http.ResponseWriter, r *http.Request) {
	seeded, err := h.svc.Seed(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	responseWithJSON(w, http.StatusOK, toPayload("seeded", seeded))
}
