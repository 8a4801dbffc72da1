package handlers

import (
	"net/http"

	"projectTracker/internal/handlers/dto"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) ListGroups(w http.ResponseWriter, r *http.Request) {
	groups, err := h.svc.ListGroups(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	responseWithJSON(w, http.StatusOK, toPayload("groups", groups))
}

func (h *Handler) CreateGroup(w http.ResponseWriter, r *http.Request) {
	var request dto.CreateGroupRequest
	if !decodeJSON(w, r, &request) {
		return
	}
	created, err := h.svc.CreateGroup(r.Context(), request.Input())
	if err != nil {
		handleError(w, r, err)
		return
	}
	responseWithJSON(w, http.StatusCreated, toPayload("group", created))
}

func (h *Handler) GetGroup(w http.ResponseWriter, r *http.Request) {
	g, err := h.svc.GetGroup(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	responseWithJSON(w, http.StatusOK, toPayload("group", g))
}

func (h *Handler) UpdateGroup(w http.ResponseWriter, r *http.Request) {
	var request dto.UpdateGroupRequest
	if !decodeJSON(w, r, &request) {
		return
	}
	updated, err := h.svc.UpdateGroup(r.Context(), chi.URLParam(r, "id"), request.Patch())
	if err != nil {
		handleError(w, r, err)
		return
	}
	responseWithJSON(w, http.StatusOK, toPayload("group", updated))
}

// DeleteGroup - проекты группы остаются без группы
func (h *Handler) DeleteGroup(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteGroup(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleError(w, r, err)
		return
	}
	responseNoContent(w)
}
