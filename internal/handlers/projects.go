package handlers

import (
	"net/http"
	"strings"

	"projectTracker/internal/handlers/dto"
	"projectTracker/internal/logger"
	"projectTracker/internal/models/project"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// groupSelection: пусто - все проекты, "ungrouped" - без группы, иначе id группы
func groupSelection(r *http.Request) project.GroupSelection {
	switch value := strings.TrimSpace(r.URL.Query().Get("group")); value {
	case "":
		return project.AllGroups()
	case "ungrouped":
		return project.Ungrouped()
	default:
		return project.InGroup(value)
	}
}

func (h *Handler) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.svc.ListProjects(r.Context(), groupSelection(r))
	if err != nil {
		handleError(w, r, err)
		return
	}
	responseWithJSON(w, http.StatusOK, toPayload("projects", projects))
}

func (h *Handler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var request dto.CreateProjectRequest
	if !decodeJSON(w, r, &request) {
		return
	}

	created, err := h.svc.CreateProject(r.Context(), request.Input())
	if err != nil {
		handleError(w, r, err)
		return
	}

	logger.Info("HTTP: Проект создан", zap.String("project_id", created.ID))
	responseWithJSON(w, http.StatusCreated, toPayload("project", created))
}

func (h *Handler) GetProject(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.GetProject(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	responseWithJSON(w, http.StatusOK, toPayload("project", p))
}

func (h *Handler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	var request dto.UpdateProjectRequest
	if !decodeJSON(w, r, &request) {
		return
	}

	updated, err := h.svc.UpdateProject(r.Context(), chi.URLParam(r, "id"), request.Patch())
	if err != nil {
		handleError(w, r, err)
		return
	}
	responseWithJSON(w, http.StatusOK, toPayload("project", updated))
}

func (h *Handler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteProject(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleError(w, r, err)
		return
	}
	responseNoContent(w)
}

func (h *Handler) ProjectProgress(w http.ResponseWriter, r *http.Request) {
	progress, err := h.svc.ProjectProgress(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	responseWithJSON(w, http.StatusOK, toPayload("progress", progress))
}
