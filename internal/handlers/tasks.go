package handlers

import (
	"net/http"

	"projectTracker/internal/handlers/dto"
	"projectTracker/internal/models/task"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) ListTasks(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	tasks, err := h.svc.ListTasks(r.Context(), query.Get("projectId"), task.Status(query.Get("status")))
	if err != nil {
		handleError(w, r, err)
		return
	}
	responseWithJSON(w, http.StatusOK, toPayload("tasks", tasks))
}

func (h *Handler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var request dto.CreateTaskRequest
	if !decodeJSON(w, r, &request) {
		return
	}
	created, err := h.svc.CreateTask(r.Context(), request.Input())
	if err != nil {
		handleError(w, r, err)
		return
	}
	responseWithJSON(w, http.StatusCreated, toPayload("task", created))
}

func (h *Handler) GetTask(w http.ResponseWriter, r *http.Request) {
	t, err := h.svc.GetTask(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	responseWithJSON(w, http.StatusOK, toPayload("task", t))
}

func (h *Handler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	var request dto.UpdateTaskRequest
	if !decodeJSON(w, r, &request) {
		return
	}
	updated, err := h.svc.UpdateTask(r.Context(), chi.URLParam(r, "id"), request.Patch())
	if err != nil {
		handleError(w, r, err)
		return
	}
	responseWithJSON(w, http.StatusOK, toPayload("task", updated))
}

func (h *Handler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteTask(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleError(w, r, err)
		return
	}
	responseNoContent(w)
}

func (h *Handler) MoveTask(w http.ResponseWriter, r *http.Request) {
	var request dto.MoveTaskRequest
	if !decodeJSON(w, r, &request) {
		return
	}
	out, err := h.svc.MoveTask(r.Context(), chi.URLParam(r, "id"), request.Status)
	if err != nil {
		handleError(w, r, err)
		return
	}
	responseWithJSON(w, http.StatusOK,
		toPayload("task", out.Task),
		toPayload("moved", out.Moved),
		toPayload("promptChecklist", out.PromptChecklist))
}

func (h *Handler) AddChecklistItem(w http.ResponseWriter, r *http.Request) {
	var request dto.ChecklistItemRequest
	if !decodeJSON(w, r, &request) {
		return
	}
	item, err := h.svc.AddChecklistItem(r.Context(), chi.URLParam(r, "id"), request.Text)
	if err != nil {
		handleError(w, r, err)
		return
	}
	responseWithJSON(w, http.StatusCreated, toPayload("item", item))
}

// SubmitSteps - ответ на подсказку о чеклисте после перевода в работу
func (h *Handler) SubmitSteps(w http.ResponseWriter, r *http.Request) {
	var request dto.StepsRequest
	if !decodeJSON(w, r, &request) {
		return
	}
	items, err := h.svc.SubmitSteps(r.Context(), chi.URLParam(r, "id"), request.Steps)
	if err != nil {
		handleError(w, r, err)
		return
	}
	responseWithJSON(w, http.StatusOK, toPayload("items", items))
}

func (h *Handler) ToggleChecklistItem(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.ToggleChecklistItem(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "itemId")); err != nil {
		handleError(w, r, err)
		return
	}
	responseNoContent(w)
}

func (h *Handler) DeleteChecklistItem(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteChecklistItem(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "itemId")); err != nil {
		handleError(w, r, err)
		return
	}
	responseNoContent(w)
}
