package handlers

import (
	"net/http"

	"projectTracker/internal/board"
	"projectTracker/internal/handlers/dto"
	"projectTracker/internal/logger"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func (h *Handler) Board(w http.ResponseWriter, r *http.Request) {
	b, err := h.svc.Board(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	responseWithJSON(w, http.StatusOK, toPayload("board", b))
}

func decodeDrop(w http.ResponseWriter, r *http.Request) (board.Drop, bool) {
	var request dto.DropRequest
	if !decodeJSON(w, r, &request) {
		return board.Drop{}, false
	}
	if request.ActiveID == "" {
		responseWithError(w, http.StatusBadRequest, "activeId не может быть пустым")
		return board.Drop{}, false
	}
	drop, err := request.Drop()
	if err != nil {
		logger.Warn("HTTP: Неверная зона", zap.Error(err))
		responseWithError(w, http.StatusBadRequest, err.Error())
		return board.Drop{}, false
	}
	return drop, true
}

// DropTask - конец перетаскивания задачи на доске проекта
func (h *Handler) DropTask(w http.ResponseWriter, r *http.Request) {
	drop, ok := decodeDrop(w, r)
	if !ok {
		return
	}
	out, err := h.svc.DropTask(r.Context(), chi.URLParam(r, "id"), drop)
	if err != nil {
		handleError(w, r, err)
		return
	}
	responseWithJSON(w, http.StatusOK,
		toPayload("task", out.Task),
		toPayload("moved", out.Moved),
		toPayload("promptChecklist", out.PromptChecklist))
}

// DropProject - конец перетаскивания проекта в боковой панели
func (h *Handler) DropProject(w http.ResponseWriter, r *http.Request) {
	drop, ok := decodeDrop(w, r)
	if !ok {
		return
	}
	updated, err := h.svc.DropProject(r.Context(), drop)
	if err != nil {
		handleError(w, r, err)
		return
	}
	responseWithJSON(w, http.StatusOK,
		toPayload("project", updated),
		toPayload("moved", updated != nil))
}
