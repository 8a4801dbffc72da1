package handlers

import (
	"errors"
	"net/http"

	"projectTracker/internal/logger"
	"projectTracker/internal/service"
	"projectTracker/internal/storage"

	"go.uber.org/zap"
)

func handleBusinessError(w http.ResponseWriter, err error) bool {
	var businessErr *service.BusinessError
	if !errors.As(err, &businessErr) {
		return false
	}
	statusCode := mapBusinessErrorToHTTP(businessErr.Code)

	logger.Warn("HTTP: Бизнес-ошибка",
		zap.String("error_code", businessErr.Code),
		zap.Int("http_status", statusCode))

	responseWithJSON(w, statusCode,
		toPayload("error", businessErr.Code),
		toPayload("message", businessErr.Message),
		toPayload("details", businessErr.Details),
	)
	return true
}

func mapBusinessErrorToHTTP(code string) int {
	switch code {
	case service.CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}

// handleError отвечает на ошибку сервиса: бизнес-ошибки по коду, остальное - 500
func handleError(w http.ResponseWriter, r *http.Request, err error) {
	if handleBusinessError(w, err) {
		return
	}

	logger.Error("HTTP: Ошибка Service", err,
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path))

	if errors.Is(err, storage.ErrUnavailable) {
		responseWithError(w, http.StatusInternalServerError, "хранилище недоступно")
		return
	}
	responseWithError(w, http.StatusInternalServerError, "внутренняя ошибка")
}
