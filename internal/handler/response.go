package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/avc-dev/link-shortener/internal/middleware"
	"github.com/avc-dev/link-shortener/internal/usecase"
	"go.uber.org/zap"
)

const msgInvalidBody = "Invalid request body"

// successResponse конверт успешного ответа API
type successResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
	}
}

func (h *Handler) writeData(w http.ResponseWriter, status int, data any) {
	h.writeJSON(w, status, successResponse{Success: true, Data: data})
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, errorResponse{Error: message})
}

// handleError переводит ошибку usecase в HTTP статус и текст для клиента.
// fallback отдается при внутренних сбоях.
func (h *Handler) handleError(w http.ResponseWriter, err error, fallback string) {
	h.writeError(w, statusFor(err), usecase.PublicMessage(err, fallback))
}

func statusFor(err error) int {
	var validationErr *usecase.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.Is(err, usecase.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, usecase.ErrLinkNotFound):
		return http.StatusNotFound
	case errors.Is(err, usecase.ErrDuplicateShortCode):
		return http.StatusConflict
	case errors.Is(err, usecase.ErrLinkInactive), errors.Is(err, usecase.ErrLinkExpired):
		return http.StatusGone
	default:
		return http.StatusInternalServerError
	}
}

// ownerID возвращает пользователя, установленного RequireAuth; пустая строка если его нет
func ownerID(r *http.Request) string {
	userID, _ := middleware.GetUserIDFromContext(r.Context())
	return userID
}
