package handler

import (
	"net/http"

	"go.uber.org/zap"
)

// Ping проверяет доступность хранилища
func (h *Handler) Ping(w http.ResponseWriter, r *http.Request) {
	if h.storage == nil {
		h.logger.Error("storage is not configured")
		h.writeError(w, http.StatusInternalServerError, "Storage is not configured")
		return
	}

	if err := h.storage.Ping(r.Context()); err != nil {
		h.logger.Error("storage ping failed", zap.Error(err))
		h.writeError(w, http.StatusInternalServerError, "Storage is unavailable")
		return
	}

	h.writeData(w, http.StatusOK, nil)
}
