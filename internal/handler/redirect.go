package handler

import (
	"net/http"

	"github.com/avc-dev/link-shortener/internal/usecase"
	"github.com/go-chi/chi/v5"
)

// Redirect перенаправляет по короткому коду на исходный адрес (301)
func (h *Handler) Redirect(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	target, err := h.usecase.ResolveLink(r.Context(), code)
	if err != nil {
		h.handleError(w, err, usecase.MsgInternal)
		return
	}

	http.Redirect(w, r, target, http.StatusMovedPermanently)
}
