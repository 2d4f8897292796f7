package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/avc-dev/link-shortener/internal/model"
	"github.com/avc-dev/link-shortener/internal/usecase"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ListLinks возвращает ссылки пользователя в порядке параметра sort
func (h *Handler) ListLinks(w http.ResponseWriter, r *http.Request) {
	links, err := h.usecase.ListLinks(r.Context(), ownerID(r), r.URL.Query().Get("sort"))
	if err != nil {
		h.handleError(w, err, usecase.MsgListFailed)
		return
	}

	h.writeData(w, http.StatusOK, h.views(links))
}

// CreateLink создает ссылку пользователя
func (h *Handler) CreateLink(w http.ResponseWriter, r *http.Request) {
	var input model.CreateLinkInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.logger.Debug("failed to decode create request",
			zap.Error(err),
			zap.String("remote_addr", r.RemoteAddr),
		)
		h.writeError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	link, err := h.usecase.CreateLink(r.Context(), ownerID(r), input)
	if err != nil {
		h.handleError(w, err, usecase.MsgCreateFailed)
		return
	}

	h.writeData(w, http.StatusCreated, h.view(link))
}

// UpdateLink частично обновляет ссылку пользователя
func (h *Handler) UpdateLink(w http.ResponseWriter, r *http.Request) {
	id, ok := h.linkID(w, r)
	if !ok {
		return
	}

	var update model.LinkUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		h.logger.Debug("failed to decode update request",
			zap.Error(err),
			zap.String("remote_addr", r.RemoteAddr),
		)
		h.writeError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	link, err := h.usecase.UpdateLink(r.Context(), ownerID(r), id, update)
	if err != nil {
		h.handleError(w, err, usecase.MsgUpdateFailed)
		return
	}

	h.writeData(w, http.StatusOK, h.view(link))
}

// DeleteLink удаляет ссылку пользователя
func (h *Handler) DeleteLink(w http.ResponseWriter, r *http.Request) {
	id, ok := h.linkID(w, r)
	if !ok {
		return
	}

	if err := h.usecase.DeleteLink(r.Context(), ownerID(r), id); err != nil {
		h.handleError(w, err, usecase.MsgDeleteFailed)
		return
	}

	h.writeData(w, http.StatusOK, nil)
}

type suggestResponse struct {
	ShortCode string `json:"shortCode"`
}

// SuggestShortCode предлагает свободный короткий код
func (h *Handler) SuggestShortCode(w http.ResponseWriter, r *http.Request) {
	code, err := h.usecase.SuggestShortCode(r.Context(), ownerID(r))
	if err != nil {
		h.handleError(w, err, usecase.MsgSuggestFailed)
		return
	}

	h.writeData(w, http.StatusOK, suggestResponse{ShortCode: code})
}

func (h *Handler) linkID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		h.writeError(w, http.StatusBadRequest, "Invalid link id")
		return 0, false
	}
	return id, true
}
