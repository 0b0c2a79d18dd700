package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/akarpov/messagely/internal/logger"
	"github.com/akarpov/messagely/internal/utils"
	"github.com/akarpov/messagely/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) sendMessage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	requester, ok := utils.GetUsernameFromContext(ctx)
	if !ok {
		writeError(w, r, ErrEmptyToken)
		return
	}

	var req models.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeErrorMessage(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	message, err := h.services.MessageService.Send(ctx, requester, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: message}, http.StatusOK)
}

func (h *Handler) getMessage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	requester, ok := utils.GetUsernameFromContext(ctx)
	if !ok {
		writeError(w, r, ErrEmptyToken)
		return
	}

	id, err := messageID(r)
	if err != nil {
		writeErrorMessage(w, "invalid message id", http.StatusBadRequest)
		return
	}

	message, err := h.services.MessageService.Get(ctx, requester, id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: message}, http.StatusOK)
}

func (h *Handler) markMessageRead(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	requester, ok := utils.GetUsernameFromContext(ctx)
	if !ok {
		writeError(w, r, ErrEmptyToken)
		return
	}

	id, err := messageID(r)
	if err != nil {
		writeErrorMessage(w, "invalid message id", http.StatusBadRequest)
		return
	}

	receipt, err := h.services.MessageService.MarkRead(ctx, requester, id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.ReadResponse{Message: receipt}, http.StatusOK)
}

// messageID parses the {id} URL parameter.
func messageID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
