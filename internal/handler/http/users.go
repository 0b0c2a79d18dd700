package http

import (
	"net/http"

	"github.com/akarpov/messagely/internal/utils"
	"github.com/akarpov/messagely/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	users, err := h.services.UserService.All(ctx)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.UsersResponse{Users: users}, http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	username := chi.URLParam(r, "username")

	user, err := h.services.UserService.Get(ctx, username)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.UserResponse{User: user}, http.StatusOK)
}

// messagesTo serves the authenticated user's received feed. Only the owner
// of the feed may read it.
func (h *Handler) messagesTo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	username, err := ensureCorrectUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	messages, err := h.services.UserService.MessagesTo(ctx, username)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessagesResponse{Messages: messages}, http.StatusOK)
}

// messagesFrom serves the authenticated user's sent feed. Only the owner of
// the feed may read it.
func (h *Handler) messagesFrom(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	username, err := ensureCorrectUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	messages, err := h.services.UserService.MessagesFrom(ctx, username)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessagesResponse{Messages: messages}, http.StatusOK)
}
