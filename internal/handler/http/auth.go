package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/akarpov/messagely/internal/logger"
	"github.com/akarpov/messagely/internal/service"
	"github.com/akarpov/messagely/internal/store"
	"github.com/akarpov/messagely/internal/utils"
	"github.com/akarpov/messagely/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeErrorMessage(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.Register(ctx, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	// Registering counts as a login.
	if err := h.services.AuthService.UpdateLoginTimestamp(ctx, registeredUser.Username); err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, registeredUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.TokenResponse{Msg: "registered!", Token: token.String()}, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeErrorMessage(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	user, err := h.services.AuthService.Authenticate(ctx, creds.Username, creds.Password)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrUserNotFound) || errors.Is(err, service.ErrWrongPassword):
			// An unknown user and a wrong password are indistinguishable at
			// the API boundary.
			log.Err(err).Msg("no user was found/wrong password")
			writeErrorMessage(w, "invalid username/password", http.StatusBadRequest)
			return
		default:
			writeError(w, r, err)
			return
		}
	}

	if err := h.services.AuthService.UpdateLoginTimestamp(ctx, user.Username); err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.TokenResponse{Msg: "logged in!", Token: token.String()}, http.StatusOK)
}
