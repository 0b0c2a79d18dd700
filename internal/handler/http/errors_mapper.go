package http

import (
	"errors"
	"net/http"

	"github.com/akarpov/messagely/internal/logger"
	"github.com/akarpov/messagely/internal/service"
	"github.com/akarpov/messagely/internal/store"
	"github.com/akarpov/messagely/internal/utils"
	"github.com/akarpov/messagely/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusBadRequest,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrNotParticipant:          http.StatusForbidden,
	service.ErrNotRecipient:            http.StatusForbidden,

	ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	ErrEmptyToken:                 http.StatusUnauthorized,
	ErrWrongUser:                  http.StatusForbidden,

	store.ErrUsernameTaken:      http.StatusBadRequest,
	store.ErrUserNotFound:       http.StatusNotFound,
	store.ErrMessageNotFound:    http.StatusNotFound,
	store.ErrUnknownParticipant: http.StatusBadRequest,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError is the centralized response translator: every failed request
// funnels through it and is serialized as {"error": {"message", "status"}}.
//
// Internal errors (500) get a generic message so that driver details never
// leak to the caller.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		message = http.StatusText(http.StatusInternalServerError)
	}

	log.Err(err).Int("status", status).Msg("request failed")

	utils.WriteJSON(w, models.ErrorResponse{
		Error: models.ErrorDetail{
			Message: message,
			Status:  status,
		},
	}, status)
}

// writeErrorMessage writes the error envelope with an explicit message and
// status, for cases where the handler overrides the mapped output (e.g. not
// revealing whether a login failure was an unknown user or a bad password).
func writeErrorMessage(w http.ResponseWriter, message string, status int) {
	utils.WriteJSON(w, models.ErrorResponse{
		Error: models.ErrorDetail{
			Message: message,
			Status:  status,
		},
	}, status)
}
