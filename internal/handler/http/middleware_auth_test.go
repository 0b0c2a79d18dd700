package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/akarpov/messagely/internal/service"
	"github.com/akarpov/messagely/internal/utils"
	"github.com/akarpov/messagely/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	router := newTestRouter(t, passthroughAuth(), &mockUserService{}, &mockMessageService{})

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)

	resp := decodeError(t, rec)
	assert.Equal(t, ErrEmptyAuthorizationHeader.Error(), resp.Error.Message)
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	router := newTestRouter(t, passthroughAuth(), &mockUserService{}, &mockMessageService{})

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req.Header.Set("Authorization", "Bearer")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)

	resp := decodeError(t, rec)
	assert.Equal(t, ErrInvalidAuthorizationHeader.Error(), resp.Error.Message)
}

func TestAuthMiddleware_EmptyToken(t *testing.T) {
	router := newTestRouter(t, passthroughAuth(), &mockUserService{}, &mockMessageService{})

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req.Header.Set("Authorization", "Bearer ")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{}, service.ErrTokenIsExpiredOrInvalid
		},
	}
	router := newTestRouter(t, auth, &mockUserService{}, &mockMessageService{})

	rec := doJSON(t, router, http.MethodGet, "/users", "stale-token", "")

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_ValidTokenReachesHandler(t *testing.T) {
	var seen string
	users := &mockUserService{
		allFn: func(ctx context.Context) ([]models.Profile, error) {
			seen, _ = utils.GetUsernameFromContext(ctx)
			return []models.Profile{}, nil
		},
	}
	router := newTestRouter(t, passthroughAuth(), users, &mockMessageService{})

	rec := doJSON(t, router, http.MethodGet, "/users", "alice", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "alice", seen)
}

func TestGetTokenFromAuthHeader(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr error
	}{
		{name: "valid bearer", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "missing token", header: "Bearer", wantErr: ErrInvalidAuthorizationHeader},
		{name: "empty token", header: "Bearer ", wantErr: ErrEmptyToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := getTokenFromAuthHeader(tt.header)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
