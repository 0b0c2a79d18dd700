package http

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/akarpov/messagely/internal/store"
	"github.com/akarpov/messagely/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListUsers(t *testing.T) {
	users := &mockUserService{
		allFn: func(_ context.Context) ([]models.Profile, error) {
			return []models.Profile{
				{Username: "alice", FirstName: "Alice", LastName: "Arnold", Phone: "+14155550000"},
				{Username: "bob", FirstName: "Bob", LastName: "Burton", Phone: "+14155550001"},
			}, nil
		},
	}
	router := newTestRouter(t, passthroughAuth(), users, &mockMessageService{})

	rec := doJSON(t, router, http.MethodGet, "/users", "alice", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.UsersResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Users, 2)
	assert.Equal(t, "alice", resp.Users[0].Username)
	assert.Equal(t, "bob", resp.Users[1].Username)
}

func TestListUsers_RequiresToken(t *testing.T) {
	router := newTestRouter(t, passthroughAuth(), &mockUserService{}, &mockMessageService{})

	rec := doJSON(t, router, http.MethodGet, "/users", "", "")

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetUser(t *testing.T) {
	joined := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	users := &mockUserService{
		getFn: func(_ context.Context, username string) (models.User, error) {
			require.Equal(t, "bob", username)
			return models.User{
				Username:  "bob",
				FirstName: "Bob",
				LastName:  "Burton",
				Phone:     "+14155550001",
				JoinAt:    joined,
			}, nil
		},
	}
	router := newTestRouter(t, passthroughAuth(), users, &mockMessageService{})

	rec := doJSON(t, router, http.MethodGet, "/users/bob", "alice", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.UserResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "bob", resp.User.Username)
	assert.True(t, joined.Equal(resp.User.JoinAt))
}

func TestGetUser_NotFound(t *testing.T) {
	users := &mockUserService{
		getFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{}, store.ErrUserNotFound
		},
	}
	router := newTestRouter(t, passthroughAuth(), users, &mockMessageService{})

	rec := doJSON(t, router, http.MethodGet, "/users/ghost", "alice", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMessagesTo_OwnerOnly(t *testing.T) {
	users := &mockUserService{
		messagesToFn: func(_ context.Context, username string) ([]models.Message, error) {
			require.Equal(t, "alice", username)
			return []models.Message{
				{
					ID:           3,
					FromUsername: "bob",
					ToUsername:   "alice",
					Body:         "hello",
					SentAt:       time.Now(),
					FromUser:     &models.Profile{Username: "bob", FirstName: "Bob"},
				},
			}, nil
		},
	}
	router := newTestRouter(t, passthroughAuth(), users, &mockMessageService{})

	// The owner of the inbox sees it.
	rec := doJSON(t, router, http.MethodGet, "/users/alice/to", "alice", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.MessagesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Messages, 1)
	require.NotNil(t, resp.Messages[0].FromUser)
	assert.Equal(t, "bob", resp.Messages[0].FromUser.Username)

	// Any other user is rejected before the service is reached.
	rec = doJSON(t, router, http.MethodGet, "/users/alice/to", "bob", "")
	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestMessagesFrom_OwnerOnly(t *testing.T) {
	users := &mockUserService{
		messagesFromFn: func(_ context.Context, username string) ([]models.Message, error) {
			require.Equal(t, "alice", username)
			return []models.Message{}, nil
		},
	}
	router := newTestRouter(t, passthroughAuth(), users, &mockMessageService{})

	// An empty outbox is still a 200 with an empty list.
	rec := doJSON(t, router, http.MethodGet, "/users/alice/from", "alice", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.MessagesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Messages)
	assert.Empty(t, resp.Messages)

	rec = doJSON(t, router, http.MethodGet, "/users/alice/from", "bob", "")
	require.Equal(t, http.StatusForbidden, rec.Code)
}
