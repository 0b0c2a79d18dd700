package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/akarpov/messagely/internal/logger"
	"github.com/akarpov/messagely/internal/service"
	"github.com/akarpov/messagely/models"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock services
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerFn             func(ctx context.Context, req models.RegisterRequest) (models.User, error)
	authenticateFn         func(ctx context.Context, username, password string) (models.User, error)
	createTokenFn          func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn           func(ctx context.Context, tokenString string) (models.Token, error)
	updateLoginTimestampFn func(ctx context.Context, username string) error
}

func (m *mockAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	return m.registerFn(ctx, req)
}

func (m *mockAuthService) Authenticate(ctx context.Context, username, password string) (models.User, error) {
	return m.authenticateFn(ctx, username, password)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

func (m *mockAuthService) UpdateLoginTimestamp(ctx context.Context, username string) error {
	if m.updateLoginTimestampFn == nil {
		return nil
	}
	return m.updateLoginTimestampFn(ctx, username)
}

// mockUserService implements service.UserService for unit tests.
type mockUserService struct {
	allFn          func(ctx context.Context) ([]models.Profile, error)
	getFn          func(ctx context.Context, username string) (models.User, error)
	messagesFromFn func(ctx context.Context, username string) ([]models.Message, error)
	messagesToFn   func(ctx context.Context, username string) ([]models.Message, error)
}

func (m *mockUserService) All(ctx context.Context) ([]models.Profile, error) {
	return m.allFn(ctx)
}

func (m *mockUserService) Get(ctx context.Context, username string) (models.User, error) {
	return m.getFn(ctx, username)
}

func (m *mockUserService) MessagesFrom(ctx context.Context, username string) ([]models.Message, error) {
	return m.messagesFromFn(ctx, username)
}

func (m *mockUserService) MessagesTo(ctx context.Context, username string) ([]models.Message, error) {
	return m.messagesToFn(ctx, username)
}

// mockMessageService implements service.MessageService for unit tests.
type mockMessageService struct {
	sendFn     func(ctx context.Context, fromUsername string, req models.SendMessageRequest) (models.Message, error)
	getFn      func(ctx context.Context, requester string, id int64) (models.Message, error)
	markReadFn func(ctx context.Context, requester string, id int64) (models.ReadReceipt, error)
}

func (m *mockMessageService) Send(ctx context.Context, fromUsername string, req models.SendMessageRequest) (models.Message, error) {
	return m.sendFn(ctx, fromUsername, req)
}

func (m *mockMessageService) Get(ctx context.Context, requester string, id int64) (models.Message, error) {
	return m.getFn(ctx, requester, id)
}

func (m *mockMessageService) MarkRead(ctx context.Context, requester string, id int64) (models.ReadReceipt, error) {
	return m.markReadFn(ctx, requester, id)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// passthroughAuth returns an auth service whose ParseToken treats the raw
// bearer token as the username, so tests can authenticate as any user with
// "Authorization: Bearer <username>".
func passthroughAuth() *mockAuthService {
	return &mockAuthService{
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			return models.Token{Username: tokenString}, nil
		},
	}
}

// newTestRouter builds the full chi router with the given mocks so that
// requests exercise routing, middleware, and handlers together.
func newTestRouter(t *testing.T, auth service.AuthService, users service.UserService, messages service.MessageService) http.Handler {
	t.Helper()
	svcs := &service.Services{
		AuthService:    auth,
		UserService:    users,
		MessageService: messages,
	}
	return NewHandler(svcs, logger.Nop()).Init()
}

// doJSON issues a request with an optional bearer token and JSON body and
// returns the recorder.
func doJSON(t *testing.T, router http.Handler, method, target, bearer, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// decodeError unmarshals the error envelope of a failed response.
func decodeError(t *testing.T, rec *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}
