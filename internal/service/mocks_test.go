package service

import (
	"context"

	"github.com/akarpov/messagely/models"
)

// mockUserRepository implements store.UserRepository for unit tests.
// Each method field can be overridden per test case.
type mockUserRepository struct {
	createUserFn           func(ctx context.Context, user models.User) (models.User, error)
	findUserByUsernameFn   func(ctx context.Context, username string) (models.User, error)
	updateLoginTimestampFn func(ctx context.Context, username string) error
	allUsersFn             func(ctx context.Context) ([]models.Profile, error)
	getUserFn              func(ctx context.Context, username string) (models.User, error)
	messagesFromFn         func(ctx context.Context, username string) ([]models.Message, error)
	messagesToFn           func(ctx context.Context, username string) ([]models.Message, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	return m.createUserFn(ctx, user)
}

func (m *mockUserRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return m.findUserByUsernameFn(ctx, username)
}

func (m *mockUserRepository) UpdateLoginTimestamp(ctx context.Context, username string) error {
	return m.updateLoginTimestampFn(ctx, username)
}

func (m *mockUserRepository) AllUsers(ctx context.Context) ([]models.Profile, error) {
	return m.allUsersFn(ctx)
}

func (m *mockUserRepository) GetUser(ctx context.Context, username string) (models.User, error) {
	return m.getUserFn(ctx, username)
}

func (m *mockUserRepository) MessagesFrom(ctx context.Context, username string) ([]models.Message, error) {
	return m.messagesFromFn(ctx, username)
}

func (m *mockUserRepository) MessagesTo(ctx context.Context, username string) ([]models.Message, error) {
	return m.messagesToFn(ctx, username)
}

// mockMessageRepository implements store.MessageRepository for unit tests.
type mockMessageRepository struct {
	createMessageFn   func(ctx context.Context, fromUsername, toUsername, body string) (models.Message, error)
	getMessageFn      func(ctx context.Context, id int64) (models.Message, error)
	markMessageReadFn func(ctx context.Context, id int64) (models.ReadReceipt, error)
}

func (m *mockMessageRepository) CreateMessage(ctx context.Context, fromUsername, toUsername, body string) (models.Message, error) {
	return m.createMessageFn(ctx, fromUsername, toUsername, body)
}

func (m *mockMessageRepository) GetMessage(ctx context.Context, id int64) (models.Message, error) {
	return m.getMessageFn(ctx, id)
}

func (m *mockMessageRepository) MarkMessageRead(ctx context.Context, id int64) (models.ReadReceipt, error) {
	return m.markMessageReadFn(ctx, id)
}
