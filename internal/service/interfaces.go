package service

import (
	"context"

	"github.com/akarpov/messagely/models"
)

// AuthService covers registration, credential verification, and the JWT
// token lifecycle.
type AuthService interface {
	// Register creates a new account from the plaintext request, hashing
	// the password before it is persisted.
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// Authenticate verifies username/password and returns the account on
	// success. A wrong password and an unknown username are distinct
	// errors internally.
	Authenticate(ctx context.Context, username, password string) (models.User, error)

	// CreateToken issues a signed JWT for the user.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken validates a raw JWT string and returns its decoded form.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// UpdateLoginTimestamp refreshes last_login_at after a successful
	// authentication.
	UpdateLoginTimestamp(ctx context.Context, username string) error
}

// UserService exposes user listing, profiles, and per-user message feeds.
type UserService interface {
	All(ctx context.Context) ([]models.Profile, error)
	Get(ctx context.Context, username string) (models.User, error)

	// MessagesFrom / MessagesTo return the user's sent/received feed.
	// An unknown username fails; a user with no messages yields an empty
	// slice.
	MessagesFrom(ctx context.Context, username string) ([]models.Message, error)
	MessagesTo(ctx context.Context, username string) ([]models.Message, error)
}

// MessageService exposes message creation and the authorization-gated read
// operations.
type MessageService interface {
	// Send creates a message from the authenticated sender.
	Send(ctx context.Context, fromUsername string, req models.SendMessageRequest) (models.Message, error)

	// Get returns the message detail. The requester must be the sender or
	// the recipient.
	Get(ctx context.Context, requester string, id int64) (models.Message, error)

	// MarkRead stamps the read receipt. The requester must be the
	// recipient; re-marking an already-read message is a no-op.
	MarkRead(ctx context.Context, requester string, id int64) (models.ReadReceipt, error)
}
