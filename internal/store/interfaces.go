package store

import (
	"context"

	"github.com/akarpov/messagely/models"
)

// UserRepository is the data-access contract for the users table.
type UserRepository interface {
	// CreateUser persists a new account and returns the canonical row.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername returns the full user row, including the password
	// hash, for credential verification.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// UpdateLoginTimestamp sets last_login_at to the current time.
	UpdateLoginTimestamp(ctx context.Context, username string) error

	// AllUsers returns the public fields of every user, ordered by username.
	AllUsers(ctx context.Context) ([]models.Profile, error)

	// GetUser returns the public profile for the given username.
	GetUser(ctx context.Context, username string) (models.User, error)

	// MessagesFrom returns every message sent by the user, each enriched
	// with the recipient's public profile. An empty result is an empty
	// slice, not an error.
	MessagesFrom(ctx context.Context, username string) ([]models.Message, error)

	// MessagesTo returns every message received by the user, each enriched
	// with the sender's public profile. An empty result is an empty slice,
	// not an error.
	MessagesTo(ctx context.Context, username string) ([]models.Message, error)
}

// MessageRepository is the data-access contract for the messages table.
type MessageRepository interface {
	// CreateMessage inserts a new message with sent_at set to the current
	// time and read_at NULL, returning the created row.
	CreateMessage(ctx context.Context, fromUsername, toUsername, body string) (models.Message, error)

	// GetMessage returns the message with both participants' public
	// profiles embedded.
	GetMessage(ctx context.Context, id int64) (models.Message, error)

	// MarkMessageRead sets read_at to the current time if it is still NULL
	// and returns the receipt. Re-marking an already-read message is a
	// no-op that returns the original read_at.
	MarkMessageRead(ctx context.Context, id int64) (models.ReadReceipt, error)
}
