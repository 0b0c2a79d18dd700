package store

import (
	"github.com/akarpov/messagely/internal/logger"
)

// Repositories bundles every data-access interface the service layer needs.
type Repositories struct {
	UserRepository    UserRepository
	MessageRepository MessageRepository
}

// NewRepositories wires all repositories to the given database connection.
func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository:    NewUserRepository(db, logger),
		MessageRepository: NewMessageRepository(db, logger),
	}
}
