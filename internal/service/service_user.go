package service

import (
	"context"
	"fmt"

	"github.com/akarpov/messagely/internal/logger"
	"github.com/akarpov/messagely/internal/store"
	"github.com/akarpov/messagely/models"
)

// userService is the concrete implementation of UserService. It is a thin
// orchestration layer over the UserRepository; the only rule it adds is that
// message feeds distinguish "unknown user" from "no messages".
type userService struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

// NewUserService constructs a UserService backed by the given repository.
func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// All returns every user's public profile.
func (s *userService) All(ctx context.Context) ([]models.Profile, error) {
	users, err := s.userRepository.AllUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing users failed: %w", err)
	}

	return users, nil
}

// Get returns the public profile for username, with store.ErrUserNotFound
// propagated for an unknown account.
func (s *userService) Get(ctx context.Context, username string) (models.User, error) {
	if username == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	user, err := s.userRepository.GetUser(ctx, username)
	if err != nil {
		return models.User{}, fmt.Errorf("user lookup failed: %w", err)
	}

	return user, nil
}

// MessagesFrom returns the user's sent feed. The user must exist; an empty
// feed is a valid result, not an error.
func (s *userService) MessagesFrom(ctx context.Context, username string) ([]models.Message, error) {
	if err := s.ensureUserExists(ctx, username); err != nil {
		return nil, err
	}

	messages, err := s.userRepository.MessagesFrom(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("loading sent messages failed: %w", err)
	}

	return messages, nil
}

// MessagesTo returns the user's received feed. The user must exist; an empty
// feed is a valid result, not an error.
func (s *userService) MessagesTo(ctx context.Context, username string) ([]models.Message, error) {
	if err := s.ensureUserExists(ctx, username); err != nil {
		return nil, err
	}

	messages, err := s.userRepository.MessagesTo(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("loading received messages failed: %w", err)
	}

	return messages, nil
}

func (s *userService) ensureUserExists(ctx context.Context, username string) error {
	log := logger.FromContext(ctx)

	if username == "" {
		return ErrInvalidDataProvided
	}

	if _, err := s.userRepository.GetUser(ctx, username); err != nil {
		log.Err(err).Str("username", username).Msg("user existence check failed")
		return fmt.Errorf("user lookup failed: %w", err)
	}

	return nil
}
