package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/akarpov/messagely/internal/logger"
	"github.com/akarpov/messagely/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation, lookup, and the per-user message feeds against
// the "users" and "messages" tables.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (JoinAt, LastLoginAt).
//
// The INSERT uses the [createUser] query which returns all columns via a
// RETURNING clause, so the caller receives the canonical database
// representation of the newly created account.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrUsernameTaken].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → returned directly.
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser, user.Username, user.Password, user.FirstName, user.LastName, user.Phone)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrUsernameTaken
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	var created models.User
	var lastLogin sql.NullTime
	if err := row.Scan(&created.Username, &created.Password, &created.FirstName, &created.LastName, &created.Phone, &created.JoinAt, &lastLogin); err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.User{}, ErrUsernameTaken
		}
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: scanning error")
		return models.User{}, err
	}
	if lastLogin.Valid {
		created.LastLoginAt = lastLogin.Time
	}

	return created, nil
}

// FindUserByUsername retrieves the full user record, including the password
// hash, for the given username. It is intended for credential verification;
// use [userRepository.GetUser] for the public profile.
//
// Error handling:
//   - No matching row → [ErrUserNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findUserByUsername, username)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByUsername").Msg("error: row is nil")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	var found models.User
	var lastLogin sql.NullTime
	if err := row.Scan(&found.Username, &found.Password, &found.FirstName, &found.LastName, &found.Phone, &found.JoinAt, &lastLogin); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByUsername").Msg("error: scanning error")
		return models.User{}, err
	}
	if lastLogin.Valid {
		found.LastLoginAt = lastLogin.Time
	}

	return found, nil
}

// UpdateLoginTimestamp refreshes last_login_at for the given username.
//
// The UPDATE returns the username so that a missing account is detectable:
// zero returned rows → [ErrUserNotFound].
func (r *userRepository) UpdateLoginTimestamp(ctx context.Context, username string) error {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, updateLoginTimestamp, username)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateLoginTimestamp").Msg("error: row is nil")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	var updated string
	if err := row.Scan(&updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrUserNotFound
		}
		log.Err(err).Str("func", "*userRepository.UpdateLoginTimestamp").Msg("error: scanning error")
		return err
	}

	return nil
}

// AllUsers returns the public fields of every user ordered by username.
func (r *userRepository) AllUsers(ctx context.Context) ([]models.Profile, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, allUsers)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.AllUsers").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.Profile, 0)
	for rows.Next() {
		var u models.Profile
		if err := rows.Scan(&u.Username, &u.FirstName, &u.LastName, &u.Phone); err != nil {
			log.Err(err).Str("func", "*userRepository.AllUsers").Msg("error scanning rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, nil
}

// GetUser returns the public profile, join time, and last login time for the
// given username. The password hash is deliberately not part of the result.
//
// A missing account → [ErrUserNotFound].
func (r *userRepository) GetUser(ctx context.Context, username string) (models.User, error) {
	user, err := r.FindUserByUsername(ctx, username)
	if err != nil {
		return models.User{}, err
	}

	user.Password = ""
	return user, nil
}

// MessagesFrom returns every message sent by username, each joined with the
// recipient's public profile and ordered by sent_at.
//
// A user with no sent messages yields an empty slice; existence of the user
// is the caller's check.
func (r *userRepository) MessagesFrom(ctx context.Context, username string) ([]models.Message, error) {
	query, args, err := buildMessagesFromQuery(username)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryMessageFeed(ctx, query, args, func(m *models.Message, counterpart models.Profile) {
		m.ToUser = &counterpart
		m.ToUsername = counterpart.Username
	})
}

// MessagesTo returns every message received by username, each joined with the
// sender's public profile and ordered by sent_at.
//
// A user with no received messages yields an empty slice; existence of the
// user is the caller's check.
func (r *userRepository) MessagesTo(ctx context.Context, username string) ([]models.Message, error) {
	query, args, err := buildMessagesToQuery(username)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryMessageFeed(ctx, query, args, func(m *models.Message, counterpart models.Profile) {
		m.FromUser = &counterpart
		m.FromUsername = counterpart.Username
	})
}

// queryMessageFeed runs one of the feed queries and scans each row into a
// message plus the counterpart profile; attach decides which side of the
// message the counterpart belongs to.
func (r *userRepository) queryMessageFeed(ctx context.Context, query string, args []any, attach func(*models.Message, models.Profile)) ([]models.Message, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.queryMessageFeed").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	messages := make([]models.Message, 0)
	for rows.Next() {
		var m models.Message
		var counterpart models.Profile
		var readAt sql.NullTime

		if err := rows.Scan(
			&m.ID, &m.Body, &m.SentAt, &readAt,
			&counterpart.Username, &counterpart.FirstName, &counterpart.LastName, &counterpart.Phone,
		); err != nil {
			log.Err(err).Str("func", "*userRepository.queryMessageFeed").Msg("error scanning rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		if readAt.Valid {
			t := readAt.Time
			m.ReadAt = &t
		}

		attach(&m, counterpart)
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return messages, nil
}
