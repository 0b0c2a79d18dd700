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

// messageRepository is the PostgreSQL-backed implementation of
// [MessageRepository]. It handles message creation, detail lookup with both
// participants joined in, and the idempotent read-marking update.
type messageRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewMessageRepository constructs a [MessageRepository] backed by the
// provided database connection and logger.
func NewMessageRepository(db *DB, logger *logger.Logger) MessageRepository {
	logger.Debug().Msg("creating message repository")
	return &messageRepository{
		db:     db,
		logger: logger,
	}
}

// CreateMessage inserts a new message row with sent_at assigned by the
// database and read_at NULL, returning the created row.
//
// Error handling:
//   - PostgreSQL foreign_key_violation (23503) → [ErrUnknownParticipant]:
//     the sender or recipient does not exist in the users table.
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *messageRepository) CreateMessage(ctx context.Context, fromUsername, toUsername, body string) (models.Message, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createMessage, fromUsername, toUsername, body)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*messageRepository.CreateMessage").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return models.Message{}, ErrUnknownParticipant
		default:
			return models.Message{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	var m models.Message
	var readAt sql.NullTime
	if err := row.Scan(&m.ID, &m.FromUsername, &m.ToUsername, &m.Body, &m.SentAt, &readAt); err != nil {
		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return models.Message{}, ErrUnknownParticipant
		}
		log.Err(err).Str("func", "*messageRepository.CreateMessage").Msg("error: scanning error")
		return models.Message{}, err
	}
	if readAt.Valid {
		t := readAt.Time
		m.ReadAt = &t
	}

	return m, nil
}

// GetMessage loads one message together with the public profiles of both
// participants via the squirrel-built join query.
//
// A missing id → [ErrMessageNotFound].
func (r *messageRepository) GetMessage(ctx context.Context, id int64) (models.Message, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetMessageQuery(id)
	if err != nil {
		return models.Message{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*messageRepository.GetMessage").Msg("error: row is nil")
		return models.Message{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	var m models.Message
	var from, to models.Profile
	var readAt sql.NullTime
	if err := row.Scan(
		&m.ID, &m.Body, &m.SentAt, &readAt,
		&from.Username, &from.FirstName, &from.LastName, &from.Phone,
		&to.Username, &to.FirstName, &to.LastName, &to.Phone,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Message{}, ErrMessageNotFound
		}
		log.Err(err).Str("func", "*messageRepository.GetMessage").Msg("error: scanning error")
		return models.Message{}, err
	}
	if readAt.Valid {
		t := readAt.Time
		m.ReadAt = &t
	}

	m.FromUser = &from
	m.ToUser = &to
	m.FromUsername = from.Username
	m.ToUsername = to.Username

	return m, nil
}

// MarkMessageRead stamps read_at on an unread message and returns the
// receipt.
//
// The UPDATE only touches rows where read_at IS NULL, so an already-read
// message is never overwritten. When the UPDATE matches nothing the row is
// re-read: a missing id → [ErrMessageNotFound], an already-read message →
// the original receipt (idempotent no-op).
func (r *messageRepository) MarkMessageRead(ctx context.Context, id int64) (models.ReadReceipt, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, markMessageRead, id)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*messageRepository.MarkMessageRead").Msg("error: row is nil")
		return models.ReadReceipt{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	var receipt models.ReadReceipt
	err := row.Scan(&receipt.ID, &receipt.ReadAt)
	if err == nil {
		return receipt, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		log.Err(err).Str("func", "*messageRepository.MarkMessageRead").Msg("error: scanning error")
		return models.ReadReceipt{}, err
	}

	// Nothing was updated: either the message does not exist or it was
	// already read. Re-read to tell the two apart.
	row = r.db.QueryRowContext(ctx, readReceipt, id)
	var readAt sql.NullTime
	if err := row.Scan(&receipt.ID, &readAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ReadReceipt{}, ErrMessageNotFound
		}
		log.Err(err).Str("func", "*messageRepository.MarkMessageRead").Msg("error: scanning error")
		return models.ReadReceipt{}, err
	}
	if readAt.Valid {
		receipt.ReadAt = readAt.Time
	}

	return receipt, nil
}
