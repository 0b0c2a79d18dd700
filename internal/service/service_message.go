package service

import (
	"context"
	"fmt"

	"github.com/akarpov/messagely/internal/logger"
	"github.com/akarpov/messagely/internal/store"
	"github.com/akarpov/messagely/models"
)

// messageService is the concrete implementation of MessageService. Besides
// delegating persistence to the MessageRepository it owns the authorization
// rules over messages: viewing requires being a participant, marking read
// requires being the recipient.
type messageService struct {
	messageRepository store.MessageRepository
	logger            *logger.Logger
}

// NewMessageService constructs a MessageService backed by the given
// repository.
func NewMessageService(messageRepository store.MessageRepository, logger *logger.Logger) MessageService {
	return &messageService{
		messageRepository: messageRepository,
		logger:            logger,
	}
}

// Send creates a message from fromUsername to req.ToUsername.
//
// Returns ErrInvalidDataProvided when the recipient or body is missing;
// store.ErrUnknownParticipant propagates when the recipient does not exist.
func (s *messageService) Send(ctx context.Context, fromUsername string, req models.SendMessageRequest) (models.Message, error) {
	log := logger.FromContext(ctx)

	if fromUsername == "" || req.ToUsername == "" || req.Body == "" {
		log.Error().Str("from", fromUsername).Str("to", req.ToUsername).Msg("invalid message data provided")
		return models.Message{}, ErrInvalidDataProvided
	}

	message, err := s.messageRepository.CreateMessage(ctx, fromUsername, req.ToUsername, req.Body)
	if err != nil {
		log.Err(err).Str("from", fromUsername).Str("to", req.ToUsername).Msg("message creation ended with error")
		return models.Message{}, fmt.Errorf("message creation ended with error: %w", err)
	}

	return message, nil
}

// Get returns the message detail for requester.
//
// The requester must be the sender or the recipient; anyone else gets
// ErrNotParticipant. A missing id propagates store.ErrMessageNotFound.
func (s *messageService) Get(ctx context.Context, requester string, id int64) (models.Message, error) {
	log := logger.FromContext(ctx)

	message, err := s.messageRepository.GetMessage(ctx, id)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("message lookup failed")
		return models.Message{}, fmt.Errorf("message lookup failed: %w", err)
	}

	// Access is granted to either participant.
	if requester != message.FromUsername && requester != message.ToUsername {
		log.Error().Str("requester", requester).Int64("id", id).Msg("requester is not a participant")
		return models.Message{}, ErrNotParticipant
	}

	return message, nil
}

// MarkRead stamps the read receipt on the message for requester.
//
// Only the recipient may mark a message read; the sender (or anyone else)
// gets ErrNotRecipient. Re-marking an already-read message returns the
// original receipt unchanged.
func (s *messageService) MarkRead(ctx context.Context, requester string, id int64) (models.ReadReceipt, error) {
	log := logger.FromContext(ctx)

	message, err := s.messageRepository.GetMessage(ctx, id)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("message lookup failed")
		return models.ReadReceipt{}, fmt.Errorf("message lookup failed: %w", err)
	}

	if requester != message.ToUsername {
		log.Error().Str("requester", requester).Int64("id", id).Msg("requester is not the recipient")
		return models.ReadReceipt{}, ErrNotRecipient
	}

	receipt, err := s.messageRepository.MarkMessageRead(ctx, id)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("marking message read failed")
		return models.ReadReceipt{}, fmt.Errorf("marking message read failed: %w", err)
	}

	return receipt, nil
}
