package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	// ErrNotParticipant is returned when a user who is neither the sender
	// nor the recipient tries to view a message.
	ErrNotParticipant = errors.New("only the sender or recipient may view this message")

	// ErrNotRecipient is returned when anyone other than the recipient
	// tries to mark a message read.
	ErrNotRecipient = errors.New("only the recipient may mark this message read")
)
