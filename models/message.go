package models

import "time"

// Message is a single direct message between two users.
//
// SentAt is assigned by the store at creation time and never changes.
// ReadAt stays nil until the recipient marks the message read; once set it
// is immutable.
type Message struct {
	ID           int64      `json:"id"`
	FromUsername string     `json:"from_username,omitempty"`
	ToUsername   string     `json:"to_username,omitempty"`
	Body         string     `json:"body"`
	SentAt       time.Time  `json:"sent_at"`
	ReadAt       *time.Time `json:"read_at"`

	// FromUser and ToUser carry the denormalized public profiles of the
	// participants when the message was loaded with its join. They are nil
	// on freshly created messages.
	FromUser *Profile `json:"from_user,omitempty"`
	ToUser   *Profile `json:"to_user,omitempty"`
}

// ReadReceipt is the payload returned after marking a message read.
type ReadReceipt struct {
	ID     int64     `json:"id"`
	ReadAt time.Time `json:"read_at"`
}

// TableName returns the name of the database table
// associated with the Message model.
func (m Message) TableName() string {
	return "messages"
}
