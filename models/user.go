package models

import "time"

// User represents an account on the messaging service.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// Username is the unique, immutable identifier of the user.
	// It doubles as the primary key of the users table.
	Username string `json:"username"`

	// Password holds the bcrypt hash of the user's password.
	// Plaintext passwords exist only transiently inside request bodies;
	// this field is never serialized to JSON.
	Password string `json:"-"`

	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`

	// JoinAt is set once when the account is created.
	JoinAt time.Time `json:"join_at"`

	// LastLoginAt is refreshed on every successful authentication.
	LastLoginAt time.Time `json:"last_login_at"`
}

// Profile is the public subset of a user record embedded into message
// payloads and user listings.
type Profile struct {
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
}

// Profile returns the public view of the user.
func (u User) Profile() Profile {
	return Profile{
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Phone:     u.Phone,
	}
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
